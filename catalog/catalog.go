package catalog

// Course is one fixed offering shown on the courses page. The catalog is
// build-time data: nothing creates, mutates, or deletes courses at runtime.
type Course struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Details     []string `json:"details"`
	Duration    string   `json:"duration"`
	Fee         string   `json:"fee"`
	Bonus       string   `json:"bonus"`
}

var courses = []Course{
	{
		ID:    "course-1",
		Title: "UI/UX DESIGN TRAINING",
		Description: "Start your journey in tech by learning how to design " +
			"user-friendly and visually appealing websites and apps.",
		Details: []string{
			"Master Wireframing, Prototyping, and User Research",
			"Learn Figma, Adobe XD, and more",
			"Work on real-world projects",
		},
		Duration: "10 Weeks",
		Fee:      "NGN 50,000",
		Bonus:    "Paid internship and job hunting guide",
	},
	{
		ID:          "course-2",
		Title:       "FRONTEND DEVELOPMENT TRAINING",
		Description: "Build interactive websites and applications from scratch.",
		Details: []string{
			"Learn HTML, CSS, JavaScript",
			"Create stunning and responsive web pages",
			"Work on real-world projects with expert guidance",
		},
		Duration: "12 Weeks",
		Fee:      "NGN 50,000",
		Bonus:    "Paid internship and remote job training",
	},
	{
		ID:          "course-3",
		Title:       "FULLSTACK / BACKEND DEVELOPMENT TRAINING",
		Description: "Learn to build powerful and secure web applications from scratch.",
		Details: []string{
			"Master PHP, phpMyAdmin and Database (MYSQL)",
			"Understand API development and authentication",
			"Develop backend systems used in modern applications",
		},
		Duration: "12 Weeks",
		Fee:      "NGN 50,000",
		Bonus:    "Paid internship and job search strategy",
	},
	{
		ID:          "course-4",
		Title:       "DATA ANALYTICS TRAINING",
		Description: "Learn how to analyze and interpret data for business growth.",
		Details: []string{
			"Master Excel, SQL, Power BI, and Python",
			"Gain insights from data and make informed decisions",
			"Work on practical projects and case studies",
		},
		Duration: "12 Weeks",
		Fee:      "NGN 75,000",
		Bonus:    "Internship and remote job training",
	},
	{
		ID:    "course-5",
		Title: "CYBERSECURITY TRAINING",
		Description: "Start a career in tech by learning how to protect " +
			"businesses from cyber threats.",
		Details: []string{
			"Learn Ethical Hacking, Network Security, and Cloud Security",
			"Get hands-on experience with security tools and challenges",
			"Develop skills to secure systems and prevent cyber attacks",
		},
		Duration: "12 Weeks",
		Fee:      "NGN 75,000",
		Bonus:    "Internship and cybersecurity career coaching",
	},
	{
		ID:    "course-6",
		Title: "VIRTUAL ASSISTANT TRAINING",
		Description: "Work remotely and build a successful career as a " +
			"virtual assistant.",
		Details: []string{
			"Learn Admin Support, Email, and Calendar Management",
			"Master productivity tools and automation",
			"Gain skills to manage clients and grow your career",
		},
		Duration: "6 Weeks",
		Fee:      "NGN 50,000",
		Bonus:    "Internship and job search guide",
	},
	{
		ID:          "course-7",
		Title:       "DIGITAL MARKETING TRAINING",
		Description: "Learn how to market businesses and brands online.",
		Details: []string{
			"Master SEO, Google & Facebook Ads, and Social Media Marketing",
			"Create successful online campaigns",
			"Develop strategies to grow businesses in the digital space",
		},
		Duration: "8 Weeks",
		Fee:      "NGN 50,000",
		Bonus:    "Internship and freelancing training",
	},
	{
		ID:          "course-8",
		Title:       "PROJECT MANAGEMENT TRAINING",
		Description: "Learn the essential skills to manage projects effectively.",
		Details: []string{
			"Master Agile, Scrum, Kanban, and Waterfall methodologies",
			"Understand project planning, execution, and risk management",
			"Work on practical case studies and real-world projects",
		},
		Duration: "8 Weeks",
		Fee:      "NGN 50,000",
		Bonus:    "Internship and remote work training",
	},
}

// Courses returns the full catalog in display order.
func Courses() []Course {
	return courses
}

// ByID looks a course up by its stable identifier.
func ByID(id string) (Course, bool) {
	for _, c := range courses {
		if c.ID == id {
			return c, true
		}
	}
	return Course{}, false
}

// ByTitle looks a course up by its display title, which is also the value
// sent to the enrollment backend as the course reference.
func ByTitle(title string) (Course, bool) {
	for _, c := range courses {
		if c.Title == title {
			return c, true
		}
	}
	return Course{}, false
}
