// Package registration implements the course registration workflow: the
// applicant payload, local validation, and the per-form state machine that
// gates submission to the enrollment backend.
package registration

// Registration is the payload sent to the enrollment backend.
//
// CourseID carries the selected course's TITLE, not its catalog id — the
// backend matches offerings by title. Ref is always present as a string;
// the empty string means no referral was captured.
type Registration struct {
	Firstname   string `json:"firstname"`
	Lastname    string `json:"lastname"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	State       string `json:"state"`
	CourseID    string `json:"courseId"`
	Ref         string `json:"ref"`
}

// RequiredFields is the canonical order in which required fields are
// checked. The gateway names the first missing one in its 400 response.
var RequiredFields = []string{
	"firstname", "lastname", "email", "phoneNumber", "state", "courseId",
}

// FirstMissing returns the JSON name of the first empty required field in
// canonical order, or "" when all are present.
func (r Registration) FirstMissing() string {
	values := map[string]string{
		"firstname":   r.Firstname,
		"lastname":    r.Lastname,
		"email":       r.Email,
		"phoneNumber": r.PhoneNumber,
		"state":       r.State,
		"courseId":    r.CourseID,
	}
	for _, name := range RequiredFields {
		if values[name] == "" {
			return name
		}
	}
	return ""
}
