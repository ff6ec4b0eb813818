package registration

import "regexp"

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigits    = regexp.MustCompile(`[^0-9]`)
)

// Validation messages shown inline on the form.
const (
	msgMissingFields = "Please fill in all required fields before submitting."
	msgInvalidEmail  = "Please enter a valid email address."
	msgInvalidPhone  = "Please enter a valid phone number."
)

func validEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// validPhone strips separators and accepts 10 to 15 digits.
func validPhone(s string) bool {
	n := len(nonDigits.ReplaceAllString(s, ""))
	return n >= 10 && n <= 15
}
