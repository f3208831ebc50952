package clinic

import "strings"

// Gender values as stored on patient records.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// NormalizeGender maps a form value onto the stored gender enum,
// ignoring case and surrounding whitespace. The second return is false
// when the value is not a recognised gender.
func NormalizeGender(s string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male":
		return GenderMale, true
	case "female":
		return GenderFemale, true
	case "other":
		return GenderOther, true
	}
	return "", false
}
