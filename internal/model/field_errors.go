package model

// Field identifies one of the five prediction inputs.
type Field string

// Input field constants.
const (
	FieldYear       Field = "year"
	FieldEnrollment Field = "female_enrollment_percent"
	FieldGapIndex   Field = "gender_gap_index"
	FieldCountry    Field = "country"
	FieldSTEMField  Field = "stem_field"
)

// fieldOrder fixes the display order for field errors.
var fieldOrder = []Field{FieldYear, FieldEnrollment, FieldGapIndex, FieldCountry, FieldSTEMField}

// Label returns the human-readable name of the field.
func (f Field) Label() string {
	switch f {
	case FieldYear:
		return "Year"
	case FieldEnrollment:
		return "Female enrollment %"
	case FieldGapIndex:
		return "Gender gap index"
	case FieldCountry:
		return "Country"
	case FieldSTEMField:
		return "STEM field"
	default:
		return string(f)
	}
}

// FieldErrors maps offending fields to their validation messages.
// Validation checks every field, so a single pass reports all
// violations at once.
type FieldErrors map[Field]string

// First returns the first error in display order, or "" when empty.
// The form shows one error at a time; everything else is still here
// for callers that want the full set.
func (fe FieldErrors) First() string {
	for _, f := range fieldOrder {
		if msg, ok := fe[f]; ok {
			return msg
		}
	}
	return ""
}

// Messages returns every error message in display order.
func (fe FieldErrors) Messages() []string {
	var msgs []string
	for _, f := range fieldOrder {
		if msg, ok := fe[f]; ok {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}
