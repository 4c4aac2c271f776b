package record

// Field names understood by the validator.
const (
	FieldName           = "name"
	FieldEmail          = "email"
	FieldAge            = "age"
	FieldBalance        = "balance"
	FieldPassword       = "password"
	FieldCountry        = "country"
	FieldState          = "state"
	FieldCourseCode     = "course_code"
	FieldGPANumerator   = "gpa_numerator"
	FieldGPADenominator = "gpa_denominator"
	FieldStartDate      = "start_date"
	FieldEndDate        = "end_date"

	// FieldGPA names the derived ratio in failure reasons.
	FieldGPA = "gpa"
)
