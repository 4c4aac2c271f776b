package record

import (
	"fmt"
	"strings"
	"time"
)

// Raw is an unvalidated record: field name to loosely-typed value. Values may
// be strings, integers, floats, number literals, dates or nil.
type Raw map[string]any

// Text returns the string form of a field, or "" when it is absent or nil.
func (r Raw) Text(field string) string {
	switch v := r[field].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// Has reports whether the field is present with a non-nil value.
func (r Raw) Has(field string) bool {
	v, ok := r[field]
	return ok && v != nil
}

// ID identifies a record in reports: its trimmed name, or "record#N" where N
// is the 1-based position in the batch.
func ID(r Raw, index int) string {
	if name := strings.TrimSpace(r.Text(FieldName)); name != "" {
		return name
	}
	return fmt.Sprintf("record#%d", index+1)
}

// Normalized is a record that passed validation, with canonical values.
type Normalized struct {
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Age         int       `json:"age"`
	Balance     float64   `json:"balance"`
	Password    string    `json:"-"`
	Country     string    `json:"country"`
	State       string    `json:"state"`
	CourseCode  string    `json:"course_code,omitempty"`
	CourseTitle string    `json:"course_title,omitempty"`
	GPA         *float64  `json:"gpa,omitempty"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
}

// Raw converts n back into an input record with canonical values. Validating
// the result yields n again. A derived GPA is emitted as gpa/1.
func (n Normalized) Raw() Raw {
	r := Raw{
		FieldName:      n.Name,
		FieldEmail:     n.Email,
		FieldAge:       n.Age,
		FieldBalance:   n.Balance,
		FieldPassword:  n.Password,
		FieldCountry:   n.Country,
		FieldState:     n.State,
		FieldStartDate: n.StartDate,
		FieldEndDate:   n.EndDate,
	}
	if n.CourseCode != "" {
		r[FieldCourseCode] = n.CourseCode
	}
	if n.GPA != nil {
		r[FieldGPANumerator] = *n.GPA
		r[FieldGPADenominator] = 1.0
	}
	return r
}
