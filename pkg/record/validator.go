package record

import (
	"github.com/dmitrymomot/recordkit/pkg/reference"
	"github.com/dmitrymomot/recordkit/pkg/sanitizer"
	"github.com/dmitrymomot/recordkit/pkg/validator"
)

const (
	DefaultAgeMin         = 0
	DefaultAgeMax         = 110
	DefaultMinPassword    = 8
	DefaultGPAMin float64 = 0
	DefaultGPAMax float64 = 4

	// DefaultMaxBalance keeps balances within the range where cents are
	// exact in a float64.
	DefaultMaxBalance float64 = 1e13
)

// Validator validates and normalizes single records against a fixed set of
// reference tables.
type Validator struct {
	tables  reference.Tables
	regions []string

	ageMin, ageMax int
	maxBalance     float64
	minPassword    int
	gpaMin, gpaMax float64
}

// New returns a Validator bound to tables.
func New(tables reference.Tables, opts ...Option) *Validator {
	v := &Validator{
		tables:      tables,
		regions:     tables.Regions(),
		ageMin:      DefaultAgeMin,
		ageMax:      DefaultAgeMax,
		maxBalance:  DefaultMaxBalance,
		minPassword: DefaultMinPassword,
		gpaMin:      DefaultGPAMin,
		gpaMax:      DefaultGPAMax,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// fields holds the trimmed textual fields of a record.
type fields struct {
	name       string
	email      string
	password   string
	country    string
	state      string
	courseCode string
}

func extract(raw Raw) fields {
	return fields{
		name:       sanitizer.Trim(raw.Text(FieldName)),
		email:      sanitizer.Trim(raw.Text(FieldEmail)),
		password:   raw.Text(FieldPassword),
		country:    sanitizer.Code(raw.Text(FieldCountry)),
		state:      sanitizer.Code(raw.Text(FieldState)),
		courseCode: sanitizer.Code(raw.Text(FieldCourseCode)),
	}
}

// Validate checks raw and returns its normalized form. The returned error is
// always a validator.ValidationError describing the first violated check.
func (v *Validator) Validate(raw Raw) (Normalized, error) {
	f := extract(raw)

	if err := validator.First(
		validator.Required(FieldName, f.name),
		validator.ValidEmail(FieldEmail, f.email),
	); err != nil {
		return Normalized{}, err
	}

	age, err := validator.Int(FieldAge, raw[FieldAge])
	if err != nil {
		return Normalized{}, err
	}
	if err := validator.First(validator.Between(FieldAge, age, v.ageMin, v.ageMax)); err != nil {
		return Normalized{}, err
	}

	balance, err := validator.Float(FieldBalance, raw[FieldBalance])
	if err != nil {
		return Normalized{}, err
	}

	domestic := v.tables.IsDomestic(f.country)
	if err := validator.First(
		validator.NonNegative(FieldBalance, balance),
		validator.MaxNum(FieldBalance, balance, v.maxBalance),
		validator.MinLen(FieldPassword, f.password, v.minPassword),
		validator.When(f.courseCode != "", validator.InCatalog(FieldCourseCode, f.courseCode, v.tables.CourseTitle)),
		validator.When(domestic, validator.InSet(FieldState, f.state, v.regions)),
	); err != nil {
		return Normalized{}, err
	}
	if !domestic {
		f.state = ""
	}

	start, end, err := validator.DateRange(FieldStartDate, FieldEndDate, raw[FieldStartDate], raw[FieldEndDate])
	if err != nil {
		return Normalized{}, err
	}

	gpa, err := v.gpa(raw)
	if err != nil {
		return Normalized{}, err
	}

	n := Normalized{
		Name:       sanitizer.PersonName(f.name),
		Email:      f.email,
		Age:        age,
		Balance:    sanitizer.Money(balance),
		Password:   f.password,
		Country:    f.country,
		State:      f.state,
		CourseCode: f.courseCode,
		GPA:        gpa,
		StartDate:  start,
		EndDate:    end,
	}
	if f.courseCode != "" {
		n.CourseTitle, _ = v.tables.CourseTitle(f.courseCode)
	}
	return n, nil
}

// gpa derives the optional GPA ratio. Records with neither numerator nor
// denominator have no GPA.
func (v *Validator) gpa(raw Raw) (*float64, error) {
	if !raw.Has(FieldGPANumerator) && !raw.Has(FieldGPADenominator) {
		return nil, nil
	}

	num, err := validator.Float(FieldGPANumerator, raw[FieldGPANumerator])
	if err != nil {
		return nil, err
	}
	den, err := validator.Float(FieldGPADenominator, raw[FieldGPADenominator])
	if err != nil {
		return nil, err
	}

	ratio, err := validator.Ratio(FieldGPA, num, den)
	if err != nil {
		return nil, err
	}
	if err := validator.First(validator.Between(FieldGPA, ratio, v.gpaMin, v.gpaMax)); err != nil {
		return nil, err
	}

	gpa := sanitizer.Money(ratio)
	return &gpa, nil
}
