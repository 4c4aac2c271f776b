package report

import (
	"github.com/dmitrymomot/recordkit/pkg/batch"
	"github.com/dmitrymomot/recordkit/pkg/record"
	"github.com/dmitrymomot/recordkit/pkg/validator"
)

// Document is the serializable view of a batch result.
type Document struct {
	BatchID  string     `json:"batch_id"`
	Summary  Summary    `json:"summary"`
	Accepted []Accepted `json:"accepted"`
	Failures []Failure  `json:"failures"`
}

type Summary struct {
	Total    int `json:"total"`
	Accepted int `json:"accepted"`
	Failed   int `json:"failed"`
}

// Accepted is a normalized record with dates rendered as YYYY-MM-DD.
type Accepted struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Age         int      `json:"age"`
	Balance     float64  `json:"balance"`
	Country     string   `json:"country"`
	State       string   `json:"state"`
	CourseCode  string   `json:"course_code,omitempty"`
	CourseTitle string   `json:"course_title,omitempty"`
	GPA         *float64 `json:"gpa,omitempty"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
}

type Failure struct {
	Index  int            `json:"index"`
	ID     string         `json:"id"`
	Kind   validator.Kind `json:"kind"`
	Reason string         `json:"reason"`
}

// Build converts res into a Document. Slices are never nil.
func Build(res batch.Result) Document {
	doc := Document{
		BatchID: res.BatchID,
		Summary: Summary{
			Total:    res.Total(),
			Accepted: res.AcceptedCount(),
			Failed:   res.FailedCount(),
		},
		Accepted: make([]Accepted, 0, len(res.Accepted)),
		Failures: make([]Failure, 0, len(res.Failures)),
	}
	for _, n := range res.Accepted {
		doc.Accepted = append(doc.Accepted, accepted(n))
	}
	for _, f := range res.Failures {
		doc.Failures = append(doc.Failures, Failure{
			Index:  f.Index,
			ID:     f.ID,
			Kind:   f.Kind,
			Reason: f.Reason,
		})
	}
	return doc
}

func accepted(n record.Normalized) Accepted {
	return Accepted{
		Name:        n.Name,
		Email:       n.Email,
		Age:         n.Age,
		Balance:     n.Balance,
		Country:     n.Country,
		State:       n.State,
		CourseCode:  n.CourseCode,
		CourseTitle: n.CourseTitle,
		GPA:         n.GPA,
		StartDate:   n.StartDate.Format(validator.DateLayout),
		EndDate:     n.EndDate.Format(validator.DateLayout),
	}
}
