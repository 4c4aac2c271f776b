package report

import (
	"bytes"
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	"github.com/dmitrymomot/recordkit/pkg/batch"
)

// Text writes the human-readable report for res to w.
func Text(w io.Writer, res batch.Result) error {
	doc := Build(res)

	var buf bytes.Buffer
	buf.WriteString("=== GOOD RECORDS ===\n")
	for _, a := range doc.Accepted {
		fmt.Fprintf(&buf, "- %s | %s | age=%d | %s | balance=$%.2f | %s -> %s",
			a.Name, a.Email, a.Age, location(a), a.Balance, a.StartDate, a.EndDate)
		if a.CourseCode != "" {
			fmt.Fprintf(&buf, " | course=%s (%s)", a.CourseCode, a.CourseTitle)
		}
		if a.GPA != nil {
			fmt.Fprintf(&buf, " | gpa=%.2f", *a.GPA)
		}
		buf.WriteByte('\n')
	}

	buf.WriteString("\n=== BAD RECORDS (reason) ===\n")
	for _, f := range doc.Failures {
		fmt.Fprintf(&buf, "- %s: %s\n", f.ID, f.Reason)
	}

	fmt.Fprintf(&buf, "\nSummary: %d good, %d bad, total %d\n",
		doc.Summary.Accepted, doc.Summary.Failed, doc.Summary.Total)

	_, err := w.Write(buf.Bytes())
	return err
}

// JSON writes the Document for res to w as indented JSON.
func JSON(w io.Writer, res batch.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Build(res))
}

func location(a Accepted) string {
	if a.State == "" {
		return a.Country
	}
	return a.Country + " " + a.State
}
