package corpus

import (
	"fmt"

	"github.com/fmtkit/bracefmt/pkg/format"
)

// Failure records one mismatching case, with enough detail to
// reproduce it by hand.
type Failure struct {
	Template string
	Got      string
	Want     string
}

func (f Failure) String() string {
	return fmt.Sprintf("%s: want %q, got %q", f.Template, f.Want, f.Got)
}

// Report summarizes one suite run.
type Report struct {
	Suite    string
	Total    int
	Failures []Failure
}

func (r Report) Failed() int { return len(r.Failures) }
func (r Report) OK() bool    { return len(r.Failures) == 0 }

// Run executes every case in the suite and collects mismatches. Cases
// naming an error code pass when the strict contract reports exactly
// that code.
func Run(s *Suite) Report {
	rep := Report{Suite: s.Name, Total: len(s.Cases)}
	for _, c := range s.Cases {
		f := format.Formatter{Lenient: c.Lenient}
		got, err := f.Format(c.Template, c.Args...)
		switch {
		case c.Error != "":
			code := "<no error>"
			if ferr, ok := err.(*format.Error); ok {
				code = ferr.Code.String()
			} else if err != nil {
				code = err.Error()
			}
			if code != c.Error {
				rep.Failures = append(rep.Failures, Failure{
					Template: c.Template, Got: code, Want: c.Error})
			}
		case err != nil:
			rep.Failures = append(rep.Failures, Failure{
				Template: c.Template, Got: "error: " + err.Error(), Want: c.Want})
		case got != c.Want:
			rep.Failures = append(rep.Failures, Failure{
				Template: c.Template, Got: got, Want: c.Want})
		}
	}
	return rep
}
