package gradcheck

import (
	"github.com/born-ml/jet/internal/jet"
	"github.com/born-ml/jet/internal/parallel"
)

// Case is one named gradient check.
type Case[T jet.Float] struct {
	Name      string
	F         Func[T]
	Point     []T
	Reference []T // gradient under test; nil compares against finite differences
}

// Result pairs a case name with its report or evaluation error.
type Result struct {
	Name   string
	Report Report
	Err    error // evaluation failure, not a tolerance failure
}

// Failed reports whether the case errored or had mismatches.
func (r Result) Failed() bool {
	return r.Err != nil || !r.Report.OK()
}

// CheckAll runs every case, concurrently as allowed by cfg.Parallel, and returns
// the results in input order. Each case builds its own jets, so cases share no state.
func CheckAll[T jet.Float](cases []Case[T], cfg Config) []Result {
	return parallel.Map(len(cases), func(i int) Result {
		c := cases[i]
		res := Result{Name: c.Name}
		if c.Reference == nil {
			res.Report, res.Err = CheckNumerical(c.F, c.Point, cfg)
		} else {
			res.Report, res.Err = Check(c.F, c.Point, c.Reference, cfg)
		}
		return res
	}, cfg.Parallel)
}

// Failures filters results down to the failed ones.
func Failures(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if r.Failed() {
			out = append(out, r)
		}
	}
	return out
}
