package laws

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"pgregory.net/rapid"
)

// Run checks every law as a subtest of t.
func Run(t *testing.T, laws ...[]Law) {
	t.Helper()
	for _, group := range laws {
		for _, l := range group {
			t.Run(l.Name, func(t *testing.T) {
				rapid.Check(t, l.Check)
			})
		}
	}
}

// Result is the verdict for one law.
type Result struct {
	Law      string        `json:"law" yaml:"law"`
	Passed   bool          `json:"passed" yaml:"passed"`
	Skipped  bool          `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Message  string        `json:"message,omitempty" yaml:"message,omitempty"`
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Report collects the verdicts of a law suite.
type Report struct {
	Suite   string   `json:"suite" yaml:"suite"`
	Results []Result `json:"results" yaml:"results"`
}

// Passed reports whether no law failed.
func (r Report) Passed() bool {
	return r.Failures() == 0
}

// Failures counts the laws that failed.
func (r Report) Failures() int {
	n := 0
	for _, res := range r.Results {
		if !res.Passed && !res.Skipped {
			n++
		}
	}
	return n
}

// Evaluate checks every law outside of go test and records a verdict per
// law. The number of checks follows rapid's own settings.
func Evaluate(suite string, laws ...[]Law) Report {
	report := Report{Suite: suite}
	for _, group := range laws {
		for _, l := range group {
			report.Results = append(report.Results, evaluate(l))
		}
	}
	return report
}

func evaluate(l Law) Result {
	rec := &recorder{name: l.Name}
	start := time.Now()
	rec.run(func() { rapid.Check(rec, l.Check) })
	return Result{
		Law:      l.Name,
		Passed:   !rec.Failed(),
		Skipped:  rec.skipped,
		Message:  strings.TrimSpace(rec.log.String()),
		Duration: time.Since(start),
	}
}

// errAbort unwinds a recorder after FailNow or SkipNow.
var errAbort = errors.New("laws: check aborted")

// recorder is a rapid.TB that collects output instead of reporting to a
// testing.T.
type recorder struct {
	mu      sync.Mutex
	name    string
	log     strings.Builder
	failed  bool
	skipped bool
}

func (r *recorder) run(fn func()) {
	defer func() {
		if v := recover(); v != nil && v != errAbort {
			panic(v)
		}
	}()
	fn()
}

func (r *recorder) Helper()      {}
func (r *recorder) Name() string { return r.name }

func (r *recorder) Log(args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(&r.log, args...)
}

func (r *recorder) Logf(format string, args ...any) {
	r.Log(fmt.Sprintf(format, args...))
}

func (r *recorder) Error(args ...any) {
	r.Log(args...)
	r.Fail()
}

func (r *recorder) Errorf(format string, args ...any) {
	r.Logf(format, args...)
	r.Fail()
}

func (r *recorder) Fatal(args ...any) {
	r.Error(args...)
	r.FailNow()
}

func (r *recorder) Fatalf(format string, args ...any) {
	r.Errorf(format, args...)
	r.FailNow()
}

func (r *recorder) Skip(args ...any) {
	r.Log(args...)
	r.SkipNow()
}

func (r *recorder) Skipf(format string, args ...any) {
	r.Logf(format, args...)
	r.SkipNow()
}

func (r *recorder) SkipNow() {
	r.mu.Lock()
	r.skipped = true
	r.mu.Unlock()
	panic(errAbort)
}

func (r *recorder) Fail() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failed = true
}

func (r *recorder) FailNow() {
	r.Fail()
	panic(errAbort)
}

func (r *recorder) Failed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failed
}
