// Package leaktest checks that tests give back the goroutines they start.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// settleTimeout bounds how long Check waits for goroutines to exit.
const settleTimeout = time.Second

// GoroutineChecker records a goroutine baseline
type GoroutineChecker struct {
	t      testing.TB
	before int
}

// NewGoroutineChecker records the current goroutine count.
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{t: t, before: runtime.NumGoroutine()}
}

// Check fails the test if more than tolerance goroutines outlive the baseline
// once settleTimeout has passed.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()
	after, ok := settle(g.before+tolerance, settleTimeout)
	if !ok {
		g.t.Errorf("goroutine leak: before=%d after=%d tolerance=%d", g.before, after, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and requires every goroutine it started to exit.
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// settle polls until at most target goroutines remain.
func settle(target int, timeout time.Duration) (int, bool) {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= target {
			return n, true
		}
		if time.Now().After(deadline) {
			return n, false
		}
		time.Sleep(10 * time.Millisecond)
	}
}
