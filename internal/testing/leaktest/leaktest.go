// Package leaktest checks that a test does not leave goroutines running.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// settleTimeout bounds how long Check waits for goroutines to exit
const settleTimeout = 2 * time.Second

// Checker remembers the goroutine count at the start of a test
type Checker struct {
	t      testing.TB
	before int
}

// New records the current goroutine count
func New(t testing.TB) *Checker {
	t.Helper()
	runtime.Gosched()
	return &Checker{t: t, before: runtime.NumGoroutine()}
}

// Check fails the test when more than tolerance extra goroutines are still
// running once settleTimeout has passed
func (c *Checker) Check(tolerance int) {
	c.t.Helper()

	deadline := time.Now().Add(settleTimeout)
	after := runtime.NumGoroutine()
	for after-c.before > tolerance && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
		runtime.Gosched()
		after = runtime.NumGoroutine()
	}

	if leaked := after - c.before; leaked > tolerance {
		c.t.Errorf("goroutine leak: before=%d after=%d leaked=%d tolerance=%d",
			c.before, after, leaked, tolerance)
	}
}
