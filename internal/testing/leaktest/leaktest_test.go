package leaktest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// recordingTB captures Errorf so a failing check can be asserted on
type recordingTB struct {
	testing.TB
	failed bool
}

func (r *recordingTB) Helper() {}

func (r *recordingTB) Errorf(string, ...any) { r.failed = true }

func TestChecker_NoLeak(t *testing.T) {
	c := New(t)
	done := make(chan struct{})
	go func() { close(done) }()
	<-done
	c.Check(0)
}

func TestChecker_ReportsLeak(t *testing.T) {
	rec := &recordingTB{TB: t}
	c := New(rec)

	stop := make(chan struct{})
	go func() { <-stop }()
	defer close(stop)

	c.Check(0)
	assert.True(t, rec.failed)
}
