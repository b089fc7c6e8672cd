package leaktest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// recorder captures failures so the checker itself can be tested
type recorder struct {
	testing.TB
	failed bool
}

func (r *recorder) Helper()                           {}
func (r *recorder) Errorf(format string, args ...any) { r.failed = true }

func TestCheckNoGoroutineLeak_Clean(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		done := make(chan struct{})
		go func() { close(done) }()
		<-done
	})
}

func TestGoroutineChecker_WaitsForSlowExit(t *testing.T) {
	checker := NewGoroutineChecker(t)
	go func() { time.Sleep(100 * time.Millisecond) }()
	checker.Check(0)
}

func TestGoroutineChecker_ReportsLeak(t *testing.T) {
	stop := make(chan struct{})
	defer close(stop)

	r := &recorder{TB: t}
	checker := NewGoroutineChecker(r)
	checker.settle = 50 * time.Millisecond
	go func() { <-stop }()
	checker.Check(0)

	assert.True(t, r.failed)
}

func TestGoroutineChecker_Tolerance(t *testing.T) {
	stop := make(chan struct{})
	defer close(stop)

	r := &recorder{TB: t}
	checker := NewGoroutineChecker(r)
	checker.settle = 50 * time.Millisecond
	go func() { <-stop }()
	checker.Check(1)

	assert.False(t, r.failed)
}
