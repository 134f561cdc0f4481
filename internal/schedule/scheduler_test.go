package schedule_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/influenxers/coachbot/internal/schedule"
)

func TestAfterFires(t *testing.T) {
	s := schedule.New()
	defer s.Stop()

	done := make(chan struct{})
	s.After(10*time.Millisecond, "follow-up", func() { close(done) })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("callback never fired")
	}
	if s.Pending() != 0 {
		t.Errorf("fired timer should be removed, pending = %d", s.Pending())
	}
}

func TestStopCancelsPending(t *testing.T) {
	s := schedule.New()

	var fired atomic.Int32
	s.After(20*time.Millisecond, "a", func() { fired.Add(1) })
	s.After(20*time.Millisecond, "b", func() { fired.Add(1) })
	s.Stop()

	time.Sleep(60 * time.Millisecond)
	if n := fired.Load(); n != 0 {
		t.Fatalf("stopped scheduler ran %d callbacks", n)
	}
	if s.Pending() != 0 {
		t.Errorf("pending = %d after Stop", s.Pending())
	}
}

func TestJobCancel(t *testing.T) {
	s := schedule.New()
	defer s.Stop()

	var fired atomic.Int32
	job := s.After(20*time.Millisecond, "cancelled", func() { fired.Add(1) })
	job.Cancel()

	time.Sleep(60 * time.Millisecond)
	if fired.Load() != 0 {
		t.Fatal("cancelled job still ran")
	}
	if s.Pending() != 0 {
		t.Errorf("pending = %d after cancel", s.Pending())
	}
}

func TestAfterIgnoredOnceStopped(t *testing.T) {
	s := schedule.New()
	s.Stop()

	var fired atomic.Int32
	s.After(time.Millisecond, "late", func() { fired.Add(1) })

	time.Sleep(20 * time.Millisecond)
	if fired.Load() != 0 {
		t.Fatal("stopped scheduler accepted new work")
	}
}
