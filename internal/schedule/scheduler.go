// Package schedule runs named delayed callbacks, used for follow-up
// messages after button acknowledgements.
package schedule

import (
	"log"
	"sync"
	"time"
)

// Job is one pending callback. Cancel stops it if it has not fired.
type Job struct {
	cancel func()
}

func (j *Job) Cancel() {
	if j != nil && j.cancel != nil {
		j.cancel()
	}
}

// Scheduler tracks pending timers so shutdown can cancel them.
type Scheduler struct {
	mu      sync.Mutex
	timers  map[int]*time.Timer
	nextID  int
	stopped bool
}

func New() *Scheduler {
	return &Scheduler{timers: map[int]*time.Timer{}}
}

// After runs fn once the delay elapses, unless the job or the whole
// scheduler is cancelled first.
func (s *Scheduler) After(delay time.Duration, name string, fn func()) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return &Job{}
	}

	id := s.nextID
	s.nextID++
	timer := time.AfterFunc(delay, func() {
		s.mu.Lock()
		delete(s.timers, id)
		stopped := s.stopped
		s.mu.Unlock()
		if stopped {
			return
		}
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[schedule] task %s panicked: %v", name, r)
			}
		}()
		fn()
	})
	s.timers[id] = timer

	return &Job{cancel: func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if t, ok := s.timers[id]; ok {
			t.Stop()
			delete(s.timers, id)
		}
	}}
}

// Stop cancels every pending timer. The scheduler accepts no new work
// afterwards.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}

// Pending reports how many timers have not fired yet.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}
