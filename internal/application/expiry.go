package application

import (
	"sync"
	"time"
)

// Timer is the part of *time.Timer the scheduler uses.
type Timer interface {
	Stop() bool
}

// AfterFunc starts f after d, like time.AfterFunc.
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

type expiryJob struct {
	timer Timer
}

// ExpiryScheduler runs one deferred job per event. Cancelling stops the timer;
// a job that fires anyway must tolerate the event being gone.
type ExpiryScheduler struct {
	mu        sync.Mutex
	afterFunc AfterFunc
	jobs      map[string]*expiryJob
	stopped   bool
}

func NewExpiryScheduler(afterFunc AfterFunc) *ExpiryScheduler {
	if afterFunc == nil {
		afterFunc = realAfterFunc
	}
	return &ExpiryScheduler{afterFunc: afterFunc, jobs: make(map[string]*expiryJob)}
}

// Schedule runs fn for id after d, replacing any job already scheduled for id.
func (s *ExpiryScheduler) Schedule(id string, d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	if prev, ok := s.jobs[id]; ok {
		prev.timer.Stop()
	}
	job := &expiryJob{}
	// The callback blocks on mu until the job is registered below.
	job.timer = s.afterFunc(d, func() {
		s.mu.Lock()
		if s.jobs[id] != job {
			s.mu.Unlock()
			return
		}
		delete(s.jobs, id)
		s.mu.Unlock()
		fn()
	})
	s.jobs[id] = job
}

// Cancel stops the job for id and reports whether one was pending.
func (s *ExpiryScheduler) Cancel(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return false
	}
	job.timer.Stop()
	delete(s.jobs, id)
	return true
}

// Pending returns the number of scheduled jobs.
func (s *ExpiryScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

// Stop cancels every job and refuses new ones.
func (s *ExpiryScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	for id, job := range s.jobs {
		job.timer.Stop()
		delete(s.jobs, id)
	}
}
