package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"turfbot/internal/domain/entities"
	"turfbot/internal/domain/view"
	"turfbot/internal/infrastructure/memory"
	"turfbot/internal/ports/output"
)

type sentMessage struct {
	ChannelID string
	View      view.View
}

type fakePlatform struct {
	mu        sync.Mutex
	next      int
	sent      []sentMessage
	edits     map[entities.Location][]view.View
	deleted   []entities.Location
	sendErr   error
	editErr   error
	fetchErr  map[entities.Location]error
	deleteErr map[entities.Location]error
	admins    map[string]bool
	adminErr  error
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		edits:     make(map[entities.Location][]view.View),
		fetchErr:  make(map[entities.Location]error),
		deleteErr: make(map[entities.Location]error),
		admins:    make(map[string]bool),
	}
}

func (p *fakePlatform) SendMessage(_ context.Context, channelID string, v view.View) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.sendErr != nil {
		return "", p.sendErr
	}
	p.next++
	p.sent = append(p.sent, sentMessage{ChannelID: channelID, View: v})
	return fmt.Sprintf("m%d", p.next), nil
}

func (p *fakePlatform) EditMessage(_ context.Context, loc entities.Location, v view.View) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.editErr != nil {
		return p.editErr
	}
	p.edits[loc] = append(p.edits[loc], v)
	return nil
}

func (p *fakePlatform) DeleteMessage(_ context.Context, loc entities.Location) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.deleteErr[loc]; err != nil {
		return err
	}
	p.deleted = append(p.deleted, loc)
	return nil
}

func (p *fakePlatform) FetchMessage(_ context.Context, loc entities.Location) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.fetchErr[loc]
}

func (p *fakePlatform) IsAdmin(_ context.Context, _, userID string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.adminErr != nil {
		return false, p.adminErr
	}
	return p.admins[userID], nil
}

func (p *fakePlatform) lastEdit(loc entities.Location) (view.View, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	vs := p.edits[loc]
	if len(vs) == 0 {
		return view.View{}, false
	}
	return vs[len(vs)-1], true
}

func (p *fakePlatform) editCount(loc entities.Location) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.edits[loc])
}

type fakeJournal struct {
	mu      sync.Mutex
	entries []output.JournalEntry
	err     error
}

func (j *fakeJournal) Record(_ context.Context, e output.JournalEntry) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.err != nil {
		return j.err
	}
	j.entries = append(j.entries, e)
	return nil
}

func (j *fakeJournal) kinds() []output.JournalKind {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]output.JournalKind, 0, len(j.entries))
	for _, e := range j.entries {
		out = append(out, e.Kind)
	}
	return out
}

// manualTimers hands out timers that only fire when told to.
type manualTimers struct {
	mu     sync.Mutex
	timers []*manualTimer
}

type manualTimer struct {
	d       time.Duration
	f       func()
	stopped bool
}

func (t *manualTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

func (m *manualTimers) AfterFunc(d time.Duration, f func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &manualTimer{d: d, f: f}
	m.timers = append(m.timers, t)
	return t
}

// fire runs timer i even if it was stopped, the way a timer that already
// started can still run after Stop.
func (m *manualTimers) fire(i int) {
	m.mu.Lock()
	t := m.timers[i]
	m.mu.Unlock()
	t.f()
}

func (m *manualTimers) get(i int) *manualTimer {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.timers[i]
}

func (m *manualTimers) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.timers)
}

func keyOnly(key string, _ map[string]any) string { return key }

type harness struct {
	store    *memory.EventStore
	platform *fakePlatform
	journal  *fakeJournal
	timers   *manualTimers
	sched    *ExpiryScheduler
	svc      *EventService
	now      time.Time
}

func newHarness() *harness {
	h := &harness{
		store:    memory.NewEventStore(),
		platform: newFakePlatform(),
		journal:  &fakeJournal{},
		timers:   &manualTimers{},
		now:      time.Date(2026, 3, 6, 18, 0, 0, 0, time.UTC),
	}
	h.sched = NewExpiryScheduler(h.timers.AfterFunc)
	h.svc = NewEventService(h.store, h.platform, view.NewRenderer(keyOnly, ""),
		WithScheduler(h.sched),
		WithJournal(h.journal),
		WithClock(func() time.Time { return h.now }),
	)
	return h
}
