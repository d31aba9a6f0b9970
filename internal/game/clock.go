package game

import (
	"container/heap"
	"time"
)

// FrameDuration is the fixed simulation tick (60 TPS).
const FrameDuration = time.Second / 60

// Clock is the simulation's virtual time. It only moves when the Sim
// steps, so tests advance it instead of sleeping.
type Clock struct {
	epoch   time.Time
	elapsed time.Duration
}

// NewClock starts a clock whose wall reading begins at epoch.
func NewClock(epoch time.Time) *Clock {
	return &Clock{epoch: epoch}
}

// Now returns simulated time since start.
func (c *Clock) Now() time.Duration { return c.elapsed }

// Wall returns the wall-clock reading used for log timestamps.
func (c *Clock) Wall() time.Time { return c.epoch.Add(c.elapsed) }

func (c *Clock) advance(d time.Duration) { c.elapsed += d }

type task struct {
	at    time.Duration
	seq   uint64 // insertion order, breaks ties between equal deadlines
	every time.Duration
	fn    func()
}

type taskHeap []*task

func (h taskHeap) Len() int { return len(h) }
func (h taskHeap) Less(i, j int) bool {
	if h[i].at != h[j].at {
		return h[i].at < h[j].at
	}
	return h[i].seq < h[j].seq
}
func (h taskHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *taskHeap) Push(x any)   { *h = append(*h, x.(*task)) }
func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return t
}

// Scheduler is the deferred task queue. Tasks never run on their own;
// RunDue executes everything whose deadline has passed, in deadline order.
// Scheduled tasks cannot be cancelled.
type Scheduler struct {
	clock *Clock
	tasks taskHeap
	seq   uint64
}

// NewScheduler creates a queue bound to clock.
func NewScheduler(clock *Clock) *Scheduler {
	return &Scheduler{clock: clock}
}

// After runs fn once, d from now.
func (s *Scheduler) After(d time.Duration, fn func()) {
	s.push(&task{at: s.clock.Now() + d, fn: fn})
}

// Every runs fn every d, first at now+d. d must be positive.
func (s *Scheduler) Every(d time.Duration, fn func()) {
	if d <= 0 {
		return
	}
	s.push(&task{at: s.clock.Now() + d, every: d, fn: fn})
}

func (s *Scheduler) push(t *task) {
	s.seq++
	t.seq = s.seq
	heap.Push(&s.tasks, t)
}

// RunDue runs every task due at or before now and returns how many ran.
// Tasks scheduled by a running task are picked up in the same drain if
// they are already due.
func (s *Scheduler) RunDue() int {
	now := s.clock.Now()
	ran := 0
	for len(s.tasks) > 0 && s.tasks[0].at <= now {
		t := heap.Pop(&s.tasks).(*task)
		if t.every > 0 {
			s.push(&task{at: t.at + t.every, every: t.every, fn: t.fn})
		}
		t.fn()
		ran++
	}
	return ran
}

// Pending returns the number of queued tasks.
func (s *Scheduler) Pending() int { return len(s.tasks) }
