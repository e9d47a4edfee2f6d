// internal/timer/scheduler.go
package timer

import (
	"sort"

	"go-spline-defense/internal/types"
)

// TaskID identifies a scheduled task. Zero is never issued.
type TaskID uint64

// Func is the body of a task. Returning a positive duration re-arms the task after that many
// scaled seconds (a coroutine "yield WaitForSeconds"); returning zero or less finishes it.
type Func func() (again float64)

type task struct {
	id    TaskID
	owner types.EntityID
	due   float64
	seq   uint64
	fn    Func
	alive func() bool
}

// Scheduler runs tasks after a delay measured in scaled simulation time. It is driven by
// Advance once per frame with the already scaled delta, so a paused session (scale 0) freezes
// every pending task with its exact remaining time.
type Scheduler struct {
	now    float64
	nextID TaskID
	seq    uint64
	tasks  []*task
	byID   map[TaskID]*task
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		byID: make(map[TaskID]*task),
	}
}

// Now returns the accumulated scaled time.
func (s *Scheduler) Now() float64 {
	return s.now
}

// Len returns the number of pending tasks.
func (s *Scheduler) Len() int {
	return len(s.tasks)
}

// After runs fn once after delay scaled seconds.
func (s *Scheduler) After(delay float64, owner types.EntityID, fn func()) TaskID {
	return s.Loop(delay, owner, nil, func() float64 {
		fn()
		return 0
	})
}

// Loop schedules fn after delay and keeps re-arming it for as long as fn returns a positive
// duration. alive is checked right before every resumption; when it reports false the task
// ends without running, which is how coroutines bound to a removed entity self-terminate.
func (s *Scheduler) Loop(delay float64, owner types.EntityID, alive func() bool, fn Func) TaskID {
	s.nextID++
	t := &task{
		id:    s.nextID,
		owner: owner,
		fn:    fn,
		alive: alive,
	}
	s.arm(t, delay)
	s.byID[t.id] = t
	return t.id
}

func (s *Scheduler) arm(t *task, delay float64) {
	if delay < 0 {
		delay = 0
	}
	s.seq++
	t.due = s.now + delay
	t.seq = s.seq
	// вставка с сохранением порядка (due, seq)
	i := sort.Search(len(s.tasks), func(i int) bool {
		o := s.tasks[i]
		return o.due > t.due || (o.due == t.due && o.seq > t.seq)
	})
	s.tasks = append(s.tasks, nil)
	copy(s.tasks[i+1:], s.tasks[i:])
	s.tasks[i] = t
}

// Remaining returns the scaled time left before the task fires.
func (s *Scheduler) Remaining(id TaskID) (float64, bool) {
	t, ok := s.byID[id]
	if !ok {
		return 0, false
	}
	return t.due - s.now, true
}

// Cancel drops a pending task. Unknown ids are ignored.
func (s *Scheduler) Cancel(id TaskID) {
	if _, ok := s.byID[id]; !ok {
		return
	}
	delete(s.byID, id)
	s.removeWhere(func(t *task) bool { return t.id == id })
}

// CancelOwner drops every pending task bound to the entity.
func (s *Scheduler) CancelOwner(owner types.EntityID) {
	if owner.IsNone() {
		return
	}
	s.removeWhere(func(t *task) bool {
		if t.owner == owner {
			delete(s.byID, t.id)
			return true
		}
		return false
	})
}

func (s *Scheduler) removeWhere(match func(*task) bool) {
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if !match(t) {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = kept
}

// Advance moves scaled time forward by dt and runs every task that became due, in due order.
// Tasks scheduled by a running task with zero delay run within the same Advance call.
func (s *Scheduler) Advance(dt float64) {
	if dt > 0 {
		s.now += dt
	}
	for len(s.tasks) > 0 && s.tasks[0].due <= s.now {
		t := s.tasks[0]
		s.tasks[0] = nil
		s.tasks = s.tasks[1:]

		if t.alive != nil && !t.alive() {
			delete(s.byID, t.id)
			continue
		}
		again := t.fn()
		if _, stillPending := s.byID[t.id]; !stillPending {
			// задачу отменили изнутри её же тела
			continue
		}
		if again > 0 {
			s.arm(t, again)
			continue
		}
		delete(s.byID, t.id)
	}
}

// Clear drops every task and resets the clock.
func (s *Scheduler) Clear() {
	s.tasks = nil
	s.byID = make(map[TaskID]*task)
	s.now = 0
}
