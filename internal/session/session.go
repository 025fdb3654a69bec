// Package session serialises interactive edits and generation steps for a
// single board. Front-ends enqueue commands from their input handlers and call
// Update once per frame; nothing here is safe for concurrent use.
package session

import (
	"life-ca/internal/sims/conway"
	"life-ca/pkg/life"
)

// Clock decides when the next generation is due.
type Clock interface {
	ShouldStep() bool
}

// Command is an edit applied to the session between generations.
type Command func(s *Session)

// Session owns a board, its pause state and the pending command queue.
type Session struct {
	board    *conway.Life
	clock    Clock
	queue    []Command
	paused   bool
	stepOnce bool
	selected int
}

// New wraps board. A nil clock makes every Update a tick.
func New(board *conway.Life, clock Clock) *Session {
	return &Session{board: board, clock: clock}
}

// Board returns the wrapped board for rendering.
func (s *Session) Board() *conway.Life { return s.board }

// Paused reports whether periodic stepping is suspended.
func (s *Session) Paused() bool { return s.paused }

// Pending returns the number of queued commands.
func (s *Session) Pending() int { return len(s.queue) }

// Selected returns the pattern used by StampSelected.
func (s *Session) Selected() life.Pattern { return life.Patterns()[s.selected] }

// Enqueue schedules cmd for the next Update.
func (s *Session) Enqueue(cmd Command) {
	if cmd == nil {
		return
	}
	s.queue = append(s.queue, cmd)
}

// Update applies queued commands in order and then advances the board by at
// most one generation: when a single step was requested, or when the session
// is running and the clock says a tick is due. It reports whether a step ran.
func (s *Session) Update() bool {
	s.drain()
	due := s.clock == nil || s.clock.ShouldStep()
	if !s.stepOnce && (s.paused || !due) {
		return false
	}
	s.stepOnce = false
	s.board.Step()
	return true
}

func (s *Session) drain() {
	// commands may enqueue further commands; those run on the next Update
	pending := s.queue
	s.queue = nil
	for _, cmd := range pending {
		cmd(s)
	}
}

// ToggleCell flips one cell.
func ToggleCell(c life.Coord) Command {
	return func(s *Session) { s.board.Toggle(c) }
}

// StampPattern places p anchored at c.
func StampPattern(p life.Pattern, c life.Coord) Command {
	return func(s *Session) { s.board.Stamp(p, c) }
}

// StampSelected places the currently selected pattern anchored at c.
func StampSelected(c life.Coord) Command {
	return func(s *Session) { s.board.Stamp(s.Selected(), c) }
}

// SelectNext cycles the stamp selection through the pattern library.
func SelectNext() Command {
	return func(s *Session) { s.selected = (s.selected + 1) % len(life.Patterns()) }
}

// Select picks the stamp pattern by library index. Out-of-range indices are ignored.
func Select(i int) Command {
	return func(s *Session) {
		if i >= 0 && i < len(life.Patterns()) {
			s.selected = i
		}
	}
}

// TogglePause flips between running and paused.
func TogglePause() Command {
	return func(s *Session) { s.paused = !s.paused }
}

// Play resumes periodic stepping.
func Play() Command {
	return func(s *Session) { s.paused = false }
}

// StepOnce advances exactly one generation on the next Update, even when paused.
func StepOnce() Command {
	return func(s *Session) { s.stepOnce = true }
}

// Clear kills every cell.
func Clear() Command {
	return func(s *Session) { s.board.Clear() }
}

// Reset re-seeds the board.
func Reset(seed int64) Command {
	return func(s *Session) {
		s.board.Reset(seed)
		s.stepOnce = false
	}
}
