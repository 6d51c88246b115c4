// Package tour implements the scripted product tour: an ordered list of timed
// steps played automatically or navigated by hand.
//
// Player is a pure state machine. Time only moves when a clock collaborator
// calls Tick, so the same machine runs under a browser refresh, a terminal
// ticker or a test calling Tick(100) in a loop.
package tour

import (
	"errors"
	"fmt"
)

var ErrStepOutOfRange = errors.New("step index out of range")

// State is a read-only snapshot of a Player.
type State struct {
	Index     int  `json:"index"`
	ElapsedMs int  `json:"elapsedMs"`
	Playing   bool `json:"playing"`
}

// Player drives a tour through its steps. It is not safe for concurrent use;
// a single clock must serialize calls.
type Player struct {
	steps   []Step
	index   int
	elapsed int
	playing bool
}

// NewPlayer returns a paused player at the first step.
func NewPlayer(steps []Step) (*Player, error) {
	if err := validateSteps(steps); err != nil {
		return nil, err
	}
	cp := make([]Step, len(steps))
	copy(cp, steps)
	return &Player{steps: cp}, nil
}

// Restore rebuilds a player from a snapshot, e.g. one carried in a URL.
func Restore(steps []Step, st State) (*Player, error) {
	p, err := NewPlayer(steps)
	if err != nil {
		return nil, err
	}
	if st.Index < 0 || st.Index >= len(steps) {
		return nil, fmt.Errorf("%w: %d", ErrStepOutOfRange, st.Index)
	}
	if st.ElapsedMs < 0 || st.ElapsedMs >= steps[st.Index].DurationMs {
		return nil, fmt.Errorf("elapsed %dms outside step %q", st.ElapsedMs, steps[st.Index].ID)
	}
	p.index = st.Index
	p.elapsed = st.ElapsedMs
	p.playing = st.Playing
	return p, nil
}

func (p *Player) State() State {
	return State{Index: p.index, ElapsedMs: p.elapsed, Playing: p.playing}
}

func (p *Player) Steps() []Step {
	cp := make([]Step, len(p.steps))
	copy(cp, p.steps)
	return cp
}

func (p *Player) Len() int { return len(p.steps) }

func (p *Player) Current() Step { return p.steps[p.index] }

func (p *Player) Playing() bool { return p.playing }

// Play resumes from the current position. Elapsed time is kept.
func (p *Player) Play() { p.playing = true }

func (p *Player) Pause() { p.playing = false }

func (p *Player) Toggle() { p.playing = !p.playing }

// Tick advances the clock by deltaMs while playing. Reaching the end of a step
// moves to the next one with elapsed reset; finishing the last step wraps to
// the first and pauses, so the tour plays once per Play.
func (p *Player) Tick(deltaMs int) {
	if !p.playing || deltaMs <= 0 {
		return
	}
	p.elapsed += deltaMs
	if p.elapsed < p.steps[p.index].DurationMs {
		return
	}
	p.elapsed = 0
	if p.index == len(p.steps)-1 {
		p.index = 0
		p.playing = false
		return
	}
	p.index++
}

// GoToStep jumps to step i, resetting progress and pausing. An index outside
// the tour is a caller bug and leaves the player untouched.
func (p *Player) GoToStep(i int) error {
	if i < 0 || i >= len(p.steps) {
		return fmt.Errorf("%w: %d (tour has %d steps)", ErrStepOutOfRange, i, len(p.steps))
	}
	p.index = i
	p.elapsed = 0
	p.playing = false
	return nil
}

func (p *Player) Next() {
	_ = p.GoToStep((p.index + 1) % len(p.steps))
}

func (p *Player) Previous() {
	_ = p.GoToStep((p.index - 1 + len(p.steps)) % len(p.steps))
}

// Progress returns how much of the current step has elapsed, in percent.
func (p *Player) Progress() float64 {
	return float64(p.elapsed) / float64(p.steps[p.index].DurationMs) * 100
}

// Remaining returns the whole seconds left in the current step, rounded up.
func (p *Player) Remaining() int {
	left := p.steps[p.index].DurationMs - p.elapsed
	return (left + 999) / 1000
}
