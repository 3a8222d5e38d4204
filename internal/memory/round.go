package memory

import (
	"context"
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/looplab/fsm"

	"funhub/internal/notify"
	"funhub/internal/sched"
	"funhub/internal/scoring"
)

// Status is the externally visible round lifecycle.
type Status int

const (
	NotStarted Status = iota
	InProgress
	Over
)

// Internal lifecycle states. "resolving" is the window between the second
// card going face-up and the settle timer firing; externally it is still
// InProgress, but clicks are rejected until the pending pair resolves.
const (
	stateNotStarted = "notStarted"
	stateInProgress = "inProgress"
	stateResolving  = "resolving"
	stateOver       = "over"
)

const (
	tickInterval  = time.Second
	matchDelay    = 500 * time.Millisecond
	mismatchDelay = time.Second
)

// CardView is the presentation-facing projection of a card. Symbol is empty
// unless the card is pending or matched; hidden symbols never cross this
// boundary.
type CardView struct {
	Index   int
	Symbol  string
	Matched bool
	Pending bool
}

// Round owns the authoritative state of one memory game: the board, the
// pending pair, the clock and the scores. All methods must be called from a
// single goroutine; the scheduler's dispatch hook is expected to deliver
// timer callbacks on that same goroutine.
type Round struct {
	scheduler sched.Scheduler
	best      *scoring.BestScore
	sink      notify.Notifier
	rng       *rand.Rand
	pool      []string

	fsm *fsm.FSM

	board   *Board
	diff    Difficulty
	pending []int
	moves   int
	elapsed int
	score   int
	final   int

	tickTok   sched.Token
	settleTok sched.Token
}

// NewRound wires a round controller. A nil pool falls back to
// DefaultSymbols and a nil sink discards notifications.
func NewRound(scheduler sched.Scheduler, best *scoring.BestScore, sink notify.Notifier, rng *rand.Rand, pool []string) *Round {
	if pool == nil {
		pool = DefaultSymbols
	}
	if sink == nil {
		sink = notify.Discard{}
	}
	r := &Round{
		scheduler: scheduler,
		best:      best,
		sink:      sink,
		rng:       rng,
		pool:      pool,
	}
	r.fsm = fsm.NewFSM(
		stateNotStarted,
		fsm.Events{
			{Name: "start", Src: []string{stateNotStarted, stateInProgress, stateResolving, stateOver}, Dst: stateInProgress},
			{Name: "flipSecond", Src: []string{stateInProgress}, Dst: stateResolving},
			{Name: "resolved", Src: []string{stateResolving}, Dst: stateInProgress},
			{Name: "complete", Src: []string{stateResolving}, Dst: stateOver},
			{Name: "reset", Src: []string{stateNotStarted, stateInProgress, stateResolving, stateOver}, Dst: stateNotStarted},
		},
		fsm.Callbacks{},
	)
	return r
}

// Start begins a new round at the given difficulty. Any outstanding settle
// timer or clock tick from a previous round is cancelled before state
// mutates. A ConfigurationError from deck generation leaves the round
// untouched.
func (r *Round) Start(d Difficulty) error {
	board, err := Generate(d, r.pool, r.rng)
	if err != nil {
		return err
	}

	r.cancelTimers()
	r.board = board
	r.diff = d
	r.pending = r.pending[:0]
	r.moves = 0
	r.elapsed = 0
	r.score = 0
	r.final = 0
	_ = r.fsm.Event(context.Background(), "start")
	r.scheduleTick()
	return nil
}

// Reset abandons the round: timers are cancelled, the board is discarded
// and the status returns to NotStarted.
func (r *Round) Reset() {
	r.cancelTimers()
	r.board = nil
	r.pending = r.pending[:0]
	r.moves = 0
	r.elapsed = 0
	r.score = 0
	r.final = 0
	_ = r.fsm.Event(context.Background(), "reset")
}

// Click flips the card at index id. Clicks are silently dropped while the
// round is not in progress, while a resolution is outstanding, and on
// matched or already-pending cards. Flipping the second card of a pair
// counts a move and schedules the match evaluation after the settle delay:
// shorter for a match than for a mismatch, so a failed pair stays visible
// longer before flipping back.
func (r *Round) Click(id int) {
	if r.fsm.Current() != stateInProgress {
		return
	}
	if id < 0 || id >= r.board.Len() {
		return
	}
	if r.board.cards[id].Matched || slices.Contains(r.pending, id) {
		return
	}

	r.pending = append(r.pending, id)
	if len(r.pending) > 2 {
		panic(fmt.Sprintf("memory: pending set grew to %d cards", len(r.pending)))
	}
	if len(r.pending) < 2 {
		return
	}

	// Second card of the attempt: moves count attempts, not outcomes.
	r.moves++
	_ = r.fsm.Event(context.Background(), "flipSecond")

	delay := mismatchDelay
	if r.board.cards[r.pending[0]].Symbol == r.board.cards[r.pending[1]].Symbol {
		delay = matchDelay
	}
	r.settleTok = r.scheduler.Schedule(delay, r.resolve)
}

// resolve is the match evaluator, invoked by the settle timer.
func (r *Round) resolve() {
	if r.fsm.Current() != stateResolving {
		// Stale callback: the round was reset or restarted after the timer
		// was scheduled but before the scheduler could cancel it.
		return
	}
	if len(r.pending) != 2 {
		panic(fmt.Sprintf("memory: resolving with %d pending cards", len(r.pending)))
	}

	r.settleTok = 0
	a, b := r.pending[0], r.pending[1]
	r.pending = r.pending[:0]

	if r.board.cards[a].Symbol != r.board.cards[b].Symbol {
		_ = r.fsm.Event(context.Background(), "resolved")
		return
	}

	r.board.cards[a].Matched = true
	r.board.cards[b].Matched = true
	r.score += r.diff.MatchPoints()
	r.sink.Notify("Match!", fmt.Sprintf("You found a pair of %s", r.board.cards[a].Symbol), notify.Info)

	if r.board.AllMatched() {
		_ = r.fsm.Event(context.Background(), "complete")
		r.finish()
		return
	}
	_ = r.fsm.Event(context.Background(), "resolved")
}

// finish freezes the clock, computes the final score and reports the
// completed round.
func (r *Round) finish() {
	r.stopClock()
	r.final = FinalScore(r.diff, r.elapsed, r.moves)
	body := fmt.Sprintf("You finished in %s with %d moves. Score: %d", FormatTime(r.elapsed), r.moves, r.final)
	if r.best.Update(r.final) {
		body += ". New best score!"
	}
	r.sink.Notify("Game Complete!", body, notify.Success)
}

func (r *Round) scheduleTick() {
	r.tickTok = r.scheduler.Schedule(tickInterval, r.tick)
}

func (r *Round) tick() {
	switch r.fsm.Current() {
	case stateInProgress, stateResolving:
	default:
		return
	}
	r.elapsed++
	r.scheduleTick()
}

func (r *Round) stopClock() {
	if r.tickTok != 0 {
		r.scheduler.Cancel(r.tickTok)
		r.tickTok = 0
	}
}

func (r *Round) cancelTimers() {
	r.stopClock()
	if r.settleTok != 0 {
		r.scheduler.Cancel(r.settleTok)
		r.settleTok = 0
	}
}

// Status reports the external lifecycle state.
func (r *Round) Status() Status {
	switch r.fsm.Current() {
	case stateInProgress, stateResolving:
		return InProgress
	case stateOver:
		return Over
	default:
		return NotStarted
	}
}

// Cards returns the masked board view. Symbols are only populated for
// pending and matched cards.
func (r *Round) Cards() []CardView {
	if r.board == nil {
		return nil
	}
	views := make([]CardView, r.board.Len())
	for i := range views {
		card := r.board.cards[i]
		view := CardView{Index: i, Matched: card.Matched}
		view.Pending = slices.Contains(r.pending, i)
		if view.Matched || view.Pending {
			view.Symbol = card.Symbol
		}
		views[i] = view
	}
	return views
}

// Moves is the number of resolved or in-flight pair attempts.
func (r *Round) Moves() int { return r.moves }

// Elapsed is the round time in seconds, frozen once the round is over.
func (r *Round) Elapsed() int { return r.elapsed }

// Score is the live score accumulated per matched pair.
func (r *Round) Score() int { return r.score }

// Final is the completion score. Zero until the round is over.
func (r *Round) Final() int { return r.final }

// Best returns the persisted best score and whether one exists.
func (r *Round) Best() (int, bool) { return r.best.Value(), r.best.Recorded() }

// Difficulty returns the difficulty of the current round.
func (r *Round) Difficulty() Difficulty { return r.diff }
