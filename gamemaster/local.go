package gamemaster

import (
	"errors"
	"fmt"
	"sync"

	"breakthrough/agent"
	"breakthrough/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

var (
	ErrNotStarted    = errors.New("game not initialized")
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

type played struct {
	move    game.Move
	capture bool
}

type localEngine struct {
	mu      sync.Mutex
	seed    int
	state   *game.GameState
	history []played // Applied moves, oldest first
	undone  []played // Taken back moves, most recent last
	updates []Update
}

func NewLocalEngine(seed int) *localEngine {
	return &localEngine{seed: seed}
}

// Init starts a new game and returns a copy of its initial state.
func (e *localEngine) Init() (*game.GameState, UpdateGetter) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state = game.NewGame(e.seed)
	e.history = nil
	e.undone = nil
	e.updates = nil

	log.Info().Msgf("new game with seed %d", e.state.Seed())

	return e.state.Clone(), func() (Update, bool) {
		e.mu.Lock()
		defer e.mu.Unlock()
		if len(e.updates) == 0 {
			return Update{}, false
		}
		u := e.updates[0]
		e.updates = e.updates[1:]
		return u, true
	}
}

// State returns a copy of the current state.
func (e *localEngine) State() *game.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == nil {
		return nil
	}
	return e.state.Clone()
}

func (e *localEngine) Play(move game.Move) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.play(move)
}

func (e *localEngine) play(move game.Move) error {
	if e.state == nil {
		return ErrNotStarted
	}
	if e.state.Winner() != game.NoPlayer {
		return fmt.Errorf("%w: %s has won", game.ErrGameOver, e.state.Winner())
	}

	if !slices.Contains(e.state.PossibleMoves(), move) {
		return fmt.Errorf("%w: %s", game.ErrIllegalMove, move)
	}

	capture, err := e.state.Apply(move)
	if err != nil {
		return err
	}
	e.history = append(e.history, played{move: move, capture: capture})
	e.undone = nil
	e.publish(move, false)

	if w := e.state.Winner(); w != game.NoPlayer {
		log.Info().Msgf("%s wins after %d moves", w, e.state.MoveCount())
	}
	return nil
}

// Step asks a for a move on a copy of the current state and plays it. The
// engine stays locked while a decides, including while a human agent waits
// for input.
func (e *localEngine) Step(a agent.Agent) (game.Move, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == nil {
		return game.Move{}, ErrNotStarted
	}
	if e.state.Winner() != game.NoPlayer {
		return game.Move{}, fmt.Errorf("%w: %s has won", game.ErrGameOver, e.state.Winner())
	}

	view := e.state.Clone()
	move := a.ChooseMove(view)
	// Keep the game's single random stream in step with the agent's draws.
	e.state = adoptRandom(e.state, view)

	if err := e.play(move); err != nil {
		return move, fmt.Errorf("%s agent: %w", a.Kind(), err)
	}
	return move, nil
}

func adoptRandom(state, view *game.GameState) *game.GameState {
	if state.Hash() != view.Hash() {
		panic("agent changed the position it was asked to evaluate")
	}
	return view
}

func (e *localEngine) Undo() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == nil {
		return ErrNotStarted
	}
	if len(e.history) == 0 {
		return ErrNothingToUndo
	}

	last := e.history[len(e.history)-1]
	e.history = e.history[:len(e.history)-1]
	e.state.Undo(last.move, last.capture)
	e.undone = append(e.undone, last)
	e.publish(last.move, true)

	log.Debug().Msgf("took back %s", last.move)
	return nil
}

func (e *localEngine) Redo() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == nil {
		return ErrNotStarted
	}
	if len(e.undone) == 0 {
		return ErrNothingToRedo
	}

	next := e.undone[len(e.undone)-1]
	undone := slices.Clone(e.undone[:len(e.undone)-1])
	if err := e.play(next.move); err != nil {
		return err
	}
	e.undone = undone
	return nil
}

func (e *localEngine) publish(move game.Move, undone bool) {
	e.updates = append(e.updates, Update{
		Move:   move,
		Undone: undone,
		State:  e.state.Clone(),
		Hash:   e.state.Hash(),
	})
}
