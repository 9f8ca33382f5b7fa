package gamemaster

import (
	"errors"
	"testing"

	"breakthrough/agent"
	"breakthrough/game"
)

func TestLocalEngineInit(t *testing.T) {
	engine := NewLocalEngine(3)
	gs, getUpdate := engine.Init()

	if gs == nil {
		t.Fatal("expected a GameState, got nil")
	}
	if gs.Turn() != game.Player1 || gs.MoveCount() != 0 {
		t.Errorf("expected a fresh game with Player1 to move, got turn=%s moves=%d", gs.Turn(), gs.MoveCount())
	}
	if gs.Seed() != 3 {
		t.Errorf("expected seed 3, got %d", gs.Seed())
	}

	// No moves have been played yet
	if u, ok := getUpdate(); ok {
		t.Errorf("expected no update yet, got %+v", u)
	}
}

func TestLocalEnginePlay_ValidMove(t *testing.T) {
	engine := NewLocalEngine(0)
	gs, getUpdate := engine.Init()

	move := game.Move{From: game.Pos{X: 0, Y: 5}, To: game.Pos{X: 0, Y: 4}}
	if err := engine.Play(move); err != nil {
		t.Fatalf("expected no error for a valid move, got %v", err)
	}

	u, ok := getUpdate()
	if !ok {
		t.Fatal("expected an update after playing a move, got none")
	}
	if u.Move != move || u.Undone {
		t.Errorf("expected played move %s, got %+v", move, u)
	}
	if u.State.At(move.To) != game.Player1 || u.State.At(move.From) != game.Empty {
		t.Errorf("expected the piece to have moved:\n%s", u.State)
	}
	if u.State.Turn() != game.Player2 || u.State.MoveCount() != 1 {
		t.Errorf("expected Player2 to move after one move, got turn=%s moves=%d", u.State.Turn(), u.State.MoveCount())
	}
	if u.Hash != u.State.Hash() {
		t.Errorf("update hash does not match its state")
	}

	// The state returned by Init is a copy
	if gs.MoveCount() != 0 {
		t.Errorf("expected the initial copy to be untouched, got %d moves", gs.MoveCount())
	}
	if _, ok := getUpdate(); ok {
		t.Error("expected a single update per move")
	}
}

func TestLocalEnginePlay_IllegalMove(t *testing.T) {
	engine := NewLocalEngine(0)

	move := game.Move{From: game.Pos{X: 0, Y: 5}, To: game.Pos{X: 0, Y: 4}}
	if err := engine.Play(move); !errors.Is(err, ErrNotStarted) {
		t.Errorf("expected ErrNotStarted before Init, got %v", err)
	}

	_, getUpdate := engine.Init()
	twoRows := game.Move{From: game.Pos{X: 0, Y: 5}, To: game.Pos{X: 0, Y: 3}}
	if err := engine.Play(twoRows); !errors.Is(err, game.ErrIllegalMove) {
		t.Errorf("expected ErrIllegalMove, got %v", err)
	}
	opponent := game.Move{From: game.Pos{X: 0, Y: 1}, To: game.Pos{X: 0, Y: 2}}
	if err := engine.Play(opponent); !errors.Is(err, game.ErrIllegalMove) {
		t.Errorf("expected ErrIllegalMove for the opponent's piece, got %v", err)
	}

	if engine.State().MoveCount() != 0 {
		t.Error("expected rejected moves to leave the state untouched")
	}
	if _, ok := getUpdate(); ok {
		t.Error("expected no update for rejected moves")
	}
}

func TestLocalEnginePlay_GameOver(t *testing.T) {
	engine := NewLocalEngine(0)
	_, getUpdate := engine.Init()

	board, err := game.ParseBoard(`
		.......
		.......
		1......
		.......
		.......
		......2
		.......`)
	if err != nil {
		t.Fatal(err)
	}
	engine.state = game.FromBoard(board, game.Player1, 20, 0) // force internal state

	moves := []game.Move{
		{From: game.Pos{X: 0, Y: 2}, To: game.Pos{X: 0, Y: 1}},
		{From: game.Pos{X: 6, Y: 5}, To: game.Pos{X: 6, Y: 6}},
	}
	for _, m := range moves {
		if err := engine.Play(m); err != nil {
			t.Fatalf("did not expect error for %s, got %v", m, err)
		}
		if _, ok := getUpdate(); !ok {
			t.Fatalf("expected an update for %s", m)
		}
	}
	// Player2 reached its goal row first
	if w := engine.State().Winner(); w != game.Player2 {
		t.Fatalf("expected Player2 to have won, got %s", w)
	}

	err = engine.Play(game.Move{From: game.Pos{X: 0, Y: 1}, To: game.Pos{X: 0, Y: 0}})
	if !errors.Is(err, game.ErrGameOver) {
		t.Errorf("expected ErrGameOver, got %v", err)
	}
	if _, err := engine.Step(agent.NewRandom()); !errors.Is(err, game.ErrGameOver) {
		t.Errorf("expected ErrGameOver from Step, got %v", err)
	}
}

func TestLocalEngineUndoRedo(t *testing.T) {
	engine := NewLocalEngine(0)
	initial, getUpdate := engine.Init()

	if err := engine.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("expected ErrNothingToUndo, got %v", err)
	}

	first := game.Move{From: game.Pos{X: 2, Y: 5}, To: game.Pos{X: 3, Y: 4}}
	second := game.Move{From: game.Pos{X: 4, Y: 1}, To: game.Pos{X: 4, Y: 2}}
	for _, m := range []game.Move{first, second} {
		if err := engine.Play(m); err != nil {
			t.Fatalf("play %s: %v", m, err)
		}
	}
	afterFirst := initial.Clone()
	if _, err := afterFirst.Apply(first); err != nil {
		t.Fatal(err)
	}

	if err := engine.Undo(); err != nil {
		t.Fatal(err)
	}
	if engine.State().Hash() != afterFirst.Hash() {
		t.Error("expected undo to restore the position after the first move")
	}
	if err := engine.Undo(); err != nil {
		t.Fatal(err)
	}
	if engine.State().Hash() != initial.Hash() {
		t.Error("expected two undos to restore the initial position")
	}

	if err := engine.Redo(); err != nil {
		t.Fatal(err)
	}
	if engine.State().Hash() != afterFirst.Hash() {
		t.Error("expected redo to replay the first move")
	}

	var last Update
	count := 0
	for u, ok := getUpdate(); ok; u, ok = getUpdate() {
		last = u
		count++
	}
	if count != 5 {
		t.Errorf("expected 5 updates (2 plays, 2 undos, 1 redo), got %d", count)
	}
	if last.Move != first || last.Undone {
		t.Errorf("expected the redo of %s as last update, got %+v", first, last)
	}

	// A new move discards what could still be redone
	other := game.Move{From: game.Pos{X: 0, Y: 1}, To: game.Pos{X: 0, Y: 2}}
	if err := engine.Play(other); err != nil {
		t.Fatal(err)
	}
	if err := engine.Redo(); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("expected ErrNothingToRedo, got %v", err)
	}
}

func TestLocalEngineUndo_Capture(t *testing.T) {
	engine := NewLocalEngine(0)
	engine.Init()

	board, err := game.ParseBoard(`
		2......
		.......
		.2.....
		1......
		.......
		.......
		......1`)
	if err != nil {
		t.Fatal(err)
	}
	engine.state = game.FromBoard(board, game.Player1, 8, 0)
	before := engine.State()

	capture := game.Move{From: game.Pos{X: 0, Y: 3}, To: game.Pos{X: 1, Y: 2}}
	if err := engine.Play(capture); err != nil {
		t.Fatal(err)
	}
	if n := engine.State().Pieces(game.Player2); n != 1 {
		t.Errorf("expected Player2 to have 1 piece after the capture, got %d", n)
	}

	if err := engine.Undo(); err != nil {
		t.Fatal(err)
	}
	after := engine.State()
	if after.Hash() != before.Hash() || after.Pieces(game.Player2) != 2 {
		t.Errorf("expected undo to restore the captured piece:\n%s", after)
	}
}

func TestLocalEngineStep(t *testing.T) {
	play := func() []game.Move {
		engine := NewLocalEngine(21)
		engine.Init()
		agents := []agent.Agent{agent.NewClever(), agent.NewRandom()}
		var moves []game.Move
		for i := 0; i < 8; i++ {
			move, err := engine.Step(agents[i%2])
			if err != nil {
				t.Fatalf("step %d: %v", i, err)
			}
			moves = append(moves, move)
		}
		return moves
	}

	a, b := play(), play()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("expected the same seed to give the same moves, differ at %d: %s vs %s", i, a[i], b[i])
		}
	}
}

func TestLocalEngine_IdenticalInitStates(t *testing.T) {
	state1, _ := NewLocalEngine(5).Init()
	state2, _ := NewLocalEngine(5).Init()

	if state1 == state2 {
		t.Error("expected distinct copies")
	}
	if state1.Hash() != state2.Hash() || state1.Random().Next(1000) != state2.Random().Next(1000) {
		t.Error("expected the same initial state configuration, got differences")
	}
}
