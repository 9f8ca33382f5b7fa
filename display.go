package main

import (
	"fmt"
	"io"
	"strings"

	"breakthrough/agent"
	"breakthrough/experiments/metrics"
	"breakthrough/game"
	"breakthrough/gamemaster"

	"github.com/muesli/termenv"
)

type display struct {
	out *termenv.Output
}

func newDisplay(w io.Writer) *display {
	return &display{out: termenv.NewOutput(w)}
}

func (d *display) println(s string) {
	fmt.Fprintln(d.out, s)
}

func (d *display) piece(p game.Player) string {
	switch p {
	case game.Player1:
		return d.out.String("1").Foreground(termenv.ANSIRed).Bold().String()
	case game.Player2:
		return d.out.String("2").Foreground(termenv.ANSIBlue).Bold().String()
	default:
		return d.out.String(".").Faint().String()
	}
}

func (d *display) board(state *game.GameState) {
	var sb strings.Builder
	sb.WriteString("  ")
	for x := 0; x < game.Size; x++ {
		fmt.Fprintf(&sb, " %d", x)
	}
	sb.WriteByte('\n')
	for y := 0; y < game.Size; y++ {
		fmt.Fprintf(&sb, "%d ", y)
		for x := 0; x < game.Size; x++ {
			sb.WriteByte(' ')
			sb.WriteString(d.piece(state.At(game.Pos{X: x, Y: y})))
		}
		sb.WriteByte('\n')
	}
	fmt.Fprint(d.out, sb.String())
}

func (d *display) move(u gamemaster.Update) {
	verb, mover := "plays", u.State.Turn().Opponent()
	if u.Undone {
		verb, mover = "takes back", u.State.Turn()
	}
	d.println(fmt.Sprintf("move %d: %s %s %s", u.State.MoveCount(), mover, verb, u.Move))
	d.board(u.State)
}

func (d *display) prompt(p game.Player) {
	d.println(fmt.Sprintf("%s to move (x1 y1 x2 y2):", p))
}

func (d *display) winner(p game.Player, kind agent.Kind) {
	line := fmt.Sprintf("%s (%s) wins", p, kind)
	d.println(d.out.String(line).Bold().String())
}

func (d *display) summary(s metrics.Summary) {
	p1, p2 := s.Player1, s.Player2
	d.println(d.out.String(fmt.Sprintf("%s won %d, %s won %d", p1.Agent, p1.Wins, p2.Agent, p2.Wins)).Bold().String())
	d.println(fmt.Sprintf("%s used %.1f ms/move, %s used %.1f ms/move", p1.Agent, p1.MeanMoveMs, p2.Agent, p2.MeanMoveMs))
}
