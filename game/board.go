package game

import "strings"

// Board holds the piece at each square, indexed [x][y]. It is a value type:
// assigning a Board copies every cell.
type Board [Size][Size]Player

// StartingBoard returns the initial layout: Player2 fills rows 0 and 1,
// Player1 fills rows Size-2 and Size-1.
func StartingBoard() Board {
	var b Board
	for x := 0; x < Size; x++ {
		b[x][0], b[x][1] = Player2, Player2
		b[x][Size-2], b[x][Size-1] = Player1, Player1
	}
	return b
}

// At returns the cell value at pos. pos must be in bounds.
func (b *Board) At(pos Pos) Player {
	return b[pos.X][pos.Y]
}

func (b *Board) set(pos Pos, p Player) {
	b[pos.X][pos.Y] = p
}

// Count returns the number of cells holding p.
func (b *Board) Count(p Player) int {
	n := 0
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			if b[x][y] == p {
				n++
			}
		}
	}
	return n
}

// String renders the board row by row from y = 0, one character per cell.
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			switch b[x][y] {
			case Player1:
				sb.WriteByte('1')
			case Player2:
				sb.WriteByte('2')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseBoard is the inverse of String. Rows are separated by newlines,
// blank lines and surrounding spaces are ignored.
func ParseBoard(s string) (Board, error) {
	var b Board
	y := 0
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if y >= Size {
			return Board{}, errBoardShape(y + 1)
		}
		if len(line) != Size {
			return Board{}, errRowWidth(y, len(line))
		}
		for x, c := range []byte(line) {
			switch c {
			case '.':
			case '1':
				b[x][y] = Player1
			case '2':
				b[x][y] = Player2
			default:
				return Board{}, errBadCell(x, y, c)
			}
		}
		y++
	}
	if y != Size {
		return Board{}, errBoardShape(y)
	}
	return b, nil
}
