package browser

import (
	"github.com/alexisbeaulieu97/elemental/internal/element"
	"github.com/alexisbeaulieu97/elemental/internal/value"
)

const (
	gridColumns = 18
	// Rows 1 to 7 are the periods; the detached f-block rows sit below with
	// one blank row in between.
	gridRows      = 10
	lanthanideRow = 9
	actinideRow   = 10
	firstFColumn  = 4
)

type cell struct {
	row, col int
}

// layout maps elements onto the periodic table grid.
type layout struct {
	cells   map[cell]int
	numbers map[int]cell
}

func newLayout(elements []*element.Element) layout {
	l := layout{
		cells:   make(map[cell]int, len(elements)),
		numbers: make(map[int]cell, len(elements)),
	}
	for _, e := range elements {
		c, ok := position(e)
		if !ok {
			continue
		}
		l.cells[c] = e.Number()
		l.numbers[e.Number()] = c
	}
	return l
}

// position places an element by group and period. Elements without a group
// belong to the f-block rows.
func position(e *element.Element) (cell, bool) {
	rec := e.Record()
	if !rec.Period.HasValue() {
		return cell{}, false
	}
	period := value.Convert[int](rec.Period).V

	if rec.Group.HasValue() {
		return cell{row: period, col: value.Convert[int](rec.Group).V}, true
	}

	switch period {
	case 6:
		return cell{row: lanthanideRow, col: firstFColumn + e.Number() - 58}, true
	case 7:
		return cell{row: actinideRow, col: firstFColumn + e.Number() - 90}, true
	default:
		return cell{}, false
	}
}

// at returns the atomic number at c, or 0.
func (l layout) at(c cell) int {
	return l.cells[c]
}

// step moves from number by (dr, dc) and skips empty cells. It returns
// number unchanged when no element lies in that direction.
func (l layout) step(number, dr, dc int) int {
	from, ok := l.numbers[number]
	if !ok {
		return number
	}
	for c := (cell{from.row + dr, from.col + dc}); c.row >= 1 && c.row <= gridRows && c.col >= 1 && c.col <= gridColumns; c = (cell{c.row + dr, c.col + dc}) {
		if n := l.cells[c]; n != 0 {
			return n
		}
	}
	return number
}
