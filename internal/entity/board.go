package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/fiveinarow-backend/internal/apperror"
)

// Cell is the content of a single board slot.
type Cell int

const (
	EmptyCell Cell = iota
	TokenX
	TokenO
)

const rowSeparator = "/"

// cellRunes is the board text alphabet, indexed by Cell.
var cellRunes = [...]byte{EmptyCell: '.', TokenX: 'x', TokenO: 'o'}

func (that Cell) String() string {
	switch that {
	case EmptyCell:
		return ""
	case TokenX:
		return "x"
	case TokenO:
		return "o"
	default:
		return fmt.Sprintf("cell(%d)", int(that))
	}
}

// Board is a fixed-shape grid of cells addressed as (x, y), x being the column.
// Get and Set do not check bounds.
type Board struct {
	cells [][]Cell
}

// NewBoard returns a width x height board with every cell empty.
func NewBoard(width, height int) Board {
	var board Board
	board.Initialize(width, height)
	return board
}

// Initialize discards the current content and fills a width x height grid with EmptyCell.
func (that *Board) Initialize(width, height int) {
	that.cells = make([][]Cell, height)
	for y := range that.cells {
		that.cells[y] = make([]Cell, width)
	}
}

func (that *Board) Width() int {
	if len(that.cells) == 0 {
		return 0
	}
	return len(that.cells[0])
}

func (that *Board) Height() int {
	return len(that.cells)
}

func (that *Board) Get(x, y int) Cell {
	return that.cells[y][x]
}

func (that *Board) Set(x, y int, token Cell) {
	that.cells[y][x] = token
}

// Contains reports whether (x, y) lies on the board.
func (that *Board) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < that.Width() && y < that.Height()
}

// Occupied counts the non-empty cells.
func (that *Board) Occupied() int {
	count := 0
	for _, row := range that.cells {
		for _, cell := range row {
			if cell != EmptyCell {
				count++
			}
		}
	}
	return count
}

// Rows returns a copy of the board as rows of cell strings ("", "x", "o").
func (that *Board) Rows() [][]string {
	rows := make([][]string, len(that.cells))
	for y, row := range that.cells {
		rows[y] = make([]string, len(row))
		for x, cell := range row {
			rows[y][x] = cell.String()
		}
	}
	return rows
}

// Clone returns a deep copy of the board.
func (that *Board) Clone() Board {
	clone := Board{cells: make([][]Cell, len(that.cells))}
	for y, row := range that.cells {
		clone.cells[y] = append([]Cell(nil), row...)
	}
	return clone
}

// MarshalText encodes the board as rows joined by "/", one of '.', 'x', 'o' per cell.
func (that Board) MarshalText() ([]byte, error) {
	var sb strings.Builder
	for y, row := range that.cells {
		if y > 0 {
			sb.WriteString(rowSeparator)
		}
		for _, cell := range row {
			if cell < EmptyCell || int(cell) >= len(cellRunes) {
				return nil, fmt.Errorf("%w: cell %d at row %d", apperror.ErrUnknownValue, int(cell), y)
			}
			sb.WriteByte(cellRunes[cell])
		}
	}
	return []byte(sb.String()), nil
}

func (that *Board) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		that.cells = nil
		return nil
	}

	lines := strings.Split(string(text), rowSeparator)
	cells := make([][]Cell, len(lines))
	for y, line := range lines {
		if len(line) == 0 || len(line) != len(lines[0]) {
			return fmt.Errorf("%w: row %d has %d cells", apperror.ErrInvalidDimensions, y, len(line))
		}

		cells[y] = make([]Cell, len(line))
		for x := 0; x < len(line); x++ {
			cell, err := parseCell(line[x])
			if err != nil {
				return fmt.Errorf("row %d col %d: %w", y, x, err)
			}
			cells[y][x] = cell
		}
	}

	that.cells = cells
	return nil
}

func (that Board) String() string {
	text, err := that.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(text)
}

func parseCell(b byte) (Cell, error) {
	for cell, r := range cellRunes {
		if r == b {
			return Cell(cell), nil
		}
	}
	return EmptyCell, fmt.Errorf("%w: cell %q", apperror.ErrUnknownValue, b)
}
