package entity

import "sort"

// axis is a unit step along one of the four undirected lines through a cell.
type axis struct {
	dx, dy int
}

// axes in scan order: east-west, north-south, northwest-southeast, northeast-southwest.
var axes = [...]axis{
	{dx: 1, dy: 0},
	{dx: 0, dy: 1},
	{dx: 1, dy: 1},
	{dx: 1, dy: -1},
}

// winningLine returns the WinLength coordinates completed by the token just placed at
// (x, y), sorted by position, or nil. Only lines through (x, y) are inspected.
func (that *Game) winningLine(x, y int, token Cell) []Coord {
	for _, a := range axes {
		if line := that.Board.runThrough(x, y, token, a); len(line) == WinLength {
			sortByPosition(line)
			return line
		}
	}

	return nil
}

// runThrough collects same-token cells through (x, y) along a, first walking the negative
// direction then the positive one, and stops as soon as WinLength cells are collected.
func (that *Board) runThrough(x, y int, token Cell, a axis) []Coord {
	line := make([]Coord, 0, WinLength)
	line = append(line, Coord{x, y})

	line = that.extend(line, x, y, token, -a.dx, -a.dy)
	if len(line) == WinLength {
		return line
	}

	return that.extend(line, x, y, token, a.dx, a.dy)
}

func (that *Board) extend(line []Coord, x, y int, token Cell, dx, dy int) []Coord {
	for cx, cy := x+dx, y+dy; len(line) < WinLength; cx, cy = cx+dx, cy+dy {
		if !that.Contains(cx, cy) || that.Get(cx, cy) != token {
			break
		}
		line = append(line, Coord{cx, cy})
	}

	return line
}

func sortByPosition(line []Coord) {
	sort.Slice(line, func(i, j int) bool {
		if line[i][0] != line[j][0] {
			return line[i][0] < line[j][0]
		}
		return line[i][1] < line[j][1]
	})
}
