package grid

import (
	"fmt"
	"math"
)

// SheetID однозначно идентифицирует лист. Только сравнение на равенство,
// порядок не определён.
type SheetID string

// Unbounded — сентинел для неограниченной оси (правый/нижний край листа).
const Unbounded int64 = math.MaxInt64

// Pos is a cell position, 1-indexed on both axes.
// Values <= 0 never address a real cell; they appear only as sentinels.
type Pos struct {
	X int64
	Y int64
}

func NewPos(x, y int64) Pos {
	return Pos{X: x, Y: y}
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Translate shifts the position by (dx, dy), clamping each axis so it
// never drops below (minX, minY).
func (p Pos) Translate(dx, dy, minX, minY int64) Pos {
	return Pos{
		X: max(minX, p.X+dx),
		Y: max(minY, p.Y+dy),
	}
}

// SheetPos is a Pos pinned to a concrete sheet.
type SheetPos struct {
	Pos
	SheetID SheetID
}

func NewSheetPos(x, y int64, sheet SheetID) SheetPos {
	return SheetPos{Pos: Pos{X: x, Y: y}, SheetID: sheet}
}

func (p SheetPos) String() string {
	return fmt.Sprintf("%s!%s", p.SheetID, p.Pos)
}
