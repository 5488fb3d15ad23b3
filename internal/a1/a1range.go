package a1

import (
	"strconv"
	"strings"
	"unicode"

	"gridref/internal/grid"
)

// A1RangeKind фигура старой записи A1.
type A1RangeKind uint8

const (
	A1RangeAll A1RangeKind = iota
	A1RangeColumn
	A1RangeRow
	A1RangeColumnRange
	A1RangeRowRange
	A1RangePos
	A1RangeRect
)

// A1Range одиночная фигура старой записи A1 с флагом исключения.
// Столбцовые и строчные фигуры занимают From и To, точечные и
// прямоугольные Min и Max. Значение сравнимо оператором ==.
type A1Range struct {
	Kind     A1RangeKind
	From, To Coord
	Min, Max RangeEnd
	Excluded bool
}

// A1Part фигура вместе с листом, к которому она привязана.
type A1Part struct {
	SheetID grid.SheetID
	Range   A1Range
}

// A1Cells одиночная фигура с именем листа для внешних запросов
// значений. Пустое имя означает текущий лист.
type A1Cells struct {
	Cells     A1Range
	SheetName string
}

// tryAllPart распознаёт звёздочку всего листа.
func tryAllPart(s string) bool {
	return strings.TrimSpace(s) == "*"
}

// tryColumnPart разбирает буквенный столбец с необязательным долларом.
func tryColumnPart(s string) (Coord, bool) {
	abs := strings.HasPrefix(s, "$")
	if abs {
		s = s[1:]
	}
	col, ok := ColumnFromName(s)
	if !ok {
		return Coord{}, false
	}
	return Coord{Coord: col, Absolute: abs}, true
}

// tryRowPart разбирает номер строки с необязательным долларом.
// Нечисловой текст проходит дальше по лестнице, нулевая строка
// останавливает разбор ошибкой.
func tryRowPart(s string) (Coord, bool, error) {
	abs := strings.HasPrefix(s, "$")
	if abs {
		s = s[1:]
	}
	n, err := strconv.ParseUint(s, 10, 63)
	if err != nil {
		return Coord{}, false, nil
	}
	if n == 0 {
		return Coord{}, false, errText(ErrInvalidRow, s)
	}
	return Coord{Coord: int64(n), Absolute: abs}, true, nil
}

// tryColumnRangePart разбирает отрезок столбцов. Концы при
// необходимости меняются местами, недописанный хвост "A:" читается
// как одиночный столбец.
func tryColumnRangePart(s string) (from, to Coord, ok bool) {
	left, right, found := strings.Cut(s, ":")
	if !found {
		c, ok := tryColumnPart(s)
		return c, c, ok
	}
	a, okA := tryColumnPart(left)
	b, okB := tryColumnPart(right)
	switch {
	case okA && okB:
		if a.Coord > b.Coord {
			a, b = b, a
		}
		return a, b, true
	case okA:
		return a, a, true
	}
	return Coord{}, Coord{}, false
}

// tryRowRangePart разбирает отрезок строк по тем же правилам, что и
// столбцовый.
func tryRowRangePart(s string) (from, to Coord, ok bool, err error) {
	left, right, found := strings.Cut(s, ":")
	if !found {
		c, ok, err := tryRowPart(s)
		return c, c, ok, err
	}
	a, okA, err := tryRowPart(left)
	if err != nil {
		return Coord{}, Coord{}, false, err
	}
	b, okB, err := tryRowPart(right)
	if err != nil {
		return Coord{}, Coord{}, false, err
	}
	switch {
	case okA && okB:
		if a.Coord > b.Coord {
			a, b = b, a
		}
		return a, b, true, nil
	case okA:
		return a, a, true, nil
	}
	return Coord{}, Coord{}, false, nil
}

// tryPositionPart разбирает одиночную ячейку. Буквенная часть
// отделяется по первой цифре, доллар перед цифрой уходит к строке.
func tryPositionPart(s string) (RangeEnd, bool, error) {
	idx := strings.IndexFunc(s, unicode.IsDigit)
	if idx <= 0 {
		return RangeEnd{}, false, nil
	}
	if s[idx-1] == '$' {
		idx--
	}
	col, ok := tryColumnPart(s[:idx])
	if !ok {
		return RangeEnd{}, false, nil
	}
	row, ok, err := tryRowPart(s[idx:])
	if err != nil || !ok {
		return RangeEnd{}, false, err
	}
	return RangeEnd{Col: col, Row: row}, true, nil
}

// tryRectPart разбирает прямоугольник из двух ячеек через двоеточие.
// Углы не переупорядочиваются.
func tryRectPart(s string) (RangeEnd, RangeEnd, bool, error) {
	left, right, found := strings.Cut(s, ":")
	if !found {
		return RangeEnd{}, RangeEnd{}, false, nil
	}
	lo, ok, err := tryPositionPart(left)
	if err != nil || !ok {
		return RangeEnd{}, RangeEnd{}, false, err
	}
	hi, ok, err := tryPositionPart(right)
	if err != nil || !ok {
		return RangeEnd{}, RangeEnd{}, false, err
	}
	return lo, hi, true, nil
}

// ParseA1Range разбирает одиночную фигуру без префикса листа. Порядок
// проб закреплён: звёздочка, столбец, строка, отрезки, ячейка,
// прямоугольник. Ошибка номера строки останавливает лестницу сразу.
func ParseA1Range(s string) (A1Range, error) {
	if tryAllPart(s) {
		return A1Range{Kind: A1RangeAll}, nil
	}
	if c, ok := tryColumnPart(s); ok {
		return A1Range{Kind: A1RangeColumn, From: c}, nil
	}
	row, ok, err := tryRowPart(s)
	if err != nil {
		return A1Range{}, err
	}
	if ok {
		return A1Range{Kind: A1RangeRow, From: row}, nil
	}
	if from, to, ok := tryColumnRangePart(s); ok {
		return A1Range{Kind: A1RangeColumnRange, From: from, To: to}, nil
	}
	from, to, ok, err := tryRowRangePart(s)
	if err != nil {
		return A1Range{}, err
	}
	if ok {
		return A1Range{Kind: A1RangeRowRange, From: from, To: to}, nil
	}
	pos, ok, err := tryPositionPart(s)
	if err != nil {
		return A1Range{}, err
	}
	if ok {
		return A1Range{Kind: A1RangePos, Min: pos}, nil
	}
	lo, hi, ok, err := tryRectPart(s)
	if err != nil {
		return A1Range{}, err
	}
	if ok {
		return A1Range{Kind: A1RangeRect, Min: lo, Max: hi}, nil
	}
	return A1Range{}, errText(ErrInvalidRange, s)
}

// ParseA1Part разбирает фигуру с необязательным префиксом листа,
// разрешая имя листа через контекст.
func ParseA1Part(s string, def grid.SheetID, ctx *Context) (A1Part, error) {
	rest, sheetID, err := parseOptionalSheetID(s, def, ctx)
	if err != nil {
		return A1Part{}, err
	}
	r, err := ParseA1Range(rest)
	if err != nil {
		return A1Part{}, err
	}
	return A1Part{SheetID: sheetID, Range: r}, nil
}

// ToCells разбирает ссылку для запроса значений: ровно одна фигура и
// необязательное имя листа. Имя здесь не разрешается в идентификатор.
func ToCells(s string) (A1Cells, error) {
	name, rest, _, err := splitSheetName(s)
	if err != nil {
		return A1Cells{}, err
	}
	r, err := ParseA1Range(rest)
	if err != nil {
		return A1Cells{}, err
	}
	return A1Cells{Cells: r, SheetName: name}, nil
}

// ToExcluded помечает фигуру исключаемой. Исключить весь лист нельзя.
func (r *A1Range) ToExcluded() error {
	if r.Kind == A1RangeAll {
		return errText(ErrInvalidExclusion, "*")
	}
	r.Excluded = true
	return nil
}

// IsExcluded сообщает, помечена ли фигура исключаемой.
func (r A1Range) IsExcluded() bool { return r.Excluded }

// Rect возвращает углы прямоугольной фигуры как есть, без
// нормализации.
func (r A1Range) Rect() grid.Rect {
	return grid.Rect{
		Min: grid.Pos{X: r.Min.Col.Coord, Y: r.Min.Row.Coord},
		Max: grid.Pos{X: r.Max.Col.Coord, Y: r.Max.Row.Coord},
	}
}

// Intersects сообщает, пересекает ли фигура прямоугольник. Флаг
// исключения не учитывается.
func (r A1Range) Intersects(rect grid.Rect) bool {
	switch r.Kind {
	case A1RangeAll:
		return true
	case A1RangeColumn:
		return r.From.Coord >= rect.Min.X && r.From.Coord <= rect.Max.X
	case A1RangeRow:
		return r.From.Coord >= rect.Min.Y && r.From.Coord <= rect.Max.Y
	case A1RangeColumnRange:
		return r.From.Coord <= rect.Max.X && r.To.Coord >= rect.Min.X
	case A1RangeRowRange:
		return r.From.Coord <= rect.Max.Y && r.To.Coord >= rect.Min.Y
	case A1RangePos:
		return rect.Contains(grid.Pos{X: r.Min.Col.Coord, Y: r.Min.Row.Coord})
	case A1RangeRect:
		return rect.Intersects(r.Rect())
	}
	return false
}

// Contains сообщает, покрывает ли фигура позицию.
func (r A1Range) Contains(pos grid.Pos) bool {
	switch r.Kind {
	case A1RangeAll:
		return true
	case A1RangeColumn:
		return pos.X == r.From.Coord
	case A1RangeRow:
		return pos.Y == r.From.Coord
	case A1RangeColumnRange:
		return pos.X >= r.From.Coord && pos.X <= r.To.Coord
	case A1RangeRowRange:
		return pos.Y >= r.From.Coord && pos.Y <= r.To.Coord
	case A1RangePos:
		return pos.X == r.Min.Col.Coord && pos.Y == r.Min.Row.Coord
	case A1RangeRect:
		return r.Rect().Contains(pos)
	}
	return false
}

// shiftCoord сдвигает относительную координату, абсолютная остаётся
// на месте. Уход за левый или верхний край даёт ошибку base.
func shiftCoord(c Coord, delta int64, base error) (Coord, error) {
	if c.Absolute {
		return c, nil
	}
	moved := c.Coord + delta
	if moved <= 0 {
		return Coord{}, errText(base, strconv.FormatInt(moved, 10))
	}
	c.Coord = moved
	return c, nil
}

// shiftEnd сдвигает обе оси конца по правилам shiftCoord.
func shiftEnd(e RangeEnd, dx, dy int64) (RangeEnd, error) {
	var err error
	if e.Col, err = shiftCoord(e.Col, dx, ErrInvalidColumn); err != nil {
		return RangeEnd{}, err
	}
	if e.Row, err = shiftCoord(e.Row, dy, ErrInvalidRow); err != nil {
		return RangeEnd{}, err
	}
	return e, nil
}

// Translate сдвигает фигуру на (dx, dy). Двигаются только
// относительные координаты, абсолютные закреплены долларом.
func (r A1Range) Translate(dx, dy int64) (A1Range, error) {
	var err error
	switch r.Kind {
	case A1RangeAll:
	case A1RangeColumn:
		r.From, err = shiftCoord(r.From, dx, ErrInvalidColumn)
	case A1RangeRow:
		r.From, err = shiftCoord(r.From, dy, ErrInvalidRow)
	case A1RangeColumnRange:
		if r.From, err = shiftCoord(r.From, dx, ErrInvalidColumn); err == nil {
			r.To, err = shiftCoord(r.To, dx, ErrInvalidColumn)
		}
	case A1RangeRowRange:
		if r.From, err = shiftCoord(r.From, dy, ErrInvalidRow); err == nil {
			r.To, err = shiftCoord(r.To, dy, ErrInvalidRow)
		}
	case A1RangePos:
		r.Min, err = shiftEnd(r.Min, dx, dy)
	case A1RangeRect:
		if r.Min, err = shiftEnd(r.Min, dx, dy); err == nil {
			r.Max, err = shiftEnd(r.Max, dx, dy)
		}
	}
	if err != nil {
		return A1Range{}, err
	}
	return r, nil
}

// String печатает фигуру в канонической записи. Флаг исключения в
// тексте не виден: позиция фигуры в списке передаёт его сама.
func (r A1Range) String() string {
	var sb strings.Builder
	switch r.Kind {
	case A1RangeAll:
		return "*"
	case A1RangeColumn:
		r.From.writeColumn(&sb)
	case A1RangeRow:
		r.From.writeRow(&sb)
	case A1RangeColumnRange:
		r.From.writeColumn(&sb)
		sb.WriteByte(':')
		r.To.writeColumn(&sb)
	case A1RangeRowRange:
		r.From.writeRow(&sb)
		sb.WriteByte(':')
		r.To.writeRow(&sb)
	case A1RangePos:
		r.Min.write(&sb)
	case A1RangeRect:
		r.Min.write(&sb)
		sb.WriteByte(':')
		r.Max.write(&sb)
	}
	return sb.String()
}
