package a1

import (
	"strings"

	"gridref/internal/grid"
)

// RefRangeBounds — прямоугольная область листа в координатах A1.
// Start описывает первый угол, End учитывается только при HasEnd.
// Совпавший с началом конец схлопывается ещё при построении, поэтому
// "A1:A1" и "A1" дают одно и то же значение и структуры можно
// сравнивать оператором ==.
type RefRangeBounds struct {
	Start  RangeEnd
	End    RangeEnd
	HasEnd bool
}

// AllBounds — весь лист, печатается как "*".
var AllBounds = RefRangeBounds{HasEnd: true}

// NewRelXY возвращает диапазон из одной ячейки (x, y).
func NewRelXY(x, y int64) RefRangeBounds {
	return RefRangeBounds{Start: NewRelEndXY(x, y)}
}

// NewRelPos возвращает диапазон из одной ячейки в позиции p.
func NewRelPos(p grid.Pos) RefRangeBounds {
	return RefRangeBounds{Start: NewRelEndPos(p)}
}

// NewRelColumn возвращает бесконечный столбец x.
func NewRelColumn(x int64) RefRangeBounds {
	return RefRangeBounds{Start: NewRelEndColumn(x)}
}

// NewRelRow возвращает бесконечную строку y.
func NewRelRow(y int64) RefRangeBounds {
	return RefRangeBounds{Start: NewRelEndRow(y)}
}

// NewRelColumnRange возвращает столбцы от x1 до x2 включительно.
// Совпавшие границы схлопываются в одиночный столбец.
func NewRelColumnRange(x1, x2 int64) RefRangeBounds {
	if x1 == x2 {
		return NewRelColumn(x1)
	}
	return RefRangeBounds{
		Start:  NewRelEndColumn(x1),
		End:    NewRelEndColumn(x2),
		HasEnd: true,
	}
}

// NewRelRowRange возвращает строки от y1 до y2 включительно.
func NewRelRowRange(y1, y2 int64) RefRangeBounds {
	if y1 == y2 {
		return NewRelRow(y1)
	}
	return RefRangeBounds{
		Start:  NewRelEndRow(y1),
		End:    NewRelEndRow(y2),
		HasEnd: true,
	}
}

// NewRelRect возвращает диапазон по прямоугольнику. Вырожденный
// прямоугольник 1x1 схлопывается в одиночную ячейку.
func NewRelRect(r grid.Rect) RefRangeBounds {
	if r.Min == r.Max {
		return NewRelPos(r.Min)
	}
	return RefRangeBounds{
		Start:  NewRelEndPos(r.Min),
		End:    NewRelEndPos(r.Max),
		HasEnd: true,
	}
}

// NewAllFrom возвращает всё вправо и вниз от p, печатается как "A2:".
func NewAllFrom(p grid.Pos) RefRangeBounds {
	return RefRangeBounds{Start: NewRelEndPos(p), HasEnd: true}
}

// NewRelRowFrom возвращает хвост строки row начиная со столбца minCol.
func NewRelRowFrom(row, minCol int64) RefRangeBounds {
	return RefRangeBounds{
		Start:  NewRelEndXY(minCol, row),
		End:    NewRelEndRow(row),
		HasEnd: true,
	}
}

// NewRelColumnFrom возвращает хвост столбца col начиная со строки minRow.
func NewRelColumnFrom(col, minRow int64) RefRangeBounds {
	return RefRangeBounds{
		Start:  NewRelEndXY(col, minRow),
		End:    NewRelEndColumn(col),
		HasEnd: true,
	}
}

// newRelative собирает диапазон из числовых границ. Ноль в начальной
// оси означает отсутствие оси, grid.Unbounded в конечной тоже.
func newRelative(x0, y0, x1, y1 int64) RefRangeBounds {
	var start, end RangeEnd
	if x0 != 0 {
		start.Col = NewRelCoord(x0)
	}
	if y0 != 0 {
		start.Row = NewRelCoord(y0)
	}
	if x1 != grid.Unbounded {
		end.Col = NewRelCoord(x1)
	}
	if y1 != grid.Unbounded {
		end.Row = NewRelCoord(y1)
	}
	if end == start {
		return RefRangeBounds{Start: start}
	}
	return RefRangeBounds{Start: start, End: end, HasEnd: true}
}

// ParseRefRangeBounds разбирает "A1", "A1:B2", "A:C", "3:5", "$B$2",
// "A2:", "*". Пустая строка запрещена. Совпавшие концы схлопываются,
// так что разбор "A1:A1" неотличим от разбора "A1".
func ParseRefRangeBounds(s string) (RefRangeBounds, error) {
	if s == "" {
		return RefRangeBounds{}, errText(ErrInvalidRange, s)
	}
	if s == "*" {
		return AllBounds, nil
	}
	if left, right, found := strings.Cut(s, ":"); found {
		start, err := ParseRangeEnd(left)
		if err != nil {
			return RefRangeBounds{}, err
		}
		end, err := ParseRangeEnd(right)
		if err != nil {
			return RefRangeBounds{}, err
		}
		if end == start {
			return RefRangeBounds{Start: start}, nil
		}
		return RefRangeBounds{Start: start, End: end, HasEnd: true}, nil
	}
	start, err := ParseRangeEnd(s)
	if err != nil {
		return RefRangeBounds{}, err
	}
	return RefRangeBounds{Start: start}, nil
}

// String печатает диапазон в канонической форме A1. Разбор результата
// восстанавливает исходное значение.
func (r RefRangeBounds) String() string {
	if r.IsAll() {
		return "*"
	}
	var sb strings.Builder
	r.Start.write(&sb)
	if r.HasEnd && r.End != r.Start {
		sb.WriteByte(':')
		r.End.write(&sb)
	}
	return sb.String()
}

// IsValid сообщает, печатается ли диапазон непустой строкой. Значение
// без единой оси и без конца не представимо в A1.
func (r RefRangeBounds) IsValid() bool {
	return r.Start.Col.IsSet() || r.Start.Row.IsSet() || r.HasEnd
}

// IsAll сообщает, покрывает ли диапазон весь лист.
func (r RefRangeBounds) IsAll() bool {
	return r == AllBounds
}

// effectiveEnd — конец диапазона; у одноконцовых форм им служит начало.
func (r RefRangeBounds) effectiveEnd() RangeEnd {
	if r.HasEnd {
		return r.End
	}
	return r.Start
}

// normalizeInPlace меняет местами границы оси, если начало оказалось
// больше конца. Оси без обеих координат не трогаются.
func (r *RefRangeBounds) normalizeInPlace() {
	if !r.HasEnd {
		return
	}
	if r.Start.Col.IsSet() && r.End.Col.IsSet() && r.Start.Col.Coord > r.End.Col.Coord {
		r.Start.Col, r.End.Col = r.End.Col, r.Start.Col
	}
	if r.Start.Row.IsSet() && r.End.Row.IsSet() && r.Start.Row.Coord > r.End.Row.Coord {
		r.Start.Row, r.End.Row = r.End.Row, r.Start.Row
	}
}

// Translate возвращает диапазон, сдвинутый на (dx, dy). Координаты,
// ушедшие за левый или верхний край, прижимаются к единице.
func (r RefRangeBounds) Translate(dx, dy int64) RefRangeBounds {
	r.TranslateInPlace(dx, dy)
	return r
}

// TranslateInPlace сдвигает диапазон на (dx, dy) на месте.
func (r *RefRangeBounds) TranslateInPlace(dx, dy int64) {
	r.Start = r.Start.Translate(dx, dy)
	if r.HasEnd {
		r.End = r.End.Translate(dx, dy)
	}
}
