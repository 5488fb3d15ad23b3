package a1

import (
	"regexp"
	"strconv"
	"strings"

	"gridref/internal/grid"
)

// Coord одна координата конца диапазона. Нулевое значение означает
// отсутствующую ось: допустимые номера строк и столбцов начинаются
// с единицы. Absolute соответствует знаку доллара в записи.
type Coord struct {
	Coord    int64
	Absolute bool
}

// NewRelCoord относительная координата.
func NewRelCoord(v int64) Coord { return Coord{Coord: v} }

// NewAbsCoord абсолютная координата.
func NewAbsCoord(v int64) Coord { return Coord{Coord: v, Absolute: true} }

// IsSet сообщает, задана ли ось.
func (c Coord) IsSet() bool { return c.Coord != 0 }

// Translate сдвигает координату на delta. Результат меньше единицы
// прижимается к единице, флаг абсолютности сохраняется. Отсутствующая
// ось остаётся отсутствующей.
func (c Coord) Translate(delta int64) Coord {
	if !c.IsSet() {
		return c
	}
	v := c.Coord + delta
	if v <= 0 {
		v = 1
	}
	return Coord{Coord: v, Absolute: c.Absolute}
}

func (c Coord) writeColumn(sb *strings.Builder) {
	if c.Absolute {
		sb.WriteByte('$')
	}
	sb.WriteString(ColumnName(c.Coord))
}

func (c Coord) writeRow(sb *strings.Builder) {
	if c.Absolute {
		sb.WriteByte('$')
	}
	sb.WriteString(strconv.FormatInt(c.Coord, 10))
}

// RangeEnd конец диапазона: столбец и строка, каждая ось может
// отсутствовать. Нулевое значение не ограничено по обеим осям.
type RangeEnd struct {
	Col Coord
	Row Coord
}

// NewRelEndXY конец в конкретной ячейке, обе оси относительные.
func NewRelEndXY(x, y int64) RangeEnd {
	return RangeEnd{Col: NewRelCoord(x), Row: NewRelCoord(y)}
}

// NewRelEndPos конец в позиции p.
func NewRelEndPos(p grid.Pos) RangeEnd { return NewRelEndXY(p.X, p.Y) }

// NewRelEndColumn конец в столбце без строки.
func NewRelEndColumn(x int64) RangeEnd { return RangeEnd{Col: NewRelCoord(x)} }

// NewRelEndRow конец в строке без столбца.
func NewRelEndRow(y int64) RangeEnd { return RangeEnd{Row: NewRelCoord(y)} }

// endPattern: необязательный доллар, буквы столбца, необязательный
// доллар, цифры строки. Якоря отбрасывают хвостовой мусор вроде "A1x".
var endPattern = regexp.MustCompile(`^(\$?)([A-Za-z]*)(\$?)(\d*)$`)

// ParseRangeEnd разбирает один конец диапазона: "A1", "$B$2", "C", "3".
// Пустая строка даёт неограниченный конец.
func ParseRangeEnd(s string) (RangeEnd, error) {
	m := endPattern.FindStringSubmatch(s)
	if m == nil {
		return RangeEnd{}, errText(ErrInvalidCellRef, s)
	}
	colAbs := m[1] != ""
	colStr := m[2]
	rowAbs := m[3] != ""
	rowStr := m[4]

	// Без букв столбца абсолютная строка захватывается как
	// `($)()()(row)` вместо `()()($)(row)`. Переносим доллар
	// на ось строки.
	if colAbs && colStr == "" {
		colAbs, rowAbs = rowAbs, colAbs
	}

	var col int64
	if colStr != "" {
		v, ok := ColumnFromName(colStr)
		if !ok {
			return RangeEnd{}, errText(ErrInvalidColumn, colStr)
		}
		col = v
	}
	var row int64
	if rowStr != "" {
		v, err := strconv.ParseInt(rowStr, 10, 64)
		if err != nil || v <= 0 {
			return RangeEnd{}, errText(ErrInvalidRow, rowStr)
		}
		row = v
	}

	if colAbs && col == 0 || rowAbs && row == 0 {
		return RangeEnd{}, errText(ErrSpuriousDollar, s)
	}

	return RangeEnd{
		Col: Coord{Coord: col, Absolute: colAbs},
		Row: Coord{Coord: row, Absolute: rowAbs},
	}, nil
}

// String печатает конец диапазона. Отсутствующие оси пропускаются,
// у полностью неограниченного конца строка пустая.
func (e RangeEnd) String() string {
	var sb strings.Builder
	e.write(&sb)
	return sb.String()
}

func (e RangeEnd) write(sb *strings.Builder) {
	if e.Col.IsSet() {
		e.Col.writeColumn(sb)
	}
	if e.Row.IsSet() {
		e.Row.writeRow(sb)
	}
}

// Translate сдвигает обе заданные оси.
func (e RangeEnd) Translate(dx, dy int64) RangeEnd {
	return RangeEnd{Col: e.Col.Translate(dx), Row: e.Row.Translate(dy)}
}

// IsMultiRange сообщает, что у конца нет столбца или строки.
func (e RangeEnd) IsMultiRange() bool {
	return !e.Col.IsSet() || !e.Row.IsSet()
}

// IsPos проверяет совпадение с позицией. Конец без одной из осей
// не совпадает ни с какой позицией.
func (e RangeEnd) IsPos(p grid.Pos) bool {
	return e.Col.IsSet() && e.Col.Coord == p.X && e.Row.IsSet() && e.Row.Coord == p.Y
}

// ColOr возвращает номер столбца либо def для отсутствующей оси.
func (e RangeEnd) ColOr(def int64) int64 {
	if e.Col.IsSet() {
		return e.Col.Coord
	}
	return def
}

// RowOr возвращает номер строки либо def для отсутствующей оси.
func (e RangeEnd) RowOr(def int64) int64 {
	if e.Row.IsSet() {
		return e.Row.Coord
	}
	return def
}
