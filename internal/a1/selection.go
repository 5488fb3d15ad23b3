package a1

import (
	"strconv"
	"strings"

	"gridref/internal/grid"
)

// Selection — курсор и объединение диапазонов на одном листе. Последний
// диапазон списка особый: его начало совпадает с курсором, и именно его
// растягивают жесты выделения. Пустой список диапазонов недопустим,
// конструкторы всегда оставляют хотя бы один.
type Selection struct {
	SheetID grid.SheetID
	Cursor  grid.Pos
	Ranges  []CellRefRange
}

// cursorPosFromLastRange — позиция курсора для диапазона: начало для
// координатного, якорная ячейка данных для табличного.
func cursorPosFromLastRange(r CellRefRange, ctx *Context) grid.Pos {
	if r.Kind == RangeKindTable {
		return r.Table.CursorPosFromLastRange(ctx)
	}
	return grid.Pos{X: r.Sheet.Start.ColOr(1), Y: r.Sheet.Start.RowOr(1)}
}

// NewSelection — выборка по умолчанию: одна ячейка A1.
func NewSelection(sheet grid.SheetID) Selection {
	return NewSelectionXY(1, 1, sheet)
}

// NewSelectionFromRange заворачивает один диапазон в выборку.
func NewSelectionFromRange(r CellRefRange, sheet grid.SheetID, ctx *Context) Selection {
	return Selection{
		SheetID: sheet,
		Cursor:  cursorPosFromLastRange(r, ctx),
		Ranges:  []CellRefRange{r},
	}
}

// NewSelectionFromRanges собирает выборку из списка диапазонов, курсор
// встаёт в начало последнего. Пустой список даёт выборку по умолчанию.
func NewSelectionFromRanges(ranges []CellRefRange, sheet grid.SheetID, ctx *Context) Selection {
	if len(ranges) == 0 {
		return NewSelection(sheet)
	}
	return Selection{
		SheetID: sheet,
		Cursor:  cursorPosFromLastRange(ranges[len(ranges)-1], ctx),
		Ranges:  ranges,
	}
}

// NewSelectionPos — выборка из одной ячейки.
func NewSelectionPos(p grid.SheetPos) Selection {
	return NewSelectionXY(p.X, p.Y, p.SheetID)
}

// NewSelectionXY — выборка из одной ячейки по координатам.
func NewSelectionXY(x, y int64, sheet grid.SheetID) Selection {
	return Selection{
		SheetID: sheet,
		Cursor:  grid.Pos{X: x, Y: y},
		Ranges:  []CellRefRange{NewSheetRange(NewRelXY(x, y))},
	}
}

// NewSelectionRect — выборка из одного прямоугольника.
func NewSelectionRect(r grid.Rect, sheet grid.SheetID) Selection {
	return Selection{
		SheetID: sheet,
		Cursor:  r.Min,
		Ranges:  []CellRefRange{NewSheetRange(NewRelRect(r))},
	}
}

// NewSelectionAll — выборка всего листа.
func NewSelectionAll(sheet grid.SheetID) Selection {
	return Selection{
		SheetID: sheet,
		Cursor:  grid.Pos{X: 1, Y: 1},
		Ranges:  []CellRefRange{AllRange},
	}
}

// splitTopLevel режет строку по разделителю верхнего уровня: внутри
// кавычек имени листа и внутри скобок табличной ссылки разделитель
// не действует. Пустые части пропускаются.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	var sb strings.Builder
	inQuotes := false
	depth := 0
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == '\'':
			inQuotes = !inQuotes
			sb.WriteByte(ch)
		case ch == '[' && !inQuotes:
			depth++
			sb.WriteByte(ch)
		case ch == ']' && !inQuotes && depth > 0:
			depth--
			sb.WriteByte(ch)
		case ch == sep && !inQuotes && depth == 0:
			if sb.Len() > 0 {
				parts = append(parts, sb.String())
				sb.Reset()
			}
		default:
			sb.WriteByte(ch)
		}
	}
	if sb.Len() > 0 {
		parts = append(parts, sb.String())
	}
	return parts
}

// ParseSelection разбирает список диапазонов через запятую:
// "A1,B2:C3,Sheet2!D4". Все диапазоны обязаны лежать на одном листе,
// иначе ErrTooManySheets. Внутри сегмента токены после пробела —
// исключаемые фигуры: "A1:B5 B2" выбирает прямоугольник без ячейки B2.
// Исключать из "*" нельзя, а сегмент, съеденный исключениями целиком,
// даёт ErrInvalidRange. Курсор встаёт в начало последнего диапазона.
func ParseSelection(s string, def grid.SheetID, ctx *Context) (Selection, error) {
	var (
		sheet     grid.SheetID
		haveSheet bool
		ranges    []CellRefRange
	)
	for _, segment := range splitTopLevel(s, ',') {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		fields := splitTopLevel(segment, ' ')
		base, err := ParseSheetCellRefRange(fields[0], def, ctx)
		if err != nil {
			return Selection{}, err
		}
		if !haveSheet {
			sheet, haveSheet = base.SheetID, true
		} else if base.SheetID != sheet {
			return Selection{}, errText(ErrTooManySheets, s)
		}
		part := []CellRefRange{base.Cells}
		if len(fields) > 1 {
			if base.Cells == AllRange {
				return Selection{}, errText(ErrInvalidExclusion, segment)
			}
			for _, token := range fields[1:] {
				excl, err := ParseA1Range(token)
				if err != nil {
					return Selection{}, err
				}
				if err := excl.ToExcluded(); err != nil {
					return Selection{}, err
				}
				part = excludeRect(part, excl.exclusionRect(), ctx)
			}
			if len(part) == 0 {
				return Selection{}, errText(ErrInvalidRange, segment)
			}
		}
		ranges = append(ranges, part...)
	}
	if len(ranges) == 0 {
		return Selection{}, errText(ErrInvalidRange, s)
	}
	return Selection{
		SheetID: sheet,
		Cursor:  cursorPosFromLastRange(ranges[len(ranges)-1], ctx),
		Ranges:  ranges,
	}, nil
}

// String печатает диапазоны через запятую без префиксов листа.
// Курсор на вывод не влияет.
func (s Selection) String() string {
	parts := make([]string, len(s.Ranges))
	for i, r := range s.Ranges {
		parts[i] = r.String()
	}
	return strings.Join(parts, ",")
}

// A1String печатает выборку, добавляя имя листа там, где лист выборки
// отличается от def.
func (s Selection) A1String(def grid.SheetID, ctx *Context) string {
	parts := make([]string, len(s.Ranges))
	for i, r := range s.Ranges {
		parts[i] = SheetCellRefRange{SheetID: s.SheetID, Cells: r}.A1String(def, ctx)
	}
	return strings.Join(parts, ",")
}

// CursorA1 — позиция курсора в нотации A1.
func (s Selection) CursorA1() string {
	return ColumnName(s.Cursor.X) + strconv.FormatInt(s.Cursor.Y, 10)
}

// CursorSheetPos — курсор вместе с листом выборки.
func (s Selection) CursorSheetPos() grid.SheetPos {
	return grid.NewSheetPos(s.Cursor.X, s.Cursor.Y, s.SheetID)
}

// UpdateCursor ставит курсор в начало последнего диапазона.
func (s *Selection) UpdateCursor(ctx *Context) {
	if len(s.Ranges) > 0 {
		s.Cursor = cursorPosFromLastRange(s.Ranges[len(s.Ranges)-1], ctx)
	}
}
