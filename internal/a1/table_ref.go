package a1

import "strings"

// ColRangeKind вид столбцовой части табличной ссылки.
type ColRangeKind uint8

const (
	// ColKindAll все видимые столбцы таблицы. Нулевое значение,
	// чтобы ссылка без столбцовой части читалась как вся таблица.
	ColKindAll ColRangeKind = iota
	// ColKindCol один столбец по имени.
	ColKindCol
	// ColKindRange отрезок столбцов от From до To включительно.
	ColKindRange
	// ColKindToEnd от столбца From до последнего видимого.
	ColKindToEnd
)

// ColRange столбцовая часть табличной ссылки. Имена хранятся в
// каноническом написании из таблицы, сравнение оператором == корректно.
type ColRange struct {
	Kind     ColRangeKind
	From, To string
}

// NewColAll вся ширина таблицы.
func NewColAll() ColRange { return ColRange{} }

// NewCol один столбец.
func NewCol(name string) ColRange { return ColRange{Kind: ColKindCol, From: name} }

// NewColRange отрезок столбцов.
func NewColRange(from, to string) ColRange {
	return ColRange{Kind: ColKindRange, From: from, To: to}
}

// NewColToEnd хвост таблицы начиная со столбца from.
func NewColToEnd(from string) ColRange { return ColRange{Kind: ColKindToEnd, From: from} }

// RowRange строчная часть табличной ссылки. Числовые строки в скобках
// распознаются лексером, но парсер их отвергает, поэтому остаются лишь
// два варианта.
type RowRange uint8

const (
	// RowRangeAll все строки выбранной области.
	RowRangeAll RowRange = iota
	// RowRangeThisRow строка текущей ячейки, запись [#THIS ROW] или @.
	RowRangeThisRow
)

// TableRef ссылка на таблицу по имени: столбцовая часть, строчная
// часть и флаги областей. Data охватывает строки данных, Headers
// строку заголовков, Totals строку итогов. Имя хранится в каноническом
// написании. Значение сравнимо оператором ==.
type TableRef struct {
	TableName string
	Data      bool
	Headers   bool
	Totals    bool
	ColRange  ColRange
	RowRange  RowRange
}

// NewTableRef ссылка на строки данных всей таблицы.
func NewTableRef(name string) TableRef {
	return TableRef{TableName: name, Data: true}
}

// escapeColName экранирует служебные символы тиком, чтобы имя столбца
// пережило обратный разбор.
func escapeColName(sb *strings.Builder, name string) {
	for _, r := range name {
		switch r {
		case '[', ']', '\'', '#', ',', ':':
			sb.WriteByte('\'')
		}
		sb.WriteRune(r)
	}
}

// specialItems собирает токены областей в каноническом порядке.
func (t TableRef) specialItems() []string {
	var items []string
	if t.RowRange == RowRangeThisRow {
		items = append(items, "#THIS ROW")
		if t.Headers {
			items = append(items, "#HEADERS")
		}
		if t.Totals {
			items = append(items, "#TOTALS")
		}
		return items
	}
	switch {
	case t.Data && t.Headers && t.Totals:
		items = append(items, "#ALL")
	case t.Data && t.Headers:
		items = append(items, "#HEADERS", "#DATA")
	case t.Data && t.Totals:
		items = append(items, "#DATA", "#TOTALS")
	case t.Headers && t.Totals:
		items = append(items, "#HEADERS", "#TOTALS")
	case t.Headers:
		items = append(items, "#HEADERS")
	case t.Totals:
		items = append(items, "#TOTALS")
	}
	return items
}

func (t TableRef) write(sb *strings.Builder) {
	sb.WriteString(t.TableName)

	items := t.specialItems()

	// Голое имя уже означает строки данных всей таблицы.
	if len(items) == 0 && t.ColRange.Kind == ColKindAll {
		return
	}

	// Одиночный элемент пишется в одинарных скобках: Table1[Col1].
	// Разбор такой записи минует лексер, поэтому имя со служебными
	// символами прячется во внутренние скобки с экранированием.
	if len(items) == 1 && t.ColRange.Kind == ColKindAll {
		sb.WriteByte('[')
		sb.WriteString(items[0])
		sb.WriteByte(']')
		return
	}
	if len(items) == 0 && t.ColRange.Kind == ColKindCol {
		if strings.ContainsAny(t.ColRange.From, "[]'#,:") {
			sb.WriteString("[[")
			escapeColName(sb, t.ColRange.From)
			sb.WriteString("]]")
			return
		}
		sb.WriteByte('[')
		sb.WriteString(t.ColRange.From)
		sb.WriteByte(']')
		return
	}

	// Всё остальное требует внешних скобок вокруг списка элементов.
	sb.WriteByte('[')
	for i, it := range items {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('[')
		sb.WriteString(it)
		sb.WriteByte(']')
	}
	switch t.ColRange.Kind {
	case ColKindCol:
		if len(items) > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('[')
		escapeColName(sb, t.ColRange.From)
		sb.WriteByte(']')
	case ColKindRange:
		if len(items) > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('[')
		escapeColName(sb, t.ColRange.From)
		sb.WriteString("]:[")
		escapeColName(sb, t.ColRange.To)
		sb.WriteByte(']')
	case ColKindToEnd:
		if len(items) > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('[')
		escapeColName(sb, t.ColRange.From)
		sb.WriteString("]:")
	}
	sb.WriteByte(']')
}

// String каноническая запись ссылки. Повторный разбор строки даёт
// то же значение.
func (t TableRef) String() string {
	var sb strings.Builder
	t.write(&sb)
	return sb.String()
}
