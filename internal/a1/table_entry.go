package a1

import (
	"gridref/internal/grid"
)

// TableLanguage — происхождение содержимого таблицы.
type TableLanguage string

const (
	LanguageImport     TableLanguage = "import"
	LanguageFormula    TableLanguage = "formula"
	LanguagePython     TableLanguage = "python"
	LanguageJavascript TableLanguage = "javascript"
	LanguageConnection TableLanguage = "connection"
)

// TableMapEntry — метаданные одной именованной таблицы. Владеет ими
// сетка: при любом структурном изменении запись пересобирается целиком,
// здесь она только читается.
//
// VisibleColumns хранит показанные колонки в экранном порядке,
// AllColumns — полный список вместе со скрытыми. Bounds покрывает всю
// таблицу на листе, включая строку имени и строку заголовков, когда
// они показаны.
type TableMapEntry struct {
	SheetID          grid.SheetID
	TableName        string
	VisibleColumns   []string
	AllColumns       []string
	Bounds           grid.Rect
	ShowName         bool
	ShowColumns      bool
	IsHTMLImage      bool
	HeaderIsFirstRow bool
	Language         TableLanguage
}

// ToSheetRows возвращает первую и последнюю строку таблицы в
// координатах листа.
func (t *TableMapEntry) ToSheetRows() (int64, int64) {
	return t.Bounds.Min.Y, t.Bounds.Max.Y
}

// TryColIndex ищет колонку среди видимых без учёта регистра.
// Индекс не включает смещение таблицы по листу.
func (t *TableMapEntry) TryColIndex(col string) (int64, bool) {
	want := foldName(col)
	for i, c := range t.VisibleColumns {
		if foldName(c) == want {
			return int64(i), true
		}
	}
	return 0, false
}

// TryColClosest возвращает индекс видимой колонки либо, если колонка
// скрыта, ближайшей видимой в заданном направлении (after — вперёд).
// Когда в этом направлении видимых нет, берётся граничная видимая
// колонка. Неудача только если имени нет вовсе или видимых колонок ноль.
func (t *TableMapEntry) TryColClosest(col string, after bool) (int64, bool) {
	if i, ok := t.TryColIndex(col); ok {
		return i, true
	}

	want := foldName(col)
	allPos := -1
	for i, c := range t.AllColumns {
		if foldName(c) == want {
			allPos = i
			break
		}
	}
	if allPos < 0 {
		return 0, false
	}

	if after {
		for i := allPos; i < len(t.AllColumns); i++ {
			if vis, ok := t.TryColIndex(t.AllColumns[i]); ok {
				return vis, true
			}
		}
		if n := len(t.VisibleColumns); n > 0 {
			return int64(n - 1), true
		}
		return 0, false
	}

	for i := allPos - 1; i >= 0; i-- {
		if vis, ok := t.TryColIndex(t.AllColumns[i]); ok {
			return vis, true
		}
	}
	if len(t.VisibleColumns) > 0 {
		return 0, true
	}
	return 0, false
}

// TryColRange находит видимый диапазон между двумя именами колонок.
// Результат упорядочен: меньший индекс первым.
func (t *TableMapEntry) TryColRange(col1, col2 string) (int64, int64, bool) {
	start, ok := t.TryColClosest(col1, true)
	if !ok {
		return 0, 0, false
	}
	end, ok := t.TryColClosest(col2, false)
	if !ok {
		return 0, 0, false
	}
	return min(start, end), max(start, end), true
}

// TryColRangeToEnd — диапазон от колонки до последней видимой.
func (t *TableMapEntry) TryColRangeToEnd(col string) (int64, int64, bool) {
	start, ok := t.TryColClosest(col, true)
	if !ok {
		return 0, 0, false
	}
	return start, int64(len(t.VisibleColumns) - 1), true
}

// Contains сообщает, лежит ли позиция внутри границ таблицы.
func (t *TableMapEntry) Contains(pos grid.SheetPos) bool {
	return t.SheetID == pos.SheetID && t.Bounds.Contains(pos.Pos)
}

// ColNameFromIndex возвращает имя видимой колонки по индексу.
func (t *TableMapEntry) ColNameFromIndex(index int) (string, bool) {
	if index < 0 || index >= len(t.VisibleColumns) {
		return "", false
	}
	return t.VisibleColumns[index], true
}

// ColumnIndexFromDisplayIndex переводит индекс видимой колонки в индекс
// той же колонки внутри AllColumns.
func (t *TableMapEntry) ColumnIndexFromDisplayIndex(index int) (int, bool) {
	name, ok := t.ColNameFromIndex(index)
	if !ok {
		return 0, false
	}
	for i, c := range t.AllColumns {
		if c == name {
			return i, true
		}
	}
	return 0, false
}

// YAdjustment — вертикальный сдвиг данных таблицы относительно её
// верхней границы: строка имени и строка заголовков занимают по одной
// строке, когда показаны. Для таблиц, где заголовок лежит в первой
// строке данных, вызывающий может попросить компенсацию.
func (t *TableMapEntry) YAdjustment(adjustForHeaderIsFirstRow bool) int64 {
	var adj int64
	if t.ShowName {
		adj++
	}
	if !t.IsHTMLImage && t.ShowColumns {
		adj++
	}
	if t.HeaderIsFirstRow && adjustForHeaderIsFirstRow {
		adj--
	}
	return adj
}
