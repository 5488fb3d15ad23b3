package a1

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"gridref/internal/grid"
)

// foldName приводит имя листа, таблицы или колонки к канонической
// форме для регистронезависимого поиска: NFC плюс case folding.
func foldName(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

// Sheet — пара имя/идентификатор, из которых собирается контекст.
type Sheet struct {
	Name string
	ID   grid.SheetID
}

// Context — неизменяемый снимок структуры книги: имена листов и карта
// таблиц. Пересобирается целиком при каждом структурном изменении и
// после сборки не мутирует, поэтому его можно читать из любого числа
// горутин без синхронизации.
type Context struct {
	sheetsByName map[string]grid.SheetID
	namesByID    map[grid.SheetID]string
	tables       []*TableMapEntry
	tablesByName map[string]*TableMapEntry
}

// NewContext собирает снимок. Листы и таблицы с совпадающими (после
// каноникализации) именами перекрывают более ранние записи.
func NewContext(sheets []Sheet, tables []*TableMapEntry) *Context {
	c := &Context{
		sheetsByName: make(map[string]grid.SheetID, len(sheets)),
		namesByID:    make(map[grid.SheetID]string, len(sheets)),
		tables:       tables,
		tablesByName: make(map[string]*TableMapEntry, len(tables)),
	}
	for _, s := range sheets {
		c.sheetsByName[foldName(s.Name)] = s.ID
		c.namesByID[s.ID] = s.Name
	}
	for _, t := range tables {
		c.tablesByName[foldName(t.TableName)] = t
	}
	return c
}

// TrySheetID ищет лист по имени без учёта регистра.
func (c *Context) TrySheetID(name string) (grid.SheetID, bool) {
	id, ok := c.sheetsByName[foldName(name)]
	return id, ok
}

// TrySheetName возвращает имя листа в исходном написании.
func (c *Context) TrySheetName(id grid.SheetID) (string, bool) {
	name, ok := c.namesByID[id]
	return name, ok
}

// TryTable ищет таблицу по имени без учёта регистра. nil, если такой нет.
func (c *Context) TryTable(name string) *TableMapEntry {
	return c.tablesByName[foldName(name)]
}

// TableFromPos возвращает первую таблицу, чьи границы содержат позицию.
func (c *Context) TableFromPos(pos grid.SheetPos) *TableMapEntry {
	for _, t := range c.tables {
		if t.Contains(pos) {
			return t
		}
	}
	return nil
}

// TablesInRect перечисляет таблицы листа, пересекающиеся с прямоугольником.
func (c *Context) TablesInRect(sheet grid.SheetID, rect grid.Rect) []*TableMapEntry {
	var out []*TableMapEntry
	for _, t := range c.tables {
		if t.SheetID == sheet && t.Bounds.Intersects(rect) {
			out = append(out, t)
		}
	}
	return out
}

// Tables отдаёт все таблицы в порядке добавления. Слайс общий,
// вызывающий не должен его менять.
func (c *Context) Tables() []*TableMapEntry {
	return c.tables
}

// SheetCount возвращает число известных листов.
func (c *Context) SheetCount() int {
	return len(c.namesByID)
}
