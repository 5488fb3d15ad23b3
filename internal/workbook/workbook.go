// Package workbook загружает описание книги (листы, таблицы) из TOML
// и собирает из него неизменяемый a1.Context. Файл описывает только
// структуру: содержимое ячеек движку ссылок не нужно.
package workbook

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"gridref/internal/a1"
	"gridref/internal/grid"
)

// Workbook — загруженная книга: контекст плюс лист по умолчанию для
// ссылок без явного префикса листа.
type Workbook struct {
	Name         string
	DefaultSheet grid.SheetID
	Context      *a1.Context
}

type workbookConfig struct {
	Name         string        `toml:"name"`
	DefaultSheet string        `toml:"default_sheet"`
	Sheets       []sheetConfig `toml:"sheet"`
	Tables       []tableConfig `toml:"table"`
}

type sheetConfig struct {
	ID   string `toml:"id"`
	Name string `toml:"name"`
}

// ShowName/ShowColumns — указатели, чтобы отличить «не задано»
// (по умолчанию true) от явного false: md.IsDefined не адресует
// отдельные элементы [[table]].
type tableConfig struct {
	Name             string       `toml:"name"`
	Sheet            string       `toml:"sheet"`
	Bounds           boundsConfig `toml:"bounds"`
	Columns          []string     `toml:"columns"`
	Hidden           []string     `toml:"hidden"`
	ShowName         *bool        `toml:"show_name"`
	ShowColumns      *bool        `toml:"show_columns"`
	HeaderIsFirstRow bool         `toml:"header_is_first_row"`
	HTMLImage        bool         `toml:"html_image"`
	Language         string       `toml:"language"`
}

type boundsConfig struct {
	X int64 `toml:"x"`
	Y int64 `toml:"y"`
	W int64 `toml:"w"`
	H int64 `toml:"h"`
}

var languages = map[string]a1.TableLanguage{
	"import":     a1.LanguageImport,
	"formula":    a1.LanguageFormula,
	"python":     a1.LanguagePython,
	"javascript": a1.LanguageJavascript,
	"connection": a1.LanguageConnection,
}

// Default возвращает книгу-заглушку с единственным пустым листом.
// Используется CLI, когда --workbook не задан.
func Default() *Workbook {
	const id grid.SheetID = "sheet-1"
	return &Workbook{
		Name:         "workbook",
		DefaultSheet: id,
		Context:      a1.NewContext([]a1.Sheet{{Name: "Sheet1", ID: id}}, nil),
	}
}

// Load читает и валидирует описание книги.
func Load(path string) (*Workbook, error) {
	var cfg workbookConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	wb, err := build(&cfg, md)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return wb, nil
}

func build(cfg *workbookConfig, md toml.MetaData) (*Workbook, error) {
	if !md.IsDefined("sheet") || len(cfg.Sheets) == 0 {
		return nil, fmt.Errorf("missing [[sheet]]: workbook needs at least one sheet")
	}

	sheets := make([]a1.Sheet, 0, len(cfg.Sheets))
	seenIDs := make(map[string]bool, len(cfg.Sheets))
	seenNames := make(map[string]bool, len(cfg.Sheets))
	byName := make(map[string]grid.SheetID, len(cfg.Sheets))
	for i, s := range cfg.Sheets {
		if strings.TrimSpace(s.ID) == "" {
			return nil, fmt.Errorf("sheet #%d: missing id", i+1)
		}
		if strings.TrimSpace(s.Name) == "" {
			return nil, fmt.Errorf("sheet %q: missing name", s.ID)
		}
		if seenIDs[s.ID] {
			return nil, fmt.Errorf("duplicate sheet id %q", s.ID)
		}
		key := strings.ToLower(s.Name)
		if seenNames[key] {
			return nil, fmt.Errorf("duplicate sheet name %q", s.Name)
		}
		seenIDs[s.ID] = true
		seenNames[key] = true
		byName[key] = grid.SheetID(s.ID)
		sheets = append(sheets, a1.Sheet{Name: s.Name, ID: grid.SheetID(s.ID)})
	}

	tables := make([]*a1.TableMapEntry, 0, len(cfg.Tables))
	seenTables := make(map[string]bool, len(cfg.Tables))
	for i, tc := range cfg.Tables {
		entry, err := buildTable(i, tc, byName)
		if err != nil {
			return nil, err
		}
		key := strings.ToLower(entry.TableName)
		if seenTables[key] {
			return nil, fmt.Errorf("duplicate table name %q", entry.TableName)
		}
		seenTables[key] = true
		tables = append(tables, entry)
	}

	def := sheets[0].ID
	if cfg.DefaultSheet != "" {
		id, ok := byName[strings.ToLower(cfg.DefaultSheet)]
		if !ok {
			return nil, fmt.Errorf("default_sheet %q is not a declared sheet", cfg.DefaultSheet)
		}
		def = id
	}

	name := cfg.Name
	if name == "" {
		name = "workbook"
	}
	return &Workbook{
		Name:         name,
		DefaultSheet: def,
		Context:      a1.NewContext(sheets, tables),
	}, nil
}

func buildTable(i int, tc tableConfig, byName map[string]grid.SheetID) (*a1.TableMapEntry, error) {
	if strings.TrimSpace(tc.Name) == "" {
		return nil, fmt.Errorf("table #%d: missing name", i+1)
	}
	sheetID, ok := byName[strings.ToLower(tc.Sheet)]
	if !ok {
		return nil, fmt.Errorf("table %q: sheet %q is not declared", tc.Name, tc.Sheet)
	}
	if tc.Bounds.X < 1 || tc.Bounds.Y < 1 || tc.Bounds.W < 1 || tc.Bounds.H < 1 {
		return nil, fmt.Errorf("table %q: bounds must be positive (x, y, w, h >= 1)", tc.Name)
	}
	if len(tc.Columns) == 0 && !tc.HTMLImage {
		return nil, fmt.Errorf("table %q: missing columns", tc.Name)
	}

	hidden := make(map[string]bool, len(tc.Hidden))
	for _, h := range tc.Hidden {
		hidden[strings.ToLower(h)] = true
	}
	seenCols := make(map[string]bool, len(tc.Columns))
	visible := make([]string, 0, len(tc.Columns))
	for _, c := range tc.Columns {
		key := strings.ToLower(c)
		if seenCols[key] {
			return nil, fmt.Errorf("table %q: duplicate column %q", tc.Name, c)
		}
		seenCols[key] = true
		if !hidden[key] {
			visible = append(visible, c)
		}
	}
	for _, h := range tc.Hidden {
		if !seenCols[strings.ToLower(h)] {
			return nil, fmt.Errorf("table %q: hidden column %q is not in columns", tc.Name, h)
		}
	}

	// Имя и заголовки по умолчанию показаны; выключаются явно.
	showName := true
	if tc.ShowName != nil {
		showName = *tc.ShowName
	}
	showColumns := true
	if tc.ShowColumns != nil {
		showColumns = *tc.ShowColumns
	}

	lang := a1.LanguageImport
	if tc.Language != "" {
		l, ok := languages[strings.ToLower(tc.Language)]
		if !ok {
			return nil, fmt.Errorf("table %q: unknown language %q", tc.Name, tc.Language)
		}
		lang = l
	}

	return &a1.TableMapEntry{
		SheetID:        sheetID,
		TableName:      tc.Name,
		VisibleColumns: visible,
		AllColumns:     tc.Columns,
		Bounds: grid.NewRect(
			tc.Bounds.X, tc.Bounds.Y,
			tc.Bounds.X+tc.Bounds.W-1, tc.Bounds.Y+tc.Bounds.H-1,
		),
		ShowName:         showName,
		ShowColumns:      showColumns,
		HeaderIsFirstRow: tc.HeaderIsFirstRow,
		IsHTMLImage:      tc.HTMLImage,
		Language:         lang,
	}, nil
}
