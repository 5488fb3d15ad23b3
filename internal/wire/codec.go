// Package wire сериализует выделения для передачи и кеширования.
// Формат: msgpack-пакет с номером схемы и каноническими строками
// диапазонов; структурная форма восстанавливается повторным разбором,
// поэтому пакет переживает добавление полей в типы пакета a1.
package wire

import (
	"bytes"
	"errors"
	"fmt"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"gridref/internal/a1"
	"gridref/internal/grid"
)

// Current schema version - increment when Payload format changes
const schemaVersion uint16 = 1

// ErrSchema возвращается при чтении пакета с другим номером схемы.
var ErrSchema = errors.New("unsupported wire schema")

// Payload — дисковое/сетевое представление выделения.
type Payload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	SheetID string
	CursorX int64
	CursorY int64

	// Канонические строки диапазонов в порядке выделения.
	Ranges []string
}

// EncodeSelection упаковывает выделение в msgpack.
func EncodeSelection(s a1.Selection) ([]byte, error) {
	p := Payload{
		Schema:  schemaVersion,
		SheetID: string(s.SheetID),
		CursorX: s.Cursor.X,
		CursorY: s.Cursor.Y,
		Ranges:  make([]string, 0, len(s.Ranges)),
	}
	for _, r := range s.Ranges {
		if !r.IsValid() {
			return nil, fmt.Errorf("range %v is not printable", r)
		}
		p.Ranges = append(p.Ranges, r.String())
	}

	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := enc.Encode(&p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeSelection распаковывает выделение. Контекст нужен для разбора
// табличных диапазонов (канонизация имён таблиц и колонок).
func DecodeSelection(data []byte, ctx *a1.Context) (a1.Selection, error) {
	var p Payload
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&p); err != nil {
		return a1.Selection{}, err
	}
	if p.Schema != schemaVersion {
		return a1.Selection{}, fmt.Errorf("%w: got %d, want %d", ErrSchema, p.Schema, schemaVersion)
	}

	if _, err := safecast.Conv[uint32](len(p.Ranges)); err != nil {
		return a1.Selection{}, fmt.Errorf("range list overflow: %w", err)
	}
	ranges := make([]a1.CellRefRange, 0, len(p.Ranges))
	for _, text := range p.Ranges {
		r, err := a1.ParseCellRefRange(text, ctx)
		if err != nil {
			return a1.Selection{}, fmt.Errorf("range %q: %w", text, err)
		}
		ranges = append(ranges, r)
	}

	sel := a1.NewSelectionFromRanges(ranges, grid.SheetID(p.SheetID), ctx)
	sel.Cursor = grid.NewPos(p.CursorX, p.CursorY)
	return sel, nil
}
