package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Грамматика ссылок (A1, диапазоны, листы)
	RefInfo             Code = 1000
	RefInvalidRange     Code = 1001
	RefInvalidCellRef   Code = 1002
	RefInvalidColumn    Code = 1003
	RefInvalidRow       Code = 1004
	RefSpuriousDollar   Code = 1005
	RefInvalidExclusion Code = 1006
	RefOutOfBounds      Code = 1007
	RefInvalidSheetName Code = 1008
	RefTooManySheets    Code = 1009
	RefUnknownSheet     Code = 1010

	// Табличные ссылки и их разрешение
	TblInfo            Code = 2000
	TblInvalidTableRef Code = 2001
	TblUnknownTable    Code = 2002
	TblUnknownColumn   Code = 2003
	TblNotResolvable   Code = 2004

	// Операции над выделением
	SelInfo           Code = 3000
	SelEmptySelection Code = 3001

	// Ввод/вывод, конфигурация книги, wire-формат
	IOInfo            Code = 4000
	IOReadFailed      Code = 4001
	IOWorkbookConfig  Code = 4002
	IOWireSchema      Code = 4003
	IOWriteFailed     Code = 4004
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown error",

	RefInfo:             "reference info",
	RefInvalidRange:     "invalid range",
	RefInvalidCellRef:   "invalid cell reference",
	RefInvalidColumn:    "invalid column",
	RefInvalidRow:       "invalid row",
	RefSpuriousDollar:   "spurious dollar sign",
	RefInvalidExclusion: "invalid exclusion",
	RefOutOfBounds:      "reference out of bounds",
	RefInvalidSheetName: "invalid sheet name",
	RefTooManySheets:    "too many sheets in range",
	RefUnknownSheet:     "unknown sheet",

	TblInfo:            "table info",
	TblInvalidTableRef: "invalid table reference",
	TblUnknownTable:    "unknown table",
	TblUnknownColumn:   "unknown table column",
	TblNotResolvable:   "table reference is not resolvable",

	SelInfo:           "selection info",
	SelEmptySelection: "empty selection",

	IOInfo:           "io info",
	IOReadFailed:     "failed to read input",
	IOWorkbookConfig: "invalid workbook config",
	IOWireSchema:     "unsupported wire schema",
	IOWriteFailed:    "failed to write output",
}

// ID возвращает устойчивый строковый идентификатор кода: полоса + номер.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("REF%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("TBL%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEL%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
