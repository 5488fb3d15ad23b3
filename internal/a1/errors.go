package a1

import (
	"errors"
	"fmt"
)

// Базовые ошибки разбора и разрешения ссылок. Функции пакета
// возвращают обёртки над этими значениями, вызывающий код
// ветвится через errors.Is.
var (
	ErrInvalidRange     = errors.New("invalid range")
	ErrInvalidCellRef   = errors.New("invalid cell reference")
	ErrInvalidColumn    = errors.New("invalid column")
	ErrInvalidRow       = errors.New("invalid row")
	ErrSpuriousDollar   = errors.New("spurious dollar sign")
	ErrInvalidExclusion = errors.New("invalid exclusion")
	ErrOutOfBounds      = errors.New("reference out of bounds")
	ErrInvalidSheetName = errors.New("invalid sheet name")
	ErrTooManySheets    = errors.New("too many sheets in range")
	ErrInvalidTableRef  = errors.New("invalid table reference")
	ErrUnknownTable     = errors.New("unknown table")
	ErrUnknownColumn    = errors.New("unknown table column")
	ErrUnknownSheet     = errors.New("unknown sheet")
	ErrNotResolvable    = errors.New("table reference is not resolvable")
)

// errText оборачивает базовую ошибку с текстом, который её вызвал.
func errText(base error, text string) error {
	return fmt.Errorf("%w: %q", base, text)
}
