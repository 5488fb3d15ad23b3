package diag

import (
	"errors"

	"gridref/internal/a1"
)

// errCodes перечислен в порядке проверки: более специфичные базовые
// ошибки стоят раньше общих (ErrInvalidRange ловит почти всё, поэтому
// он в конце своей полосы).
var errCodes = []struct {
	base error
	code Code
}{
	{a1.ErrSpuriousDollar, RefSpuriousDollar},
	{a1.ErrInvalidColumn, RefInvalidColumn},
	{a1.ErrInvalidRow, RefInvalidRow},
	{a1.ErrInvalidExclusion, RefInvalidExclusion},
	{a1.ErrOutOfBounds, RefOutOfBounds},
	{a1.ErrInvalidSheetName, RefInvalidSheetName},
	{a1.ErrTooManySheets, RefTooManySheets},
	{a1.ErrUnknownSheet, RefUnknownSheet},
	{a1.ErrInvalidCellRef, RefInvalidCellRef},
	{a1.ErrInvalidTableRef, TblInvalidTableRef},
	{a1.ErrUnknownTable, TblUnknownTable},
	{a1.ErrUnknownColumn, TblUnknownColumn},
	{a1.ErrNotResolvable, TblNotResolvable},
	{a1.ErrInvalidRange, RefInvalidRange},
}

// CodeForError сопоставляет ошибке пакета a1 устойчивый код.
// Для незнакомых ошибок возвращает UnknownCode.
func CodeForError(err error) Code {
	for _, ec := range errCodes {
		if errors.Is(err, ec.base) {
			return ec.code
		}
	}
	return UnknownCode
}

// FromError заворачивает ошибку разбора в диагностику уровня Error
// с приложенным исходным текстом ссылки.
func FromError(err error, input string) Diagnostic {
	return NewError(CodeForError(err), err.Error()).WithInput(input, Span{})
}
