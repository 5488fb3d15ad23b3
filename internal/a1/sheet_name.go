package a1

import (
	"strings"
	"unicode"

	"gridref/internal/grid"
)

// UnknownSheetName печатается вместо имени листа, когда идентификатор
// не находится в контексте.
const UnknownSheetName = "Unknown"

// sheetNamePlain сообщает, пишется ли имя листа перед "!" без кавычек.
// Достаточно букв, цифр и подчёркиваний в любом алфавите.
func sheetNamePlain(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

// QuoteSheetName возвращает имя листа в записи перед "!". Имена со
// служебными символами берутся в одинарные кавычки, кавычка внутри
// удваивается.
func QuoteSheetName(name string) string {
	if sheetNamePlain(name) {
		return name
	}
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

// splitSheetName отделяет префикс листа от остатка ссылки. Возвращает
// hasName=false, когда разделителя "!" нет. Имя в кавычках может
// содержать любые символы, включая сам разделитель.
func splitSheetName(s string) (name, rest string, hasName bool, err error) {
	if !strings.HasPrefix(s, "'") {
		idx := strings.IndexByte(s, '!')
		if idx < 0 {
			return "", s, false, nil
		}
		name = s[:idx]
		if name == "" {
			return "", "", false, errText(ErrInvalidSheetName, s)
		}
		return name, s[idx+1:], true, nil
	}

	var sb strings.Builder
	i := 1
	for {
		j := strings.IndexByte(s[i:], '\'')
		if j < 0 {
			// кавычка не закрыта
			return "", "", false, errText(ErrInvalidSheetName, s)
		}
		sb.WriteString(s[i : i+j])
		i += j + 1
		if i < len(s) && s[i] == '\'' {
			sb.WriteByte('\'')
			i++
			continue
		}
		break
	}
	if i >= len(s) || s[i] != '!' {
		return "", "", false, errText(ErrInvalidSheetName, s)
	}
	name = sb.String()
	if name == "" {
		return "", "", false, errText(ErrInvalidSheetName, s)
	}
	return name, s[i+1:], true, nil
}

// parseOptionalSheetID выделяет префикс листа и разрешает его в
// идентификатор через контекст. Ссылка без префикса остаётся на def.
func parseOptionalSheetID(s string, def grid.SheetID, ctx *Context) (rest string, id grid.SheetID, err error) {
	name, rest, hasName, err := splitSheetName(s)
	if err != nil {
		return "", "", err
	}
	if !hasName {
		return rest, def, nil
	}
	sheetID, ok := ctx.TrySheetID(name)
	if !ok {
		return "", "", errText(ErrUnknownSheet, name)
	}
	return rest, sheetID, nil
}
