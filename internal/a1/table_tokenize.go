package a1

import (
	"strconv"
	"strings"

	"gridref/internal/grid"
)

// tableTokenKind вид лексемы внутри скобок табличной ссылки.
type tableTokenKind uint8

const (
	tokAll tableTokenKind = iota
	tokHeaders
	tokData
	tokTotals
	tokThisRow
	tokColumn
	tokColumnRange
	tokColumnToEnd
	tokRowRange
)

// tableToken лексема табличной ссылки. Для столбцов заполнены a и b,
// для числовых строк lo и hi.
type tableToken struct {
	kind   tableTokenKind
	a, b   string
	lo, hi int64
}

// tokenizeTableRows разбирает содержимое #-элемента как указание строк:
// номер, диапазон номеров, LAST или THIS ROW.
func tokenizeTableRows(s string) (tableToken, error) {
	s = strings.ToUpper(strings.TrimSpace(s))

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return tableToken{kind: tokRowRange, lo: n, hi: n}, nil
	}
	if s == "LAST" {
		return tableToken{kind: tokRowRange, lo: grid.Unbounded, hi: grid.Unbounded}, nil
	}
	// Пробелы внутри одинарных скобок съедаются, поэтому допускаем
	// оба написания.
	if s == "THIS ROW" || s == "THISROW" {
		return tableToken{kind: tokThisRow}, nil
	}

	if lo, hi, ok := strings.Cut(s, ":"); ok {
		lo, hi = strings.TrimSpace(lo), strings.TrimSpace(hi)
		start, err := strconv.ParseInt(lo, 10, 64)
		if err != nil {
			return tableToken{}, errText(ErrInvalidTableRef, "недопустимый номер строки")
		}
		if hi == "" {
			return tableToken{kind: tokRowRange, lo: start, hi: grid.Unbounded}, nil
		}
		end, err := strconv.ParseInt(hi, 10, 64)
		if err != nil {
			return tableToken{}, errText(ErrInvalidTableRef, "недопустимый номер строки")
		}
		return tableToken{kind: tokRowRange, lo: start, hi: end}, nil
	}

	return tableToken{}, errText(ErrInvalidTableRef, "недопустимое указание строк")
}

// bracketedEntries режет содержимое скобок на элементы. Двойные скобки
// и тик экранируют служебные символы, пробелы внутри #-элементов
// съедаются, двоеточие между элементами выдаётся отдельной записью ":".
func bracketedEntries(s string) ([]string, error) {
	var entries []string

	inDouble := false  // внутри [[...]]
	inSpecial := false // внутри #-элемента
	brackets := 0

	var entry strings.Builder
	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		c := rs[i]
		switch c {
		case '#':
			if !inDouble {
				inSpecial = true
			}
			entry.WriteRune(c)
		case ' ':
			if entry.Len() > 0 && !inSpecial {
				entry.WriteRune(c)
			}
		case '[':
			if brackets == 1 {
				inDouble = true
			}
			brackets++
			if brackets > 2 {
				return nil, errText(ErrInvalidTableRef, "неожиданная [")
			}
		case ']':
			brackets--
			if brackets < 0 {
				return nil, errText(ErrInvalidTableRef, "неожиданная ]")
			}
			if brackets == 1 {
				inDouble = false
			}
			inSpecial = false
		case '\'':
			if i+1 >= len(rs) {
				return nil, errText(ErrInvalidTableRef, "незавершённое экранирование '")
			}
			i++
			entry.WriteRune(rs[i])
		case ',':
			if inSpecial || inDouble {
				entry.WriteRune(c)
				break
			}
			if entry.Len() == 0 {
				return nil, errText(ErrInvalidTableRef, "пустой элемент")
			}
			entries = append(entries, strings.TrimSpace(entry.String()))
			entry.Reset()
		case ':':
			if inSpecial || inDouble {
				entry.WriteRune(c)
				break
			}
			if entry.Len() == 0 {
				return nil, errText(ErrInvalidTableRef, "пустой элемент")
			}
			entries = append(entries, strings.TrimSpace(entry.String()), ":")
			entry.Reset()
		default:
			entry.WriteRune(c)
		}
	}
	if brackets != 0 || inDouble {
		return nil, errText(ErrInvalidTableRef, "несбалансированные скобки")
	}
	if entry.Len() > 0 {
		entries = append(entries, entry.String())
	}

	return entries, nil
}

// matchSpecial распознаёт #-элементы: области таблицы и указания строк.
func matchSpecial(s string) (tableToken, bool, error) {
	switch strings.ToUpper(s) {
	case "#HEADERS":
		return tableToken{kind: tokHeaders}, true, nil
	case "#DATA":
		return tableToken{kind: tokData}, true, nil
	case "#TOTALS":
		return tableToken{kind: tokTotals}, true, nil
	case "#ALL":
		return tableToken{kind: tokAll}, true, nil
	}
	if rest, ok := strings.CutPrefix(s, "#"); ok {
		tok, err := tokenizeTableRows(rest)
		if err != nil {
			return tableToken{}, false, err
		}
		return tok, true, nil
	}
	return tableToken{}, false, nil
}

// tokenizeTableBody превращает содержимое скобок в лексемы. Строка без
// скобок читается целиком: либо #-элемент, либо имя столбца.
func tokenizeTableBody(s string) ([]tableToken, error) {
	if !strings.Contains(s, "[") {
		tok, ok, err := matchSpecial(s)
		if err != nil {
			return nil, err
		}
		if ok {
			return []tableToken{tok}, nil
		}
		return []tableToken{{kind: tokColumn, a: s}}, nil
	}

	entries, err := bracketedEntries(s)
	if err != nil {
		return nil, err
	}

	var tokens []tableToken
	for i := 0; i < len(entries); i++ {
		entry := entries[i]
		if entry == ":" {
			return nil, errText(ErrInvalidTableRef, "неожиданное двоеточие")
		}
		if entry == "" {
			continue
		}
		tok, ok, err := matchSpecial(entry)
		if err != nil {
			return nil, err
		}
		if ok {
			tokens = append(tokens, tok)
			continue
		}
		if i+1 < len(entries) && entries[i+1] == ":" {
			i++
			if i+1 < len(entries) {
				i++
				tokens = append(tokens, tableToken{kind: tokColumnRange, a: entry, b: entries[i]})
			} else {
				tokens = append(tokens, tableToken{kind: tokColumnToEnd, a: entry})
			}
			continue
		}
		tokens = append(tokens, tableToken{kind: tokColumn, a: entry})
	}
	return tokens, nil
}
