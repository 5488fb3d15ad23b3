package a1

import (
	"regexp"
	"strings"
)

// tableNameRE имя таблицы и необязательное содержимое скобок.
var tableNameRE = regexp.MustCompile(`^([a-zA-Z0-9_.-]{1,255})(?:\[(.*)\])?$`)

// parseTableName отделяет имя таблицы от содержимого скобок.
func parseTableName(s string) (string, string, error) {
	m := tableNameRE.FindStringSubmatch(s)
	if m == nil {
		return "", "", errText(ErrInvalidTableRef, "недопустимое имя таблицы")
	}
	return m[1], strings.TrimSpace(m[2]), nil
}

// ParseTableRef разбирает табличную ссылку вида Table1 или
// Table1[...]. Имя таблицы и имена столбцов сверяются с контекстом без
// учёта регистра и возвращаются в каноническом написании. Числовые
// указания строк лексер принимает, но здесь они отвергаются.
func ParseTableRef(s string, ctx *Context) (TableRef, error) {
	name, remaining, err := parseTableName(s)
	if err != nil {
		return TableRef{}, err
	}
	table := ctx.TryTable(name)
	if table == nil {
		return TableRef{}, errText(ErrUnknownTable, name)
	}

	// Голое имя читается как строки данных всей таблицы.
	if remaining == "" {
		return NewTableRef(table.TableName), nil
	}

	tokens, err := tokenizeTableBody(remaining)
	if err != nil {
		return TableRef{}, err
	}

	var (
		colRange  ColRange
		colSet    bool
		dataVal   bool
		dataKnown bool
		headers   bool
		totals    bool
		thisRow   bool
	)

	// canonicalCol разрешает имя столбца и возвращает написание из
	// таблицы. Префикс @ перед первым именем выбирает текущую строку.
	canonicalCol := func(raw string) (string, error) {
		if rest, ok := strings.CutPrefix(raw, "@"); ok {
			thisRow = true
			raw = rest
		}
		index, ok := table.TryColIndex(raw)
		if !ok {
			return "", errText(ErrUnknownColumn, raw)
		}
		return table.VisibleColumns[index], nil
	}

	for _, tok := range tokens {
		switch tok.kind {
		case tokColumn:
			if colSet {
				return TableRef{}, errText(ErrInvalidTableRef, "столбец указан дважды")
			}
			col, err := canonicalCol(tok.a)
			if err != nil {
				return TableRef{}, err
			}
			colRange, colSet = NewCol(col), true
		case tokColumnRange:
			if colSet {
				return TableRef{}, errText(ErrInvalidTableRef, "столбец указан дважды")
			}
			from, err := canonicalCol(tok.a)
			if err != nil {
				return TableRef{}, err
			}
			to, ok := table.TryColIndex(tok.b)
			if !ok {
				return TableRef{}, errText(ErrUnknownColumn, tok.b)
			}
			colRange, colSet = NewColRange(from, table.VisibleColumns[to]), true
		case tokColumnToEnd:
			if colSet {
				return TableRef{}, errText(ErrInvalidTableRef, "столбец указан дважды")
			}
			from, err := canonicalCol(tok.a)
			if err != nil {
				return TableRef{}, err
			}
			colRange, colSet = NewColToEnd(from), true
		case tokAll:
			headers = true
			totals = true
			dataVal, dataKnown = true, true
		case tokHeaders:
			if !dataKnown {
				dataVal, dataKnown = false, true
			}
			headers = true
		case tokTotals:
			if !dataKnown {
				dataVal, dataKnown = false, true
			}
			totals = true
		case tokData:
			dataVal, dataKnown = true, true
		case tokThisRow:
			thisRow = true
		case tokRowRange:
			return TableRef{}, errText(ErrInvalidTableRef, "ссылки на строки таблицы не поддерживаются")
		}
	}

	data := dataVal
	if !dataKnown {
		data = true
	}
	rowRange := RowRangeAll
	if thisRow {
		data = false
		rowRange = RowRangeThisRow
	}

	return TableRef{
		TableName: table.TableName,
		Data:      data,
		Headers:   headers,
		Totals:    totals,
		ColRange:  colRange,
		RowRange:  rowRange,
	}, nil
}
