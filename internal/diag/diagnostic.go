package diag

import "fmt"

// Span — полуинтервал [Start, End) в байтах внутри Input.
// Нулевой Span означает «позиция неизвестна, подсветить весь ввод».
type Span struct {
	Start int
	End   int
}

func (s Span) IsZero() bool {
	return s.Start == 0 && s.End == 0
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Note — вторичное сообщение к диагностике. Должно добавлять новый
// контекст, а не повторять основной текст.
type Note struct {
	Msg string
}

// Diagnostic — одна находка. Path/Line описывают, откуда пришла
// строка Input (пустой Path — прямой аргумент CLI, Line при этом 0);
// Span указывает внутрь Input.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Path     string
	Line     int
	Input    string
	Span     Span
	Notes    []Note
}

func New(sev Severity, code Code, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
	}
}

func NewError(code Code, msg string) Diagnostic {
	return New(SevError, code, msg)
}

func NewWarning(code Code, msg string) Diagnostic {
	return New(SevWarning, code, msg)
}

// At привязывает диагностику к источнику строки.
func (d Diagnostic) At(path string, line int) Diagnostic {
	d.Path = path
	d.Line = line
	return d
}

// WithInput прикладывает исходный текст ссылки и позицию в нём.
func (d Diagnostic) WithInput(input string, sp Span) Diagnostic {
	d.Input = input
	d.Span = sp
	return d
}

func (d Diagnostic) WithNote(msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Msg: msg})
	return d
}
