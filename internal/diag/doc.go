// Package diag defines the diagnostic model the CLI builds on top of
// plain errors from internal/a1 and internal/workbook.
//
// Библиотечные пакеты возвращают обычные error; в диагностику с
// устойчивым числовым кодом, позицией и заметками их заворачивает
// только внешний слой (cmd, internal/workbook). Коды разбиты на
// полосы: 1000-е — грамматика ссылок, 2000-е — разрешение таблиц,
// 3000-е — операции над выделением, 4000-е — ввод/вывод и конфиг.
//
// Package diag не форматирует и не печатает: рендеринг живёт в
// internal/diagfmt, пакет отвечает только за детерминированные,
// сериализуемые структуры данных (Diagnostic, Bag) и отображение
// ошибок в коды.
package diag
