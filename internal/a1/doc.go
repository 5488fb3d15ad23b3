// Package a1 реализует разбор, печать и алгебру ссылок в нотации A1:
// отдельные ячейки, прямоугольники, бесконечные столбцы и строки,
// табличные ссылки вида Table1[Col] и списки диапазонов с курсором.
//
// Все операции чистые. Контекст листов и таблиц (Context) передаётся
// только на чтение и может использоваться из нескольких горутин;
// методы, мутирующие A1Selection, требуют эксклюзивного доступа
// к конкретному экземпляру.
//
// Ошибки возвращаются обычными значениями error поверх базовых
// ошибок из errors.go, без кодов диагностик. Сопоставление ошибок
// с кодами делает вызывающий слой.
package a1
