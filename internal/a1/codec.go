package a1

import (
	"math"
	"strings"
)

// ColumnName переводит номер столбца в буквенную запись:
// 1 -> A, 26 -> Z, 27 -> AA, 703 -> AAA. Нумерация биективная,
// нулевой цифры нет. Для нуля и отрицательных возвращает "".
func ColumnName(col int64) string {
	var buf []byte
	for col > 0 {
		col--
		buf = append(buf, byte(col%26)+'A')
		col /= 26
	}
	// разворот
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// ColumnFromName разбирает буквенную запись столбца. Регистр не важен,
// пробелы по краям игнорируются. Пустая строка, посторонние символы
// и переполнение дают ok=false.
func ColumnFromName(name string) (int64, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return 0, false
	}
	var result int64
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c < 'A' || c > 'Z' {
			return 0, false
		}
		d := int64(c - 'A' + 1)
		if result > (math.MaxInt64-d)/26 {
			return 0, false
		}
		result = result*26 + d
	}
	return result, true
}
