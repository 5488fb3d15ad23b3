package grid

import (
	"fmt"
	"math"

	"fortio.org/safecast"
)

// Rect is an axis-aligned rectangle with inclusive corners.
// Constructors normalize so Min is the top-left corner.
type Rect struct {
	Min Pos
	Max Pos
}

func NewRect(x0, y0, x1, y1 int64) Rect {
	return Rect{
		Min: Pos{X: min(x0, x1), Y: min(y0, y1)},
		Max: Pos{X: max(x0, x1), Y: max(y0, y1)},
	}
}

func NewRectSpan(a, b Pos) Rect {
	return NewRect(a.X, a.Y, b.X, b.Y)
}

func SinglePosRect(p Pos) Rect {
	return Rect{Min: p, Max: p}
}

// RectFromNumbers строит прямоугольник из угла и размеров (w, h >= 1).
func RectFromNumbers(x, y, w, h int64) Rect {
	return Rect{
		Min: Pos{X: x, Y: y},
		Max: Pos{X: x + w - 1, Y: y + h - 1},
	}
}

// RectFromPositions covers every given position; ok=false on empty input.
func RectFromPositions(positions []Pos) (Rect, bool) {
	if len(positions) == 0 {
		return Rect{}, false
	}
	r := SinglePosRect(positions[0])
	for _, p := range positions[1:] {
		r.ExtendTo(p)
	}
	return r, true
}

func (r Rect) String() string {
	return fmt.Sprintf("%s-%s", r.Min, r.Max)
}

func (r Rect) Width() int64 {
	return r.Max.X - r.Min.X + 1
}

func (r Rect) Height() int64 {
	return r.Max.Y - r.Min.Y + 1
}

func (r Rect) Len() int64 {
	return r.Width() * r.Height()
}

// Count возвращает Len() как int; при переполнении отдаёт math.MaxInt.
func (r Rect) Count() int {
	n, err := safecast.Conv[int](r.Len())
	if err != nil {
		return math.MaxInt
	}
	return n
}

func (r Rect) Contains(p Pos) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X &&
		p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

func (r Rect) ContainsRect(o Rect) bool {
	return r.Contains(o.Min) && r.Contains(o.Max)
}

func (r Rect) Intersects(o Rect) bool {
	return r.Min.X <= o.Max.X && r.Max.X >= o.Min.X &&
		r.Min.Y <= o.Max.Y && r.Max.Y >= o.Min.Y
}

func (r Rect) Intersection(o Rect) (Rect, bool) {
	x0 := max(r.Min.X, o.Min.X)
	y0 := max(r.Min.Y, o.Min.Y)
	x1 := min(r.Max.X, o.Max.X)
	y1 := min(r.Max.Y, o.Max.Y)
	if x0 > x1 || y0 > y1 {
		return Rect{}, false
	}
	return Rect{Min: Pos{X: x0, Y: y0}, Max: Pos{X: x1, Y: y1}}, true
}

func (r Rect) Union(o Rect) Rect {
	r.UnionInPlace(o)
	return r
}

func (r *Rect) UnionInPlace(o Rect) {
	r.Min.X = min(r.Min.X, o.Min.X)
	r.Min.Y = min(r.Min.Y, o.Min.Y)
	r.Max.X = max(r.Max.X, o.Max.X)
	r.Max.Y = max(r.Max.Y, o.Max.Y)
}

func (r *Rect) ExtendTo(p Pos) {
	r.ExtendX(p.X)
	r.ExtendY(p.Y)
}

func (r *Rect) ExtendX(x int64) {
	r.Min.X = min(r.Min.X, x)
	r.Max.X = max(r.Max.X, x)
}

func (r *Rect) ExtendY(y int64) {
	r.Min.Y = min(r.Min.Y, y)
	r.Max.Y = max(r.Max.Y, y)
}

func (r Rect) Translate(dx, dy int64) Rect {
	return Rect{
		Min: Pos{X: r.Min.X + dx, Y: r.Min.Y + dy},
		Max: Pos{X: r.Max.X + dx, Y: r.Max.Y + dy},
	}
}

// Positions перечисляет все клетки построчно (row-major).
func (r Rect) Positions() []Pos {
	out := make([]Pos, 0, r.Count())
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		for x := r.Min.X; x <= r.Max.X; x++ {
			out = append(out, Pos{X: x, Y: y})
		}
	}
	return out
}

// Subtract вырезает other из r. Порядок полос фиксирован: верхняя и
// нижняя на всю ширину r, левая и правая зажаты по строкам пересечения.
// Этот порядок — контракт совместимости, его нельзя менять.
func (r Rect) Subtract(o Rect) []Rect {
	inter, ok := r.Intersection(o)
	if !ok {
		return []Rect{r}
	}
	if inter == r {
		return nil
	}
	var out []Rect
	if inter.Min.Y > r.Min.Y {
		out = append(out, NewRect(r.Min.X, r.Min.Y, r.Max.X, inter.Min.Y-1))
	}
	if inter.Max.Y < r.Max.Y {
		out = append(out, NewRect(r.Min.X, inter.Max.Y+1, r.Max.X, r.Max.Y))
	}
	if inter.Min.X > r.Min.X {
		out = append(out, NewRect(r.Min.X, inter.Min.Y, inter.Min.X-1, inter.Max.Y))
	}
	if inter.Max.X < r.Max.X {
		out = append(out, NewRect(inter.Max.X+1, inter.Min.Y, r.Max.X, inter.Max.Y))
	}
	return out
}
