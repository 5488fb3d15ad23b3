package grid

import "testing"

func TestNewRectNormalizes(t *testing.T) {
	r := NewRect(5, 7, 1, 2)
	if r.Min != (Pos{X: 1, Y: 2}) || r.Max != (Pos{X: 5, Y: 7}) {
		t.Fatalf("углы не нормализованы: %v", r)
	}
	if r.Width() != 5 || r.Height() != 6 {
		t.Fatalf("width/height: %d x %d", r.Width(), r.Height())
	}
}

func TestRectFromNumbers(t *testing.T) {
	r := RectFromNumbers(2, 3, 4, 5)
	if r.Min != (Pos{X: 2, Y: 3}) || r.Max != (Pos{X: 5, Y: 7}) {
		t.Fatalf("RectFromNumbers: %v", r)
	}
	if r.Len() != 20 || r.Count() != 20 {
		t.Fatalf("Len/Count: %d/%d", r.Len(), r.Count())
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(1, 1, 10, 10)
	cases := []struct {
		pos  Pos
		want bool
	}{
		{Pos{1, 1}, true},
		{Pos{10, 10}, true},
		{Pos{5, 5}, true},
		{Pos{0, 5}, false},
		{Pos{5, 11}, false},
	}
	for _, tc := range cases {
		if got := r.Contains(tc.pos); got != tc.want {
			t.Errorf("Contains(%v) = %v, want %v", tc.pos, got, tc.want)
		}
	}
}

func TestRectIntersection(t *testing.T) {
	a := NewRect(1, 1, 5, 5)
	b := NewRect(3, 3, 7, 7)
	got, ok := a.Intersection(b)
	if !ok || got != NewRect(3, 3, 5, 5) {
		t.Fatalf("Intersection = %v, ok=%v", got, ok)
	}
	if _, ok := a.Intersection(NewRect(6, 6, 8, 8)); ok {
		t.Fatal("непересекающиеся прямоугольники дали пересечение")
	}
	if !a.Intersects(b) || a.Intersects(NewRect(6, 6, 8, 8)) {
		t.Fatal("Intersects не согласуется с Intersection")
	}
}

func TestRectUnionExtend(t *testing.T) {
	a := NewRect(2, 2, 3, 3)
	u := a.Union(NewRect(5, 1, 6, 2))
	if u != NewRect(2, 1, 6, 3) {
		t.Fatalf("Union = %v", u)
	}
	a.ExtendTo(Pos{X: 9, Y: 9})
	if a != NewRect(2, 2, 9, 9) {
		t.Fatalf("ExtendTo = %v", a)
	}
	a.ExtendX(1)
	a.ExtendY(12)
	if a != NewRect(1, 2, 9, 12) {
		t.Fatalf("ExtendX/Y = %v", a)
	}
}

func TestRectSubtractHole(t *testing.T) {
	// дырка в центре: четыре полосы в фиксированном порядке
	r := NewRect(1, 1, 5, 5)
	got := r.Subtract(NewRect(2, 2, 4, 4))
	want := []Rect{
		NewRect(1, 1, 5, 1),
		NewRect(1, 5, 5, 5),
		NewRect(1, 2, 1, 4),
		NewRect(5, 2, 5, 4),
	}
	if len(got) != len(want) {
		t.Fatalf("полос %d, ожидали %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("полоса %d: %v, ожидали %v", i, got[i], want[i])
		}
	}
}

func TestRectSubtractEdgeCases(t *testing.T) {
	r := NewRect(1, 1, 5, 5)
	if got := r.Subtract(r); len(got) != 0 {
		t.Fatalf("вычитание самого себя: %v", got)
	}
	if got := r.Subtract(NewRect(10, 10, 12, 12)); len(got) != 1 || got[0] != r {
		t.Fatalf("вычитание непересекающегося: %v", got)
	}
	// срез слева: остаётся одна правая полоса
	if got := r.Subtract(NewRect(1, 1, 2, 5)); len(got) != 1 || got[0] != NewRect(3, 1, 5, 5) {
		t.Fatalf("срез слева: %v", got)
	}
}

func TestRectFromPositions(t *testing.T) {
	if _, ok := RectFromPositions(nil); ok {
		t.Fatal("пустой вход должен дать ok=false")
	}
	r, ok := RectFromPositions([]Pos{{3, 4}, {1, 9}, {5, 2}})
	if !ok || r != NewRect(1, 2, 5, 9) {
		t.Fatalf("RectFromPositions = %v, ok=%v", r, ok)
	}
}

func TestRectPositions(t *testing.T) {
	r := NewRect(1, 1, 2, 2)
	got := r.Positions()
	want := []Pos{{1, 1}, {2, 1}, {1, 2}, {2, 2}}
	if len(got) != len(want) {
		t.Fatalf("Positions len = %d", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Positions[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPosTranslate(t *testing.T) {
	p := Pos{X: 2, Y: 3}
	if got := p.Translate(-5, 1, 1, 1); got != (Pos{X: 1, Y: 4}) {
		t.Fatalf("Translate clamp: %v", got)
	}
	if got := p.Translate(1, 1, 1, 1); got != (Pos{X: 3, Y: 4}) {
		t.Fatalf("Translate: %v", got)
	}
}

func TestRectTranslate(t *testing.T) {
	r := NewRect(2, 2, 4, 4).Translate(1, -1)
	if r != NewRect(3, 1, 5, 3) {
		t.Fatalf("Translate = %v", r)
	}
}
