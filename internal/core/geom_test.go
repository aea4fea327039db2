package core

import "testing"

func TestPointWrap(t *testing.T) {
	tests := []struct {
		name     string
		p        Point
		w, h     int
		expected Point
	}{
		{"inside grid", Point{5, 3}, 20, 12, Point{5, 3}},
		{"off right edge", Point{20, 6}, 20, 12, Point{0, 6}},
		{"off left edge", Point{-1, 6}, 20, 12, Point{19, 6}},
		{"off bottom edge", Point{4, 12}, 20, 12, Point{4, 0}},
		{"off top edge", Point{4, -1}, 20, 12, Point{4, 11}},
		{"corner wrap", Point{-1, -1}, 20, 12, Point{19, 11}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.p.Wrap(tc.w, tc.h)
			if got != tc.expected {
				t.Errorf("Wrap(%d, %d) = %v, expected %v", tc.w, tc.h, got, tc.expected)
			}
		})
	}
}

func TestPointIn(t *testing.T) {
	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"center", Point{10, 6}, true},
		{"origin", Point{0, 0}, true},
		{"max corner", Point{19, 11}, true},
		{"past right", Point{20, 6}, false},
		{"past bottom", Point{10, 12}, false},
		{"negative x", Point{-1, 6}, false},
		{"negative y", Point{10, -1}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.In(20, 12); got != tc.expected {
				t.Errorf("In(20, 12) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := []struct {
		a, b Direction
	}{
		{DirUp, DirDown},
		{DirLeft, DirRight},
	}

	for _, p := range pairs {
		if p.a.Opposite() != p.b {
			t.Errorf("%v.Opposite() = %v, expected %v", p.a, p.a.Opposite(), p.b)
		}
		if p.b.Opposite() != p.a {
			t.Errorf("%v.Opposite() = %v, expected %v", p.b, p.b.Opposite(), p.a)
		}
	}
}

func TestDirectionPerp(t *testing.T) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		perp := d.Perp()
		if dot := d.DX*perp.DX + d.DY*perp.DY; dot != 0 {
			t.Errorf("%v.Perp() = %v is not orthogonal (dot=%d)", d, perp, dot)
		}
		if perp.IsZero() {
			t.Errorf("%v.Perp() is zero", d)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClamp64(t *testing.T) {
	if got := Clamp64(60, 72, 235); got != 72 {
		t.Errorf("Clamp64(60, 72, 235) = %d, expected 72", got)
	}
	if got := Clamp64(300, 72, 235); got != 235 {
		t.Errorf("Clamp64(300, 72, 235) = %d, expected 235", got)
	}
	if got := Clamp64(138, 72, 235); got != 138 {
		t.Errorf("Clamp64(138, 72, 235) = %d, expected 138", got)
	}
}

func TestAbs(t *testing.T) {
	tests := []struct {
		val, expected int
	}{
		{5, 5},
		{-5, 5},
		{0, 0},
	}

	for _, tc := range tests {
		if got := Abs(tc.val); got != tc.expected {
			t.Errorf("Abs(%d) = %d, expected %d", tc.val, got, tc.expected)
		}
	}
}

func TestActionDir(t *testing.T) {
	if ActionUp.Dir() != DirUp || ActionDown.Dir() != DirDown ||
		ActionLeft.Dir() != DirLeft || ActionRight.Dir() != DirRight {
		t.Error("movement actions should map to matching directions")
	}
	if !ActionStart.Dir().IsZero() {
		t.Error("non-movement action should map to zero direction")
	}
}
