package world

import "testing"

func TestOpposite(t *testing.T) {
	tests := []struct {
		in, want Direction
	}{
		{Right, Left},
		{Left, Right},
		{Up, Down},
		{Down, Up},
		{Stay, Stay},
		{Dispose, Stay},
	}
	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			if got := tt.in.Opposite(); got != tt.want {
				t.Errorf("%v.Opposite() = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestAreOpposite(t *testing.T) {
	if !AreOpposite(Up, Down) {
		t.Error("AreOpposite(Up, Down) = false, want true")
	}
	if AreOpposite(Up, Left) {
		t.Error("AreOpposite(Up, Left) = true, want false")
	}
	if AreOpposite(Stay, Stay) {
		t.Error("AreOpposite(Stay, Stay) = true, want false")
	}
}

func TestPointNext(t *testing.T) {
	p := Pt(10, 10)
	cases := map[Direction]Point{
		Right:   Pt(11, 10),
		Left:    Pt(9, 10),
		Up:      Pt(10, 9),
		Down:    Pt(10, 11),
		Stay:    Pt(10, 10),
		Dispose: Pt(10, 10),
	}
	for d, want := range cases {
		if got := p.Next(d); got != want {
			t.Errorf("%v.Next(%v) = %v, want %v", p, d, got, want)
		}
	}
}

func TestInBounds(t *testing.T) {
	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(0, 0), true},
		{Pt(Width-1, Height-1), true},
		{Pt(-1, 0), false},
		{Pt(0, -1), false},
		{Pt(Width, 0), false},
		{Pt(0, Height), false},
	}
	for _, tt := range tests {
		if got := tt.p.InBounds(); got != tt.want {
			t.Errorf("%v.InBounds() = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{Min: Pt(2, 3), Max: Pt(4, 5)}
	if !r.Contains(Pt(2, 3)) || !r.Contains(Pt(4, 5)) {
		t.Error("Rect.Contains() excludes its corners, want inclusive")
	}
	if r.Contains(Pt(5, 5)) {
		t.Error("Rect.Contains((5,5)) = true, want false")
	}
}
