package physics

import (
	"math"
	"testing"
)

func TestVec2Add(t *testing.T) {
	got := Vec2{X: 1, Y: 2}.Add(Vec2{X: 3, Y: -5})
	want := Vec2{X: 4, Y: -3}
	if got != want {
		t.Errorf("Add = %v, want %v", got, want)
	}
}

func TestVec2Scale(t *testing.T) {
	got := Vec2{X: 2, Y: -3}.Scale(2.5)
	want := Vec2{X: 5, Y: -7.5}
	if got != want {
		t.Errorf("Scale = %v, want %v", got, want)
	}
}

func TestDistance(t *testing.T) {
	d := Vec2{X: 0, Y: 0}.DistanceTo(Vec2{X: 3, Y: 4})
	if math.Abs(d-5) > 1e-9 {
		t.Errorf("DistanceTo = %v, want 5", d)
	}
}

func TestCirclesOverlap(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Vec2
		ra, rb float64
		want   bool
	}{
		{"overlapping", Vec2{0, 0}, Vec2{1, 0}, 1, 1, true},
		{"touching is not overlap", Vec2{0, 0}, Vec2{2, 0}, 1, 1, false},
		{"apart", Vec2{0, 0}, Vec2{10, 0}, 1, 1, false},
		{"concentric", Vec2{5, 5}, Vec2{5, 5}, 0.5, 0.5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CirclesOverlap(tt.a, tt.ra, tt.b, tt.rb); got != tt.want {
				t.Errorf("CirclesOverlap = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectClampPoint(t *testing.T) {
	r := Rect{Min: Vec2{0, 0}, Max: Vec2{10, 10}}
	tests := []struct {
		in, want Vec2
	}{
		{Vec2{5, 5}, Vec2{5, 5}},
		{Vec2{-1, 5}, Vec2{0, 5}},
		{Vec2{12, 15}, Vec2{10, 10}},
	}
	for _, tt := range tests {
		if got := r.ClampPoint(tt.in); got != tt.want {
			t.Errorf("ClampPoint(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
