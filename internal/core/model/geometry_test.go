package model

import "testing"

func TestIconGeometryContains(t *testing.T) {
	icon := IconGeometry{Position: Point{X: 100, Y: 100}, Size: Size{Width: 50, Height: 50}}
	const screenHeight = 1000

	tests := []struct {
		name  string
		mouse Point
		want  bool
	}{
		{name: "centre", mouse: Point{X: 125, Y: 875}, want: true},
		{name: "top left corner", mouse: Point{X: 100, Y: 900}, want: true},
		{name: "bottom right corner", mouse: Point{X: 150, Y: 850}, want: true},
		{name: "outside", mouse: Point{X: 200, Y: 800}, want: false},
		{name: "left of box", mouse: Point{X: 99, Y: 875}, want: false},
		{name: "above box", mouse: Point{X: 125, Y: 901}, want: false},
		{name: "below box", mouse: Point{X: 125, Y: 849}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := icon.Contains(tt.mouse, screenHeight); got != tt.want {
				t.Fatalf("Contains(%v) = %v, want %v", tt.mouse, got, tt.want)
			}
		})
	}
}

func TestIconGeometryCenter(t *testing.T) {
	icon := IconGeometry{Position: Point{X: 100, Y: 100}, Size: Size{Width: 50, Height: 50}}
	got := icon.Center(1000)
	want := Point{X: 125, Y: 875}
	if got != want {
		t.Fatalf("Center() = %v, want %v", got, want)
	}
}
