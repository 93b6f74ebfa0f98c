// pkg/physics/collision_test.go
package physics

import (
	"testing"
)

func TestCircle_Collides(t *testing.T) {
	tests := []struct {
		name     string
		circle1  Circle
		circle2  Circle
		expected bool
	}{
		{
			name:     "circles_touching",
			circle1:  Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 5},
			circle2:  Circle{Center: Vector2D{X: 10, Y: 0}, Radius: 5},
			expected: false, // Distance equals sum of radii, collision logic uses <
		},
		{
			name:     "circles_overlapping",
			circle1:  Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 5},
			circle2:  Circle{Center: Vector2D{X: 5, Y: 0}, Radius: 5},
			expected: true,
		},
		{
			name:     "circles_not_touching",
			circle1:  Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 5},
			circle2:  Circle{Center: Vector2D{X: 15, Y: 0}, Radius: 5},
			expected: false,
		},
		{
			name:     "point_inside_radius",
			circle1:  Circle{Center: Vector2D{X: 100, Y: 100}, Radius: 0},
			circle2:  Circle{Center: Vector2D{X: 105, Y: 105}, Radius: 10},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.circle1.Collides(tt.circle2)
			if result != tt.expected {
				t.Errorf("Circle.Collides() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestCircle_ContainsPoint(t *testing.T) {
	c := Circle{Center: Vector2D{X: 105, Y: 105}, Radius: 10}
	if !c.ContainsPoint(Vector2D{X: 100, Y: 100}) {
		t.Error("expected point at distance ~7.07 to be inside radius 10")
	}
	if c.ContainsPoint(Vector2D{X: 120, Y: 120}) {
		t.Error("expected point at distance ~21.2 to be outside radius 10")
	}
}
