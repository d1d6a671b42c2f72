package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.75, 9.75, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}
}

func TestRectCells(t *testing.T) {
	tests := []struct {
		name           string
		r              Rect
		x0, y0, x1, y1 int
	}{
		{"whole", NewRect(2, 3, 4, 5), 2, 3, 6, 8},
		{"fractional truncates", NewRect(2.9, 3.5, 4, 5), 2, 3, 6, 8},
		{"negative truncates toward zero", NewRect(-2.5, -0.5, 4, 5), -2, 0, 2, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x0, y0, x1, y1 := tc.r.Cells()
			if x0 != tc.x0 || y0 != tc.y0 || x1 != tc.x1 || y1 != tc.y1 {
				t.Errorf("Cells() = (%d, %d, %d, %d), expected (%d, %d, %d, %d)",
					x0, y0, x1, y1, tc.x0, tc.y0, tc.x1, tc.y1)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
}
