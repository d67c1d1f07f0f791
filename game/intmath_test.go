package game

import (
	"testing"
)

func TestLerp(t *testing.T) {
	tests := []struct {
		name     string
		a, b     int
		mul, div int
		expected int
	}{
		{name: "start", a: 100, b: 0, mul: 0, div: 10, expected: 100},
		{name: "end", a: 100, b: 0, mul: 10, div: 10, expected: 0},
		{name: "midpoint", a: 100, b: 0, mul: 5, div: 10, expected: 50},
		{name: "decreasing truncates toward zero", a: 100, b: 0, mul: 1, div: 3, expected: 67}, // 100 + (-100/3) = 100 - 33
		{name: "increasing truncates toward zero", a: 0, b: 100, mul: 1, div: 3, expected: 33},
		{name: "non-zero floor", a: 100, b: 25, mul: 5, div: 10, expected: 63}, // 100 + (-75*5/10) = 100 - 37
		{name: "large world distances", a: 100, b: 0, mul: 1536, div: 3072, expected: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Lerp(tt.a, tt.b, tt.mul, tt.div)
			if result != tt.expected {
				t.Errorf("Lerp(%d, %d, %d, %d) = %d, expected %d", tt.a, tt.b, tt.mul, tt.div, result, tt.expected)
			}
		})
	}
}

func TestApplyPercentageModifiers(t *testing.T) {
	tests := []struct {
		name        string
		number      int
		percentages []int
		expected    int
	}{
		{name: "no modifiers", number: 100, percentages: nil, expected: 100},
		{name: "single modifier", number: 100, percentages: []int{50}, expected: 50},
		{name: "identity", number: 37, percentages: []int{100, 100}, expected: 37},
		{name: "chained", number: 200, percentages: []int{50, 150}, expected: 150},
		{name: "truncates each step", number: 10, percentages: []int{50, 50}, expected: 2},
		{name: "order matters", number: 10, percentages: []int{33, 300}, expected: 9}, // 10*33/100=3, 3*3=9
		{name: "order matters reversed", number: 10, percentages: []int{300, 33}, expected: 9},
		{name: "zero kills", number: 500, percentages: []int{0, 200}, expected: 0},
		{name: "amplifies", number: 100, percentages: []int{125}, expected: 125},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ApplyPercentageModifiers(tt.number, tt.percentages)
			if result != tt.expected {
				t.Errorf("ApplyPercentageModifiers(%d, %v) = %d, expected %d", tt.number, tt.percentages, result, tt.expected)
			}
		})
	}
}

func TestApplyPercentageModifiersIsOrderSensitive(t *testing.T) {
	a := ApplyPercentageModifiers(7, []int{50, 300}) // 3 * 3 = 9
	b := ApplyPercentageModifiers(7, []int{300, 50}) // 21 / 2 = 10
	if a == b {
		t.Errorf("expected different results for reordered modifiers, both were %d", a)
	}
	if a != 9 || b != 10 {
		t.Errorf("got %d and %d, expected 9 and 10", a, b)
	}
}
