package main

import (
	"reflect"
	"testing"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		in       string
		expected []string
	}{
		{in: "", expected: nil},
		{in: "a.json", expected: []string{"a.json"}},
		{in: " a.json, ,b.json ", expected: []string{"a.json", "b.json"}},
	}

	for _, tt := range tests {
		if got := splitList(tt.in); !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("splitList(%q) = %v, expected %v", tt.in, got, tt.expected)
		}
	}
}

func TestEnvOr(t *testing.T) {
	t.Setenv("SPREAD_PORT", "")
	if got := envOr("SPREAD_PORT", "8080"); got != "8080" {
		t.Errorf("envOr with empty value = %q, expected 8080", got)
	}
	t.Setenv("SPREAD_PORT", "9000")
	if got := envOr("SPREAD_PORT", "8080"); got != "9000" {
		t.Errorf("envOr = %q, expected 9000", got)
	}
}
