package query

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Test canonical stringification used by exact matching
func TestStringify(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "string passes through", value: "Foo", want: "Foo"},
		{name: "whole float renders without decimals", value: float64(3), want: "3"},
		{name: "fractional float renders minimal digits", value: float64(3.5), want: "3.5"},
		{name: "small fraction", value: float64(0.1), want: "0.1"},
		{name: "negative float", value: float64(-12), want: "-12"},
		{name: "int", value: 42, want: "42"},
		{name: "int64", value: int64(42), want: "42"},
		{name: "bool true", value: true, want: "true"},
		{name: "bool false", value: false, want: "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stringify(tt.value); got != tt.want {
				t.Errorf("stringify(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

// Test the exact (stringified) comparison strategy
func TestMatchStringified(t *testing.T) {
	tests := []struct {
		name   string
		stored any
		want   any
		match  bool
	}{
		{name: "equal strings", stored: "Ore", want: "Ore", match: true},
		{name: "case differs", stored: "Foo", want: "foo", match: false},
		{name: "number matches string rendering", stored: float64(3), want: "3", match: true},
		{name: "string matches number rendering", stored: "3", want: float64(3), match: true},
		{name: "number matches number", stored: float64(3), want: float64(3), match: true},
		{name: "trailing zero rendering differs", stored: float64(3), want: "3.0", match: false},
		{name: "bool matches rendering", stored: true, want: "true", match: true},
		{name: "nil stored never matches", stored: nil, want: "x", match: false},
		{name: "nil want never matches", stored: "x", want: nil, match: false},
		{name: "both nil never match", stored: nil, want: nil, match: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchStringified(tt.stored, tt.want); got != tt.match {
				t.Errorf("matchStringified(%v, %v) = %v, want %v", tt.stored, tt.want, got, tt.match)
			}
		})
	}
}

// Test the case-folded comparison strategy: string-typed stored values only
func TestMatchFolded(t *testing.T) {
	tests := []struct {
		name   string
		stored any
		want   any
		match  bool
	}{
		{name: "case-insensitive hit", stored: "Foo", want: "foo", match: true},
		{name: "upper vs lower", stored: "ORE", want: "ore", match: true},
		{name: "exact strings", stored: "Gem", want: "Gem", match: true},
		{name: "different strings", stored: "Gem", want: "Ore", match: false},
		{name: "non-string stored never matches", stored: float64(3), want: "3", match: false},
		{name: "bool stored never matches", stored: true, want: "true", match: false},
		{name: "nil stored never matches", stored: nil, want: "x", match: false},
		{name: "nil want never matches", stored: "x", want: nil, match: false},
		{name: "string stored against numeric want", stored: "3", want: float64(3), match: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchFolded(tt.stored, tt.want); got != tt.match {
				t.Errorf("matchFolded(%v, %v) = %v, want %v", tt.stored, tt.want, got, tt.match)
			}
		})
	}
}

// Property-based test: folding is insensitive to letter case
func TestMatchFolded_PropertyCaseInsensitive(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("any casing of a string matches its lowercase form", prop.ForAll(
		func(s string) bool {
			if s == "" {
				return matchFolded(s, strings.ToLower(s))
			}
			return matchFolded(strings.ToUpper(s), strings.ToLower(s))
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
