package app_test

import (
	"testing"

	"bingo-quiz-bot/internal/app"
)

func TestDefaultBandsAreContiguousAndExhaustive(t *testing.T) {
	bands := app.DefaultBands()
	const maxScore = 33000

	if err := bands.Validate(maxScore); err != nil {
		t.Fatalf("default bands invalid: %v", err)
	}

	// Every reachable score must resolve to exactly one band containing it.
	for score := 0; score <= maxScore; score++ {
		b := bands.Resolve(score)
		inRange := score >= b.Min && (score < b.Max || (score == b.Max && b.Max == maxScore))
		if !inRange {
			t.Fatalf("score %d resolved to band [%d, %d)", score, b.Min, b.Max)
		}
	}
}

func TestResolveBoundaries(t *testing.T) {
	bands := app.BandTable{
		{Min: 0, Max: 100, Text: "low"},
		{Min: 100, Max: 200, Text: "mid"},
		{Min: 200, Max: 300, Text: "high"},
	}
	if err := bands.Validate(300); err != nil {
		t.Fatalf("validate: %v", err)
	}

	cases := []struct {
		score int
		want  string
	}{
		{0, "low"},
		{99, "low"},
		{100, "mid"}, // half-open boundary belongs to the upper band
		{199, "mid"},
		{200, "high"},
		{300, "high"}, // top band is closed at the maximum
	}
	for _, tc := range cases {
		if got := bands.Resolve(tc.score).Text; got != tc.want {
			t.Fatalf("Resolve(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestResolveFallsBackToLowestBand(t *testing.T) {
	bands := app.BandTable{
		{Min: 0, Max: 100, Text: "low"},
		{Min: 100, Max: 200, Text: "mid"},
	}
	if got := bands.Resolve(-50).Text; got != "low" {
		t.Fatalf("negative score resolved to %q, want low", got)
	}
	if got := bands.Resolve(5000).Text; got != "low" {
		t.Fatalf("out-of-range score resolved to %q, want low", got)
	}
}

func TestValidateRejectsBrokenTables(t *testing.T) {
	maxScore := 300

	cases := []struct {
		name  string
		bands app.BandTable
	}{
		{"empty", app.BandTable{}},
		{"offset start", app.BandTable{{Min: 10, Max: 300}}},
		{"gap", app.BandTable{{Min: 0, Max: 100}, {Min: 150, Max: 300}}},
		{"short coverage", app.BandTable{{Min: 0, Max: 200}}},
		{"empty range", app.BandTable{{Min: 0, Max: 0}, {Min: 0, Max: 300}}},
	}
	for _, tc := range cases {
		if err := tc.bands.Validate(maxScore); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}
