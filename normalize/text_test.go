package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestText verifies whitespace collapsing
func TestText(t *testing.T) {
	assert.Equal(t, "The Wrecking Crew", Text("  The\n\tWrecking   Crew "))
	assert.Equal(t, "", Text(" \n "))
}

// TestDuration_Clock verifies MM:SS and HH:MM:SS
func TestDuration_Clock(t *testing.T) {
	assert.Equal(t, 131, Duration("02:11").OrEmpty())
	assert.Equal(t, 3723, Duration("01:02:03").OrEmpty())
}

// TestDuration_Tokens verifies hour and minute tokens
func TestDuration_Tokens(t *testing.T) {
	assert.Equal(t, 7440, Duration("2h 4m").OrEmpty())
	assert.Equal(t, 7200, Duration("2h").OrEmpty())
	assert.Equal(t, 1440, Duration("24 Min.").OrEmpty())
}

// TestDuration_Unrecognized verifies garbage degrades to absent
func TestDuration_Unrecognized(t *testing.T) {
	assert.True(t, Duration("garbage").IsAbsent())
	assert.True(t, Duration("").IsAbsent())
	assert.True(t, Duration("1:2:3:4").IsAbsent())
	assert.True(t, Duration("0h 0m").IsAbsent())
}

// TestDate_ShortFormat verifies "DD Mon YYYY"
func TestDate_ShortFormat(t *testing.T) {
	got, ok := Date("28 Jan 2026")

	assert.True(t, ok)
	assert.Equal(t, "2026-01-28T00:00:00Z", got)
}

// TestDate_WithTime verifies "DD Mon YYYY HH:MM:SS"
func TestDate_WithTime(t *testing.T) {
	got, ok := Date("01 Feb 2026 14:58:14")

	assert.True(t, ok)
	assert.Equal(t, "2026-02-01T14:58:14Z", got)
}

// TestDate_IndonesianMonth verifies local month names are understood
func TestDate_IndonesianMonth(t *testing.T) {
	got, ok := Date("5 Okt 2024")

	assert.True(t, ok)
	assert.Equal(t, "2024-10-05T00:00:00Z", got)

	got, ok = Date("17 Agustus 2024")
	assert.True(t, ok)
	assert.Equal(t, "2024-08-17T00:00:00Z", got)
}

// TestDate_Passthrough verifies unknown formats are returned unchanged
func TestDate_Passthrough(t *testing.T) {
	got, ok := Date("Senin, kemarin")

	assert.False(t, ok)
	assert.Equal(t, "Senin, kemarin", got)
}

// TestDate_ExplicitLayouts verifies caller supplied layouts win
func TestDate_ExplicitLayouts(t *testing.T) {
	got, ok := Date("2026/01/28", "2006/01/02")

	assert.True(t, ok)
	assert.Equal(t, "2026-01-28T00:00:00Z", got)

	_, ok = Date("28 Jan 2026", "2006/01/02")
	assert.False(t, ok, "default layouts are not consulted when layouts are given")
}

// TestInt verifies integer coercion
func TestInt(t *testing.T) {
	assert.Equal(t, 1700, Int("1,700").OrEmpty())
	assert.Equal(t, 12, Int(" 12 ").OrEmpty())
	assert.True(t, Int("12a").IsAbsent())
	assert.True(t, Int("").IsAbsent())
}

// TestFloat verifies float coercion
func TestFloat(t *testing.T) {
	assert.Equal(t, 7.5, Float("7.5").OrEmpty())
	assert.True(t, Float("N/A").IsAbsent())
	assert.True(t, Float("NaN").IsAbsent())
}

// TestYear verifies year extraction
func TestYear(t *testing.T) {
	assert.Equal(t, 2026, Year("28 Jan 2026").OrEmpty())
	assert.True(t, Year("no year").IsAbsent())
	assert.Equal(t, 2026, TitleYear("The Wrecking Crew (2026)").OrEmpty())
	assert.True(t, TitleYear("Crew 2026").IsAbsent())
}
