package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/clistudy/internal/domain"
	"github.com/alexanderramin/clistudy/internal/report"
	"github.com/stretchr/testify/assert"
)

var today = domain.Date{Year: 2025, Month: time.June, Day: 15}

func TestFormatSummary_Golden_Today(t *testing.T) {
	withPlain(t)
	sessions := []domain.Session{
		{Date: today, Minutes: 30, Topic: "math"},
		{Date: today, Minutes: 15, Topic: "math"},
		{Date: today, Minutes: 20, Topic: "cs"},
		{Date: today.AddDays(-1), Minutes: 10, Topic: "math"},
	}

	got := FormatSummary(report.Build(sessions, report.DayWindow(today)), TodayText)
	goldenTest(t, "summary_today", got)
}

func TestFormatSummary_Golden_WeekTiesByTopic(t *testing.T) {
	withPlain(t)
	sessions := []domain.Session{
		{Date: today, Minutes: 45, Topic: "math"},
		{Date: today.AddDays(-6), Minutes: 10, Topic: "math"},
		{Date: today.AddDays(-2), Minutes: 20, Topic: "cs"},
		{Date: today.AddDays(-3), Minutes: 20, Topic: "art"},
		{Date: today.AddDays(-7), Minutes: 500, Topic: "stale"},
	}

	got := FormatSummary(report.Build(sessions, report.WeekWindow(today)), WeekText)
	goldenTest(t, "summary_week", got)
}

func TestFormatSummary_EmptyPrintsMessageNotTable(t *testing.T) {
	withPlain(t)
	empty := report.Build(nil, report.DayWindow(today))

	assert.Equal(t, "No sessions logged for today yet.\n", FormatSummary(empty, TodayText))
	assert.Equal(t, "No sessions logged in the last 7 days.\n", FormatSummary(empty, WeekText))
	assert.NotContains(t, FormatSummary(empty, WeekText), "Total")
}

func TestFormatSummaryBox(t *testing.T) {
	withPlain(t)
	sessions := []domain.Session{
		{Date: today, Minutes: 90, Topic: "math"},
		{Date: today, Minutes: 30, Topic: "cs"},
	}

	got := FormatSummaryBox(report.Build(sessions, report.WeekWindow(today)), WeekText)
	assert.Contains(t, got, "LAST 7 DAYS SUMMARY")
	assert.Contains(t, got, "2025-06-09 → 2025-06-15")
	assert.Contains(t, got, "TOPIC")
	assert.Contains(t, got, "1h 30m")
	assert.Contains(t, got, " 75%")
	assert.Contains(t, got, "Total: 120 min (2h)")
	assert.True(t, strings.HasPrefix(got, "╭"), "box should use rounded borders")
}

func TestFormatSummaryBox_SingleDayShowsOneDate(t *testing.T) {
	withPlain(t)
	sessions := []domain.Session{{Date: today, Minutes: 5, Topic: "x"}}

	got := FormatSummaryBox(report.Build(sessions, report.DayWindow(today)), TodayText)
	assert.Contains(t, got, "2025-06-15")
	assert.NotContains(t, got, "→")
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "0m", FormatMinutes(0))
	assert.Equal(t, "45m", FormatMinutes(45))
	assert.Equal(t, "1h", FormatMinutes(60))
	assert.Equal(t, "2h 5m", FormatMinutes(125))
}

func TestRenderShare_Clamps(t *testing.T) {
	withPlain(t)
	assert.Equal(t, "[░░░░░░░░░░]   0%", RenderShare(-1, 10))
	assert.Equal(t, "[██████████] 100%", RenderShare(2, 10))
	assert.Equal(t, "[█████░░░░░]  50%", RenderShare(0.5, 10))
}

func TestRenderTable_Aligns(t *testing.T) {
	withPlain(t)
	got := RenderTable([]string{"A", "LONGER"}, [][]string{{"wide cell", "x"}})
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "A        LONGER", lines[0])
	assert.Equal(t, "wide cell  x", lines[2])
}
