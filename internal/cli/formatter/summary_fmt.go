package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/clistudy/internal/report"
)

// SummarySeparator precedes the total line.
var SummarySeparator = strings.Repeat("-", 25)

// SummaryText holds the user-facing strings for one summary command.
type SummaryText struct {
	Heading string
	Empty   string
}

var (
	TodayText = SummaryText{Heading: "Today's study summary:", Empty: "No sessions logged for today yet."}
	WeekText  = SummaryText{Heading: "Last 7 days summary:", Empty: "No sessions logged in the last 7 days."}
)

// FormatSummary renders the line-oriented summary:
//
//	- <topic>: <minutes> min
//	-------------------------
//	Total: <sum> min
func FormatSummary(s report.Summary, text SummaryText) string {
	if s.Empty() {
		return text.Empty + "\n"
	}

	var b strings.Builder
	b.WriteString(render(StyleHeader, text.Heading))
	b.WriteString("\n")
	for _, t := range s.Topics {
		fmt.Fprintf(&b, "- %s: %d min\n", t.Topic, t.Minutes)
	}
	b.WriteString(render(StyleDim, SummarySeparator))
	b.WriteString("\n")
	b.WriteString(render(StyleBold, fmt.Sprintf("Total: %d min", s.Total)))
	b.WriteString("\n")
	return b.String()
}

// FormatSummaryBox renders the summary as a boxed table with each topic's
// share of the total.
func FormatSummaryBox(s report.Summary, text SummaryText) string {
	if s.Empty() {
		return text.Empty + "\n"
	}

	headers := []string{"TOPIC", "MINUTES", "TIME", "SHARE"}
	rows := make([][]string, 0, len(s.Topics))
	for _, t := range s.Topics {
		share := 0.0
		if s.Total > 0 {
			share = float64(t.Minutes) / float64(s.Total)
		}
		rows = append(rows, []string{
			t.Topic,
			strconv.Itoa(t.Minutes),
			Dim(FormatMinutes(t.Minutes)),
			RenderShare(share, 10),
		})
	}

	window := fmt.Sprintf("%s → %s", s.Window.From, s.Window.To)
	if s.Window.From == s.Window.To {
		window = s.Window.From.String()
	}

	body := Dim(window) + "\n\n" +
		RenderTable(headers, rows) + "\n" +
		Bold(fmt.Sprintf("Total: %d min (%s)", s.Total, FormatMinutes(s.Total)))

	return RenderBox(strings.TrimSuffix(text.Heading, ":"), body)
}
