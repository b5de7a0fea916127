package report

import (
	"sort"
	"time"

	"github.com/alexanderramin/clistudy/internal/domain"
)

// WeekDays is the length of the rolling calendar window used by "week".
const WeekDays = 7

// Window is an inclusive range of calendar dates.
type Window struct {
	Name string
	From domain.Date
	To   domain.Date
}

// DayWindow selects exactly the sessions dated d.
func DayWindow(d domain.Date) Window {
	return Window{Name: "today", From: d, To: d}
}

// WeekWindow is the closed window of today and the six days before it.
func WeekWindow(today domain.Date) Window {
	return Window{Name: "week", From: today.AddDays(-(WeekDays - 1)), To: today}
}

// Today and Week resolve windows against the local calendar date of now.
func Today(now time.Time) Window { return DayWindow(domain.DateOf(now)) }
func Week(now time.Time) Window  { return WeekWindow(domain.DateOf(now)) }

// Summarize sums minutes per topic over sessions dated within [from, to].
// The result is never nil.
func Summarize(sessions []domain.Session, from, to domain.Date) map[string]int {
	totals := make(map[string]int)
	for _, s := range sessions {
		if s.Date.Within(from, to) {
			totals[s.Topic] += s.Minutes
		}
	}
	return totals
}

// TopicTotal is one row of a ranked summary.
type TopicTotal struct {
	Topic   string
	Minutes int
}

// Summary is a ranked per-topic report for a window.
type Summary struct {
	Window Window
	Topics []TopicTotal
	Total  int
}

// Empty reports whether no session matched the window.
func (s Summary) Empty() bool {
	return len(s.Topics) == 0
}

// Build aggregates sessions over w and ranks the result.
func Build(sessions []domain.Session, w Window) Summary {
	topics := Rank(Summarize(sessions, w.From, w.To))
	total := 0
	for _, t := range topics {
		total += t.Minutes
	}
	return Summary{Window: w, Topics: topics, Total: total}
}

// Rank orders totals by minutes descending, then topic ascending.
func Rank(totals map[string]int) []TopicTotal {
	ranked := make([]TopicTotal, 0, len(totals))
	for topic, minutes := range totals {
		ranked = append(ranked, TopicTotal{Topic: topic, Minutes: minutes})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Minutes != b.Minutes {
			return a.Minutes > b.Minutes
		}
		return a.Topic < b.Topic
	})
	return ranked
}
