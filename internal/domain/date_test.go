package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func TestDateOf_DropsTimeOfDay(t *testing.T) {
	late := time.Date(2025, 6, 15, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, Date{Year: 2025, Month: time.June, Day: 15}, DateOf(late))
	assert.Equal(t, DateOf(testNow), DateOf(late))
}

func TestDateOf_UsesLocationOfTime(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	// 20:00 UTC on the 15th is already the 16th in Tokyo.
	utc := time.Date(2025, 6, 15, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, 16, DateOf(utc.In(tokyo)).Day)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2024, Month: time.February, Day: 29}, d)
	assert.Equal(t, "2024-02-29", d.String())

	_, err = ParseDate("2023-02-29")
	assert.Error(t, err)
	_, err = ParseDate("15/06/2025")
	assert.Error(t, err)
}

func TestDate_AddDays_CrossesMonthAndYear(t *testing.T) {
	d := Date{Year: 2025, Month: time.January, Day: 3}
	assert.Equal(t, "2024-12-28", d.AddDays(-6).String())
	assert.Equal(t, "2025-02-02", d.AddDays(30).String())
	assert.Equal(t, d, d.AddDays(0))
}

func TestDate_Compare(t *testing.T) {
	a := Date{Year: 2025, Month: time.June, Day: 9}
	b := Date{Year: 2025, Month: time.June, Day: 15}
	c := Date{Year: 2026, Month: time.January, Day: 1}

	assert.True(t, a.Before(b))
	assert.True(t, c.After(b))
	assert.Equal(t, 0, b.Compare(b))
	assert.True(t, b.Within(a, c))
	assert.True(t, a.Within(a, b), "lower bound is inclusive")
	assert.True(t, b.Within(a, b), "upper bound is inclusive")
	assert.False(t, c.Within(a, b))
}

func TestDate_JSONIsCalendarString(t *testing.T) {
	data, err := json.Marshal(Date{Year: 2025, Month: time.March, Day: 7})
	require.NoError(t, err)
	assert.Equal(t, `"2025-03-07"`, string(data))

	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"1999-12-31"`), &d))
	assert.Equal(t, Date{Year: 1999, Month: time.December, Day: 31}, d)

	assert.Error(t, json.Unmarshal([]byte(`"1999-12-31T10:00:00Z"`), &d))
}
