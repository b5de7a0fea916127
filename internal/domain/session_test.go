package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession_DatedFromNow(t *testing.T) {
	s, err := NewSession(45, "Go exam prep", testNow)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-15", s.Date.String())
	assert.Equal(t, 45, s.Minutes)
	assert.Equal(t, "Go exam prep", s.Topic)
}

func TestNewSession_RejectsNonPositiveMinutes(t *testing.T) {
	for _, m := range []int{0, -5} {
		_, err := NewSession(m, "x", testNow)
		assert.ErrorIs(t, err, ErrValidation, "minutes=%d", m)
	}
}

func TestNewSession_KeepsTopicVerbatim(t *testing.T) {
	s, err := NewSession(10, "  Math ", testNow)
	require.NoError(t, err)
	assert.Equal(t, "  Math ", s.Topic)
}

func TestSession_JSONShape(t *testing.T) {
	s := Session{Date: Date{Year: 2025, Month: 6, Day: 15}, Minutes: 30, Topic: "cs"}
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2025-06-15","minutes":30,"topic":"cs"}`, string(data))
}
