package cli

import (
	"testing"

	"github.com/alexanderramin/clistudy/internal/teatest"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
)

func TestValidateMinutesInput(t *testing.T) {
	assert.NoError(t, validateMinutesInput("45"))
	assert.NoError(t, validateMinutesInput(" 30 "))
	assert.Error(t, validateMinutesInput(""))
	assert.Error(t, validateMinutesInput("0"))
	assert.Error(t, validateMinutesInput("-5"))
	assert.Error(t, validateMinutesInput("half an hour"))
}

func TestValidateTopicInput(t *testing.T) {
	assert.NoError(t, validateTopicInput("Go exam prep"))
	assert.Error(t, validateTopicInput(""))
	assert.Error(t, validateTopicInput("   "))
}

func TestLogForm_BindsValues(t *testing.T) {
	minutes, topic := "30", "cs"
	form := logForm(&minutes, &topic)
	assert.NotNil(t, form)
	assert.True(t, logFormKeyMap().Quit.Enabled())
}

func TestParseMinutes(t *testing.T) {
	m, err := parseMinutes("90")
	assert.NoError(t, err)
	assert.Equal(t, 90, m)

	_, err = parseMinutes("1.5")
	assert.Error(t, err)
}

func TestLogForm_SubmitFillsValues(t *testing.T) {
	var minutes, topic string
	form := logForm(&minutes, &topic)

	d := teatest.New(t, form, teatest.WithSize(80, 24))
	d.DrainInit()
	d.Type("45")
	d.PressEnter()
	d.Type("Go exam prep")
	d.PressEnter()

	assert.Equal(t, huh.StateCompleted, form.State)
	assert.Equal(t, "45", minutes)
	assert.Equal(t, "Go exam prep", topic)
}

func TestLogForm_InvalidMinutesBlocksSubmit(t *testing.T) {
	var minutes, topic string
	form := logForm(&minutes, &topic)

	d := teatest.New(t, form, teatest.WithSize(80, 24))
	d.DrainInit()
	d.Type("0")
	d.PressEnter()

	assert.Equal(t, huh.StateNormal, form.State)
	assert.Contains(t, d.View(), "enter a positive number")
}

func TestLogForm_EscAborts(t *testing.T) {
	var minutes, topic string
	form := logForm(&minutes, &topic)

	d := teatest.New(t, form, teatest.WithSize(80, 24))
	d.DrainInit()
	d.PressEsc()

	assert.Equal(t, huh.StateAborted, form.State)
}
