package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alexanderramin/clistudy/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// ErrPromptCancelled is returned when the user quits the log form.
var ErrPromptCancelled = errors.New("log cancelled")

// PromptLogForm asks for minutes and topic in a terminal form drawn on
// stderr, leaving stdout for the confirmation line.
func PromptLogForm(ctx context.Context) (LogInput, error) {
	var minutes, topic string

	form := logForm(&minutes, &topic).
		WithProgramOptions(tea.WithOutput(os.Stderr), tea.WithContext(ctx))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return LogInput{}, ErrPromptCancelled
		}
		return LogInput{}, fmt.Errorf("running log form: %w", err)
	}

	m, err := parseMinutes(strings.TrimSpace(minutes))
	if err != nil {
		return LogInput{}, err
	}
	return LogInput{Minutes: m, Topic: topic}, nil
}

func logForm(minutes, topic *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("How many minutes did you study?").
				Placeholder("45").
				Value(minutes).
				Validate(validateMinutesInput),
			huh.NewInput().
				Title("What did you work on?").
				Placeholder("Go exam prep").
				Value(topic).
				Validate(validateTopicInput),
		),
	).WithTheme(studyHuhTheme()).WithKeyMap(logFormKeyMap()).WithShowHelp(false)
}

// logFormKeyMap lets esc quit as well as ctrl+c.
func logFormKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit"))
	return km
}

func studyHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateMinutesInput(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

func validateTopicInput(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("enter a topic")
	}
	return nil
}
