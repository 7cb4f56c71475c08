// Package alert provides a fire-and-forget "show message" primitive.
package alert

import (
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultTitle is the title of alerts raised without one.
const DefaultTitle = "Alert"

// Msg asks whoever displays alerts to show a message.
type Msg struct {
	Title   string
	Message string
}

// Alerter shows a message to the user.
type Alerter interface {
	Alert(message string) tea.Cmd
}

// AlerterFunc adapts a plain function to an Alerter.
type AlerterFunc func(message string) tea.Cmd

// Alert implements Alerter.
func (f AlerterFunc) Alert(message string) tea.Cmd {
	return f(message)
}

// Messenger is an Alerter that emits a Msg into the Bubble Tea loop.
type Messenger struct {
	Title string
}

var _ Alerter = Messenger{}

// Alert implements Alerter.
func (m Messenger) Alert(message string) tea.Cmd {
	title := m.Title
	if title == "" {
		title = DefaultTitle
	}
	return func() tea.Msg {
		return Msg{Title: title, Message: message}
	}
}

// Cmd emits a Msg with the default title.
func Cmd(message string) tea.Cmd {
	return Messenger{}.Alert(message)
}
