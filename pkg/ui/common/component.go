package common

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// Model represents a simple UI model.
type Model interface {
	Init() tea.Cmd
	Update(tea.Msg) (Model, tea.Cmd)
	View() string
}

// Component represents a Bubble Tea model that implements a SetSize function.
type Component interface {
	Model
	help.KeyMap
	SetSize(width, height int)
}

// Renderable is anything that can be drawn into a slot.
type Renderable interface {
	View() string
}

// RenderFunc adapts a plain function to a Renderable.
type RenderFunc func() string

// View implements Renderable.
func (f RenderFunc) View() string {
	return f()
}

// Text is a Renderable that always renders the same string.
type Text string

// View implements Renderable.
func (t Text) View() string {
	return string(t)
}
