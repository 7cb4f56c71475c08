// Package body renders the markdown body of a screen in a scrollable
// viewport.
package body

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	gansi "github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/younisrahman/appheader/pkg/ui/common"
	vp "github.com/younisrahman/appheader/pkg/ui/components/viewport"
)

const (
	defaultTabWidth = 4
	maxWrapWidth    = 120
)

// Body is the content area below the header.
type Body struct {
	*vp.Viewport
	common      common.Common
	content     string
	styleConfig gansi.StyleConfig

	TabWidth       int
	NoContentStyle lipgloss.Style
}

var _ common.Component = (*Body)(nil)

// New returns a new Body.
func New(c common.Common) *Body {
	b := &Body{
		common:         c,
		Viewport:       vp.New(c),
		styleConfig:    StyleConfig(c.Renderer),
		TabWidth:       defaultTabWidth,
		NoContentStyle: c.Styles.NoContent,
	}
	b.SetSize(c.Width, c.Height)
	return b
}

// StyleConfig returns the glamour style matching the renderer's profile.
func StyleConfig(r *lipgloss.Renderer) gansi.StyleConfig {
	var s gansi.StyleConfig
	switch {
	case r == nil || r.ColorProfile() == termenv.Ascii:
		s = glamour.NoTTYStyleConfig
	case r.HasDarkBackground():
		s = glamour.DarkStyleConfig
	default:
		s = glamour.LightStyleConfig
	}
	// This fixes an issue with the default style config. For example
	// highlighting empty spaces with red in Dockerfile type.
	noColor := ""
	if s.CodeBlock.Chroma != nil {
		s.CodeBlock.Chroma.Error.BackgroundColor = &noColor
	}
	var margin uint
	s.Document.Margin = &margin
	s.Document.BlockPrefix = ""
	s.Document.BlockSuffix = ""
	return s
}

// ShortHelp implements help.KeyMap.
func (b *Body) ShortHelp() []key.Binding {
	return []key.Binding{
		b.common.KeyMap.Navigate,
	}
}

// FullHelp implements help.KeyMap.
func (b *Body) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{b.common.KeyMap.Navigate},
		{b.common.KeyMap.GotoTop, b.common.KeyMap.GotoBottom},
	}
}

// SetSize implements common.Component.
func (b *Body) SetSize(width, height int) {
	if width == b.common.Width && height == b.common.Height {
		return
	}
	b.common.SetSize(width, height)
	b.Viewport.SetSize(width, height)
	b.render() //nolint:errcheck
}

// SetContent sets the markdown source of the body.
func (b *Body) SetContent(md string) tea.Cmd {
	if md == b.content {
		return nil
	}
	b.content = md
	if err := b.render(); err != nil {
		return common.ErrorCmd(err)
	}
	b.GotoTop()
	return nil
}

// Content returns the markdown source of the body.
func (b *Body) Content() string {
	return b.content
}

// Init implements tea.Model.
func (b *Body) Init() tea.Cmd {
	if err := b.render(); err != nil {
		return common.ErrorCmd(err)
	}
	return nil
}

// Update implements tea.Model.
func (b *Body) Update(msg tea.Msg) (common.Model, tea.Cmd) {
	_, cmd := b.Viewport.Update(msg)
	return b, cmd
}

// View implements tea.Model.
func (b *Body) View() string {
	return b.Viewport.View()
}

func (b *Body) render() error {
	content := strings.TrimSpace(b.content)
	if content == "" {
		b.Model.SetContent(b.NoContentStyle.String())
		return nil
	}

	// Tab width depends on the terminal.
	content = strings.ReplaceAll(content, "\t", strings.Repeat(" ", b.TabWidth))

	md, err := b.glamourize(b.common.Width, content)
	if err != nil {
		b.Model.SetContent(content)
		return err
	}

	// Fix styles after hard wrapping
	// https://github.com/muesli/reflow/issues/43
	if b.common.Width > 0 {
		md = b.common.Renderer.NewStyle().Width(b.common.Width).Render(md)
	}
	b.Model.SetContent(md)
	return nil
}

func (b *Body) glamourize(w int, md string) (string, error) {
	if w <= 0 || w > maxWrapWidth {
		w = maxWrapWidth
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStyles(b.styleConfig),
		glamour.WithColorProfile(b.common.Renderer.ColorProfile()),
		glamour.WithWordWrap(w),
	)
	if err != nil {
		return "", err
	}
	mdt, err := tr.Render(md)
	if err != nil {
		return "", err
	}
	return strings.Trim(mdt, "\n"), nil
}
