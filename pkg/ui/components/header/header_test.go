package header

import (
	"context"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/matryer/is"
	"github.com/younisrahman/appheader/pkg/ui/common"
)

func newHeader(t *testing.T, width int) *Header {
	t.Helper()
	c := common.NewCommon(context.TODO(), lipgloss.NewRenderer(io.Discard), width, 0)
	t.Cleanup(c.Zone.Close)
	return New(c)
}

func TestLayout(t *testing.T) {
	is := is.New(t)
	h := newHeader(t, 40)
	h.SetSlots(common.Text("L"), "Settings", common.Text("R"))

	v := h.View()
	lines := strings.Split(v, "\n")
	is.Equal(len(lines), h.Height())
	is.Equal(h.Height(), 4) // three rows and the shadow
	for _, l := range lines {
		is.Equal(lipgloss.Width(l), 40)
	}

	// Slots sit on the middle row, inside the horizontal padding.
	mid := lines[1]
	is.True(strings.HasPrefix(mid, "  L"))
	is.True(strings.HasSuffix(mid, "R  "))
	is.True(strings.Contains(mid, "Settings"))
	is.Equal(strings.TrimSpace(lines[0]), "")
	is.Equal(strings.Trim(lines[3], "▔"), "")
}

func TestTitleCentered(t *testing.T) {
	is := is.New(t)
	h := newHeader(t, 24)
	h.SetSlots(common.Text("L"), "ab", common.Text("R"))
	mid := strings.Split(h.View(), "\n")[1]
	i := strings.Index(mid, "ab")
	is.True(i > 0)
	left := len(strings.TrimRight(mid[:i], " "))
	right := len(strings.TrimLeft(mid[i+2:], " "))
	is.Equal(left, 3)  // padding and the left slot
	is.Equal(right, 3) // the right slot and padding
	gapL := i - left
	gapR := len(mid) - (i + 2) - right
	is.True(gapL-gapR <= 1 && gapR-gapL <= 1)
}

func TestTitleTruncated(t *testing.T) {
	is := is.New(t)
	h := newHeader(t, 16)
	h.SetSlots(common.Text("L"), "A very long screen title", common.Text("R"))
	for _, l := range strings.Split(h.View(), "\n") {
		is.Equal(lipgloss.Width(l), 16)
	}
	is.True(strings.Contains(h.View(), "…"))
}

func TestNoWidthRendersNaturally(t *testing.T) {
	is := is.New(t)
	h := newHeader(t, 0)
	h.SetSlots(nil, "Header", nil)
	is.True(strings.Contains(h.View(), "Header"))
}

func TestContainerStyleOverride(t *testing.T) {
	is := is.New(t)
	h := newHeader(t, 30)
	h.SetSlots(common.Text("L"), "Home", common.Text("R"))
	h.SetContainerStyle(func(s lipgloss.Style) lipgloss.Style {
		return s.MarginTop(1)
	})
	h.SetTitleStyle(func(s lipgloss.Style) lipgloss.Style {
		return s.Underline(true)
	})
	lines := strings.Split(h.View(), "\n")
	is.Equal(h.Height(), 5)
	is.Equal(len(lines), 5)
	is.True(strings.Contains(lines[2], "Home"))
}

func TestWindowSize(t *testing.T) {
	is := is.New(t)
	h := newHeader(t, 10)
	h.Update(tea.WindowSizeMsg{Width: 50, Height: 20})
	h.SetSlots(nil, "x", nil)
	for _, l := range strings.Split(h.View(), "\n") {
		is.Equal(lipgloss.Width(l), 50)
	}
}
