package statusbar

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/matryer/is"
	"github.com/younisrahman/appheader/pkg/ui/alert"
	"github.com/younisrahman/appheader/pkg/ui/common"
)

func newStatusBar(t *testing.T) *Model {
	t.Helper()
	c := common.NewCommon(context.TODO(), lipgloss.NewRenderer(io.Discard), 80, 1)
	t.Cleanup(c.Zone.Close)
	return New(c)
}

func TestAlertShownAndDismissed(t *testing.T) {
	is := is.New(t)
	s := newStatusBar(t)
	s.SetStatus("appheader", "Home", "")

	_, cmd := s.Update(alert.Msg{Title: "Alert", Message: "Right pressed!"})
	is.True(cmd != nil)
	is.Equal(s.Alert().Message, "Right pressed!")
	is.True(strings.Contains(s.View(), "Alert: Right pressed!"))

	// A dismissal for an older alert is ignored.
	s.Update(alert.Msg{Title: "Alert", Message: "again"})
	s.Update(dismissMsg{seq: 1})
	is.Equal(s.Alert().Message, "again")

	s.Update(dismissMsg{seq: 2})
	is.True(s.Alert() == nil)
	is.True(!strings.Contains(s.View(), "again"))
}

func TestAlertWithoutTimeout(t *testing.T) {
	is := is.New(t)
	s := newStatusBar(t)
	s.SetAlertTimeout(0)
	_, cmd := s.Update(alert.Msg{Title: "Alert", Message: "sticky"})
	is.True(cmd == nil)
	is.Equal(s.Alert().Message, "sticky")
}

func TestViewFitsWidth(t *testing.T) {
	is := is.New(t)
	s := newStatusBar(t)
	s.SetStatus("appheader", strings.Repeat("long ", 40), "v1")
	v := s.common.Zone.Scan(s.View())
	is.Equal(lipgloss.Width(v), 80)
}
