package pressable

import (
	"context"
	"io"
	"math"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/matryer/is"
	"github.com/younisrahman/appheader/pkg/ui/common"
)

func newModel(t *testing.T, p Params) *Model {
	t.Helper()
	c := common.NewCommon(context.TODO(), lipgloss.NewRenderer(io.Discard), 80, 24)
	t.Cleanup(c.Zone.Close)
	return New(c, p)
}

// settle drives the frame loop until the spring comes to rest.
func settle(t *testing.T, m *Model) int {
	t.Helper()
	frames := 0
	for m.Animating() {
		m.Update(FrameMsg{id: m.id, tag: m.tag})
		frames++
		if frames > 1000 {
			t.Fatalf("spring did not settle, scale=%f velocity=%f", m.scale, m.velocity)
		}
	}
	return frames
}

// scan renders m through its zone manager and waits until the region's zone
// is known.
func scan(t *testing.T, m *Model) *zone.ZoneInfo {
	t.Helper()
	m.common.Zone.Scan(m.View())
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if z := m.common.Zone.Get(m.ZoneID()); z != nil && !z.IsZero() {
			return z
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("zone %q was never registered", m.ZoneID())
	return nil
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func counter(n *int) Action {
	return func() tea.Cmd {
		*n++
		return nil
	}
}

func TestSpringParams(t *testing.T) {
	is := is.New(t)
	af, dr := SpringParams()
	is.True(math.Abs(af-math.Sqrt(200)) < 1e-9)
	is.True(dr > 0 && dr < 1) // underdamped
}

func TestPressInSettlesAtPressedScale(t *testing.T) {
	is := is.New(t)
	var taps int
	m := newModel(t, Params{OnPress: counter(&taps), Child: common.Text("x")})
	is.Equal(m.Scale(), RestScale)

	is.True(m.PressIn() != nil)
	is.True(m.Pressed())
	is.True(m.Animating())
	settle(t, m)
	is.Equal(m.Scale(), PressedScale)
	is.Equal(taps, 0) // press-in never dispatches

	m.PressOut(true)
	is.Equal(taps, 1) // dispatched before the animation settles
	is.True(m.Animating())
	settle(t, m)
	is.Equal(m.Scale(), RestScale)
}

func TestImmediatePressOutReturnsToRest(t *testing.T) {
	is := is.New(t)
	var taps int
	m := newModel(t, Params{OnPress: counter(&taps)})
	m.PressIn()
	m.PressOut(true)
	m.PressOut(true) // no press in progress
	settle(t, m)
	is.Equal(m.Scale(), RestScale)
	is.Equal(taps, 1)
}

func TestRetargetKeepsVelocity(t *testing.T) {
	is := is.New(t)
	m := newModel(t, Params{})
	m.PressIn()
	tag := m.tag
	for i := 0; i < 3; i++ {
		m.Update(FrameMsg{id: m.id, tag: m.tag})
	}
	is.True(m.Scale() < RestScale)
	v := m.velocity
	is.True(v != 0)

	m.PressOut(false)
	is.Equal(m.velocity, v) // no discontinuity
	is.Equal(m.tag, tag)    // same frame loop
	is.Equal(m.target, RestScale)
	settle(t, m)
	is.Equal(m.Scale(), RestScale)
}

func TestReleaseOutsideIsNotATap(t *testing.T) {
	is := is.New(t)
	var taps int
	m := newModel(t, Params{OnPress: counter(&taps)})
	m.PressIn()
	m.PressOut(false)
	settle(t, m)
	is.Equal(taps, 0)
	is.Equal(m.Scale(), RestScale)
}

func TestDisabled(t *testing.T) {
	is := is.New(t)
	var taps int
	m := newModel(t, Params{Disabled: true, OnPress: counter(&taps)})
	is.True(m.PressIn() == nil)
	is.True(!m.Pressed())
	is.True(m.PressOut(true) == nil)
	is.True(m.Tap() == nil)
	m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m.Update(releaseMsg{id: m.id})
	is.Equal(taps, 0)
	is.Equal(m.Scale(), RestScale)
	is.True(!m.Animating())
}

func TestDisableMidPressResets(t *testing.T) {
	is := is.New(t)
	var taps int
	m := newModel(t, Params{OnPress: counter(&taps)})
	m.PressIn()
	stale := m.tag
	m.Update(FrameMsg{id: m.id, tag: m.tag})
	m.Update(FrameMsg{id: m.id, tag: m.tag})

	m.SetDisabled(true)
	is.Equal(m.Scale(), RestScale)
	is.True(!m.Pressed())
	is.True(!m.Animating())

	m.Update(FrameMsg{id: m.id, tag: stale})
	is.Equal(m.Scale(), RestScale)
	m.PressOut(true)
	is.Equal(taps, 0)

	m.SetDisabled(false)
	is.True(m.PressIn() != nil)
}

func TestForeignFramesIgnored(t *testing.T) {
	is := is.New(t)
	a := newModel(t, Params{})
	b := newModel(t, Params{})
	is.True(a.ID() != b.ID())
	is.True(a.ZoneID() != b.ZoneID())

	a.PressIn()
	b.Update(FrameMsg{id: a.id, tag: a.tag})
	is.Equal(b.Scale(), RestScale)
	a.Update(FrameMsg{id: a.id, tag: a.tag - 1})
	is.Equal(a.Scale(), RestScale)
	a.Update(FrameMsg{id: a.id, tag: a.tag})
	is.True(a.Scale() < RestScale)
}

func TestTap(t *testing.T) {
	is := is.New(t)
	var taps int
	m := newModel(t, Params{OnPress: counter(&taps)})
	is.True(m.Tap() != nil)
	is.True(m.Pressed())
	is.Equal(taps, 0)

	m.Update(releaseMsg{id: m.id + 1000})
	is.Equal(taps, 0)
	m.Update(releaseMsg{id: m.id})
	is.Equal(taps, 1)
	is.True(!m.Pressed())
	settle(t, m)
	is.Equal(m.Scale(), RestScale)
}

func TestActionCmdIsForwarded(t *testing.T) {
	is := is.New(t)
	type pressedMsg struct{}
	m := newModel(t, Params{OnPress: func() tea.Cmd {
		return func() tea.Msg { return pressedMsg{} }
	}})
	m.PressIn()
	settle(t, m)
	cmd := m.PressOut(true)
	is.True(cmd != nil)
	found := false
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			if _, ok := c().(pressedMsg); ok {
				found = true
			}
		}
	case pressedMsg:
		found = true
	}
	is.True(found)
}

func TestViewMinimumWidth(t *testing.T) {
	is := is.New(t)
	m := newModel(t, Params{Child: common.Text("x")})
	v := m.common.Zone.Scan(m.View())
	is.Equal(lipgloss.Width(v), common.Columns(MinWidthUnits))

	wide := newModel(t, Params{Child: common.Text("a much wider child")})
	v = wide.common.Zone.Scan(wide.View())
	is.Equal(lipgloss.Width(v), len("a much wider child"))
}

func TestMouseTap(t *testing.T) {
	is := is.New(t)
	var taps int
	m := newModel(t, Params{OnPress: counter(&taps), Child: common.Text("x")})
	z := scan(t, m)

	m.Update(mouse(tea.MouseActionPress, z.StartX, z.StartY))
	is.True(m.Pressed())
	is.Equal(taps, 0)
	settle(t, m)
	is.Equal(m.Scale(), PressedScale)

	m.Update(mouse(tea.MouseActionRelease, z.EndX, z.EndY))
	is.Equal(taps, 1)
	is.True(!m.Pressed())
	settle(t, m)
	is.Equal(m.Scale(), RestScale)
}

func TestMouseReleaseOutside(t *testing.T) {
	is := is.New(t)
	var taps int
	m := newModel(t, Params{OnPress: counter(&taps), Child: common.Text("x")})
	z := scan(t, m)

	m.Update(mouse(tea.MouseActionRelease, z.StartX, z.StartY)) // no press yet
	m.Update(mouse(tea.MouseActionPress, z.EndX+10, z.StartY))  // outside
	is.True(!m.Pressed())

	m.Update(mouse(tea.MouseActionPress, z.StartX, z.StartY))
	m.Update(mouse(tea.MouseActionRelease, z.EndX+10, z.StartY))
	is.Equal(taps, 0)
	is.True(!m.Pressed())
	settle(t, m)
	is.Equal(m.Scale(), RestScale)
}

func TestMouseDisabled(t *testing.T) {
	is := is.New(t)
	var taps int
	m := newModel(t, Params{Disabled: true, OnPress: counter(&taps), Child: common.Text("x")})
	z := scan(t, m)

	_, cmd := m.Update(mouse(tea.MouseActionPress, z.StartX, z.StartY))
	is.True(cmd == nil)
	is.True(!m.Pressed())
	_, cmd = m.Update(mouse(tea.MouseActionRelease, z.StartX, z.StartY))
	is.True(cmd == nil)
	is.Equal(taps, 0)
	is.Equal(m.Scale(), RestScale)
	is.True(!m.Animating())
}

func TestHitTargetHeight(t *testing.T) {
	is := is.New(t)
	var taps int
	m := newModel(t, Params{OnPress: counter(&taps), Child: common.Text("x"), Height: 3})
	is.Equal(lipgloss.Height(m.View()), 3)
	z := scan(t, m)
	is.Equal(z.EndY-z.StartY, 2)

	// The rows above and below the child are part of the target.
	m.Update(mouse(tea.MouseActionPress, z.StartX, z.StartY))
	m.Update(mouse(tea.MouseActionRelease, z.StartX, z.EndY))
	is.Equal(taps, 1)
}

func TestRepeatedKeyTaps(t *testing.T) {
	is := is.New(t)
	var taps int
	m := newModel(t, Params{OnPress: counter(&taps)})
	is.True(m.Tap() != nil)
	is.True(m.Tap() != nil) // before the first release

	m.Update(releaseMsg{id: m.id})
	is.Equal(taps, 1)
	is.True(m.Pressed())
	m.Update(releaseMsg{id: m.id})
	is.Equal(taps, 2)
	is.True(!m.Pressed())

	m.Update(releaseMsg{id: m.id}) // nothing pending
	is.Equal(taps, 2)
	settle(t, m)
	is.Equal(m.Scale(), RestScale)
}

func TestKeyTapWhileMouseHeld(t *testing.T) {
	is := is.New(t)
	var taps int
	m := newModel(t, Params{OnPress: counter(&taps), Child: common.Text("x")})
	z := scan(t, m)

	m.Update(mouse(tea.MouseActionPress, z.StartX, z.StartY))
	is.True(m.Tap() == nil)
	m.Update(releaseMsg{id: m.id})
	is.Equal(taps, 0)
	is.True(m.Pressed())

	m.Update(mouse(tea.MouseActionRelease, z.StartX, z.StartY))
	is.Equal(taps, 1)
	is.True(!m.Pressed())
}
