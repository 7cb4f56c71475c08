// Package pressable provides a pressable region that scales down while it is
// held and dispatches an action on tap.
package pressable

import (
	"fmt"
	"math"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/younisrahman/appheader/pkg/ui/common"
)

// Spring and press parameters.
const (
	PressedScale = 0.9
	RestScale    = 1.0

	Damping   = 10.0
	Stiffness = 200.0
	Mass      = 1.0

	// MinWidthUnits is the minimum hit target width in layout units.
	MinWidthUnits = 40

	// pressedThreshold is the scale under which the child renders pressed.
	pressedThreshold = 0.95

	// settleThreshold is the distance and velocity under which the spring
	// snaps to its target.
	settleThreshold = 1e-3

	// tapRelease is the delay between press-in and press-out of Tap.
	tapRelease = 120 * time.Millisecond
)

// Internal ID management. Used to route frame messages to the right region.
var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Action is called when a tap completes.
type Action func() tea.Cmd

// Params configure a pressable region.
type Params struct {
	Disabled bool
	OnPress  Action
	Child    common.Renderable
	// Align positions the child horizontally within the hit target.
	Align lipgloss.Position
	// Height is the hit target height in rows. The child is centered
	// vertically within it.
	Height int
}

// FrameMsg advances the spring of the region with the matching ID.
type FrameMsg struct {
	id  int
	tag int
}

type releaseMsg struct {
	id int
}

// Model is a pressable region.
type Model struct {
	common common.Common
	id     int
	zoneID string
	params Params

	spring   harmonica.Spring
	scale    float64
	velocity float64
	target   float64

	pressed   bool
	animating bool
	tag       int
	// keyTaps counts key taps whose release is still pending.
	keyTaps int
}

// SpringParams returns the harmonica angular frequency and damping ratio for
// the Damping and Stiffness constants at unit Mass.
func SpringParams() (angularFrequency, dampingRatio float64) {
	angularFrequency = math.Sqrt(Stiffness / Mass)
	dampingRatio = Damping / (2 * math.Sqrt(Stiffness*Mass))
	return
}

// New returns a new pressable region at rest.
func New(c common.Common, p Params) *Model {
	fps := c.FPS
	if fps <= 0 {
		fps = common.DefaultFPS
	}
	af, dr := SpringParams()
	id := nextID()
	return &Model{
		common: c,
		id:     id,
		zoneID: fmt.Sprintf("pressable-%d", id),
		params: p,
		spring: harmonica.NewSpring(harmonica.FPS(fps), af, dr),
		scale:  RestScale,
		target: RestScale,
	}
}

// ID returns the region's ID.
func (m *Model) ID() int {
	return m.id
}

// ZoneID returns the mouse zone ID of the region.
func (m *Model) ZoneID() string {
	return m.zoneID
}

// Scale returns the current animated scale.
func (m *Model) Scale() float64 {
	return m.scale
}

// Pressed reports whether a press is in progress.
func (m *Model) Pressed() bool {
	return m.pressed
}

// Animating reports whether the spring is still moving.
func (m *Model) Animating() bool {
	return m.animating
}

// Disabled reports whether the region ignores input.
func (m *Model) Disabled() bool {
	return m.params.Disabled
}

// SetParams replaces the region's parameters and keeps its press state.
func (m *Model) SetParams(p Params) {
	disabled := p.Disabled
	p.Disabled = m.params.Disabled
	m.params = p
	m.SetDisabled(disabled)
}

// SetDisabled enables or disables the region. Disabling resets it to rest.
func (m *Model) SetDisabled(disabled bool) {
	m.params.Disabled = disabled
	if !disabled {
		return
	}
	m.pressed = false
	m.keyTaps = 0
	m.animating = false
	m.scale = RestScale
	m.velocity = 0
	m.target = RestScale
	// Drop any frame still in flight.
	m.tag++
}

// SetSize implements common.Component.
func (m *Model) SetSize(width, height int) {
	m.common.SetSize(width, height)
}

// PressIn starts a press and springs toward PressedScale.
func (m *Model) PressIn() tea.Cmd {
	if m.params.Disabled || m.pressed {
		return nil
	}
	m.pressed = true
	m.common.Logger.Debug("press in", "zone", m.zoneID)
	return m.animateTo(PressedScale)
}

// PressOut ends a press and springs back to RestScale. When tap is true the
// press counts as a completed tap and OnPress is dispatched right away.
func (m *Model) PressOut(tap bool) tea.Cmd {
	if m.params.Disabled || !m.pressed {
		return nil
	}
	m.pressed = false
	m.keyTaps = 0
	cmds := make([]tea.Cmd, 0, 2)
	if tap && m.params.OnPress != nil {
		m.common.Logger.Debug("tap", "zone", m.zoneID)
		cmds = append(cmds, m.params.OnPress())
	}
	cmds = append(cmds, m.animateTo(RestScale))
	return tea.Batch(cmds...)
}

// Tap presses the region and releases it shortly after, as a completed tap.
// Taps made while another key tap is pending each dispatch OnPress. A tap
// while the mouse holds the region is ignored.
func (m *Model) Tap() tea.Cmd {
	if m.params.Disabled || (m.pressed && m.keyTaps == 0) {
		return nil
	}
	m.keyTaps++
	cmd := m.PressIn()
	id := m.id
	return tea.Batch(cmd, tea.Tick(tapRelease, func(time.Time) tea.Msg {
		return releaseMsg{id: id}
	}))
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (common.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if m.params.Disabled {
			return m, nil
		}
		switch msg.Action {
		case tea.MouseActionPress:
			if msg.Button == tea.MouseButtonLeft && m.inBounds(msg) {
				return m, m.PressIn()
			}
		case tea.MouseActionRelease:
			if m.pressed && m.keyTaps == 0 {
				return m, m.PressOut(m.inBounds(msg))
			}
		}
	case releaseMsg:
		if msg.id != m.id || m.keyTaps == 0 {
			return m, nil
		}
		if m.keyTaps > 1 {
			m.keyTaps--
			if m.params.OnPress != nil {
				return m, m.params.OnPress()
			}
			return m, nil
		}
		return m, m.PressOut(true)
	case FrameMsg:
		if msg.id != m.id || msg.tag != m.tag || !m.animating {
			return m, nil
		}
		return m, m.step()
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	var child string
	if m.params.Child != nil {
		child = m.params.Child.View()
	}
	style := m.common.Styles.Pressable.Rest
	if m.scale < pressedThreshold {
		style = m.common.Styles.Pressable.Pressed
	}
	width := max(lipgloss.Width(child), common.Columns(MinWidthUnits))
	style = style.Width(width).Align(m.params.Align)
	if m.params.Height > 0 {
		style = style.Height(m.params.Height).AlignVertical(lipgloss.Center)
	}
	v := style.Render(child)
	if m.common.Zone == nil {
		return v
	}
	return m.common.Zone.Mark(m.zoneID, v)
}

func (m *Model) inBounds(msg tea.MouseMsg) bool {
	if m.common.Zone == nil {
		return false
	}
	z := m.common.Zone.Get(m.zoneID)
	if z == nil {
		return false
	}
	return z.InBounds(msg)
}

// animateTo retargets the spring. A running animation keeps its velocity and
// frame loop; otherwise a new loop starts.
func (m *Model) animateTo(target float64) tea.Cmd {
	m.target = target
	if m.animating {
		return nil
	}
	m.animating = true
	m.tag++
	return m.nextFrame()
}

func (m *Model) step() tea.Cmd {
	m.scale, m.velocity = m.spring.Update(m.scale, m.velocity, m.target)
	if math.Abs(m.scale-m.target) < settleThreshold && math.Abs(m.velocity) < settleThreshold {
		m.scale = m.target
		m.velocity = 0
		m.animating = false
		return nil
	}
	return m.nextFrame()
}

func (m *Model) nextFrame() tea.Cmd {
	id, tag := m.id, m.tag
	fps := m.common.FPS
	if fps <= 0 {
		fps = common.DefaultFPS
	}
	return tea.Tick(time.Second/time.Duration(fps), func(time.Time) tea.Msg {
		return FrameMsg{id: id, tag: tag}
	})
}
