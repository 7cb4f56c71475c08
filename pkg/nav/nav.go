// Package nav defines the navigation host the header reads from and
// dispatches to, and a small in-memory host implementing it.
package nav

import (
	"errors"
)

var (
	// ErrUnhandledAction is returned when a host does not support an action.
	ErrUnhandledAction = errors.New("unhandled navigation action")

	// ErrUnknownRoute is returned when navigating to a route that was never
	// registered.
	ErrUnknownRoute = errors.New("unknown route")
)

// Route is a single entry of the navigation state.
type Route struct {
	Key    string
	Name   string
	Params map[string]string
}

// State is a read-only snapshot of the navigation stack.
type State struct {
	Routes     []Route
	Index      int
	DrawerOpen bool
}

// Current returns the focused route, or nil if there is none.
func (s State) Current() *Route {
	if s.Index < 0 || s.Index >= len(s.Routes) {
		return nil
	}
	r := s.Routes[s.Index]
	return &r
}

// ActionType identifies a navigation action.
type ActionType string

// Navigation action types.
const (
	ActionOpenDrawer   ActionType = "OPEN_DRAWER"
	ActionCloseDrawer  ActionType = "CLOSE_DRAWER"
	ActionToggleDrawer ActionType = "TOGGLE_DRAWER"
	ActionNavigate     ActionType = "NAVIGATE"
	ActionGoBack       ActionType = "GO_BACK"
)

// Action is a navigation action to dispatch.
type Action struct {
	Type   ActionType
	Target string
	Params map[string]string
}

// StateProvider returns the current navigation state.
type StateProvider interface {
	State() State
}

// Dispatcher dispatches navigation actions.
type Dispatcher interface {
	Dispatch(Action) error
}

// Navigator reads and drives a navigation host.
type Navigator interface {
	StateProvider
	Dispatcher
}

type drawerActions struct{}

// DrawerActions builds drawer actions.
var DrawerActions drawerActions

// OpenDrawer returns an action that opens the drawer.
func (drawerActions) OpenDrawer() Action {
	return Action{Type: ActionOpenDrawer}
}

// CloseDrawer returns an action that closes the drawer.
func (drawerActions) CloseDrawer() Action {
	return Action{Type: ActionCloseDrawer}
}

// ToggleDrawer returns an action that toggles the drawer.
func (drawerActions) ToggleDrawer() Action {
	return Action{Type: ActionToggleDrawer}
}

// Navigate returns an action that focuses the named route.
func Navigate(name string, params map[string]string) Action {
	return Action{Type: ActionNavigate, Target: name, Params: params}
}

// GoBack returns an action that pops the focused route.
func GoBack() Action {
	return Action{Type: ActionGoBack}
}
