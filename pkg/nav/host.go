package nav

import (
	"fmt"

	"github.com/google/uuid"
)

// DrawerItem describes a screen listed in the drawer.
type DrawerItem struct {
	Name        string
	DrawerLabel string
	Title       string

	LeftIcon       string
	LeftIconFamily string
	LeftIconSize   int
	LeftIconColor  string

	RightIcon       string
	RightIconFamily string
	RightIconSize   int
	RightIconColor  string
}

// Label returns the drawer label, falling back to the title and name.
func (d DrawerItem) Label() string {
	switch {
	case d.DrawerLabel != "":
		return d.DrawerLabel
	case d.Title != "":
		return d.Title
	default:
		return d.Name
	}
}

// Host is an in-memory navigation host with a route stack and a drawer. It
// is not safe for concurrent use; Bubble Tea drives it from Update.
type Host struct {
	items  []DrawerItem
	routes []Route
	open   bool
}

var _ Navigator = (*Host)(nil)

// NewHost returns a host whose initial route is the first item, if any.
func NewHost(items ...DrawerItem) *Host {
	h := &Host{
		items: items,
	}
	if len(items) > 0 {
		h.push(items[0].Name, nil)
	}
	return h
}

// Items returns the drawer items.
func (h *Host) Items() []DrawerItem {
	return h.items
}

// Item returns the drawer item for a route name.
func (h *Host) Item(name string) (DrawerItem, bool) {
	for _, it := range h.items {
		if it.Name == name {
			return it, true
		}
	}
	return DrawerItem{}, false
}

// State implements StateProvider.
func (h *Host) State() State {
	routes := make([]Route, len(h.routes))
	copy(routes, h.routes)
	return State{
		Routes:     routes,
		Index:      len(routes) - 1,
		DrawerOpen: h.open,
	}
}

// Dispatch implements Dispatcher.
func (h *Host) Dispatch(a Action) error {
	switch a.Type {
	case ActionOpenDrawer:
		h.open = true
	case ActionCloseDrawer:
		h.open = false
	case ActionToggleDrawer:
		h.open = !h.open
	case ActionNavigate:
		if _, ok := h.Item(a.Target); !ok {
			return fmt.Errorf("navigate to %q: %w", a.Target, ErrUnknownRoute)
		}
		h.open = false
		if cur := h.State().Current(); cur != nil && cur.Name == a.Target {
			h.routes[len(h.routes)-1].Params = a.Params
			return nil
		}
		h.push(a.Target, a.Params)
	case ActionGoBack:
		if len(h.routes) > 1 {
			h.routes = h.routes[:len(h.routes)-1]
		}
	default:
		return fmt.Errorf("%s: %w", a.Type, ErrUnhandledAction)
	}
	return nil
}

func (h *Host) push(name string, params map[string]string) {
	h.routes = append(h.routes, Route{
		Key:    name + "-" + uuid.NewString(),
		Name:   name,
		Params: params,
	})
}
