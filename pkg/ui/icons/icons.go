// Package icons resolves icon descriptors into renderable glyphs.
package icons

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	// DefaultSize is the icon size used when a descriptor has none.
	DefaultSize = 20

	// DefaultColor is the icon color used when a descriptor has none or the
	// given color can't be parsed.
	DefaultColor = "black"

	// LargeSize is the size from which glyphs are rendered bold.
	LargeSize = 24

	// MissingGlyph is rendered when a name is not part of its family.
	MissingGlyph = "?"
)

// namedColors maps the color names accepted in descriptors to hex values.
var namedColors = map[string]string{
	"black":  "#000000",
	"white":  "#ffffff",
	"gray":   "#808080",
	"grey":   "#808080",
	"red":    "#ff0000",
	"green":  "#008000",
	"blue":   "#0000ff",
	"yellow": "#ffff00",
	"orange": "#ffa500",
	"purple": "#800080",
	"pink":   "#ffc0cb",
	"teal":   "#008080",
}

// Descriptor describes an icon to look up. Zero fields take their defaults.
type Descriptor struct {
	Name   string
	Family string
	Size   int
	Color  string
}

// Glyph is a resolved icon.
type Glyph struct {
	Family Family
	Name   string
	Symbol string
	Size   int
	Color  string
	// Found is false when Name is not part of Family and Symbol is the
	// MissingGlyph.
	Found bool
}

// Render renders the glyph on top of the given style.
func (g Glyph) Render(style lipgloss.Style) string {
	style = style.Foreground(lipgloss.Color(g.Color))
	if g.Size >= LargeSize {
		style = style.Bold(true)
	}
	return style.Render(g.Symbol)
}

// View implements a renderable with the zero style.
func (g Glyph) View() string {
	return g.Render(lipgloss.NewStyle())
}

// Registry maps icon families to their glyphs.
type Registry struct {
	mtx    sync.RWMutex
	glyphs map[Family]map[string]string
}

// NewRegistry returns a registry with the built-in glyphs of every family.
func NewRegistry() *Registry {
	r := &Registry{
		glyphs: make(map[Family]map[string]string, len(defaultGlyphs)),
	}
	for _, f := range Families() {
		r.glyphs[f] = make(map[string]string)
		r.Extend(f, defaultGlyphs[f])
	}
	return r
}

// Default is the registry used by Resolve.
var Default = NewRegistry()

// Resolve resolves d using the Default registry.
func Resolve(d Descriptor) Glyph {
	return Default.Resolve(d)
}

// Family returns the family with the given name or DefaultFamily.
func (r *Registry) Family(name string) Family {
	f, _ := ParseFamily(name)
	return f
}

// Extend adds or replaces glyphs in a family. Invalid families are ignored.
func (r *Registry) Extend(f Family, glyphs map[string]string) {
	if !f.Valid() {
		return
	}
	r.mtx.Lock()
	defer r.mtx.Unlock()
	for name, sym := range glyphs {
		r.glyphs[f][name] = sym
	}
}

// Names returns the sorted glyph names of a family.
func (r *Registry) Names(f Family) []string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	names := make([]string, 0, len(r.glyphs[f]))
	for n := range r.glyphs[f] {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the symbol of a glyph name within a family.
func (r *Registry) Lookup(f Family, name string) (string, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	sym, ok := r.glyphs[f][name]
	return sym, ok
}

// Resolve turns a descriptor into a glyph. It never fails: unknown families
// fall back to DefaultFamily and unknown names to MissingGlyph.
func (r *Registry) Resolve(d Descriptor) Glyph {
	g := Glyph{
		Family: r.Family(d.Family),
		Name:   d.Name,
		Size:   d.Size,
		Color:  DefaultColor,
	}
	if g.Size <= 0 {
		g.Size = DefaultSize
	}
	if c, ok := ParseColor(d.Color); ok {
		g.Color = c
	} else {
		g.Color, _ = ParseColor(DefaultColor)
	}
	g.Symbol, g.Found = r.Lookup(g.Family, d.Name)
	if !g.Found {
		g.Symbol = MissingGlyph
	}
	return g
}

// ParseColor normalizes a color name, hex value, or ANSI index into a value
// lipgloss.Color understands.
func ParseColor(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if hex, ok := namedColors[strings.ToLower(s)]; ok {
		return hex, true
	}
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return "", false
		}
		return c.Hex(), true
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n <= 255 {
		return s, true
	}
	return "", false
}
