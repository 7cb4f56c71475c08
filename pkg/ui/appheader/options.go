package appheader

import (
	"github.com/younisrahman/appheader/pkg/config"
	"github.com/younisrahman/appheader/pkg/nav"
	"github.com/younisrahman/appheader/pkg/ui/common"
	"github.com/younisrahman/appheader/pkg/ui/components/header"
	"github.com/younisrahman/appheader/pkg/ui/components/pressable"
	"github.com/younisrahman/appheader/pkg/ui/icons"
)

// Defaults of the left control.
const (
	DefaultLeftIcon   = "menu"
	DefaultLeftFamily = "MaterialIcons"
	DefaultLeftSize   = 28
	DefaultLeftColor  = "#007AFF"
)

// IconOptions describe the icon of one control.
type IconOptions struct {
	icons.Descriptor

	// Style modifies the style the glyph is rendered with.
	Style header.StyleFunc
}

// Options configure the header. Every field is optional; the zero value
// means the default.
type Options struct {
	Title string

	OnLeftPress  pressable.Action
	OnRightPress pressable.Action

	LeftIcon  IconOptions
	RightIcon IconOptions

	LeftPressDisable  bool
	RightPressDisable bool

	// LeftComponent and RightComponent replace the icons. Components that
	// also implement common.Model receive every message the header gets.
	LeftComponent  common.Renderable
	RightComponent common.Renderable

	HeaderStyle header.StyleFunc
	TitleStyle  header.StyleFunc
}

// OptionsFromConfig converts a header configuration to Options.
func OptionsFromConfig(cfg config.HeaderConfig) Options {
	return Options{
		Title:             cfg.Title,
		LeftIcon:          iconFromConfig(cfg.Left),
		RightIcon:         iconFromConfig(cfg.Right),
		LeftPressDisable:  cfg.Left.Disabled,
		RightPressDisable: cfg.Right.Disabled,
	}
}

func iconFromConfig(ic config.IconConfig) IconOptions {
	return IconOptions{
		Descriptor: icons.Descriptor{
			Name:   ic.Icon,
			Family: ic.Family,
			Size:   ic.Size,
			Color:  ic.Color,
		},
	}
}

// WithItem returns a copy of o titled after a drawer item. A title set in o
// wins over the item's.
func (o Options) WithItem(item nav.DrawerItem) Options {
	if o.Title == "" {
		o.Title = item.Title
	}
	return o
}

func overlay(base, top icons.Descriptor) icons.Descriptor {
	if top.Name != "" {
		base.Name = top.Name
	}
	if top.Family != "" {
		base.Family = top.Family
	}
	if top.Size > 0 {
		base.Size = top.Size
	}
	if top.Color != "" {
		base.Color = top.Color
	}
	return base
}

// leftDescriptor fills the left icon's empty fields with the left defaults.
func (o Options) leftDescriptor() icons.Descriptor {
	return overlay(icons.Descriptor{
		Name:   DefaultLeftIcon,
		Family: DefaultLeftFamily,
		Size:   DefaultLeftSize,
		Color:  DefaultLeftColor,
	}, o.LeftIcon.Descriptor)
}

// rightDescriptor is the right icon as given. The registry applies the
// general defaults.
func (o Options) rightDescriptor() icons.Descriptor {
	return o.RightIcon.Descriptor
}
