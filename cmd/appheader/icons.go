package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/gobwas/glob"
	"github.com/spf13/cobra"
	"github.com/younisrahman/appheader/pkg/ui/icons"
	"github.com/younisrahman/appheader/pkg/ui/styles"
)

var iconsFilter string

var iconsCmd = &cobra.Command{
	Use:   "icons [FAMILY]",
	Short: "List icon families or the glyphs of one family",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var family string
		if len(args) > 0 {
			family = args[0]
		}
		st := styles.DefaultStyles(lipgloss.DefaultRenderer())
		t, err := iconsTable(st, icons.Default, family, iconsFilter)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), t.Render())
		return nil
	},
}

func init() {
	iconsCmd.Flags().StringVarP(&iconsFilter, "filter", "f", "", "only list names matching a glob pattern")
}

// iconsTable lists the families of r, or the glyphs of one family when
// family is not empty. A non-empty pattern filters family or glyph names.
func iconsTable(st *styles.Styles, r *icons.Registry, family, pattern string) (*table.Table, error) {
	match := func(string) bool { return true }
	if pattern != "" {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid filter %q: %w", pattern, err)
		}
		match = g.Match
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.TableBorderLine).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return st.TableHeader
			}
			return st.TableCell
		})

	if family == "" {
		t = t.Headers("FAMILY", "GLYPHS")
		for _, f := range icons.Families() {
			name := f.String()
			if !match(name) {
				continue
			}
			if f == icons.DefaultFamily {
				name += " (default)"
			}
			t = t.Row(name, strconv.Itoa(len(r.Names(f))))
		}
		return t, nil
	}

	f, ok := icons.ParseFamily(family)
	if !ok {
		return nil, fmt.Errorf("unknown icon family %q", family)
	}
	t = t.Headers("NAME", "GLYPH")
	for _, name := range r.Names(f) {
		if !match(name) {
			continue
		}
		sym, _ := r.Lookup(f, name)
		t = t.Row(name, sym)
	}
	return t, nil
}
