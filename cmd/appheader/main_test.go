package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/matryer/is"
	"github.com/younisrahman/appheader/pkg/ui/icons"
	"github.com/younisrahman/appheader/pkg/ui/styles"
)

func TestIconsTableFamilies(t *testing.T) {
	is := is.New(t)
	st := styles.DefaultStyles(lipgloss.NewRenderer(io.Discard))
	tb, err := iconsTable(st, icons.NewRegistry(), "", "")
	is.NoErr(err)
	v := tb.Render()
	for _, f := range icons.Families() {
		is.True(strings.Contains(v, f.String()))
	}
	is.True(strings.Contains(v, "FontAwesome (default)"))
}

func TestIconsTableGlyphs(t *testing.T) {
	is := is.New(t)
	st := styles.DefaultStyles(lipgloss.NewRenderer(io.Discard))
	tb, err := iconsTable(st, icons.NewRegistry(), "feather", "")
	is.NoErr(err)
	v := tb.Render()
	is.True(strings.Contains(v, "bell"))
	is.True(strings.Contains(v, "🔔"))

	_, err = iconsTable(st, icons.NewRegistry(), "Wingdings", "")
	is.True(err != nil)
}

func TestIconsTableFilter(t *testing.T) {
	is := is.New(t)
	st := styles.DefaultStyles(lipgloss.NewRenderer(io.Discard))
	tb, err := iconsTable(st, icons.NewRegistry(), "feather", "b*")
	is.NoErr(err)
	v := tb.Render()
	is.True(strings.Contains(v, "bell"))
	is.True(!strings.Contains(v, "search"))

	tb, err = iconsTable(st, icons.NewRegistry(), "", "Font*")
	is.NoErr(err)
	v = tb.Render()
	is.True(strings.Contains(v, "FontAwesome6"))
	is.True(!strings.Contains(v, "Zocial"))

	_, err = iconsTable(st, icons.NewRegistry(), "feather", "[")
	is.True(err != nil)
}

func TestLoadConfig(t *testing.T) {
	is := is.New(t)
	t.Setenv("APPHEADER_DATA_PATH", t.TempDir())
	t.Setenv("APPHEADER_NAME", "from env")
	cfg, err := loadConfig("")
	is.NoErr(err)
	is.Equal(cfg.Name, "from env")

	_, err = loadConfig("testdata/missing.yaml")
	is.True(err != nil)
}

func TestManPage(t *testing.T) {
	is := is.New(t)
	var b bytes.Buffer
	manCmd.SetOut(&b)
	is.NoErr(manCmd.RunE(manCmd, nil))
	is.True(strings.Contains(b.String(), "appheader"))
}
