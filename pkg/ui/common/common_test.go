package common_test

import (
	"context"
	"testing"

	"github.com/younisrahman/appheader/pkg/ui/common"
)

func TestUnits(t *testing.T) {
	cases := []struct {
		name  string
		units int
		cols  int
		rows  int
	}{
		{"zero", 0, 0, 0},
		{"negative", -8, 0, 0},
		{"padding", 16, 2, 1},
		{"hit target", 40, 5, 2},
		{"band", 60, 8, 3},
		{"partial", 9, 2, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := common.Columns(c.units); got != c.cols {
				t.Errorf("Columns(%d) = %d, want %d", c.units, got, c.cols)
			}
			if got := common.Rows(c.units); got != c.rows {
				t.Errorf("Rows(%d) = %d, want %d", c.units, got, c.rows)
			}
		})
	}
}

func TestTruncateString(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"Settings", 20, "Settings"},
		{"Settings", 5, "Sett…"},
	}
	for _, c := range cases {
		if got := common.TruncateString(c.in, c.max); got != c.want {
			t.Errorf("TruncateString(%q, %d) = %q, want %q", c.in, c.max, got, c.want)
		}
	}
}

func TestNewCommon(t *testing.T) {
	c := common.NewCommon(context.TODO(), nil, 80, 24)
	defer c.Zone.Close()
	if c.Styles == nil || c.KeyMap == nil || c.Logger == nil {
		t.Fatalf("NewCommon returned incomplete Common: %+v", c)
	}
	if c.FPS != common.DefaultFPS {
		t.Errorf("FPS = %d, want %d", c.FPS, common.DefaultFPS)
	}
	c.SetSize(100, 30)
	if c.Width != 100 || c.Height != 30 {
		t.Errorf("SetSize(100, 30) => %dx%d", c.Width, c.Height)
	}
}
