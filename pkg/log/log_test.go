package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/younisrahman/appheader/pkg/config"
)

func TestGoodNewLogger(t *testing.T) {
	for _, c := range []*config.Config{
		config.DefaultConfig(),
		{},
		{Log: config.LogConfig{Path: filepath.Join(t.TempDir(), "logfile.txt")}},
	} {
		_, f, err := NewLogger(c)
		if err != nil {
			t.Errorf("NewLogger(%v) => _, _, %v, want _, _, nil", c, err)
		}
		if f != nil {
			f.Close()
		}
	}
}

func TestBadNewLogger(t *testing.T) {
	for _, c := range []*config.Config{
		nil,
		{Log: config.LogConfig{Path: "\x00"}},
	} {
		_, f, err := NewLogger(c)
		if err == nil {
			t.Errorf("NewLogger(%v) => _, _, nil, want _, _, %v", c, err)
		}
		if f != nil {
			f.Close()
		}
	}
}

func TestJSONToFile(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "appheader.log")
	logger, f, err := NewLogger(&config.Config{
		Name: "appheader",
		Log:  config.LogConfig{Format: "json", Path: path},
	})
	is.NoErr(err)
	logger.Info("tap", "zone", "pressable-1")
	is.NoErr(f.Close())

	b, err := os.ReadFile(path)
	is.NoErr(err)
	line := string(b)
	is.True(strings.HasPrefix(line, "{"))
	is.True(strings.Contains(line, `"msg":"tap"`))
	is.True(strings.Contains(line, `"zone":"pressable-1"`))
}
