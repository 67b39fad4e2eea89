package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tangzhangming/nvcall/internal/abi"
	"github.com/tangzhangming/nvcall/internal/i18n"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[abi]
convention = "win64"

[memory]
limit = 4096

[log]
level = "debug"
lang = "zh"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	conv, err := cfg.Convention()
	if err != nil || conv.Name != abi.WindowsX64.Name {
		t.Errorf("Convention = (%v, %v)", conv, err)
	}
	if cfg.Allocator().Limit() != 4096 {
		t.Errorf("memory limit = %d", cfg.Allocator().Limit())
	}
	if cfg.Language() != i18n.LangChinese {
		t.Errorf("Language = %s", cfg.Language())
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "[memory]\nlimit = 1\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ABI.Convention != "native" || cfg.Log.Level != "info" {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestCustomConvention(t *testing.T) {
	cfg := Default()
	cfg.ABI = ABIConfig{Convention: "custom", IntRegs: 5, FloatRegs: 2}

	conv, err := cfg.Convention()
	if err != nil {
		t.Fatal(err)
	}
	if conv.IntRegs() != 5 || conv.FloatRegs() != 2 {
		t.Errorf("got %s", conv)
	}

	cfg.ABI.IntRegs = 1
	if _, err := cfg.Convention(); !errors.Is(err, abi.ErrTooFewIntRegs) {
		t.Errorf("got %v, want ErrTooFewIntRegs", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"unknown convention", func(c *Config) { c.ABI.Convention = "cdecl" }, abi.ErrUnknownConvention},
		{"negative limit", func(c *Config) { c.Memory.Limit = -1 }, ErrNegativeSize},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, ErrBadLogLevel},
		{"bad lang", func(c *Config) { c.Log.Lang = "fr" }, ErrBadLanguage},
	}

	for _, tt := range tests {
		cfg := Default()
		tt.mutate(cfg)
		if err := cfg.Validate(); !errors.Is(err, tt.want) {
			t.Errorf("%s: got %v, want %v", tt.name, err, tt.want)
		}
	}
	if err := Default().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)

	cfg := GenerateDefault()
	cfg.ABI.Convention = "aapcs64"
	cfg.Memory.Limit = 1 << 20
	if err := cfg.Save(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip: got %+v, want %+v", loaded, cfg)
	}

	sub := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}
	found := FindConfigFile(sub)
	if filepath.Base(found) != ConfigFileName {
		t.Errorf("FindConfigFile = %q", found)
	}
}
