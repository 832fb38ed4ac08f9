package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = t.TempDir()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if cfg.UI.StyleVariant != "rose_garden" || cfg.UI.MotionLevel != "full" || cfg.UI.MouseScope != "full" {
		t.Fatalf("unexpected ui defaults %+v", cfg.UI)
	}
}

func TestValidateFillsBlankEnums(t *testing.T) {
	cfg := Config{DataDir: t.TempDir()}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if cfg.UI.StyleVariant != "rose_garden" || cfg.UI.MotionLevel != "full" || cfg.UI.MouseScope != "full" {
		t.Fatalf("expected blank enums to be filled, got %+v", cfg.UI)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]Config{
		"style":    {UI: UIConfig{StyleVariant: "neon"}},
		"motion":   {UI: UIConfig{MotionLevel: "wild"}},
		"mouse":    {UI: UIConfig{MouseScope: "scoped"}},
		"remember": {Remember: true, Name: "  "},
		"scenario": {Scenario: "epilogue"},
	}
	for name, cfg := range cases {
		cfg.DataDir = t.TempDir()
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestValidateAcceptsScreenNamesAsScenarios(t *testing.T) {
	cfg := Config{DataDir: t.TempDir(), Scenario: "screen-note"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestValidateDefaultsDataDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !strings.HasSuffix(cfg.DataDir, filepath.Join(".local", "share", "heartnote")) {
		t.Fatalf("unexpected data dir %q", cfg.DataDir)
	}
}

func TestLayering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heartnote.yaml")
	body := "name: FromFile\nascii_only: true\nui:\n  style_variant: midnight\n  motion_level: reduced\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	if err := LoadConfigFile(path, &cfg); err != nil {
		t.Fatalf("load file: %v", err)
	}
	if cfg.Name != "FromFile" || !cfg.ASCIIOnly || cfg.UI.StyleVariant != "midnight" {
		t.Fatalf("file not applied: %+v", cfg)
	}
	if cfg.UI.MouseScope != "full" {
		t.Fatalf("expected default mouse scope to survive, got %q", cfg.UI.MouseScope)
	}

	err := ApplyEnvFrom(map[string]string{
		"HEARTNOTE_NAME":     "FromEnv",
		"HEARTNOTE_UI_STYLE": "paper",
	}, &cfg)
	if err != nil {
		t.Fatalf("env: %v", err)
	}
	if cfg.Name != "FromEnv" || cfg.UI.StyleVariant != "paper" {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if cfg.UI.MotionLevel != "reduced" || !cfg.ASCIIOnly {
		t.Fatalf("expected file values without env overrides to survive: %+v", cfg)
	}
}

func TestLoadConfigFileErrors(t *testing.T) {
	cfg := DefaultConfig()
	if err := LoadConfigFile("", &cfg); err != nil {
		t.Fatalf("empty path should be a no-op: %v", err)
	}
	if err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"), &cfg); err == nil {
		t.Fatalf("expected error for missing file")
	}
	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("ui: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadConfigFile(bad, &cfg); err == nil {
		t.Fatalf("expected parse error")
	}
}
