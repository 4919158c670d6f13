// internal/corpus/config_test.go
package corpus

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
output_dir = "out"
go_tool = "/usr/local/go/bin/go"

[[fixtures]]
name = "hello"
kind = "go"
path = "./cmd/hello"

[[fixtures]]
name = "suspicious-windows"
kind = "go"
path = "./cmd/suspicious-windows"
goos = "windows"
goarch = "amd64"

[[fixtures]]
name = "mathlib"
kind = "cshared"
path = "./cmd/libmathlib"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.OutputDir != "out" {
		t.Errorf("OutputDir = %q, want out", cfg.OutputDir)
	}
	if cfg.GoTool != "/usr/local/go/bin/go" {
		t.Errorf("GoTool = %q", cfg.GoTool)
	}
	if len(cfg.Fixtures) != 3 {
		t.Fatalf("got %d fixtures, want 3", len(cfg.Fixtures))
	}
	if fx := cfg.Fixtures[1]; fx.GOOS != "windows" || fx.GOARCH != "amd64" {
		t.Errorf("fixture 1 target = %s/%s", fx.GOOS, fx.GOARCH)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
[[fixtures]]
name = "hello"
kind = "go"
path = "./cmd/hello"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.OutputDir != "dist" {
		t.Errorf("default OutputDir = %q, want dist", cfg.OutputDir)
	}
	if cfg.GoTool != "go" {
		t.Errorf("default GoTool = %q, want go", cfg.GoTool)
	}
}

func TestConfigValidation(t *testing.T) {
	cases := []struct {
		name string
		toml string
	}{
		{"no fixtures", `output_dir = "out"`},
		{"missing name", `
[[fixtures]]
kind = "go"
path = "./cmd/hello"
`},
		{"duplicate name", `
[[fixtures]]
name = "hello"
kind = "go"
path = "./cmd/hello"

[[fixtures]]
name = "hello"
kind = "go"
path = "./cmd/hello"
`},
		{"unknown kind", `
[[fixtures]]
name = "hello"
kind = "rust"
path = "./cmd/hello"
`},
		{"goos without goarch", `
[[fixtures]]
name = "hello"
kind = "go"
path = "./cmd/hello"
goos = "windows"
`},
		{"missing path", `
[[fixtures]]
name = "hello"
kind = "go"
`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := writeConfig(t, c.toml)
			if _, err := LoadConfig(path); err == nil {
				t.Errorf("LoadConfig accepted invalid config")
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Errorf("LoadConfig accepted missing file")
	}
}
