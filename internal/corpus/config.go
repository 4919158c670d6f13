// internal/corpus/config.go
// Package corpus builds the exhibit binaries that the downstream analysis
// toolchain consumes: the fixture executables under cmd/, the c-shared
// mathlib, and the C fixture sources. It records what it built in a
// manifest keyed by a corpus build ID.
package corpus

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Fixture kinds.
const (
	KindGo      = "go"      // plain Go main package
	KindCShared = "cshared" // Go main package built with -buildmode=c-shared
	KindC       = "c"       // single C source file
)

// Fixture describes one exhibit to build.
type Fixture struct {
	Name   string `toml:"name"`
	Kind   string `toml:"kind"`
	Path   string `toml:"path"`   // package path (go kinds) or C source file
	GOOS   string `toml:"goos"`   // optional cross-compile target
	GOARCH string `toml:"goarch"`
}

// Config is the corpus build configuration, loaded from corpus.toml.
type Config struct {
	OutputDir string    `toml:"output_dir"`
	GoTool    string    `toml:"go_tool"`
	CC        string    `toml:"cc"`       // host C compiler; empty skips native C fixtures
	MingwCC   string    `toml:"mingw_cc"` // Windows-targeting C compiler; empty skips those
	Fixtures  []Fixture `toml:"fixtures"`
}

// LoadConfig reads and validates a corpus configuration file.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if cfg.OutputDir == "" {
		cfg.OutputDir = "dist"
	}
	if cfg.GoTool == "" {
		cfg.GoTool = "go"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the fixture table for the mistakes that would otherwise
// surface halfway through a build.
func (c *Config) Validate() error {
	if len(c.Fixtures) == 0 {
		return fmt.Errorf("no fixtures configured")
	}
	seen := make(map[string]bool, len(c.Fixtures))
	for i, fx := range c.Fixtures {
		if fx.Name == "" {
			return fmt.Errorf("fixture %d: missing name", i)
		}
		if seen[fx.Name] {
			return fmt.Errorf("fixture %q: duplicate name", fx.Name)
		}
		seen[fx.Name] = true
		if fx.Path == "" {
			return fmt.Errorf("fixture %q: missing path", fx.Name)
		}
		switch fx.Kind {
		case KindGo, KindCShared, KindC:
		default:
			return fmt.Errorf("fixture %q: unknown kind %q", fx.Name, fx.Kind)
		}
		if (fx.GOOS == "") != (fx.GOARCH == "") {
			return fmt.Errorf("fixture %q: goos and goarch must be set together", fx.Name)
		}
	}
	return nil
}
