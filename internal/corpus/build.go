// internal/corpus/build.go
package corpus

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"samples/internal/logging"
)

// Builder compiles the configured fixtures into OutputDir.
type Builder struct {
	cfg *Config
	log *logging.Logger
}

// NewBuilder wires a builder to its configuration and logger.
func NewBuilder(cfg *Config, log *logging.Logger) *Builder {
	return &Builder{cfg: cfg, log: log}
}

// BuildAll builds every configured fixture (or just the named one when only
// is non-empty) and returns the manifest of what was produced. Fixtures
// whose toolchain is not configured are skipped, not failed: a corpus
// without the mingw exhibits is still a usable corpus.
func (b *Builder) BuildAll(ctx context.Context, only string) (*Manifest, error) {
	if err := os.MkdirAll(b.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	manifest := NewManifest()
	b.log.Info("corpus build %s starting, %d fixtures", manifest.BuildID, len(b.cfg.Fixtures))

	for _, fx := range b.cfg.Fixtures {
		if only != "" && fx.Name != only {
			continue
		}
		outPath, err := b.buildOne(ctx, fx)
		if err != nil {
			return nil, fmt.Errorf("fixture %q: %w", fx.Name, err)
		}
		if outPath == "" {
			continue // skipped
		}
		artifact, err := manifest.Add(fx, outPath)
		if err != nil {
			return nil, fmt.Errorf("fixture %q: %w", fx.Name, err)
		}
		b.log.Info("built %s (%s, %d bytes, sha256 %.12s)",
			artifact.Name, artifact.Kind, artifact.Size, artifact.SHA256)
	}

	if len(manifest.Artifacts) == 0 {
		return nil, fmt.Errorf("no fixtures built")
	}
	return manifest, nil
}

// buildOne compiles a single fixture and returns the artifact path, or ""
// when the fixture was skipped for lack of a toolchain.
func (b *Builder) buildOne(ctx context.Context, fx Fixture) (string, error) {
	out := filepath.Join(b.cfg.OutputDir, fx.OutputName())

	var cmd *exec.Cmd
	switch fx.Kind {
	case KindGo:
		cmd = exec.CommandContext(ctx, b.cfg.GoTool, "build", "-trimpath", "-o", out, fx.Path)
		cmd.Env = buildEnv(fx.GOOS, fx.GOARCH, false)

	case KindCShared:
		cmd = exec.CommandContext(ctx, b.cfg.GoTool, "build", "-trimpath",
			"-buildmode=c-shared", "-o", out, fx.Path)
		cmd.Env = buildEnv(fx.GOOS, fx.GOARCH, true)

	case KindC:
		cc := b.cfg.CC
		if fx.TargetOS() == "windows" && runtime.GOOS != "windows" {
			cc = b.cfg.MingwCC
		}
		if cc == "" {
			b.log.Warn("skipping %s: no C compiler configured", fx.Name)
			return "", nil
		}
		cmd = exec.CommandContext(ctx, cc, "-O1", "-o", out, fx.Path)

	default:
		return "", fmt.Errorf("unknown kind %q", fx.Kind)
	}

	b.log.Debug("running %s", strings.Join(cmd.Args, " "))
	if output, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("failed to build: %w\n%s", err, output)
	}
	return out, nil
}

// OutputName is the artifact file name for a fixture: the fixture name plus
// the extension its kind and target demand.
func (f Fixture) OutputName() string {
	switch {
	case f.Kind == KindCShared && f.TargetOS() == "windows":
		return f.Name + ".dll"
	case f.Kind == KindCShared:
		return "lib" + f.Name + ".so"
	case f.TargetOS() == "windows":
		return f.Name + ".exe"
	default:
		return f.Name
	}
}

// TargetOS is the effective build target, falling back to the host.
func (f Fixture) TargetOS() string {
	if f.GOOS != "" {
		return f.GOOS
	}
	return runtime.GOOS
}

// buildEnv assembles the child environment for a go build, overriding the
// cross-compile variables rather than appending duplicates.
func buildEnv(goos, goarch string, cgo bool) []string {
	env := os.Environ()
	drop := func(key string) {
		for i := 0; i < len(env); i++ {
			if strings.HasPrefix(env[i], key+"=") {
				env = append(env[:i], env[i+1:]...)
				i--
			}
		}
	}
	for _, key := range []string{"GOOS", "GOARCH", "CGO_ENABLED"} {
		drop(key)
	}
	if goos != "" {
		env = append(env, "GOOS="+goos, "GOARCH="+goarch)
	}
	if cgo {
		env = append(env, "CGO_ENABLED=1")
	} else {
		env = append(env, "CGO_ENABLED=0")
	}
	return env
}
