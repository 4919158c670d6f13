// internal/corpus/verify.go
package corpus

import (
	"bytes"
	"debug/elf"
	"debug/pe"
	"fmt"
	"io"
	"os"
)

// Export names an analyzer minimally expects in the shared mathlib. A subset
// of the full surface is enough to prove the export table survived the build.
var requiredExports = []string{
	"mathlib_init",
	"mathlib_version",
	"mathlib_add",
	"mathlib_random",
	"mathlib_point_distance",
}

var (
	elfMagic = []byte{0x7f, 'E', 'L', 'F'}
	peMagic  = []byte{'M', 'Z'}
)

// VerifyArtifact checks that a built artifact parses as a real binary in
// its container format. Text files, truncated headers and other build
// wreckage fail here instead of downstream in the analyzer.
func VerifyArtifact(a Artifact) error {
	head, err := readHead(a.Path, 4)
	if err != nil {
		return err
	}

	switch {
	case bytes.HasPrefix(head, elfMagic):
		f, err := elf.Open(a.Path)
		if err != nil {
			return fmt.Errorf("invalid ELF: %w", err)
		}
		defer f.Close()
		if a.Kind == KindCShared {
			return verifyELFExports(f)
		}
		return nil

	case bytes.HasPrefix(head, peMagic):
		f, err := pe.Open(a.Path)
		if err != nil {
			return fmt.Errorf("invalid PE: %w", err)
		}
		return f.Close()

	default:
		return fmt.Errorf("unrecognized binary format (magic % x)", head)
	}
}

// verifyELFExports confirms the shared library still exports the mathlib
// surface. PE export directories are left to the downstream toolchain;
// debug/pe does not expose them.
func verifyELFExports(f *elf.File) error {
	syms, err := f.DynamicSymbols()
	if err != nil {
		return fmt.Errorf("failed to read dynamic symbols: %w", err)
	}
	exported := make(map[string]bool, len(syms))
	for _, s := range syms {
		exported[s.Name] = true
	}
	for _, name := range requiredExports {
		if !exported[name] {
			return fmt.Errorf("missing export %q", name)
		}
	}
	return nil
}

func readHead(path string, n int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open artifact: %w", err)
	}
	defer f.Close()

	head := make([]byte, n)
	if _, err := io.ReadFull(f, head); err != nil {
		return nil, fmt.Errorf("failed to read artifact header: %w", err)
	}
	return head, nil
}
