// internal/corpus/manifest.go
package corpus

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
)

// Artifact is one built exhibit as recorded in the manifest. SHA256 is the
// primary key downstream analyzers use to refer to a sample.
type Artifact struct {
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Path   string `json:"path"`
	GOOS   string `json:"goos,omitempty"`
	GOARCH string `json:"goarch,omitempty"`
	Size   int64  `json:"size"`
	SHA256 string `json:"sha256"`
}

// Manifest describes one corpus build.
type Manifest struct {
	BuildID   uuid.UUID  `json:"build_id"`
	CreatedAt time.Time  `json:"created_at"`
	Artifacts []Artifact `json:"artifacts"`
}

// NewManifest starts an empty manifest with a fresh build ID.
func NewManifest() *Manifest {
	return &Manifest{
		BuildID:   uuid.New(),
		CreatedAt: time.Now().UTC(),
	}
}

// Add records a built artifact, filling in size and digest from disk.
func (m *Manifest) Add(fx Fixture, path string) (Artifact, error) {
	digest, size, err := hashFile(path)
	if err != nil {
		return Artifact{}, fmt.Errorf("failed to hash %s: %w", path, err)
	}
	a := Artifact{
		Name:   fx.Name,
		Kind:   fx.Kind,
		Path:   path,
		GOOS:   fx.GOOS,
		GOARCH: fx.GOARCH,
		Size:   size,
		SHA256: digest,
	}
	m.Artifacts = append(m.Artifacts, a)
	return a, nil
}

// Write serializes the manifest as indented JSON.
func (m *Manifest) Write(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// LoadManifest reads a manifest written by Write.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}
	return &m, nil
}

func hashFile(path string) (string, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, err
	}
	defer f.Close()

	h := sha256.New()
	size, err := io.Copy(h, f)
	if err != nil {
		return "", 0, err
	}
	return hex.EncodeToString(h.Sum(nil)), size, nil
}
