// internal/corpus/build_test.go
package corpus

import (
	"runtime"
	"strings"
	"testing"
)

func TestFixtureOutputName(t *testing.T) {
	cases := []struct {
		fx   Fixture
		want string
	}{
		{Fixture{Name: "hello", Kind: KindGo, GOOS: "linux", GOARCH: "amd64"}, "hello"},
		{Fixture{Name: "hello", Kind: KindGo, GOOS: "windows", GOARCH: "amd64"}, "hello.exe"},
		{Fixture{Name: "mathlib", Kind: KindCShared, GOOS: "linux", GOARCH: "amd64"}, "libmathlib.so"},
		{Fixture{Name: "mathlib", Kind: KindCShared, GOOS: "windows", GOARCH: "amd64"}, "mathlib.dll"},
	}
	for _, c := range cases {
		if got := c.fx.OutputName(); got != c.want {
			t.Errorf("OutputName(%+v) = %q, want %q", c.fx, got, c.want)
		}
	}
}

func TestFixtureTargetOSFallsBackToHost(t *testing.T) {
	fx := Fixture{Name: "hello", Kind: KindGo}
	if got := fx.TargetOS(); got != runtime.GOOS {
		t.Errorf("TargetOS() = %q, want host %q", got, runtime.GOOS)
	}
}

func TestBuildEnv(t *testing.T) {
	env := buildEnv("windows", "amd64", false)

	var goos, goarch, cgo []string
	for _, kv := range env {
		switch {
		case strings.HasPrefix(kv, "GOOS="):
			goos = append(goos, kv)
		case strings.HasPrefix(kv, "GOARCH="):
			goarch = append(goarch, kv)
		case strings.HasPrefix(kv, "CGO_ENABLED="):
			cgo = append(cgo, kv)
		}
	}
	if len(goos) != 1 || goos[0] != "GOOS=windows" {
		t.Errorf("GOOS entries = %v", goos)
	}
	if len(goarch) != 1 || goarch[0] != "GOARCH=amd64" {
		t.Errorf("GOARCH entries = %v", goarch)
	}
	if len(cgo) != 1 || cgo[0] != "CGO_ENABLED=0" {
		t.Errorf("CGO_ENABLED entries = %v", cgo)
	}
}

func TestBuildEnvCgoAndHostTarget(t *testing.T) {
	env := buildEnv("", "", true)
	for _, kv := range env {
		if strings.HasPrefix(kv, "GOOS=") || strings.HasPrefix(kv, "GOARCH=") {
			t.Errorf("host-target env sets %s", kv)
		}
	}
	var found bool
	for _, kv := range env {
		if kv == "CGO_ENABLED=1" {
			found = true
		}
	}
	if !found {
		t.Errorf("CGO_ENABLED=1 missing from env")
	}
}
