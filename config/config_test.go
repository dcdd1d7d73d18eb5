package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andewx/dieselgpu"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	req, err := Default().BuildRequirements()
	if err != nil {
		t.Fatal(err)
	}
	if req != dieselgpu.DefaultRequirements() {
		t.Errorf("default requirements = %+v", req)
	}
}

func TestLoadYAML(t *testing.T) {
	p := writeFile(t, "gpu.yaml", `
requirements:
  min_api_version: "1.1.0"
  max_api_version: "1.3.0"
  request_validation: true
  diagnostics: instance
log:
  level: debug
  format: json
loader: glfw
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" || cfg.Loader != "glfw" {
		t.Errorf("cfg = %+v", cfg)
	}
	req, err := cfg.BuildRequirements()
	if err != nil {
		t.Fatal(err)
	}
	if req.MinAPIVersion != dieselgpu.MakeAPIVersion(1, 1, 0) || req.MaxAPIVersion != dieselgpu.MakeAPIVersion(1, 3, 0) {
		t.Errorf("versions = %s..%s",
			dieselgpu.FormatAPIVersion(req.MinAPIVersion), dieselgpu.FormatAPIVersion(req.MaxAPIVersion))
	}
	if !req.RequestValidation || req.Diagnostics != dieselgpu.ScopeInstance {
		t.Errorf("req = %+v", req)
	}
}

func TestLoadTOML(t *testing.T) {
	p := writeFile(t, "gpu.toml", `
loader = "default"

[requirements]
min_api_version = "1.2.0"
app_name = "viewer"
prevalidate_layers = true

[log]
level = "warn"
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Format != "console" {
		t.Errorf("unset format should keep the default, got %q", cfg.Log.Format)
	}
	req, err := cfg.BuildRequirements()
	if err != nil {
		t.Fatal(err)
	}
	if req.AppName != "viewer" || !req.PrevalidateLayers {
		t.Errorf("req = %+v", req)
	}
	if req.MinAPIVersion != dieselgpu.MakeAPIVersion(1, 2, 0) {
		t.Errorf("MinAPIVersion = %s", dieselgpu.FormatAPIVersion(req.MinAPIVersion))
	}
}

func TestLoadJSON(t *testing.T) {
	p := writeFile(t, "gpu.json", `{"requirements":{"request_validation":true},"log":{"file":"gpu.log"}}`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Requirements.RequestValidation || cfg.Log.File != "gpu.log" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Error("empty path should fail")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !os.IsNotExist(err) {
		t.Errorf("missing file: err = %v", err)
	}
	if _, err := Load(writeFile(t, "gpu.ini", "x=1")); err == nil {
		t.Error("unsupported extension should fail")
	}
	if _, err := Load(writeFile(t, "bad.yaml", "log: [")); err == nil {
		t.Error("malformed yaml should fail")
	}

	_, err := Load(writeFile(t, "invalid.yaml", "log:\n  level: loud\nloader: sdl\n"))
	if err == nil {
		t.Fatal("invalid values should fail validation")
	}
	for _, want := range []string{"log.level", "loader"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestBuildRequirementsBadVersion(t *testing.T) {
	cfg := Default()
	cfg.Requirements.MinAPIVersion = "one.two"
	if _, err := cfg.BuildRequirements(); err == nil {
		t.Error("bad version should fail")
	}
}
