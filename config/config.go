// Package config loads instance requirements and logging settings from
// YAML, TOML or JSON files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/andewx/dieselgpu"
)

// Config holds everything a host needs to bring up the GPU instance.
type Config struct {
	Requirements RequirementsConfig `json:"requirements" yaml:"requirements" toml:"requirements"`
	Log          LogConfig          `json:"log" yaml:"log" toml:"log"`
	Loader       string             `json:"loader" yaml:"loader" toml:"loader"`
}

// RequirementsConfig mirrors dieselgpu.Requirements option names.
// Versions are dotted strings such as "1.2.0".
type RequirementsConfig struct {
	MinAPIVersion     string `json:"min_api_version" yaml:"min_api_version" toml:"min_api_version"`
	MaxAPIVersion     string `json:"max_api_version" yaml:"max_api_version" toml:"max_api_version"`
	RequestValidation bool   `json:"request_validation" yaml:"request_validation" toml:"request_validation"`
	AppName           string `json:"app_name" yaml:"app_name" toml:"app_name"`
	AppVersion        string `json:"app_version" yaml:"app_version" toml:"app_version"`
	Diagnostics       string `json:"diagnostics" yaml:"diagnostics" toml:"diagnostics"`
	PrevalidateLayers bool   `json:"prevalidate_layers" yaml:"prevalidate_layers" toml:"prevalidate_layers"`
}

type LogConfig struct {
	Level  string `json:"level" yaml:"level" toml:"level"`
	Format string `json:"format" yaml:"format" toml:"format"`
	File   string `json:"file" yaml:"file" toml:"file"`
}

func Default() Config {
	return Config{
		Requirements: RequirementsConfig{
			MinAPIVersion: "1.0.0",
			MaxAPIVersion: "1.0.0",
			Diagnostics:   "creation",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Loader: "default",
	}
}

// Load reads path over the defaults, choosing the decoder by extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &cfg)
	case ".json":
		err = json.Unmarshal(b, &cfg)
	case ".toml":
		err = toml.Unmarshal(b, &cfg)
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the enumerated settings. Version ranges are left to the
// native driver.
func (c Config) Validate() error {
	var problems []string
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		problems = append(problems, fmt.Sprintf("log.level: unknown level %q", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		problems = append(problems, fmt.Sprintf("log.format: unknown format %q", c.Log.Format))
	}
	switch strings.ToLower(c.Loader) {
	case "", "default", "glfw":
	default:
		problems = append(problems, fmt.Sprintf("loader: unknown loader %q", c.Loader))
	}
	if _, err := dieselgpu.ParseDiagnosticsScope(c.Requirements.Diagnostics); err != nil {
		problems = append(problems, "requirements.diagnostics: "+err.Error())
	}
	if len(problems) > 0 {
		return fmt.Errorf("config.validation.error: %s", strings.Join(problems, "; "))
	}
	return nil
}

// BuildRequirements converts the file form into dieselgpu.Requirements
// through the recognized option names.
func (c Config) BuildRequirements() (dieselgpu.Requirements, error) {
	req := dieselgpu.DefaultRequirements()
	r := c.Requirements
	opts := []struct{ name, value string }{
		{"min_api_version", r.MinAPIVersion},
		{"max_api_version", r.MaxAPIVersion},
		{"request_validation", strconv.FormatBool(r.RequestValidation)},
		{"app_name", r.AppName},
		{"app_version", r.AppVersion},
		{"diagnostics", r.Diagnostics},
		{"prevalidate_layers", strconv.FormatBool(r.PrevalidateLayers)},
	}
	for _, o := range opts {
		if o.value == "" {
			continue
		}
		if err := req.Set(o.name, o.value); err != nil {
			return req, err
		}
	}
	return req, nil
}
