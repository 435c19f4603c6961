// Package config handles the optional run configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls which schedule days are fetched and where output goes.
// Every field has a baked-in default for SIGGRAPH Asia 2025, so the tool
// runs with no config file at all.
type Config struct {
	Dates       []string `yaml:"dates,omitempty"`
	ScheduleURL string   `yaml:"schedule_url,omitempty"` // template with a {date} placeholder
	ImageBase   string   `yaml:"image_base,omitempty"`
	OutputHTML  string   `yaml:"output_html,omitempty"`
	SidecarPath string   `yaml:"sidecar_path,omitempty"`
	DebugPath   string   `yaml:"debug_path,omitempty"`
}

const (
	DefaultScheduleURL = "https://sa2025.conference-schedule.org/wp-content/linklings_snippets/wp_program_view_all_{date}.txt"
	DefaultImageBase   = "https://sa2025.conference-schedule.org"
	DefaultOutputHTML  = "papers.html"
	DefaultSidecarPath = "url.json"
	DefaultDebugPath   = "debug_raw.html"
)

// DefaultDates are the seven conference days of SIGGRAPH Asia 2025 (Hong Kong).
var DefaultDates = []string{
	"2025-12-13",
	"2025-12-14",
	"2025-12-15",
	"2025-12-16",
	"2025-12-17",
	"2025-12-18",
	"2025-12-19",
}

// Default returns a config populated with the built-in defaults.
func Default() *Config {
	return &Config{
		Dates:       append([]string(nil), DefaultDates...),
		ScheduleURL: DefaultScheduleURL,
		ImageBase:   DefaultImageBase,
		OutputHTML:  DefaultOutputHTML,
		SidecarPath: DefaultSidecarPath,
		DebugPath:   DefaultDebugPath,
	}
}

// Load reads a YAML config from path and fills any unset field with its
// default. An empty path or a missing file yields the defaults; a file that
// exists but does not parse is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if len(file.Dates) > 0 {
		cfg.Dates = file.Dates
	}
	if file.ScheduleURL != "" {
		cfg.ScheduleURL = file.ScheduleURL
	}
	if file.ImageBase != "" {
		cfg.ImageBase = file.ImageBase
	}
	if file.OutputHTML != "" {
		cfg.OutputHTML = file.OutputHTML
	}
	if file.SidecarPath != "" {
		cfg.SidecarPath = file.SidecarPath
	}
	if file.DebugPath != "" {
		cfg.DebugPath = file.DebugPath
	}

	return cfg, nil
}
