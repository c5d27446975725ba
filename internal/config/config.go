/*
File    : signo/internal/config/config.go

Package config loads the optional REPL/CLI configuration file
(`./.signorc.yaml`, falling back to `~/.signorc.yaml`), parsed with
github.com/goccy/go-yaml. Absence of the file is not an error — Default()
returns the same hardcoded banner/prompt/line a config file would need
to repeat to have no effect.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Config controls REPL/CLI presentation: prompt text, banner, color
// enable/disable, and history file path.
type Config struct {
	Prompt      string `yaml:"prompt"`
	Banner      string `yaml:"banner"`
	Line        string `yaml:"line"`
	Color       bool   `yaml:"color"`
	HistoryFile string `yaml:"history_file"`
}

const banner = `
   _____ _
  / ____(_)
 | (___  _  __ _ _ __   ___
  \___ \| |/ _` + "`" + ` | '_ \ / _ \
  ____) | | (_| | | | | (_) |
 |_____/|_|\__, |_| |_|\___/
            __/ |
           |___/
`

// Default returns the built-in configuration used when no file is found.
func Default() Config {
	return Config{
		Prompt:      "sig(%d)> ",
		Banner:      banner,
		Line:        "----------------------------------------------------------------",
		Color:       true,
		HistoryFile: "",
	}
}

// Load reads ./.signorc.yaml, falling back to ~/.signorc.yaml, and merges
// whichever fields it sets over Default(). A missing file in either
// location is not an error: Load simply returns Default().
func Load() (Config, error) {
	cfg := Default()

	path, ok := findConfigFile()
	if !ok {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func findConfigFile() (string, bool) {
	if _, err := os.Stat(".signorc.yaml"); err == nil {
		return ".signorc.yaml", true
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	path := filepath.Join(home, ".signorc.yaml")
	if _, err := os.Stat(path); err == nil {
		return path, true
	}
	return "", false
}
