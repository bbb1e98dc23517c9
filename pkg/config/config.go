// Package config loads the aockit.toml configuration file.
//
// The file is searched from the working directory upward (so a repo can carry
// its own formats), then in the user config directory. Missing files and
// missing keys fall back to defaults that mirror the conventional
// advent-of-code-{year}/day-{day:02} layout.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
)

// FileName is the configuration file looked up in each search location.
const FileName = "aockit.toml"

// Formats holds the path templates describing the puzzle tree.
type Formats struct {
	Repo  string `toml:"repo"`
	Day   string `toml:"day"`
	Part  string `toml:"part"`
	Input string `toml:"input"`
}

// Commands holds the command templates run inside the resolved day directory.
type Commands struct {
	Run  string `toml:"run"`
	Test string `toml:"test"`
}

// Download configures the puzzle endpoint.
type Download struct {
	BaseURL string `toml:"base_url"`
}

// Config is the full decoded configuration.
type Config struct {
	Formats  Formats  `toml:"formats"`
	Commands Commands `toml:"commands"`
	Download Download `toml:"download"`

	// Path is the file the config was loaded from, empty when defaults only.
	Path string `toml:"-"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Formats: Formats{
			Repo:  "advent-of-code-{year}",
			Day:   "day-{day:02}",
			Part:  "part-{part}.rs",
			Input: "input.txt",
		},
		Commands: Commands{
			Run:  "cargo run --quiet --bin part-{part}",
			Test: "cargo test --bin part-{part}",
		},
		Download: Download{
			BaseURL: "https://adventofcode.com",
		},
	}
}

// Load reads the configuration. When explicitPath is non-empty that file must
// exist; otherwise the search order is cwd and its ancestors, then the user
// config directory. Keys absent from the file keep their defaults.
func Load(fs afero.Fs, explicitPath, cwd string) (Config, error) {
	cfg := Default()

	path, err := findFile(fs, explicitPath, cwd)
	if err != nil {
		return Config{}, err
	}
	if path == "" {
		return cfg, nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

func findFile(fs afero.Fs, explicitPath, cwd string) (string, error) {
	if explicitPath != "" {
		if ok, err := afero.Exists(fs, explicitPath); err != nil {
			return "", err
		} else if !ok {
			return "", fmt.Errorf("config file not found: %s", explicitPath)
		}
		return explicitPath, nil
	}

	for dir := cwd; ; dir = filepath.Dir(dir) {
		candidate := filepath.Join(dir, FileName)
		if ok, _ := afero.Exists(fs, candidate); ok {
			return candidate, nil
		}
		if dir == filepath.Dir(dir) {
			break
		}
	}

	if userDir, err := os.UserConfigDir(); err == nil {
		candidate := filepath.Join(userDir, "aockit", FileName)
		if ok, _ := afero.Exists(fs, candidate); ok {
			return candidate, nil
		}
	}
	return "", nil
}
