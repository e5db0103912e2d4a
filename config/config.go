// Package config reads the user settings file ~/.orthorouterc.
//
// The file holds one "key = value" pair per line. Blank lines and lines
// starting with '#' are ignored, keys are case-insensitive, and lines that do
// not parse are skipped so a stale file never stops the tool from running.
package config

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"orthoroute/render"
	"orthoroute/route"
)

const FileName = ".orthorouterc"

type Config struct {
	SaveDirectory string
	Preview       bool
	LogLevel      slog.Level
	Render        render.Options
	Route         route.Options
}

func Default() *Config {
	return &Config{
		LogLevel: slog.LevelWarn,
		Render:   render.DefaultOptions(),
		Route:    route.DefaultOptions(),
	}
}

// Load reads ~/.orthorouterc. A missing file yields the defaults.
func Load() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Default()
	}
	file, err := os.Open(filepath.Join(homeDir, FileName))
	if err != nil {
		return Default()
	}
	defer file.Close()
	return Parse(file, homeDir)
}

// Parse reads settings from r. homeDir expands a leading '~' in paths.
func Parse(r io.Reader, homeDir string) *Config {
	config := Default()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "savedirectory", "save_directory", "savedir":
			if strings.HasPrefix(value, "~") && homeDir != "" {
				value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
			}
			if !filepath.IsAbs(value) {
				if absPath, err := filepath.Abs(value); err == nil {
					value = absPath
				}
			}
			config.SaveDirectory = value
		case "preview":
			config.Preview = strings.ToLower(value) == "true"
		case "log_level", "loglevel":
			var lvl slog.Level
			if err := lvl.UnmarshalText([]byte(value)); err == nil {
				config.LogLevel = lvl
			}
		case "scale":
			if f, err := strconv.ParseFloat(value, 64); err == nil && f > 0 {
				config.Render.Scale = f
			}
		case "font_size", "fontsize":
			if f, err := strconv.ParseFloat(value, 64); err == nil && f > 0 {
				config.Render.FontSize = f
			}
		case "clearance":
			setInt(&config.Route.Clearance, value)
		case "trunk_offset", "trunkoffset":
			setInt(&config.Route.TrunkOffset, value)
		case "self_margin", "selfmargin":
			setInt(&config.Route.SelfMargin, value)
		}
	}

	return config
}

func setInt(dst *int, value string) {
	if n, err := strconv.Atoi(value); err == nil && n > 0 {
		*dst = n
	}
}

// GetSavePath places filename in the save directory, creating it if needed.
// Absolute names and an unset directory leave filename unchanged.
func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" || filepath.IsAbs(filename) {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}
