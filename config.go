package main

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	SaveDirectory string
	CellWidth     float64
	CellHeight    float64
	FontSize      float64
	PDFFontSize   float64
	LogLevel      slog.Level
	StatusBar     bool
}

func defaultConfig() *Config {
	return &Config{
		SaveDirectory: "",
		CellWidth:     8,
		CellHeight:    16,
		FontSize:      12,
		PDFFontSize:   10,
		LogLevel:      slog.LevelInfo,
		StatusBar:     true,
	}
}

func loadConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultConfig()
	}

	file, err := os.Open(filepath.Join(homeDir, configFileName))
	if err != nil {
		return defaultConfig()
	}
	defer file.Close()

	return parseConfig(file, homeDir)
}

func parseConfig(r io.Reader, homeDir string) *Config {
	config := defaultConfig()

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
		case "cellwidth", "cell_width":
			setPositive(&config.CellWidth, value)
		case "cellheight", "cell_height":
			setPositive(&config.CellHeight, value)
		case "fontsize", "font_size":
			setPositive(&config.FontSize, value)
		case "pdffontsize", "pdf_font_size":
			setPositive(&config.PDFFontSize, value)
		case "loglevel", "log_level":
			var level slog.Level
			if err := level.UnmarshalText([]byte(value)); err == nil {
				config.LogLevel = level
			}
		case "statusbar", "status_bar":
			config.StatusBar = strings.ToLower(value) == "true"
		}
	}

	return config
}

func setPositive(dst *float64, value string) {
	if v, err := strconv.ParseFloat(value, 64); err == nil && v > 0 {
		*dst = v
	}
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" || filepath.IsAbs(filename) {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}
