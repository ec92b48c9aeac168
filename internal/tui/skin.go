package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SkinColors defines the color pairs of the display with semantic naming
type SkinColors struct {
	// Bands
	TitleText       string `yaml:"title_text"`       // Module title band text
	TitleBackground string `yaml:"title_background"` // Module title band background
	BandText        string `yaml:"band_text"`        // Subtitle and popup header band text
	BandBackground  string `yaml:"band_background"`  // Subtitle and popup header band background

	// Data rows
	Hits      string `yaml:"hits"`      // Hit counts
	Attention string `yaml:"attention"` // Percentage of the module maximum
	Neutral   string `yaml:"neutral"`   // Any other percentage
	Label     string `yaml:"label"`     // Row labels
	Bar       string `yaml:"bar"`       // Horizontal bars

	// Header summary
	Value string `yaml:"value"` // Header totals
	Path  string `yaml:"path"`  // Source file path

	// Chrome
	Border           string `yaml:"border"`            // Popup borders
	StatusText       string `yaml:"status_text"`       // Status line text
	StatusBackground string `yaml:"status_background"` // Status line background
	Selected         string `yaml:"selected"`          // Selected list item
	Error            string `yaml:"error"`             // Inline errors
}

// Skin represents a complete color scheme
type Skin struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Author      string     `yaml:"author,omitempty"`
	Colors      SkinColors `yaml:"colors"`
}

// DefaultSkin returns the default color scheme
func DefaultSkin() *Skin {
	return &Skin{
		Name:        "default",
		Description: "Default hitview color scheme - Dark theme",
		Colors: SkinColors{
			TitleText:       "#000000", // Black
			TitleBackground: "#49E209", // Green
			BandText:        "#000000", // Black
			BandBackground:  "#00D7D7", // Cyan

			Hits:      "#FFFFFF", // White
			Attention: "#FFD93D", // Yellow
			Neutral:   "#FF6B6B", // Red
			Label:     "#FFFFFF", // White
			Bar:       "#49E209", // Green

			Value: "#00D7D7", // Cyan
			Path:  "#FFD93D", // Yellow

			Border:           "#0f93fc", // Blue
			StatusText:       "#FFFFFF", // White
			StatusBackground: "#081C39", // Navy
			Selected:         "#0f93fc", // Blue
			Error:            "#FF6B6B", // Red
		},
	}
}

// LoadSkin loads a skin from a YAML file
func LoadSkin(path string) (*Skin, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read skin file: %w", err)
	}

	var skin Skin
	if err := yaml.Unmarshal(data, &skin); err != nil {
		return nil, fmt.Errorf("failed to parse skin file: %w", err)
	}

	applyDefaults(&skin.Colors, &DefaultSkin().Colors)
	return &skin, nil
}

// applyDefaults fills in any missing colors with defaults
func applyDefaults(colors *SkinColors, defaults *SkinColors) {
	pairs := []struct {
		dst *string
		src string
	}{
		{&colors.TitleText, defaults.TitleText},
		{&colors.TitleBackground, defaults.TitleBackground},
		{&colors.BandText, defaults.BandText},
		{&colors.BandBackground, defaults.BandBackground},
		{&colors.Hits, defaults.Hits},
		{&colors.Attention, defaults.Attention},
		{&colors.Neutral, defaults.Neutral},
		{&colors.Label, defaults.Label},
		{&colors.Bar, defaults.Bar},
		{&colors.Value, defaults.Value},
		{&colors.Path, defaults.Path},
		{&colors.Border, defaults.Border},
		{&colors.StatusText, defaults.StatusText},
		{&colors.StatusBackground, defaults.StatusBackground},
		{&colors.Selected, defaults.Selected},
		{&colors.Error, defaults.Error},
	}
	for _, p := range pairs {
		if *p.dst == "" {
			*p.dst = p.src
		}
	}
}

// LoadSkinByName loads a skin by name from the skins directory
func LoadSkinByName(name string, configDir string) (*Skin, error) {
	if name == "" || name == "default" {
		return DefaultSkin(), nil
	}

	if filepath.Ext(name) == "" {
		name = name + ".yaml"
	}

	skinsDir := filepath.Join(configDir, "skins")
	skinPath := filepath.Join(skinsDir, name)

	// Fall back to the bare name when name.yaml is absent
	if _, err := os.Stat(skinPath); os.IsNotExist(err) && filepath.Ext(name) == ".yaml" {
		altPath := filepath.Join(skinsDir, name[:len(name)-5])
		if _, err := os.Stat(altPath); err == nil {
			skinPath = altPath
		}
	}

	return LoadSkin(skinPath)
}
