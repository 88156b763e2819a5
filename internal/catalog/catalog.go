// Package catalog serves the two static link lists and their pagination.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// PerPage is the number of links shown per page.
const PerPage = 4

type Section string

const (
	SectionTools Section = "tools"
	SectionGames Section = "games"
)

// Sections lists the sections in display order.
var Sections = []Section{SectionTools, SectionGames}

type Item struct {
	Name        string `yaml:"name" json:"name"`
	URL         string `yaml:"url" json:"url"`
	Description string `yaml:"description" json:"description"`
}

// Catalog holds every section's items in display order.
type Catalog struct {
	Tools []Item `yaml:"tools"`
	Games []Item `yaml:"games"`
}

//go:embed catalog.yaml
var embedded []byte

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(embedded)
}

// Parse decodes a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	return &c, nil
}

// ParseSection accepts a section name case-insensitively.
func ParseSection(s string) (Section, error) {
	switch Section(strings.ToLower(strings.TrimSpace(s))) {
	case SectionTools:
		return SectionTools, nil
	case SectionGames:
		return SectionGames, nil
	}
	return "", fmt.Errorf("unknown catalog section %q (want tools or games)", s)
}

// Items returns the items of a section.
func (c *Catalog) Items(s Section) []Item {
	switch s {
	case SectionTools:
		return c.Tools
	case SectionGames:
		return c.Games
	}
	return nil
}

// Title is the heading shown above a section.
func (s Section) Title() string {
	switch s {
	case SectionTools:
		return "Tools"
	case SectionGames:
		return "Games"
	}
	return string(s)
}
