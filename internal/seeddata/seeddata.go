// Package seeddata loads the default navigation content that navdb seeds
// into an empty database. The built-in set is embedded from defaults.yaml;
// a replacement file with the same layout can be loaded from disk.
package seeddata

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/navdb/pkg/types"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Menu is a default top-level menu.
type Menu struct {
	Name  string `yaml:"name"`
	Order int    `yaml:"order"`
}

// SubMenu is a default sub-menu, attached to the menu named Menu.
type SubMenu struct {
	Menu  string `yaml:"menu"`
	Name  string `yaml:"name"`
	Order int    `yaml:"order"`
}

// Card is a default link card. When SubMenu is empty the card belongs to
// the menu named Menu. When SubMenu is set the card belongs to that
// sub-menu and Menu names its parent; an empty Menu leaves the parent to be
// inferred from the sub-menu name alone.
type Card struct {
	Menu    string `yaml:"menu"`
	SubMenu string `yaml:"sub_menu,omitempty"`
	Title   string `yaml:"title"`
	URL     string `yaml:"url"`
	LogoURL string `yaml:"logo_url,omitempty"`
	Desc    string `yaml:"desc,omitempty"`
	Order   int    `yaml:"order,omitempty"`
}

// Friend is a default friend link.
type Friend struct {
	Title string `yaml:"title"`
	URL   string `yaml:"url"`
	Logo  string `yaml:"logo,omitempty"`
}

// Set is a complete default content set.
type Set struct {
	Menus    []Menu    `yaml:"menus"`
	SubMenus []SubMenu `yaml:"sub_menus"`
	Cards    []Card    `yaml:"cards"`
	Friends  []Friend  `yaml:"friends"`
}

// Defaults returns the embedded default content set.
func Defaults() (*Set, error) {
	return Parse(defaultsYAML)
}

// MustDefaults is like Defaults but panics if the embedded file is invalid.
func MustDefaults() *Set {
	s, err := Defaults()
	if err != nil {
		panic(fmt.Sprintf("seeddata: embedded defaults: %v", err))
	}
	return s
}

// LoadFile reads a content set from path. An empty path returns the
// embedded defaults.
func LoadFile(path string) (*Set, error) {
	if path == "" {
		return Defaults()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a YAML content set.
func Parse(data []byte) (*Set, error) {
	var s Set
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decoding seed data: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that every entry carries the fields the seeder needs.
// It does not check references between entries; unresolved references are
// reported per item when seeding.
func (s *Set) Validate() error {
	for i, m := range s.Menus {
		if m.Name == "" {
			return fmt.Errorf("menus[%d]: %w", i, types.ErrSeedEmptyName)
		}
	}
	for i, sm := range s.SubMenus {
		if sm.Name == "" || sm.Menu == "" {
			return fmt.Errorf("sub_menus[%d]: %w", i, types.ErrSeedEmptyName)
		}
	}
	for i, c := range s.Cards {
		if c.Menu == "" && c.SubMenu == "" {
			return fmt.Errorf("cards[%d] %q: %w", i, c.Title, types.ErrCardParent)
		}
		if c.Title == "" {
			return fmt.Errorf("cards[%d]: %w", i, types.ErrSeedEmptyTitle)
		}
		if c.URL == "" {
			return fmt.Errorf("cards[%d] %q: %w", i, c.Title, types.ErrSeedEmptyURL)
		}
	}
	for i, f := range s.Friends {
		if f.Title == "" {
			return fmt.Errorf("friends[%d]: %w", i, types.ErrSeedEmptyTitle)
		}
		if f.URL == "" {
			return fmt.Errorf("friends[%d] %q: %w", i, f.Title, types.ErrSeedEmptyURL)
		}
	}
	return nil
}
