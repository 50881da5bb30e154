package preview

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures/*.yaml
var embeddedFixtures embed.FS

// Example is one named set of component options.
type Example struct {
	Name    string    `yaml:"name"`
	Options yaml.Node `yaml:"options"`
}

// Fixture groups the examples shown for one component.
type Fixture struct {
	Component string    `yaml:"component"`
	Examples  []Example `yaml:"examples"`
	Source    string    `yaml:"-"`
}

// Fixtures indexes fixtures by component name.
type Fixtures struct {
	byName map[string]Fixture
}

// DefaultFixtures loads the embedded example fixtures.
func DefaultFixtures() (*Fixtures, error) {
	sub, err := fs.Sub(embeddedFixtures, "fixtures")
	if err != nil {
		return nil, fmt.Errorf("preview: fixtures: %w", err)
	}
	return LoadFixtures(sub)
}

// LoadFixtures walks fsys and parses every YAML fixture file. A nil fsys
// yields an empty set.
func LoadFixtures(fsys fs.FS) (*Fixtures, error) {
	set := &Fixtures{byName: make(map[string]Fixture)}
	if fsys == nil {
		return set, nil
	}

	err := fs.WalkDir(fsys, ".", func(p string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isFixtureFile(p) {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("preview: read %s: %w", p, err)
		}
		var fixture Fixture
		if err := yaml.Unmarshal(data, &fixture); err != nil {
			return fmt.Errorf("preview: parse %s: %w", p, err)
		}

		name := strings.TrimSpace(fixture.Component)
		if name == "" {
			name = strings.TrimSuffix(path.Base(p), path.Ext(p))
		}
		if _, exists := set.byName[name]; exists {
			return fmt.Errorf("preview: duplicate fixture for %q (file %s)", name, p)
		}
		fixture.Component = name
		fixture.Source = p
		set.byName[name] = fixture
		return nil
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}

// Lookup returns the fixture for a component.
func (f *Fixtures) Lookup(name string) (Fixture, bool) {
	if f == nil {
		return Fixture{}, false
	}
	fixture, ok := f.byName[name]
	return fixture, ok
}

// Names lists the components with fixtures, sorted.
func (f *Fixtures) Names() []string {
	if f == nil {
		return nil
	}
	names := make([]string, 0, len(f.byName))
	for name := range f.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func isFixtureFile(p string) bool {
	switch strings.ToLower(path.Ext(p)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
