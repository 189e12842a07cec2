// Package prefs handles thronedex user preferences persistence.
// Preferences are stored in ~/.config/thronedex/prefs.toml.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/thronedex/internal/config"
	"github.com/five82/thronedex/internal/query"
)

// Prefs holds user preferences for thronedex.
type Prefs struct {
	Theme string `toml:"theme"`
	Sort  string `toml:"sort"`
}

const (
	defaultPrefsPath = "~/.config/thronedex/prefs.toml"
	defaultTheme     = "Winterfell"
)

// Defaults returns the preferences used when nothing is stored.
func Defaults() Prefs {
	return Prefs{Theme: defaultTheme, Sort: query.Ascending.String()}
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Direction returns the stored sort direction, ascending when unset or
// unrecognised.
func (p Prefs) Direction() query.Direction {
	dir, _ := query.ParseDirection(p.Sort)
	return dir
}

// Load reads preferences from the given path. Any problem reading or parsing
// the file yields the defaults; preferences never block startup.
func Load(path string) Prefs {
	resolved, err := resolvePath(path)
	if err != nil {
		return Defaults()
	}

	bytes, err := os.ReadFile(resolved)
	if err != nil {
		return Defaults()
	}

	p := Defaults()
	if err := toml.Unmarshal(bytes, &p); err != nil {
		return Defaults()
	}

	if strings.TrimSpace(p.Theme) == "" {
		p.Theme = defaultTheme
	}
	if _, ok := query.ParseDirection(p.Sort); !ok {
		p.Sort = query.Ascending.String()
	}
	return p
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return config.ExpandPath(defaultPrefsPath)
	}
	return config.ExpandPath(path)
}
