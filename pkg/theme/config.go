package theme

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/odvcencio/tessera/pkg/color"
	apperrors "github.com/odvcencio/tessera/pkg/errors"
	"github.com/odvcencio/tessera/pkg/grid"
)

// styleSpec is one role's entry in a theme file. A present entry
// replaces the role's style wholesale: fields left unset mean
// "terminal default", not "keep the built-in value".
type styleSpec struct {
	FG        string `yaml:"fg"`
	BG        string `yaml:"bg"`
	Bold      bool   `yaml:"bold"`
	Dim       bool   `yaml:"dim"`
	Italic    bool   `yaml:"italic"`
	Underline bool   `yaml:"underline"`
	Reverse   bool   `yaml:"reverse"`
}

// themeFile is the on-disk shape of a theme overlay.
type themeFile struct {
	Name   string               `yaml:"name"`
	Colors map[string]styleSpec `yaml:"colors"`
}

// Load reads a theme overlay from a YAML file and applies it on top
// of the default theme.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeThemeLoad, "failed to read theme file").
			WithContext("path", path)
	}

	return Parse(data)
}

// Parse decodes a theme overlay from YAML bytes. Roles absent from
// the overlay keep their default styles.
func Parse(data []byte) (*Theme, error) {
	var file themeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeThemeParse, "failed to parse theme file")
	}

	t := DefaultTheme()
	roles := t.roles()

	for name, spec := range file.Colors {
		slot, ok := roles[name]
		if !ok {
			return nil, apperrors.New(apperrors.ErrCodeThemeInvalid, "unknown theme role").
				WithContext("role", name)
		}

		style, err := spec.style()
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeThemeInvalid, "invalid style for theme role").
				WithContext("role", name)
		}

		*slot = style
	}

	return t, nil
}

// style builds the grid style a spec describes.
func (s styleSpec) style() (grid.Style, error) {
	st := grid.DefaultStyle()

	if s.FG != "" {
		c, err := color.ParseHex(s.FG)
		if err != nil {
			return grid.Style{}, err
		}
		st = st.Foreground(c)
	}

	if s.BG != "" {
		c, err := color.ParseHex(s.BG)
		if err != nil {
			return grid.Style{}, err
		}
		st = st.Background(c)
	}

	return st.
		Bold(s.Bold).
		Dim(s.Dim).
		Italic(s.Italic).
		Underline(s.Underline).
		Reverse(s.Reverse), nil
}
