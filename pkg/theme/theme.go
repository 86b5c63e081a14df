// Package theme maps the visual roles widgets draw with onto concrete
// styles. Widgets never hold raw colors; they ask the theme for a
// role, so swapping a theme restyles the whole application.
package theme

import (
	"github.com/odvcencio/tessera/pkg/color"
	"github.com/odvcencio/tessera/pkg/grid"
)

// Theme defines the complete visual language of an application.
type Theme struct {
	// Core palette
	Background grid.Style
	Surface    grid.Style

	// Text hierarchy
	TextPrimary   grid.Style
	TextSecondary grid.Style
	TextMuted     grid.Style

	// Accent colors
	Accent    grid.Style
	AccentDim grid.Style

	// Semantic colors
	Success grid.Style
	Warning grid.Style
	Error   grid.Style
	Info    grid.Style

	// UI elements
	Border      grid.Style
	BorderFocus grid.Style
	Selection   grid.Style
	Title       grid.Style
	Spinner     grid.Style

	// Gauge bands
	GaugeLow  grid.Style
	GaugeMid  grid.Style
	GaugeHigh grid.Style
}

// DefaultTheme returns the built-in dark theme: rich blacks, warm
// amber accents.
func DefaultTheme() *Theme {
	return &Theme{
		Background: grid.DefaultStyle().Background(color.FromRGB(12, 12, 16)),
		Surface:    grid.DefaultStyle().Background(color.FromRGB(22, 22, 28)),

		TextPrimary:   grid.DefaultStyle().Foreground(color.FromRGB(240, 238, 232)),
		TextSecondary: grid.DefaultStyle().Foreground(color.FromRGB(160, 158, 150)),
		TextMuted:     grid.DefaultStyle().Foreground(color.FromRGB(100, 98, 92)),

		Accent:    grid.DefaultStyle().Foreground(color.FromRGB(255, 183, 77)),
		AccentDim: grid.DefaultStyle().Foreground(color.FromRGB(180, 130, 60)),

		Success: grid.DefaultStyle().Foreground(color.FromRGB(134, 239, 172)),
		Warning: grid.DefaultStyle().Foreground(color.FromRGB(255, 138, 101)),
		Error:   grid.DefaultStyle().Foreground(color.FromRGB(255, 110, 90)),
		Info:    grid.DefaultStyle().Foreground(color.FromRGB(77, 182, 172)),

		Border:      grid.DefaultStyle().Foreground(color.FromRGB(50, 50, 60)),
		BorderFocus: grid.DefaultStyle().Foreground(color.FromRGB(255, 183, 77)),
		Selection:   grid.DefaultStyle().Background(color.FromRGB(60, 60, 80)),
		Title:       grid.DefaultStyle().Foreground(color.FromRGB(255, 183, 77)).Bold(true),
		Spinner:     grid.DefaultStyle().Foreground(color.FromRGB(255, 183, 77)),

		GaugeLow:  grid.DefaultStyle().Foreground(color.FromRGB(134, 239, 172)),
		GaugeMid:  grid.DefaultStyle().Foreground(color.FromRGB(253, 224, 71)),
		GaugeHigh: grid.DefaultStyle().Foreground(color.FromRGB(255, 110, 90)).Bold(true),
	}
}

// roles maps config keys onto theme slots. Every key here is legal in
// a theme file; anything else is rejected.
func (t *Theme) roles() map[string]*grid.Style {
	return map[string]*grid.Style{
		"background":     &t.Background,
		"surface":        &t.Surface,
		"text_primary":   &t.TextPrimary,
		"text_secondary": &t.TextSecondary,
		"text_muted":     &t.TextMuted,
		"accent":         &t.Accent,
		"accent_dim":     &t.AccentDim,
		"success":        &t.Success,
		"warning":        &t.Warning,
		"error":          &t.Error,
		"info":           &t.Info,
		"border":         &t.Border,
		"border_focus":   &t.BorderFocus,
		"selection":      &t.Selection,
		"title":          &t.Title,
		"spinner":        &t.Spinner,
		"gauge_low":      &t.GaugeLow,
		"gauge_mid":      &t.GaugeMid,
		"gauge_high":     &t.GaugeHigh,
	}
}

// Symbols provides consistent iconography.
var Symbols = struct {
	Bullet      string
	BulletEmpty string
	Arrow       string
	Check       string
	Cross       string
	Dot         string
	Ellipsis    string

	// Borders (rounded)
	BorderTopLeft     string
	BorderTopRight    string
	BorderBottomLeft  string
	BorderBottomRight string
	BorderHorizontal  string
	BorderVertical    string

	Spinner      []string
	Progress     string
	ProgressFill string
}{
	Bullet:      "●",
	BulletEmpty: "○",
	Arrow:       "›",
	Check:       "✓",
	Cross:       "✗",
	Dot:         "·",
	Ellipsis:    "…",

	BorderTopLeft:     "╭",
	BorderTopRight:    "╮",
	BorderBottomLeft:  "╰",
	BorderBottomRight: "╯",
	BorderHorizontal:  "─",
	BorderVertical:    "│",

	Spinner:      []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
	Progress:     "░",
	ProgressFill: "█",
}

// Layout defines standard spacing and dimensions.
var Layout = struct {
	PaddingSM int
	PaddingMD int
	PaddingLG int

	PanelMinWidth  int
	PanelMinHeight int
	GaugeWidth     int
}{
	PaddingSM: 1,
	PaddingMD: 2,
	PaddingLG: 4,

	PanelMinWidth:  4,
	PanelMinHeight: 3,
	GaugeWidth:     20,
}
