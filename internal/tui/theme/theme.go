// Package theme defines color themes for the switchride TUI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name         string
	Background   lipgloss.Color // Page background
	Surface      lipgloss.Color // Card backgrounds
	SurfaceHover lipgloss.Color // Active nav item, selected segment
	Border       lipgloss.Color // Card borders
	BorderBright lipgloss.Color // Focused card borders
	TextDim      lipgloss.Color // Hints, footnotes
	TextMuted    lipgloss.Color // Labels, subtitles
	TextPrimary  lipgloss.Color // Headline figures and body text
	Accent       lipgloss.Color // Buttons, active states
	AccentText   lipgloss.Color // Text drawn on Accent
	Electric     lipgloss.Color // EV figures, savings, live indicator
	Petrol       lipgloss.Color // Petrol figures
	Inverse      lipgloss.Color // Call-to-action block
	InverseText  lipgloss.Color
}

// Active is the currently selected theme.
var Active = ZincDark

// ZincLight mirrors the page's light neutral look.
var ZincLight = Theme{
	Name:         "zinc-light",
	Background:   lipgloss.Color("#FFFFFF"),
	Surface:      lipgloss.Color("#FAFAFA"),
	SurfaceHover: lipgloss.Color("#F4F4F5"),
	Border:       lipgloss.Color("#E4E4E7"),
	BorderBright: lipgloss.Color("#A1A1AA"),
	TextDim:      lipgloss.Color("#A1A1AA"),
	TextMuted:    lipgloss.Color("#71717A"),
	TextPrimary:  lipgloss.Color("#18181B"),
	Accent:       lipgloss.Color("#18181B"),
	AccentText:   lipgloss.Color("#FFFFFF"),
	Electric:     lipgloss.Color("#16A34A"),
	Petrol:       lipgloss.Color("#EA580C"),
	Inverse:      lipgloss.Color("#18181B"),
	InverseText:  lipgloss.Color("#FFFFFF"),
}

// ZincDark is the default theme.
var ZincDark = Theme{
	Name:         "zinc-dark",
	Background:   lipgloss.Color("#09090B"),
	Surface:      lipgloss.Color("#18181B"),
	SurfaceHover: lipgloss.Color("#27272A"),
	Border:       lipgloss.Color("#3F3F46"),
	BorderBright: lipgloss.Color("#71717A"),
	TextDim:      lipgloss.Color("#52525B"),
	TextMuted:    lipgloss.Color("#A1A1AA"),
	TextPrimary:  lipgloss.Color("#FAFAFA"),
	Accent:       lipgloss.Color("#FAFAFA"),
	AccentText:   lipgloss.Color("#18181B"),
	Electric:     lipgloss.Color("#22C55E"),
	Petrol:       lipgloss.Color("#F97316"),
	Inverse:      lipgloss.Color("#FAFAFA"),
	InverseText:  lipgloss.Color("#18181B"),
}

// TokyoNight is a cool blue/purple theme.
var TokyoNight = Theme{
	Name:         "tokyo-night",
	Background:   lipgloss.Color("#1A1B26"),
	Surface:      lipgloss.Color("#24283B"),
	SurfaceHover: lipgloss.Color("#343A52"),
	Border:       lipgloss.Color("#565F89"),
	BorderBright: lipgloss.Color("#7AA2F7"),
	TextDim:      lipgloss.Color("#565F89"),
	TextMuted:    lipgloss.Color("#A9B1D6"),
	TextPrimary:  lipgloss.Color("#C0CAF5"),
	Accent:       lipgloss.Color("#7AA2F7"),
	AccentText:   lipgloss.Color("#1A1B26"),
	Electric:     lipgloss.Color("#9ECE6A"),
	Petrol:       lipgloss.Color("#FF9E64"),
	Inverse:      lipgloss.Color("#C0CAF5"),
	InverseText:  lipgloss.Color("#1A1B26"),
}

// Terminal uses ANSI 16 colors only.
var Terminal = Theme{
	Name:         "terminal",
	Background:   lipgloss.Color("0"),
	Surface:      lipgloss.Color("0"),
	SurfaceHover: lipgloss.Color("8"),
	Border:       lipgloss.Color("8"),
	BorderBright: lipgloss.Color("7"),
	TextDim:      lipgloss.Color("8"),
	TextMuted:    lipgloss.Color("7"),
	TextPrimary:  lipgloss.Color("15"),
	Accent:       lipgloss.Color("15"),
	AccentText:   lipgloss.Color("0"),
	Electric:     lipgloss.Color("2"),
	Petrol:       lipgloss.Color("3"),
	Inverse:      lipgloss.Color("7"),
	InverseText:  lipgloss.Color("0"),
}

// All available themes.
var All = []Theme{ZincDark, ZincLight, TokyoNight, Terminal}

// Names lists the theme names in All order.
func Names() []string {
	out := make([]string, len(All))
	for i, t := range All {
		out[i] = t.Name
	}
	return out
}

// ByName returns a theme by its name, defaulting to ZincDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return ZincDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
