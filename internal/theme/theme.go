// Package theme supplies named color palettes for the render surfaces.
// Switching themes re-skins a diagram; it never touches layout state.
package theme

// Theme is a fixed palette. Colors are hex strings usable directly in SVG
// and convertible to lipgloss colors for the terminal surface.
type Theme struct {
	Name       string
	Background string
	NodeFill   string
	NodeStroke string
	Text       string
	Link       string
	LinkText   string
}

var themes = []Theme{
	{
		Name:       "dark",
		Background: "#1a1a2e",
		NodeFill:   "#16213e",
		NodeStroke: "#4cc9f0",
		Text:       "#e8e8f0",
		Link:       "#7209b7",
		LinkText:   "#b5179e",
	},
	{
		Name:       "light",
		Background: "#f8f9fc",
		NodeFill:   "#ffffff",
		NodeStroke: "#3a0ca3",
		Text:       "#1a1a2e",
		Link:       "#4361ee",
		LinkText:   "#7209b7",
	},
	{
		Name:       "parchment",
		Background: "#f4ecd8",
		NodeFill:   "#fffbf0",
		NodeStroke: "#8b5e34",
		Text:       "#3e2c1c",
		Link:       "#a47148",
		LinkText:   "#6f4518",
	},
}

// Default returns the palette used when nothing is configured.
func Default() Theme {
	return themes[0]
}

// ByName looks up a theme by name.
func ByName(name string) (Theme, bool) {
	for _, t := range themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// Names returns all theme names in cycle order.
func Names() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

// Next returns the theme following name in cycle order, wrapping around.
// Unknown names cycle to the default.
func Next(name string) Theme {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)]
		}
	}
	return Default()
}
