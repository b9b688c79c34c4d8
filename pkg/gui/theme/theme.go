package theme

// Theme defines all colors used throughout the application with semantic naming.
var (
	// Brand colors
	AccentColor = "#9d87ae" // default dot color

	// Text colors
	TextPrimary     = "#ffffff" // white text for focused/active elements
	TextDescription = "#c9c9c9" // light gray for descriptions and help text
	TextMuted       = "#7a7a7a" // dark gray for very subtle text

	// Border colors
	BorderActive = "#c9c9c9" // border while the spinner is running
	BorderMuted  = "#7a7a7a" // border while hidden

	// Status/semantic colors
	SuccessStatus = "#50fa7b" // green for saved preferences
	ErrorStatus   = "#ff5555" // red for errors
	InfoStatus    = "#8be9fd" // cyan for info

	// Canvas colors
	CanvasBackground = "#282a36" // dots fade toward this
	SeparatorColor   = "#4a4a4a" // very dark gray for separators
)

// Palette is the set of dot colors the demo cycles through.
var Palette = []string{
	AccentColor,
	InfoStatus,
	SuccessStatus,
	"#ffb86c",
	ErrorStatus,
	"#f1fa8c",
	TextPrimary,
}

// NextColor returns the palette entry after current, wrapping around. Unknown
// colors restart the cycle.
func NextColor(current string) string {
	for i, c := range Palette {
		if c == current {
			return Palette[(i+1)%len(Palette)]
		}
	}
	return Palette[0]
}
