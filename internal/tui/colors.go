package tui

// Color constants for the grindlog TUI theme
const (
	// Base Colors
	ColorAppBackground  = ""        // Use terminal default background
	ColorCardBackground = "#0F1F17" // Dark felt green
	ColorBorder         = "#3A554A" // Grey-green

	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Primary text (field labels, user input, titles)
	ColorSecondaryText = "#ABC0B4" // Secondary text - subtle green-tinted grey
	ColorDisabledText  = "#6D7A73" // Disabled/muted text
	ColorPlaceholder   = "#ABC0B4" // Same as secondary
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (Felt theme)
	ColorAccentMain   = "#2E7D52" // Active borders, accent elements
	ColorAccentBright = "#4CCB8F" // Highlights, current step, winning figures

	// State Colors
	ColorError   = "#EF4444" // Validation errors, losing figures
	ColorSuccess = "#22C55E" // Success, confirmations
	ColorWarning = "#F59E0B" // Warnings
)
