package core

// Color represents a foreground color for a screen cell.
// Values name device surfaces rather than raw terminal colors; the platform
// maps each one to a terminal style.
type Color uint8

// Device palette.
const (
	ColorDefault   Color = iota
	ColorChassis         // Device frame and engravings
	ColorLabel           // Header and footer labels
	ColorText            // Pending words
	ColorCurrent         // The word under the cursor
	ColorRedacted        // Blocks over correctly censored words
	ColorMistake         // Incorrectly classified words
	ColorDim             // Skipped words and inactive hints
	ColorWarning         // Low time
	ColorPad             // Unlit pad
	ColorPadLit          // Pad pressed within the flash window
	ColorOverlayWin      // Game-over overlay, round won
	ColorOverlayLoss     // Game-over overlay, round lost
)
