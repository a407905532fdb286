package core

// Color identifies how a screen cell is styled.
// The platform layer maps each value to a terminal style.
type Color uint8

// Predefined colors for board elements.
const (
	ColorDefault Color = iota
	ColorTile          // Live, unselected tile
	ColorSelected      // Tile inside the current selection
	ColorRemoving      // Matched tile waiting for visual removal
	ColorDrag          // Selection rectangle outline
	ColorHUD           // Labels in the status line
	ColorAccent        // Values and buttons in the status line
	ColorMatch         // Running sum when it equals the target
	ColorDim           // Help text and separators
)
