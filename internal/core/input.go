package core

// PointerKind is the phase of a pointer gesture, abstracted from the
// physical device (mouse button, touch).
type PointerKind int

const (
	PointerNone PointerKind = iota
	PointerDown             // Button pressed / touch started
	PointerMove             // Motion while pressed
	PointerUp               // Button released / touch ended
)

// String returns a human-readable name for the pointer kind.
func (k PointerKind) String() string {
	switch k {
	case PointerNone:
		return "None"
	case PointerDown:
		return "Down"
	case PointerMove:
		return "Move"
	case PointerUp:
		return "Up"
	default:
		return "Unknown"
	}
}

// PointerEvent is a normalized pointer event in screen coordinates.
type PointerEvent struct {
	Kind PointerKind
	At   Point
}
