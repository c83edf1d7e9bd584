package game

// DebugState holds global debug flags that persist across resets
type DebugState struct {
	ShowSprings bool // spring lines while soft (F1)
	ShowHull    bool // convex hull outline (F2)
	ShowStats   bool // tick/mode/fps line (F3)
}

// Global debug state instance (persists across resets)
var globalDebugState = &DebugState{
	ShowSprings: true,
	ShowStats:   true,
}

// GetDebugState returns the global debug state
func GetDebugState() *DebugState {
	return globalDebugState
}
