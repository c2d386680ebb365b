package models

// Symbol is a named address range. Loaders reserve a map of these but do not
// populate it yet.
type Symbol struct {
	Name       string
	Start, End uint64
	Dynamic    bool
}
