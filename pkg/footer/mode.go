package footer

// DisplayMode selects the visual variant of the footer.
type DisplayMode string

const (
	ModeUnset DisplayMode = ""
	ModeLight DisplayMode = "light"
	ModeDark  DisplayMode = "dark"
)

// IsDark reports whether the mode selects the dark variant. Only the exact
// value "dark" does; unset and unknown values fall back to light.
func (m DisplayMode) IsDark() bool {
	return m == ModeDark
}

// Variant returns the variant actually rendered for m: ModeDark or ModeLight.
func (m DisplayMode) Variant() DisplayMode {
	if m.IsDark() {
		return ModeDark
	}
	return ModeLight
}

// String returns the mode as given, or "unset".
func (m DisplayMode) String() string {
	if m == ModeUnset {
		return "unset"
	}
	return string(m)
}
