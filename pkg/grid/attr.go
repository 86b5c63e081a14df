package grid

// Attr is a bitmask of independent text decorations. Flags compose
// with bitwise OR; no flag implies another.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrStrikethrough

	AttrNone Attr = 0
)

// Has reports whether all flags in mask are set.
func (a Attr) Has(mask Attr) bool {
	return a&mask == mask
}

// With returns the attrs with mask added.
func (a Attr) With(mask Attr) Attr {
	return a | mask
}

// Without returns the attrs with mask removed.
func (a Attr) Without(mask Attr) Attr {
	return a &^ mask
}
