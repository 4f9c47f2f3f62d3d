package models

// TextToken is one positioned text fragment from a statement page.
// Coordinates are page units with the origin at the bottom-left, so larger
// Y means closer to the top of the page.
type TextToken struct {
	Text  string
	X     float64
	Y     float64
	Width float64
}
