package lsp

import "strconv"

// Resizable is what rectangle callers program against: width and height can be
// set independently.
type Resizable interface {
	SetWidth(w float64)
	SetHeight(h float64)
	Area() float64
}

// MutableRectangle has independent width and height.
type MutableRectangle struct {
	Width  float64
	Height float64
}

func NewMutableRectangle(width, height float64) *MutableRectangle {
	return &MutableRectangle{Width: width, Height: height}
}

func (r *MutableRectangle) SetWidth(w float64)  { r.Width = w }
func (r *MutableRectangle) SetHeight(h float64) { r.Height = h }
func (r *MutableRectangle) Area() float64       { return r.Width * r.Height }

// LinkedSquare is a MutableRectangle whose setters keep both sides equal.
type LinkedSquare struct {
	*MutableRectangle
}

func NewLinkedSquare(side float64) *LinkedSquare {
	return &LinkedSquare{NewMutableRectangle(side, side)}
}

// SetWidth sets both sides.
func (s *LinkedSquare) SetWidth(w float64) {
	s.Width = w
	s.Height = w
}

// SetHeight sets both sides.
func (s *LinkedSquare) SetHeight(h float64) {
	s.Width = h
	s.Height = h
}

// SubstitutionError records an area that differs from what a rectangle promises.
type SubstitutionError struct {
	Want float64
	Got  float64
}

// Error implements the error interface.
func (e SubstitutionError) Error() string {
	// Example: lsp: expected area 20, got 16
	return "lsp: expected area " + strconv.FormatFloat(e.Want, 'g', -1, 64) +
		", got " + strconv.FormatFloat(e.Got, 'g', -1, 64)
}

// CheckSubstitution resizes r the way any rectangle caller would and verifies
// the area it then reports. r is modified.
func CheckSubstitution(r Resizable) error {
	const w, h = 5.0, 4.0
	r.SetWidth(w)
	r.SetHeight(h)
	if got := r.Area(); got != w*h {
		return SubstitutionError{Want: w * h, Got: got}
	}
	return nil
}
