package lsp

// Shape is the common supertype; Rectangle and Square are siblings.
type Shape interface {
	Area() float64
}

// Rectangle has a width and a height.
type Rectangle struct {
	width  float64
	height float64
}

func NewRectangle(width, height float64) Rectangle {
	return Rectangle{width: width, height: height}
}

func (r Rectangle) Width() float64  { return r.width }
func (r Rectangle) Height() float64 { return r.height }
func (r Rectangle) Area() float64   { return r.width * r.height }

// Square has only a side. It has no width or height to get out of sync.
type Square struct {
	side float64
}

func NewSquare(side float64) Square { return Square{side: side} }

func (s Square) Side() float64 { return s.side }
func (s Square) Area() float64 { return s.side * s.side }
