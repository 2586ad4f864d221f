package ocp

import "math"

// Shape is the interface every shape satisfies. Adding a shape never edits it.
type Shape interface {
	Type() string
	Area() float64
}

// Circle is a Shape with a radius.
type Circle struct{ Radius float64 }

func NewCircle(radius float64) Circle { return Circle{Radius: radius} }

func (Circle) Type() string    { return "circle" }
func (c Circle) Area() float64 { return math.Pi * (c.Radius * c.Radius) }

// Rectangle is a Shape with a width and height.
type Rectangle struct{ Width, Height float64 }

func NewRectangle(width, height float64) Rectangle { return Rectangle{Width: width, Height: height} }

func (Rectangle) Type() string    { return "rectangle" }
func (r Rectangle) Area() float64 { return r.Width * r.Height }

// Square is a Shape with one side.
type Square struct{ Side float64 }

func NewSquare(side float64) Square { return Square{Side: side} }

func (Square) Type() string    { return "square" }
func (s Square) Area() float64 { return s.Side * s.Side }

// TotalArea sums the areas of shapes of any kind.
func TotalArea(shapes ...Shape) float64 {
	var total float64
	for _, s := range shapes {
		total += s.Area()
	}
	return total
}
