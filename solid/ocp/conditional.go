package ocp

import (
	"math"
	"strconv"

	"github.com/hashicorp/go-multierror"
)

// Params are keyword-style dimensions, e.g. {"width": 10, "height": 5}.
type Params map[string]float64

// MissingParamError reports a dimension a shape needs but did not get.
type MissingParamError struct {
	Shape string
	Param string
}

// Error implements the error interface.
func (e MissingParamError) Error() string {
	// Example: ocp: shape "rectangle" missing param "height"
	return "ocp: shape " + strconv.Quote(e.Shape) + " missing param " + strconv.Quote(e.Param)
}

// UnknownShapeError is returned for a shape name nobody knows how to handle.
type UnknownShapeError struct{ Shape string }

// Error implements the error interface.
func (e UnknownShapeError) Error() string {
	return "ocp: unknown shape " + strconv.Quote(e.Shape)
}

// requireParams reports every key of keys absent from p, aggregated.
func requireParams(shape string, p Params, keys ...string) error {
	var result *multierror.Error
	for _, k := range keys {
		if _, ok := p[k]; !ok {
			result = multierror.Append(result, MissingParamError{Shape: shape, Param: k})
		}
	}
	return result.ErrorOrNil()
}

// ConditionalShape is a single shape type that branches on ShapeType.
// Every new shape needs another branch here and in Area.
type ConditionalShape struct {
	ShapeType string
	Width     float64
	Height    float64
	Radius    float64
}

// NewConditionalShape reads the dimensions shapeType needs from params.
//
// Unknown shape types are accepted and carry no dimensions; Area reports them.
func NewConditionalShape(shapeType string, params Params) (*ConditionalShape, error) {
	s := &ConditionalShape{ShapeType: shapeType}
	switch shapeType {
	case "rectangle":
		if err := requireParams(shapeType, params, "width", "height"); err != nil {
			return nil, err
		}
		s.Width = params["width"]
		s.Height = params["height"]
	case "circle":
		if err := requireParams(shapeType, params, "radius"); err != nil {
			return nil, err
		}
		s.Radius = params["radius"]
	}
	return s, nil
}

// Area computes the area for the known shape types.
func (s *ConditionalShape) Area() (float64, error) {
	switch s.ShapeType {
	case "rectangle":
		return s.Width * s.Height, nil
	case "circle":
		return math.Pi * (s.Radius * s.Radius), nil
	}
	return 0, UnknownShapeError{Shape: s.ShapeType}
}
