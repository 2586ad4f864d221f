package dip

import (
	"errors"
	"fmt"
	"io"

	"github.com/apex/log"
)

// ErrNilDataSource is returned when a FrontEnd is built without a DataSource.
var ErrNilDataSource = errors.New("dip: nil data source")

// DataSource is the abstraction FrontEnd depends on.
type DataSource interface {
	GetData() string
}

// Database reads from the database.
type Database struct{}

func (Database) GetData() string { return "Data from the database" }

// API reads from a REST API.
type API struct{}

func (API) GetData() string { return "Data from the API" }

// FrontEnd displays data from whatever DataSource it was given.
type FrontEnd struct {
	source DataSource
}

func NewFrontEnd(source DataSource) (*FrontEnd, error) {
	if source == nil {
		return nil, ErrNilDataSource
	}
	return &FrontEnd{source: source}, nil
}

// DisplayData writes the source's data to w.
func (f *FrontEnd) DisplayData(w io.Writer) error {
	data := f.source.GetData()
	log.WithField("source", fmt.Sprintf("%T", f.source)).Debug("dip: displaying data")
	_, err := fmt.Fprintln(w, "Display data:", data)
	return err
}
