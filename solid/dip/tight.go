package dip

import (
	"fmt"
	"io"
)

// BackEnd reads data from one concrete place.
type BackEnd struct{}

func (BackEnd) GetDataFromDatabase() string { return "Data from the database" }

// TightFrontEnd depends on the concrete BackEnd.
type TightFrontEnd struct {
	backEnd *BackEnd
}

func NewTightFrontEnd(backEnd *BackEnd) *TightFrontEnd {
	return &TightFrontEnd{backEnd: backEnd}
}

// DisplayData writes the back end's data to w.
func (f *TightFrontEnd) DisplayData(w io.Writer) error {
	_, err := fmt.Fprintln(w, "Display data:", f.backEnd.GetDataFromDatabase())
	return err
}
