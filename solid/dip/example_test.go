package dip_test

import (
	"os"

	"github.com/sghaida/solid/solid/dip"
)

func ExampleTightFrontEnd() {
	_ = dip.NewTightFrontEnd(&dip.BackEnd{}).DisplayData(os.Stdout)
	// Output:
	// Display data: Data from the database
}

func ExampleFrontEnd() {
	for _, src := range []dip.DataSource{dip.Database{}, dip.API{}} {
		fe, _ := dip.NewFrontEnd(src)
		_ = fe.DisplayData(os.Stdout)
	}
	// Output:
	// Display data: Data from the database
	// Display data: Data from the API
}
