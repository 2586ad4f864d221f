package factory_test

import (
	"fmt"

	"github.com/sghaida/solid/creational/factory"
)

// Concrete localizers built by hand: every caller knows every type.
func Example_direct() {
	f := factory.NewFrenchLocalizer()
	e := factory.NewEnglishLocalizer()
	s := factory.NewSpanishLocalizer()

	for _, msg := range factory.DemoWords {
		fmt.Println(f.Localize(msg))
		fmt.Println(e.Localize(msg))
		fmt.Println(s.Localize(msg))
	}
	// Output:
	// voiture
	// car
	// coche
	// bicyclette
	// bike
	// bicicleta
	// cyclette
	// cycle
	// ciclo
}

func ExampleFactory() {
	f, _ := factory.Factory("French")
	e, _ := factory.Factory("English")
	s, _ := factory.Factory("Spanish")

	for _, msg := range factory.DemoWords {
		fmt.Println(f.Localize(msg))
		fmt.Println(e.Localize(msg))
		fmt.Println(s.Localize(msg))
	}
	// Output:
	// voiture
	// car
	// coche
	// bicyclette
	// bike
	// bicicleta
	// cyclette
	// cycle
	// ciclo
}
