package geom_test

import (
	"fmt"

	"github.com/plus3/dodge/geom"
)

// ExampleWrap shows the hard reset applied once an entity leaves the screen.
// A 500x900 screen with an 80x80 entity wraps once the centre passes 290 on x.
func ExampleWrap() {
	bounds := geom.V(500, 900)
	half := geom.V(80, 80).Half()

	fmt.Println(geom.Wrap(geom.V(289, 0), half, bounds))
	fmt.Println(geom.Wrap(geom.V(291, 0), half, bounds))
	fmt.Println(geom.Wrap(geom.V(0, -600), half, bounds))

	// Output:
	// {289 0}
	// {-250 0}
	// {0 450}
}
