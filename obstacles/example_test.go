package obstacles_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridsearch/obstacles"
)

func ExampleFirstBlocking() {
	coords, _ := obstacles.ParseCoordinates(strings.NewReader("1,0\n1,1\n0,2\n1,2\n"))

	d, ok, _ := obstacles.MinSteps(3, coords, 2)
	fmt.Println(d, ok)

	i, p, ok, _ := obstacles.FirstBlocking(3, coords)
	fmt.Printf("#%d x=%d y=%d %v\n", i, p.Col, p.Row, ok)
	// Output:
	// 4 true
	// #2 x=0 y=2 true
}
