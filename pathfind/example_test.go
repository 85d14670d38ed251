package pathfind_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/polyanya/geom"
	"github.com/katalvlaran/polyanya/internal/meshfixtures"
	"github.com/katalvlaran/polyanya/pathfind"
)

func ExampleQuery() {
	mesh := meshfixtures.UGrid()
	result := pathfind.Query(
		context.Background(),
		mesh,
		geom.Point{X: 0.5, Y: 0.5},
		geom.Point{X: 2.5, Y: 0.5},
	)
	fmt.Printf("%.1f %d turn(s)\n", result.Length, len(result.Turns))
	// Output: 2.0 1 turn(s)
}
