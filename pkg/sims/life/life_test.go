package life

import (
	"testing"

	"mad-gol/pkg/core"
	"mad-gol/pkg/grid"
)

func TestBlinkerOscillation(t *testing.T) {
	state := grid.NewDense(core.R(0, 0, 5, 5))
	set := func(x, y int) { state.Set(core.Pt(x, y), grid.Active) }
	set(2, 1)
	set(2, 2)
	set(2, 3)

	life := NewSimple(GameOfLife, true)
	life.Step(&state)

	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			alive := state.At(x, y).Alive()
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}

	life.Step(&state)

	expects = map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			alive := state.At(x, y).Alive()
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}
}
