package rules

/*
IsAliveNext applies Conway's Game of Life rules to determine the next state of a cell.

Any live cell with two or three live neighbors survives. Any dead cell with three
live neighbors becomes a live cell. All other cells are dead in the next generation.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func IsAliveNext(alive bool, neighbors int) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
