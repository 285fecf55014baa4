package world

// Direction is one of the four ways a blast ray can travel
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// steps holds the name and row/column step of each direction. Rows grow
// southwards, matching the layout tables.
var steps = [...]struct {
	name       string
	dRow, dCol int
}{
	North: {"North", -1, 0},
	East:  {"East", 0, 1},
	South: {"South", 1, 0},
	West:  {"West", 0, -1},
}

// AllDirections lists the directions in the order blast rays are walked
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

func (d Direction) String() string {
	if d < North || d > West {
		return "Unknown"
	}
	return steps[d].name
}

// Delta returns the row and column offsets of one step; unknown directions
// do not move.
func (d Direction) Delta() (rowDelta, colDelta int) {
	if d < North || d > West {
		return 0, 0
	}
	return steps[d].dRow, steps[d].dCol
}
