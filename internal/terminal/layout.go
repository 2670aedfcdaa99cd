package terminal

type point struct {
	x, y int
}

type line struct {
	from, to point
}

func (that line) horizontal() bool {
	return that.from.y == that.to.y
}

// The grid occupies columns 9-21 and rows 1-11, two horizontal and two
// vertical lines.
var gridLines = []line{
	{from: point{9, 4}, to: point{21, 4}},
	{from: point{9, 8}, to: point{21, 8}},
	{from: point{13, 1}, to: point{13, 11}},
	{from: point{17, 1}, to: point{17, 11}},
}

const (
	titleRow   = 0
	turnRow    = 13
	messageRow = 14
	scoreRow   = 15
	promptRow  = 16
)

var (
	squares = squarePoints()
	cursors = cursorPoints()
)

// squarePoints centres a marker in each of the nine cells.
func squarePoints() [9]point {
	top, bottom := gridLines[0], gridLines[1]
	left, right := gridLines[2], gridLines[3]

	center := point{
		x: (left.from.x + right.from.x) / 2,
		y: (top.from.y + bottom.from.y) / 2,
	}
	dx := roundDiv(top.to.x-top.from.x+1, 3)
	dy := roundDiv(left.to.y-left.from.y+1, 3)

	var points [9]point
	for i := range points {
		row, col := i/3-1, i%3-1
		points[i] = point{x: center.x + col*dx, y: center.y + row*dy}
	}

	return points
}

// cursorPoints puts the cursor marker right below each square.
func cursorPoints() [9]point {
	var points [9]point
	for i, square := range squarePoints() {
		points[i] = point{x: square.x, y: square.y + 1}
	}
	return points
}

func roundDiv(a, b int) int {
	return (2*a + b) / (2 * b)
}
