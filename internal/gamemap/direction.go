package gamemap

// Direction is one of the four cardinal movement directions.
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Delta returns the (dx, dy) step for d. Rows grow downwards.
func (d Direction) Delta() (int, int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// Step returns the cell one step from (x, y) in direction d.
func (d Direction) Step(x, y int) (int, int) {
	dx, dy := d.Delta()
	return x + dx, y + dy
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "none"
}
