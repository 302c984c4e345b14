package motion

// Facing selects which sprite sheet (or mirrored draw) is used.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// X returns the facing as a horizontal unit direction.
func (f Facing) X() float64 {
	if f == FacingLeft {
		return -1
	}
	return 1
}
