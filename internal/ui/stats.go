package ui

// Stats is the read-only view of the field the HUD renders.
type Stats interface {
	Active() int
	Target() int
	Cols() int
	Mode() string
	SpeedScale() float64
}
