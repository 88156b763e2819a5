package flock

// Params holds the tuning constants of the force model.
type Params struct {
	Count int

	SeparationRadius float64
	SeparationWeight float64
	NeighborRadius   float64
	AlignWeight      float64
	CohesionWeight   float64

	PointerRadius float64
	PointerForce  float64

	MaxSpeed   float64
	EdgeMargin float64
	EdgeNudge  float64

	BreathStep      float64
	BreathAmplitude float64
	AlphaBase       float64
	AlphaSwing      float64
	AlphaScale      float64
}

// DefaultParams returns the look the background has always had.
func DefaultParams() Params {
	return Params{
		Count: 150,

		SeparationRadius: 30,
		SeparationWeight: 0.05,
		NeighborRadius:   80,
		AlignWeight:      0.05,
		CohesionWeight:   0.01,

		PointerRadius: 150,
		PointerForce:  1.5,

		MaxSpeed:   3,
		EdgeMargin: 50,
		EdgeNudge:  0.2,

		BreathStep:      0.03,
		BreathAmplitude: 0.5,
		AlphaBase:       0.6,
		AlphaSwing:      0.2,
		AlphaScale:      0.8,
	}
}
