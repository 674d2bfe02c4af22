package scoring

import "math"

// Quadrant labels.
const (
	QuadrantSpiritualPositive = "Spiritually Uplifting"
	QuadrantMaterialPositive  = "Worldly Positive"
	QuadrantSpiritualNegative = "Spiritual Challenge"
	QuadrantContemplative     = "Contemplative"
)

// NeutralBand is the half-width around zero in which an axis counts as undecided.
const NeutralBand = 0.05

// Quadrant is the display position of a result on the spiritual/material (X) and
// positive/negative (Y) axes. Both axes range over [-1,1].
type Quadrant struct {
	X         float64 `json:"x" yaml:"x"`
	Y         float64 `json:"y" yaml:"y"`
	Spiritual float64 `json:"spiritual" yaml:"spiritual"`
	Material  float64 `json:"material" yaml:"material"`
	Positive  float64 `json:"positive" yaml:"positive"`
	Negative  float64 `json:"negative" yaml:"negative"`
	Label     string  `json:"label" yaml:"label"`
}

// DeriveQuadrant positions a result from its axis scores.
func DeriveQuadrant(spiritual, material, sentiment float64) Quadrant {
	x := spiritual - material
	y := 2*sentiment - 1
	return Quadrant{
		X:         x,
		Y:         y,
		Spiritual: spiritual,
		Material:  material,
		Positive:  sentiment,
		Negative:  1 - sentiment,
		Label:     QuadrantLabel(x, y),
	}
}

// QuadrantLabel picks the label for axis values x and y.
func QuadrantLabel(x, y float64) string {
	if math.Abs(x) <= NeutralBand || math.Abs(y) <= NeutralBand {
		return QuadrantContemplative
	}
	switch {
	case x > 0 && y > 0:
		return QuadrantSpiritualPositive
	case x < 0 && y > 0:
		return QuadrantMaterialPositive
	case x > 0 && y < 0:
		return QuadrantSpiritualNegative
	default:
		return QuadrantContemplative
	}
}
