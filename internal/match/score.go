package match

import (
	"math"
	"strings"

	"ski-rental-backend/internal/model"
)

// Score bands reserved per category. Final scores never leave their band.
const (
	idealFloor = 90
	scoreCeil  = 100
)

// baseScore computes the raw 0–100 weighted score before band mapping.
func (e *Engine) baseScore(st Statuses, ski model.Ski, c Criteria) int {
	total := e.levelSubScore(st.Level)*e.cfg.WeightLevel +
		e.rangeSubScore(st.Weight, c.Weight, ski.WeightMin, ski.WeightMax)*e.cfg.WeightWeight +
		e.rangeSubScore(st.Height, c.Height, ski.HeightMin, ski.HeightMax)*e.cfg.WeightHeight +
		e.genderSubScore(st.Gender)*e.cfg.WeightGender +
		e.disciplineSubScore(st.Discipline)*e.cfg.WeightDiscipline
	return int(math.Round(total))
}

func (e *Engine) levelSubScore(s Status) float64 {
	switch s.Color {
	case ColorGreen:
		return 100
	case ColorYellow:
		return 70
	default:
		return 40
	}
}

func (e *Engine) rangeSubScore(s Status, value, min, max int) float64 {
	switch s.Color {
	case ColorGreen:
		return float64(precisionPercent(value, min, max))
	case ColorYellow:
		return math.Max(60, 80-4*float64(s.Magnitude))
	default:
		if s.Magnitude == 0 {
			return 30 // flatly incompatible, distance unknown
		}
		return math.Max(20, 40-4*float64(s.Magnitude-5))
	}
}

func (e *Engine) genderSubScore(s Status) float64 {
	switch s.Color {
	case ColorGreen:
		return 100
	case ColorYellow:
		return 60
	default:
		return 20
	}
}

func (e *Engine) disciplineSubScore(s Status) float64 {
	switch s.Color {
	case ColorGreen:
		return 100
	case ColorYellow:
		return 50
	default:
		return 30
	}
}

// precisionPercent rewards values near the center of a [min,max] range:
// 100 at the center, decaying to 90 at the edges. Very narrow ranges (width
// ≤2) are always a perfect fit.
func precisionPercent(value, min, max int) int {
	width := float64(max - min)
	if width <= 2 {
		return 100
	}
	center := float64(min+max) / 2
	distancePercent := math.Abs(float64(value)-center) / (width / 2) * 100
	score := 100 - distancePercent*0.1
	return int(math.Round(math.Min(100, math.Max(90, score))))
}

// mapToBand rescales a 0–100 base score into the band reserved for the
// category. Ideal matches keep their base score (already ≥90 by construction
// of the sub-scores), only clamped into [90,100].
func mapToBand(base int, cat Category) int {
	switch cat {
	case CategoryIdeal:
		if base < idealFloor {
			return idealFloor
		}
		if base > scoreCeil {
			return scoreCeil
		}
		return base
	case CategoryAlternative, CategoryWrongGender:
		return int(math.Round(70 + float64(base)*0.19))
	case CategoryLevelTooLow:
		return int(math.Round(50 + float64(base)*0.19))
	case CategoryForcedFit:
		return int(math.Round(30 + float64(base)*0.19))
	default:
		return base
	}
}

// averageCompatibility is the parallel weighted average used purely for
// ordering inside a bucket. It is independent of the band-mapped score: green
// range criteria use a gaussian closeness-to-center curve, yellow ones a
// linear distance penalty.
func (e *Engine) averageCompatibility(st Statuses, ski model.Ski, c Criteria) int {
	total := e.sortLevelScore(st.Level)*e.cfg.WeightLevel +
		e.sortRangeScore(st.Weight, c.Weight, ski.WeightMin, ski.WeightMax)*e.cfg.WeightWeight +
		e.sortRangeScore(st.Height, c.Height, ski.HeightMin, ski.HeightMax)*e.cfg.WeightHeight +
		e.sortGenderScore(st.Gender, c.Gender, ski)*e.cfg.WeightGender +
		e.sortDisciplineScore(st.Discipline, c.Disciplines, ski.Discipline)*e.cfg.WeightDiscipline
	return int(math.Round(total))
}

// Every red criterion contributes a flat 25 to the sort key, level included.
func (e *Engine) sortLevelScore(s Status) float64 {
	switch s.Color {
	case ColorGreen:
		return 100
	case ColorYellow:
		return 70
	default:
		return 25
	}
}

func (e *Engine) sortRangeScore(s Status, value, min, max int) float64 {
	switch s.Color {
	case ColorGreen:
		return gaussianRangeScore(value, min, max)
	case ColorYellow:
		return toleranceScore(s.Magnitude, e.cfg.YellowTolerance)
	default:
		return 25
	}
}

// sortGenderScore gives a green full marks only for dual-level or unisex
// labels, or an exact gender match. A green by way of an "everyone" search on
// a gendered ski still sorts at 60.
func (e *Engine) sortGenderScore(s Status, customerGender string, ski model.Ski) float64 {
	switch s.Color {
	case ColorGreen:
		label := strings.ToUpper(ski.LevelLabel)
		if strings.Contains(label, "/") || strings.Contains(label, "U") {
			return 100
		}
		if strings.EqualFold(customerGender, ski.Gender) {
			return 100
		}
		return 60
	case ColorYellow:
		return 60
	default:
		return 25
	}
}

// sortDisciplineScore re-checks the requested disciplines even though the
// match status ignores them: a unit outside every requested discipline sorts
// at zero.
func (e *Engine) sortDisciplineScore(s Status, requested []string, skiDiscipline string) float64 {
	switch s.Color {
	case ColorGreen:
		if len(requested) == 0 {
			return 100
		}
		for _, d := range requested {
			if strings.EqualFold(strings.TrimSpace(d), skiDiscipline) {
				return 100
			}
		}
		return 0
	case ColorYellow:
		return 50
	default:
		return 25
	}
}

// gaussianRangeScore maps closeness to the range center onto 0–100 with a
// bell curve whose sigma is a sixth of the range width.
func gaussianRangeScore(value, min, max int) float64 {
	width := float64(max - min)
	if width <= 0 {
		return 100
	}
	sigma := width / 6
	distance := math.Abs(float64(value) - float64(min+max)/2)
	return math.Round(math.Exp(-0.5*math.Pow(distance/sigma, 2)) * 100)
}

// toleranceScore penalizes distance outside the range linearly, floored at 25.
func toleranceScore(magnitude, tolerance int) float64 {
	score := 100 - float64(magnitude)/float64(tolerance)*50
	return math.Round(math.Max(25, score))
}
