package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ski-rental-backend/internal/model"
)

func TestPrecisionPercent(t *testing.T) {
	tests := []struct {
		name     string
		value    int
		min, max int
		want     int
	}{
		{"center of range", 70, 60, 80, 100},
		{"at lower edge", 60, 60, 80, 90},
		{"at upper edge", 80, 60, 80, 90},
		{"halfway to edge", 75, 60, 80, 95},
		{"narrow range always perfect", 56, 55, 57, 100},
		{"degenerate range always perfect", 60, 60, 60, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, precisionPercent(tt.value, tt.min, tt.max))
		})
	}
}

func TestRangeSubScore(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		name   string
		status Status
		want   float64
	}{
		{"yellow one off", yellow(ReasonOverMax, 1), 76},
		{"yellow five off floors at sixty", yellow(ReasonOverMax, 5), 60},
		{"red six off", red(ReasonOverMax, 6), 36},
		{"red ten off floors at twenty", red(ReasonOverMax, 10), 20},
		{"red without magnitude", red(ReasonIncompatible, 0), 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// value/min/max only matter on green, pass arbitrary ones
			assert.Equal(t, tt.want, e.rangeSubScore(tt.status, 0, 0, 0))
		})
	}
}

func TestBaseScoreAllGreenCentered(t *testing.T) {
	e := newTestEngine()
	ski := model.Ski{WeightMin: 60, WeightMax: 80, HeightMin: 160, HeightMax: 180}
	c := Criteria{Weight: 70, Height: 170}

	assert.Equal(t, 100, e.baseScore(allGreen(), ski, c))
}

// Band mapping must keep every category inside its reserved score window for
// any base score a match can produce.
func TestMapToBandInvariants(t *testing.T) {
	bands := []struct {
		cat    Category
		lo, hi int
	}{
		{CategoryIdeal, 90, 100},
		{CategoryAlternative, 70, 89},
		{CategoryWrongGender, 70, 89},
		{CategoryLevelTooLow, 50, 69},
		{CategoryForcedFit, 30, 49},
	}

	for _, b := range bands {
		for base := 0; base <= 100; base++ {
			got := mapToBand(base, b.cat)
			assert.GreaterOrEqual(t, got, b.lo, "%s base %d", b.cat, base)
			assert.LessOrEqual(t, got, b.hi, "%s base %d", b.cat, base)
		}
	}
}

func TestMapToBandIdealKeepsBase(t *testing.T) {
	assert.Equal(t, 95, mapToBand(95, CategoryIdeal))
	assert.Equal(t, 90, mapToBand(42, CategoryIdeal))
	assert.Equal(t, 100, mapToBand(100, CategoryIdeal))
}

func TestGaussianRangeScore(t *testing.T) {
	assert.Equal(t, float64(100), gaussianRangeScore(70, 60, 80))
	assert.Equal(t, float64(100), gaussianRangeScore(60, 60, 60))

	// monotonically decreasing away from the center
	prev := float64(101)
	for v := 70; v <= 80; v++ {
		s := gaussianRangeScore(v, 60, 80)
		assert.LessOrEqual(t, s, prev, "value %d", v)
		prev = s
	}
	assert.Less(t, gaussianRangeScore(80, 60, 80), float64(2))
}

func TestSortLevelScoreRedIsFlat(t *testing.T) {
	e := newTestEngine()

	assert.Equal(t, float64(100), e.sortLevelScore(green()))
	assert.Equal(t, float64(70), e.sortLevelScore(yellow(ReasonLowerSkiLevel, 3)))
	assert.Equal(t, float64(25), e.sortLevelScore(red(ReasonLevelTooHigh, 2)))
}

func TestSortGenderScore(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		name     string
		status   Status
		customer string
		ski      model.Ski
		want     float64
	}{
		{"exact match", green(), "M", model.Ski{Gender: "M", LevelLabel: "4"}, 100},
		{"dual label always full", green(), "W", model.Ski{Gender: "M", LevelLabel: "4M/5K"}, 100},
		{"everyone on gendered ski", green(), "W", model.Ski{Gender: "M", LevelLabel: "4"}, 60},
		{"cross gender", yellow(ReasonSkiFemale, 0), "M", model.Ski{Gender: "K", LevelLabel: "4"}, 60},
		{"incompatible", red(ReasonIncompatible, 0), "X", model.Ski{Gender: "M", LevelLabel: "4"}, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.sortGenderScore(tt.status, tt.customer, tt.ski))
		})
	}
}

func TestSortDisciplineScore(t *testing.T) {
	e := newTestEngine()

	assert.Equal(t, float64(100), e.sortDisciplineScore(green(), nil, "SL"))
	assert.Equal(t, float64(100), e.sortDisciplineScore(green(), []string{"G", "SL"}, "SL"))
	assert.Equal(t, float64(0), e.sortDisciplineScore(green(), []string{"G"}, "SL"))
	assert.Equal(t, float64(25), e.sortDisciplineScore(red(ReasonWrongDiscip, 0), []string{"G"}, "SL"))
}

func TestToleranceScore(t *testing.T) {
	assert.Equal(t, float64(90), toleranceScore(1, 5))
	assert.Equal(t, float64(50), toleranceScore(5, 5))
	assert.Equal(t, float64(25), toleranceScore(8, 5))
}
