package match

import (
	"log"
	"sort"
	"strings"
	"time"

	"ski-rental-backend/config"
	"ski-rental-backend/internal/model"
	"ski-rental-backend/internal/parse"
)

// Engine runs the matching pipeline over an in-memory inventory snapshot. It
// holds no per-search state and is safe for concurrent use.
type Engine struct {
	cfg config.MatchingConfig
}

// NewEngine creates a matching engine with the given tolerance configuration.
func NewEngine(cfg config.MatchingConfig) *Engine {
	return &Engine{cfg: cfg}
}

// Criteria is one search request, already validated by the caller.
type Criteria struct {
	Height int    `json:"height"`
	Weight int    `json:"weight"`
	Level  int    `json:"level"`
	Gender string `json:"gender"` // M, K or W for everyone

	// Disciplines is accepted as a list but only the first entry is honored
	// when filtering. This mirrors the historical single-select behavior and
	// must not be widened without product sign-off.
	Disciplines []string `json:"disciplines,omitempty"`

	DateFrom *time.Time `json:"dateFrom,omitempty"`
	DateTo   *time.Time `json:"dateTo,omitempty"`
}

// Match is one accepted (ski, customer) pair, never mutated after scoring.
type Match struct {
	Ski        model.Ski `json:"ski"`
	Category   Category  `json:"category"`
	Score      int       `json:"score"`     // band-mapped final score
	BaseScore  int       `json:"baseScore"` // raw weighted score before mapping
	Statuses   Statuses  `json:"statuses"`
	GreenCount int       `json:"greenCount"`

	// AverageCompatibility is the independent sort key, not shown as a score.
	AverageCompatibility int `json:"averageCompatibility"`

	// ParsedLevel carries the canonical level label for display.
	ParsedLevel parse.ParsedLevel `json:"parsedLevel"`
}

// Results buckets the scored matches. All carries every accepted match that
// survived the discipline filter, including unclassified ones; with no
// discipline requested it is the full stage-1 set. Excluded and Unclassified
// are diagnostic counters only.
type Results struct {
	Ideal        []Match `json:"ideal"`
	Alternative  []Match `json:"alternative"`
	LevelTooLow  []Match `json:"levelTooLow"`
	WrongGender  []Match `json:"wrongGender"`
	ForcedFit    []Match `json:"forcedFit"`
	All          []Match `json:"all"`
	Excluded     int     `json:"excluded"`
	Unclassified int     `json:"unclassified"`
}

// Search runs the two-stage pipeline: stage 1 matches, classifies and scores
// every unit while ignoring any discipline preference; stage 2 optionally
// narrows the buckets to the first requested discipline. Buckets are sorted
// descending by average compatibility.
func (e *Engine) Search(skis []model.Ski, c Criteria) Results {
	var res Results

	// Stage 1: full pipeline without the discipline filter.
	var matches []Match
	for _, ski := range skis {
		m, ok := e.evaluate(ski, c)
		if !ok {
			res.Excluded++
			continue
		}
		m.Category = e.classify(m.Statuses)
		m.Score = mapToBand(m.BaseScore, m.Category)
		matches = append(matches, m)
	}

	// Stage 2: single-select discipline filter over the stage-1 set.
	filtered := matches
	if len(c.Disciplines) > 0 {
		selected := strings.TrimSpace(c.Disciplines[0])
		filtered = nil
		for _, m := range matches {
			if strings.EqualFold(m.Ski.Discipline, selected) {
				filtered = append(filtered, m)
			}
		}
	}

	for _, m := range filtered {
		switch m.Category {
		case CategoryIdeal:
			res.Ideal = append(res.Ideal, m)
		case CategoryAlternative:
			res.Alternative = append(res.Alternative, m)
		case CategoryLevelTooLow:
			res.LevelTooLow = append(res.LevelTooLow, m)
		case CategoryWrongGender:
			res.WrongGender = append(res.WrongGender, m)
		case CategoryForcedFit:
			res.ForcedFit = append(res.ForcedFit, m)
		default:
			res.Unclassified++
		}
	}
	res.All = filtered

	for _, bucket := range [][]Match{
		res.Ideal, res.Alternative, res.LevelTooLow, res.WrongGender, res.ForcedFit, res.All,
	} {
		sortByCompatibility(bucket)
	}
	return res
}

// evaluate runs the five criterion checks for one unit. It returns false when
// the unit cannot take part in this search at all: missing fit attributes, an
// unparseable level label, or a level gap beyond the maximum tolerance.
func (e *Engine) evaluate(ski model.Ski, c Criteria) (Match, bool) {
	if !ski.HasFitAttributes() {
		return Match{}, false
	}

	lvl, err := parse.Level(ski.LevelLabel, c.Gender)
	if err != nil {
		log.Printf("excluding ski %d (%s %s): %v", ski.ID, ski.Brand, ski.Model, err)
		return Match{}, false
	}

	levelStatus, ok := e.evalLevel(c.Level, lvl.Level)
	if !ok {
		return Match{}, false
	}

	st := Statuses{
		Level:  levelStatus,
		Gender: e.evalGender(c.Gender, ski.Gender),
		Weight: e.evalRange(c.Weight, ski.WeightMin, ski.WeightMax),
		Height: e.evalRange(c.Height, ski.HeightMin, ski.HeightMax),
		// Stage 1 deliberately ignores any discipline preference.
		Discipline: e.evalDiscipline(nil, ski.Discipline),
	}

	m := Match{
		Ski:         ski,
		Statuses:    st,
		GreenCount:  st.GreenCount(),
		BaseScore:   e.baseScore(st, ski, c),
		ParsedLevel: lvl,
	}
	m.AverageCompatibility = e.averageCompatibility(st, ski, c)
	return m, true
}

func sortByCompatibility(matches []Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].AverageCompatibility > matches[j].AverageCompatibility
	})
}
