package match

import "fmt"

// Color is the traffic-light tier of a single criterion check.
type Color string

const (
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorRed    Color = "red"
)

// Reason says why a criterion landed on its color. The original system carried
// this information embedded in display strings; here it is a structured tag so
// the category rules never have to pattern-match text.
type Reason string

const (
	ReasonExact          Reason = "exact"           // value inside range / exact match
	ReasonEveryone       Reason = "everyone"        // customer searches for all genders
	ReasonUnisex         Reason = "unisex"          // ski fits all genders
	ReasonAllDisciplines Reason = "all_disciplines" // no discipline preference given
	ReasonLowerSkiLevel  Reason = "lower_ski_level" // ski easier than the customer by Magnitude
	ReasonLevelTooHigh   Reason = "level_too_high"  // ski harder than the customer by Magnitude
	ReasonSkiMale        Reason = "ski_male"        // female customer on a male ski
	ReasonSkiFemale      Reason = "ski_female"      // male customer on a female ski
	ReasonOverMax        Reason = "over_max"        // value above range by Magnitude
	ReasonUnderMin       Reason = "under_min"       // value below range by Magnitude
	ReasonWrongDiscip    Reason = "wrong_discipline"
	ReasonIncompatible   Reason = "incompatible" // beyond every tolerance window
)

// Status is the outcome of one criterion evaluation. Magnitude is the distance
// to the acceptable range in the criterion's own unit, zero when meaningless.
type Status struct {
	Color     Color  `json:"color"`
	Reason    Reason `json:"reason"`
	Magnitude int    `json:"magnitude,omitempty"`
}

func (s Status) Green() bool  { return s.Color == ColorGreen }
func (s Status) Yellow() bool { return s.Color == ColorYellow }
func (s Status) Red() bool    { return s.Color == ColorRed }

// String renders a human-readable qualifier, e.g. "yellow (5 over)".
func (s Status) String() string {
	switch s.Reason {
	case ReasonOverMax:
		return fmt.Sprintf("%s (%d over)", s.Color, s.Magnitude)
	case ReasonUnderMin:
		return fmt.Sprintf("%s (%d under)", s.Color, s.Magnitude)
	case ReasonLowerSkiLevel:
		return fmt.Sprintf("%s (lower ski level %d)", s.Color, s.Magnitude)
	case ReasonLevelTooHigh:
		return fmt.Sprintf("%s (level too high %d)", s.Color, s.Magnitude)
	case ReasonExact:
		return string(s.Color)
	default:
		return fmt.Sprintf("%s (%s)", s.Color, s.Reason)
	}
}

// Statuses bundles the five criterion outcomes of one (ski, customer) pair.
type Statuses struct {
	Level      Status `json:"level"`
	Gender     Status `json:"gender"`
	Weight     Status `json:"weight"`
	Height     Status `json:"height"`
	Discipline Status `json:"discipline"`
}

// GreenCount returns how many of the five criteria are green.
func (st Statuses) GreenCount() int {
	n := 0
	for _, s := range []Status{st.Level, st.Gender, st.Weight, st.Height, st.Discipline} {
		if s.Green() {
			n++
		}
	}
	return n
}

// Category is the classification outcome of an accepted match.
type Category string

const (
	CategoryIdeal        Category = "ideal"
	CategoryAlternative  Category = "alternative"
	CategoryLevelTooLow  Category = "level_too_low"
	CategoryWrongGender  Category = "wrong_gender"
	CategoryForcedFit    Category = "forced_fit"
	CategoryUnclassified Category = "unclassified"
)
