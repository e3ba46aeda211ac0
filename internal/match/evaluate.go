package match

import "strings"

// evalLevel compares the customer's level against the ski's minimum level.
// diff = customerLevel - skiMinLevel:
//
//	 0 → green
//	≥1 → yellow, ski is easier ("lower ski level")
//	-1 → yellow, ski one level too hard
//	-2 → red, ski two levels too hard
//	≤-3 → disqualified; the unit is excluded entirely
func (e *Engine) evalLevel(customerLevel, skiMinLevel int) (Status, bool) {
	diff := customerLevel - skiMinLevel
	switch {
	case diff == 0:
		return Status{Color: ColorGreen, Reason: ReasonExact}, true
	case diff >= 1:
		return Status{Color: ColorYellow, Reason: ReasonLowerSkiLevel, Magnitude: diff}, true
	case diff == -1:
		return Status{Color: ColorYellow, Reason: ReasonLevelTooHigh, Magnitude: 1}, true
	case diff >= -e.cfg.LevelMaxDifference:
		return Status{Color: ColorRed, Reason: ReasonLevelTooHigh, Magnitude: -diff}, true
	default:
		return Status{}, false
	}
}

// normalizeGender maps the legacy female tag D to K.
func normalizeGender(g string) string {
	g = strings.ToUpper(strings.TrimSpace(g))
	if g == "D" {
		return "K"
	}
	return g
}

// evalGender compares the customer's gender (M, K or W for everyone) against
// the ski's target gender (M, K or U/W for unisex).
func (e *Engine) evalGender(customerGender, skiGender string) Status {
	customer := normalizeGender(customerGender)
	ski := normalizeGender(skiGender)

	switch {
	case customer == "W":
		return Status{Color: ColorGreen, Reason: ReasonEveryone}
	case ski == "U" || ski == "W":
		return Status{Color: ColorGreen, Reason: ReasonUnisex}
	case customer == ski && (customer == "M" || customer == "K"):
		return Status{Color: ColorGreen, Reason: ReasonExact}
	case customer == "M" && ski == "K":
		return Status{Color: ColorYellow, Reason: ReasonSkiFemale}
	case customer == "K" && ski == "M":
		return Status{Color: ColorYellow, Reason: ReasonSkiMale}
	default:
		return Status{Color: ColorRed, Reason: ReasonIncompatible}
	}
}

// evalRange grades a customer value against a [min,max] range. Weight and
// height share this rule, differing only in unit: 1–5 outside is yellow,
// 6–10 is red, beyond that the pair is flatly incompatible.
func (e *Engine) evalRange(value, min, max int) Status {
	if value >= min && value <= max {
		return Status{Color: ColorGreen, Reason: ReasonExact}
	}

	reason := ReasonOverMax
	diff := value - max
	if value < min {
		reason = ReasonUnderMin
		diff = min - value
	}

	switch {
	case diff <= e.cfg.YellowTolerance:
		return Status{Color: ColorYellow, Reason: reason, Magnitude: diff}
	case diff <= e.cfg.RedTolerance:
		return Status{Color: ColorRed, Reason: reason, Magnitude: diff}
	default:
		return Status{Color: ColorRed, Reason: ReasonIncompatible}
	}
}

// evalDiscipline is green when no preference was given or the ski's discipline
// is among the requested ones, red otherwise. There is no yellow tier here.
func (e *Engine) evalDiscipline(requested []string, skiDiscipline string) Status {
	if len(requested) == 0 {
		return Status{Color: ColorGreen, Reason: ReasonAllDisciplines}
	}
	for _, d := range requested {
		if strings.EqualFold(strings.TrimSpace(d), skiDiscipline) {
			return Status{Color: ColorGreen, Reason: ReasonExact}
		}
	}
	return Status{Color: ColorRed, Reason: ReasonWrongDiscip}
}
