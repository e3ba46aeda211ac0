package match

// classify assigns a category from the five criterion statuses. The rules are
// mutually exclusive and checked in priority order; the first hit wins. A
// match passing none of them is CategoryUnclassified and lands in no bucket.
func (e *Engine) classify(st Statuses) Category {
	if e.isIdeal(st) {
		return CategoryIdeal
	}
	if e.isAlternative(st) {
		return CategoryAlternative
	}
	if e.isLevelTooLow(st) {
		return CategoryLevelTooLow
	}
	if e.isWrongGender(st) {
		return CategoryWrongGender
	}
	if e.isForcedFit(st) {
		return CategoryForcedFit
	}
	return CategoryUnclassified
}

func (e *Engine) isIdeal(st Statuses) bool {
	return st.GreenCount() == 5
}

// isAlternative requires level and gender green and exactly one other
// criterion off-green. A discipline mismatch of any color qualifies; weight or
// height qualify only when yellow and inside the yellow tolerance band.
func (e *Engine) isAlternative(st Statuses) bool {
	if !st.Level.Green() || !st.Gender.Green() {
		return false
	}

	var offender *Status
	offenderIsDiscipline := false
	for _, c := range []struct {
		s          Status
		discipline bool
	}{
		{st.Weight, false},
		{st.Height, false},
		{st.Discipline, true},
	} {
		if c.s.Green() {
			continue
		}
		if offender != nil {
			return false // more than one criterion off-green
		}
		s := c.s
		offender = &s
		offenderIsDiscipline = c.discipline
	}
	if offender == nil {
		return false // all green, that is Ideal territory
	}

	if offenderIsDiscipline {
		return true
	}
	return offender.Yellow() && offender.Magnitude <= e.cfg.YellowTolerance
}

// isLevelTooLow accepts skis one or more levels easier than the customer as
// long as everything except level and discipline is green.
func (e *Engine) isLevelTooLow(st Statuses) bool {
	if st.Level.Reason != ReasonLowerSkiLevel {
		return false
	}
	return st.Gender.Green() && st.Weight.Green() && st.Height.Green()
}

// isWrongGender accepts cross-gender skis when everything except gender and
// discipline is green.
func (e *Engine) isWrongGender(st Statuses) bool {
	if !st.Gender.Yellow() {
		return false
	}
	return st.Level.Green() && st.Weight.Green() && st.Height.Green()
}

// isForcedFit applies three exclusionary rules, first hit decides:
//
//	a. ski level too low and weight or height yellow
//	b. level green and both weight and height yellow
//	c. weight or height red, regardless of the rest
func (e *Engine) isForcedFit(st Statuses) bool {
	levelLow := st.Level.Reason == ReasonLowerSkiLevel
	if levelLow && (st.Weight.Yellow() || st.Height.Yellow()) {
		return true
	}
	if st.Level.Green() && st.Weight.Yellow() && st.Height.Yellow() {
		return true
	}
	if st.Weight.Red() || st.Height.Red() {
		return true
	}
	return false
}
