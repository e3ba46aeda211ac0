package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	dualSlashRe = regexp.MustCompile(`^(\d+)M/(\d+)[KD]$`)
	dualSpaceRe = regexp.MustCompile(`^(\d+)M\s+(\d+)[KD]$`)
	maleRe      = regexp.MustCompile(`^(\d+)M$`)
	femaleRe    = regexp.MustCompile(`^(\d+)[KD]$`) // D is the legacy female tag
	bareRe      = regexp.MustCompile(`^(\d+)$`)
)

// ParsedLevel holds the numeric skill level a label resolves to for one
// customer, plus the canonical form of the label.
type ParsedLevel struct {
	Level     int    `json:"level"`
	Canonical string `json:"canonical"`
}

// Level parses a ski's skill-level label for a customer of the given gender.
// Dual-gender labels ("4M/5K", "4M 5K") resolve to the male number for male
// customers and the female number otherwise. Single-gender labels ("5M", "5K",
// legacy "5D") and bare numbers ("5") resolve to their number regardless of
// customer gender; gender compatibility is judged separately.
func Level(raw string, customerGender string) (ParsedLevel, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return ParsedLevel{}, fmt.Errorf("empty level label")
	}
	isMale := strings.ToUpper(strings.TrimSpace(customerGender)) == "M"

	if m := dualSlashRe.FindStringSubmatch(s); m != nil {
		male, female := atoi(m[1]), atoi(m[2])
		p := ParsedLevel{Level: female, Canonical: fmt.Sprintf("PM%d/PK%d", male, female)}
		if isMale {
			p.Level = male
		}
		return p, nil
	}
	if m := dualSpaceRe.FindStringSubmatch(s); m != nil {
		male, female := atoi(m[1]), atoi(m[2])
		p := ParsedLevel{Level: female, Canonical: fmt.Sprintf("PM%d PK%d", male, female)}
		if isMale {
			p.Level = male
		}
		return p, nil
	}
	if m := maleRe.FindStringSubmatch(s); m != nil {
		n := atoi(m[1])
		return ParsedLevel{Level: n, Canonical: fmt.Sprintf("PM%d", n)}, nil
	}
	if m := femaleRe.FindStringSubmatch(s); m != nil {
		n := atoi(m[1])
		return ParsedLevel{Level: n, Canonical: fmt.Sprintf("PK%d", n)}, nil
	}
	if m := bareRe.FindStringSubmatch(s); m != nil {
		n := atoi(m[1])
		return ParsedLevel{Level: n, Canonical: fmt.Sprintf("P%d", n)}, nil
	}

	return ParsedLevel{}, fmt.Errorf("unrecognized level label: %q", raw)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
