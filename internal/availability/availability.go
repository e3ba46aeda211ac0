package availability

import (
	"fmt"
	"time"

	"ski-rental-backend/internal/model"
)

// Status is the traffic-light availability verdict for one equipment code.
type Status string

const (
	StatusAvailable Status = "available" // green, no conflict
	StatusWarning   Status = "warning"   // yellow, a reservation ends or starts within the buffer
	StatusReserved  Status = "reserved"  // red, overlapping reservation
)

// Verdict is the outcome for one code over one requested period. Reservations
// carries the entries that triggered the verdict, empty when available.
type Verdict struct {
	Status       Status              `json:"status"`
	Message      string              `json:"message"`
	Reservations []model.Reservation `json:"reservations,omitempty"`
}

// Calculator grades date conflicts. WarningBufferDays is the service window:
// a reservation ending or starting that many calendar days or fewer from the
// requested period downgrades green to yellow.
type Calculator struct {
	WarningBufferDays int
}

// ForCode grades the requested period against every reservation held under
// the code. Red beats yellow beats green across the reservations. A request
// without both dates is always green.
func (c Calculator) ForCode(code string, reservations []model.Reservation, from, to *time.Time) Verdict {
	if from == nil || to == nil {
		return Verdict{Status: StatusAvailable, Message: "no period requested"}
	}

	reqFrom := stripTime(*from)
	reqTo := stripTime(*to)

	var overlapping, nearby []model.Reservation
	for _, r := range reservations {
		if code != "" && r.Code != code {
			continue
		}
		resFrom := stripTime(r.StartDate)
		resTo := stripTime(r.EndDate)

		// inclusive overlap on calendar days
		if !resFrom.After(reqTo) && !resTo.Before(reqFrom) {
			overlapping = append(overlapping, r)
			continue
		}

		if gap := daysBetween(reqFrom, resTo); gap >= 1 && gap <= c.WarningBufferDays {
			nearby = append(nearby, r)
			continue
		}
		if gap := daysBetween(resFrom, reqTo); gap >= 1 && gap <= c.WarningBufferDays {
			nearby = append(nearby, r)
		}
	}

	switch {
	case len(overlapping) > 0:
		return Verdict{
			Status:       StatusReserved,
			Message:      "reserved in the requested period",
			Reservations: overlapping,
		}
	case len(nearby) > 0:
		return Verdict{
			Status:       StatusWarning,
			Message:      fmt.Sprintf("reservation within %d days of the requested period", c.WarningBufferDays),
			Reservations: nearby,
		}
	default:
		return Verdict{Status: StatusAvailable, Message: "available"}
	}
}

// stripTime truncates to local midnight so gaps count calendar days, not
// 24-hour spans.
func stripTime(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween returns a-b in whole days. Both arguments must already be
// stripped to midnight.
func daysBetween(a, b time.Time) int {
	return int(a.Sub(b).Hours() / 24)
}
