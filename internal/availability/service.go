package availability

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"ski-rental-backend/internal/model"
)

// reservationSource is the slice of the store the service depends on.
type reservationSource interface {
	ReservationsForCode(ctx context.Context, code string) ([]model.Reservation, error)
	ReservationsInPeriod(ctx context.Context, from, to time.Time) ([]model.Reservation, error)
}

// Service answers availability questions against the reservation store. The
// period fetch is cached with a short TTL so one search scores a whole
// inventory from a single query. Every reservation write must call Invalidate.
type Service struct {
	src   reservationSource
	calc  Calculator
	cache *gocache.Cache
}

// NewService creates an availability service with the given verdict calculator
// and reservation cache TTL.
func NewService(src reservationSource, calc Calculator, ttl time.Duration) *Service {
	return &Service{
		src:   src,
		calc:  calc,
		cache: gocache.New(ttl, 2*ttl),
	}
}

// Snapshot holds the reservations of one period grouped by equipment code,
// ready to grade any number of units without further queries.
type Snapshot struct {
	calc   Calculator
	from   *time.Time
	to     *time.Time
	byCode map[string][]model.Reservation
}

// ForCode grades one code against the snapshot's period.
func (s *Snapshot) ForCode(code string) Verdict {
	return s.calc.ForCode(code, s.byCode[code], s.from, s.to)
}

// ForRange fetches (or reuses) the reservations touching the period, widened
// by the warning buffer so reservations just outside it still trigger yellow
// verdicts. A nil date on either side yields an all-green snapshot.
func (s *Service) ForRange(ctx context.Context, from, to *time.Time) (*Snapshot, error) {
	if from == nil || to == nil {
		return &Snapshot{calc: s.calc, from: from, to: to}, nil
	}

	key := fmt.Sprintf("period:%s:%s",
		from.Format("2006-01-02"), to.Format("2006-01-02"))

	if cached, ok := s.cache.Get(key); ok {
		return &Snapshot{
			calc: s.calc, from: from, to: to,
			byCode: cached.(map[string][]model.Reservation),
		}, nil
	}

	buffer := time.Duration(s.calc.WarningBufferDays) * 24 * time.Hour
	reservations, err := s.src.ReservationsInPeriod(ctx, from.Add(-buffer), to.Add(buffer))
	if err != nil {
		return nil, fmt.Errorf("fetching reservations: %w", err)
	}

	byCode := make(map[string][]model.Reservation, len(reservations))
	for _, r := range reservations {
		byCode[r.Code] = append(byCode[r.Code], r)
	}
	s.cache.Set(key, byCode, gocache.DefaultExpiration)

	return &Snapshot{calc: s.calc, from: from, to: to, byCode: byCode}, nil
}

// CheckCode grades a single code, bypassing the period cache. Used by the
// one-off availability endpoint.
func (s *Service) CheckCode(ctx context.Context, code string, from, to *time.Time) (Verdict, error) {
	reservations, err := s.src.ReservationsForCode(ctx, code)
	if err != nil {
		return Verdict{}, fmt.Errorf("fetching reservations for %s: %w", code, err)
	}
	return s.calc.ForCode(code, reservations, from, to), nil
}

// Invalidate drops every cached period. Called after any reservation write.
func (s *Service) Invalidate() {
	s.cache.Flush()
}
