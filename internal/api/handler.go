package api

import (
	"fmt"
	"time"

	"ski-rental-backend/internal/availability"
	"ski-rental-backend/internal/match"
	"ski-rental-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store  store.Store
	engine *match.Engine
	avail  *availability.Service
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, engine *match.Engine, avail *availability.Service) *Handler {
	return &Handler{
		store:  s,
		engine: engine,
		avail:  avail,
	}
}

const dateLayout = "2006-01-02"

// parseDate accepts an optional yyyy-mm-dd query or body value.
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, want yyyy-mm-dd", value)
	}
	return &t, nil
}
