package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ski-rental-backend/internal/availability"
	"ski-rental-backend/internal/match"
)

type searchRequest struct {
	Height      int      `json:"height" binding:"required,min=50,max=250"`
	Weight      int      `json:"weight" binding:"required,min=10,max=250"`
	Level       int      `json:"level" binding:"required,min=1,max=6"`
	Gender      string   `json:"gender" binding:"required,oneof=M K W m k w"`
	Disciplines []string `json:"disciplines"`
	DateFrom    string   `json:"dateFrom"`
	DateTo      string   `json:"dateTo"`
}

// scoredMatch is one match annotated with its availability verdict. The
// verdict is omitted when the search carries no date range.
type scoredMatch struct {
	match.Match
	Availability *availability.Verdict `json:"availability,omitempty"`
}

type searchResponse struct {
	Ideal        []scoredMatch `json:"ideal"`
	Alternative  []scoredMatch `json:"alternative"`
	LevelTooLow  []scoredMatch `json:"levelTooLow"`
	WrongGender  []scoredMatch `json:"wrongGender"`
	ForcedFit    []scoredMatch `json:"forcedFit"`
	All          []scoredMatch `json:"all"`
	Excluded     int           `json:"excluded"`
	Unclassified int           `json:"unclassified"`
}

// PostSearch handles the POST /api/search request.
func (h *Handler) PostSearch(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	from, err := parseDate(req.DateFrom)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	to, err := parseDate(req.DateTo)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if from != nil && to != nil && from.After(*to) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dateFrom must not be after dateTo"})
		return
	}

	skis, err := h.store.Skis(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load inventory"})
		return
	}

	snapshot, err := h.avail.ForRange(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load reservations"})
		return
	}

	results := h.engine.Search(skis, match.Criteria{
		Height:      req.Height,
		Weight:      req.Weight,
		Level:       req.Level,
		Gender:      req.Gender,
		Disciplines: req.Disciplines,
		DateFrom:    from,
		DateTo:      to,
	})

	withDates := from != nil && to != nil
	annotate := func(matches []match.Match) []scoredMatch {
		out := make([]scoredMatch, 0, len(matches))
		for _, m := range matches {
			sm := scoredMatch{Match: m}
			if withDates {
				v := snapshot.ForCode(m.Ski.Code)
				sm.Availability = &v
			}
			out = append(out, sm)
		}
		return out
	}

	c.JSON(http.StatusOK, searchResponse{
		Ideal:        annotate(results.Ideal),
		Alternative:  annotate(results.Alternative),
		LevelTooLow:  annotate(results.LevelTooLow),
		WrongGender:  annotate(results.WrongGender),
		ForcedFit:    annotate(results.ForcedFit),
		All:          annotate(results.All),
		Excluded:     results.Excluded,
		Unclassified: results.Unclassified,
	})
}
