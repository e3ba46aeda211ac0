package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"ski-rental-backend/internal/model"
)

type skiRequest struct {
	Code       string `json:"code"`
	Brand      string `json:"brand" binding:"required"`
	Model      string `json:"model" binding:"required"`
	LengthCM   int    `json:"lengthCm"`
	Year       int    `json:"year"`
	Quantity   int    `json:"quantity"`
	LevelLabel string `json:"levelLabel"`
	Gender     string `json:"gender" binding:"omitempty,oneof=M K U m k u"`
	WeightMin  int    `json:"weightMin"`
	WeightMax  int    `json:"weightMax"`
	HeightMin  int    `json:"heightMin"`
	HeightMax  int    `json:"heightMax"`
	Discipline string `json:"discipline"`
	Perks      string `json:"perks"`
}

// validate enforces the fit-range invariants. A fully absent range is allowed
// (the unit is stored but unmatchable), an inverted or degenerate one is not.
func (r skiRequest) validate() error {
	if (r.WeightMin != 0 || r.WeightMax != 0) && r.WeightMin >= r.WeightMax {
		return errors.New("weightMin must be less than weightMax")
	}
	if (r.HeightMin != 0 || r.HeightMax != 0) && r.HeightMin >= r.HeightMax {
		return errors.New("heightMin must be less than heightMax")
	}
	return nil
}

func (r skiRequest) toModel() model.Ski {
	return model.Ski{
		Code:       r.Code,
		Brand:      r.Brand,
		Model:      r.Model,
		LengthCM:   r.LengthCM,
		Year:       r.Year,
		Quantity:   r.Quantity,
		LevelLabel: r.LevelLabel,
		Gender:     r.Gender,
		WeightMin:  r.WeightMin,
		WeightMax:  r.WeightMax,
		HeightMin:  r.HeightMin,
		HeightMax:  r.HeightMax,
		Discipline: r.Discipline,
		Perks:      r.Perks,
	}
}

// GetSkis handles the GET /api/skis request.
func (h *Handler) GetSkis(c *gin.Context) {
	skis, err := h.store.Skis(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve skis"})
		return
	}
	c.JSON(http.StatusOK, skis)
}

// PostSki handles the POST /api/skis request.
func (h *Handler) PostSki(c *gin.Context) {
	var req skiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ski := req.toModel()
	if err := h.store.CreateSki(c.Request.Context(), &ski); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create ski"})
		return
	}
	h.avail.Invalidate()
	c.JSON(http.StatusCreated, ski)
}

// PutSki handles the PUT /api/skis/:id request.
func (h *Handler) PutSki(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ski id"})
		return
	}

	var req skiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ski := req.toModel()
	ski.ID = id
	if err := h.store.UpdateSki(c.Request.Context(), &ski); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ski not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update ski"})
		return
	}
	h.avail.Invalidate()
	c.JSON(http.StatusOK, ski)
}

// DeleteSki handles the DELETE /api/skis/:id request.
func (h *Handler) DeleteSki(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ski id"})
		return
	}

	if err := h.store.DeleteSki(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ski not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete ski"})
		return
	}
	h.avail.Invalidate()
	c.Status(http.StatusNoContent)
}
