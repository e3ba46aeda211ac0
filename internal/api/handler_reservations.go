package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"ski-rental-backend/internal/model"
)

type reservationRequest struct {
	Client    string  `json:"client" binding:"required"`
	Equipment string  `json:"equipment"`
	Code      string  `json:"code" binding:"required"`
	StartDate string  `json:"startDate" binding:"required"`
	EndDate   string  `json:"endDate" binding:"required"`
	Price     float64 `json:"price"`
	Paid      float64 `json:"paid"`
	Notes     string  `json:"notes"`
}

func (r reservationRequest) toModel() (model.Reservation, error) {
	start, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return model.Reservation{}, errors.New("invalid startDate, want yyyy-mm-dd")
	}
	end, err := time.Parse(dateLayout, r.EndDate)
	if err != nil {
		return model.Reservation{}, errors.New("invalid endDate, want yyyy-mm-dd")
	}
	if start.After(end) {
		return model.Reservation{}, errors.New("startDate must not be after endDate")
	}

	return model.Reservation{
		Client:    r.Client,
		Equipment: r.Equipment,
		Code:      r.Code,
		StartDate: start,
		EndDate:   end,
		Price:     r.Price,
		Paid:      r.Paid,
		Notes:     r.Notes,
	}, nil
}

// GetReservations handles the GET /api/reservations request. With both from
// and to query params only reservations touching that period are returned.
func (h *Handler) GetReservations(c *gin.Context) {
	from, err := parseDate(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	to, err := parseDate(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var reservations []model.Reservation
	if from != nil && to != nil {
		reservations, err = h.store.ReservationsInPeriod(c.Request.Context(), *from, *to)
	} else {
		reservations, err = h.store.Reservations(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve reservations"})
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// PostReservation handles the POST /api/reservations request.
func (h *Handler) PostReservation(c *gin.Context) {
	var req reservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	r, err := req.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.CreateReservation(c.Request.Context(), &r); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create reservation"})
		return
	}
	h.avail.Invalidate()
	c.JSON(http.StatusCreated, r)
}

// PutReservation handles the PUT /api/reservations/:id request.
func (h *Handler) PutReservation(c *gin.Context) {
	var req reservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	r, err := req.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	r.ID = c.Param("id")

	if err := h.store.UpdateReservation(c.Request.Context(), &r); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update reservation"})
		return
	}
	h.avail.Invalidate()
	c.JSON(http.StatusOK, r)
}

// DeleteReservation handles the DELETE /api/reservations/:id request.
func (h *Handler) DeleteReservation(c *gin.Context) {
	if err := h.store.DeleteReservation(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete reservation"})
		return
	}
	h.avail.Invalidate()
	c.Status(http.StatusNoContent)
}
