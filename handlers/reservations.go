package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reservationRepo "citabot/database/repository/reservation"
	"citabot/utils"
)

// ReservationsHandler exposes read-only booking views for operator tooling.
type ReservationsHandler struct {
	Repo reservationRepo.ReservationRepository
}

func NewReservationsHandler(repo reservationRepo.ReservationRepository) *ReservationsHandler {
	return &ReservationsHandler{Repo: repo}
}

// List returns a snapshot of every committed appointment.
func (h *ReservationsHandler) List(c *gin.Context) {
	all, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list reservations", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":        len(all),
		"reservations": all,
	})
}

// ListByDate returns the committed appointments for one day.
func (h *ReservationsHandler) ListByDate(c *gin.Context) {
	dateKey := c.Param("date")
	appts, err := h.Repo.GetByDate(c.Request.Context(), dateKey)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list reservations", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"date":         dateKey,
		"count":        len(appts),
		"reservations": appts,
	})
}
