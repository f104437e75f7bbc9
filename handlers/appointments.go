package handlers

import (
	"net/http"

	appointmentRepo "schedly/database/repository/appointment"
	"schedly/utils"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler serves read-only views over booked appointments.
type AppointmentHandler struct {
	Store appointmentRepo.SlotStore
}

func NewAppointmentHandler(store appointmentRepo.SlotStore) *AppointmentHandler {
	return &AppointmentHandler{Store: store}
}

type dayAppointments struct {
	Date  string   `json:"date"`
	Times []string `json:"times"`
}

// ListAppointments returns all booked slots grouped by date, in
// chronological order.
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	slots, err := h.Store.ListBooked(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list appointments", err.Error())
		return
	}

	var days []dayAppointments
	for _, slot := range slots {
		date := slot.Date.String()
		if len(days) == 0 || days[len(days)-1].Date != date {
			days = append(days, dayAppointments{Date: date})
		}
		days[len(days)-1].Times = append(days[len(days)-1].Times, slot.Time.String())
	}

	c.JSON(http.StatusOK, gin.H{"total": len(slots), "days": days})
}
