package scheduling

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/raul0r/Gestor-Medico/internal/domain/catalog"
	"github.com/raul0r/Gestor-Medico/internal/domain/patient"
)

type Handler struct {
	svc          *Service
	dayStartHour int
}

func NewHandler(svc *Service, dayStartHour int) *Handler {
	return &Handler{svc: svc, dayStartHour: dayStartHour}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/agenda", h.Agenda)
	api.GET("/appointments/:id", h.GetAppointment)
	api.POST("/appointments", h.CreateAppointment)
	api.PUT("/appointments/:id", h.UpdateAppointment)
	api.DELETE("/appointments/:id", h.DeleteAppointment)
	api.GET("/patients/:id/appointments", h.PatientAppointments)
}

type appointmentRequest struct {
	PatientID uuid.UUID `json:"patient_id"`
	ServiceID uuid.UUID `json:"service_id"`
	Start     time.Time `json:"start"`
	Status    Status    `json:"status"`
}

// agendaEntry pairs an appointment with its rendering projection.
type agendaEntry struct {
	*Appointment
	Layout SlotLayout `json:"layout"`
}

func (h *Handler) Agenda(c echo.Context) error {
	day := time.Now()
	if raw := c.QueryParam("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, h.svc.Location())
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid date, want YYYY-MM-DD")
		}
		day = parsed
	}

	appts, err := h.svc.AgendaForDay(c.Request().Context(), day)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	entries := make([]agendaEntry, 0, len(appts))
	for _, a := range appts {
		entries = append(entries, agendaEntry{
			Appointment: a,
			Layout:      a.Layout(h.dayStartHour, h.svc.Location()),
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"date":         day.In(h.svc.Location()).Format("2006-01-02"),
		"appointments": entries,
	})
}

func (h *Handler) GetAppointment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	a, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, ErrAppointmentNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) CreateAppointment(c echo.Context) error {
	var req appointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a, err := h.svc.Schedule(c.Request().Context(), ScheduleInput{
		PatientID: req.PatientID,
		ServiceID: req.ServiceID,
		Start:     req.Start,
		Status:    req.Status,
	})
	if err != nil {
		return scheduleError(err)
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) UpdateAppointment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req appointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a, err := h.svc.Schedule(c.Request().Context(), ScheduleInput{
		ID:        id,
		PatientID: req.PatientID,
		ServiceID: req.ServiceID,
		Start:     req.Start,
		Status:    req.Status,
	})
	if err != nil {
		return scheduleError(err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) DeleteAppointment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) PatientAppointments(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	appts, err := h.svc.AppointmentsForPatient(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, patient.ErrPatientNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "patient not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, appts)
}

func scheduleError(err error) error {
	switch {
	case errors.Is(err, patient.ErrPatientNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	case errors.Is(err, catalog.ErrServiceNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "service not found")
	case errors.Is(err, ErrAppointmentNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
	}
	return echo.NewHTTPError(http.StatusBadRequest, err.Error())
}
