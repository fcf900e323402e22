package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medoffice/office-api/internal/core/domain"
	"github.com/medoffice/office-api/internal/core/ports"
)

// AppointmentHandler serves /api/appointments.
type AppointmentHandler struct {
	service ports.AppointmentService
}

func NewAppointmentHandler(service ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// Create books an appointment. Status defaults to scheduled.
//
// @Summary      Create an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAppointmentRequest  true  "Appointment"
// @Success      201   {object}  domain.Appointment
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/appointments [post]
func (h *AppointmentHandler) Create(c echo.Context) error {
	req, err := body[createAppointmentRequest](c)
	if err != nil {
		return err
	}
	a, err := toAppointment(req)
	if err != nil {
		return err
	}
	created, err := h.service.Create(c.Request().Context(), a)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Get returns an appointment with its patient and doctor.
//
// @Summary      Get an appointment
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Appointment id"
// @Success      200  {object}  domain.Appointment
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/appointments/{id} [get]
func (h *AppointmentHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	a, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, a)
}

// Update changes the given appointment fields.
//
// @Summary      Update an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "Appointment id"
// @Param        body  body      updateAppointmentRequest  true  "Fields to change"
// @Success      200   {object}  domain.Appointment
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/appointments/{id} [patch]
func (h *AppointmentHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	req, err := body[updateAppointmentRequest](c)
	if err != nil {
		return err
	}
	update, err := toAppointmentUpdate(req)
	if err != nil {
		return err
	}
	a, err := h.service.Update(c.Request().Context(), id, update)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, a)
}

// List returns appointments between start_date and end_date inclusive.
//
// @Summary      List appointments in a date range
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        start_date  query     string  true  "First day (YYYY-MM-DD)"
// @Param        end_date    query     string  true  "Last day (YYYY-MM-DD)"
// @Success      200         {array}   domain.Appointment
// @Failure      400         {object}  errorResponse
// @Router       /api/appointments [get]
func (h *AppointmentHandler) List(c echo.Context) error {
	q, err := query[dateRangeQuery](c)
	if err != nil {
		return err
	}
	list, err := h.service.ListByDateRange(c.Request().Context(), domain.DateRange{Start: q.StartDate, End: q.EndDate})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// ListByDoctor returns one doctor's appointments in a date range.
//
// @Summary      List a doctor's appointments
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        doctorId    path      string  true  "Doctor id"
// @Param        start_date  query     string  true  "First day (YYYY-MM-DD)"
// @Param        end_date    query     string  true  "Last day (YYYY-MM-DD)"
// @Success      200         {array}   domain.Appointment
// @Failure      400         {object}  errorResponse
// @Router       /api/appointments/doctor/{doctorId} [get]
func (h *AppointmentHandler) ListByDoctor(c echo.Context) error {
	doctorID, err := pathID(c, "doctorId")
	if err != nil {
		return err
	}
	q, err := query[dateRangeQuery](c)
	if err != nil {
		return err
	}
	list, err := h.service.ListByDoctor(c.Request().Context(), doctorID, domain.DateRange{Start: q.StartDate, End: q.EndDate})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}
