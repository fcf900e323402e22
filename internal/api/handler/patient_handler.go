package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medoffice/office-api/internal/core/domain"
	"github.com/medoffice/office-api/internal/core/ports"
)

// PatientHandler serves /api/patients.
type PatientHandler struct {
	service ports.PatientService
}

func NewPatientHandler(service ports.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

// Create registers a patient.
//
// @Summary      Create a patient
// @Tags         patients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPatientRequest  true  "Patient"
// @Success      201   {object}  domain.Patient
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/patients [post]
func (h *PatientHandler) Create(c echo.Context) error {
	req, err := body[createPatientRequest](c)
	if err != nil {
		return err
	}
	patient, err := h.service.Create(c.Request().Context(), toPatient(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, patient)
}

// Get returns one patient.
//
// @Summary      Get a patient
// @Tags         patients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Patient id"
// @Success      200  {object}  domain.Patient
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/patients/{id} [get]
func (h *PatientHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	patient, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, patient)
}

// Update changes the given patient fields.
//
// @Summary      Update a patient
// @Tags         patients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Patient id"
// @Param        body  body      updatePatientRequest  true  "Fields to change"
// @Success      200   {object}  domain.Patient
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/patients/{id} [patch]
func (h *PatientHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	req, err := body[updatePatientRequest](c)
	if err != nil {
		return err
	}
	patient, err := h.service.Update(c.Request().Context(), id, toPatientUpdate(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, patient)
}

// List returns one page of patients.
//
// @Summary      List patients
// @Tags         patients
// @Produce      json
// @Security     BearerAuth
// @Param        page      query     int     false  "Page, 1-based"
// @Param        pageSize  query     int     false  "Page size, at most 100"
// @Param        search    query     string  false  "Matches name, email or phone"
// @Success      200       {object}  patientListResponse
// @Failure      400       {object}  errorResponse
// @Router       /api/patients [get]
func (h *PatientHandler) List(c echo.Context) error {
	q, err := query[listPatientsQuery](c)
	if err != nil {
		return err
	}
	page, err := h.service.List(c.Request().Context(), domain.PatientFilter{
		Search:   q.Search,
		Page:     q.Page,
		PageSize: q.PageSize,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPatientListResponse(page))
}
