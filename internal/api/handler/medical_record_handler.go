package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medoffice/office-api/internal/core/ports"
)

// MedicalRecordHandler serves /api/medical-records and the patient
// record listing.
type MedicalRecordHandler struct {
	service ports.MedicalRecordService
}

func NewMedicalRecordHandler(service ports.MedicalRecordService) *MedicalRecordHandler {
	return &MedicalRecordHandler{service: service}
}

// Create stores the record of a visit.
//
// @Summary      Create a medical record
// @Tags         medical-records
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createMedicalRecordRequest  true  "Medical record"
// @Success      201   {object}  domain.MedicalRecord
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/medical-records [post]
func (h *MedicalRecordHandler) Create(c echo.Context) error {
	req, err := body[createMedicalRecordRequest](c)
	if err != nil {
		return err
	}
	r, err := toMedicalRecord(req)
	if err != nil {
		return err
	}
	created, err := h.service.Create(c.Request().Context(), r)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Get returns a record with its patient and doctor.
//
// @Summary      Get a medical record
// @Tags         medical-records
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Record id"
// @Success      200  {object}  domain.MedicalRecord
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/medical-records/{id} [get]
func (h *MedicalRecordHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	r, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, r)
}

// Update changes the given record fields.
//
// @Summary      Update a medical record
// @Tags         medical-records
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                      true  "Record id"
// @Param        body  body      updateMedicalRecordRequest  true  "Fields to change"
// @Success      200   {object}  domain.MedicalRecord
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/medical-records/{id} [patch]
func (h *MedicalRecordHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	req, err := body[updateMedicalRecordRequest](c)
	if err != nil {
		return err
	}
	update, err := toMedicalRecordUpdate(req)
	if err != nil {
		return err
	}
	r, err := h.service.Update(c.Request().Context(), id, update)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, r)
}

// ListByPatient returns a patient's records, newest visit first.
//
// @Summary      List a patient's medical records
// @Tags         patients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Patient id"
// @Success      200  {array}   domain.MedicalRecord
// @Failure      400  {object}  errorResponse
// @Router       /api/patients/{id}/medical-records [get]
func (h *MedicalRecordHandler) ListByPatient(c echo.Context) error {
	patientID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	list, err := h.service.ListByPatient(c.Request().Context(), patientID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}
