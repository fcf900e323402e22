package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/medoffice/office-api/internal/core/domain"
	"github.com/medoffice/office-api/internal/core/ports"
)

// AuditHandler exposes the access audit trail to administrators.
type AuditHandler struct {
	service ports.AuditService
}

func NewAuditHandler(service ports.AuditService) *AuditHandler {
	return &AuditHandler{service: service}
}

type listAuditQuery struct {
	ActorID    string `query:"actor_id"    validate:"omitempty,uuid_rfc"`
	Resource   string `query:"resource"    validate:"omitempty,oneof=patient appointment medical_record"`
	ResourceID string `query:"resource_id"`
	Since      string `query:"since"       validate:"omitempty,isodate"`
	Page       int    `query:"page"        validate:"omitempty,min=1"`
	PageSize   int    `query:"pageSize"    validate:"omitempty,min=1,max=100"`
}

type auditListResponse struct {
	Data       []*domain.AuditEvent `json:"data"`
	Pagination pagination           `json:"pagination"`
}

// List returns audit events, newest first.
//
// @Summary      List audit events
// @Tags         audit
// @Produce      json
// @Security     BearerAuth
// @Param        actor_id     query     string  false  "Actor user id"
// @Param        resource     query     string  false  "patient, appointment or medical_record"
// @Param        resource_id  query     string  false  "Resource id"
// @Param        since        query     string  false  "ISO-8601 lower bound"
// @Param        page         query     int     false  "Page (default 1)"
// @Param        pageSize     query     int     false  "Page size (default 10, max 100)"
// @Success      200  {object}  auditListResponse
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      502  {object}  errorResponse
// @Router       /api/audit-events [get]
func (h *AuditHandler) List(c echo.Context) error {
	q, err := query[listAuditQuery](c)
	if err != nil {
		return err
	}

	filter := domain.AuditFilter{
		ActorID:    q.ActorID,
		Resource:   q.Resource,
		ResourceID: q.ResourceID,
		Page:       q.Page,
		PageSize:   q.PageSize,
	}
	if q.Since != "" {
		filter.Since = parseSince(q.Since)
	}

	page, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, auditListResponse{
		Data: page.Items,
		Pagination: pagination{
			Page:       page.Page,
			PageSize:   page.PageSize,
			Total:      page.Total,
			TotalPages: page.TotalPages,
		},
	})
}

// parseSince reads a value already accepted by the isodate rule.
func parseSince(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	t, _ := time.Parse(time.DateOnly, s)
	return t
}
