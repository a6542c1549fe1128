package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lucasmonteiro/occurrence-api/internal/constants"
	"github.com/lucasmonteiro/occurrence-api/internal/dto"
	apierrors "github.com/lucasmonteiro/occurrence-api/internal/errors"
	"github.com/lucasmonteiro/occurrence-api/internal/models"
	"github.com/lucasmonteiro/occurrence-api/internal/services"
)

// OccurrenceHandler coordinates occurrence HTTP handlers.
type OccurrenceHandler struct {
	occurrenceService *services.OccurrenceService
}

// NewOccurrenceHandler creates a new OccurrenceHandler.
func NewOccurrenceHandler(occurrenceService *services.OccurrenceService) *OccurrenceHandler {
	return &OccurrenceHandler{
		occurrenceService: occurrenceService,
	}
}

// normalizeOwnerID strips the literal "undefined" some clients send in place
// of a missing user ID. The shim lives here so the core never sees it.
func normalizeOwnerID(ownerID string) string {
	if ownerID == constants.OwnerPlaceholder {
		return ""
	}
	return ownerID
}

// Create submits a new occurrence. Any status in the payload is ignored;
// new occurrences always start open.
func (h *OccurrenceHandler) Create(c *gin.Context) {
	type CreateOccurrenceRequest struct {
		Categoria       string                 `json:"categoria"`
		Subcategoria    string                 `json:"subcategoria"`
		Prioridade      string                 `json:"prioridade"`
		Descricao       string                 `json:"descricao"`
		Endereco        string                 `json:"endereco"`
		PontoReferencia string                 `json:"ponto_referencia"`
		CodigoViatura   string                 `json:"codigo_viatura"`
		GPS             *models.GPSCoordinate  `json:"gps"`
		UserID          string                 `json:"userId"`
		Status          string                 `json:"status"`
	}

	var req CreateOccurrenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	occurrence, err := h.occurrenceService.Create(services.CreateOccurrenceInput{
		Categoria:       req.Categoria,
		Subcategoria:    req.Subcategoria,
		Prioridade:      req.Prioridade,
		Descricao:       req.Descricao,
		Endereco:        req.Endereco,
		PontoReferencia: req.PontoReferencia,
		CodigoViatura:   req.CodigoViatura,
		GPS:             req.GPS,
		UserID:          normalizeOwnerID(req.UserID),
	})
	if err != nil {
		apierrors.InternalError(c, "Failed to save occurrence")
		return
	}

	c.JSON(http.StatusOK, dto.ToOccurrenceDTO(*occurrence))
}

// ListByOwner returns a user's occurrences, most recent first.
func (h *OccurrenceHandler) ListByOwner(c *gin.Context) {
	ownerID := normalizeOwnerID(c.Param("id"))

	occurrences, err := h.occurrenceService.ListByOwner(ownerID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch occurrences")
		return
	}

	c.JSON(http.StatusOK, dto.ToOccurrenceListDTO(occurrences))
}

// ChangeStatus moves an occurrence to a new lifecycle state.
func (h *OccurrenceHandler) ChangeStatus(c *gin.Context) {
	type ChangeStatusRequest struct {
		Status string `json:"status" binding:"required"`
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	occurrence, err := h.occurrenceService.ChangeStatus(c.Param("id"), models.Status(req.Status))
	if err != nil {
		respondOccurrenceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOccurrenceDTO(*occurrence))
}

// Edit overwrites the descriptive fields of an occurrence. Status and owner
// keys in the payload are not bound and therefore never applied.
func (h *OccurrenceHandler) Edit(c *gin.Context) {
	type EditOccurrenceRequest struct {
		Descricao       *string `json:"descricao"`
		Endereco        *string `json:"endereco"`
		PontoReferencia *string `json:"ponto_referencia"`
		Prioridade      *string `json:"prioridade"`
	}

	var req EditOccurrenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	occurrence, err := h.occurrenceService.EditDetails(c.Param("id"), services.EditOccurrenceInput{
		Descricao:       req.Descricao,
		Endereco:        req.Endereco,
		PontoReferencia: req.PontoReferencia,
		Prioridade:      req.Prioridade,
	})
	if err != nil {
		respondOccurrenceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOccurrenceDTO(*occurrence))
}

// Delete permanently removes an occurrence.
func (h *OccurrenceHandler) Delete(c *gin.Context) {
	if err := h.occurrenceService.Delete(c.Param("id")); err != nil {
		respondOccurrenceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Occurrence deleted successfully",
	})
}

func respondOccurrenceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrOccurrenceNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidStatus):
		apierrors.InvalidState(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
