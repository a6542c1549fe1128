package dto

import (
	"time"

	"github.com/lucasmonteiro/occurrence-api/internal/models"
)

// OccurrenceDTO represents an occurrence in API responses. The gps column
// is stored serialized and exposed back in structured form.
type OccurrenceDTO struct {
	ID              string                 `json:"id"`
	Categoria       string                 `json:"categoria"`
	Subcategoria    string                 `json:"subcategoria"`
	Prioridade      string                 `json:"prioridade"`
	Descricao       string                 `json:"descricao"`
	Endereco        string                 `json:"endereco"`
	PontoReferencia string                 `json:"ponto_referencia"`
	CodigoViatura   string                 `json:"codigo_viatura"`
	GPS             *models.GPSCoordinate  `json:"gps"`
	Status          models.Status          `json:"status"`
	UserID          string                 `json:"userId"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt"`
}

// ToOccurrenceDTO converts an Occurrence model to OccurrenceDTO
func ToOccurrenceDTO(occurrence models.Occurrence) OccurrenceDTO {
	return OccurrenceDTO{
		ID:              occurrence.ID,
		Categoria:       occurrence.Categoria,
		Subcategoria:    occurrence.Subcategoria,
		Prioridade:      occurrence.Prioridade,
		Descricao:       occurrence.Descricao,
		Endereco:        occurrence.Endereco,
		PontoReferencia: occurrence.PontoReferencia,
		CodigoViatura:   occurrence.CodigoViatura,
		GPS:             models.ParseGPS(occurrence.GPS),
		Status:          occurrence.Status,
		UserID:          occurrence.UserID,
		CreatedAt:       occurrence.CreatedAt,
		UpdatedAt:       occurrence.UpdatedAt,
	}
}

// ToOccurrenceListDTO converts a slice of occurrences to DTOs
func ToOccurrenceListDTO(occurrences []models.Occurrence) []OccurrenceDTO {
	items := make([]OccurrenceDTO, len(occurrences))
	for i, occurrence := range occurrences {
		items[i] = ToOccurrenceDTO(occurrence)
	}
	return items
}
