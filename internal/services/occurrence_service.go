package services

import (
	"errors"
	"fmt"

	"github.com/lucasmonteiro/occurrence-api/internal/models"
	"github.com/lucasmonteiro/occurrence-api/internal/repository"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

var (
	ErrOccurrenceNotFound = errors.New("occurrence not found")
	ErrInvalidStatus      = errors.New("status is not a recognized lifecycle state")
	ErrSaveOccurrence     = errors.New("could not save occurrence")
)

// OccurrenceService handles occurrence lifecycle business logic.
type OccurrenceService struct {
	occurrenceRepo repository.OccurrenceRepository
	ownerResolver  DefaultOwnerResolver
	policy         models.TransitionPolicy
	log            zerolog.Logger
}

// NewOccurrenceService creates a new OccurrenceService. A nil policy allows
// any transition between recognized states.
func NewOccurrenceService(
	occurrenceRepo repository.OccurrenceRepository,
	ownerResolver DefaultOwnerResolver,
	policy models.TransitionPolicy,
	log zerolog.Logger,
) *OccurrenceService {
	if policy == nil {
		policy = models.AllowAnyTransition
	}
	return &OccurrenceService{
		occurrenceRepo: occurrenceRepo,
		ownerResolver:  ownerResolver,
		policy:         policy,
		log:            log,
	}
}

// CreateOccurrenceInput represents input for submitting a new occurrence.
// UserID is optional; when empty the default owner is resolved.
type CreateOccurrenceInput struct {
	Categoria       string
	Subcategoria    string
	Prioridade      string
	Descricao       string
	Endereco        string
	PontoReferencia string
	CodigoViatura   string
	GPS             *models.GPSCoordinate
	UserID          string
}

// Create persists a new occurrence. The status is always forced to the
// initial state, whatever the caller sent alongside the payload.
func (s *OccurrenceService) Create(input CreateOccurrenceInput) (*models.Occurrence, error) {
	ownerID := input.UserID
	if ownerID == "" {
		resolved, err := s.ownerResolver.ResolveDefaultUserID()
		if err != nil {
			s.log.Error().Err(err).Msg("default owner resolution failed")
		}
		ownerID = resolved
	}
	if ownerID == "" {
		// The directory was never seeded. The record is still accepted so a
		// field report is not lost over a missing account.
		s.log.Warn().Msg("occurrence created without a resolvable owner")
		ownerID = models.OwnerUnresolved
	}

	gps, err := input.GPS.Serialize()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize gps: %w", err)
	}

	occurrence := &models.Occurrence{
		Categoria:       input.Categoria,
		Subcategoria:    input.Subcategoria,
		Prioridade:      input.Prioridade,
		Descricao:       input.Descricao,
		Endereco:        input.Endereco,
		PontoReferencia: input.PontoReferencia,
		CodigoViatura:   input.CodigoViatura,
		GPS:             gps,
		Status:          models.StatusOpen,
		UserID:          ownerID,
	}

	if err := s.occurrenceRepo.Create(occurrence); err != nil {
		s.log.Error().Err(err).Msg("occurrence insert failed")
		return nil, ErrSaveOccurrence
	}

	return occurrence, nil
}

// ListByOwner returns a user's occurrences, most recent first. An empty
// owner falls back to the default user; when that is unresolved the result
// is an empty list rather than an error.
func (s *OccurrenceService) ListByOwner(ownerID string) ([]models.Occurrence, error) {
	if ownerID == "" {
		resolved, err := s.ownerResolver.ResolveDefaultUserID()
		if err != nil {
			s.log.Error().Err(err).Msg("default owner resolution failed")
		}
		ownerID = resolved
	}
	if ownerID == "" {
		return []models.Occurrence{}, nil
	}

	occurrences, err := s.occurrenceRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list occurrences: %w", err)
	}

	return occurrences, nil
}

// ChangeStatus moves an occurrence to a new lifecycle state. The state must
// belong to the recognized set and the transition must pass the configured
// policy.
func (s *OccurrenceService) ChangeStatus(id string, newStatus models.Status) (*models.Occurrence, error) {
	if !newStatus.Valid() {
		return nil, ErrInvalidStatus
	}

	occurrence, err := s.occurrenceRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOccurrenceNotFound
		}
		return nil, fmt.Errorf("failed to find occurrence: %w", err)
	}

	if !s.policy(occurrence.Status, newStatus) {
		return nil, ErrInvalidStatus
	}

	occurrence.Status = newStatus
	if err := s.occurrenceRepo.Update(occurrence); err != nil {
		s.log.Error().Err(err).Str("occurrence_id", id).Msg("status update failed")
		return nil, ErrSaveOccurrence
	}

	return occurrence, nil
}

// EditOccurrenceInput represents input for editing descriptive fields. The
// status and the owner are deliberately absent: edits never touch them.
type EditOccurrenceInput struct {
	Descricao       *string
	Endereco        *string
	PontoReferencia *string
	Prioridade      *string
}

// EditDetails overwrites the descriptive fields of an occurrence.
func (s *OccurrenceService) EditDetails(id string, input EditOccurrenceInput) (*models.Occurrence, error) {
	occurrence, err := s.occurrenceRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOccurrenceNotFound
		}
		return nil, fmt.Errorf("failed to find occurrence: %w", err)
	}

	if input.Descricao != nil {
		occurrence.Descricao = *input.Descricao
	}
	if input.Endereco != nil {
		occurrence.Endereco = *input.Endereco
	}
	if input.PontoReferencia != nil {
		occurrence.PontoReferencia = *input.PontoReferencia
	}
	if input.Prioridade != nil {
		occurrence.Prioridade = *input.Prioridade
	}

	if err := s.occurrenceRepo.Update(occurrence); err != nil {
		s.log.Error().Err(err).Str("occurrence_id", id).Msg("details update failed")
		return nil, ErrSaveOccurrence
	}

	return occurrence, nil
}

// Delete permanently removes an occurrence.
func (s *OccurrenceService) Delete(id string) error {
	if _, err := s.occurrenceRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOccurrenceNotFound
		}
		return fmt.Errorf("failed to find occurrence: %w", err)
	}

	if err := s.occurrenceRepo.Delete(id); err != nil {
		s.log.Error().Err(err).Str("occurrence_id", id).Msg("delete failed")
		return ErrSaveOccurrence
	}

	return nil
}
