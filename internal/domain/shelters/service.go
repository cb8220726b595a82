package shelters

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"shelter-registry/internal/platform/logger"
	"shelter-registry/internal/platform/validation"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// ValidationError detalla qué campos no pasaron las reglas.
// errors.Is(err, ErrInvalidInput) sigue funcionando.
type ValidationError struct {
	Fields validation.FieldErrors
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

type Service struct {
	repo      Repository
	validator *validation.Validator
	log       logger.Logger
	now       func() time.Time
}

func NewService(repo Repository, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:      repo,
		validator: validation.New(),
		log:       log,
		now:       time.Now,
	}
}

// CreateInput usa las mismas reglas que el formulario del cliente.
type CreateInput struct {
	Name            string  `json:"name" validate:"required,max=200"`
	Address         string  `json:"address" validate:"required,max=500"`
	ShelteredPeople *int    `json:"shelteredPeople" validate:"omitempty,min=0"`
	Capacity        *int    `json:"capacity" validate:"omitempty,min=1"`
	Verified        bool    `json:"verified"`
	PetFriendly     *bool   `json:"petFriendly"`
	Contact         *string `json:"contact" validate:"omitempty,max=200"`
	Pix             *string `json:"pix" validate:"omitempty,max=200"`
}

func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (Shelter, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Shelter{}, ErrInvalidInput
	}

	in = sanitizeInput(in)

	fieldErrs, err := s.validator.Check(in)
	if err != nil {
		return Shelter{}, err
	}
	if len(fieldErrs) > 0 {
		return Shelter{}, &ValidationError{Fields: fieldErrs}
	}

	now := s.now()
	sh := Shelter{
		ID:              uuid.NewString(),
		Name:            in.Name,
		Address:         in.Address,
		ShelteredPeople: in.ShelteredPeople,
		Capacity:        in.Capacity,
		Verified:        in.Verified,
		PetFriendly:     in.PetFriendly,
		Contact:         in.Contact,
		Pix:             in.Pix,
		CreatedByUserID: userID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, sh); err != nil {
		return Shelter{}, fmt.Errorf("create shelter: %w", err)
	}

	s.log.Info("shelter created", map[string]any{
		"shelter_id": sh.ID,
		"user_id":    userID,
	})
	return sh, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Shelter, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Shelter{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Shelter, error) {
	return s.repo.List(ctx)
}
