package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/cupcade/vendpay/internal/models"
	"github.com/cupcade/vendpay/internal/repository"
	"github.com/google/uuid"
)

// TagService resolves presented tag numbers and manages the tag
// directory for accounts
type TagService struct {
	tags repository.TagRepository
}

// NewTagService creates a new TagService
func NewTagService(tags repository.TagRepository) *TagService {
	return &TagService{tags: tags}
}

// Resolve looks up a tag by its unique tag number. An unknown tag is an
// expected outcome (somebody waved an unregistered fob) and maps to
// ErrCodeTagNotFound; it is not an internal failure.
func (s *TagService) Resolve(ctx context.Context, tagNumber string) (*models.Tag, error) {
	tag, err := s.tags.FindByTagNumber(ctx, tagNumber)
	if errors.Is(err, models.ErrNotFound) {
		return nil, &ServiceError{
			Code:    ErrCodeTagNotFound,
			Message: "tag does not exist",
		}
	}
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "failed to resolve tag",
			Err:     err,
		}
	}

	return tag, nil
}

// Create registers a new tag for an account
func (s *TagService) Create(ctx context.Context, accountID uuid.UUID, tagNumber, name string, preference *string) (*models.Tag, error) {
	tag := &models.Tag{
		TagNumber:  tagNumber,
		AccountID:  accountID,
		Name:       name,
		Preference: preference,
	}

	err := s.tags.Create(ctx, tag)
	if errors.Is(err, models.ErrDuplicate) {
		return nil, &ServiceError{
			Code:    ErrCodeTagExists,
			Message: fmt.Sprintf("tag %s is already registered", tagNumber),
		}
	}
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "failed to create tag",
			Err:     err,
		}
	}

	return tag, nil
}

// List returns all tags owned by the account
func (s *TagService) List(ctx context.Context, accountID uuid.UUID) ([]models.Tag, error) {
	tags, err := s.tags.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "failed to list tags",
			Err:     err,
		}
	}

	return tags, nil
}

// Delete removes a tag owned by the account
func (s *TagService) Delete(ctx context.Context, accountID uuid.UUID, tagNumber string) error {
	err := s.tags.Delete(ctx, accountID, tagNumber)
	if errors.Is(err, models.ErrNotFound) {
		return &ServiceError{
			Code:    ErrCodeTagNotFound,
			Message: "tag does not exist",
		}
	}
	if err != nil {
		return &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "failed to delete tag",
			Err:     err,
		}
	}

	return nil
}
