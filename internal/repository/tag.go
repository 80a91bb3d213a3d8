package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cupcade/vendpay/internal/db"
	"github.com/cupcade/vendpay/internal/models"
	"github.com/google/uuid"
)

// TagRepository defines the interface for tag data access. Tag numbers
// are the primary key, so lookup by tag number is a point read.
type TagRepository interface {
	Create(ctx context.Context, tag *models.Tag) error
	FindByTagNumber(ctx context.Context, tagNumber string) (*models.Tag, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]models.Tag, error)
	Delete(ctx context.Context, accountID uuid.UUID, tagNumber string) error
}

type tagRepository struct {
	q db.Querier
}

// NewTagRepository creates a new TagRepository
func NewTagRepository(q db.Querier) TagRepository {
	return &tagRepository{q: q}
}

// Create inserts a new tag record
func (r *tagRepository) Create(ctx context.Context, tag *models.Tag) error {
	query := `
		INSERT INTO tags (tag_number, account_id, name, preference)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := r.q.QueryRowContext(ctx, query,
		tag.TagNumber,
		tag.AccountID,
		tag.Name,
		tag.Preference,
	).Scan(&tag.CreatedAt)

	if isUniqueViolation(err) {
		return models.ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("failed to create tag: %w", err)
	}

	return nil
}

// FindByTagNumber retrieves a tag by its unique tag number
func (r *tagRepository) FindByTagNumber(ctx context.Context, tagNumber string) (*models.Tag, error) {
	query := `
		SELECT tag_number, account_id, name, preference, created_at
		FROM tags
		WHERE tag_number = $1
	`

	var tag models.Tag
	err := r.q.QueryRowContext(ctx, query, tagNumber).Scan(
		&tag.TagNumber,
		&tag.AccountID,
		&tag.Name,
		&tag.Preference,
		&tag.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find tag by tag number: %w", err)
	}

	return &tag, nil
}

// ListByAccount returns all tags owned by the account, oldest first
func (r *tagRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]models.Tag, error) {
	query := `
		SELECT tag_number, account_id, name, preference, created_at
		FROM tags
		WHERE account_id = $1
		ORDER BY created_at
	`

	rows, err := r.q.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer rows.Close() //nolint:errcheck // close error is not actionable here

	var tags []models.Tag
	for rows.Next() {
		var tag models.Tag
		if err := rows.Scan(
			&tag.TagNumber,
			&tag.AccountID,
			&tag.Name,
			&tag.Preference,
			&tag.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, tag)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tags: %w", err)
	}

	return tags, nil
}

// Delete removes a tag owned by the given account. The account id is
// part of the predicate so one account cannot delete another's tag.
func (r *tagRepository) Delete(ctx context.Context, accountID uuid.UUID, tagNumber string) error {
	query := `DELETE FROM tags WHERE tag_number = $1 AND account_id = $2`

	result, err := r.q.ExecContext(ctx, query, tagNumber, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrNotFound
	}

	return nil
}
