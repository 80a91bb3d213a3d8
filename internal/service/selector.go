package service

import (
	"context"

	"github.com/cupcade/vendpay/internal/models"
	"github.com/cupcade/vendpay/internal/repository"
)

// SelectorService picks one product out of a device's candidate set.
//
// Tie-break policy: the candidate slice is the device's stated order,
// and "first in slice order" wins wherever the preference does not
// narrow the choice down to one. This is a deliberate policy, not an
// accident of map iteration; callers must supply a deterministic order.
type SelectorService struct {
	products repository.ProductRepository
}

// NewSelectorService creates a new SelectorService
func NewSelectorService(products repository.ProductRepository) *SelectorService {
	return &SelectorService{products: products}
}

// Select resolves which candidate to purchase for the given tag.
//
// Without a preference the first candidate wins and the catalog is not
// consulted. With a preference, the full product records are fetched in
// one batch, filtered to the preferred type, and the first surviving
// candidate (in original candidate order) wins. When no candidate
// matches the preference the selector falls back to the first candidate
// rather than rejecting the purchase.
//
// Products missing from the catalog are silently excluded from the
// filter, never treated as errors.
func (s *SelectorService) Select(ctx context.Context, tag *models.Tag, candidates []models.ProductCandidate) (models.ProductCandidate, error) {
	if len(candidates) == 0 {
		return models.ProductCandidate{}, &ServiceError{
			Code:    ErrCodeNoCandidates,
			Message: "no product candidates supplied",
		}
	}

	if tag.Preference == nil || *tag.Preference == "" {
		return candidates[0], nil
	}

	ids := make([]string, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.ProductID)
	}

	products, err := s.products.BatchGet(ctx, ids)
	if err != nil {
		return models.ProductCandidate{}, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "failed to fetch candidate products",
			Err:     err,
		}
	}

	for _, c := range candidates {
		product, ok := products[c.ProductID]
		if !ok {
			continue
		}
		if product.Type == *tag.Preference {
			return c, nil
		}
	}

	return candidates[0], nil
}
