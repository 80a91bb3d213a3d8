package service

import (
	"context"

	"github.com/cupcade/vendpay/internal/models"
)

// DevicePayRequest is one device pay attempt. Either ProductID is set
// (the device pre-selected a product) or Candidates carries the
// device's loaded products in its preferred dispensing order.
type DevicePayRequest struct {
	TagNumber  string
	ProductID  string
	Candidates []models.ProductCandidate
}

// DevicePayResult tells the device what happened and what to pour
type DevicePayResult struct {
	ServoID      string
	BalanceCents int64
}

// DeviceService orchestrates the device pay flow: tag lookup, product
// resolution, then settlement
type DeviceService struct {
	tags           TagResolver
	selector       ProductSelector
	purchases      Purchaser
	defaultServoID string
}

// NewDeviceService creates a new DeviceService
func NewDeviceService(
	tags TagResolver,
	selector ProductSelector,
	purchases Purchaser,
	defaultServoID string,
) *DeviceService {
	return &DeviceService{
		tags:           tags,
		selector:       selector,
		purchases:      purchases,
		defaultServoID: defaultServoID,
	}
}

// Pay runs one request through the pipeline. Product resolution is
// skipped when the device pre-selected a product; in that path the
// device already knows its own dispensing unit, so the configured
// default servo id is echoed back.
func (s *DeviceService) Pay(ctx context.Context, req DevicePayRequest) (*DevicePayResult, error) {
	tag, err := s.tags.Resolve(ctx, req.TagNumber)
	if err != nil {
		return nil, err
	}

	productID := req.ProductID
	servoID := s.defaultServoID

	if productID == "" {
		candidate, err := s.selector.Select(ctx, tag, req.Candidates)
		if err != nil {
			return nil, err
		}
		productID = candidate.ProductID
		servoID = candidate.ServoID
	}

	result, err := s.purchases.Purchase(ctx, tag.AccountID, productID)
	if err != nil {
		return nil, err
	}

	return &DevicePayResult{
		ServoID:      servoID,
		BalanceCents: result.NewBalanceCents,
	}, nil
}
