package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/solarpanel/tracker-api/internal/validators"
	"github.com/solarpanel/tracker-api/models"
)

// CanFrameValidationService rejects incomplete payloads and inconsistent
// filters before they reach the wrapped service.
type CanFrameValidationService struct {
	inner     CanFrameService
	validator validators.Validator
}

func NewCanFrameValidationService() CanFrameServiceWrapper {
	return &CanFrameValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *CanFrameValidationService) Get(ctx context.Context, id int64) (models.CanFrame, error) {
	return v.inner.Get(ctx, id)
}

func (v *CanFrameValidationService) List(ctx context.Context, filter models.CanFrameFilter) ([]models.CanFrame, error) {
	if err := v.validator.Validate(ctx, filter); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.List(ctx, filter)
}

func (v *CanFrameValidationService) Create(ctx context.Context, input models.CanFrameInput) (int64, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Create(ctx, input)
}

func (v *CanFrameValidationService) Update(ctx context.Context, id int64, input models.CanFrameInput) error {
	if err := v.validator.Validate(ctx, input); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Update(ctx, id, input)
}

func (v *CanFrameValidationService) Delete(ctx context.Context, id int64) error {
	return v.inner.Delete(ctx, id)
}

func (v *CanFrameValidationService) ParseFilter(ctx context.Context, query url.Values) (models.CanFrameFilter, error) {
	return v.inner.ParseFilter(ctx, query)
}

func (v *CanFrameValidationService) Wrap(wrapped CanFrameService) CanFrameService {
	v.inner = wrapped
	return v
}
