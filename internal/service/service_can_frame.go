package service

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/solarpanel/tracker-api/internal/logger"
	"github.com/solarpanel/tracker-api/internal/store"
	"github.com/solarpanel/tracker-api/models"
)

type canFrameService struct {
	canFrameRepository store.CanFrameRepository

	// now is replaced in tests
	now func() time.Time

	logger *logger.Logger
}

func NewCanFrameService(canFrameRepository store.CanFrameRepository, logger *logger.Logger) CanFrameService {
	return &canFrameService{
		canFrameRepository: canFrameRepository,
		now:                time.Now,
		logger:             logger,
	}
}

func (s *canFrameService) Get(ctx context.Context, id int64) (models.CanFrame, error) {
	return s.canFrameRepository.Get(ctx, id)
}

// List returns the frames matching filter, newest first. An empty result is
// reported as [store.ErrCanFrameNotFound].
func (s *canFrameService) List(ctx context.Context, filter models.CanFrameFilter) ([]models.CanFrame, error) {
	frames, err := s.canFrameRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(frames) == 0 {
		return nil, fmt.Errorf("no frames match the filter: %w", store.ErrCanFrameNotFound)
	}

	return frames, nil
}

// Create stores a new frame stamped with the current UTC time.
func (s *canFrameService) Create(ctx context.Context, input models.CanFrameInput) (int64, error) {
	log := logger.FromContext(ctx)

	frame := input.ToCanFrame()
	frame.Date = s.now().UTC()

	id, err := s.canFrameRepository.Create(ctx, frame)
	if err != nil {
		log.Err(err).Str("func", "*canFrameService.Create").Msg("frame creation ended with error")
		return 0, fmt.Errorf("frame creation ended with error: %w", err)
	}

	log.Debug().Str("func", "*canFrameService.Create").Int64("id", id).Msg("frame created")
	return id, nil
}

// Update replaces every telemetry value of frame id and restamps its date.
func (s *canFrameService) Update(ctx context.Context, id int64, input models.CanFrameInput) error {
	frame := input.ToCanFrame()
	frame.ID = id
	frame.Date = s.now().UTC()

	if err := s.canFrameRepository.Update(ctx, frame); err != nil {
		return fmt.Errorf("frame update ended with error: %w", err)
	}
	return nil
}

func (s *canFrameService) Delete(ctx context.Context, id int64) error {
	if err := s.canFrameRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("frame deletion ended with error: %w", err)
	}
	return nil
}

func (s *canFrameService) ParseFilter(ctx context.Context, query url.Values) (models.CanFrameFilter, error) {
	return ParseCanFrameFilter(query)
}
