package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/solarpanel/tracker-api/internal/logger"
	"github.com/solarpanel/tracker-api/models"
)

// canFrameRepository is the SQL-backed implementation of
// [CanFrameRepository]. It works against both PostgreSQL and SQLite; the
// dialect differences are carried by the embedded [*DB].
type canFrameRepository struct {
	*DB
	logger *logger.Logger
}

// NewCanFrameRepository constructs a [CanFrameRepository] backed by the
// provided database connection and logger.
func NewCanFrameRepository(db *DB, logger *logger.Logger) CanFrameRepository {
	logger.Debug().Msg("creating can frame repository")
	return &canFrameRepository{
		DB:     db,
		logger: logger,
	}
}

// Get returns the frame with the given id or [ErrCanFrameNotFound].
func (r *canFrameRepository) Get(ctx context.Context, id int64) (models.CanFrame, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCanFrameQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*canFrameRepository.Get").Msg("failed to create query")
		return models.CanFrame{}, err
	}

	var frame models.CanFrame
	err = r.retry(ctx, func(ctx context.Context) error {
		return r.DB.QueryRowContext(ctx, query, args...).Scan(frame.ScanTargets()...)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.CanFrame{}, ErrCanFrameNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*canFrameRepository.Get").Int64("id", id).Msg("failed to get can frame")
		return models.CanFrame{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return frame, nil
}

// List returns every frame matching filter, newest first. An empty result is
// an empty slice, not an error.
func (r *canFrameRepository) List(ctx context.Context, filter models.CanFrameFilter) ([]models.CanFrame, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCanFramesQuery(r.builder, filter)
	if err != nil {
		log.Err(err).Str("func", "*canFrameRepository.List").Msg("failed to create query")
		return nil, err
	}

	var frames []models.CanFrame
	err = r.retry(ctx, func(ctx context.Context) error {
		var listErr error
		frames, listErr = r.list(ctx, query, args)
		return listErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "*canFrameRepository.List").
			Int("filters_count", len(filter.Equals)).
			Msg("failed to list can frames")
		return nil, err
	}

	return frames, nil
}

func (r *canFrameRepository) list(ctx context.Context, query string, args []any) ([]models.CanFrame, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	frames := make([]models.CanFrame, 0, 50)
	for rows.Next() {
		var frame models.CanFrame
		if scanErr := rows.Scan(frame.ScanTargets()...); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		frames = append(frames, frame)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return frames, nil
}

// Create inserts frame and returns the new row id.
func (r *canFrameRepository) Create(ctx context.Context, frame models.CanFrame) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertCanFrameQuery(r.builder, frame)
	if err != nil {
		log.Err(err).Str("func", "*canFrameRepository.Create").Msg("failed to create query")
		return 0, err
	}

	var id int64
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).Str("func", "*canFrameRepository.Create").Msg("failed to insert can frame")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().Str("func", "*canFrameRepository.Create").Int64("id", id).Msg("can frame inserted")
	return id, nil
}

// Update replaces every telemetry column and the date of frame.ID.
// It returns [ErrCanFrameNotFound] when no row carries that id.
func (r *canFrameRepository) Update(ctx context.Context, frame models.CanFrame) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateCanFrameQuery(r.builder, frame)
	if err != nil {
		log.Err(err).Str("func", "*canFrameRepository.Update").Msg("failed to create query")
		return err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*canFrameRepository.Update").Int64("id", frame.ID).Msg("failed to update can frame")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(result, ErrCanFrameNotFound)
}

// Delete removes frame id. It returns [ErrCanFrameNotFound] when no row
// carries that id.
func (r *canFrameRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCanFrameQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*canFrameRepository.Delete").Msg("failed to create query")
		return err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*canFrameRepository.Delete").Int64("id", id).Msg("failed to delete can frame")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(result, ErrCanFrameNotFound)
}

// expectAffected maps a statement that touched no row to notFound.
func expectAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
