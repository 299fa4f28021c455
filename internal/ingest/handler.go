package ingest

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/solarpanel/tracker-api/internal/adapter"
	"github.com/solarpanel/tracker-api/internal/frame"
	"github.com/solarpanel/tracker-api/internal/logger"
	"github.com/solarpanel/tracker-api/internal/utils"
)

var ErrNoFrames = errors.New("message holds no complete telemetry frame")

// MessageHandler processes the payload of one broker message.
type MessageHandler interface {
	Handle(ctx context.Context, payload []byte) error
}

type traceIDGenerator interface {
	Generate() string
}

// FrameHandler decodes firmware lines and creates a can_frames record for
// each of them.
type FrameHandler struct {
	adapter  adapter.TrackerAdapter
	traceIDs traceIDGenerator
	logger   *logger.Logger
}

func NewFrameHandler(trackerAdapter adapter.TrackerAdapter, logger *logger.Logger) *FrameHandler {
	return &FrameHandler{
		adapter:  trackerAdapter,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}

// Handle stores every complete line of payload. A line that fails to decode
// or to store does not stop the remaining ones; all failures are returned
// joined.
func (h *FrameHandler) Handle(ctx context.Context, payload []byte) error {
	lines, rest := frame.Split(string(payload))
	if len(lines) == 0 {
		return fmt.Errorf("%w: %d bytes", ErrNoFrames, len(payload))
	}
	if rest != "" {
		h.logger.Warn().Str("func", "*FrameHandler.Handle").Int("bytes", len(rest)).Msg("incomplete trailing frame dropped")
	}

	var errs []error
	for _, line := range lines {
		if err := h.handleLine(ctx, line); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (h *FrameHandler) handleLine(ctx context.Context, line string) error {
	traceID := h.traceIDs.Generate()

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})
	ctx = utils.WithTraceID(l.WithContext(ctx), traceID)

	input, err := frame.Decode(line)
	if err != nil {
		l.Warn().Err(err).Str("func", "*FrameHandler.handleLine").Msg("telemetry frame rejected")
		return fmt.Errorf("decode frame: %w", err)
	}

	id, err := h.adapter.CreateCanFrame(ctx, input)
	if err != nil {
		l.Err(err).Str("func", "*FrameHandler.handleLine").Msg("error storing telemetry frame")
		return fmt.Errorf("store frame: %w", err)
	}

	l.Debug().Str("func", "*FrameHandler.handleLine").Int64("id", id).Msg("telemetry frame stored")
	return nil
}
