package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/solarpanel/tracker-api/internal/config"
	"github.com/solarpanel/tracker-api/internal/logger"
	"github.com/solarpanel/tracker-api/internal/utils"
	"github.com/solarpanel/tracker-api/models"
)

const (
	resourceCanFrames = "can_frames"
	pathParam         = "path"
)

type httpTrackerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPTrackerAdapter constructs the HTTP implementation of
// [TrackerAdapter]. It normalises the base URL from cfg.APIAddress and applies
// cfg.RequestTimeout to every request.
//
// Returns [ErrInvalidAddress] (wrapped) if the address is empty or cannot be
// parsed as a URL.
func NewHTTPTrackerAdapter(cfg config.CollectorAdapter, logger *logger.Logger) (TrackerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.APIAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpTrackerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// CreateCanFrame implements [TrackerAdapter]. It POSTs input to
// /?path=can_frames and returns the id assigned by the server.
func (h *httpTrackerAdapter) CreateCanFrame(ctx context.Context, input models.CanFrameInput) (int64, error) {
	var created models.IDResponse

	resp, err := h.request(ctx, resourceCanFrames).
		SetBody(input).
		SetResult(&created).
		Post("/")
	if err != nil {
		return 0, fmt.Errorf("create can frame request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return created.ID, nil
}

// GetCanFrame implements [TrackerAdapter]. It GETs /?path=can_frames/{id}.
func (h *httpTrackerAdapter) GetCanFrame(ctx context.Context, id int64) (models.CanFrame, error) {
	var frame models.CanFrame

	resp, err := h.request(ctx, resourceCanFrames+"/"+strconv.FormatInt(id, 10)).
		SetResult(&frame).
		Get("/")
	if err != nil {
		return models.CanFrame{}, fmt.Errorf("get can frame request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CanFrame{}, err
	}

	return frame, nil
}

// ListCanFrames implements [TrackerAdapter]. The path parameter of filter, if
// any, is overridden.
func (h *httpTrackerAdapter) ListCanFrames(ctx context.Context, filter url.Values) ([]models.CanFrame, error) {
	var frames []models.CanFrame

	req := h.request(ctx, resourceCanFrames)
	for key, values := range filter {
		if key == pathParam {
			continue
		}
		for _, v := range values {
			req.QueryParam.Add(key, v)
		}
	}

	resp, err := req.SetResult(&frames).Get("/")
	if err != nil {
		return nil, fmt.Errorf("list can frames request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return frames, nil
}

// request prepares a request to resource and forwards the trace id of ctx.
func (h *httpTrackerAdapter) request(ctx context.Context, resource string) *resty.Request {
	req := h.client.RequestWithTrace(ctx).
		SetQueryParam(pathParam, resource)

	h.logger.Debug().
		Str("func", "*httpTrackerAdapter.request").
		Str("resource", resource).
		Msg("calling tracker API")

	return req
}
