package http

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/solarpanel/tracker-api/internal/app"
	"github.com/solarpanel/tracker-api/internal/logger"
	"github.com/solarpanel/tracker-api/internal/utils"
	"github.com/solarpanel/tracker-api/models"
)

// Resource names accepted as the first segment of the path query parameter.
const (
	ResourceCanFrames     = "can_frames"
	ResourceLogin         = "login"
	ResourceResetPassword = "reset_password"
)

// pathParam is the query parameter that selects the resource.
const pathParam = "path"

// resourceRequest is a dispatched request: the resource id taken from the
// path parameter and the raw JSON body. A zero id or a nil body means the
// request carried none.
type resourceRequest struct {
	id    int64
	query url.Values
	body  json.RawMessage
}

func (rr resourceRequest) hasID() bool {
	return rr.id > 0
}

func (rr resourceRequest) hasBody() bool {
	return rr.body != nil
}

// decode unmarshals the body into v.
func (rr resourceRequest) decode(v any) error {
	return json.Unmarshal(rr.body, v)
}

type resourceHandlerFunc func(w http.ResponseWriter, r *http.Request, req resourceRequest)

func (h *Handler) resources() map[string]resourceHandlerFunc {
	return map[string]resourceHandlerFunc{
		ResourceCanFrames:     h.canFrames,
		ResourceLogin:         h.login,
		ResourceResetPassword: h.resetPassword,
	}
}

// dispatch routes a request of the legacy entry point to its resource
// controller.
func (h *Handler) dispatch(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	query := r.URL.Query()
	resource, id := parseResourcePath(query.Get(pathParam))

	handle, ok := h.resources()[resource]
	if !ok {
		log.Debug().Str("resource", resource).Msg("unknown resource requested")
		h.resourceNotFound(w, r)
		return
	}

	body, err := h.readBody(w, r)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeMessage(w, app.MsgBodyTooLarge, http.StatusRequestEntityTooLarge)
			return
		}
		if errors.Is(err, errInvalidGzipBody) {
			log.Debug().Err(err).Msg("rejected gzip request body")
			writeMessage(w, msgInvalidGzipBody, http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("error reading request body")
		writeMessage(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	handle(w, r, resourceRequest{id: id, query: query, body: body})
}

// parseResourcePath splits "can_frames/12" into the resource name and id.
// Numeric forms such as "12.0" or "1.2e1" address id 12. A missing,
// non-numeric, fractional or non-positive second segment yields id 0.
func parseResourcePath(path string) (string, int64) {
	segments := strings.Split(strings.Trim(path, "/"), "/")

	resource := segments[0]
	if len(segments) < 2 {
		return resource, 0
	}

	return resource, parseID(strings.TrimSpace(segments[1]))
}

func parseID(raw string) int64 {
	if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return max(id, 0)
	}

	// hex floats, Inf and NaN are not ids
	if strings.ContainsAny(raw, "xXnN_") {
		return 0
	}

	fv, err := strconv.ParseFloat(raw, 64)
	if err != nil || fv != math.Trunc(fv) || fv < 1 || fv >= math.MaxInt64 {
		return 0
	}
	return int64(fv)
}

// readBody reads the whole size-limited body. Empty, null or syntactically
// invalid JSON is reported as no body.
func (h *Handler) readBody(w http.ResponseWriter, r *http.Request) (json.RawMessage, error) {
	if r.Body == nil {
		return nil, nil
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		return nil, err
	}

	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" || !json.Valid(data) {
		return nil, nil
	}

	return json.RawMessage(data), nil
}

func (h *Handler) resourceNotFound(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, app.MsgResourceNotFound, http.StatusNotFound)
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
}

func writeMessage(w http.ResponseWriter, message string, status int) {
	utils.WriteJSON(w, models.MessageResponse{Message: message}, status)
}
