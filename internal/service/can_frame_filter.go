package service

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/solarpanel/tracker-api/models"
)

// Query parameters bounding the date column of a listing.
const (
	ParamDateFrom = "date_from"
	ParamDateTo   = "date_to"
)

const dateOnlyLayout = "2006-01-02"

var errUnparsableDate = errors.New("expected RFC 3339 timestamp or YYYY-MM-DD date")

// ParseCanFrameFilter builds a listing filter from query parameters.
//
// Every telemetry column may appear once as an equality predicate;
// charge_state compares as text, the rest as integers. date_from and date_to
// take an RFC 3339 timestamp or a calendar date, where a date_to given as a
// calendar date covers the whole day. Other keys (path, id) are ignored.
func ParseCanFrameFilter(query url.Values) (models.CanFrameFilter, error) {
	filter := models.CanFrameFilter{Equals: make(map[string]any)}

	for _, field := range models.CanFrameFields {
		if !query.Has(field) {
			continue
		}

		raw := strings.TrimSpace(query.Get(field))
		if field == models.FieldChargeState {
			filter.Equals[field] = raw
			continue
		}

		v, err := models.ParseInteger(raw)
		if err != nil {
			return models.CanFrameFilter{}, &InvalidFilterError{Field: field, Err: err}
		}
		filter.Equals[field] = v
	}

	if query.Has(ParamDateFrom) {
		from, _, err := parseFilterDate(query.Get(ParamDateFrom))
		if err != nil {
			return models.CanFrameFilter{}, &InvalidFilterError{Field: ParamDateFrom, Err: err}
		}
		filter.DateFrom = &from
	}

	if query.Has(ParamDateTo) {
		to, dateOnly, err := parseFilterDate(query.Get(ParamDateTo))
		if err != nil {
			return models.CanFrameFilter{}, &InvalidFilterError{Field: ParamDateTo, Err: err}
		}
		if dateOnly {
			to = to.Add(24*time.Hour - time.Nanosecond)
		}
		filter.DateTo = &to
	}

	return filter, nil
}

func parseFilterDate(raw string) (time.Time, bool, error) {
	raw = strings.TrimSpace(raw)

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), false, nil
	}
	if t, err := time.Parse(dateOnlyLayout, raw); err == nil {
		return t, true, nil
	}

	return time.Time{}, false, errUnparsableDate
}
