package http

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/solarpanel/tracker-api/internal/logger"
)

const (
	msgInvalidGzipBody = "Invalid gzip data"

	gzipLevel = gzip.DefaultCompression
)

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withCompression gzips JSON responses for clients that send
// Accept-Encoding: gzip. The unfiltered can_frames list returns the whole
// table, so it is the main beneficiary.
func withCompression() func(http.Handler) http.Handler {
	return middleware.Compress(gzipLevel, "application/json")
}

// withGzipBody transparently inflates request bodies sent with
// Content-Encoding: gzip. The body size limit of the dispatcher applies to
// the inflated stream.
func withGzipBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || !strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		gz := gzipReaderPool.Get().(*gzip.Reader)
		if err := gz.Reset(r.Body); err != nil {
			gzipReaderPool.Put(gz)
			if errors.Is(err, io.EOF) {
				// empty body, nothing to inflate
				r.Body = http.NoBody
				r.Header.Del("Content-Encoding")
				next.ServeHTTP(w, r)
				return
			}
			logger.FromRequest(r).Debug().Err(err).Msg("rejected gzip request body")
			writeMessage(w, msgInvalidGzipBody, http.StatusBadRequest)
			return
		}

		body := &gzipBody{original: r.Body, reader: gz}
		defer body.Close()

		r.Body = body
		r.Header.Del("Content-Encoding")
		r.Header.Del("Content-Length")
		r.ContentLength = -1

		next.ServeHTTP(w, r)
	})
}

// gzipBody returns its reader to the pool on Close. Stream corruption is
// reported as errInvalidGzipBody.
type gzipBody struct {
	original io.ReadCloser
	reader   *gzip.Reader
	once     sync.Once
}

func (b *gzipBody) Read(p []byte) (int, error) {
	n, err := b.reader.Read(p)
	if err != nil && !errors.Is(err, io.EOF) {
		err = fmt.Errorf("%w: %w", errInvalidGzipBody, err)
	}
	return n, err
}

func (b *gzipBody) Close() error {
	var err error
	b.once.Do(func() {
		_ = b.reader.Close()
		gzipReaderPool.Put(b.reader)
		err = b.original.Close()
	})
	return err
}
