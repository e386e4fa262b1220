package http

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/mani-django09/new-calc-sub000/internal/cache"
)

// ResultCache short-circuits repeat POSTs with an identical body. Every
// calculator is a deterministic pure function, so calculator+body fully
// determines the response. Only 200s are stored.
func ResultCache(c cache.Cache, log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(r.Body)
			if err != nil {
				respondError(w, http.StatusBadRequest, "invalid_request", "read body: "+err.Error(), nil)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			sum := sha256.Sum256(body)
			key := "calc:" + r.URL.Path + ":" + hex.EncodeToString(sum[:])

			if cached, ok := c.Get(r.Context(), key); ok {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("X-Cache", "hit")
				_, _ = w.Write(cached)
				return
			}

			rec := &recordingWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			if rec.status == http.StatusOK {
				if err := c.Set(r.Context(), key, rec.buf.Bytes()); err != nil {
					log.Warn().Err(err).Str("key", key).Msg("result cache store failed")
				}
			}
		})
	}
}

type recordingWriter struct {
	http.ResponseWriter
	buf    bytes.Buffer
	status int
}

func (r *recordingWriter) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *recordingWriter) Write(p []byte) (int, error) {
	r.buf.Write(p)
	return r.ResponseWriter.Write(p)
}
