package middleware

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stpnv0/HotelBooker/internal/idempotency"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const HeaderIdempotencyKey = "Idempotency-Key"

type IdempotencyStore interface {
	Key(scope, key string) string
	Reserve(ctx context.Context, key, fingerprint string) (*idempotency.Response, error)
	Complete(ctx context.Context, key, fingerprint string, resp idempotency.Response) error
	Release(ctx context.Context, key string) error
}

// Idempotency replays the first completed response for a repeated Idempotency-Key.
// A key reused by another caller or with another body is rejected with 422.
// Requests without the header pass through. A nil store disables the middleware.
func Idempotency(store IdempotencyStore, log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		clientKey := c.GetHeader(HeaderIdempotencyKey)
		if store == nil || clientKey == "" {
			c.Next()
			return
		}

		var body []byte
		if c.Request.Body != nil {
			var err error
			if body, err = io.ReadAll(c.Request.Body); err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, ginext.H{"error": "failed to read request body"})
				return
			}
			c.Request.Body = io.NopCloser(bytes.NewReader(body))
		}

		ctx := context.WithoutCancel(c.Request.Context())
		key := store.Key(c.Request.Method+":"+c.Request.URL.Path, clientKey)
		fingerprint := idempotency.Fingerprint(Identity(c), body)

		saved, err := store.Reserve(ctx, key, fingerprint)
		switch {
		case errors.Is(err, idempotency.ErrInFlight):
			c.AbortWithStatusJSON(http.StatusConflict, ginext.H{"error": err.Error()})
			return
		case errors.Is(err, idempotency.ErrMismatch):
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, ginext.H{"error": err.Error()})
			return
		case err != nil:
			log.Error("idempotency store unavailable",
				logger.String("key", clientKey),
				logger.String("error", err.Error()),
			)
			c.Next()
			return
		case saved != nil:
			c.Header("Idempotent-Replayed", "true")
			c.Data(saved.Status, saved.ContentType, saved.Body)
			c.Abort()
			return
		}

		// A panicking handler never reaches the status check below; the key is
		// released on the way out and the panic keeps unwinding to Recovery.
		finished := false
		defer func() {
			if finished {
				return
			}
			if err := store.Release(ctx, key); err != nil {
				log.Error("failed to release idempotency key",
					logger.String("key", clientKey),
					logger.String("error", err.Error()),
				)
			}
		}()

		rec := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = rec
		c.Next()
		finished = true

		if status := rec.Status(); status >= http.StatusInternalServerError {
			err = store.Release(ctx, key)
		} else {
			err = store.Complete(ctx, key, fingerprint, idempotency.Response{
				Status:      status,
				ContentType: rec.Header().Get("Content-Type"),
				Body:        rec.body.Bytes(),
			})
		}
		if err != nil {
			log.Error("failed to finish idempotent request",
				logger.String("key", clientKey),
				logger.String("error", err.Error()),
			)
		}
	}
}

type bodyRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (r *bodyRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *bodyRecorder) WriteString(s string) (int, error) {
	r.body.WriteString(s)
	return r.ResponseWriter.WriteString(s)
}
