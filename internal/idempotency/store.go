// Package idempotency stores replayable responses keyed by the client's
// Idempotency-Key header.
package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrInFlight = errors.New("request with this idempotency key is still in progress")
	ErrMismatch = errors.New("idempotency key was already used with a different request")
)

type Response struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// record is the value kept under a key. Response is nil while the first
// request is still running.
type record struct {
	Fingerprint string    `json:"fingerprint"`
	Response    *Response `json:"response,omitempty"`
}

type Store struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewStore(rdb redis.Cmdable, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

func (s *Store) Key(scope, key string) string {
	return fmt.Sprintf("idem:%s:%s", scope, key)
}

// Fingerprint identifies a request by caller and body, so a reused key can be
// told apart from a genuine retry.
func Fingerprint(caller string, body []byte) string {
	h := sha256.New()
	h.Write([]byte(caller))
	h.Write([]byte{0})
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}

// Reserve claims key for the current request. It returns (nil, nil) when the
// caller now owns the key, the saved response when the key already completed,
// ErrInFlight while another request holds it and ErrMismatch when the key was
// used with a different fingerprint.
func (s *Store) Reserve(ctx context.Context, key, fingerprint string) (*Response, error) {
	pending, err := json.Marshal(record{Fingerprint: fingerprint})
	if err != nil {
		return nil, fmt.Errorf("encode reservation: %w", err)
	}

	ok, err := s.rdb.SetNX(ctx, key, pending, s.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("reserve idempotency key: %w", err)
	}
	if ok {
		return nil, nil
	}

	val, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// expired between SETNX and GET
			return nil, ErrInFlight
		}
		return nil, fmt.Errorf("get idempotency key: %w", err)
	}

	var rec record
	if err = json.Unmarshal(val, &rec); err != nil {
		return nil, fmt.Errorf("decode saved response: %w", err)
	}
	if rec.Fingerprint != fingerprint {
		return nil, ErrMismatch
	}
	if rec.Response == nil {
		return nil, ErrInFlight
	}
	return rec.Response, nil
}

func (s *Store) Complete(ctx context.Context, key, fingerprint string, resp Response) error {
	b, err := json.Marshal(record{Fingerprint: fingerprint, Response: &resp})
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	if err = s.rdb.Set(ctx, key, b, s.ttl).Err(); err != nil {
		return fmt.Errorf("save response: %w", err)
	}
	return nil
}

// Release frees key so the client can retry after a failed attempt.
func (s *Store) Release(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("release idempotency key: %w", err)
	}
	return nil
}
