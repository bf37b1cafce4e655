package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
	"encore.dev/storage/cache"

	"encore.app/accounts/model"
)

const HeaderName = "X-Idempotency-Key"

const (
	statusProcessing = "processing"
	statusCompleted  = "completed"
)

// Middleware makes tagged endpoints safe to retry: a repeated dispatch with
// the same key returns the cached response instead of enqueueing a second
// task, and concurrent duplicates are rejected while the first is in flight.
//
//encore:middleware target=tag:idempotency
func Middleware(req middleware.Request, next middleware.Next) middleware.Response {
	key, err := extractKey(req)
	if err != nil {
		return middleware.Response{Err: err}
	}

	cacheKey := model.IdempotencyKey{
		Resource: req.Data().Path,
		Key:      key,
	}
	bodyHash := hashPayload(req)

	entry, cacheErr := SyncIdempotencyCache.Get(req.Context(), cacheKey)
	if cacheErr != nil {
		if !errors.Is(cacheErr, cache.Miss) {
			return middleware.Response{
				Err: &errs.Error{Code: errs.Internal, Message: "failed to check idempotency"},
			}
		}
		return runAndRecord(req, next, cacheKey, bodyHash)
	}

	if entry.RequestBodyHash != "" && bodyHash != "" && entry.RequestBodyHash != bodyHash {
		return middleware.Response{
			Err: &errs.Error{Code: errs.InvalidArgument, Message: "idempotency key reused with a different request body"},
		}
	}

	switch entry.Status {
	case statusProcessing:
		rlog.Info("duplicate request still in flight", "key", key)
		return middleware.Response{
			Err: &errs.Error{Code: errs.Aborted, Message: "request is already being processed"},
		}
	case statusCompleted:
		if resp, ok := replay(req, entry); ok {
			rlog.Info("returning cached response", "key", key)
			return resp
		}
		return next(req)
	default:
		rlog.Warn("unknown idempotency entry status, processing as new request", "key", key, "status", entry.Status)
		return next(req)
	}
}

// runAndRecord processes a first-seen request, caching the outcome on success
// and clearing the processing marker on failure so a retry can go through.
func runAndRecord(req middleware.Request, next middleware.Next, cacheKey model.IdempotencyKey, bodyHash string) middleware.Response {
	if err := SyncIdempotencyCache.Set(req.Context(), cacheKey, model.IdempotencyCacheEntry{
		Status:    statusProcessing,
		CreatedAt: time.Now(),
	}); err != nil {
		rlog.Error("failed to mark request as processing", "error", err)
		return middleware.Response{Err: &errs.Error{Code: errs.Internal, Message: "failed to mark request as processing"}}
	}

	response := next(req)

	if response.Err != nil {
		clearEntry(req.Context(), cacheKey)
		return response
	}

	entry := model.IdempotencyCacheEntry{
		Status:          statusCompleted,
		RequestBodyHash: bodyHash,
		UpdatedAt:       time.Now(),
	}
	if response.Payload != nil {
		payload, err := json.Marshal(response.Payload)
		if err != nil {
			rlog.Error("failed to marshal response payload for caching", "error", err)
			return response
		}
		entry.Response = payload
	}
	if err := SyncIdempotencyCache.Set(req.Context(), cacheKey, entry); err != nil {
		rlog.Error("failed to cache response", "error", err)
	}
	return response
}

// replay reconstructs a cached response in the endpoint's response type.
func replay(req middleware.Request, entry model.IdempotencyCacheEntry) (middleware.Response, bool) {
	if len(entry.Response) == 0 {
		return middleware.Response{}, false
	}
	responseType := req.Data().API.ResponseType
	if responseType == nil {
		return middleware.Response{}, false
	}
	value := reflect.New(responseType.Elem()).Interface()
	if err := json.Unmarshal(entry.Response, value); err != nil {
		rlog.Error("failed to unmarshal cached response", "error", err)
		return middleware.Response{}, false
	}
	return middleware.Response{Payload: value}, true
}

func extractKey(req middleware.Request) (string, *errs.Error) {
	var key string
	if headers := req.Data().Headers; headers != nil {
		key = strings.TrimSpace(headers.Get(HeaderName))
	}
	if key == "" {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: "X-Idempotency-Key header is required"}
	}
	return key, nil
}

func hashPayload(req middleware.Request) string {
	payload := req.Data().Payload
	if payload == nil {
		return ""
	}
	body, err := json.Marshal(payload)
	if err != nil {
		rlog.Error("failed to marshal request body", "error", err)
		return ""
	}
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

func clearEntry(ctx context.Context, cacheKey model.IdempotencyKey) {
	if _, err := SyncIdempotencyCache.Delete(ctx, cacheKey); err != nil {
		rlog.Error("failed to clear failed request from cache", "error", err)
	}
}
