package model

import (
	"encoding/json"
	"time"
)

// IdempotencyKey identifies one idempotent request per resource path.
type IdempotencyKey struct {
	Resource string
	Key      string
}

// IdempotencyCacheEntry is the cached outcome of an idempotent request.
type IdempotencyCacheEntry struct {
	Status          string          `json:"status"`
	RequestBodyHash string          `json:"request_body_hash"`
	Response        json.RawMessage `json:"response,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
