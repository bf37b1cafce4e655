package idempotency

import (
	"time"

	"encore.dev/storage/cache"

	"encore.app/accounts/model"
)

// SyncIdempotencyCluster backs idempotent handling of sync dispatches.
var SyncIdempotencyCluster = cache.NewCluster("sync-idempotency-cluster", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// SyncIdempotencyCache stores one entry per resource path + idempotency key.
var SyncIdempotencyCache = cache.NewStructKeyspace[model.IdempotencyKey, model.IdempotencyCacheEntry](
	SyncIdempotencyCluster,
	cache.KeyspaceConfig{
		KeyPattern:    "idempotency/:Resource/:Key",
		DefaultExpiry: cache.ExpireIn(24 * time.Hour),
	},
)
