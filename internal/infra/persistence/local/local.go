// Package local contains the concrete implementation of the persistence
// layer on top of the string-keyed snapshot store. The key names are the
// on-disk format and must not change.
package local

import (
	"context"
	"encoding/json"
	"log/slog"

	"agroalerta/internal/errors"
	"agroalerta/internal/infra/kvstore"
)

// Storage keys. These mirror the browser local-storage keys of the original
// platform so existing exported snapshots stay readable.
const (
	keyFormDraft       = "agriculturalForm"
	keyProfile         = "registeredUser"
	keyDemoUser        = "demoUser"
	keySession         = "climaAlert_user"
	keyCrops           = "crops"
	keyRecommendations = "recommendations"
	keyLanguage        = "language"
	keyOfflineMode     = "offlineMode"
)

// loadSnapshot decodes the blob under key into a fresh T. A corrupted blob is
// discarded and reported as absent: local-first storage degrades to defaults
// instead of surfacing parse failures to the user.
func loadSnapshot[T any](ctx context.Context, store kvstore.Store, logger *slog.Logger, key string) (*T, error) {
	raw, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, kvstore.ErrKeyNotFound
		}

		return nil, errors.Wrapf(err, "failed to load snapshot %s", key)
	}

	value := new(T)
	if err := json.Unmarshal(raw, value); err != nil {
		logger.Warn("Discarding corrupted snapshot", slog.String("key", key), slog.Any("error", err))
		if delErr := store.Delete(ctx, key); delErr != nil {
			logger.Warn("Failed to discard corrupted snapshot", slog.String("key", key), slog.Any("error", delErr))
		}

		return nil, kvstore.ErrKeyNotFound
	}

	return value, nil
}

// saveSnapshot encodes value and stores it under key.
func saveSnapshot[T any](ctx context.Context, store kvstore.Store, key string, value *T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to encode snapshot %s", key)
	}

	if err := store.Set(ctx, key, raw); err != nil {
		return errors.Wrapf(err, "failed to store snapshot %s", key)
	}

	return nil
}
