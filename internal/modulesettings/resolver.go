package modulesettings

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/cartismo/default-theme/internal/db/controller/override"
	"github.com/cartismo/default-theme/internal/db/models"
)

// Resolved is the effective configuration of a module for one store.
type Resolved[T any] struct {
	StoreID uint64 `json:"store_id"`
	// Settings are the defaults with the store override applied.
	Settings T `json:"settings"`
	// Enabled is the store's flag, DefaultEnabled without an override.
	Enabled bool `json:"is_enabled"`
	// Overridden reports whether an override record exists.
	Overridden bool `json:"overridden"`
	// Override is the sparse stored document after pruning.
	Override Document `json:"-"`
}

// Resolver computes effective settings from defaults and stored overrides.
type Resolver[T any] struct {
	def Definition[T]
	db  *gorm.DB
}

// NewResolver returns a resolver for def backed by db.
func NewResolver[T any](db *gorm.DB, def Definition[T]) (*Resolver[T], error) {
	if db == nil {
		return nil, override.ErrDBNil
	}
	if err := def.validate(); err != nil {
		return nil, err
	}

	return &Resolver[T]{def: def, db: db}, nil
}

// Slug returns the module slug.
func (r *Resolver[T]) Slug() string {
	return r.def.Slug
}

// Defaults returns the static defaults.
func (r *Resolver[T]) Defaults() T {
	return r.def.Defaults()
}

// Resolve returns the effective settings for storeID. A nil storeID yields
// the defaults unchanged, as does a store without an override. Unknown
// stores are not an error.
func (r *Resolver[T]) Resolve(ctx context.Context, storeID *uint64) (T, error) {
	if storeID == nil {
		return r.def.Defaults(), nil
	}

	res, err := r.ResolveStore(ctx, *storeID)
	if err != nil {
		var zero T
		return zero, err
	}

	return res.Settings, nil
}

// ResolveStore returns the effective settings of storeID together with its
// enabled flag and whether an override exists.
func (r *Resolver[T]) ResolveStore(ctx context.Context, storeID uint64) (Resolved[T], error) {
	return r.resolveStore(r.db.WithContext(ctx), storeID)
}

func (r *Resolver[T]) resolveStore(db *gorm.DB, storeID uint64) (Resolved[T], error) {
	record, err := override.Get(db, r.def.Slug, storeID)
	if err != nil {
		if errors.Is(err, override.ErrOverrideNotFound) {
			return Resolved[T]{
				StoreID:  storeID,
				Settings: r.def.Defaults(),
				Enabled:  DefaultEnabled,
				Override: Document{},
			}, nil
		}

		return Resolved[T]{}, fmt.Errorf("load %s override for store %d: %w", r.def.Slug, storeID, err)
	}

	return r.fromRecord(record)
}

func (r *Resolver[T]) fromRecord(record *models.InstalledModule) (Resolved[T], error) {
	doc := r.storedDocument(record)

	settings, err := Apply(r.def.Defaults(), doc)
	if err != nil {
		return Resolved[T]{}, fmt.Errorf("merge %s override for store %d: %w", r.def.Slug, record.StoreID, err)
	}

	return Resolved[T]{
		StoreID:    record.StoreID,
		Settings:   settings,
		Enabled:    record.IsEnabled,
		Overridden: true,
		Override:   doc,
	}, nil
}

// storedDocument decodes and prunes the override of record. A corrupt
// document is logged and treated as empty.
func (r *Resolver[T]) storedDocument(record *models.InstalledModule) Document {
	doc, err := ParseDocument(record.Settings)
	if err != nil {
		log.Warn().Err(err).
			Str("module", r.def.Slug).
			Uint64("store_id", record.StoreID).
			Msg("stored settings are not a JSON object, ignoring override")

		return Document{}
	}

	pruned, dropped := Prune(r.def.settingsType(), doc)
	if len(dropped) > 0 {
		log.Warn().
			Str("module", r.def.Slug).
			Uint64("store_id", record.StoreID).
			Strs("keys", dropped).
			Msg("dropping stored settings unknown to the module")
	}

	return pruned
}
