package modulesettings

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/cartismo/default-theme/internal/db/controller/override"
	"github.com/cartismo/default-theme/internal/db/controller/store"
	"github.com/cartismo/default-theme/internal/db/models"
)

const (
	fieldStoreID   = "store_id"
	fieldIsEnabled = "is_enabled"
	fieldSettings  = "settings"
)

// SaveInput is an admin save request. Fields stay raw so that type errors
// can be reported per field instead of failing the whole decode.
type SaveInput struct {
	StoreID   json.RawMessage `json:"store_id"`
	IsEnabled json.RawMessage `json:"is_enabled"`
	Settings  json.RawMessage `json:"settings"`
}

// StoreSettings is one store's row in the admin listing.
type StoreSettings[T any] struct {
	Store models.Store `json:"store"`
	Resolved[T]
}

// AdminData is everything the settings screen needs.
type AdminData[T any] struct {
	Module        any                `json:"module"`
	Defaults      T                  `json:"defaults"`
	Stores        []models.Store     `json:"stores"`
	StoreSettings []StoreSettings[T] `json:"store_settings"`
}

// Editor lists and saves store overrides of one module.
type Editor[T any] struct {
	resolver *Resolver[T]
	validate *validator.Validate
}

// NewEditor returns an editor sharing the resolver's definition and database.
func NewEditor[T any](resolver *Resolver[T]) *Editor[T] {
	v := resolver.def.Validator
	if v == nil {
		v = validator.New()
	}

	return &Editor[T]{resolver: resolver, validate: v}
}

// ListForAdmin returns the module info, defaults, the active stores and the
// effective settings of each of them.
func (e *Editor[T]) ListForAdmin(ctx context.Context) (AdminData[T], error) {
	db := e.resolver.db.WithContext(ctx)

	stores, err := store.GetActive(db)
	if err != nil {
		return AdminData[T]{}, fmt.Errorf("list stores: %w", err)
	}

	records, err := override.GetAll(db, e.resolver.def.Slug)
	if err != nil {
		return AdminData[T]{}, fmt.Errorf("list %s overrides: %w", e.resolver.def.Slug, err)
	}

	rows := make([]StoreSettings[T], 0, len(stores))

	for _, s := range stores {
		row := StoreSettings[T]{
			Store: s,
			Resolved: Resolved[T]{
				StoreID:  s.ID,
				Settings: e.resolver.def.Defaults(),
				Enabled:  DefaultEnabled,
				Override: Document{},
			},
		}

		if record, ok := records[s.ID]; ok {
			row.Resolved, err = e.resolver.fromRecord(&record)
			if err != nil {
				return AdminData[T]{}, err
			}
		}

		rows = append(rows, row)
	}

	return AdminData[T]{
		Module:        e.resolver.def.Manifest,
		Defaults:      e.resolver.def.Defaults(),
		Stores:        stores,
		StoreSettings: rows,
	}, nil
}

// Save validates in and upserts the store override. Partial settings are
// merged over the existing override so successive saves accumulate. On any
// validation failure a *ValidationError is returned and nothing is written.
func (e *Editor[T]) Save(ctx context.Context, in SaveInput) (Resolved[T], error) {
	verr := newValidationError()

	storeID, storeOK := parseStoreID(in.StoreID, verr)
	enabled, enabledSet := parseEnabled(in.IsEnabled, verr)
	partial, settingsSet := e.parseSettings(in.Settings, verr)

	db := e.resolver.db.WithContext(ctx)

	if storeOK {
		exists, err := store.Exists(db, storeID)
		if err != nil {
			return Resolved[T]{}, fmt.Errorf("check store %d: %w", storeID, err)
		}
		if !exists {
			verr.add(fieldStoreID, "The selected store id is invalid.")
		}
	}

	if !verr.empty() {
		return Resolved[T]{}, verr
	}

	var result Resolved[T]

	err := db.Transaction(func(tx *gorm.DB) error {
		current, err := e.resolver.resolveStore(tx, storeID)
		if err != nil {
			return err
		}

		if !enabledSet {
			enabled = current.Enabled
		}

		merged := current.Override
		if settingsSet {
			merged = Merge(current.Override, partial)
		}

		settings, err := Apply(e.resolver.def.Defaults(), merged)
		if err != nil {
			var typeErr *json.UnmarshalTypeError
			if !errors.As(err, &typeErr) || typeErr.Field == "" {
				return err
			}

			verr.add(fieldSettings+"."+typeErr.Field, "is invalid")

			return verr
		}

		if err = e.validate.Struct(settings); err != nil {
			var fieldErrs validator.ValidationErrors
			if !errors.As(err, &fieldErrs) {
				return err
			}

			for _, fe := range fieldErrs {
				verr.add(settingsPath(fe.Namespace()), fieldMessage(fe))
			}

			return verr
		}

		raw, err := json.Marshal(merged)
		if err != nil {
			return err
		}

		record, err := override.Set(tx, e.resolver.def.Slug, storeID, enabled, raw)
		if err != nil {
			return fmt.Errorf("save %s override for store %d: %w", e.resolver.def.Slug, storeID, err)
		}

		result, err = e.resolver.fromRecord(record)

		return err
	})
	if err != nil {
		return Resolved[T]{}, err
	}

	log.Debug().
		Str("module", e.resolver.def.Slug).
		Uint64("store_id", storeID).
		Bool("is_enabled", result.Enabled).
		Int("override_sections", len(result.Override)).
		Msg("module settings saved")

	return result, nil
}

func (e *Editor[T]) parseSettings(raw json.RawMessage, verr *ValidationError) (Document, bool) {
	if isAbsent(raw) {
		return nil, false
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil || doc == nil {
		verr.add(fieldSettings, "The settings field must be an object.")
		return nil, false
	}

	for path, msg := range Check(e.resolver.def.settingsType(), doc, fieldSettings) {
		verr.add(path, msg)
	}

	return doc, true
}

func parseStoreID(raw json.RawMessage, verr *ValidationError) (uint64, bool) {
	if isAbsent(raw) {
		verr.add(fieldStoreID, "The store id field is required.")
		return 0, false
	}

	var value any

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	if err := dec.Decode(&value); err != nil {
		verr.add(fieldStoreID, "The store id field must be an integer.")
		return 0, false
	}

	var text string

	switch v := value.(type) {
	case json.Number:
		text = v.String()
	case string:
		text = strings.TrimSpace(v)
		if text == "" {
			verr.add(fieldStoreID, "The store id field is required.")
			return 0, false
		}
	default:
		verr.add(fieldStoreID, "The store id field must be an integer.")
		return 0, false
	}

	// ids are bound as signed 64-bit integers by every supported driver
	id, err := strconv.ParseInt(text, 10, 64)
	switch {
	case errors.Is(err, strconv.ErrRange), err == nil && id < 0:
		verr.add(fieldStoreID, "The selected store id is invalid.")
		return 0, false
	case err != nil:
		verr.add(fieldStoreID, "The store id field must be an integer.")
		return 0, false
	}

	return uint64(id), true
}

// parseEnabled accepts true, false, 1, 0, "1" and "0".
func parseEnabled(raw json.RawMessage, verr *ValidationError) (bool, bool) {
	if isAbsent(raw) {
		return false, false
	}

	switch strings.TrimSpace(string(raw)) {
	case "true", "1", `"1"`:
		return true, true
	case "false", "0", `"0"`:
		return false, true
	default:
		verr.add(fieldIsEnabled, "The is enabled field must be true or false.")
		return false, false
	}
}

func isAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// settingsPath turns a validator namespace like "Settings.layout.header_style"
// into "settings.layout.header_style".
func settingsPath(namespace string) string {
	_, rest, found := strings.Cut(namespace, ".")
	if !found {
		return fieldSettings
	}

	return fieldSettings + "." + rest
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "hexcolor":
		return "must be a hex color such as #4F46E5"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "may not be greater than " + fe.Param()
	case "fontsize":
		return "must be a CSS size such as 16px or 1rem"
	default:
		return "is invalid (" + fe.Tag() + ")"
	}
}
