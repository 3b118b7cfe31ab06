package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"flavours/config"
	"flavours/infras/otel"
	"flavours/internal/domains/booking/model"
	"flavours/shared/constant"
	"flavours/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const scopeName = "repository"

// Booking persists booking records as one JSON file per record, keyed by the
// generated reference. A legacy aggregate file (a single JSON array) from the
// first iteration of the site is still read; per-record files take precedence
// when the same reference appears in both.
type Booking interface {
	Insert(ctx context.Context, booking model.Booking) error
	GetAll(ctx context.Context) []model.Booking
	GetByID(ctx context.Context, id string) (model.Booking, error)
}

type repositoryImpl struct {
	dataDir string
	otel    otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Booking {
	return &repositoryImpl{
		dataDir: cfg.Booking.DataDir,
		otel:    otel,
	}
}

func (r *repositoryImpl) bookingsDir() string {
	return filepath.Join(r.dataDir, constant.StoreDirName)
}

func (r *repositoryImpl) legacyFile() string {
	return filepath.Join(r.dataDir, constant.LegacyStoreFilename)
}

func (r *repositoryImpl) recordFile(id string) string {
	return filepath.Join(r.bookingsDir(), id+constant.StoreFileExt)
}

// Insert durably writes the record under its reference. References are
// generated fresh per submission, so an existing file for the same key is an
// integrity fault, not an overwrite target.
func (r *repositoryImpl) Insert(ctx context.Context, booking model.Booking) error {
	_, scope := r.otel.NewScope(ctx, scopeName, scopeName+".Insert")
	defer scope.End()

	if err := os.MkdirAll(r.bookingsDir(), 0o755); err != nil {
		return fmt.Errorf("creating bookings directory: %w", err)
	}

	payload, err := json.MarshalIndent(booking, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding booking %s: %w", booking.ID, err)
	}

	file, err := os.OpenFile(r.recordFile(booking.ID), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			scope.TraceError(err)

			return failure.Conflict("booking reference collision detected") //nolint:wrapcheck
		}

		return fmt.Errorf("creating booking file %s: %w", booking.ID, err)
	}

	if _, err = file.Write(payload); err != nil {
		file.Close()
		r.discardPartialRecord(booking.ID)

		return fmt.Errorf("writing booking file %s: %w", booking.ID, err)
	}

	if err = file.Sync(); err != nil {
		file.Close()
		r.discardPartialRecord(booking.ID)

		return fmt.Errorf("syncing booking file %s: %w", booking.ID, err)
	}

	if err = file.Close(); err != nil {
		return fmt.Errorf("closing booking file %s: %w", booking.ID, err)
	}

	return nil
}

// GetAll returns the union of the legacy aggregate file and the per-record
// directory. The read path is best-effort: a failing layout contributes no
// records instead of failing the call.
func (r *repositoryImpl) GetAll(ctx context.Context) []model.Booking {
	_, scope := r.otel.NewScope(ctx, scopeName, scopeName+".GetAll")
	defer scope.End()

	legacy := r.readLegacyRecords()
	directory := r.readDirectoryRecords()

	if len(legacy) == 0 {
		return directory
	}

	byID := make(map[string]model.Booking, len(legacy)+len(directory))
	for _, record := range legacy {
		byID[record.ID] = record
	}
	for _, record := range directory {
		byID[record.ID] = record
	}

	records := make([]model.Booking, 0, len(byID))
	for _, record := range byID {
		records = append(records, record)
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].CreatedAt != records[j].CreatedAt {
			return records[i].CreatedAt < records[j].CreatedAt
		}

		return records[i].ID < records[j].ID
	})

	return records
}

// GetByID checks the per-record layout first and falls back to the legacy
// aggregate. Read failures degrade to not-found.
func (r *repositoryImpl) GetByID(ctx context.Context, id string) (model.Booking, error) {
	_, scope := r.otel.NewScope(ctx, scopeName, scopeName+".GetByID")
	defer scope.End()

	// References are UUIDs; rejecting anything else also keeps arbitrary
	// path segments out of the filename below.
	if err := uuid.Validate(id); err != nil {
		return model.Booking{}, failure.NotFound(model.EntityName + " not found") //nolint:wrapcheck
	}

	raw, err := os.ReadFile(r.recordFile(id))
	if err == nil {
		var record model.Booking
		if err = json.Unmarshal(raw, &record); err == nil {
			return record, nil
		}

		log.Warn().Err(err).Str("id", id).Msg("failed to decode booking file, falling back to legacy store")
	}

	for _, record := range r.readLegacyRecords() {
		if record.ID == id {
			return record, nil
		}
	}

	return model.Booking{}, failure.NotFound(model.EntityName + " not found") //nolint:wrapcheck
}

// discardPartialRecord removes a record file left behind by a failed write.
// A truncated document would otherwise poison every later directory scan.
func (r *repositoryImpl) discardPartialRecord(id string) {
	if err := os.Remove(r.recordFile(id)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Str("id", id).Msg("failed to remove partial booking file")
	}
}

func (r *repositoryImpl) readLegacyRecords() []model.Booking {
	raw, err := os.ReadFile(r.legacyFile())
	if err != nil {
		return nil
	}

	var records []model.Booking
	if err := json.Unmarshal(raw, &records); err != nil {
		log.Warn().Err(err).Str("file", r.legacyFile()).Msg("failed to decode legacy bookings file")

		return nil
	}

	return records
}

func (r *repositoryImpl) readDirectoryRecords() []model.Booking {
	entries, err := os.ReadDir(r.bookingsDir())
	if err != nil {
		return nil
	}

	records := make([]model.Booking, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), constant.StoreFileExt) {
			continue
		}

		raw, err := os.ReadFile(filepath.Join(r.bookingsDir(), entry.Name()))
		if err != nil {
			log.Warn().Err(err).Str("file", entry.Name()).Msg("failed to read booking file")

			return nil
		}

		var record model.Booking
		if err := json.Unmarshal(raw, &record); err != nil {
			log.Warn().Err(err).Str("file", entry.Name()).Msg("failed to decode booking file")

			return nil
		}

		records = append(records, record)
	}

	return records
}
