package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"flavours/config"
	"flavours/infras/otel"
	"flavours/internal/domains/booking/model"
	"flavours/internal/domains/booking/model/dto"
	"flavours/internal/domains/booking/pricing"
	"flavours/internal/domains/booking/repository"
	"flavours/shared/constant"

	"github.com/rs/zerolog/log"
)

// exportHeaders is the fixed column order of the CSV export.
var exportHeaders = []string{
	"ref",
	"createdAt",
	"neighborhood",
	"date",
	"time",
	"partySize",
	"mealBudgetPerPersonMax",
	"wineIncluded",
	"wineBudgetPerPersonMax",
	"dietaryRestrictions",
	"accessibilityNotes",
	"bookerName",
	"bookerEmail",
	"phoneNumbers",
}

type Booking interface {
	Submit(ctx context.Context, req dto.BookingRequest) (dto.SubmitBookingResponse, error)
	Get(ctx context.Context, id string) (model.Booking, error)
	ExportCSV(ctx context.Context) (string, error)
}

type serviceImpl struct {
	repo repository.Booking
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Booking, cfg *config.Config, otel otel.Otel) Booking {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

// Submit runs the intake pipeline on an already-validated request: sanitize,
// price, persist under a fresh reference, and build the confirmation payload.
func (s *serviceImpl) Submit(ctx context.Context, req dto.BookingRequest) (res dto.SubmitBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	req.Sanitize()

	totals := pricing.ComputeTotals(
		req.Party.PartySize,
		req.Pricing.MealBudgetPerPersonMax,
		req.Pricing.WinePairings.Include,
		req.Pricing.WinePairings.BudgetPerPersonMax,
	)

	booking := req.ToModel(totals)

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to persist booking")

		return res, fmt.Errorf("failed to persist booking: %w", err)
	}

	scope.AddEvent("Booking persisted with reference " + booking.ID)

	return dto.NewSubmitBookingResponse(booking.ID), nil
}

// Get looks up a stored booking for the confirmation page.
func (s *serviceImpl) Get(ctx context.Context, id string) (model.Booking, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()

	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		scope.TraceError(err)

		return model.Booking{}, err //nolint:wrapcheck
	}

	return booking, nil
}

// ExportCSV projects every stored record onto the fixed export columns.
// Missing optional fields render as empty strings; the export never fails on
// data shape.
func (s *serviceImpl) ExportCSV(ctx context.Context) (string, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExportCSV")
	defer scope.End()

	records := s.repo.GetAll(ctx)

	var builder strings.Builder
	writer := csv.NewWriter(&builder)

	if err := writer.Write(exportHeaders); err != nil {
		return constant.Empty, fmt.Errorf("writing export header: %w", err)
	}

	for _, record := range records {
		if err := writer.Write(exportRow(record)); err != nil {
			return constant.Empty, fmt.Errorf("writing export row %s: %w", record.ID, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return constant.Empty, fmt.Errorf("flushing export: %w", err)
	}

	return builder.String(), nil
}

func exportRow(record model.Booking) []string {
	wineBudget := constant.Empty
	if record.Pricing.WinePairings.Include && record.Pricing.WinePairings.BudgetPerPersonMax != nil {
		wineBudget = formatAmount(*record.Pricing.WinePairings.BudgetPerPersonMax)
	}

	return []string{
		record.ID,
		record.CreatedAt,
		record.Contact.Neighborhood,
		record.Contact.Date,
		record.Contact.Time,
		strconv.Itoa(record.Party.PartySize),
		formatAmount(record.Pricing.MealBudgetPerPersonMax),
		strconv.FormatBool(record.Pricing.WinePairings.Include),
		wineBudget,
		record.Preferences.DietaryRestrictions,
		record.Party.AccessibilityNotes,
		record.Contact.BookerName,
		record.Contact.BookerEmail,
		strings.Join(record.Contact.PartyPhoneNumbers, ";"),
	}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
