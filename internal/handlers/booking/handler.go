package booking

import (
	"encoding/json"
	"errors"
	"net/http"

	"flavours/infras/otel"
	"flavours/internal/domains/booking/model/dto"
	"flavours/internal/domains/booking/service"
	"flavours/shared/constant"
	"flavours/shared/failure"
	"flavours/shared/validator"
	"flavours/transport/http/middleware"
	"flavours/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Booking
	middleware middleware.AppMiddleware
	otel       otel.Otel
}

func New(service service.Booking, middleware middleware.AppMiddleware, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.With(handler.middleware.RateLimit).Post("/", handler.SubmitBooking)
		routerGroup.With(handler.middleware.AdminKey).Get("/export", handler.ExportBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
	})
}

// SubmitBooking runs the booking intake pipeline: coerce the loosely-typed
// payload, validate, then hand off to the service. Validation failures come
// back as one message list per field path with a client-error status.
func (handler *Handler) SubmitBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitBooking")
	defer scope.End()

	var payload map[string]any
	if err := json.NewDecoder(request.Body).Decode(&payload); err != nil {
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(writer, failure.BadRequestFromString("invalid JSON body"))

		return
	}

	req := dto.BookingRequestFromPayload(payload)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Info().Err(err).Msg("booking submission failed validation")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking submitted with reference " + res.Ref)

	response.WithJSON(writer, http.StatusOK, res)
}

// GetBookingByID returns the stored record for the confirmation page.
func (handler *Handler) GetBookingByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Info().Err(err).Str("id", id).Msg("booking lookup failed")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, booking)
}

// ExportBookings streams every stored booking as a CSV attachment.
func (handler *Handler) ExportBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportBookings")
	defer scope.End()

	document, err := handler.service.ExportCSV(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export bookings")

		response.WithError(writer, failure.InternalError(errors.New(constant.ResponseErrorExport)))

		return
	}

	response.WithCSV(writer, constant.ExportFilename, document)
}
