package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"flavours/shared/constant"
	"flavours/shared/failure"
	"flavours/shared/logger"
)

type Error struct {
	Error string `json:"error"`
}

type FieldErrors struct {
	Errors map[string][]string `json:"errors"`
}

type Message struct {
	Message string `json:"message"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	respond(writer, code, Message{Message: message})
}

// WithJSON sends a response containing the given payload as-is
func WithJSON(writer http.ResponseWriter, code int, payload any) {
	respond(writer, code, payload)
}

// WithError sends an error response shaped by the failure taxonomy: field
// validation errors render one message list per field path, everything else a
// single error string. Internal failures are masked with a generic message so
// no internal detail leaks to the caller.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	if fields := failure.GetFields(err); len(fields) > 0 {
		respond(writer, code, FieldErrors{Errors: fields})

		return
	}

	// Failures are constructed deliberately at API boundaries and carry
	// caller-safe messages; anything else is masked so internal detail
	// never leaks.
	msg := constant.ResponseErrorInternal

	var fail *failure.Failure
	if errors.As(err, &fail) {
		msg = fail.Message
	}

	respond(writer, code, Error{Error: msg})
}

// WithCSV sends a CSV document as a file attachment.
func WithCSV(writer http.ResponseWriter, filename, document string) {
	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeCSV)
	writer.Header().Set(constant.RequestHeaderContentDisposition, "attachment; filename="+filename)
	writer.WriteHeader(http.StatusOK)

	if _, err := writer.Write([]byte(document)); err != nil {
		logger.ErrorWithStack(err)
	}
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func respond(writer http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
