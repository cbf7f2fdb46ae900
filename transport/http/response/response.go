package response

import (
	"encoding/json"
	"net/http"
	"roombook/shared/constant"
	"roombook/shared/failure"
	"roombook/shared/logger"

	"github.com/rs/zerolog/log"
)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithMessage writes {"message": message}.
func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Message{Message: &message})
}

// WithJSON writes {"data": payload}.
func WithJSON(writer http.ResponseWriter, code int, payload any) {
	write(writer, code, Data[any]{Data: &payload})
}

// WithError writes the status and message of err. Errors that are not a
// failure.Failure are reported as a generic internal error.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	if code >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", code).Msg("request failed")
	}

	withStatus(writer, code, failure.GetMessage(err))
}

func WithRequestLimitExceeded(writer http.ResponseWriter) {
	withStatus(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(writer http.ResponseWriter) {
	withStatus(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func WithUnhealthy(writer http.ResponseWriter) {
	withStatus(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func withStatus(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Error{Status: code, Message: message})
}

func write(writer http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
