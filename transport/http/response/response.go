package response

import (
	"encoding/json"
	"fmt"
	"lodging/shared/constant"
	"lodging/shared/failure"
	"lodging/shared/logger"
	"net/http"
	"strconv"
)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error    *string  `json:"error,omitempty"`
	Category string   `json:"category,omitempty"`
	Details  []string `json:"details,omitempty"`
	Form     any      `json:"form,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithJSON sends a response containing a JSON object
func WithJSON(writer http.ResponseWriter, code int, jsonPayload interface{}) {
	response(writer, code, Data[any]{Data: &jsonPayload})
}

// WithError sends a response with an error message
func WithError(writer http.ResponseWriter, err error) {
	WithFormError(writer, err, nil)
}

// WithFormError sends the error together with the submitted form so a client can re-display it.
func WithFormError(writer http.ResponseWriter, err error, form any) {
	code := failure.GetCode(err)
	errMsg := err.Error()

	if code == http.StatusInternalServerError && failure.GetCategory(err) == "" {
		errMsg = constant.ResponseErrorInternal
	}

	response(writer, code, Error{
		Error:    &errMsg,
		Category: string(failure.GetCategory(err)),
		Details:  failure.GetDetails(err),
		Form:     form,
	})
}

// WithFile sends data as a download named fileName.
func WithFile(writer http.ResponseWriter, fileName, contentType string, data []byte) {
	writer.Header().Set(constant.RequestHeaderContentType, contentType)
	writer.Header().Set(constant.RequestHeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	writer.Header().Set(constant.RequestHeaderContentLength, strconv.Itoa(len(data)))
	writer.WriteHeader(http.StatusOK)

	if _, err := writer.Write(data); err != nil {
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

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
