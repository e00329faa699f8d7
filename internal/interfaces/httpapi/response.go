package httpapi

import (
	"context"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-career/internal/usecase"
)

const (
	googleAPIVersion   = "2.0"
	errorDomain        = "football-career"
	internalErrMessage = "internal server error"
)

// envelope follows the Google JSON style guide: exactly one of data or error.
type envelope struct {
	APIVersion string     `json:"apiVersion"`
	Data       any        `json:"data,omitempty"`
	Error      *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Status  string      `json:"status"`
	Errors  []errorItem `json:"errors,omitempty"`
}

type errorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type errorClass struct {
	sentinel   error
	httpStatus int
	reason     string
	status     string
}

// Checked in order; the first sentinel found in the chain wins.
var errorClasses = []errorClass{
	{usecase.ErrInvalidInput, http.StatusBadRequest, "invalidInput", "INVALID_ARGUMENT"},
	{usecase.ErrNotFound, http.StatusNotFound, "notFound", "NOT_FOUND"},
	{usecase.ErrUnauthorized, http.StatusUnauthorized, "unauthorized", "UNAUTHENTICATED"},
	{usecase.ErrDependencyUnavailable, http.StatusServiceUnavailable, "dependencyUnavailable", "UNAVAILABLE"},
}

var internalClass = errorClass{httpStatus: http.StatusInternalServerError, reason: "internalError", status: "INTERNAL"}

func classifyError(err error) errorClass {
	for _, c := range errorClasses {
		if errors.Is(err, c.sentinel) {
			return c
		}
	}
	return internalClass
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	_, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	writeJSON(ctx, w, status, envelope{APIVersion: googleAPIVersion, Data: data})
}

// writeError maps err onto the envelope. Unclassified errors are reported
// as a generic internal error so driver messages never reach clients.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	class := classifyError(err)
	msg := internalErrMessage
	if class.sentinel != nil {
		msg = err.Error()
	}
	writeProblem(ctx, w, class, msg)
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeProblem(ctx, w, internalClass, internalErrMessage)
}

func writeProblem(ctx context.Context, w http.ResponseWriter, class errorClass, msg string) {
	writeJSON(ctx, w, class.httpStatus, envelope{
		APIVersion: googleAPIVersion,
		Error: &errorBody{
			Code:    class.httpStatus,
			Message: msg,
			Status:  class.status,
			Errors:  []errorItem{{Domain: errorDomain, Reason: class.reason, Message: msg}},
		},
	})
}
