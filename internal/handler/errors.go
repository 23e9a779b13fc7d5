package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/diones-souza/test-snaty/internal/domain"
	"github.com/diones-souza/test-snaty/internal/handler/gen"
)

// Error bodies are plain text so clients can show the message as is.

const internalErrorMessage = "Erro interno do servidor"

// StrictOptions returns the error handlers used by the generated strict
// server. Request errors come from body decoding; response errors are the
// unexpected errors a handler method returns.
func StrictOptions() gen.StrictHTTPServerOptions {
	return gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  requestError,
		ResponseErrorHandlerFunc: responseError,
	}
}

// NewStrictHandler adapts s to the generated router interface.
// Mount it with gen.Handler.
func NewStrictHandler(s *Server) gen.ServerInterface {
	return gen.NewStrictHandlerWithOptions(s, nil, StrictOptions())
}

func requestError(w http.ResponseWriter, _ *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		http.Error(w, "Corpo da requisição muito grande", http.StatusRequestEntityTooLarge)
		return
	}
	http.Error(w, "Corpo da requisição inválido", http.StatusBadRequest)
}

// responseError logs the cause and hides it from the client.
func responseError(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	http.Error(w, internalErrorMessage, http.StatusInternalServerError)
}

// unwrapMessage extracts the human-readable part after a wrapped sentinel.
// e.g. "service.X.Start: validation error: kmInicial ..." → "kmInicial ..."
func unwrapMessage(err, sentinel error) string {
	msg := err.Error()
	prefix := sentinel.Error() + ": "
	if i := strings.Index(msg, prefix); i >= 0 {
		return msg[i+len(prefix):]
	}
	return msg
}

func validationMessage(err error) string { return unwrapMessage(err, domain.ErrValidation) }

func conflictMessage(err error) string { return unwrapMessage(err, domain.ErrConflict) }
