package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studenthub/examgate/internal/auth"
	"github.com/studenthub/examgate/internal/dto"
	"github.com/studenthub/examgate/internal/examapi"
	"github.com/studenthub/examgate/internal/middleware"
	"github.com/studenthub/examgate/internal/service"
	"github.com/studenthub/examgate/internal/session"
)

// ErrorWriter maps service errors onto HTTP responses. Every failure ends in
// a visible message and a retry-eligible state; nothing here is fatal. A
// remote 401 additionally clears the caller's stored identity, so the next
// request fails authentication and the UI redirects to login.
type ErrorWriter struct {
	Auth service.AuthService
}

func NewErrorWriter(authService service.AuthService) ErrorWriter {
	return ErrorWriter{Auth: authService}
}

func (w ErrorWriter) Write(c *gin.Context, err error, fallback string) {
	var validationErr *service.ValidationError
	var remoteErr *examapi.RemoteError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: validationErr.Error()})
	case errors.Is(err, examapi.ErrUnauthorized):
		if ac := middleware.AuthContext(c); ac != nil {
			w.Auth.Clear(ac.Key)
		}
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Your session has expired, please log in again"})
	case errors.Is(err, auth.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Your session has expired, please log in again"})
	case errors.Is(err, session.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Exam session not found"})
	case errors.Is(err, session.ErrUnknownQuestion),
		errors.Is(err, session.ErrIndexOutOfRange),
		errors.Is(err, service.ErrWrongStep),
		errors.Is(err, service.ErrDeleteNotConfirmed):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
	case errors.As(err, &remoteErr):
		message := remoteErr.Message
		if message == "" {
			message = fallback
		}
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Message: message})
	case errors.Is(err, examapi.ErrUnexpectedShape):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Message: fallback, Details: []string{err.Error()}})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: fallback, Details: []string{err.Error()}})
	}
}
