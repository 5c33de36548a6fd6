package responses

import (
	"errors"
	"net/http"

	"timetable-backend/internal/apperrors"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func Success(c *gin.Context, statusCode int, data interface{}, message string) {
	c.JSON(statusCode, APIResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

func Fail(c *gin.Context, statusCode int, err error, message string) {
	resp := APIResponse{
		Status:  "error",
		Message: message,
	}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(statusCode, resp)
}

// FailError maps the error taxonomy onto HTTP status codes. Uniqueness is
// answered like a conflict: the caller treats both the same way.
func FailError(c *gin.Context, err error, message string) {
	Fail(c, statusFor(err), err, message)
}

func statusFor(err error) int {
	var (
		validationErr *apperrors.ValidationError
		conflictErr   *apperrors.ConflictError
		uniquenessErr *apperrors.UniquenessError
		notFoundErr   *apperrors.NotFoundError
		referencedErr *apperrors.ReferencedError
	)

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &conflictErr), errors.As(err, &uniquenessErr), errors.As(err, &referencedErr):
		return http.StatusConflict
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
