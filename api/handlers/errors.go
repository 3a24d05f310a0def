package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"board/dto"
	"board/errs"
	"board/internal/logger"
)

// statusByKind is the single error-kind to HTTP status table.
var statusByKind = map[errs.Kind]int{
	errs.KindValidation:     http.StatusBadRequest,
	errs.KindNotFound:       http.StatusNotFound,
	errs.KindAuthentication: http.StatusForbidden,
	errs.KindConflict:       http.StatusConflict,
	errs.KindStore:          http.StatusInternalServerError,
}

// StatusOf returns the HTTP status an error maps to.
func StatusOf(err error) int {
	if status, ok := statusByKind[errs.KindOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// RespondError aborts the request with the mapped status and echoes the error message.
func RespondError(c *gin.Context, err error) {
	status := StatusOf(err)
	if status >= http.StatusInternalServerError {
		logger.ErrorWithFields("request failed", logger.WithRequest(c.Request.Context(), logger.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"error":  err.Error(),
		}))
	}
	c.AbortWithStatusJSON(status, dto.ErrorResponseDTO{
		Error:  err.Error(),
		Fields: errs.FieldsOf(err),
	})
}

// bindJSON decodes the body into v; a malformed body is a validation failure.
func bindJSON(c *gin.Context, v any) bool {
	if err := decodeJSON(c, v); err != nil {
		RespondError(c, err)
		return false
	}
	return true
}

func decodeJSON(c *gin.Context, v any) error {
	if err := c.ShouldBindJSON(v); err != nil {
		return errs.Validation(errs.FieldViolation{Field: "body", Rule: "json"})
	}
	return nil
}

// mergeViolations folds several validation failures into one; nil errors are skipped.
// A failure that is not a validation error is returned as is.
func mergeViolations(errList ...error) error {
	var fields []errs.FieldViolation
	for _, err := range errList {
		if err == nil {
			continue
		}
		if errs.KindOf(err) != errs.KindValidation {
			return err
		}
		fields = append(fields, errs.FieldsOf(err)...)
	}
	if len(fields) == 0 {
		return nil
	}
	return errs.Validation(fields...)
}
