package httperr

import (
	"net/http"

	"dealer-contracts/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const (
	CodeValidation    = "validation_error"
	CodeNotFound      = "not_found"
	CodeExpired       = "expired"
	CodeAlreadySigned = "already_signed"
	CodeRevoked       = "revoked"
	CodeConflict      = "conflict"
	CodeRenderFailed  = "render_failed"
	CodeStorageDown   = "storage_unavailable"
	CodeInternal      = "internal_error"
	msgInternal       = "Internal server error"
	msgStorageDown    = "Storage is temporarily unavailable"
)

// Classify maps an error category to a status and code. Categories are
// checked from most to least specific because errors can carry several.
func Classify(err error) (int, string) {
	switch {
	case errs.Is(err, errs.ErrExpired):
		return http.StatusGone, CodeExpired
	case errs.Is(err, errs.ErrRevoked):
		return http.StatusGone, CodeRevoked
	case errs.Is(err, errs.ErrAlreadyCompleted):
		return http.StatusConflict, CodeAlreadySigned
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound, CodeNotFound
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest, CodeValidation
	case errs.Is(err, errs.ErrConflict):
		return http.StatusConflict, CodeConflict
	case errs.Is(err, errs.ErrRender):
		return http.StatusInternalServerError, CodeRenderFailed
	case errs.Is(err, errs.ErrStorage):
		return http.StatusServiceUnavailable, CodeStorageDown
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}

// AbortWithUseCaseError answers with the status of err's category. Client
// errors expose the message; server errors do not.
func AbortWithUseCaseError(c *gin.Context, err error, detail any) {
	status, code := Classify(err)
	msg := err.Error()
	switch {
	case status == http.StatusServiceUnavailable:
		msg = msgStorageDown
	case status >= http.StatusInternalServerError:
		msg = msgInternal
	}
	AbortWithCode(c, status, err, code, msg, detail)
}
