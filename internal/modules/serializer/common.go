package serializer

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/DarshanR43/satchi/internal/pkg/apperr"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var log = zap.NewNop()

// SetLogger wires the logger used for server-side error reporting.
// Responses may hide detail in release mode; the log never does.
func SetLogger(l *zap.Logger) {
	if l != nil {
		log = l
	}
}

// Response is the common envelope for every endpoint.
type Response struct {
	Code  int         `json:"code"`
	Data  interface{} `json:"data,omitempty"`
	Msg   string      `json:"msg"`
	Field string      `json:"field,omitempty"`
	Error string      `json:"error,omitempty"`
}

// Err builds an error response; raw error detail is only exposed
// outside release mode.
func Err(errCode int, msg string, err error) Response {
	res := Response{
		Code: errCode,
		Msg:  msg,
	}
	if err != nil && gin.Mode() != gin.ReleaseMode {
		res.Error = fmt.Sprintf("%+v", err)
	}
	return res
}

// DBErr
func DBErr(msg string, err error) Response {
	if msg == "" {
		msg = "database error"
	}
	return Err(http.StatusInternalServerError, msg, err)
}

// ParamErr
func ParamErr(msg string, err error) Response {
	if msg == "" {
		msg = "parameter error"
	}
	return Err(http.StatusBadRequest, msg, err)
}

// AuthErr
func AuthErr(msg string) Response {
	if msg == "" {
		msg = "authentication error"
	}
	return Err(http.StatusUnauthorized, msg, nil)
}

// WriteErr maps a domain error onto the envelope and status code the
// taxonomy prescribes: NotFound 404, Validation 400, Conflict 409,
// anything else 500 with detail hidden behind Err's mode check.
func WriteErr(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	msg := "internal error"

	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		status = http.StatusNotFound
		msg = err.Error()
	case apperr.KindValidation:
		status = http.StatusBadRequest
		msg = err.Error()
	case apperr.KindConflict:
		status = http.StatusConflict
		msg = err.Error()
	default:
		// Internal errors leave the response opaque, so the full detail
		// has to land in the log. The error message carries the domain
		// ids its producer attached.
		log.Error("internal error",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetString("request_id")),
			zap.Error(err),
		)
	}

	res := Err(status, msg, err)
	var ae *apperr.Error
	if errors.As(err, &ae) && ae.Field != "" {
		res.Field = ae.Field
	}
	c.JSON(status, res)
}
