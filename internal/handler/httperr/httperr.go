package httperr

import (
	"github.com/gin-gonic/gin"
)

// Kind is the machine-discriminable error category exposed to clients.
// Messages are for humans; kinds are for programs.
type Kind string

const (
	KindValidation Kind = "VALIDATION"
	KindNotFound   Kind = "NOT_FOUND"
	KindCapacity   Kind = "CAPACITY"
	KindConflict   Kind = "CONFLICT"
	KindInternal   Kind = "INTERNAL"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Kind    Kind   `json:"kind"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, kind Kind, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Kind = kind
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
