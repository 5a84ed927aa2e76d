package response

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/officinaverde/blog-api/pkg/constant"
)

// FailWithError maps a service error onto the envelope. Client-caused errors
// keep their message; anything else is logged and reported generically.
func FailWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, constant.ErrValidation), errors.Is(err, constant.ErrBadRequest):
		Fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, constant.ErrUnauthorized), errors.Is(err, constant.ErrInvalidToken):
		Fail(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, constant.ErrForbidden):
		Fail(c, http.StatusForbidden, "forbidden")
	case errors.Is(err, constant.ErrNotFound):
		Fail(c, http.StatusNotFound, "resource not found")
	case errors.Is(err, constant.ErrConflict), errors.Is(err, constant.ErrSlugTaken):
		Fail(c, http.StatusConflict, err.Error())
	default:
		log.Printf("[http] %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		Fail(c, http.StatusInternalServerError, "internal server error")
	}
}
