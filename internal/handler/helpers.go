package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/omgcarlo/RetailSavvy/internal/apierror"
	"github.com/omgcarlo/RetailSavvy/internal/repository"
	"github.com/omgcarlo/RetailSavvy/internal/service"
)

var validate = validator.New()

// bindAndValidate binds the JSON body and runs validator tags. Returns false
// and writes a 400 with field-level detail if anything fails — the caller
// must return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fields[fe.Field()] = fe.Tag()
			}
		}
		c.JSON(http.StatusBadRequest, apierror.NewValidation(fields))
		return false
	}
	return true
}

// pathID parses the :id path parameter. Returns ok=false after writing the
// 400 response.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return 0, false
	}
	return id, true
}

// respondError maps service errors onto the wire taxonomy: missing targets →
// 404, store failures → 500 (logged upstream, details withheld), anything
// else → 400 with the message.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, apierror.New("not found"))
	case errors.Is(err, service.ErrStore):
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("internal server error"))
	default:
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	}
}
