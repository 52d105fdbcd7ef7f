package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// SuccessResponse writes the payload as-is with status 200. The ranking
// endpoint's contract is a bare JSON array, not a wrapped envelope.
func SuccessResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// BadRequestResponse writes a 400 error envelope.
func BadRequestResponse(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// PipelineErrorResponse writes the 500 envelope for a failed ranking run,
// attaching the top-level message as details.
func PipelineErrorResponse(c echo.Context, err error) error {
	return c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "API error",
		Details: err.Error(),
	})
}

// InternalServerErrorResponse writes a generic 500 envelope.
func InternalServerErrorResponse(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Something went wrong"})
}
