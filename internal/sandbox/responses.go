package sandbox

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

// envelope is the wire format every endpoint answers with.
type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func respondOK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, envelope{Status: "success", Message: message, Data: data})
}

func respondCreated(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, envelope{Status: "success", Message: message, Data: data})
}

func respondUnauthorized(c *gin.Context, detail string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, envelope{
		Status:  "error",
		Message: "You are not authorized to carry out this request.",
		Data:    detail,
	})
}

func respondNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, envelope{Status: "error", Message: message, Data: "entity not found"})
}

func respondUnprocessable(c *gin.Context, message string, errors url.Values) {
	c.JSON(http.StatusUnprocessableEntity, envelope{Status: "error", Message: message, Data: errors})
}

func respondBadRequest(c *gin.Context, detail string) {
	c.JSON(http.StatusBadRequest, envelope{
		Status:  "error",
		Message: "The request isn't properly formed",
		Data:    detail,
	})
}

func respondInternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, envelope{
		Status:  "error",
		Message: "We ran into an internal error while handling the request.",
		Data:    "internal server error",
	})
}
