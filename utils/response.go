// File: /utils/response.go
package utils

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}

type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func SendError(c *gin.Context, status int, err string) {
	c.JSON(status, ErrorResponse{
		Error: err,
		Code:  status,
	})
}

func SendSuccess(c *gin.Context, message string, data interface{}) {
	response := SuccessResponse{
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(http.StatusOK, response)
}

func SendCreated(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, SuccessResponse{
		Message: message,
		Data:    data,
	})
}

// RedirectWithFlash sends the browser back to a form page carrying a
// flash-style status and message in the query string, the next page
// renders them as the confirmation or error banner.
func RedirectWithFlash(c *gin.Context, page, status, msg string) {
	q := url.Values{}
	q.Set("status", status)
	q.Set("msg", msg)
	c.Redirect(http.StatusSeeOther, page+"?"+q.Encode())
}

// RedirectToPage is the no-op path for non-POST hits on a form endpoint.
func RedirectToPage(c *gin.Context, page string) {
	c.Redirect(http.StatusSeeOther, page)
}
