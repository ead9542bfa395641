package response

import "github.com/gin-gonic/gin"

// Every endpoint answers with the same envelope:
// {"success": true, "data": ...} or
// {"success": false, "error": {"code": ..., "message": ...}}.

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func OK(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func Fail(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{"success": false, "error": errorBody{Code: code, Message: message}})
}

func FailWithDetails(c *gin.Context, status int, code, message string, details any) {
	c.JSON(status, gin.H{"success": false, "error": errorBody{Code: code, Message: message, Details: details}})
}

func AbortFail(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "error": errorBody{Code: code, Message: message}})
}
