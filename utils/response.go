package utils

import "github.com/gin-gonic/gin"

// production suppresses underlying error text in failure responses.
var production bool

func SetProductionMode(on bool) {
	production = on
}

func JSON200(c *gin.Context, message string, data interface{}) {
	c.JSON(200, gin.H{"message": message, "data": data})
}

func JSON201(c *gin.Context, message string, data interface{}) {
	c.JSON(201, gin.H{"message": message, "data": data})
}

// JSONError writes the failure envelope. Outside production the error field
// carries err's text; in production it carries the generic fallback.
func JSONError(c *gin.Context, status int, message string, err error, generic string) {
	detail := generic
	if !production && err != nil {
		detail = err.Error()
	}
	c.JSON(status, gin.H{"message": message, "error": detail})
}

func JSON400(c *gin.Context, message string, err error) {
	JSONError(c, 400, message, err, "Invalid request.")
}

func JSON401(c *gin.Context, message string) {
	JSONError(c, 401, message, nil, "Authentication failed.")
}

func JSON404(c *gin.Context, message string, err error) {
	JSONError(c, 404, message, err, "Record not found.")
}

func JSON409(c *gin.Context, message string, err error) {
	JSONError(c, 409, message, err, "Duplicate entry error.")
}

func JSON500(c *gin.Context, message string, err error) {
	JSONError(c, 500, message, err, "An internal server error occurred.")
}
