package utils

import "github.com/gin-gonic/gin"

// RespondJSON writes the payload object as-is. The frontend expects flat
// bodies keyed per action ({"restaurant": ...}, {"success": true}), not a
// status/message envelope.
func RespondJSON(c *gin.Context, code int, payload interface{}) {
	c.JSON(code, payload)
}

// RespondError writes {"error": message}. For unexpected failures the raw
// error text goes through untouched; callers pass fixed strings for client
// and not-found errors.
func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, gin.H{"error": err.Error()})
}
