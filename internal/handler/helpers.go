package handler

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
)

// bindJSON binds JSON request body to a struct
func bindJSON(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return fmt.Errorf("invalid JSON format: %v", err)
	}
	return nil
}

// logError logs a handler error with request context
func logError(c *gin.Context, event string, err error) {
	log.Printf("event=%s method=%s path=%s error=%v",
		event, c.Request.Method, c.Request.URL.Path, err)
}
