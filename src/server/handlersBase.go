package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Version of the web service, reported by GET /version.
const Version = "0.1.0"

type BaseHandler struct{}

func NewBaseHandler() *BaseHandler {
	return &BaseHandler{}
}

func (b *BaseHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (b *BaseHandler) GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"version": Version})
}
