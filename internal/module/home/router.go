package home

import (
	"camp-signup-system/internal/global/response"
	"net/http"

	"github.com/gin-gonic/gin"
)

const welcome = "Welcome to the Camping Fun API!"

func (p *ModuleHome) InitRouter(r *gin.RouterGroup) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, welcome)
	})
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"version": "1.0.0",
		})
	})
}
