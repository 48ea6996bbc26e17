package router

import (
	"github.com/gin-gonic/gin"

	"github.com/craftchat/craftchat/engine/mcserver"
)

// RegisterRoutes registers the admin pages.
func RegisterRoutes(router *gin.Engine, registry *mcserver.Registry) {
	handler := NewHandler(registry)

	admin := router.Group("/admin")
	{
		admin.GET("", handler.AdminPage)
		admin.POST("", handler.AddServer)
		admin.POST("/save_api_key", handler.SaveAPIKey)
		admin.POST("/delete_server/:index", handler.DeleteServer)
		admin.GET("/edit_server/:index", handler.EditServerPage)
		admin.POST("/edit_server/:index", handler.EditServerSubmit)
	}
}
