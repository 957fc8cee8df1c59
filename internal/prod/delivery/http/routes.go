package http

import (
	"github.com/gin-gonic/gin"

	"prod-tracker/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every route goes through the per-client rate limiter.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.Use(mw.RateLimit())

	forms := rg.Group("/forms")
	{
		forms.POST("", h.CreateForm)
		forms.POST("/edit", h.EditForm)
		forms.GET("/:id", h.Detail)
		forms.POST("/:id/open", h.Open)
		forms.POST("/:id/close", h.Close)
		forms.PUT("/:id/selection", h.EditSelection)
		forms.PUT("/:id/number", h.EditNumber)
		forms.POST("/:id/status", h.ToggleStatus)
		forms.POST("/:id/submit", h.Submit)
	}

	rg.GET("/options", h.Options)
	rg.GET("/depts/:id", h.Dept)
}
