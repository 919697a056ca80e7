package handlers

import (
	"net/http"
	"time"

	"alocacoes-admin/internal/logger"
	"alocacoes-admin/internal/session"
	"alocacoes-admin/internal/web"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger registra cada request con zap.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.L().Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}

// NewAdminRouter arma el panel de alocaciones.
func NewAdminRouter(store *session.Store) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(), gin.Recovery())
	r.SetHTMLTemplate(web.Templates())

	r.GET("/health", Health)

	allocationHandler := NewAllocationHandler()

	app := r.Group("/")
	app.Use(SessionMiddleware(store))
	{
		app.GET("", func(c *gin.Context) { c.Redirect(http.StatusFound, listPath) })
		app.GET("/ws", HandleWebSocket)

		app.GET("/allocations", allocationHandler.ShowList)
		app.POST("/allocations/new", allocationHandler.OpenCreate)
		app.POST("/allocations/draft", allocationHandler.UpdateDraft)
		app.POST("/allocations/save", allocationHandler.Save)
		app.POST("/allocations/cancel", allocationHandler.Cancel)
		app.POST("/allocations/:id/edit", allocationHandler.Edit)
		app.POST("/allocations/:id/remove", allocationHandler.Remove)
	}

	return r
}

// NewResourceRouter arma la API de recursos.
func NewResourceRouter(h *ResourceHandler) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(), gin.Recovery())

	r.GET("/health", Health)
	r.GET("/professors", h.ListProfessors)
	r.GET("/courses", h.ListCourses)
	r.GET("/allocations", h.ListAllocations)
	r.GET("/allocations/:id", h.GetAllocation)
	r.POST("/allocations", h.CreateAllocation)
	r.PUT("/allocations/:id", h.UpdateAllocation)
	r.DELETE("/allocations/:id", h.DeleteAllocation)

	return r
}
