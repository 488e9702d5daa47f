package server

import "github.com/gin-gonic/gin"

func (s *Server) registerRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/health", s.health)
		api.POST("/resolve", s.resolve)
		api.POST("/cards/:type", s.cards)
		api.POST("/plan", s.plan)
	}
}
