package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"ledger/internal/auth"
	"ledger/internal/transactions"
)

// RegisterRoutes builds the gin engine with middleware and all API routes
func (s *Server) RegisterRoutes() http.Handler {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggingMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     s.cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.GET("/health", s.healthHandler)

	tokens := auth.NewTokenService(s.cfg.TokenSecret, s.cfg.TokenTTL)

	authHandler := auth.NewHandler(auth.NewService(auth.NewRepository(s.db), tokens))

	txService := transactions.NewService(transactions.NewRepository(s.db), s.cache)
	txHandler := transactions.NewHandler(txService)

	api := r.Group("/api")
	{
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		protected := api.Group("")
		protected.Use(auth.RequireAuth(tokens))
		{
			protected.GET("/protected", authHandler.Protected)

			tx := protected.Group("/transactions")
			{
				tx.GET("", txHandler.List)
				tx.POST("", txHandler.Create)
				tx.PUT("/:id", txHandler.Update)
				tx.DELETE("/:id", txHandler.Delete)
			}
		}
	}

	return r
}

// healthHandler reports the status of the storage collaborators
func (s *Server) healthHandler(c *gin.Context) {
	response := gin.H{
		"database": s.db.Health(c.Request.Context()),
	}
	if s.cache != nil {
		response["cache"] = s.cache.Health(c.Request.Context())
	}

	c.JSON(http.StatusOK, response)
}
