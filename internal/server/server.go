package server

import (
	"fmt"

	"github.com/dmaulana/cinetix/config"
	"github.com/dmaulana/cinetix/internal/handlers"
	"github.com/dmaulana/cinetix/internal/middleware"
	"github.com/dmaulana/cinetix/internal/repository"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	r := gin.Default()

	setupRoutes(r, cfg, db)

	return r.Run(":" + cfg.Port)
}

func setupRoutes(r *gin.Engine, cfg *config.Config, db *gorm.DB) {
	ticketRepo := repository.NewTicketRepository(db)
	userRepo := repository.NewUserRepository(db)

	r.Use(middleware.RepositoryMiddleware(ticketRepo, userRepo))

	r.POST("/register", handlers.Register)
	r.POST("/login", handlers.Login(cfg))

	public := r.Group("/tickets")
	{
		public.GET("", handlers.ListTickets)
		public.GET("/:id", handlers.GetTicket)
	}

	protected := r.Group("/tickets")
	protected.Use(middleware.JWTAuth(cfg))
	{
		protected.POST("", handlers.CreateTicket)
		protected.PUT("/:id", handlers.UpdateTicket)
		protected.DELETE("/:id", handlers.DeleteTicket)
	}
}
