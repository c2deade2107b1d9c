package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/just-tech-news/backend/internal/auth"
	"github.com/just-tech-news/backend/internal/config"
	"github.com/just-tech-news/backend/internal/database"
	"github.com/just-tech-news/backend/internal/handlers"
	"github.com/just-tech-news/backend/internal/logger"
	"github.com/just-tech-news/backend/internal/store"
)

type Server struct {
	cfg      config.Config
	db       *database.Service
	sessions *auth.Sessions
	handler  *handlers.Handler
}

// New connects the database, builds the store and handlers, and returns
// the configured http.Server.
func New(cfg config.Config) (*http.Server, *database.Service, error) {
	db, err := database.New(cfg)
	if err != nil {
		return nil, nil, err
	}

	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.AppPort,
		Handler:      NewRouter(cfg, db),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return srv, db, nil
}

// NewRouter wires the store and handlers around an already connected
// database and returns the gin engine with every route registered.
func NewRouter(cfg config.Config, db *database.Service) *gin.Engine {
	sessions := auth.NewSessions(cfg.SessionSecret)
	st := store.New(db.DB())

	s := &Server{
		cfg:      cfg,
		db:       db,
		sessions: sessions,
		handler:  handlers.New(st, sessions),
	}
	return s.RegisterRoutes()
}

// RegisterRoutes sets up the gin engine and every application route.
func (s *Server) RegisterRoutes() *gin.Engine {
	switch s.cfg.GinMode {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(requestLogger(), gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.db.Health())
	})

	api := r.Group("/api")
	{
		users := api.Group("/users")
		{
			users.GET("", s.handler.Users.List)
			users.GET("/:id", s.handler.Users.Get)
			users.GET("/:id/votes", s.handler.Users.Votes)
			users.POST("", s.handler.Users.Create)
			users.POST("/login", s.handler.Users.Login)
			users.POST("/logout", s.handler.Users.Logout)
			users.PUT("/:id", s.handler.Users.Update)
			users.DELETE("/:id", s.handler.Users.Delete)
		}

		posts := api.Group("/posts")
		{
			posts.GET("", s.handler.Posts.List)
			posts.GET("/:id", s.handler.Posts.Get)

			protected := posts.Group("")
			protected.Use(auth.RequireSession(s.sessions))
			{
				protected.POST("", s.handler.Posts.Create)
				protected.PUT("/:id", s.handler.Posts.Update)
				protected.PUT("/:id/upvote", s.handler.Posts.Upvote)
				protected.DELETE("/:id", s.handler.Posts.Delete)
			}
		}

		comments := api.Group("/comments")
		{
			comments.GET("", s.handler.Comments.List)
			comments.POST("", auth.RequireSession(s.sessions), s.handler.Comments.Create)
			comments.DELETE("/:id", auth.RequireSession(s.sessions), s.handler.Comments.Delete)
		}
	}

	return r
}

// requestLogger emits one structured log line per request.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Sugar.Infow("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}
