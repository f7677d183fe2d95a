// Package http exposes the service over a JSON REST API. Handlers translate
// transport payloads into service calls and map the typed failures onto
// status codes; all business rules live in the services package.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/blogd-io/blogd/internal/logging"
	"github.com/blogd-io/blogd/internal/server/auth"
	"github.com/blogd-io/blogd/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address  string
	logger   logging.Logger
	auth     *services.AuthService
	users    *services.UserService
	posts    *services.PostService
	comments *services.CommentService
	issuer   *auth.Issuer
	engine   *gin.Engine
}

func NewServer(
	address string,
	logger logging.Logger,
	authSvc *services.AuthService,
	userSvc *services.UserService,
	postSvc *services.PostService,
	commentSvc *services.CommentService,
	issuer *auth.Issuer,
) *Server {
	s := &Server{
		address:  address,
		logger:   logger.With("module", "http_server"),
		auth:     authSvc,
		users:    userSvc,
		posts:    postSvc,
		comments: commentSvc,
		issuer:   issuer,
	}
	s.engine = s.buildRouter()
	return s
}

func (s *Server) buildRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", s.handleSignUp)
		authGroup.POST("/login", s.handleLogin)
		authGroup.POST("/refresh", s.handleRefresh)
		authGroup.POST("/logout", s.requireAccessToken, s.handleLogout)
	}

	userGroup := r.Group("/users", s.requireAccessToken)
	{
		userGroup.GET("/:id", s.handleGetUser)
		userGroup.PUT("/:id", s.handleUpdateUser)
		userGroup.DELETE("/:id", s.handleDeleteUser)
	}

	r.GET("/posts", s.handleListPosts)
	r.GET("/posts/:id", s.handleGetPost)
	r.GET("/posts/:id/comments", s.handleListPostComments)
	r.GET("/comments/:id", s.handleGetComment)

	protected := r.Group("", s.requireAccessToken)
	{
		protected.POST("/posts", s.handleCreatePost)
		protected.PUT("/posts/:id", s.handleUpdatePost)
		protected.DELETE("/posts/:id", s.handleDeletePost)
		protected.POST("/posts/:id/comments", s.handleCreateComment)
		protected.PUT("/comments/:id", s.handleUpdateComment)
		protected.DELETE("/comments/:id", s.handleDeleteComment)
	}

	return r
}

// Handler returns the HTTP handler; exposed for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves requests until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.address, Handler: s.engine}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
