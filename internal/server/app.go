// Package server initializes and runs the main application server.
// It selects the storage backend, wires the services together, handles
// graceful shutdown, and starts the HTTP server.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/blogd-io/blogd/internal/logging"
	"github.com/blogd-io/blogd/internal/server/auth"
	"github.com/blogd-io/blogd/internal/server/config"
	"github.com/blogd-io/blogd/internal/server/http"
	"github.com/blogd-io/blogd/internal/server/password"
	"github.com/blogd-io/blogd/internal/server/repositories/repomanager"
	"github.com/blogd-io/blogd/internal/server/services"

	"golang.org/x/crypto/bcrypt"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	repos          repomanager.Manager
	issuer         *auth.Issuer
	authService    *services.AuthService
	userService    *services.UserService
	postService    *services.PostService
	commentService *services.CommentService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	repos, err := newRepositoryManager(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	issuer := auth.NewIssuer([]byte(c.SecretKey), c.AccessTokenValidityDuration, c.RefreshTokenValidityDuration)
	hasher := password.NewBcryptHasher(bcrypt.DefaultCost)

	return &App{
		config:         c,
		logger:         logger,
		repos:          repos,
		issuer:         issuer,
		authService:    services.NewAuthService(repos.Users(), hasher, issuer, logger),
		userService:    services.NewUserService(repos.Users(), hasher, logger),
		postService:    services.NewPostService(repos.Posts(), repos.Users(), logger),
		commentService: services.NewCommentService(repos.Comments(), repos.Posts(), logger),
	}, nil
}

func newRepositoryManager(ctx context.Context, c *config.Config) (repomanager.Manager, error) {
	switch c.StorageBackend {
	case config.StorageMongo:
		return repomanager.NewMongoManager(ctx, c.MongoURI, c.MongoDatabase)
	case config.StoragePostgres:
		return repomanager.NewPostgresManager(ctx, c.DatabaseDSN)
	case config.StorageMemory:
		return repomanager.NewInMemoryManager(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", c.StorageBackend)
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := http.NewServer(
		app.config.EndpointAddr,
		app.logger,
		app.authService,
		app.userService,
		app.postService,
		app.commentService,
		app.issuer,
	)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.repos.Close(context.Background()); err != nil {
		app.logger.Error(ctx, "storage close error", "error", err)
	}
}
