package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"

	"github.com/amaumene/tmdbfind/internal/config"
	"github.com/amaumene/tmdbfind/internal/constants"
	"github.com/amaumene/tmdbfind/internal/handlers"
	"github.com/amaumene/tmdbfind/internal/middleware"
	"github.com/amaumene/tmdbfind/internal/models"
	"github.com/amaumene/tmdbfind/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(code)
}

// run parses args, performs a lookup or serves HTTP, and returns the exit status.
func run(ctx context.Context, args []string, stdout io.Writer) int {
	flags := pflag.NewFlagSet(constants.AppName, pflag.ContinueOnError)
	configPath := flags.StringP("config", "c", "", "path to a YAML config file")
	serve := flags.Bool("serve", false, "serve the lookup API over HTTP instead of a single lookup")
	flags.String("host", "", "listen host in serve mode")
	flags.Int("port", 0, "listen port in serve mode")
	flags.String("db", "", "lookup history file (bbolt); empty disables history")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.Duration("timeout", 0, "TMDB request timeout")
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [imdb-id]\n", constants.AppName)
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	app := &App{Logger: logger.New()}

	cfg, err := config.Load(*configPath, flags)
	if err != nil {
		app.Logger.Errorf("[App] failed to load config: %v", err)
		return 1
	}
	app.Config = cfg
	app.InitializeLogger()

	if err := app.InitializeDatabase(); err != nil {
		app.Logger.Errorf("[App] %v", err)
		return 1
	}
	defer app.Close()

	app.InitializeServices()

	if *serve {
		if err := serveHTTP(ctx, app); err != nil {
			app.Logger.Errorf("[App] server error: %v", err)
			return 1
		}
		return 0
	}

	imdbID := constants.DefaultIMDbID
	if flags.NArg() > 0 {
		imdbID = flags.Arg(0)
	}

	result, err := app.Container.TMDB.FindByIMDbID(ctx, imdbID)
	if err != nil {
		app.Logger.Errorf("[App] lookup for %s failed: %v", imdbID, err)
		return 1
	}

	printResults(stdout, result)
	return 0
}

// printResults writes one line per TV entry; a nil result or list prints nothing.
func printResults(w io.Writer, result *models.SearchResult) {
	if result == nil || result.TvResults == nil {
		return
	}
	for _, entry := range result.TvResults {
		fmt.Fprintln(w, entry)
	}
}

func newRouter(app *App) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(app.Logger))
	r.Use(middleware.CORS())

	handlers.New(app.Container, app.Config).RegisterRoutes(r)
	return r
}

func serveHTTP(ctx context.Context, app *App) error {
	gin.SetMode(gin.ReleaseMode)

	srv := &http.Server{
		Addr:    app.Config.Server.Address(),
		Handler: newRouter(app),
	}

	errCh := make(chan error, 1)
	go func() {
		app.Logger.Infof("[App] starting HTTP server on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	app.Logger.Infof("[App] shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
