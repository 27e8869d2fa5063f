// Command hxshop serves the storefront.
package main

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pthm/hxshop"
	"github.com/pthm/hxshop/config"
	"github.com/pthm/hxshop/home"
	"github.com/pthm/hxshop/lib/storefront"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	log := cfg.Logger()
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	handler, err := newHandler(cfg, log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: config.ReadHeader,
		IdleTimeout:       config.Idle,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", cfg.Addr, "render_mode", cfg.RenderMode)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.Shutdown)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func newHandler(cfg config.Config, log *slog.Logger) (http.Handler, error) {
	client, err := storefront.New(storefront.Options{
		Domain:     cfg.Storefront.Domain,
		Token:      cfg.Storefront.Token,
		APIVersion: cfg.Storefront.APIVersion,
		RateLimit:  cfg.Storefront.RateLimit,
		Logger:     log,
	})
	if err != nil {
		return nil, err
	}

	key := []byte(cfg.Secret)
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("generate region key: %w", err)
		}
		log.Warn("HXSHOP_SECRET not set; region tokens will not survive a restart")
	}

	loader := hxshop.NewLoader(log)
	regions := hxshop.NewRegions(key, loader)

	opts := home.DefaultOptions()
	opts.ProductsCollection = cfg.Home.Collection
	opts.ProductsLimit = cfg.Home.ProductsLimit
	opts.Hero = home.Metaobject{Handle: cfg.Home.HeroHandle, Type: cfg.Home.HeroType}
	opts.Curated = home.Metaobject{Handle: cfg.Home.CuratedHandle, Type: cfg.Home.CuratedType}
	opts.DefaultLocale = hxshop.Locale{Country: cfg.Home.DefaultCountry, Language: cfg.Home.DefaultLanguage}
	opts.Mode = home.Mode(cfg.RenderMode)
	page := home.New(client, loader, regions, opts, log)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))
	r.Handle(regions.Prefix()+"*", regions.Handler())
	r.Method(http.MethodGet, "/", page)
	return r, nil
}

// requestLogger logs one line per request once the response is complete.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
