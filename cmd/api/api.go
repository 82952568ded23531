package main

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pizzeria/docs"
	"pizzeria/internal/auth"
	"pizzeria/internal/factory"
	"pizzeria/internal/mailer"
	"pizzeria/internal/notifications"
	"pizzeria/internal/ordernum"
	"pizzeria/internal/ratelimiter"
	"pizzeria/internal/store"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config        config
	store         store.Storage
	logger        *zap.SugaredLogger
	auth          *auth.Service
	authenticator auth.Authenticator
	cld           *cloudinary.Cloudinary
	mailer        mailer.Client
	push          notifications.PushSender
	factory       *factory.Client
	orderNumbers  *ordernum.Codec
	rateLimiter   ratelimiter.Limiter
}

type config struct {
	addr        string
	db          dbConfig
	env         string
	apiURL      string
	frontendURL string
	auth        authConfig
	factory     factoryConfig
	mail        mailConfig
	rateLimiter ratelimiter.Config
}

type authConfig struct {
	basic basicConfig
	token tokenConfig
}

type tokenConfig struct {
	secret string
	iss    string
}

type basicConfig struct {
	user string
	pass string
}

type factoryConfig struct {
	url    string
	apiKey string
}

type mailConfig struct {
	fromEmail string
	smtpHost  string
	smtpPort  int
	smtpUser  string
	smtpPass  string
}

type dbConfig struct {
	addr        string
	maxConns    int
	maxIdleTime string
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(app.RateLimiterMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Request-scoped timeout; handlers observe ctx.Done() through the store.
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)
		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))

		r.With(app.BasicAuthMiddleware()).Get("/debug/vars", expvar.Handler().ServeHTTP)

		// Public routes
		r.Post("/auth", app.registerUserHandler)
		r.Put("/auth", app.loginHandler)
		r.Get("/menu", app.getMenuHandler)
		r.Get("/franchises", app.listFranchisesHandler)

		// Everything below requires an active session
		r.Group(func(r chi.Router) {
			r.Use(app.AuthTokenMiddleware)

			r.Delete("/auth", app.logoutHandler)
			r.Get("/me", app.getMeHandler)

			r.Route("/users/{userID}", func(r chi.Router) {
				r.Put("/", app.updateUserHandler)
				r.Delete("/", app.deleteUserHandler)
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", app.listOrdersHandler)
				r.Post("/", app.createOrderHandler)
			})

			r.With(app.RequireAdmin).Put("/menu", app.upsertMenuItemHandler)
			r.With(app.RequireAdmin).Post("/menu/{itemID}/image", app.uploadMenuItemImageHandler)

			r.With(app.RequireAdmin).Post("/franchises", app.createFranchiseHandler)
			r.Route("/franchises/{franchiseID}", func(r chi.Router) {
				r.With(app.RequireFranchiseAccess).Get("/", app.getFranchiseHandler)
				r.With(app.RequireAdmin).Delete("/", app.deleteFranchiseHandler)
				r.With(app.RequireFranchiseAccess).Post("/stores", app.createStoreHandler)
				r.With(app.RequireFranchiseAccess).Delete("/stores/{storeID}", app.deleteStoreHandler)
			})

			r.Post("/push-tokens", app.savePushTokenHandler)
			r.Delete("/push-tokens", app.removePushTokenHandler)
		})
	})
	return r
}

func (app *application) run(mux http.Handler) error {
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/v1"

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
