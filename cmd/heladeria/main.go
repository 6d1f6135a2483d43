package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"heladeria/internal/config"
	"heladeria/internal/database"
	"heladeria/internal/handler"
	"heladeria/internal/mw"
	"heladeria/internal/notify"
	"heladeria/internal/service"
	"heladeria/internal/web"
)

func main() {
	cfg := config.New()

	db, err := database.NewDB(cfg.DatabaseURI)
	if err != nil {
		slog.Error("failed to connect to DB", "error", err)
		os.Exit(1)
	}
	defer database.CloseDB(context.Background(), db)

	if err := database.InitSchema(db); err != nil {
		slog.Error("failed to init DB schema", "error", err)
		os.Exit(1)
	}

	// Services
	menuSvc := service.NewMenuService(cfg.MenuFile)
	cartSvc := service.NewCartService(db)
	orderSvc := service.NewOrderService(db)
	staffAuth, err := service.NewStaffAuth(cfg.StaffPassword)
	if err != nil {
		slog.Error("failed to set up staff auth", "error", err)
		os.Exit(1)
	}

	var notifier handler.OrderNotifier
	if cfg.TelegramToken != "" {
		tg, err := notify.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			slog.Error("failed to start telegram notifier", "error", err)
			os.Exit(1)
		}
		notifier = tg
	}

	// Router
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(mw.Session(cfg.SessionSecret))

	r.Get("/api/menu", handler.MenuHandler(menuSvc))

	r.Get("/api/cart", handler.GetCartHandler(cartSvc))
	r.Post("/api/cart", handler.AddCartItemHandler(cartSvc))
	r.Delete("/api/cart", handler.RemoveCartItemHandler(cartSvc))

	r.Post("/api/confirm", handler.ConfirmHandler(orderSvc, notifier))

	r.Get("/api/orders", handler.ListOrdersHandler(orderSvc))

	// The deliver transition is open by default, matching the original
	// deployment; configuring STAFF_PASSWORD locks it behind a login.
	if staffAuth.Enabled() {
		r.Post("/api/staff/login", handler.StaffLoginHandler(staffAuth, cfg.SessionSecret))
		r.Group(func(r chi.Router) {
			r.Use(mw.StaffAuth(cfg.SessionSecret))
			r.Post("/api/orders/{id}/deliver", handler.DeliverOrderHandler(orderSvc))
		})
	} else {
		r.Post("/api/orders/{id}/deliver", handler.DeliverOrderHandler(orderSvc))
	}

	web.Routes(r)

	srv := &http.Server{
		Addr:         cfg.RunAddress,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	slog.Info("starting server", "addr", cfg.RunAddress)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
		}
	}()

	<-quit
	slog.Info("shutting down...")

	ctxShut, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()

	if err := srv.Shutdown(ctxShut); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}

	slog.Info("server stopped")
}
