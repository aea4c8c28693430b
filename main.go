package main

// POST /signup, /login, /logout - user accounts
// GET/PUT /users/{email} - profile
// GET/POST /items, PUT/DELETE /inventory/{id} - catalog and stock
// GET /cart, POST /cart/add, /cart/remove, /cart/discount - shopping cart
// POST /checkout, GET /orders, PUT /orders/{id}/status - orders
//
// Run with -cli for the interactive text interface instead of the HTTP API.

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"furniture-store/cli"
	"furniture-store/config"
	"furniture-store/handler"
	"furniture-store/logger"
	"furniture-store/seed"
	"furniture-store/service"
	"furniture-store/shutdown"
	"furniture-store/store"
)

func main() {
	cliMode := flag.Bool("cli", false, "run the interactive text interface instead of the HTTP server")
	flag.Parse()

	cfg := config.Load()
	log := logger.New(logger.Options{Service: "furniture-store", Env: cfg.AppEnv, Level: cfg.LogLevel})

	// --- Stores ---
	inv := store.NewInventory()
	users := store.NewUsers()
	carts := store.NewCarts()
	orders := store.NewOrderRegistry()

	// --- Service ---
	svc := service.NewService(inv, users, carts, orders, log)
	var serviceInterface service.ServiceInterface = svc

	// --- Seed catalog and demo accounts ---
	seedFile, err := seed.Load(cfg.SeedFile)
	if err != nil {
		log.Error("loading seed data failed", "err", err)
		os.Exit(1)
	}
	if err := seed.Apply(seedFile, serviceInterface); err != nil {
		log.Error("applying seed data failed", "err", err)
		os.Exit(1)
	}
	log.Info("catalog seeded", "items", len(seedFile.Items), "users", len(seedFile.Users))

	if *cliMode {
		cli.New(serviceInterface, os.Stdin, os.Stdout).Run()
		return
	}

	// --- Handlers ---
	h := handler.NewHandler(serviceInterface)

	// --- Router ---
	r := mux.NewRouter()
	h.RegisterRoutes(r)

	// --- Server ---
	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	srv := &http.Server{Addr: fmt.Sprintf(":%d", cfg.HTTPPort), Handler: r}
	go func() {
		<-ctx.Done()
		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("server running", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server error", "err", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
