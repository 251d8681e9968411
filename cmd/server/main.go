package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benbeisheim/chessrules/internal/controller"
	"github.com/benbeisheim/chessrules/internal/service"
)

const (
	gracefulShutdownTimeout = 5 * time.Second
	rateLimit               = 20 // req/sec
)

func main() {
	var (
		addr    = flag.String("addr", ":3000", "Listen address")
		origins = flag.String("origins", "http://localhost:5173", "Comma separated CORS origins, * for any")
		dev     = flag.Bool("dev", false, "Development mode (relaxed rate limits)")
		quiet   = flag.Bool("quiet", false, "Disable request logging")
	)
	flag.Parse()

	limit := rateLimit
	if *dev {
		limit = rateLimit * 2
	}

	// Initialize services
	sessionManager := service.NewSessionManager()
	sessionService := service.NewSessionService(sessionManager)

	app := controller.NewApp(sessionService, controller.Config{
		Origins:   *origins,
		RateLimit: limit,
		Quiet:     *quiet,
	})

	go func() {
		log.Printf("Chess rules server listening on %s", *addr)
		if err := app.Listen(*addr); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for an interrupt signal to gracefully shut down
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	log.Printf("Server exited with %d open sessions", sessionManager.Count())
}
