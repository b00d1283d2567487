package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/oru-pavam-nair/BJPMission2025-sub001/config"
	"github.com/oru-pavam-nair/BJPMission2025-sub001/handlers"
	"github.com/oru-pavam-nair/BJPMission2025-sub001/loaders"
	"github.com/oru-pavam-nair/BJPMission2025-sub001/middleware"
)

func main() {
	log.Println("Starting Kerala campaign data service...")

	port := config.GetPort()
	config.InitCache()

	// The sheets are read either from a baked-in directory or a static
	// file host; the local directory wins when both are configured.
	var fetcher loaders.Fetcher
	if dir := config.GetDataDir(); dir != "" {
		log.Printf("Reading data sheets from directory %s", dir)
		fetcher = loaders.NewFileFetcher(dir)
	} else {
		baseURL := config.GetDataBaseURL()
		log.Printf("Fetching data sheets from %s", baseURL)
		fetcher = loaders.NewHTTPFetcher(baseURL)
	}

	// Load every sheet before the server starts answering; the lookup
	// paths take no locks, so all cache writes must finish here.
	store := loaders.NewStore(fetcher)
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 2*time.Minute)
	store.LoadAll(loadCtx)
	cancelLoad()

	r := mux.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: config.GetAllowedOrigins(),
		AllowedMethods: []string{
			"GET", "POST", "OPTIONS",
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			"Content-Length",
			"Accept-Encoding",
			"Origin",
			"X-Requested-With",
		},
		ExposedHeaders: []string{
			"Content-Length",
			"Content-Type",
		},
		AllowCredentials: false,
		MaxAge:           86400,
	})

	// Apply middlewares in correct order
	if config.GetCORSDebug() {
		r.Use(middleware.CORSDebugMiddleware)
	}
	r.Use(corsHandler.Handler)
	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.CompressHandler)

	api := r.PathPrefix("/api/v1").Subrouter()
	registerRoutes(api, store)
	log.Println("Routes registered successfully")

	srv := &http.Server{
		Handler:           r,
		Addr:              ":" + port,
		WriteTimeout:      15 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Printf("Starting server on port %s...", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
			serverErrors <- err
		}
	}()

	log.Printf("Server is running at http://localhost:%s", port)
	log.Printf("Health check endpoint: http://localhost:%s/api/v1/health", port)

	// Handle graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("Shutdown signal received")
	case err := <-serverErrors:
		log.Printf("Server error received: %v", err)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	} else {
		log.Println("Server shutdown completed successfully")
	}
}

func registerRoutes(api *mux.Router, store *loaders.Store) {
	h := handlers.NewHandlers(store)

	// Drill-down data routes
	api.HandleFunc("/performance", h.GetPerformance).Methods("POST", "OPTIONS")
	api.HandleFunc("/targets", h.GetTargets).Methods("POST", "OPTIONS")
	api.HandleFunc("/contacts", h.GetContacts).Methods("POST", "OPTIONS")

	// Report routes
	api.HandleFunc("/report/bundle", h.GetReportBundle).Methods("POST", "OPTIONS")

	// Hierarchy routes
	api.HandleFunc("/hierarchy/zones", h.GetZones).Methods("GET")
	api.HandleFunc("/hierarchy/orgs", h.GetOrgs).Methods("GET")
	api.HandleFunc("/hierarchy/acs", h.GetACs).Methods("GET")
	api.HandleFunc("/hierarchy/mandals", h.GetMandals).Methods("GET")
	api.HandleFunc("/hierarchy/localbodies", h.GetLocalBodies).Methods("GET")

	// Health check
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET")
	api.HandleFunc("/health/detailed", h.GetDetailedHealth).Methods("GET")
}
