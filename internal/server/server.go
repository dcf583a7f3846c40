package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	// Load env file into environments.
	_ "github.com/joho/godotenv/autoload"

	"HireHub-backend/internal/cache"
	"HireHub-backend/internal/database"
	"HireHub-backend/internal/model"
	"HireHub-backend/internal/remote"
	"HireHub-backend/internal/store"
)

// MyServer holds the view-state store and its collaborators for route
// handlers. DB and Backend are nil when no remote store is configured;
// the store then runs on the local cache and seed data alone.
type MyServer struct {
	port int

	Store   *store.Store
	Backend remote.Backend
	DB      *database.DBinstanceStruct
}

// NewServer constructs the store, bootstraps it, and wraps it in an
// http.Server. The remote backend is wired only when the database
// environment is configured.
func NewServer() *http.Server {
	port, _ := strconv.Atoi(os.Getenv("PORT"))
	if port == 0 {
		port = 8080
	}

	s := &MyServer{port: port}

	if database.Configured() {
		db, err := database.GetMainDB()
		if err != nil {
			log.Fatalf("Database failed to initialized: %s", err)
		}
		s.DB = db

		rdb, err := remote.NewRedisClient(context.Background(), os.Getenv("REDIS_URL"))
		if err != nil {
			// The in-process feed still works without Redis; only
			// cross-instance fan-out is lost.
			log.Printf("Failed to connect to Redis, running without cross-instance user events: %v", err)
		}
		s.Backend = remote.NewDocStore(db, rdb)
	} else {
		log.Println("No database configured, running on local cache and seed data only")
	}

	s.Store = store.New(store.Deps{
		Cache:     cache.New(os.Getenv("HIREHUB_CACHE_FILE")),
		Backend:   s.Backend,
		SeedUsers: model.SeedUsers(),
		SeedJobs:  model.SeedJobs(),
	})
	if err := s.Store.Bootstrap(context.Background()); err != nil {
		log.Fatalf("Store failed to bootstrap: %s", err)
	}

	// Declare Server config
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server
}
