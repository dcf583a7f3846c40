package main

import (
	"log"

	"HireHub-backend/internal/server"
)

// @title HireHub API
// @version 1.0
// @description Job board backend with a synchronized view-state store.
// @BasePath /api/v1
func main() {
	srv := server.NewServer()

	log.Printf("Listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("cannot start server: %s", err)
	}
}
