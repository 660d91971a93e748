package main

import (
	"errors"
	"log"
	"net/http"

	"jobcrm-backend/internal/server"
)

// @title Job CRM API
// @version 1.0
// @description Backend for tracking a job search: companies, contacts, applications and derived dashboards.
// @BasePath /api/v1
func main() {
	srv := server.NewServer()

	log.Printf("Starting server on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("cannot start server: %s", err)
	}
}
