package main

import (
	"net/http"
	"os"

	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"

	"github.com/joshegilbert/nutriz/config"
	"github.com/joshegilbert/nutriz/routes"
)

func main() {
	config.InitDB()
	r := routes.SetupRouter()

	frontend := os.Getenv("FRONTEND_URL")
	if frontend == "" {
		frontend = "http://localhost:8080"
	}
	handler := cors.New(cors.Options{
		AllowedOrigins:   []string{frontend},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	log.Infof("API listening on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
