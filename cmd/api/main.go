package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aaron23010705/vehicle-service-api/internal/config"
	dbpkg "github.com/Aaron23010705/vehicle-service-api/internal/db"
	"github.com/Aaron23010705/vehicle-service-api/internal/middleware"
	"github.com/Aaron23010705/vehicle-service-api/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
