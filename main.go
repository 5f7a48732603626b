package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"mydaytasks/config"
	"mydaytasks/connection"
)

func main() {
	gin.SetMode(gin.ReleaseMode)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := connection.StartServer(cfg); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
