package main

import (
	"roam/config"
	"roam/di"
	"roam/shared/logger"
)

// @title Roam Marketplace API
// @version 1.0
// @description Reservation and listing API for the Roam booking marketplace.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
