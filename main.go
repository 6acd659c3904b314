package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/vietanh2810/elections-api/cmd/app"
)

// @title        Elections API
// @version      1.0
// @description  Student elections: accounts, candidacies, voting and results.
// @host         localhost:8080
// @BasePath     /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
