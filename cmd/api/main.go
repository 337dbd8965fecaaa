package main

import (
	_ "andicot_proforma/docs"
	"andicot_proforma/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Andicot Proforma API
// @version         1.0
// @description     Security services catalog, quote builder and contact CRM backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey AdminPassword
// @in header
// @name X-Admin-Password

func main() {
	routes.Run()
}
