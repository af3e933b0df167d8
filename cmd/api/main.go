package main

import (
	_ "talentbruecke/docs"
	"talentbruecke/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Candidate Lifecycle API
// @version         1.0
// @description     Candidate lifecycle service (verification, pipeline, quotes, interviews) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey ActorID
// @in header
// @name X-Actor-Id
// @description Caller identity resolved by the upstream auth proxy.

func main() {
	routes.Run()
}
