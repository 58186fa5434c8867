package main

import (
	_ "foampro/docs"
	"foampro/internal/adapter/http/routes"
	"foampro/internal/config"
	"foampro/internal/logging"

	_ "github.com/joho/godotenv/autoload"
)

// @title           FoamPro API
// @version         1.0
// @description     Spray-foam estimating, job lifecycle, crew and warehouse service.

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	if err := routes.Run(cfg); err != nil {
		logging.Fatal("server stopped", "err", err)
	}
}
