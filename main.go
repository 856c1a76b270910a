package main

import (
	"github.com/gin-gonic/gin"
	"github.com/samir25141/SwiggyCloneBySamir/configs"
	"github.com/samir25141/SwiggyCloneBySamir/pkg/logger"
	"github.com/samir25141/SwiggyCloneBySamir/routes"
)

func main() {
	cfg := configs.LoadConfig()
	logger.Init("swiggy-backend", gin.Mode() != gin.ReleaseMode)

	// DB
	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, configs.DB(), cfg)

	logger.Info().Str("port", cfg.Port).Msg("backend running")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
