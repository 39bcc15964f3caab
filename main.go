package main

import (
	"runtime"

	"github.com/AnshNarg/bit-coin/auth"
	"github.com/AnshNarg/bit-coin/config"
	"github.com/AnshNarg/bit-coin/routes"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())
	sysConfigs, err := config.LoadConfigs()
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading configuration")
	}

	if sysConfigs.Config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	auth.SecretKey = []byte(sysConfigs.Config.JwtSecret)

	cfgManager := config.NewConfigManager(config.DefaultRuntimeConfig())
	router := routes.SetupRouter(sysConfigs, cfgManager)

	port := sysConfigs.Config.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := router.Run("0.0.0.0:" + port); err != nil {
		log.Fatal().Err(err).Msg("Server failed to start")
	}
}

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.With().Logger()
}
