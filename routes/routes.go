package routes

import (
	"github.com/AnshNarg/bit-coin/client"
	"github.com/AnshNarg/bit-coin/config"
	"github.com/AnshNarg/bit-coin/controller"
	"github.com/AnshNarg/bit-coin/market"
	"github.com/AnshNarg/bit-coin/middleware"
	"github.com/AnshNarg/bit-coin/repository"
	"github.com/AnshNarg/bit-coin/service"

	"github.com/gin-gonic/gin"
)

func SetupRouter(cfg *config.SystemConfigs, cfgManager *config.ConfigManager) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.ZerologMiddleware())
	r.Use(middleware.CORS(cfgManager))
	r.Use(middleware.RateLimiter(cfgManager))

	isProduction := cfg.Config.Environment == "production"

	// --- 1. Clients & generator ---
	priceClient := client.NewCoinGeckoClient(cfg.Config.CoinGeckoUrl)
	generator := market.NewGenerator()

	// --- 2. Repositories ---
	userRepo := repository.NewUserRepository()
	portfolioRepo := repository.NewPortfolioRepository(cfg.Config.StartingBalance)

	// --- 3. Services (Dependency Injection) ---
	userSvc := service.NewUserService(userRepo)
	marketSvc := service.NewMarketService(priceClient, generator)
	predictionSvc := service.NewPredictionService(marketSvc, generator)
	portfolioSvc := service.NewPortfolioService(portfolioRepo, marketSvc)
	orderSvc := service.NewOrderService(portfolioRepo, marketSvc)

	// --- 4. Routes & Controllers ---
	api := r.Group("/api")
	{
		controller.NewHealthController().RegisterRoutes(api)
		controller.NewAuthController(userSvc, isProduction).RegisterRoutes(api)
		controller.NewMarketController(marketSvc).RegisterRoutes(api)
		controller.NewPredictionController(predictionSvc).RegisterRoutes(api)
		controller.NewPortfolioController(portfolioSvc, isProduction).RegisterRoutes(api)
		controller.NewOrderController(orderSvc, isProduction).RegisterRoutes(api)
	}

	return r
}
