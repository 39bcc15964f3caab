package model

// EnvConfig holds sensitive environment settings
type EnvConfig struct {
	Port            string  `json:"port"`
	Environment     string  `json:"environment"`
	JwtSecret       string  `json:"jwtSecret"`
	CoinGeckoUrl    string  `json:"coinGeckoUrl"`
	StartingBalance float64 `json:"startingBalance"`
}

// RuntimeConfig holds flags that can be swapped at runtime via ConfigManager
type RuntimeConfig struct {
	FrontendUrls []string `json:"frontendUrls"`
	RateLimiter  bool     `json:"rateLimiter"`
	DebugMode    bool     `json:"debug"`
}
