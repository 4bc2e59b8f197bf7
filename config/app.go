package config

type App struct {
	Port        string `env:"APP_PORT" default:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`
	JWTSecret   string `env:"JWT_SECRET,required"`
	StockCap    int    `env:"STOCK_CAP" default:"255"`
	Env         string `env:"APP_ENV" default:"dev"`
}
