package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Billing   BillingConfig
	Store     StoreConfig
	Menu      MenuConfig
	Admin     AdminConfig
	JWT       JWTConfig
	Printer   PrinterConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

// BillingConfig holds the values the pricing engine is built from.
type BillingConfig struct {
	TaxRate        float64
	PaymentMethods []string
	Currency       string
	StoreName      string
	StoreAddress   string
	StorePhone     string
	TaxID          string
}

type StoreConfig struct {
	SalesCSVPath string
}

// MenuConfig points at an optional YAML price table. When File is empty the
// built-in menu is used.
type MenuConfig struct {
	File string
}

// AdminConfig holds the report password. PasswordHash (bcrypt) takes
// precedence over the plain Password.
type AdminConfig struct {
	Password     string
	PasswordHash string
}

type JWTConfig struct {
	Secret      string
	ExpiryHours time.Duration
}

type PrinterConfig struct {
	Type     string
	USBPath  string
	Address  string
	FilePath string
	Width    int
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "smartpos-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("GST_RATE", 0.05)
	viper.SetDefault("PAYMENT_METHODS", "Cash,Card,UPI")
	viper.SetDefault("CURRENCY", "₹")
	viper.SetDefault("STORE_NAME", "Smart POS")
	viper.SetDefault("STORE_ADDRESS", "")
	viper.SetDefault("STORE_PHONE", "")
	viper.SetDefault("STORE_TAX_ID", "")
	viper.SetDefault("SALES_CSV_PATH", "sales.csv")
	viper.SetDefault("MENU_FILE", "")
	viper.SetDefault("ADMIN_PASSWORD", "admin123")
	viper.SetDefault("ADMIN_PASSWORD_HASH", "")
	viper.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	viper.SetDefault("JWT_EXPIRY_HOURS", 8)
	viper.SetDefault("PRINTER_TYPE", "none")
	viper.SetDefault("PRINTER_USB_PATH", "")
	viper.SetDefault("PRINTER_ADDRESS", "")
	viper.SetDefault("PRINTER_FILE_PATH", "receipts.txt")
	viper.SetDefault("PRINTER_WIDTH", 32)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Billing: BillingConfig{
			TaxRate:        viper.GetFloat64("GST_RATE"),
			PaymentMethods: splitList(viper.GetStringSlice("PAYMENT_METHODS")),
			Currency:       viper.GetString("CURRENCY"),
			StoreName:      viper.GetString("STORE_NAME"),
			StoreAddress:   viper.GetString("STORE_ADDRESS"),
			StorePhone:     viper.GetString("STORE_PHONE"),
			TaxID:          viper.GetString("STORE_TAX_ID"),
		},
		Store: StoreConfig{
			SalesCSVPath: viper.GetString("SALES_CSV_PATH"),
		},
		Menu: MenuConfig{
			File: viper.GetString("MENU_FILE"),
		},
		Admin: AdminConfig{
			Password:     viper.GetString("ADMIN_PASSWORD"),
			PasswordHash: viper.GetString("ADMIN_PASSWORD_HASH"),
		},
		JWT: JWTConfig{
			Secret:      viper.GetString("JWT_SECRET"),
			ExpiryHours: time.Duration(viper.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
		},
		Printer: PrinterConfig{
			Type:     viper.GetString("PRINTER_TYPE"),
			USBPath:  viper.GetString("PRINTER_USB_PATH"),
			Address:  viper.GetString("PRINTER_ADDRESS"),
			FilePath: viper.GetString("PRINTER_FILE_PATH"),
			Width:    viper.GetInt("PRINTER_WIDTH"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(viper.GetStringSlice("CORS_ALLOWED_ORIGINS")),
			AllowedMethods: splitList(viper.GetStringSlice("CORS_ALLOWED_METHODS")),
			AllowedHeaders: splitList(viper.GetStringSlice("CORS_ALLOWED_HEADERS")),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
	}
}
