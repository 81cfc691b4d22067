package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Redis            Redis            `mapstructure:",squash"`
	Cache            Cache            `mapstructure:",squash"`
	Payment          Payment          `mapstructure:",squash"`
	BankVerification BankVerification `mapstructure:",squash"`
	Checkout         Checkout         `mapstructure:",squash"`
	Render           Render           `mapstructure:",squash"`
	Cors             Cors             `mapstructure:",squash"`
	SubscriptionSync SubscriptionSync `mapstructure:",squash"`
	SalesReconcile   SalesReconcile   `mapstructure:",squash"`
	SecretKey        string           `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string         `mapstructure:"log_level"`
	TimeZone string         `mapstructure:"timezone"`
	Location *time.Location `mapstructure:"-"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Redis struct {
	Addr     string `mapstructure:"redis_addr"`
	Password string `mapstructure:"redis_password"`
	DB       int    `mapstructure:"redis_db"`
}

type Cache struct {
	TenantTTL time.Duration `mapstructure:"cache_tenant_ttl"`
}

// Payment guarda as credenciais do gateway de pagamento. KeySecret é usado
// para validar a assinatura das confirmações de pagamento.
type Payment struct {
	KeyID     string `mapstructure:"payment_key_id"`
	KeySecret string `mapstructure:"payment_key_secret"`
}

type BankVerification struct {
	URL         string        `mapstructure:"bank_verification_url"`
	AccessToken string        `mapstructure:"bank_verification_access_token"`
	Timeout     time.Duration `mapstructure:"bank_verification_timeout"`
}

type Checkout struct {
	TaxRateRaw               string          `mapstructure:"checkout_tax_rate"`
	ShippingFeeRaw           string          `mapstructure:"checkout_shipping_fee"`
	FreeShippingThresholdRaw string          `mapstructure:"checkout_free_shipping_threshold"`
	TaxRate                  decimal.Decimal `mapstructure:"-"`
	ShippingFee              decimal.Decimal `mapstructure:"-"`
	FreeShippingThreshold    decimal.Decimal `mapstructure:"-"`
}

type Render struct {
	APIKey    string `mapstructure:"render_api_key"`
	ServiceID string `mapstructure:"render_service_id"`
	BaseURL   string `mapstructure:"render_base_url"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type SubscriptionSync struct {
	CronSchedule string `mapstructure:"subscription_sync_cron"`
	Enabled      bool   `mapstructure:"subscription_sync_enabled"`
}

type SalesReconcile struct {
	CronSchedule      string `mapstructure:"sales_reconcile_cron"`
	Enabled           bool   `mapstructure:"sales_reconcile_enabled"`
	MonthLookBack     int    `mapstructure:"sales_reconcile_month_lookback"`
	MaxConcurrentJobs int    `mapstructure:"sales_reconcile_max_concurrent_jobs"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/storefront?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	// Lojas mudam de nome/template raramente, uma hora de defasagem é aceitável
	viper.SetDefault("CACHE_TENANT_TTL", "1h")

	viper.SetDefault("PAYMENT_KEY_ID", "")
	viper.SetDefault("PAYMENT_KEY_SECRET", "")

	viper.SetDefault("BANK_VERIFICATION_URL", "https://api.bankverify.example.com/v1")
	viper.SetDefault("BANK_VERIFICATION_ACCESS_TOKEN", "")
	viper.SetDefault("BANK_VERIFICATION_TIMEOUT", "30s")

	viper.SetDefault("CHECKOUT_TAX_RATE", "0")
	viper.SetDefault("CHECKOUT_SHIPPING_FEE", "0")
	viper.SetDefault("CHECKOUT_FREE_SHIPPING_THRESHOLD", "0")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("RENDER_API_KEY", "")
	viper.SetDefault("RENDER_SERVICE_ID", "")
	viper.SetDefault("RENDER_BASE_URL", "https://api.render.com/v1")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("SUBSCRIPTION_SYNC_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("SUBSCRIPTION_SYNC_ENABLED", false)

	viper.SetDefault("SALES_RECONCILE_CRON", "0 5 1 * *") // No primeiro dia de cada mês às 5h da manhã
	viper.SetDefault("SALES_RECONCILE_ENABLED", false)
	viper.SetDefault("SALES_RECONCILE_MONTH_LOOKBACK", 1)
	viper.SetDefault("SALES_RECONCILE_MAX_CONCURRENT_JOBS", 3)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("TIMEZONE", "UTC")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.resolve(); err != nil {
		return nil, err
	}

	return config, nil
}

// resolve preenche os campos derivados (DSN, fuso horário e valores decimais do checkout)
func (c *Config) resolve() error {
	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)

	loc, err := time.LoadLocation(c.App.TimeZone)
	if err != nil {
		return fmt.Errorf("config: fuso horário inválido %q: %w", c.App.TimeZone, err)
	}
	c.App.Location = loc

	if c.Cache.TenantTTL <= 0 {
		c.Cache.TenantTTL = time.Hour
	}

	if c.SalesReconcile.MaxConcurrentJobs <= 0 {
		c.SalesReconcile.MaxConcurrentJobs = 1
	}

	c.Checkout.TaxRate, err = parseDecimal("CHECKOUT_TAX_RATE", c.Checkout.TaxRateRaw)
	if err != nil {
		return err
	}
	c.Checkout.ShippingFee, err = parseDecimal("CHECKOUT_SHIPPING_FEE", c.Checkout.ShippingFeeRaw)
	if err != nil {
		return err
	}
	c.Checkout.FreeShippingThreshold, err = parseDecimal("CHECKOUT_FREE_SHIPPING_THRESHOLD", c.Checkout.FreeShippingThresholdRaw)
	if err != nil {
		return err
	}

	return nil
}

func parseDecimal(name, raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("config: valor inválido para %s: %w", name, err)
	}

	if value.IsNegative() {
		return decimal.Zero, fmt.Errorf("config: %s não pode ser negativo", name)
	}

	return value, nil
}

// loadEnvFile tenta carregar o .env do diretório atual ou de diretórios acima
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
