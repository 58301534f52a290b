package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/emanuelkel/dash-delivery-wiz/internal/domain"
)

const (
	ProviderDirectus = "directus"
	ProviderSupabase = "supabase"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Backend         Backend         `mapstructure:",squash"`
	Directus        Directus        `mapstructure:",squash"`
	Supabase        Supabase        `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Orders          Orders          `mapstructure:",squash"`
	Profile         Profile         `mapstructure:",squash"`
	Upload          Upload          `mapstructure:",squash"`
	Cache           Cache           `mapstructure:",squash"`
	RoleCatalogSync RoleCatalogSync `mapstructure:",squash"`
}

type App struct {
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host               string   `mapstructure:"host"`
	Port               string   `mapstructure:"port"`
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Backend struct {
	Provider string        `mapstructure:"backend_provider"`
	Timeout  time.Duration `mapstructure:"backend_timeout"`
}

type Directus struct {
	URL               string `mapstructure:"directus_url"`
	StaticToken       string `mapstructure:"directus_static_token"`
	ProfileCollection string `mapstructure:"directus_profile_collection"`
}

type Supabase struct {
	URL            string `mapstructure:"supabase_url"`
	AnonKey        string `mapstructure:"supabase_anon_key"`
	ServiceRoleKey string `mapstructure:"supabase_service_role_key"`
	LogosBucket    string `mapstructure:"supabase_logos_bucket"`
}

// Database só é usado quando os pedidos e perfis são lidos direto do Postgres do Supabase
type Database struct {
	DSN          string `mapstructure:"supabase_database_url"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
}

type Orders struct {
	Collection        string   `mapstructure:"orders_collection"`
	Timezone          string   `mapstructure:"orders_timezone"`
	IDFields          []string `mapstructure:"orders_id_fields"`
	CustomerFields    []string `mapstructure:"orders_customer_fields"`
	ProductFields     []string `mapstructure:"orders_product_fields"`
	AmountFields      []string `mapstructure:"orders_amount_fields"`
	PaymentFields     []string `mapstructure:"orders_payment_fields"`
	CreatedAtFields   []string `mapstructure:"orders_created_at_fields"`
	DeliveredAtFields []string `mapstructure:"orders_delivered_at_fields"`
	StatusFields      []string `mapstructure:"orders_status_fields"`
	CourierFields     []string `mapstructure:"orders_courier_fields"`
}

type Profile struct {
	NameFields []string `mapstructure:"profile_name_fields"`
	LogoFields []string `mapstructure:"profile_logo_fields"`
}

type Upload struct {
	MaxBytes int64 `mapstructure:"upload_max_bytes"`
}

type Cache struct {
	RedisURL   string        `mapstructure:"redis_url"`
	ProfileTTL time.Duration `mapstructure:"profile_cache_ttl"`
	RosterTTL  time.Duration `mapstructure:"roster_cache_ttl"`
}

type RoleCatalogSync struct {
	CronSchedule string `mapstructure:"role_catalog_sync_cron"`
	Enabled      bool   `mapstructure:"role_catalog_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.SetDefault("BACKEND_PROVIDER", ProviderDirectus)
	viper.SetDefault("BACKEND_TIMEOUT", "15s")

	viper.SetDefault("DIRECTUS_URL", "http://localhost:8055")
	viper.SetDefault("DIRECTUS_STATIC_TOKEN", "")
	viper.SetDefault("DIRECTUS_PROFILE_COLLECTION", "crm_profiles")

	viper.SetDefault("SUPABASE_URL", "http://localhost:54321")
	viper.SetDefault("SUPABASE_ANON_KEY", "")
	viper.SetDefault("SUPABASE_SERVICE_ROLE_KEY", "")
	viper.SetDefault("SUPABASE_LOGOS_BUCKET", "logos")

	viper.SetDefault("SUPABASE_DATABASE_URL", "")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 5)

	// Nomes de campo candidatos, em ordem de prioridade
	viper.SetDefault("ORDERS_COLLECTION", "")
	viper.SetDefault("ORDERS_TIMEZONE", "America/Sao_Paulo")
	viper.SetDefault("ORDERS_ID_FIELDS", "id")
	viper.SetDefault("ORDERS_CUSTOMER_FIELDS", "nome,customer_name")
	viper.SetDefault("ORDERS_PRODUCT_FIELDS", "produto,product")
	viper.SetDefault("ORDERS_AMOUNT_FIELDS", "valor_do_produto,valor,amount")
	viper.SetDefault("ORDERS_PAYMENT_FIELDS", "forma_de_pagamento,payment_method")
	viper.SetDefault("ORDERS_CREATED_AT_FIELDS", "data_pedido,created_at,date_created")
	viper.SetDefault("ORDERS_DELIVERED_AT_FIELDS", "data_entrega,delivered_at")
	viper.SetDefault("ORDERS_STATUS_FIELDS", "status")
	viper.SetDefault("ORDERS_COURIER_FIELDS", "entregador,courier")

	viper.SetDefault("PROFILE_NAME_FIELDS", "nome_estabelecimento,first_name")
	viper.SetDefault("PROFILE_LOGO_FIELDS", "logo,logo_url,avatar")

	viper.SetDefault("UPLOAD_MAX_BYTES", 2*1024*1024) // 2 MiB

	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("PROFILE_CACHE_TTL", "10m")
	viper.SetDefault("ROSTER_CACHE_TTL", "1m")

	viper.SetDefault("ROLE_CATALOG_SYNC_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("ROLE_CATALOG_SYNC_ENABLED", true)
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

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

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Backend.Provider = strings.ToLower(strings.TrimSpace(config.Backend.Provider))
	config.Directus.URL = strings.TrimRight(config.Directus.URL, "/")
	config.Supabase.URL = strings.TrimRight(config.Supabase.URL, "/")

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) Validate() error {
	switch c.Backend.Provider {
	case ProviderDirectus:
	case ProviderSupabase:
		if c.Supabase.AnonKey == "" {
			return fmt.Errorf("config: SUPABASE_ANON_KEY é obrigatório para o provedor %s", ProviderSupabase)
		}
	default:
		return fmt.Errorf("config: BACKEND_PROVIDER inválido: %q", c.Backend.Provider)
	}

	if c.Upload.MaxBytes <= 0 {
		return fmt.Errorf("config: UPLOAD_MAX_BYTES deve ser positivo")
	}

	return nil
}

// Location é o fuso usado para datas sem fuso e para os filtros de período
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Orders.Timezone)
	if err != nil {
		logrus.Warnf("Fuso horário %q inválido, usando UTC: %v", c.Orders.Timezone, err)
		return time.UTC
	}
	return loc
}

func (c *Config) OrderFields() domain.OrderFieldMapping {
	return domain.OrderFieldMapping{
		ID:            candidates(c.Orders.IDFields, "id"),
		CustomerName:  candidates(c.Orders.CustomerFields),
		Product:       candidates(c.Orders.ProductFields),
		Amount:        candidates(c.Orders.AmountFields),
		PaymentMethod: candidates(c.Orders.PaymentFields),
		CreatedAt:     candidates(c.Orders.CreatedAtFields),
		DeliveredAt:   candidates(c.Orders.DeliveredAtFields),
		Status:        candidates(c.Orders.StatusFields, "status"),
		Courier:       candidates(c.Orders.CourierFields),
	}
}

func (c *Config) ProfileFields() domain.ProfileFieldMapping {
	return domain.ProfileFieldMapping{
		Name: candidates(c.Profile.NameFields),
		Logo: candidates(c.Profile.LogoFields),
	}
}

// ServiceToken é a credencial usada pelos jobs que rodam fora de uma requisição
func (c *Config) ServiceToken() string {
	if c.Backend.Provider == ProviderSupabase {
		return c.Supabase.ServiceRoleKey
	}
	return c.Directus.StaticToken
}

func candidates(fields []string, fallback ...string) domain.FieldCandidates {
	result := make(domain.FieldCandidates, 0, len(fields))
	for _, field := range fields {
		if field = strings.TrimSpace(field); field != "" {
			result = append(result, field)
		}
	}

	if len(result) == 0 {
		return fallback
	}

	return result
}

// Função auxiliar para carregar o arquivo .env usando godotenv
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
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
