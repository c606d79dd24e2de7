package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	Analytics     Analytics     `mapstructure:",squash"`
	LedgerRefresh LedgerRefresh `mapstructure:",squash"`
}

type Server struct {
	Host        string   `mapstructure:"host"`
	Port        string   `mapstructure:"port"`
	CorsOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

// Auth protege as rotas com um token assinado pelo segredo compartilhado
type Auth struct {
	Secret  string `mapstructure:"auth_secret"`
	Enabled bool   `mapstructure:"auth_enabled"`
}

// Analytics define o início da série histórica e o ano mínimo aceito por cada métrica
type Analytics struct {
	BaseYear        int      `mapstructure:"analytics_base_year"`
	GapMinYear      int      `mapstructure:"analytics_gap_min_year"`
	LeadTimeMinYear int      `mapstructure:"analytics_lead_time_min_year"`
	WeekpartMinYear int      `mapstructure:"analytics_weekpart_min_year"`
	SeasonalMinYear int      `mapstructure:"analytics_seasonal_min_year"`
	Apartments      []string `mapstructure:"analytics_apartments"`
}

// MinYear retorna o menor ano configurado, usado ao montar o livro de noites
func (a Analytics) MinYear() int {
	return min(a.BaseYear, a.GapMinYear, a.LeadTimeMinYear, a.WeekpartMinYear, a.SeasonalMinYear)
}

type LedgerRefresh struct {
	CronSchedule string `mapstructure:"ledger_refresh_cron"`
	Enabled      bool   `mapstructure:"ledger_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:4001")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/rental")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_ENABLED", false)

	viper.SetDefault("ANALYTICS_BASE_YEAR", 2023)
	viper.SetDefault("ANALYTICS_GAP_MIN_YEAR", 2024)
	viper.SetDefault("ANALYTICS_LEAD_TIME_MIN_YEAR", 2024)
	viper.SetDefault("ANALYTICS_WEEKPART_MIN_YEAR", 2024)
	viper.SetDefault("ANALYTICS_SEASONAL_MIN_YEAR", 2023)
	viper.SetDefault("ANALYTICS_APARTMENTS", "")

	viper.SetDefault("LEDGER_REFRESH_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("LEDGER_REFRESH_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", "dev")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
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

	config.Analytics.Apartments = compact(config.Analytics.Apartments)
	config.Server.CorsOrigins = compact(config.Server.CorsOrigins)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// compact remove itens vazios vindos de listas separadas por vírgula
func compact(items []string) []string {
	result := make([]string, 0, len(items))
	for _, item := range items {
		if item != "" {
			result = append(result, item)
		}
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
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
