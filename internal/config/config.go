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
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Apify      Apify      `mapstructure:",squash"`
	IngestSync IngestSync `mapstructure:",squash"`
	Filter     Filter     `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
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

type Apify struct {
	URL       string `mapstructure:"apify_url"`
	Token     string `mapstructure:"apify_token"`
	DatasetID string `mapstructure:"apify_dataset_id"`
	PageSize  int    `mapstructure:"apify_page_size"`
}

type IngestSync struct {
	CronSchedule      string `mapstructure:"ingest_sync_cron"`
	MaxConcurrentJobs int    `mapstructure:"ingest_sync_max_concurrent_jobs"`
	BatchSize         int    `mapstructure:"ingest_sync_batch_size"`
	Enabled           bool   `mapstructure:"ingest_sync_enabled"`
	SourceKind        string `mapstructure:"ingest_sync_source"`
	FeedFilePath      string `mapstructure:"ingest_sync_feed_file"`
}

// Filter controla o filtro de mercado brasileiro. Limites de preço menores ou
// iguais a zero são tratados como não configurados.
type Filter struct {
	RequireBrazilSignals bool    `mapstructure:"filter_require_brazil_signals"`
	MinPrice             float64 `mapstructure:"filter_min_price"`
	MaxPrice             float64 `mapstructure:"filter_max_price"`
	DropIfNoImage        bool    `mapstructure:"filter_drop_if_no_image"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/caau")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("APIFY_URL", "https://api.apify.com")
	viper.SetDefault("APIFY_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("APIFY_DATASET_ID", "")
	viper.SetDefault("APIFY_PAGE_SIZE", 500)

	// Defaults para sincronização de ingestão
	viper.SetDefault("INGEST_SYNC_CRON", "0 */6 * * *") // A cada 6 horas
	viper.SetDefault("INGEST_SYNC_MAX_CONCURRENT_JOBS", 4)
	viper.SetDefault("INGEST_SYNC_BATCH_SIZE", 100)
	viper.SetDefault("INGEST_SYNC_ENABLED", false)
	viper.SetDefault("INGEST_SYNC_SOURCE", "apify") // apify ou feed
	viper.SetDefault("INGEST_SYNC_FEED_FILE", "")

	// Defaults para o filtro de mercado brasileiro
	viper.SetDefault("FILTER_REQUIRE_BRAZIL_SIGNALS", true)
	viper.SetDefault("FILTER_MIN_PRICE", 0)
	viper.SetDefault("FILTER_MAX_PRICE", 0)
	viper.SetDefault("FILTER_DROP_IF_NO_IMAGE", true)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
