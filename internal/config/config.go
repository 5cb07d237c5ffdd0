package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Storage         Storage         `mapstructure:",squash"`
	Seed            Seed            `mapstructure:",squash"`
	Latency         Latency         `mapstructure:",squash"`
	MetricsSnapshot MetricsSnapshot `mapstructure:",squash"`
	Cors            Cors            `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Storage define onde os arquivos do armazenamento chave-valor ficam no disco
type Storage struct {
	DataDir string `mapstructure:"data_dir"`
}

// Seed configura a origem remota do seed inicial de leads. URL vazia pula
// a busca remota e usa direto o conjunto embutido.
type Seed struct {
	LeadsURL string `mapstructure:"seed_leads_url"`
}

// Latency configura os atrasos artificiais por operação dos repositórios.
// Existem para exercitar estados de carregamento do console, não por
// restrição real de I/O. Desabilitados nos testes.
type Latency struct {
	Enabled           bool          `mapstructure:"simulated_latency_enabled"`
	LeadList          time.Duration `mapstructure:"lead_list_delay"`
	LeadCreate        time.Duration `mapstructure:"lead_create_delay"`
	LeadUpdate        time.Duration `mapstructure:"lead_update_delay"`
	LeadDelete        time.Duration `mapstructure:"lead_delete_delay"`
	LeadFind          time.Duration `mapstructure:"lead_find_delay"`
	OpportunityList   time.Duration `mapstructure:"opportunity_list_delay"`
	OpportunityCreate time.Duration `mapstructure:"opportunity_create_delay"`
	OpportunityUpdate time.Duration `mapstructure:"opportunity_update_delay"`
	OpportunityDelete time.Duration `mapstructure:"opportunity_delete_delay"`
	OpportunityFind   time.Duration `mapstructure:"opportunity_find_delay"`
}

type MetricsSnapshot struct {
	CronSchedule string `mapstructure:"metrics_snapshot_cron"`
	Enabled      bool   `mapstructure:"metrics_snapshot_enabled"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("SEED_LEADS_URL", "")

	// Atrasos artificiais espelhando a latência da versão original do console
	viper.SetDefault("SIMULATED_LATENCY_ENABLED", true)
	viper.SetDefault("LEAD_LIST_DELAY", "600ms")
	viper.SetDefault("LEAD_CREATE_DELAY", "800ms")
	viper.SetDefault("LEAD_UPDATE_DELAY", "700ms")
	viper.SetDefault("LEAD_DELETE_DELAY", "500ms")
	viper.SetDefault("LEAD_FIND_DELAY", "300ms")
	viper.SetDefault("OPPORTUNITY_LIST_DELAY", "500ms")
	viper.SetDefault("OPPORTUNITY_CREATE_DELAY", "700ms")
	viper.SetDefault("OPPORTUNITY_UPDATE_DELAY", "600ms")
	viper.SetDefault("OPPORTUNITY_DELETE_DELAY", "400ms")
	viper.SetDefault("OPPORTUNITY_FIND_DELAY", "250ms")

	// Defaults para o snapshot periódico de métricas
	viper.SetDefault("METRICS_SNAPSHOT_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("METRICS_SNAPSHOT_ENABLED", false)       // Habilitar snapshot de métricas

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
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

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
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
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
