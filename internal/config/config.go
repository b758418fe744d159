package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Formatos de relatório aceitos em REPORT_FORMAT
const (
	ReportFormatText = "text"
	ReportFormatJSON = "json"
	ReportFormatAll  = "all"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Simulation Simulation `mapstructure:",squash"`
	Report     Report     `mapstructure:",squash"`
	ReportSync ReportSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Simulation struct {
	Products     []string `mapstructure:"simulation_products"`
	RecordCount  int      `mapstructure:"simulation_record_count"`
	Year         int      `mapstructure:"simulation_year"`
	MinQuantity  int      `mapstructure:"simulation_min_quantity"`
	MaxQuantity  int      `mapstructure:"simulation_max_quantity"`
	MinUnitPrice float64  `mapstructure:"simulation_min_unit_price"`
	MaxUnitPrice float64  `mapstructure:"simulation_max_unit_price"`
	MaxDay       int      `mapstructure:"simulation_max_day"`
	Seed         uint64   `mapstructure:"simulation_seed"`
}

type Report struct {
	Format      string `mapstructure:"report_format"`
	PreviewSize int    `mapstructure:"report_preview_size"`
}

type ReportSync struct {
	CronSchedule string `mapstructure:"report_sync_cron"`
	Enabled      bool   `mapstructure:"report_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "info")

	// Catálogo da Mercearia e Panificação Tawany
	viper.SetDefault("SIMULATION_PRODUCTS", []string{"Pão", "Leite", "Queijo", "Café", "Bolo", "Biscoito"})
	viper.SetDefault("SIMULATION_RECORD_COUNT", 100)
	viper.SetDefault("SIMULATION_YEAR", 2023)
	viper.SetDefault("SIMULATION_MIN_QUANTITY", 1)
	viper.SetDefault("SIMULATION_MAX_QUANTITY", 20)
	viper.SetDefault("SIMULATION_MIN_UNIT_PRICE", 2.0)
	viper.SetDefault("SIMULATION_MAX_UNIT_PRICE", 20.0)
	viper.SetDefault("SIMULATION_MAX_DAY", 28) // Evita datas inválidas em fevereiro
	viper.SetDefault("SIMULATION_SEED", 0)     // 0 = semente aleatória

	viper.SetDefault("REPORT_FORMAT", ReportFormatText)
	viper.SetDefault("REPORT_PREVIEW_SIZE", 5)

	viper.SetDefault("REPORT_SYNC_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("REPORT_SYNC_ENABLED", false)    // Executa uma única vez por padrão
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente e valores padrão (viper não conseguiu ler .env): ", err)
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

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate verifica a consistência dos parâmetros de simulação e relatório
func (c *Config) Validate() error {
	switch {
	case len(c.Simulation.Products) == 0:
		return fmt.Errorf("%w: simulation_products must not be empty", ErrInvalidConfig)
	case c.Simulation.RecordCount < 0:
		return fmt.Errorf("%w: simulation_record_count must not be negative", ErrInvalidConfig)
	case c.Simulation.MinQuantity > c.Simulation.MaxQuantity:
		return fmt.Errorf("%w: simulation_min_quantity is greater than simulation_max_quantity", ErrInvalidConfig)
	case c.Simulation.MinUnitPrice > c.Simulation.MaxUnitPrice:
		return fmt.Errorf("%w: simulation_min_unit_price is greater than simulation_max_unit_price", ErrInvalidConfig)
	case c.Simulation.MaxDay < 1 || c.Simulation.MaxDay > 28:
		return fmt.Errorf("%w: simulation_max_day must be between 1 and 28", ErrInvalidConfig)
	}

	switch c.Report.Format {
	case ReportFormatText, ReportFormatJSON, ReportFormatAll:
	default:
		return fmt.Errorf("%w: unknown report_format %q", ErrInvalidConfig, c.Report.Format)
	}

	return nil
}

// loadEnvFile carrega o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
