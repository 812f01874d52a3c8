package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type (
	Tasks struct {
		OrdersMetricsInterval time.Duration
	}

	HTTPServer struct {
		Port              string
		RequestTimeout    time.Duration // middleware timeout
		ChatStreamTimeout time.Duration // таймаут на весь стрим /get-oai-response
		PprofEnabled      bool
		PprofPort         string
	}

	App struct {
		Version  string
		LogLevel string
		MenuPath string
	}

	AzureOpenAI struct {
		Endpoint       string
		APIKey         string
		ChatDeployment string
		APIVersion     string
	}

	AzureSpeech struct {
		Region string
		APIKey string
	}

	Chat struct {
		StreamBuffer int
	}

	Storage struct {
		Driver   string
		Database Database
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Kafka struct {
		Enabled       bool
		Brokers       string
		Topic         string
		ConsumerGroup string
		Sarama        Sarama
		Handlers      KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		OrderStatusChanged OrderStatusChanged
	}

	OrderStatusChanged struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		App         App
		Tasks       Tasks
		Server      HTTPServer
		AzureOpenAI AzureOpenAI
		AzureSpeech AzureSpeech
		Chat        Chat
		Storage     Storage
		Kafka       Kafka
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// SpeechConfigured регион и ключ заданы. Без них токен-ручки отвечают ошибкой, а не падают.
func (c AzureSpeech) Configured() bool {
	return c.Region != "" && c.APIKey != ""
}

// EnvStatus какие переменные окружения Azure заданы. Значения наружу не отдаются.
func (c *Config) EnvStatus() map[string]bool {
	return map[string]bool{
		"AZURE_OPENAI_ENDPOINT":        c.AzureOpenAI.Endpoint != "",
		"AZURE_OPENAI_API_KEY":         c.AzureOpenAI.APIKey != "",
		"AZURE_OPENAI_CHAT_DEPLOYMENT": c.AzureOpenAI.ChatDeployment != "",
		"AZURE_OPENAI_API_VERSION":     c.AzureOpenAI.APIVersion != "",
		"AZURE_SPEECH_REGION":          c.AzureSpeech.Region != "",
		"AZURE_SPEECH_API_KEY":         c.AzureSpeech.APIKey != "",
	}
}

func loadFromEnv() (*Config, error) {
	ordersMetricsInterval, err := osGetEnvDurationDefault("BACKGROUND_ORDERS_METRICS_INTERVAL", 15*time.Second)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDurationDefault("MIDDLEWARE_REQUEST_TIMEOUT", 15*time.Second)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	chatStreamTimeout, err := osGetEnvDurationDefault("CHAT_STREAM_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	chatStreamBuffer, err := osGetIntDefault("CHAT_STREAM_BUFFER", 16)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	kafkaEnabled, err := osGetBool("KAFKA_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	orderStatusChangedTimeout, err := osGetEnvDurationDefault("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		App: App{
			Version:  osGetEnvDefault("APP_VERSION", "0.1.0"),
			LogLevel: osGetEnvDefault("LOG_LEVEL", "info"),
			MenuPath: osGetEnvDefault("MENU_PATH", "menu.json"),
		},
		Tasks: Tasks{
			OrdersMetricsInterval: ordersMetricsInterval,
		},
		Server: HTTPServer{
			Port:              os.Getenv("PORT"),
			RequestTimeout:    requestTimeout,
			ChatStreamTimeout: chatStreamTimeout,
			PprofEnabled:      pprofEnabled,
			PprofPort:         os.Getenv("PPROF_PORT"),
		},
		AzureOpenAI: AzureOpenAI{
			Endpoint:       os.Getenv("AZURE_OPENAI_ENDPOINT"),
			APIKey:         os.Getenv("AZURE_OPENAI_API_KEY"),
			ChatDeployment: os.Getenv("AZURE_OPENAI_CHAT_DEPLOYMENT"),
			APIVersion:     osGetEnvDefault("AZURE_OPENAI_API_VERSION", "2023-07-01-preview"),
		},
		AzureSpeech: AzureSpeech{
			Region: os.Getenv("AZURE_SPEECH_REGION"),
			APIKey: os.Getenv("AZURE_SPEECH_API_KEY"),
		},
		Chat: Chat{
			StreamBuffer: chatStreamBuffer,
		},
		Storage: Storage{
			Driver: strings.ToLower(osGetEnvDefault("ORDER_STORAGE", StorageMemory)),
			Database: Database{
				Host:     os.Getenv("POSTGRES_HOST"),
				Port:     os.Getenv("POSTGRES_PORT"),
				User:     os.Getenv("POSTGRES_USER"),
				Password: os.Getenv("POSTGRES_PASSWORD"),
				DBName:   os.Getenv("POSTGRES_DB"),
				SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
			},
		},
		Kafka: Kafka{
			Enabled:       kafkaEnabled,
			Brokers:       os.Getenv("KAFKA_BROKERS"),
			Topic:         os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup: os.Getenv("KAFKA_CONSUMER_GROUP"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				OrderStatusChanged: OrderStatusChanged{
					ProcessTimeout: orderStatusChangedTimeout,
				},
			},
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout <= 0 {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT must be positive")
	}
	if cfg.Server.ChatStreamTimeout <= 0 {
		return errors.New("CHAT_STREAM_TIMEOUT must be positive")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}
	if cfg.Chat.StreamBuffer < 0 {
		return errors.New("CHAT_STREAM_BUFFER must not be negative")
	}
	if cfg.Tasks.OrdersMetricsInterval <= 0 {
		return errors.New("BACKGROUND_ORDERS_METRICS_INTERVAL must be positive")
	}

	switch cfg.Storage.Driver {
	case StorageMemory:
	case StoragePostgres:
		if err := validateDatabase(cfg.Storage.Database); err != nil {
			return err
		}
	default:
		return fmt.Errorf("ORDER_STORAGE must be %q or %q, got %q", StorageMemory, StoragePostgres, cfg.Storage.Driver)
	}

	if cfg.Kafka.Enabled {
		if err := validateKafka(cfg.Kafka); err != nil {
			return err
		}
	}

	// Azure не валидируем: без чата ошибка придёт строкой стрима, без speech ручки ответят {error}.
	return nil
}

func validateDatabase(db Database) error {
	if db.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if db.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if db.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if db.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if db.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if db.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	return nil
}

func validateKafka(k Kafka) error {
	if k.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if k.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if k.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if k.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	if k.Handlers.OrderStatusChanged.ProcessTimeout <= 0 {
		return errors.New("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT must be positive")
	}
	return nil
}

func osGetEnvDefault(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func osGetIntDefault(s string, def int) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return def, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDurationDefault(s string, def time.Duration) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return def, nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
