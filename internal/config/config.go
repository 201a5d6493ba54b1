package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is the full service configuration, processed from WORKBENCH_* env
// vars in one pass at boot.
type Config struct {
	App      AppConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Upstream UpstreamConfig
	Identity IdentityConfig
	Archive  ArchiveConfig
}

type AppConfig struct {
	Addr      string `envconfig:"WORKBENCH_HTTP_ADDR" default:":8080"`
	LogLevel  string `envconfig:"WORKBENCH_LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"WORKBENCH_LOG_FORMAT" default:"json"`
}

type RedisConfig struct {
	Addr       string        `envconfig:"WORKBENCH_REDIS_ADDR" default:"localhost:6379"`
	Password   string        `envconfig:"WORKBENCH_REDIS_PASSWORD"`
	DB         int           `envconfig:"WORKBENCH_REDIS_DB" default:"0"`
	SessionTTL time.Duration `envconfig:"WORKBENCH_SESSION_TTL" default:"24h"`
}

type KafkaConfig struct {
	Broker         string `envconfig:"WORKBENCH_KAFKA_BROKER" default:"localhost:9092"`
	GeneratedTopic string `envconfig:"WORKBENCH_KAFKA_GENERATED_TOPIC" default:"workbench.catalog.generated"`
	ConsumerGroup  string `envconfig:"WORKBENCH_KAFKA_CONSUMER_GROUP" default:"workbench-archive"`
	Enabled        bool   `envconfig:"WORKBENCH_KAFKA_ENABLED" default:"true"`
}

type UpstreamConfig struct {
	MockServiceURL string        `envconfig:"WORKBENCH_MOCK_SERVICE_URL" default:"http://localhost:3090"`
	RegistryURL    string        `envconfig:"WORKBENCH_REGISTRY_URL" default:"http://localhost:3030"`
	Timeout        time.Duration `envconfig:"WORKBENCH_UPSTREAM_TIMEOUT" default:"10s"`
}

// IdentityConfig is the static BPP/BAP identity stamped into generated
// context blocks.
type IdentityConfig struct {
	BppID       string `envconfig:"WORKBENCH_BPP_ID" default:"workbench-bpp.ondc.org"`
	BppURI      string `envconfig:"WORKBENCH_BPP_URI" default:"https://workbench-bpp.ondc.org/bpp"`
	BapID       string `envconfig:"WORKBENCH_BAP_ID" default:"workbench-bap.ondc.org"`
	BapURI      string `envconfig:"WORKBENCH_BAP_URI" default:"https://workbench-bap.ondc.org/bap"`
	Country     string `envconfig:"WORKBENCH_COUNTRY" default:"IND"`
	City        string `envconfig:"WORKBENCH_CITY" default:"std:080"`
	CoreVersion string `envconfig:"WORKBENCH_CORE_VERSION" default:"1.2.0"`
}

type ArchiveConfig struct {
	Dir string `envconfig:"WORKBENCH_ARCHIVE_DIR" default:"./data/payloads"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}
