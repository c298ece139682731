package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/liris-lib/library-service/pkg/kafka"
	"github.com/liris-lib/library-service/pkg/logger"
	"github.com/liris-lib/library-service/pkg/postgres"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"HTTP_PORT" default:"5001"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"30s"`
	WriteTimeout time.Duration
}

type Session struct {
	Lifetime   time.Duration `envconfig:"SESSION_LIFETIME" default:"2h"`
	CookieName string        `envconfig:"SESSION_COOKIE_NAME" default:"library_session"`
}

type API struct {
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:8080"`
	MaxPageSize int      `envconfig:"MAX_PAGE_SIZE" default:"100"`
}

type Config struct {
	Server   HTTPServer      `yaml:"server"`
	Database postgres.Config `yaml:"database"`
	Session  Session         `yaml:"session"`
	API      API             `yaml:"api"`
	Kafka    kafka.Config
	Log      logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return &cfg
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
