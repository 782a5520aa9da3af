package boot

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Env     string `env:"ENV,default=dev"`
	DataDir string `env:"DATA_DIR"`
	Server  struct {
		Port        string `env:"PORT,default=8080"`
		MetricsPort string `env:"METRICS_PORT,default=8081"`
		Origins     string `env:"ALLOWED_ORIGINS,default=*"`
	}
	Mgmt struct {
		Enabled bool `env:"MGMT_ENABLED,default=true"`
	}
	Auth struct {
		JWTSecret        string `env:"JWT_SECRET,required"`
		AuthorityDomains string `env:"AUTHORITY_DOMAINS"`
	}
}

func Load() (*Config, error) {
	config := &Config{}
	if err := envconfig.Process(context.Background(), config); err != nil {
		return nil, fmt.Errorf("parsing env vars: %w", err)
	}
	return config, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "prod"
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "dev"
}

func (c *Config) DataDirectory() string {
	return c.DataDir
}
