package configuration

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type (
	Properties struct {
		LogLevel string `env:"LOG_LEVEL" envDefault:"DEBUG"`

		Auth      AuthProperties       `envPrefix:"AUTH_"`
		DB        DBProperties         `envPrefix:"DB_"`
		Uploads   UploadsProperties    `envPrefix:"UPLOADS_"`
		S3        S3Properties         `envPrefix:"S3_"`
		Server    HttpServerProperties `envPrefix:"HTTP_"`
		Generator GeneratorProperties  `envPrefix:"GEN_"`
	}

	AuthProperties struct {
		Secret     string        `env:"SECRET" envDefault:"change-me-in-production"`
		TokenTTL   time.Duration `env:"TOKEN_TTL" envDefault:"30m"`
		BcryptCost int           `env:"BCRYPT_COST" envDefault:"12"`
	}

	DBProperties struct {
		Path          string `env:"PATH" envDefault:"frameless.db"`
		CascadeDelete bool   `env:"CASCADE_DELETE" envDefault:"false"`
	}

	UploadsProperties struct {
		Driver  string `env:"DRIVER" envDefault:"local"`
		Dir     string `env:"DIR" envDefault:"uploads/images"`
		BaseURL string `env:"BASE_URL" envDefault:"/uploads/images"`
	}

	HttpServerProperties struct {
		Name        string        `env:"NAME" envDefault:"frameless"`
		Port        string        `env:"PORT" envDefault:"8088"`
		ReadTimeout time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
		MaxPageSize int           `env:"MAX_PAGE_SIZE" envDefault:"500"`
	}

	GeneratorProperties struct {
		Backend string        `env:"BACKEND" envDefault:"placeholder"`
		Host    string        `env:"HOST" envDefault:"http://localhost:9090"`
		Timeout time.Duration `env:"TIMEOUT" envDefault:"60s"`
	}

	S3Properties struct {
		Host        string        `env:"HOST" envDefault:"https://s3.minio.com"`
		AccessKey   string        `env:"ACCESS_KEY"`
		SecretKey   string        `env:"SECRET_KEY"`
		Bucket      string        `env:"BUCKET" envDefault:"frameless"`
		UseSSL      bool          `env:"USE_SSL" envDefault:"true"`
		ReadTimeout time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	}
)

func ReadProperties() *Properties {
	config := &Properties{}

	if err := env.Parse(config); err != nil {
		panic(fmt.Errorf("read config error: %w", err))
	}
	return config
}
