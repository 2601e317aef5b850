package config

import (
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type AppConfig struct {
	Port       string        `mapstructure:"port"`
	Env        string        `mapstructure:"env"`
	SiteURL    string        `mapstructure:"site_url"`
	Revalidate time.Duration `mapstructure:"revalidate"`
}

// DBConfig carries the pieces the connection string is assembled from.
// DSN, when set, wins over the individual fields.
type DBConfig struct {
	DSN            string `mapstructure:"dsn"`
	Host           string `mapstructure:"host"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	Name           string `mapstructure:"name"`
	SSLMode        string `mapstructure:"sslmode"`
	ChannelBinding string `mapstructure:"channel_binding"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
}

type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
}

type JaegerConfig struct {
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
}

type Config struct {
	App    AppConfig    `mapstructure:"app"`
	DB     DBConfig     `mapstructure:"db"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Kafka  KafkaConfig  `mapstructure:"kafka"`
	Jaeger JaegerConfig `mapstructure:"jaeger"`
}

// ConnString returns the Postgres URL. TLS is required unless sslmode says otherwise.
func (c DBConfig) ConnString() string {
	if c.DSN != "" {
		return c.DSN
	}

	q := url.Values{}
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "require"
	}
	q.Set("sslmode", sslMode)
	if c.ChannelBinding != "" {
		q.Set("channel_binding", c.ChannelBinding)
	}

	u := url.URL{
		Scheme:   "postgresql",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host,
		Path:     "/" + c.Name,
		RawQuery: q.Encode(),
	}
	return u.String()
}

// LoadConfig reads .env, an optional config.yaml from paths (default "."),
// then the environment.
func LoadConfig(paths ...string) (cfg Config, err error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	if err := godotenv.Load(); err != nil {
		log.Println("warning: .env file not found, use environment only.")
	}

	v := viper.New()
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, read environment only. Error: %v", err)
	}

	v.SetDefault("app.port", "8080")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.revalidate", time.Hour)
	v.SetDefault("db.sslmode", "require")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("app.port", "APP_PORT", "PORT")
	v.BindEnv("app.env", "APP_ENV")
	v.BindEnv("app.site_url", "APP_SITE_URL", "NEXT_PUBLIC_SITE_URL")
	v.BindEnv("app.revalidate", "APP_REVALIDATE")

	v.BindEnv("db.dsn", "DB_DSN")
	v.BindEnv("db.host", "PGHOST")
	v.BindEnv("db.user", "PGUSER")
	v.BindEnv("db.password", "PGPASSWORD")
	v.BindEnv("db.name", "PGDATABASE")
	v.BindEnv("db.sslmode", "PGSSLMODE")
	v.BindEnv("db.channel_binding", "PGCHANNELBINDING")

	v.BindEnv("redis.addr", "REDIS_ADDR")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("kafka.brokers", "KAFKA_BROKERS")
	v.BindEnv("jaeger.otlp_endpoint", "OTEL_EXPORTER_OTLP_ENDPOINT")

	err = v.Unmarshal(&cfg)
	return
}
