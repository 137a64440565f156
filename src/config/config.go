package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Service         ServiceConfig        `mapstructure:"service"`
	Databases       DatabasesConfig      `mapstructure:"databases"`
	ExternalClients ExternalClientConfig `mapstructure:"externalClients"`
	RateLimit       RateLimitConfig      `mapstructure:"rateLimit"`
	Scheduler       SchedulerConfig      `mapstructure:"scheduler"`
}

type ServiceConfig struct {
	Port string `mapstructure:"port"`
}

type DatabasesConfig struct {
	SQL   SQLConfig   `mapstructure:"sql"`
	Redis RedisConfig `mapstructure:"redis"`
}

type SQLConfig struct {
	Host             string `mapstructure:"host"`
	Port             string `mapstructure:"port"`
	Username         string `mapstructure:"username"`
	Password         string `mapstructure:"password"`
	Database         string `mapstructure:"database"`
	ConnectionString string `mapstructure:"connection_string"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Database int    `mapstructure:"database"`
}

type ExternalClientConfig struct {
	TInvest  TInvestConfig  `mapstructure:"tinvest"`
	Telegram TelegramConfig `mapstructure:"telegram"`
}

type TInvestConfig struct {
	BaseURL string `mapstructure:"baseUrl"`
	// Token comes from the TINVEST_TOKEN environment variable, never from
	// the yaml file.
	Token string `mapstructure:"token"`
}

type TelegramConfig struct {
	BaseURL string `mapstructure:"baseUrl"`
	Token   string `mapstructure:"token"`
}

type RateLimitConfig struct {
	Threshold      int64 `mapstructure:"threshold"`
	BackoffSeconds int   `mapstructure:"backoffSeconds"`
}

type SchedulerConfig struct {
	RefreshCron      string `mapstructure:"refreshCron"`
	CounterResetCron string `mapstructure:"counterResetCron"`
}

func LoadConfig(path string) (*Config, error) {
	var cfg Config

	viper.AddConfigPath(path)
	viper.SetConfigName("appsettings")
	viper.SetConfigType("yaml")

	_ = viper.BindEnv("externalClients.tinvest.token", "TINVEST_TOKEN")
	_ = viper.BindEnv("externalClients.telegram.token", "TELEGRAM_TOKEN")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}
	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}
	if cfg.RateLimit.Threshold == 0 {
		cfg.RateLimit.Threshold = 190
	}
	if cfg.RateLimit.BackoffSeconds == 0 {
		cfg.RateLimit.BackoffSeconds = 10
	}
	return &cfg, nil
}
