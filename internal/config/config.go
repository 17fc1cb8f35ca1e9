package config

import (
	"flag"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Config struct {
	// Адрес на котором запустится сервер
	ServerAddress string `env:"SERVER_ADDRESS"`
	// DSN клиент-серверного движка. Если задан - работаем на postgres
	DatabaseDSN string `env:"DATABASE_DSN"`
	// Путь к файлу встраиваемого движка
	SQLiteDBPath string `env:"SQLITE_PATH"`
	// Тело ответа корневого маршрута
	IndexResponse string `env:"INDEX_RESPONSE" envDefault:"Welcome"`
	Logger        *logrus.Logger
}

func LoadConfig() (*Config, error) {
	var flagsConfig, envConfig Config
	logger := initLogger()

	if err := env.Parse(&envConfig); err != nil {
		return nil, errors.Wrapf(err, "parse ENV config error")
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	conf.Logger = logger
	return conf, nil
}

// MustLoadConfig вызывает панику если произошла ошибка.
func MustLoadConfig() *Config {
	conf, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return conf
}

// loadFlags парсит флаги командной строки.
func loadFlags(flagsConfig *Config) {
	flag.StringVar(&flagsConfig.ServerAddress, "a", "localhost:8080", "Адрес сервера")
	flag.StringVar(&flagsConfig.DatabaseDSN, "d", "", "DSN postgres (пусто - используем sqlite)")
	flag.StringVar(&flagsConfig.SQLiteDBPath, "f", "tagmark.db", "Путь к файлу sqlite")
	flag.Parse()
}

// mergeConfig сливает структуры для env и флагов. Значения из окружения главнее.
func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		ServerAddress: defaultIfBlank(envConfig.ServerAddress, flagsConfig.ServerAddress),
		DatabaseDSN:   defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		SQLiteDBPath:  defaultIfBlank(envConfig.SQLiteDBPath, flagsConfig.SQLiteDBPath),
		IndexResponse: envConfig.IndexResponse,
	}
}

func defaultIfBlank(value, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
