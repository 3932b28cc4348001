// Package config загружает конфигурацию клиента и сервера из YAML файла.
// Отсутствующий файл не является ошибкой, используются значения по умолчанию.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration оборачивает time.Duration для разбора строк вида "30s" из YAML
type Duration time.Duration

// UnmarshalYAML разбирает длительность из строкового значения
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}

	*d = Duration(parsed)
	return nil
}

// MarshalYAML сериализует длительность в строку
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Std возвращает стандартный time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// ClientConfig настройки клиента синхронизации
type ClientConfig struct {
	ServerURL      string   `yaml:"server_url"`
	DBPath         string   `yaml:"db_path"`
	DeviceID       string   `yaml:"device_id"`
	UserID         string   `yaml:"user_id"`
	SyncInterval   Duration `yaml:"sync_interval"`
	RequestTimeout Duration `yaml:"request_timeout"`
	BackoffBase    Duration `yaml:"backoff_base"`
	BackoffMax     Duration `yaml:"backoff_max"`
	MaxAttempts    uint64   `yaml:"max_attempts"`
}

// ServerConfig настройки сервера синхронизации
type ServerConfig struct {
	Addr      string   `yaml:"addr"`
	DBPath    string   `yaml:"db_path"`
	JWTSecret string   `yaml:"jwt_secret"`
	TokenTTL  Duration `yaml:"token_ttl"`
}

// Config корневая конфигурация приложения
type Config struct {
	Client ClientConfig `yaml:"client"`
	Server ServerConfig `yaml:"server"`
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Client: ClientConfig{
			ServerURL:      "http://localhost:8080",
			DBPath:         "driftsync.db",
			SyncInterval:   Duration(30 * time.Second),
			RequestTimeout: Duration(10 * time.Second),
			BackoffBase:    Duration(500 * time.Millisecond),
			BackoffMax:     Duration(30 * time.Second),
			MaxAttempts:    3,
		},
		Server: ServerConfig{
			Addr:     ":8080",
			DBPath:   "driftsync-server.db",
			TokenTTL: Duration(time.Hour),
		},
	}
}

// Load читает конфигурацию из файла поверх значений по умолчанию.
// Пустой путь или отсутствующий файл дают конфигурацию по умолчанию.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}
