package config

import (
	"github.com/jinzhu/configor"
)

type Config struct {
	AppConfig   AppConfig   `env:"APPCONFIG"`
	DBConfig    DBConfig    `env:"DBCONFIG"`
	RedisConfig RedisConfig `env:"REDISCONFIG"`
	StoreConfig StoreConfig `env:"STORECONFIG"`
}

type AppConfig struct {
	APPName    string `default:"pocket-worlds"`
	Version    string `default:"x.x.x" env:"VERSION"`
	Port       int    `default:"8080" env:"APP_PORT"`
	HealthPort int    `default:"8081" env:"HEALTH_PORT"`
}

type DBConfig struct {
	Host     string `default:"localhost" env:"DBHOST"`
	DataBase string `default:"pocketworlds" env:"DBNAME"`
	User     string `default:"postgres" env:"DBUSERNAME"`
	Password string `required:"true" env:"DBPASSWORD" default:"mysecretpassword"`
	Port     uint   `default:"5432" env:"DBPORT"`
	SSLMode  string `default:"disable" env:"DBSSL"`
}

type RedisConfig struct {
	Addr     string `default:"localhost:6379" env:"REDIS_ADDR"`
	Password string `default:"" env:"REDIS_PASSWORD"`
	DB       int    `default:"0" env:"REDIS_DB"`
}

// StoreConfig selects where the profile blob and auth records live.
// Backend is one of "postgres", "redis" or "memory".
type StoreConfig struct {
	Backend string `default:"postgres" env:"STORE_BACKEND"`
}

func LoadConfigOrPanic() Config {
	var config = Config{}
	configor.Load(&config, "config/config.dev.json")

	return config
}
