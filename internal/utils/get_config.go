package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBSSLMode  string `yaml:"DB_SSLMODE"`

	// HTTP server configuration
	ServerPort  string `yaml:"SERVER_PORT"`
	CORSOrigins string `yaml:"CORS_ORIGINS"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}
}

func GetConfig(key string) string {
	switch key {
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "DB_SSLMODE":
		if config.DBSSLMode == "" {
			return "disable"
		}
		return config.DBSSLMode
	case "SERVER_PORT":
		if config.ServerPort == "" {
			return "3000"
		}
		return config.ServerPort
	case "CORS_ORIGINS":
		if config.CORSOrigins == "" {
			return "*"
		}
		return config.CORSOrigins
	default:
		return ""
	}
}
