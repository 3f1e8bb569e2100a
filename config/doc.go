// Package config loads service configuration from YAML files and the
// environment using viper, with optional .env loading via godotenv.
package config
