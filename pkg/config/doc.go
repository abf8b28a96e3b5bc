// Package config fills configuration structs from environment variables
// with github.com/caarlos0/env/v11, after reading optional .env files with
// github.com/joho/godotenv.
package config
