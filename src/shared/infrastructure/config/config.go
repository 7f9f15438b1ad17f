package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq" // Driver de PostgreSQL
)

// Config concentra a configuração do serviço, carregada do ambiente
type Config struct {
	Port              string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	JWTSecret         string
	PrometheusEnabled bool
	CORSOrigins       []string
}

// Load carrega a configuração de variáveis de ambiente (.env é opcional)
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Arquivo .env não encontrado, usando variáveis de ambiente")
	}

	return &Config{
		Port:              getEnv("PORT", "8080"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBName:            getEnv("DB_NAME", "smartagenda_db"),
		JWTSecret:         getEnv("JWT_SECRET", "dev-secret-change-me"),
		PrometheusEnabled: getEnv("PROMETHEUS_ENABLED", "false") == "true",
		CORSOrigins:       []string{getEnv("CORS_ORIGIN", "http://localhost:3000")},
	}
}

// ConnectDB abre e valida a conexão com o PostgreSQL
func (c *Config) ConnectDB() (*sql.DB, error) {
	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	return db, nil
}

// getEnv obtém uma variável de ambiente ou devolve um valor padrão
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
