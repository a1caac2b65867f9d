package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	HTTPPort    string
	DatabaseDSN string
	JWTSecret   string
	CORSOrigins string
	RedisAddr   string // vazio = cache desabilitado

	// Faixa de alerta de envelhecimento de pedidos: quantos dias antes da
	// data prevista o pedido passa de verde para amarelo. Vermelho é sempre
	// pedido vencido. Valor vem de configuração, não de código.
	OrderAlertYellowDays int
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:             getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:          getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=estoque port=5432 sslmode=disable"),
		JWTSecret:            getEnv("JWT_SECRET", ""),
		CORSOrigins:          getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		RedisAddr:            getEnv("REDIS_ADDR", ""),
		OrderAlertYellowDays: getEnvInt("ORDER_ALERT_YELLOW_DAYS", 7),
	}

	// Checagens de segurança para produção
	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET não definido! Obrigatório para subir o servidor.")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET precisa ter no mínimo 32 caracteres!")
	}
	if cfg.DatabaseDSN == "host=localhost user=postgres password=postgres dbname=estoque port=5432 sslmode=disable" {
		log.Println("[WARN] DATABASE_DSN usando valor padrão, defina a sua conexão Postgres em produção.")
	}
	if cfg.OrderAlertYellowDays < 0 {
		log.Fatal("[FATAL] ORDER_ALERT_YELLOW_DAYS não pode ser negativo.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("[FATAL] %s precisa ser um número inteiro, recebido: %q", key, v)
	}
	return n
}
