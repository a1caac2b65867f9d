package cache

import (
	"context"
	"log"
	"time"

	"estoque-backend/internal/config"

	"github.com/redis/go-redis/v9"
)

// Client fica nil quando REDIS_ADDR não está configurado; quem usa o cache
// precisa tratar o caso desabilitado.
var Client *redis.Client

const ProductLookupTTL = 5 * time.Minute

func Init(cfg *config.Config) {
	if cfg.RedisAddr == "" {
		log.Println("REDIS_ADDR vazio, cache de produtos desabilitado.")
		return
	}

	c := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := c.Ping(ctx).Err(); err != nil {
		// Cache é opcional: segue sem ele em vez de derrubar o servidor
		log.Printf("[WARN] Redis inacessível em %s (%v), seguindo sem cache.", cfg.RedisAddr, err)
		return
	}

	Client = c
	log.Println("Cache Redis conectado:", cfg.RedisAddr)
}

func ProductKey(code string) string {
	return "produto:codigo:" + code
}
