// Package viewcache implementa la señal de invalidación del caché de vistas
// renderizadas de la capa de presentación.
package viewcache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/tu-usuario/facturas-dashboard/internal/application/billing"
	"github.com/tu-usuario/facturas-dashboard/pkg/config"
)

var _ billing.ViewCache = (*RedisViewCache)(nil)

// keyPrefix namespace de las vistas renderizadas en Redis.
const keyPrefix = "view:"

// RedisViewCache invalida vistas borrando su clave en Redis. La capa de
// presentación guarda cada página renderizada bajo "view:<path>".
type RedisViewCache struct {
	client *redis.Client
}

// NewRedisViewCache conecta el cliente Redis y verifica la conexión con un ping.
func NewRedisViewCache(cfg config.RedisConfig) (*RedisViewCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("conectar Redis: %w", err)
	}
	return &RedisViewCache{client: client}, nil
}

// Invalidate descarta la vista cacheada bajo path.
func (c *RedisViewCache) Invalidate(ctx context.Context, path string) error {
	if err := c.client.Del(ctx, keyPrefix+path).Err(); err != nil {
		return fmt.Errorf("invalidar vista %s: %w", path, err)
	}
	return nil
}

// Close cierra la conexión con Redis.
func (c *RedisViewCache) Close() error {
	return c.client.Close()
}
