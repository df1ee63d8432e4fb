package viewcache

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/facturas-dashboard/internal/application/billing"
)

var _ billing.ViewCache = (*NoopViewCache)(nil)

// NoopViewCache implementación sin backend, para despliegues sin Redis y para
// desarrollo local. Solo deja rastro en el log.
type NoopViewCache struct{}

// NewNoopViewCache construye el no-op.
func NewNoopViewCache() *NoopViewCache {
	return &NoopViewCache{}
}

// Invalidate registra la señal y no hace nada más.
func (NoopViewCache) Invalidate(_ context.Context, path string) error {
	log.Debug().Str("path", path).Msg("invalidación de vista (noop)")
	return nil
}
