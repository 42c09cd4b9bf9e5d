package repository

import (
	"context"

	"github.com/jhoicas/pipeday-api/internal/domain/entity"
)

// SettingsRepository almacén clave-valor de la configuración del operador.
// Load devuelve (nil, nil) cuando todavía no hay nada guardado.
type SettingsRepository interface {
	Load(ctx context.Context) (*entity.Settings, error)
	Save(ctx context.Context, settings entity.Settings) error
}
