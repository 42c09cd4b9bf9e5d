package crm

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/pipeday-api/internal/application/workspace"
)

var nowFunc = time.Now

// refresh relee el almacén tras una mutación ya persistida; un fallo solo se registra.
func refresh(ctx context.Context, ws workspace.Cache, log zerolog.Logger) {
	if err := ws.Refresh(ctx); err != nil {
		log.Warn().Err(err).Msg("crm: caché desactualizada tras la mutación")
	}
}
