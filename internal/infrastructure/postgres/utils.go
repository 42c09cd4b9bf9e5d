package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/pipeday-api/internal/domain"
	"github.com/jhoicas/pipeday-api/internal/domain/entity"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return pgCode(err) == "23505"
}

// isForeignKeyViolation cliente o servicio inexistente (23503).
func isForeignKeyViolation(err error) bool {
	return pgCode(err) == "23503"
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// persistErr envuelve cualquier rechazo del almacén en *domain.PersistenceError.
func persistErr(op, ent string, err error) error {
	switch {
	case isUniqueViolation(err):
		err = fmt.Errorf("registro duplicado: %w", err)
	case isForeignKeyViolation(err):
		err = fmt.Errorf("referencia inexistente: %w", err)
	}
	return &domain.PersistenceError{Op: op, Entity: ent, Err: err}
}

// buildUpdate arma "UPDATE t SET a = $2, b = $3 WHERE id = $1" con las columnas del
// patch. ok=false si el patch no trae cambios.
func buildUpdate(table, id string, changes []entity.FieldChange) (query string, args []any, ok bool) {
	if len(changes) == 0 {
		return "", nil, false
	}
	sets := make([]string, 0, len(changes))
	args = make([]any, 0, len(changes)+1)
	args = append(args, id)
	for i, c := range changes {
		sets = append(sets, fmt.Sprintf("%s = $%d", c.Column, i+2))
		args = append(args, c.Value)
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE id = $1", table, strings.Join(sets, ", ")), args, true
}

// execOne ejecuta un UPDATE/DELETE por id. Cero filas afectadas = domain.ErrNotFound:
// el registro ya no existe aunque la caché todavía lo muestre.
func execOne(ctx context.Context, q Querier, op, ent, query string, args ...any) error {
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return persistErr(op, ent, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", op, ent, domain.ErrNotFound)
	}
	return nil
}
