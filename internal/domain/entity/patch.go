package entity

// FieldChange una columna a actualizar con su nuevo valor.
// Los tipos Patch de cada entidad producen la lista completa de cambios; ningún campo
// presente en el patch se descarta en silencio.
type FieldChange struct {
	Column string
	Value  any
}
