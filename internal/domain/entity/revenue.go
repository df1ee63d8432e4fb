package entity

// Revenue ingreso mensual para la gráfica del dashboard. Datos de referencia
// append-only: solo los crea la rutina de seed.
type Revenue struct {
	Month   string
	Revenue int64
}
