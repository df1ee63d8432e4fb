package entity

// FallbackAvatar ruta de imagen usada cuando el cliente no tiene image_url.
const FallbackAvatar = "/images/fallback-avatar.png"

// Customer representa un cliente facturable.
type Customer struct {
	ID       string
	Name     string
	Email    string
	ImageURL string // puede venir vacío desde la DB; el caso de uso aplica FallbackAvatar
}
