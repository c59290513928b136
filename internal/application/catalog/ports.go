package catalog

import "context"

// MenuCard datos impresos en la tarjeta QR del menú.
type MenuCard struct {
	StoreName   string
	Description string
	Phone       string
	Address     string
	Schedule    string
	MenuURL     string // contenido del QR
}

// MenuCardGenerator puerto de generación del PDF de la tarjeta.
type MenuCardGenerator interface {
	GenerateMenuCard(ctx context.Context, card MenuCard) ([]byte, error)
}

// MenuURLFunc arma la URL pública del menú a partir del slug.
type MenuURLFunc func(slug string) string
