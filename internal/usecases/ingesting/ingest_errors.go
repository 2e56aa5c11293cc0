package ingesting

import "errors"

// Erros específicos para o contexto de ingestão
var (
	// Erros de origem externa
	ErrSourceUnavailable = errors.New("error fetching listings from source")

	// Erros de banco de dados
	ErrStoreProducts = errors.New("error storing products")
)
