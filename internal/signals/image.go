package signals

import "strings"

// PickImageURL escolhe a imagem utilizável de um anúncio: a capa, quando não
// vazia, vence; senão a primeira alternativa que aparente ser uma URL
// (prefixo http ou //). Sem candidata utilizável retorna nil.
func PickImageURL(primary string, alternates []string) *string {
	if trimmed := strings.TrimSpace(primary); trimmed != "" {
		return &trimmed
	}

	for _, alternate := range alternates {
		trimmed := strings.TrimSpace(alternate)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "http") || strings.HasPrefix(trimmed, "//") {
			return &trimmed
		}
	}

	return nil
}
