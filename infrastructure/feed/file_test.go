package feed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeFeedFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "feed.json")
	err := os.WriteFile(path, []byte(content), 0o644)
	assert.NoError(t, err)

	return path
}

func TestFileSource_FetchListings(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		validate func(t *testing.T, err error, titles []string)
	}{
		{
			name:    "Deve ler um array JSON de anúncios",
			content: `[{"product_id_str":"1","title":"Produto A"},{"product_id_str":"2","title":"Produto B"}]`,
			validate: func(t *testing.T, err error, titles []string) {
				assert.NoError(t, err)
				assert.Equal(t, []string{"Produto A", "Produto B"}, titles)
			},
		},
		{
			name: "Deve ler um anúncio por linha",
			content: `{"product_id_str":"1","title":"Produto A"}
{"product_id_str":"2","title":"Produto B"}

{"product_id_str":"3","title":"Produto C"}`,
			validate: func(t *testing.T, err error, titles []string) {
				assert.NoError(t, err)
				assert.Equal(t, []string{"Produto A", "Produto B", "Produto C"}, titles)
			},
		},
		{
			name: "Item com estrutura inesperada é ignorado sem abortar",
			content: `{"product_id_str":"1","title":"Produto A"}
{"product_id_str":"2","seller_info":"não é um objeto"}`,
			validate: func(t *testing.T, err error, titles []string) {
				assert.NoError(t, err)
				assert.Equal(t, []string{"Produto A"}, titles)
			},
		},
		{
			name:    "Array malformado produz erro",
			content: `[{"product_id_str":"1"`,
			validate: func(t *testing.T, err error, titles []string) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "erro ao decodificar o array de itens do feed")
			},
		},
		{
			name: "Linha malformada produz erro",
			content: `{"product_id_str":"1","title":"Produto A"}
isto não é JSON`,
			validate: func(t *testing.T, err error, titles []string) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "erro ao decodificar linha do feed")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := NewFileSource(writeFeedFile(t, tt.content))

			listings, err := source.FetchListings(context.Background())

			titles := make([]string, 0, len(listings))
			for _, l := range listings {
				titles = append(titles, l.Title)
			}

			tt.validate(t, err, titles)
		})
	}
}

func TestFileSource_FetchListings_ArquivoInexistente(t *testing.T) {
	source := NewFileSource(filepath.Join(t.TempDir(), "nao-existe.json"))

	listings, err := source.FetchListings(context.Background())

	assert.Error(t, err)
	assert.Nil(t, listings)
}

func TestFileSource_Name(t *testing.T) {
	assert.Equal(t, "feed", NewFileSource("qualquer.json").Name())
}
