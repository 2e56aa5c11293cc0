// Package feed lê anúncios brutos de um arquivo local. Serve para reprocessar
// exportações de dataset sem consumir a API do Apify.
package feed

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/Dorilitre/caau-apify-actor/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Linhas de JSONL podem carregar o schema inteiro do anúncio
const maxLineSize = 4 * 1024 * 1024

type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Name() string {
	return "feed"
}

// FetchListings aceita um array JSON ou um objeto JSON por linha (JSONL).
// Itens que não têm a estrutura de um anúncio são ignorados sem abortar.
func (s *FileSource) FetchListings(ctx context.Context) ([]domain.RawListing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o arquivo de feed: %w", err)
	}

	items, err := decodeItems(data)
	if err != nil {
		return nil, err
	}

	listings := make([]domain.RawListing, 0, len(items))
	for _, item := range items {
		listing, err := domain.ListingFromMap(item)
		if err != nil {
			logrus.WithError(err).Warn("Item do feed com estrutura inesperada ignorado")
			continue
		}
		listings = append(listings, *listing)
	}

	logrus.WithFields(logrus.Fields{
		"path":  s.path,
		"total": len(listings),
	}).Info("Anúncios obtidos do arquivo de feed")

	return listings, nil
}

func decodeItems(data []byte) ([]map[string]any, error) {
	trimmed := bytes.TrimSpace(data)

	if bytes.HasPrefix(trimmed, []byte("[")) {
		var items []map[string]any
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("erro ao decodificar o array de itens do feed: %w", err)
		}
		return items, nil
	}

	items := make([]map[string]any, 0)

	scanner := bufio.NewScanner(bytes.NewReader(trimmed))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var item map[string]any
		if err := json.Unmarshal(line, &item); err != nil {
			return nil, fmt.Errorf("erro ao decodificar linha do feed: %w", err)
		}
		items = append(items, item)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer o arquivo de feed: %w", err)
	}

	return items, nil
}
