package apifyclient

import (
	"context"
	"net/http"
	"time"

	"github.com/Dorilitre/caau-apify-actor/internal/config"
)

type Client interface {
	GetDatasetItems(ctx context.Context, params DatasetItemsParams) ([]map[string]any, error)
}

type ApifyClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &ApifyClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
