package handler

import (
	"net/http"

	"github.com/Dorilitre/caau-apify-actor/internal/api/handler/router"
	"github.com/Dorilitre/caau-apify-actor/internal/usecases/trending"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Products(service trending.TrendingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/products/trending",
			Method:  http.MethodGet,
			Handler: GetTrendingProducts(service),
		},
		{
			// httprouter não aceita segmento estático e parâmetro no mesmo nível,
			// então a busca por id fica sob /platform/
			Path:    "/v1/products/platform/:platform_id",
			Method:  http.MethodGet,
			Handler: GetProductByPlatformID(service),
		},
	}
}

func IngestJobs(services IngestJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/ingest/run",
			Method:  http.MethodPost,
			Handler: RunIngestJob(services),
		},
		{
			Path:    "/v1/ingest/status",
			Method:  http.MethodGet,
			Handler: GetIngestStatus(services),
		},
	}
}
