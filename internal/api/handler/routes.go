package handler

import (
	"net/http"

	"github.com/vfg2006/seller-console-api/internal/api/handler/router"
	"github.com/vfg2006/seller-console-api/internal/usecases/converting"
	"github.com/vfg2006/seller-console-api/internal/usecases/insighting"
	"github.com/vfg2006/seller-console-api/internal/usecases/leads"
	"github.com/vfg2006/seller-console-api/internal/usecases/opportunities"
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

func Leads(service leads.LeadManager, converter converting.Converter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/leads",
			Method:  http.MethodGet,
			Handler: LeadList(service),
		},
		{
			Path:    "/v1/leads",
			Method:  http.MethodPost,
			Handler: CreateLead(service),
		},
		{
			Path:    "/v1/leads/:id",
			Method:  http.MethodGet,
			Handler: GetLead(service),
		},
		{
			Path:    "/v1/leads/:id",
			Method:  http.MethodPut,
			Handler: UpdateLead(service),
		},
		{
			Path:    "/v1/leads/:id",
			Method:  http.MethodDelete,
			Handler: DeleteLead(service),
		},
		{
			Path:    "/v1/leads/:id/convert",
			Method:  http.MethodPost,
			Handler: ConvertLead(converter),
		},
	}
}

func Opportunities(service opportunities.OpportunityManager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/opportunities",
			Method:  http.MethodGet,
			Handler: OpportunityList(service),
		},
		{
			Path:    "/v1/opportunities",
			Method:  http.MethodPost,
			Handler: CreateOpportunity(service),
		},
		{
			Path:    "/v1/opportunities/:id",
			Method:  http.MethodGet,
			Handler: GetOpportunity(service),
		},
		{
			Path:    "/v1/opportunities/:id",
			Method:  http.MethodPut,
			Handler: UpdateOpportunity(service),
		},
		{
			Path:    "/v1/opportunities/:id",
			Method:  http.MethodDelete,
			Handler: DeleteOpportunity(service),
		},
	}
}

func Metrics(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/metrics",
			Method:  http.MethodGet,
			Handler: GetOverallMetrics(service),
		},
		{
			Path:    "/v1/dashboard/metrics/leads",
			Method:  http.MethodGet,
			Handler: GetLeadMetrics(service),
		},
		{
			Path:    "/v1/dashboard/metrics/opportunities",
			Method:  http.MethodGet,
			Handler: GetOpportunityMetrics(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
