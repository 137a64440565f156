package controllers

import (
	"strategy/src/ratelimit"
	"strategy/src/services"
)

type Controller struct {
	RefreshService   services.RefreshServiceI
	DividendService  services.DividendServiceI
	CandidateService services.CandidateServiceI
	DashboardService services.DashboardServiceI
	PortfolioService services.PortfolioServiceI
	Limiter          *ratelimit.Limiter
}

func NewController(
	refreshService services.RefreshServiceI,
	dividendService services.DividendServiceI,
	candidateService services.CandidateServiceI,
	dashboardService services.DashboardServiceI,
	portfolioService services.PortfolioServiceI,
	limiter *ratelimit.Limiter,
) *Controller {
	return &Controller{
		RefreshService:   refreshService,
		DividendService:  dividendService,
		CandidateService: candidateService,
		DashboardService: dashboardService,
		PortfolioService: portfolioService,
		Limiter:          limiter,
	}
}
