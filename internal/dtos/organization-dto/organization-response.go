package organization_dto

import (
	"github.com/Xenn-00/signatur-portal/internal/dtos"
	"github.com/Xenn-00/signatur-portal/internal/entity"
)

type ListOrganizationsResponse struct {
	Organizations []entity.OrganizationEntity `json:"organizations"`
	Meta          dtos.PaginationMeta         `json:"meta"`
}

type OrganizationResponse = entity.OrganizationEntity

type OrganizationDetailsResponse = entity.OrganizationDetails

type DashboardStatsResponse = entity.DashboardStats
