package organization_case

import (
	"context"
	"time"

	"github.com/Xenn-00/signatur-portal/internal/abstraction/cache"
	"github.com/Xenn-00/signatur-portal/internal/dtos"
	organization_dto "github.com/Xenn-00/signatur-portal/internal/dtos/organization-dto"
	"github.com/Xenn-00/signatur-portal/internal/entity"
	app_errors "github.com/Xenn-00/signatur-portal/internal/errors"
	"github.com/Xenn-00/signatur-portal/internal/queue"
	organization_repo "github.com/Xenn-00/signatur-portal/internal/repo/organization-repo"
	worker_task "github.com/Xenn-00/signatur-portal/internal/worker/tasks"
	"github.com/rs/zerolog/log"
)

type OrganizationService struct {
	repo      organization_repo.OrganizationRepoContract
	cache     cache.Cache
	taskQueue queue.TaskQueueClient
	now       func() time.Time
}

func NewOrganizationService(repo organization_repo.OrganizationRepoContract, cache cache.Cache, taskQueue queue.TaskQueueClient) OrganizationServiceContract {
	return &OrganizationService{
		repo:      repo,
		cache:     cache,
		taskQueue: taskQueue,
		now:       time.Now,
	}
}

func (s *OrganizationService) ListOrganizations(ctx context.Context, q organization_dto.ListOrganizationsQuery) (*organization_dto.ListOrganizationsResponse, *app_errors.AppError) {
	if q.Page <= 0 {
		q.Page = DefaultPage
	}
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}

	page, err := s.repo.ListOrganizations(ctx, entity.OrganizationFilter{
		Page:   q.Page,
		Limit:  q.Limit,
		Search: q.Search,
		Status: q.Status,
	})
	if err != nil {
		return nil, err
	}

	return &organization_dto.ListOrganizationsResponse{
		Organizations: page.Organizations,
		Meta:          dtos.NewPaginationMeta(q.Page, q.Limit, page.Total),
	}, nil
}

// GetOrganizationDetails liest zuerst aus dem Cache (5 Minuten). Cache-Fehler werden nur geloggt.
func (s *OrganizationService) GetOrganizationDetails(ctx context.Context, orgID string) (*organization_dto.OrganizationDetailsResponse, *app_errors.AppError) {
	key := organizationCacheKey(orgID)

	var cached entity.OrganizationDetails
	found, cacheErr := s.cache.Get(ctx, key, &cached)
	if cacheErr != nil {
		log.Warn().Err(cacheErr.Err).Str("key", key).Msg("Cache-Lesefehler")
	}
	if found {
		return &cached, nil
	}

	details, err := s.repo.GetOrganizationDetails(ctx, orgID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, details, organizationCacheTTL); err != nil {
		log.Warn().Err(err.Err).Str("key", key).Msg("Cache-Schreibfehler")
	}

	return details, nil
}

// CreateOrganization legt die Organisation im Backend an und reiht die Webhook-Benachrichtigung ein.
// Ein Fehler beim Einreihen lässt die Anfrage nicht scheitern.
func (s *OrganizationService) CreateOrganization(ctx context.Context, req organization_dto.CreateOrganizationRequest, requestedBy string) (*organization_dto.OrganizationResponse, *app_errors.AppError) {
	org, err := s.repo.CreateOrganization(ctx, entity.OrganizationWrite{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		WebhookURL:  req.WebhookURL,
		Description: req.Description,
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, statsCacheKey)

	createdAt := org.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.now().UTC()
	}
	webhookURL := org.WebhookURL
	if webhookURL == "" {
		webhookURL = req.WebhookURL
	}

	payload := &worker_task.OrganizationCreatedPayload{
		OrganizationID: org.ID,
		Name:           org.Name,
		Email:          org.Email,
		WebhookURL:     webhookURL,
		CreatedAt:      createdAt,
		RequestedBy:    requestedBy,
	}
	if err := s.taskQueue.EnqueueOrganizationCreated(payload); err != nil {
		log.Error().Err(err).Str("organization_id", org.ID).Msg("Webhook-Aufgabe konnte nicht eingereiht werden")
	}

	return org, nil
}

func (s *OrganizationService) UpdateOrganization(ctx context.Context, orgID string, req organization_dto.UpdateOrganizationRequest) (*organization_dto.OrganizationResponse, *app_errors.AppError) {
	org, err := s.repo.UpdateOrganization(ctx, orgID, entity.OrganizationWrite{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		WebhookURL:  req.WebhookURL,
		Description: req.Description,
		Status:      entity.OrganizationStatus(req.Status),
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, organizationCacheKey(orgID))
	if req.Status != "" {
		s.invalidate(ctx, statsCacheKey)
	}

	return org, nil
}

func (s *OrganizationService) DeleteOrganization(ctx context.Context, orgID string) *app_errors.AppError {
	if err := s.repo.DeleteOrganization(ctx, orgID); err != nil {
		return err
	}

	s.invalidate(ctx, organizationCacheKey(orgID))
	s.invalidate(ctx, statsCacheKey)
	return nil
}

func (s *OrganizationService) GetDashboardStats(ctx context.Context) (*organization_dto.DashboardStatsResponse, *app_errors.AppError) {
	var cached entity.DashboardStats
	found, cacheErr := s.cache.Get(ctx, statsCacheKey, &cached)
	if cacheErr != nil {
		log.Warn().Err(cacheErr.Err).Str("key", statsCacheKey).Msg("Cache-Lesefehler")
	}
	if found {
		return &cached, nil
	}

	stats, err := s.repo.GetDashboardStats(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, statsCacheKey, stats, statsCacheTTL); err != nil {
		log.Warn().Err(err.Err).Str("key", statsCacheKey).Msg("Cache-Schreibfehler")
	}

	return stats, nil
}

func (s *OrganizationService) invalidate(ctx context.Context, key string) {
	if err := s.cache.Del(ctx, key); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Cache-Eintrag konnte nicht gelöscht werden")
	}
}
