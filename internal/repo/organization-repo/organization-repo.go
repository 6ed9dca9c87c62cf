package organization_repo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Xenn-00/signatur-portal/internal/entity"
	app_errors "github.com/Xenn-00/signatur-portal/internal/errors"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/google/go-querystring/query"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/rs/zerolog/log"
)

// maxErrorBody begrenzt, wie viel vom Fehler-Body des Backends geloggt wird.
const maxErrorBody = 2048

type OrganizationRepo struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewOrganizationRepo erstellt einen Client für die Backend-API. Es gibt keine Retries.
func NewOrganizationRepo(baseURL, apiKey string, timeout time.Duration) OrganizationRepoContract {
	client := cleanhttp.DefaultPooledClient()
	client.Timeout = timeout

	return &OrganizationRepo{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  client,
	}
}

func (r *OrganizationRepo) ListOrganizations(ctx context.Context, filter entity.OrganizationFilter) (*entity.OrganizationPage, *app_errors.AppError) {
	values, err := query.Values(filter)
	if err != nil {
		return nil, app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidQuery, "request.invalid_query", err)
	}

	path := "/organizations"
	if encoded := values.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var page entity.OrganizationPage
	if appErr := r.do(ctx, http.MethodGet, path, nil, &page); appErr != nil {
		return nil, appErr
	}
	if page.Organizations == nil {
		page.Organizations = []entity.OrganizationEntity{}
	}
	return &page, nil
}

func (r *OrganizationRepo) GetOrganizationDetails(ctx context.Context, orgID string) (*entity.OrganizationDetails, *app_errors.AppError) {
	var details entity.OrganizationDetails
	if appErr := r.do(ctx, http.MethodGet, "/organizations/"+url.PathEscape(orgID)+"/details", nil, &details); appErr != nil {
		return nil, appErr
	}
	return &details, nil
}

func (r *OrganizationRepo) CreateOrganization(ctx context.Context, model entity.OrganizationWrite) (*entity.OrganizationEntity, *app_errors.AppError) {
	var org entity.OrganizationEntity
	if appErr := r.do(ctx, http.MethodPost, "/organizations", model, &org); appErr != nil {
		return nil, appErr
	}
	return &org, nil
}

func (r *OrganizationRepo) UpdateOrganization(ctx context.Context, orgID string, model entity.OrganizationWrite) (*entity.OrganizationEntity, *app_errors.AppError) {
	var org entity.OrganizationEntity
	if appErr := r.do(ctx, http.MethodPut, "/organizations/"+url.PathEscape(orgID), model, &org); appErr != nil {
		return nil, appErr
	}
	return &org, nil
}

func (r *OrganizationRepo) DeleteOrganization(ctx context.Context, orgID string) *app_errors.AppError {
	return r.do(ctx, http.MethodDelete, "/organizations/"+url.PathEscape(orgID), nil, nil)
}

func (r *OrganizationRepo) GetDashboardStats(ctx context.Context) (*entity.DashboardStats, *app_errors.AppError) {
	var stats entity.DashboardStats
	if appErr := r.do(ctx, http.MethodGet, "/dashboard/stats", nil, &stats); appErr != nil {
		return nil, appErr
	}
	return &stats, nil
}

// do führt einen Backend-Aufruf aus und übersetzt Fehler:
// Transportfehler 503, Backend-5xx unverändert, 404 und 409 unverändert, sonstige 4xx 400, unlesbarer Body 500.
func (r *OrganizationRepo) do(ctx context.Context, method, path string, body any, out any) *app_errors.AppError {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, reader)
	if err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+r.apiKey)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("method", method).Str("path", path).Msg("Backend nicht erreichbar")
		return app_errors.NewAppError(fiber.StatusServiceUnavailable, app_errors.ErrUnavailable, "backend.unavailable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		upstreamErr := fmt.Errorf("backend %s %s: status=%d body=%s", method, path, resp.StatusCode, string(respBody))
		log.Warn().Int("status", resp.StatusCode).Str("method", method).Str("path", path).Msg("Backend hat einen Fehler gemeldet")
		return mapBackendStatus(resp.StatusCode, upstreamErr)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty response body")
		}
		log.Error().Err(err).Str("method", method).Str("path", path).Msg("Antwort des Backends nicht lesbar")
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrUpstream, "backend.error", err)
	}

	return nil
}

func mapBackendStatus(status int, err error) *app_errors.AppError {
	switch {
	case status >= 500:
		return app_errors.NewAppError(status, app_errors.ErrUpstream, "backend.error", err)
	case status == http.StatusNotFound:
		return app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "organization.not_found", err)
	case status == http.StatusConflict:
		return app_errors.NewAppError(fiber.StatusConflict, app_errors.ErrConflict, "organization.conflict", err)
	case status >= 400:
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrUpstream, "backend.rejected", err)
	default:
		// 3xx folgt der Client selbst, ein verbleibender 3xx ist unerwartet.
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrUpstream, "backend.error", err)
	}
}
