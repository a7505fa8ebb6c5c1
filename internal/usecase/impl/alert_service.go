package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	deliverycontext "agroalerta/internal/delivery/context"
	"agroalerta/internal/domain/entity"
	domainerrors "agroalerta/internal/domain/errors"
	"agroalerta/internal/domain/repository"
	"agroalerta/internal/errors"
	"agroalerta/internal/usecase"

	"go.uber.org/fx"
)

// alertService implements the AlertUsecase interface.
type alertService struct {
	alertRepo repository.AlertRepository
	logger    *slog.Logger
}

// AlertServiceParams holds dependencies for alertService, injected by Fx.
type AlertServiceParams struct {
	fx.In

	AlertRepo repository.AlertRepository
	Logger    *slog.Logger
}

// NewAlertService is the constructor for alertService.
func NewAlertService(params AlertServiceParams) usecase.AlertUsecase {
	return &alertService{
		alertRepo: params.AlertRepo,
		logger:    params.Logger,
	}
}

func (srv *alertService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List retrieves alerts matching the filters, ordered per SortBy.
func (srv *alertService) List(ctx context.Context, filters usecase.AlertFilters) ([]*entity.Alert, error) {
	alerts, err := srv.alertRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load alerts")
	}

	matched := []*entity.Alert{}
	for _, a := range alerts {
		if matchesFilters(a, filters) {
			matched = append(matched, a)
		}
	}

	sortAlerts(matched, filters.SortBy)

	return matched, nil
}

// Active retrieves the active alerts, independent of any filters.
func (srv *alertService) Active(ctx context.Context) ([]*entity.Alert, error) {
	alerts, err := srv.alertRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load alerts")
	}

	active := []*entity.Alert{}
	for _, a := range alerts {
		if a.IsActive {
			active = append(active, a)
		}
	}

	return active, nil
}

// Get retrieves a single alert.
func (srv *alertService) Get(ctx context.Context, id string) (*entity.Alert, error) {
	alert, err := srv.alertRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return nil, domainerrors.ErrAlertNotFound.WithDetails(id)
		}

		return nil, errors.Wrap(err, "failed to load alert")
	}

	return alert, nil
}

// Share renders the alert as the message the farmer forwards to neighbors.
func (srv *alertService) Share(ctx context.Context, id string) (string, error) {
	alert, err := srv.Get(ctx, id)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("🚨 *" + alert.Title + "*\n\n")
	b.WriteString(alert.Description + "\n\n")
	b.WriteString("*Recomendaciones:*\n")
	for _, r := range alert.Recommendations {
		b.WriteString("• " + r + "\n")
	}
	b.WriteString("\n_Plataforma de Alertas Climáticas Huancavelica_")

	srv.log(ctx).Info("Alert shared", slog.String("id", id))

	return b.String(), nil
}

func matchesFilters(alert *entity.Alert, filters usecase.AlertFilters) bool {
	if filters.Type != nil && alert.Type != *filters.Type {
		return false
	}
	if filters.Severity != nil && alert.Severity != *filters.Severity {
		return false
	}
	if filters.Active != nil && alert.IsActive != *filters.Active {
		return false
	}
	if filters.Search != "" && !matchesSearch(alert, filters.Search) {
		return false
	}

	return true
}

// matchesSearch is a case-insensitive substring match over the title, the
// description and the affected areas.
func matchesSearch(alert *entity.Alert, search string) bool {
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(alert.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(alert.Description), needle) {
		return true
	}
	for _, area := range alert.AffectedAreas {
		if strings.Contains(strings.ToLower(area), needle) {
			return true
		}
	}

	return false
}

// sortAlerts orders by severity rank when requested, newest first otherwise.
// Ties under severity fall back to recency.
func sortAlerts(alerts []*entity.Alert, sortBy string) {
	sort.SliceStable(alerts, func(i, j int) bool {
		if sortBy == usecase.SortBySeverity {
			ri, rj := alerts[i].Severity.Rank(), alerts[j].Severity.Rank()
			if ri != rj {
				return ri > rj
			}
		}

		return alerts[i].CreatedAt.After(alerts[j].CreatedAt)
	})
}
