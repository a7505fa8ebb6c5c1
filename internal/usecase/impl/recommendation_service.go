package impl

import (
	"context"
	"log/slog"
	"sort"

	"agroalerta/config"
	deliverycontext "agroalerta/internal/delivery/context"
	"agroalerta/internal/domain/entity"
	domainerrors "agroalerta/internal/domain/errors"
	"agroalerta/internal/domain/repository"
	"agroalerta/internal/domain/service"
	"agroalerta/internal/errors"
	"agroalerta/internal/infra/weather"
	"agroalerta/internal/usecase"

	"go.uber.org/fx"
)

// recommendationService implements the RecommendationUsecase interface.
type recommendationService struct {
	recRepo   repository.RecommendationRepository
	cropRepo  repository.CropRepository
	alertRepo repository.AlertRepository
	provider  *weather.Provider
	clock     service.Clock
	cfg       config.RecommendationConfig
	logger    *slog.Logger
}

// RecommendationServiceParams holds dependencies for recommendationService, injected by Fx.
type RecommendationServiceParams struct {
	fx.In

	RecRepo   repository.RecommendationRepository
	CropRepo  repository.CropRepository
	AlertRepo repository.AlertRepository
	Provider  *weather.Provider
	Clock     service.Clock
	Config    *config.Config
	Logger    *slog.Logger
}

// NewRecommendationService is the constructor for recommendationService.
func NewRecommendationService(params RecommendationServiceParams) usecase.RecommendationUsecase {
	return &recommendationService{
		recRepo:   params.RecRepo,
		cropRepo:  params.CropRepo,
		alertRepo: params.AlertRepo,
		provider:  params.Provider,
		clock:     params.Clock,
		cfg:       params.Config.Recommendation,
		logger:    params.Logger,
	}
}

func (srv *recommendationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Refresh regenerates advice from the current crops, alerts and weather,
// purges expired entries, suppresses recent duplicates and persists the
// merged list, newest first.
func (srv *recommendationService) Refresh(ctx context.Context) ([]*entity.Recommendation, error) {
	crops, err := srv.cropRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load crops")
	}

	alerts, err := srv.alertRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load alerts")
	}

	existing, err := srv.recRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load recommendations")
	}

	now := srv.clock.Now()

	kept := []*entity.Recommendation{}
	for _, rec := range existing {
		if !rec.IsExpired(now) {
			kept = append(kept, rec)
		}
	}

	fresh := generateAdvice(ruleInput{
		crops:   crops,
		alerts:  alerts,
		weather: srv.provider.Current(),
		now:     now,
		cfg:     srv.cfg,
	})

	added := 0
	for _, rec := range fresh {
		if srv.isDuplicate(kept, rec) {
			continue
		}
		kept = append(kept, rec)
		added++
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].CreatedAt.After(kept[j].CreatedAt)
	})

	if err := srv.recRepo.ReplaceAll(ctx, kept); err != nil {
		return nil, errors.Wrap(err, "failed to persist recommendations")
	}

	srv.log(ctx).Info("Recommendations refreshed",
		slog.Int("generated", len(fresh)), slog.Int("added", added), slog.Int("total", len(kept)))

	return kept, nil
}

// isDuplicate suppresses advice whose title and related crop match an
// existing entry created within the dedup window.
func (srv *recommendationService) isDuplicate(existing []*entity.Recommendation, candidate *entity.Recommendation) bool {
	for _, rec := range existing {
		if rec.Title != candidate.Title || rec.RelatedCrop != candidate.RelatedCrop {
			continue
		}
		delta := candidate.CreatedAt.Sub(rec.CreatedAt)
		if delta < 0 {
			delta = -delta
		}
		if delta < srv.cfg.DedupWindow {
			return true
		}
	}

	return false
}

// List retrieves the persisted advice, newest first.
func (srv *recommendationService) List(ctx context.Context) ([]*entity.Recommendation, error) {
	recs, err := srv.recRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load recommendations")
	}

	return recs, nil
}

// MarkRead flips the read flag of one entry.
func (srv *recommendationService) MarkRead(ctx context.Context, id string) error {
	return srv.mutate(ctx, func(recs []*entity.Recommendation) ([]*entity.Recommendation, error) {
		for _, rec := range recs {
			if rec.ID == id {
				rec.IsRead = true

				return recs, nil
			}
		}

		return nil, domainerrors.ErrRecommendationNotFound.WithDetails(id)
	})
}

// Dismiss removes one entry.
func (srv *recommendationService) Dismiss(ctx context.Context, id string) error {
	return srv.mutate(ctx, func(recs []*entity.Recommendation) ([]*entity.Recommendation, error) {
		kept := recs[:0]
		for _, rec := range recs {
			if rec.ID != id {
				kept = append(kept, rec)
			}
		}
		if len(kept) == len(recs) {
			return nil, domainerrors.ErrRecommendationNotFound.WithDetails(id)
		}

		return kept, nil
	})
}

// MarkAllRead flips the read flag of every entry.
func (srv *recommendationService) MarkAllRead(ctx context.Context) error {
	return srv.mutate(ctx, func(recs []*entity.Recommendation) ([]*entity.Recommendation, error) {
		for _, rec := range recs {
			rec.IsRead = true
		}

		return recs, nil
	})
}

// UnreadCount counts the unread entries.
func (srv *recommendationService) UnreadCount(ctx context.Context) (int, error) {
	recs, err := srv.recRepo.List(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to load recommendations")
	}

	count := 0
	for _, rec := range recs {
		if !rec.IsRead {
			count++
		}
	}

	return count, nil
}

// Priority retrieves the unread high-priority entries.
func (srv *recommendationService) Priority(ctx context.Context) ([]*entity.Recommendation, error) {
	recs, err := srv.recRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load recommendations")
	}

	priority := []*entity.Recommendation{}
	for _, rec := range recs {
		if rec.Priority == entity.SeverityHigh && !rec.IsRead {
			priority = append(priority, rec)
		}
	}

	return priority, nil
}

func (srv *recommendationService) mutate(
	ctx context.Context,
	apply func([]*entity.Recommendation) ([]*entity.Recommendation, error),
) error {
	recs, err := srv.recRepo.List(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load recommendations")
	}

	updated, err := apply(recs)
	if err != nil {
		return err
	}

	if err := srv.recRepo.ReplaceAll(ctx, updated); err != nil {
		return errors.Wrap(err, "failed to persist recommendations")
	}

	return nil
}
