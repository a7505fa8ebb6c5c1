package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"agroalerta/config"
	"agroalerta/internal/domain/entity"
	"agroalerta/internal/domain/repository"
	"agroalerta/internal/infra/alertfeed"
	"agroalerta/internal/infra/kvstore"
	"agroalerta/internal/infra/persistence/local"
	"agroalerta/internal/infra/weather"
	"agroalerta/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recFixture struct {
	service  usecase.RecommendationUsecase
	recRepo  repository.RecommendationRepository
	cropRepo repository.CropRepository
	clock    *fixedClock
}

// newRecFixture wires the engine over one potato crop in its hilling window,
// the canned alert feed and a humid, windy snapshot.
func newRecFixture(t *testing.T) *recFixture {
	t.Helper()

	store := kvstore.NewMemory()
	logger := testLogger()
	clk := &fixedClock{now: testNow()}

	weatherCfg := config.WeatherConfig{
		Location:    "Huancavelica Centro",
		Temperature: 18.5,
		Humidity:    85,
		WindSpeed:   30,
		Rainfall:    3.2,
	}
	provider := weather.NewManualProvider(weatherCfg, clk, fixedRand{v: 0.5}, logger)

	cfg := &config.Config{Recommendation: config.DefaultRecommendation()}
	recRepo := local.NewRecommendationRepository(store, logger)
	cropRepo := local.NewCropRepository(store, logger)

	planted := clk.now.AddDate(0, 0, -50)
	require.NoError(t, cropRepo.ReplaceAll(context.Background(), []*entity.Crop{{
		ID:           "c1",
		Name:         "Papa Blanca",
		Type:         entity.CropPotato,
		Area:         2.5,
		Location:     "Huancavelica",
		PlantingDate: &planted,
		CreatedAt:    clk.now,
		UpdatedAt:    clk.now,
	}}))

	service := NewRecommendationService(RecommendationServiceParams{
		RecRepo:   recRepo,
		CropRepo:  cropRepo,
		AlertRepo: alertfeed.NewStaticFeed(clk),
		Provider:  provider,
		Clock:     clk,
		Config:    cfg,
		Logger:    logger,
	})

	return &recFixture{service: service, recRepo: recRepo, cropRepo: cropRepo, clock: clk}
}

func titlesOf(recs []*entity.Recommendation) []string {
	titles := make([]string, 0, len(recs))
	for _, rec := range recs {
		titles = append(titles, rec.Title)
	}

	return titles
}

func TestRecommendationService_Refresh_RunsAllRules(t *testing.T) {
	f := newRecFixture(t)

	recs, err := f.service.Refresh(context.Background())
	require.NoError(t, err)

	titles := strings.Join(titlesOf(recs), "\n")

	// Active frost alert crossed with the crop.
	assert.Contains(t, titles, "Protección para Papa Blanca - Helada intensa")
	// The inactive rain alert generates nothing.
	assert.NotContains(t, titles, "Lluvias fuertes")
	// Humidity 85 > 80 and wind 30 > 25.
	assert.Contains(t, titles, "Alta Humedad Detectada")
	assert.Contains(t, titles, "Vientos Fuertes")
	// Potato at day 50 is in the hilling window, past early stage.
	assert.Contains(t, titles, "Tiempo de Aporque - Papa Blanca")
	assert.NotContains(t, titles, "Cuidados Iniciales")
	// Mid-May is inside the planting season.
	assert.Contains(t, titles, "Temporada de Siembra")

	assert.Len(t, recs, 5)
}

func TestRecommendationService_Refresh_PriorityMirrorsSeverity(t *testing.T) {
	f := newRecFixture(t)

	recs, err := f.service.Refresh(context.Background())
	require.NoError(t, err)

	for _, rec := range recs {
		if strings.Contains(rec.Title, "Protección para") {
			assert.Equal(t, entity.SeverityHigh, rec.Priority)
			assert.Len(t, rec.Actions, 4)
			assert.Equal(t, "1", rec.RelatedAlert)
		}
	}
}

func TestRecommendationService_Refresh_DeduplicatesWithinWindow(t *testing.T) {
	f := newRecFixture(t)
	ctx := context.Background()

	first, err := f.service.Refresh(ctx)
	require.NoError(t, err)

	// A minute later every candidate is a recent duplicate.
	f.clock.now = f.clock.now.Add(time.Minute)
	second, err := f.service.Refresh(ctx)
	require.NoError(t, err)

	assert.Len(t, second, len(first))
}

func TestRecommendationService_Refresh_PurgesExpired(t *testing.T) {
	f := newRecFixture(t)
	ctx := context.Background()

	expired := f.clock.now.Add(-time.Hour)
	require.NoError(t, f.recRepo.ReplaceAll(ctx, []*entity.Recommendation{{
		ID:         "old",
		Title:      "Consejo vencido",
		Category:   entity.CategoryGeneral,
		Priority:   entity.SeverityLow,
		CreatedAt:  f.clock.now.Add(-48 * time.Hour),
		ValidUntil: &expired,
	}}))

	recs, err := f.service.Refresh(ctx)
	require.NoError(t, err)
	assert.NotContains(t, titlesOf(recs), "Consejo vencido")
}

func TestRecommendationService_Refresh_SortsNewestFirst(t *testing.T) {
	f := newRecFixture(t)
	ctx := context.Background()

	require.NoError(t, f.recRepo.ReplaceAll(ctx, []*entity.Recommendation{{
		ID:        "older",
		Title:     "Consejo anterior",
		Category:  entity.CategoryGeneral,
		Priority:  entity.SeverityLow,
		CreatedAt: f.clock.now.Add(-time.Hour),
	}}))

	recs, err := f.service.Refresh(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, recs)

	assert.Equal(t, "Consejo anterior", recs[len(recs)-1].Title)
	for i := 1; i < len(recs); i++ {
		assert.False(t, recs[i].CreatedAt.After(recs[i-1].CreatedAt), "list must be newest first")
	}
}

func TestRecommendationService_ReadFlow(t *testing.T) {
	f := newRecFixture(t)
	ctx := context.Background()

	recs, err := f.service.Refresh(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, recs)

	count, err := f.service.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(recs), count)

	require.NoError(t, f.service.MarkRead(ctx, recs[0].ID))
	count, err = f.service.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(recs)-1, count)

	require.NoError(t, f.service.MarkAllRead(ctx))
	count, err = f.service.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestRecommendationService_Priority_UnreadHighOnly(t *testing.T) {
	f := newRecFixture(t)
	ctx := context.Background()

	_, err := f.service.Refresh(ctx)
	require.NoError(t, err)

	priority, err := f.service.Priority(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, priority)
	for _, rec := range priority {
		assert.Equal(t, entity.SeverityHigh, rec.Priority)
		assert.False(t, rec.IsRead)
	}

	require.NoError(t, f.service.MarkAllRead(ctx))
	priority, err = f.service.Priority(ctx)
	require.NoError(t, err)
	assert.Empty(t, priority)
}

func TestRecommendationService_Dismiss(t *testing.T) {
	f := newRecFixture(t)
	ctx := context.Background()

	recs, err := f.service.Refresh(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, recs)

	require.NoError(t, f.service.Dismiss(ctx, recs[0].ID))

	remaining, err := f.service.List(ctx)
	require.NoError(t, err)
	assert.Len(t, remaining, len(recs)-1)
}
