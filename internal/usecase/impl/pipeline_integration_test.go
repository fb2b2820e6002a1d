package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"
	"beacon/internal/infra/metrics"
	"beacon/internal/infra/persistence/postgres"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// scriptedGateway accepts every token except those listed as unregistered.
type scriptedGateway struct {
	unregistered map[string]bool
	calls        atomic.Int64
	mu           sync.Mutex
	seen         map[string]int
	tokens       map[string][]string
}

func (g *scriptedGateway) Send(_ context.Context, payload service.PushPayload, tokens []string) ([]service.TokenResult, error) {
	g.calls.Add(1)

	g.mu.Lock()
	if g.seen == nil {
		g.seen = make(map[string]int)
		g.tokens = make(map[string][]string)
	}
	g.seen[payload.Data["entry"]]++
	g.tokens[payload.Data["entry"]] = append([]string(nil), tokens...)
	g.mu.Unlock()

	results := make([]service.TokenResult, 0, len(tokens))
	for _, token := range tokens {
		if g.unregistered[token] {
			results = append(results, service.TokenResult{Token: token, ErrorCode: service.TokenErrorUnregistered})

			continue
		}
		results = append(results, service.TokenResult{Token: token, Success: true})
	}

	return results, nil
}

type pipeline struct {
	db        *gorm.DB
	queue     repository.QueueRepository
	producer  usecase.QueueUsecase
	processor usecase.ProcessorUsecase
	devices   usecase.DeviceUsecase
	settings  usecase.SettingsUsecase
	admin     usecase.AdminUsecase
	gateway   *scriptedGateway
	now       time.Time
}

func newPipeline(t *testing.T, workers int) *pipeline {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, postgres.Migrate(context.Background(), db))

	cfg := testConfig()
	cfg.Queue.Workers = workers

	p := &pipeline{
		db:      db,
		gateway: &scriptedGateway{unregistered: map[string]bool{}},
		now:     time.Now().UTC().Truncate(time.Second),
	}
	clock := func() time.Time { return p.now }

	queueRepo := postgres.NewQueueRepository(db)
	deviceRepo := postgres.NewDeviceRepository(db)
	settingsRepo := postgres.NewSettingsRepository(db)
	historyRepo := postgres.NewHistoryRepository(db)
	limiter := rate.NewLimiter(rate.Inf, 1)
	noop := metrics.NewNoopMetrics()

	producer := NewQueueService(QueueServiceParams{
		QueueRepo:    queueRepo,
		SettingsRepo: settingsRepo,
		HistoryRepo:  historyRepo,
		DeviceRepo:   deviceRepo,
		Gateway:      p.gateway,
		Limiter:      limiter,
		Metrics:      noop,
		Config:       cfg,
		Logger:       slog.Default(),
	})
	producer.(*queueService).now = clock

	processor := NewProcessorService(ProcessorServiceParams{
		TxManager:    postgres.NewTransactionManager(db),
		QueueRepo:    queueRepo,
		DeviceRepo:   deviceRepo,
		SettingsRepo: settingsRepo,
		Gateway:      p.gateway,
		Limiter:      limiter,
		Metrics:      noop,
		Config:       cfg,
		Logger:       slog.Default(),
	})
	processor.(*processorService).now = clock

	admin := NewAdminService(AdminServiceParams{
		QueueRepo:   queueRepo,
		HistoryRepo: historyRepo,
		Metrics:     noop,
		Config:      cfg,
		Logger:      slog.Default(),
	})
	admin.(*adminService).now = clock

	p.queue = queueRepo
	p.producer = producer
	p.processor = processor
	p.devices = NewDeviceService(deviceRepo)
	p.settings = NewSettingsService(settingsRepo)
	p.admin = admin

	return p
}

func (p *pipeline) enqueue(t *testing.T, userID uuid.UUID, category string, data map[string]any) uuid.UUID {
	t.Helper()

	scheduled := p.now.Add(-time.Second)
	id, err := p.producer.Enqueue(context.Background(), &usecase.EnqueueRequest{
		UserID:       userID,
		Category:     category,
		Title:        "title",
		Body:         "body",
		Data:         data,
		ScheduledFor: &scheduled,
	})
	require.NoError(t, err)

	return id
}

func TestPipeline_EnqueueProcessAndAudit(t *testing.T) {
	ctx := context.Background()
	p := newPipeline(t, 2)
	userID := uuid.New()

	_, err := p.devices.RegisterToken(ctx, userID, &usecase.RegisterTokenRequest{Token: "tok-good", Platform: "ios"})
	require.NoError(t, err)
	_, err = p.devices.RegisterToken(ctx, userID, &usecase.RegisterTokenRequest{Token: "tok-stale", Platform: "android"})
	require.NoError(t, err)
	p.gateway.unregistered["tok-stale"] = true

	id := p.enqueue(t, userID, entity.CategoryFollow, map[string]any{"entry": "one"})

	claimed, err := p.processor.ProcessBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, claimed)

	detail, err := p.admin.GetEntry(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entity.QueueStatusSent, detail.Entry.Status)
	require.Len(t, detail.Attempts, 1)
	assert.True(t, detail.Attempts[0].IsSent)
	assert.Equal(t, 1, detail.Attempts[0].SuccessCount)
	assert.Equal(t, 1, detail.Attempts[0].FailureCount)

	tokens, err := p.devices.ListTokens(ctx, userID)
	require.NoError(t, err)
	active := map[string]bool{}
	for _, token := range tokens {
		active[token.Token] = token.IsActive
	}
	assert.True(t, active["tok-good"])
	assert.False(t, active["tok-stale"])
	assert.ElementsMatch(t, []string{"tok-good", "tok-stale"}, p.gateway.tokens["one"])

	claimed, err = p.processor.ProcessBatch(ctx)
	require.NoError(t, err)
	assert.Zero(t, claimed)

	// The unregistered token stays out of every later fan-out for the user.
	p.enqueue(t, userID, entity.CategoryFriendRequest, map[string]any{"entry": "two"})
	claimed, err = p.processor.ProcessBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, claimed)
	assert.Equal(t, []string{"tok-good"}, p.gateway.tokens["two"])
}

func TestPipeline_DisabledCategoryNeverQueued(t *testing.T) {
	ctx := context.Background()
	p := newPipeline(t, 1)
	userID := uuid.New()

	off := false
	_, err := p.settings.UpdateSettings(ctx, userID, &usecase.SettingsUpdate{FriendRequests: &off})
	require.NoError(t, err)

	_, err = p.producer.Enqueue(ctx, &usecase.EnqueueRequest{
		UserID:   userID,
		Category: entity.CategoryFriendRequest,
		Title:    "title",
	})
	require.ErrorIs(t, err, domainerrors.ErrCategoryDisabled)

	stats, err := p.admin.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats[entity.QueueStatusPending])
}

func TestPipeline_NoTokensRetriesThenFails(t *testing.T) {
	ctx := context.Background()
	p := newPipeline(t, 1)
	userID := uuid.New()

	scheduled := p.now.Add(-time.Second)
	maxRetries := 1
	id, err := p.producer.Enqueue(ctx, &usecase.EnqueueRequest{
		UserID:       userID,
		Category:     entity.CategorySystem,
		Title:        "maintenance",
		ScheduledFor: &scheduled,
		MaxRetries:   &maxRetries,
	})
	require.NoError(t, err)

	_, err = p.processor.ProcessBatch(ctx)
	require.NoError(t, err)

	detail, err := p.admin.GetEntry(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entity.QueueStatusPending, detail.Entry.Status)
	assert.Equal(t, 1, detail.Entry.RetryCount)
	assert.Equal(t, entity.ReasonNoActiveTokens, detail.Entry.ErrorMessage)
	assert.True(t, detail.Entry.ScheduledFor.Equal(p.now.Add(2*time.Minute)))
	assert.Empty(t, detail.Attempts)

	p.now = p.now.Add(2 * time.Minute)
	_, err = p.processor.ProcessBatch(ctx)
	require.NoError(t, err)

	detail, err = p.admin.GetEntry(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entity.QueueStatusFailed, detail.Entry.Status)
	assert.Zero(t, p.gateway.calls.Load())

	n, err := p.admin.RetryFailed(ctx, &usecase.EntryQuery{IDs: []uuid.UUID{id}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestPipeline_StaleSelectionCannotClaimRescheduledEntry(t *testing.T) {
	ctx := context.Background()
	p := newPipeline(t, 1)
	id := p.enqueue(t, uuid.New(), entity.CategoryFollow, map[string]any{"entry": "one"})

	snapshot, err := p.queue.FindDue(ctx, p.now, 10)
	require.NoError(t, err)
	require.Len(t, snapshot, 1)

	// Another worker runs the entry first; with no tokens it is rescheduled.
	_, err = p.processor.ProcessBatch(ctx)
	require.NoError(t, err)

	won, err := p.processor.(*processorService).processEntry(ctx, snapshot[0])
	require.NoError(t, err)
	assert.False(t, won)

	detail, err := p.admin.GetEntry(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entity.QueueStatusPending, detail.Entry.Status)
	assert.Equal(t, 1, detail.Entry.RetryCount)
	assert.True(t, detail.Entry.ScheduledFor.Equal(p.now.Add(2*time.Minute)))

	p.now = p.now.Add(2 * time.Minute)
	won, err = p.processor.(*processorService).processEntry(ctx, snapshot[0])
	require.NoError(t, err)
	assert.True(t, won)

	detail, err = p.admin.GetEntry(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 2, detail.Entry.RetryCount)
	assert.True(t, detail.Entry.ScheduledFor.Equal(p.now.Add(4*time.Minute)))
}

func TestPipeline_ConcurrentProcessorsDeliverEachEntryOnce(t *testing.T) {
	ctx := context.Background()
	p := newPipeline(t, 4)

	const entries = 24
	for i := range entries {
		userID := uuid.New()
		_, err := p.devices.RegisterToken(ctx, userID, &usecase.RegisterTokenRequest{Token: "tok-" + userID.String(), Platform: "web"})
		require.NoError(t, err)
		p.enqueue(t, userID, entity.CategoryFollow, map[string]any{"entry": uuid.NewString(), "n": i})
	}

	var wg sync.WaitGroup
	var total atomic.Int64
	for range 3 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				claimed, err := p.processor.ProcessBatch(ctx)
				if err != nil || claimed == 0 {
					return
				}
				total.Add(int64(claimed))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(entries), total.Load())
	assert.Equal(t, int64(entries), p.gateway.calls.Load())
	for key, count := range p.gateway.seen {
		assert.Equal(t, 1, count, "entry %s delivered more than once", key)
	}

	stats, err := p.admin.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(entries), stats[entity.QueueStatusSent])
}
