package integration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"
	"go.uber.org/zap"

	"cybershield-academy/internal/app"
	"cybershield-academy/internal/domain"
	pgstore "cybershield-academy/internal/infra/postgres"
	pgmigrations "cybershield-academy/internal/infra/postgres/migrations"
	infraredis "cybershield-academy/internal/infra/redis"
)

var requiredModules = []string{"m1", "m2"}

type stubRenderer struct{}

func (stubRenderer) Render(domain.Diploma, domain.Locale) ([]byte, error) {
	return []byte("png"), nil
}

func (stubRenderer) FileName(domain.Locale) string { return "diploma.png" }

func TestDiplomaPipelineEndToEnd(t *testing.T) {
	ctx := context.Background()
	requireDocker(t)

	pgURL, pgCleanup := startPostgres(t, ctx)
	defer pgCleanup()
	redisURL, redisCleanup := startRedis(t, ctx)
	defer redisCleanup()

	seedModules(t, ctx, pgURL)

	pool, err := pgxpool.Connect(ctx, pgURL)
	if err != nil {
		t.Fatalf("connect pg: %v", err)
	}
	defer pool.Close()

	redisClient, err := redisClientFromURL(redisURL)
	if err != nil {
		t.Fatalf("redis client: %v", err)
	}

	content := infraredis.NewContentCache(redisClient, pgstore.NewModuleLoader(pool), 5*time.Minute)
	results := pgstore.NewResultRepository(pool)
	diplomas := pgstore.NewDiplomaRepository(pool)

	log := zap.NewNop()
	quizzes := app.NewQuizService(content, results, log, nil)
	certs := app.NewDiplomaService(results, diplomas, stubRenderer{}, requiredModules, log, nil)

	// Pass every required module.
	for _, moduleID := range requiredModules {
		passModule(t, ctx, quizzes, "u1", moduleID)
	}

	progress, err := certs.Progress(ctx, "u1")
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if !progress.AllCompleted {
		t.Fatalf("expected all modules completed, got %+v", progress)
	}

	diploma, err := certs.Issue(ctx, "u1", "Ana Petrova")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if !strings.HasPrefix(diploma.CertID, "CS-") {
		t.Fatalf("unexpected cert id %q", diploma.CertID)
	}

	// The unique constraint holds across a second service instance.
	certs2 := app.NewDiplomaService(results, diplomas, stubRenderer{}, requiredModules, log, nil)
	if _, err := certs2.Issue(ctx, "u1", "Other Name"); !domain.IsConflict(err) {
		t.Fatalf("expected conflict from database constraint, got %v", err)
	}

	stored, err := certs.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.FullName != "Ana Petrova" || stored.CertID != diploma.CertID {
		t.Fatalf("expected first mint preserved, got %+v", stored)
	}
}

func TestSubscriptionRepositoryEndToEnd(t *testing.T) {
	ctx := context.Background()
	requireDocker(t)

	pgURL, pgCleanup := startPostgres(t, ctx)
	defer pgCleanup()

	seedModules(t, ctx, pgURL)

	pool, err := pgxpool.Connect(ctx, pgURL)
	if err != nil {
		t.Fatalf("connect pg: %v", err)
	}
	defer pool.Close()

	access := app.NewAccessService(pgstore.NewSubscriptionRepository(pool), nil)

	if err := access.Activate(ctx, "u1", "cus_1", "sub_1"); err != nil {
		t.Fatalf("activate: %v", err)
	}
	if ok, err := access.CanAccess(ctx, "u1"); err != nil || !ok {
		t.Fatalf("expected access, got ok=%v err=%v", ok, err)
	}

	if err := access.Cancel(ctx, "sub_1"); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if ok, _ := access.CanAccess(ctx, "u1"); ok {
		t.Fatalf("expected access revoked")
	}
}

func passModule(t *testing.T, ctx context.Context, quizzes *app.QuizService, userID, moduleID string) {
	t.Helper()
	started, err := quizzes.StartSession(ctx, userID, moduleID)
	if err != nil {
		t.Fatalf("start %s: %v", moduleID, err)
	}
	s := started.Session
	total := len(s.Module().Questions)
	for i := 0; i < total; i++ {
		if err := s.Select(s.Module().Questions[i].CorrectIndex); err != nil {
			t.Fatalf("select: %v", err)
		}
		if _, err := s.Check(); err != nil {
			t.Fatalf("check: %v", err)
		}
		if i < total-1 {
			if err := s.Next(); err != nil {
				t.Fatalf("next: %v", err)
			}
		}
	}
	attempt, err := quizzes.FinishSession(ctx, userID, s)
	if err != nil {
		t.Fatalf("finish %s: %v", moduleID, err)
	}
	if !attempt.Result.Passed || !attempt.Saved {
		t.Fatalf("expected saved pass for %s, got %+v", moduleID, attempt)
	}
}

func seedModules(t *testing.T, ctx context.Context, dsn string) {
	t.Helper()
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	migrator := migrate.NewMigrator(db, pgmigrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("migrator init: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	for _, moduleID := range requiredModules {
		module := sampleModule(moduleID)
		data, err := json.Marshal(module)
		if err != nil {
			t.Fatalf("marshal module: %v", err)
		}
		if _, err := db.ExecContext(ctx, `INSERT INTO modules (id, data) VALUES (?, ?::jsonb) ON CONFLICT (id) DO UPDATE SET data=EXCLUDED.data`, module.ID, string(data)); err != nil {
			t.Fatalf("insert module: %v", err)
		}
	}
}

func sampleModule(id string) domain.Module {
	q := func(n int) domain.Question {
		return domain.Question{
			ID:           fmt.Sprintf("%s-q%d", id, n),
			CorrectIndex: 1,
			OptionCount:  3,
			Text: map[domain.Locale]domain.QuestionText{
				domain.LocaleBG: {Prompt: "Избери втората опция", Options: []string{"а", "б", "в"}},
				domain.LocaleEN: {Prompt: "Pick the second option", Options: []string{"a", "b", "c"}},
			},
		}
	}
	return domain.Module{ID: id, Questions: []domain.Question{q(1), q(2)}}
}

func startPostgres(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_USER": "academy", "POSTGRES_PASSWORD": "academypass", "POSTGRES_DB": "academydb"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start postgres: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	dsn := fmt.Sprintf("postgres://academy:academypass@%s:%s/academydb?sslmode=disable", host, port.Port())
	return dsn, func() {
		_ = container.Terminate(ctx)
	}
}

func startRedis(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start redis: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("redis host: %v", err)
	}
	port, err := container.MappedPort(ctx, "6379/tcp")
	if err != nil {
		t.Fatalf("redis port: %v", err)
	}
	url := fmt.Sprintf("redis://%s:%s", host, port.Port())
	return url, func() {
		_ = container.Terminate(ctx)
	}
}

func redisClientFromURL(url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	}), nil
}

func requireDocker(t *testing.T) {
	t.Helper()
	if _, err := tc.NewDockerProvider(); err != nil {
		t.Skipf("docker not available: %v", err)
	}
}
