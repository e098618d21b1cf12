//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"autoflow/cmd/bootstrap"
	"autoflow/cmd/bootstrap/components"
	"autoflow/internal/infra/db"
	"autoflow/internal/pkg/config"
	"autoflow/tests/common/authtest"
	"autoflow/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "autoflow"
	pgPassword = "autoflow"
	pgImage    = "postgres:17"
)

var (
	postgresOnce      sync.Once
	postgresContainer testcontainers.Container
	postgresErr       error
)

type endpoint struct {
	Host string
	Port nat.Port
}

func (e endpoint) dsn(database string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", pgUser, pgPassword, e.Host, e.Port.Port(), database)
}

// ------------------------------------------------------------
// PostgreSQL コンテナ (プロセス内で一度だけ起動)
// ------------------------------------------------------------

func postgresEndpoint(t *testing.T) endpoint {
	t.Helper()

	postgresOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		postgresContainer, postgresErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        pgImage,
				ExposedPorts: []string{"5432/tcp"},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       "postgres",
				},
				// データは RAM 上。耐久性の設定はすべて切る
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
				Cmd: []string{
					"postgres",
					"-c", "fsync=off",
					"-c", "full_page_writes=off",
					"-c", "synchronous_commit=off",
					"-c", "max_connections=200",
					"-c", "log_statement=none",
				},
				WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
					return endpoint{Host: host, Port: port}.dsn("postgres")
				}).WithStartupTimeout(60 * time.Second),
				Labels: map[string]string{"purpose": "autoflow-e2e"},
			},
			Started: true,
		})
	})
	require.NoError(t, postgresErr, "PostgreSQLコンテナの起動に失敗")

	ctx := context.Background()
	host, err := postgresContainer.Host(ctx)
	require.NoError(t, err)
	port, err := postgresContainer.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)
	return endpoint{Host: host, Port: port}
}

// ------------------------------------------------------------
// スイートごとの専用データベース
// ------------------------------------------------------------

func createDatabase(t *testing.T, ep endpoint) config.DBConfig {
	t.Helper()

	name := "autoflow_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	admin, err := pgxpool.New(ctx, ep.dsn("postgres"))
	require.NoError(t, err, "管理者接続に失敗")
	defer admin.Close()

	// 並列スイートが同時に CREATE DATABASE すると template1 のロックで失敗することがある
	var createErr error
	for attempt := range 5 {
		if attempt > 0 {
			backoff := min(time.Duration(attempt)*500*time.Millisecond, 3*time.Second)
			slog.Warn("データベース作成を再試行中", "attempt", attempt+1, "error", createErr.Error(), "retry_wait", backoff)
			time.Sleep(backoff)
		}
		if _, createErr = admin.Exec(ctx, "CREATE DATABASE "+name); createErr == nil {
			break
		}
	}
	require.NoError(t, createErr, "テスト用データベースの作成に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		pool, err := pgxpool.New(ctx, ep.dsn("postgres"))
		if err != nil {
			slog.Warn("クリーンアップ用のデータベース接続に失敗しました", "database", name, "error", err.Error())
			return
		}
		defer pool.Close()
		if _, err := pool.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("テストデータベースの削除に失敗しました", "database", name, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:         ep.Host,
		Port:         ep.Port.Port(),
		User:         pgUser,
		Password:     pgPassword,
		DBName:       name,
		SSLMode:      "disable",
		TimeZone:     "UTC",
		MaxConns:     20,
		QueryTimeout: 5 * time.Second,
		AutoMigrate:  false, // SetupSuite で明示的に当てる
	}
}

// ------------------------------------------------------------
// fx アプリケーション (HTTP サーバーは起動せず gin.Engine だけ使う)
// ------------------------------------------------------------

func testConfig(dbCfg config.DBConfig) config.Config {
	cfg := config.NewTestConfig()
	cfg.DB = dbCfg
	// イベントはログ出力に回す
	cfg.AMQP.URL = ""
	// 直接 INSERT したデータもすぐ見えるよう、カタログのキャッシュは使わない
	cfg.Catalog.SnapshotTTL = 0
	return cfg
}

func startApp(t *testing.T, cfg config.Config) (*gin.Engine, *pgxpool.Pool) {
	t.Helper()

	var (
		router *gin.Engine
		pool   *pgxpool.Pool
	)
	app := fx.New(
		fx.Supply(cfg),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.DBModule,
		bootstrap.JWTModule,
		bootstrap.MessagingModule,
		components.RepositoryModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router, &pool),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fxアプリケーションの起動に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})
	return router, pool
}

// ------------------------------------------------------------
// E2Eテストスイートで共通のセットアップ
// ------------------------------------------------------------

type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
	JWT    *authtest.JWTHelper
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	dbCfg := createDatabase(t, postgresEndpoint(t))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, db.Migrate(ctx, dbCfg), "データベースマイグレーションに失敗")

	s.Config = testConfig(dbCfg)
	s.Router, s.DB = startApp(t, s.Config)
	s.JWT = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *SharedSuite) SetupTest() {
	s.resetDB()
}

func (s *SharedSuite) SetupSubTest() {
	s.resetDB()
}

// TRUNCATE で全テーブルを空にする。参照データは持たない
func (s *SharedSuite) resetDB() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "Failed to reset database state")
}
