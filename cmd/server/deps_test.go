package main

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/cultivation-api/internal/config"
	"github.com/KirkDiggler/cultivation-api/internal/pkg/clock"
)

func testConfig(store string) *config.Config {
	return &config.Config{
		GRPCPort:           50051,
		Store:              store,
		LockTTL:            time.Second,
		LockWait:           time.Second,
		Cooldown:           time.Hour,
		TribulationEnabled: true,
		TribulationTTL:     time.Hour,
		LogLevel:           "info",
	}
}

func request(t *testing.T, fields map[string]any) *structpb.Struct {
	t.Helper()
	req, err := structpb.NewStruct(fields)
	require.NoError(t, err)
	return req
}

func TestMemoryStoreEndToEnd(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(config.StoreMemory)
	clk := clock.New()

	st, err := buildStores(ctx, cfg, clk)
	require.NoError(t, err)
	defer st.Close()
	assert.NotNil(t, st.challenges)

	handler, err := buildHandler(cfg, st, clk)
	require.NoError(t, err)

	created, err := handler.CreatePlayer(ctx, request(t, map[string]any{"player_id": "p1", "name": "Han Li"}))
	require.NoError(t, err)
	assert.Equal(t, "p1", created.AsMap()["player"].(map[string]any)["id"])

	cultivated, err := handler.Cultivate(ctx, request(t, map[string]any{"player_id": "p1"}))
	require.NoError(t, err)
	assert.Greater(t, cultivated.AsMap()["gain"].(float64), float64(0))

	info, err := handler.GetBreakthroughInfo(ctx, request(t, map[string]any{"player_id": "p1"}))
	require.NoError(t, err)
	assert.Equal(t, false, info.AsMap()["at_max_realm"])

	trib, err := handler.GetTribulation(ctx, request(t, map[string]any{"player_id": "p1"}))
	require.NoError(t, err)
	assert.Equal(t, false, trib.AsMap()["pending"])
}

func TestRedisStoreWiresTribulations(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig(config.StoreRedis)
	cfg.RedisAddr = mr.Addr()

	st, err := buildStores(context.Background(), cfg, clock.New())
	require.NoError(t, err)
	defer st.Close()

	assert.NotNil(t, st.players)
	assert.NotNil(t, st.locker)
	assert.NotNil(t, st.challenges)
}

func TestRedisStoreUnavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig(config.StoreRedis)
	cfg.RedisAddr = mr.Addr()
	mr.Close()

	_, err := buildStores(context.Background(), cfg, clock.New())
	assert.Error(t, err)
}

func TestSQLiteStoreRunsWithoutTribulations(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(config.StoreSQLite)
	cfg.SQLitePath = filepath.Join(t.TempDir(), "cultivation.db")
	clk := clock.New()

	st, err := buildStores(ctx, cfg, clk)
	require.NoError(t, err)
	defer st.Close()
	assert.Nil(t, st.challenges)

	handler, err := buildHandler(cfg, st, clk)
	require.NoError(t, err)

	_, err = handler.CreatePlayer(ctx, request(t, map[string]any{"player_id": "p1", "name": "Wang Lin"}))
	require.NoError(t, err)

	_, err = handler.GetTribulation(ctx, request(t, map[string]any{"player_id": "p1"}))
	assert.Error(t, err)
}

func TestTribulationsDisabledInMemory(t *testing.T) {
	cfg := testConfig(config.StoreMemory)
	cfg.TribulationEnabled = false

	st, err := buildStores(context.Background(), cfg, clock.New())
	require.NoError(t, err)
	assert.Nil(t, st.challenges)
}
