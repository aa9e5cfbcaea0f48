package main

import (
	"bytes"
	"context"
	"flag"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	pb "github.com/sbilibin2017/proto-exchange/exchange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"github.com/sbilibin2017/cryptex-wallet/internal/bus"
	"github.com/sbilibin2017/cryptex-wallet/internal/repositories"
	"github.com/sbilibin2017/cryptex-wallet/internal/services"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	expected := "config.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()
	expected := "myconfig.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()
	os.Stdout = oldStdout

	if !strings.Contains(output, "Version: v1.0.0") ||
		!strings.Contains(output, "Commit: abcd1234") ||
		!strings.Contains(output, "Build: 2025-09-26") {
		t.Errorf("printBuildInfo output unexpected:\n%s", output)
	}
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.AppHost)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, backendRedis, cfg.StoreBackend)

	assert.Equal(t, 5432, cfg.PGPort)
	assert.Equal(t, 16, cfg.PGMaxOpenConns)
	assert.Equal(t, 8, cfg.PGMaxIdleConns)

	assert.Equal(t, 6379, cfg.RedisPort)
	assert.Equal(t, 10, cfg.RedisPoolSize)
	assert.Equal(t, "wallet:", cfg.RedisPrefix)

	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "50051", cfg.GWPort)
	assert.Zero(t, cfg.RateSyncInterval)

	assert.Equal(t, "1770", cfg.Engine.FallbackRate.String())
	assert.True(t, cfg.Engine.Pin.AllowWhenUnset)
	assert.Equal(t, services.DefaultMaxRetries, cfg.Engine.MaxRetries)
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv()
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_LOG_LEVEL", "debug")
	t.Setenv("STORE_BACKEND", "postgres")
	t.Setenv("POSTGRES_HOST", "pg.example.com")
	t.Setenv("POSTGRES_PORT", "5433")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("REDIS_PREFIX", "alice:")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("KAFKA_TOPIC", "events")
	t.Setenv("GW_EXCHANGER_HOST", "grpc.example.com")
	t.Setenv("RATE_SYNC_SECOND", "30")
	t.Setenv("FX_FALLBACK_RATE", "1785.5")
	t.Setenv("PIN_ALLOW_WHEN_UNSET", "false")
	t.Setenv("ENGINE_MAX_RETRIES", "5")

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.AppHost)
	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, backendPostgres, cfg.StoreBackend)
	assert.Equal(t, "pg.example.com", cfg.PGHost)
	assert.Equal(t, 5433, cfg.PGPort)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, "alice:", cfg.RedisPrefix)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "events", cfg.KafkaTopic)
	assert.Equal(t, "grpc.example.com", cfg.GWHost)
	assert.Equal(t, 30*time.Second, cfg.RateSyncInterval)
	assert.Equal(t, "1785.5", cfg.Engine.FallbackRate.String())
	assert.False(t, cfg.Engine.Pin.AllowWhenUnset)
	assert.Equal(t, 5, cfg.Engine.MaxRetries)
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "unknown backend", key: "STORE_BACKEND", val: "mongo"},
		{name: "bad port", key: "POSTGRES_PORT", val: "pg"},
		{name: "bad fallback rate", key: "FX_FALLBACK_RATE", val: "abc"},
		{name: "zero fallback rate", key: "FX_FALLBACK_RATE", val: "0"},
		{name: "bad pin policy", key: "PIN_ALLOW_WHEN_UNSET", val: "maybe"},
		{name: "bad sync interval", key: "RATE_SYNC_SECOND", val: "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetEnv()
			t.Setenv(tt.key, tt.val)

			_, err := parseConfig("nonexistent.env")
			assert.Error(t, err)
		})
	}
}

func TestRouter_MemoryWallet(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := services.NewWalletService(
		repositories.NewTransactionRepository(store),
		repositories.NewWalletRepository(store),
		repositories.NewFxRateRepository(store),
		repositories.NewPinRepository(store),
		nil,
		services.DefaultEngineConfig(),
	)
	srv := httptest.NewServer(newRouter(config{AppHost: "localhost", AppPort: "8080"}, svc, bus.NewMemoryBus()))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/wallet/deposit", "application/json",
		strings.NewReader(`{"amount":10000,"method":"bank","reference":"R1"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Post(srv.URL+"/wallet/buy", "application/json", strings.NewReader(`{"usdt":5}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/wallet")
	require.NoError(t, err)
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(resp.Body)
	resp.Body.Close()
	assert.JSONEq(t, `{"ok":true,"wallet":{"usdt":5,"mwk":1150}}`, buf.String())

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	buf.Reset()
	_, _ = buf.ReadFrom(resp.Body)
	resp.Body.Close()
	assert.Contains(t, buf.String(), "wallet_operations_total")
}

type mockExchangeServer struct {
	pb.UnimplementedExchangeServiceServer
}

func (m *mockExchangeServer) GetExchangeRateForCurrency(ctx context.Context, req *pb.CurrencyRequest) (*pb.ExchangeRateResponse, error) {
	return &pb.ExchangeRateResponse{
		FromCurrency: req.FromCurrency,
		ToCurrency:   req.ToCurrency,
		Rate:         1800,
	}, nil
}

// Start mock gRPC server and return host, port and stop function
func startMockGRPCServer(t *testing.T) (host, port string, stop func()) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := grpc.NewServer()
	pb.RegisterExchangeServiceServer(s, &mockExchangeServer{})
	go s.Serve(lis)

	host, port, err = net.SplitHostPort(lis.Addr().String())
	require.NoError(t, err)
	return host, port, s.Stop
}

func TestRun_MemoryBackend(t *testing.T) {
	gwHost, gwPort, stopGRPC := startMockGRPCServer(t)
	defer stopGRPC()

	cfg := config{
		AppHost:          "127.0.0.1",
		AppPort:          "0",
		LogLevel:         "debug",
		StoreBackend:     backendMemory,
		GWHost:           gwHost,
		GWPort:           gwPort,
		RateSyncInterval: time.Second,
		Engine:           services.DefaultEngineConfig(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- run(ctx, cfg) }()

	select {
	case <-time.After(10 * time.Second):
		t.Fatal("run did not stop")
	case err := <-errCh:
		assert.NoError(t, err)
	}
}
