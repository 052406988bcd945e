package api_test

import (
	"context"
	"crypto/rsa"
	"errors"
	"net/http"
	"net/http/httptest"
	"numberbot/internal/api"
	"numberbot/internal/credential"
	mockusage "numberbot/internal/usage/mock"
	"numberbot/pkg/domain"
	"numberbot/pkg/logger"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

type fixture struct {
	usage    *mockusage.MockRecorder
	keys     *credential.Rotator
	keysFile string
	priv     *rsa.PrivateKey
	handler  http.Handler
}

func newFixture(t *testing.T, ping pingFunc) *fixture {
	t.Helper()

	priv, pubPEM := genRSAKeys(t)
	f := &fixture{
		usage:    mockusage.NewMockRecorder(gomock.NewController(t)),
		keys:     credential.NewRotator([]string{"k1", "k2"}),
		keysFile: filepath.Join(t.TempDir(), "access_keys.txt"),
		priv:     priv,
	}

	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "numberbot_test_total", Help: "test counter"})
	reg.MustRegister(counter)
	counter.Inc()

	var storage api.Pinger
	if ping != nil {
		storage = ping
	}

	h, err := api.NewHandler(context.Background(), api.Deps{
		Usage:    f.usage,
		Keys:     f.keys,
		Storage:  storage,
		Gatherer: reg,
	}, api.Options{
		MetricsPath:  "/metrics",
		JWTPublicKey: pubPEM,
		KeysFile:     f.keysFile,
	})
	require.NoError(t, err)
	f.handler = h

	return f
}

func (f *fixture) do(t *testing.T, method, path string, authorized bool) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if authorized {
		req.Header.Set("Authorization", "Bearer "+signRS256(t, f.priv, validClaims("operator")))
	}

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	return rec
}

func TestHealthz(t *testing.T) {
	f := newFixture(t, func(context.Context) error { return nil })

	rec := f.do(t, http.MethodGet, "/healthz", false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestHealthz_StorageDown(t *testing.T) {
	f := newFixture(t, func(context.Context) error { return errors.New("connection refused") })

	rec := f.do(t, http.MethodGet, "/healthz", false)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.JSONEq(t, `{"code":"UNAVAILABLE","message":"storage is not reachable"}`, rec.Body.String())
}

func TestMetrics(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(t, http.MethodGet, "/metrics", false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "numberbot_test_total 1")
}

func TestPprofMounted(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(t, http.MethodGet, "/debug/pprof/", false)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminStats_RequiresToken(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(t, http.MethodGet, "/admin/stats", false)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"code":"UNAUTHORIZED","message":"missing bearer token"}`, rec.Body.String())
}

func TestAdminStats_RejectsForeignToken(t *testing.T) {
	f := newFixture(t, nil)
	other, _ := genRSAKeys(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer "+signRS256(t, other, validClaims("operator")))
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"code":"UNAUTHORIZED","message":"invalid token"}`, rec.Body.String())
}

func TestAdminStats(t *testing.T) {
	f := newFixture(t, nil)
	_, _ = f.keys.Next()

	f.usage.EXPECT().Stats(gomock.Any()).Return(domain.Stats{TotalUsers: 12, TodayQueries: 34, Date: "2025-03-01"}, nil)

	rec := f.do(t, http.MethodGet, "/admin/stats", true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t,
		`{"totalUsers":12,"todayQueries":34,"date":"2025-03-01","keys":2,"keyCursor":1}`,
		rec.Body.String())
}

func TestAdminStats_StorageError(t *testing.T) {
	f := newFixture(t, nil)

	f.usage.EXPECT().Stats(gomock.Any()).Return(domain.Stats{}, errors.New("db down"))

	rec := f.do(t, http.MethodGet, "/admin/stats", true)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestAdminStats_WrongMethod(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(t, http.MethodPost, "/admin/stats", true)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestAdminReloadKeys(t *testing.T) {
	f := newFixture(t, nil)
	_, _ = f.keys.Next()
	require.NoError(t, os.WriteFile(f.keysFile, []byte("a\n# comment\nb\n\nc\n"), 0o600))

	rec := f.do(t, http.MethodPost, "/admin/keys/reload", true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"keys":3}`, rec.Body.String())

	require.Equal(t, 3, f.keys.Len())
	require.Equal(t, 0, f.keys.Cursor())
	key, ok := f.keys.Next()
	require.True(t, ok)
	require.Equal(t, "a", key)
}

func TestAdminReloadKeys_MissingFileKeepsKeys(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(t, http.MethodPost, "/admin/keys/reload", true)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, 2, f.keys.Len())
}

func TestAdminRoutesDisabledWithoutKey(t *testing.T) {
	h, err := api.NewHandler(context.Background(), api.Deps{}, api.Options{})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/stats", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewServer(t *testing.T) {
	srv, err := api.NewServer(context.Background(), api.Deps{}, api.Options{
		Addr:              ":0",
		ReadHeaderTimeout: time.Second,
		RequestTimeout:    time.Second,
	})
	require.NoError(t, err)
	require.Equal(t, ":0", srv.Addr)
	require.Equal(t, time.Second, srv.ReadHeaderTimeout)

	_, err = api.NewServer(context.Background(), api.Deps{}, api.Options{JWTPublicKey: "garbage"})
	require.Error(t, err)
}
