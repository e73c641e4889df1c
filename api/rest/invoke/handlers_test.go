package invoke

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinytools/server/internal/gateway"
	"github.com/tinytools/server/internal/identity"
	"github.com/tinytools/server/internal/ledger"
	"github.com/tinytools/server/internal/quota"
	"github.com/tinytools/server/internal/settings"
	"github.com/tinytools/server/internal/subscriptions"
	"github.com/tinytools/server/internal/tools"
)

type fakeFinder struct {
	tools map[string]*tools.Tool
}

func (f *fakeFinder) FindBySlug(_ context.Context, slug string) (*tools.Tool, error) {
	return f.tools[slug], nil
}

type fakePolicy struct {
	limits settings.GlobalLimits
}

func (f *fakePolicy) GlobalLimits(_ context.Context) (*settings.GlobalLimits, error) {
	return &f.limits, nil
}

type fakeSubs struct{}

func (fakeSubs) ActiveForUser(_ context.Context, _ string) (*subscriptions.Subscription, error) {
	return nil, nil
}

func newTestRouter(t *testing.T, finder *fakeFinder, store *ledger.MemoryStore) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	classifier := quota.NewClassifier(fakeSubs{}, &fakePolicy{
		limits: settings.GlobalLimits{GuestDailyLimit: 5, UserDailyLimit: 20},
	})

	window := ledger.NewWindowWithClock(time.UTC, func() time.Time {
		return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	})

	admission := quota.NewController(classifier, store, window)
	orch := gateway.NewOrchestrator(admission, store)

	router := gin.New()
	RegisterRoutes(router.Group("/api/v1"), orch, finder, nil)

	return router
}

func post(router *gin.Engine, path, body, fingerprint string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	if fingerprint != "" {
		req.Header.Set(identity.FingerprintHeader, fingerprint)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestInvoke_LocalTool(t *testing.T) {
	finder := &fakeFinder{tools: map[string]*tools.Tool{
		"uppercase": {ID: "t1", Slug: "uppercase", MaxLength: 5000, IsActive: true},
	}}

	store := ledger.NewMemoryStore()
	router := newTestRouter(t, finder, store)

	w := post(router, "/api/v1/tools/uppercase/invoke", `{"input": "hello world"}`, "fp-1")

	require.Equal(t, http.StatusOK, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, "HELLO WORLD", resp.Result)
	require.NotNil(t, resp.Metadata)
	assert.Equal(t, "guest", resp.Metadata.Tier)
	assert.Equal(t, 4, resp.Metadata.Remaining)

	// one record per accepted invocation
	assert.Equal(t, 1, store.Len())
}

func TestInvoke_StructuredInput(t *testing.T) {
	finder := &fakeFinder{tools: map[string]*tools.Tool{
		"word-count": {ID: "t2", Slug: "word-count", MaxLength: 5000, IsActive: true},
	}}

	router := newTestRouter(t, finder, ledger.NewMemoryStore())

	w := post(router, "/api/v1/tools/word-count/invoke", `{"input": {"text": "a b c"}}`, "fp-1")

	// structured input is forwarded as JSON text, still countable
	require.Equal(t, http.StatusOK, w.Code)
}

func TestInvoke_UnknownTool(t *testing.T) {
	router := newTestRouter(t, &fakeFinder{tools: map[string]*tools.Tool{}}, ledger.NewMemoryStore())

	w := post(router, "/api/v1/tools/nope/invoke", `{"input": "x"}`, "fp-1")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInvoke_InactiveToolHidden(t *testing.T) {
	finder := &fakeFinder{tools: map[string]*tools.Tool{
		"retired": {ID: "t3", Slug: "retired", MaxLength: 5000, IsActive: false},
	}}

	router := newTestRouter(t, finder, ledger.NewMemoryStore())

	w := post(router, "/api/v1/tools/retired/invoke", `{"input": "x"}`, "fp-1")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInvoke_MissingInput(t *testing.T) {
	finder := &fakeFinder{tools: map[string]*tools.Tool{
		"uppercase": {ID: "t1", Slug: "uppercase", MaxLength: 5000, IsActive: true},
	}}

	router := newTestRouter(t, finder, ledger.NewMemoryStore())

	w := post(router, "/api/v1/tools/uppercase/invoke", `{}`, "fp-1")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInvoke_AuthRequired(t *testing.T) {
	finder := &fakeFinder{tools: map[string]*tools.Tool{
		"members-only": {ID: "t4", Slug: "members-only", RequiresAuth: true, MaxLength: 5000, IsActive: true},
	}}

	router := newTestRouter(t, finder, ledger.NewMemoryStore())

	w := post(router, "/api/v1/tools/members-only/invoke", `{"input": "x"}`, "fp-1")

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var resp struct {
		Error         string `json:"error"`
		RequiresLogin bool   `json:"requires_login"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "unauthorized", resp.Error)
	assert.True(t, resp.RequiresLogin, "a 401 should tell the client login would help")
}

func TestInvoke_QuotaExceeded(t *testing.T) {
	finder := &fakeFinder{tools: map[string]*tools.Tool{
		"uppercase": {ID: "t1", Slug: "uppercase", MaxLength: 5000, IsActive: true},
	}}

	store := ledger.NewMemoryStore()
	router := newTestRouter(t, finder, store)

	for i := 0; i < 5; i++ {
		w := post(router, "/api/v1/tools/uppercase/invoke", `{"input": "hello"}`, "fp-1")
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := post(router, "/api/v1/tools/uppercase/invoke", `{"input": "hello"}`, "fp-1")

	require.Equal(t, http.StatusTooManyRequests, w.Code)

	var resp struct {
		Error         string `json:"error"`
		Remaining     *int   `json:"remaining"`
		RequiresLogin bool   `json:"requires_login"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "quota_exceeded", resp.Error)
	require.NotNil(t, resp.Remaining)
	assert.Equal(t, 0, *resp.Remaining)
	assert.True(t, resp.RequiresLogin)

	// the denied attempt wrote nothing
	assert.Equal(t, 5, store.Len())
}

func TestInvoke_FingerprintSwitchDoesNotReset(t *testing.T) {
	finder := &fakeFinder{tools: map[string]*tools.Tool{
		"uppercase": {ID: "t1", Slug: "uppercase", MaxLength: 5000, IsActive: true},
	}}

	router := newTestRouter(t, finder, ledger.NewMemoryStore())

	// exhaust the guest limit under one fingerprint, same IP throughout
	for i := 0; i < 5; i++ {
		w := post(router, "/api/v1/tools/uppercase/invoke", `{"input": "hello"}`, "fp-old")
		require.Equal(t, http.StatusOK, w.Code)
	}

	// a fresh fingerprint from the same IP is still over the limit
	w := post(router, "/api/v1/tools/uppercase/invoke", `{"input": "hello"}`, "fp-new")

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestInvoke_ModerationRejection(t *testing.T) {
	finder := &fakeFinder{tools: map[string]*tools.Tool{
		"uppercase": {ID: "t1", Slug: "uppercase", MinLength: 10, MaxLength: 5000, IsActive: true},
	}}

	store := ledger.NewMemoryStore()
	router := newTestRouter(t, finder, store)

	w := post(router, "/api/v1/tools/uppercase/invoke", `{"input": "short"}`, "fp-1")

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "content_rejected", resp.Error)
	// the offending input is never echoed back
	assert.NotContains(t, resp.Message, "short")
	assert.Equal(t, 0, store.Len())
}
