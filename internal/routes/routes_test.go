package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/horizonhomes/horizonhomes-backend/internal/config"
	"github.com/horizonhomes/horizonhomes-backend/internal/dto"
	"github.com/horizonhomes/horizonhomes-backend/internal/handlers"
	"github.com/horizonhomes/horizonhomes-backend/internal/models"
	"github.com/horizonhomes/horizonhomes-backend/internal/routes"
	"github.com/horizonhomes/horizonhomes-backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type stubProvider struct {
	lastAmount int64
}

func (p *stubProvider) CreateIntent(_ context.Context, amount int64, _ string) (string, error) {
	p.lastAmount = amount
	return fmt.Sprintf("pi_stub_%d_secret", amount), nil
}

type testEnv struct {
	app      *fiber.App
	db       *gorm.DB
	tokens   *services.TokenService
	provider *stubProvider
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Property{},
		&models.Review{},
		&models.WishlistEntry{},
	))

	cfg := &config.Config{
		JWTSecret:               "route-test-secret",
		JWTExpiry:               time.Hour,
		PaymentCurrency:         "usd",
		AllowAdminFraudDemotion: true,
	}

	provider := &stubProvider{}
	tokenService := services.NewTokenService(cfg)

	app := fiber.New()
	routes.Setup(app, cfg, db,
		handlers.NewTokenHandler(tokenService),
		handlers.NewHealthHandler(),
		handlers.NewPropertyHandler(services.NewPropertyService(db)),
		handlers.NewReviewHandler(services.NewReviewService(db)),
		handlers.NewWishlistHandler(services.NewWishlistService(db)),
		handlers.NewUserHandler(services.NewUserService(db, cfg)),
		handlers.NewPaymentHandler(services.NewPaymentService(cfg, provider)),
	)

	return &testEnv{app: app, db: db, tokens: tokenService, provider: provider}
}

func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, payload
}

func (e *testEnv) tokenFor(t *testing.T, email string) string {
	t.Helper()
	token, err := e.tokens.Issue(email, "Test User")
	require.NoError(t, err)
	return token
}

func (e *testEnv) seedUser(t *testing.T, email string, role models.Role) models.User {
	t.Helper()
	user := models.User{ID: uuid.New(), Email: email, Name: "Seed", Role: role}
	require.NoError(t, e.db.Create(&user).Error)
	return user
}

func TestLiveness(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.request(t, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "HorizonHomes is running", string(body))
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	env := newTestEnv(t)

	for _, route := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/users"},
		{http.MethodPost, "/wishlist"},
		{http.MethodGet, "/wishlist"},
		{http.MethodPost, "/properties"},
		{http.MethodPost, "/reviews"},
		{http.MethodPost, "/create-payment-intent"},
	} {
		resp, body := env.request(t, route.method, route.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "%s %s", route.method, route.path)

		var errResp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(body, &errResp))
		assert.Equal(t, dto.CodeUnauthenticated, errResp.Code)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	env := newTestEnv(t)

	expiredCfg := &config.Config{JWTSecret: "route-test-secret", JWTExpiry: -time.Minute}
	stale, err := services.NewTokenService(expiredCfg).Issue("old@example.com", "")
	require.NoError(t, err)

	resp, _ := env.request(t, http.MethodGet, "/wishlist", stale, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminGate(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "user@example.com", models.RoleUser)
	env.seedUser(t, "admin@example.com", models.RoleAdmin)

	resp, body := env.request(t, http.MethodGet, "/users", env.tokenFor(t, "user@example.com"), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, dto.CodeForbidden, errResp.Code)

	resp, body = env.request(t, http.MethodGet, "/users", env.tokenFor(t, "admin@example.com"), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var users []models.User
	require.NoError(t, json.Unmarshal(body, &users))
	assert.Len(t, users, 2)
}

func TestUserCreateIdempotentOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	payload := dto.CreateUserRequest{Email: "fred@example.com", Name: "Fred"}

	resp, body := env.request(t, http.MethodPost, "/users", "", payload)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var first dto.InsertResult
	require.NoError(t, json.Unmarshal(body, &first))
	require.NotNil(t, first.InsertedID)

	resp, body = env.request(t, http.MethodPost, "/users", "", payload)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var second dto.InsertResult
	require.NoError(t, json.Unmarshal(body, &second))
	assert.Nil(t, second.InsertedID)
	assert.Equal(t, "user already exists", second.Message)
}

func TestAdminProbeOnlyForSelf(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "me@example.com", models.RoleAdmin)
	token := env.tokenFor(t, "me@example.com")

	resp, _ := env.request(t, http.MethodGet, "/users/admin/other@example.com", token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, body := env.request(t, http.MethodGet, "/users/admin/me@example.com", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var probe dto.AdminProbeResponse
	require.NoError(t, json.Unmarshal(body, &probe))
	assert.True(t, probe.Admin)
}

func TestAgentProbe(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "agent@example.com", models.RoleAgent)
	token := env.tokenFor(t, "someone@example.com")

	resp, body := env.request(t, http.MethodGet, "/users/agent/agent@example.com", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var probe dto.AgentProbeResponse
	require.NoError(t, json.Unmarshal(body, &probe))
	assert.True(t, probe.Agent)

	resp, body = env.request(t, http.MethodGet, "/users/agent/nobody@example.com", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &probe))
	assert.False(t, probe.Agent)
}

func TestFraudDemotionRoute(t *testing.T) {
	env := newTestEnv(t)
	agent := env.seedUser(t, "crook@example.com", models.RoleAgent)

	resp, body := env.request(t, http.MethodPatch, "/users/agentt/"+agent.ID.String(), "", fiber.Map{})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result dto.UpdateResult
	require.NoError(t, json.Unmarshal(body, &result))
	assert.True(t, result.Modified)

	var reloaded models.User
	require.NoError(t, env.db.First(&reloaded, "id = ?", agent.ID).Error)
	assert.Equal(t, models.RoleFraud, reloaded.Role)
}

func TestWishlistLifecycleOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "buyer@example.com")

	resp, body := env.request(t, http.MethodPost, "/wishlist", token, dto.WishlistRequest{
		PropertyName: "Skyline Villa",
		AgentEmail:   "ana@horizonhomes.io",
		UserEmail:    "buyer@example.com",
		OfferedPrice: 275000,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var entry models.WishlistEntry
	require.NoError(t, json.Unmarshal(body, &entry))
	id := entry.ID.String()

	// Accept the offer through the legacy status route.
	resp, body = env.request(t, http.MethodPatch, "/wishlistt/"+id, "", dto.WishlistStatusRequest{Status: "accepted"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var result dto.UpdateResult
	require.NoError(t, json.Unmarshal(body, &result))
	assert.True(t, result.Modified)

	// Complete the sale: status, transaction id and sold price land together.
	soldPrice := 268000.0
	resp, body = env.request(t, http.MethodPatch, "/wishlistt/"+id, "", dto.WishlistStatusRequest{
		TransactionID: "pi_3OqX7z",
		SoldPrice:     &soldPrice,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &result))
	assert.True(t, result.Modified)

	resp, body = env.request(t, http.MethodGet, "/wishlist/"+id, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &entry))
	assert.Equal(t, models.WishlistBought, entry.Status)
	assert.Equal(t, "pi_3OqX7z", entry.TransactionID)
	assert.Equal(t, 268000.0, entry.SoldPrice)

	// Terminal state: any further transition is a conflict.
	resp, body = env.request(t, http.MethodPatch, "/wishlistR/"+id, "", dto.WishlistStatusRequest{Status: "pending"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, dto.CodeInvalidTransition, errResp.Code)
}

func TestWishlistSaleFieldsMustTravelTogether(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "buyer@example.com")

	resp, body := env.request(t, http.MethodPost, "/wishlist", token, dto.WishlistRequest{
		PropertyName: "Skyline Villa",
		UserEmail:    "buyer@example.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var entry models.WishlistEntry
	require.NoError(t, json.Unmarshal(body, &entry))

	resp, _ = env.request(t, http.MethodPatch, "/wishlistt/"+entry.ID.String(), "",
		dto.WishlistStatusRequest{TransactionID: "pi_lonely"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestWishlistByAgentQuery(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "buyer@example.com")

	_, _ = env.request(t, http.MethodPost, "/wishlist", token, dto.WishlistRequest{
		PropertyName: "Skyline Villa",
		AgentEmail:   "ana@horizonhomes.io",
		UserEmail:    "buyer@example.com",
	})

	resp, body := env.request(t, http.MethodGet, "/wishlistt?agent_email=ana@horizonhomes.io", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var entries []models.WishlistEntry
	require.NoError(t, json.Unmarshal(body, &entries))
	assert.Len(t, entries, 1)

	resp, _ = env.request(t, http.MethodGet, "/wishlistt", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPaymentIntentOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "buyer@example.com")

	resp, _ := env.request(t, http.MethodPost, "/create-payment-intent", token,
		dto.PaymentIntentRequest{OfferedPrice: "abc"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, env.provider.lastAmount)

	resp, body := env.request(t, http.MethodPost, "/create-payment-intent", token,
		dto.PaymentIntentRequest{OfferedPrice: "1000000"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var intent dto.PaymentIntentResponse
	require.NoError(t, json.Unmarshal(body, &intent))
	assert.NotEmpty(t, intent.ClientSecret)
	assert.EqualValues(t, 99_999_999, env.provider.lastAmount)
}

func TestReviewCompareEndpoint(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "reviewer@example.com")

	resp, body := env.request(t, http.MethodPost, "/properties", token, dto.PropertyRequest{
		PropertyName: "Cedar Court",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var property models.Property
	require.NoError(t, json.Unmarshal(body, &property))

	_, _ = env.request(t, http.MethodPost, "/reviews", token, dto.ReviewRequest{
		PropertyName:  "Cedar Court",
		ReviewerEmail: "reviewer@example.com",
		Rating:        5,
	})

	resp, body = env.request(t, http.MethodGet, "/reviews/"+property.ID.String(), "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var reviews []models.Review
	require.NoError(t, json.Unmarshal(body, &reviews))
	require.Len(t, reviews, 1)
	assert.Equal(t, "Cedar Court", reviews[0].PropertyName)

	resp, _ = env.request(t, http.MethodGet, "/reviews/"+uuid.NewString(), "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
