package apiserver_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"

	pantryapp "github.com/pantrychef/v2/internal/application/pantry"
	recipeapp "github.com/pantrychef/v2/internal/application/recipe"
	trackingapp "github.com/pantrychef/v2/internal/application/tracking"
	userapp "github.com/pantrychef/v2/internal/application/user"
	"github.com/pantrychef/v2/internal/infrastructure/config"
	"github.com/pantrychef/v2/internal/infrastructure/http/apiserver"
	"github.com/pantrychef/v2/internal/infrastructure/monitoring"
	gormrepo "github.com/pantrychef/v2/internal/infrastructure/persistence/gorm"
	"github.com/pantrychef/v2/internal/infrastructure/persistence/memory"
	"github.com/pantrychef/v2/internal/infrastructure/persistence/sqlite"
	"github.com/pantrychef/v2/internal/infrastructure/security"
	"github.com/pantrychef/v2/test/testutils"
)

const completionPayload = `{
  "name": "Chicken and Rice",
  "servings": 2,
  "totalTime": 30,
  "ingredients": [
    { "name": "Chicken Breast", "quantity": 300, "unit": "g" },
    { "name": "Rice", "quantity": 1, "unit": "Cup" }
  ],
  "instructions": [
    { "step": "Cook the rice." },
    { "step": "Pan fry the chicken and combine." }
  ],
  "nutritionPerServing": {
    "calories": 450,
    "protein": 38,
    "carbs": 52,
    "fat": 9
  },
  "additionalNotes": ""
}`

// APITestSuite exercises the full router with a real repository on an
// in-memory SQLite database. Only the completion client is mocked.
type APITestSuite struct {
	suite.Suite
	server     *apiserver.Server
	completion *testutils.MockCompletionClient
}

func (s *APITestSuite) SetupTest() {
	db, err := sqlite.SetupDatabase("", gormlogger.Silent)
	require.NoError(s.T(), err)

	cfg := &config.Config{
		App: config.AppConfig{
			Name:        "PantryChef",
			Version:     "test",
			Environment: "test",
		},
		Server: config.ServerConfig{
			Host:         "127.0.0.1",
			Port:         8080,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Auth: config.AuthConfig{
			JWTSecret:     "test-secret-key-for-testing-only-32b",
			JWTExpiration: time.Hour,
			BCryptCost:    4,
		},
	}

	logger := zap.NewNop()
	userRepo := gormrepo.NewUserRepository(db)
	hasher := security.NewBcryptHasher(cfg.Auth.BCryptCost)
	tokens := security.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiration)
	cache := memory.NewCacheRepository()
	s.completion = new(testutils.MockCompletionClient)

	s.server = apiserver.New(cfg, logger,
		userapp.NewService(userRepo, hasher, tokens, logger),
		pantryapp.NewService(userRepo, logger),
		trackingapp.NewService(userRepo, logger),
		recipeapp.NewService(userRepo, cache, s.completion, logger),
		tokens,
		monitoring.NewMetrics(),
	)
}

func (s *APITestSuite) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.T(), json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.server.Router().ServeHTTP(rec, req)
	return rec
}

func (s *APITestSuite) decode(rec *httptest.ResponseRecorder) map[string]interface{} {
	var payload map[string]interface{}
	require.NoError(s.T(), json.NewDecoder(rec.Body).Decode(&payload))
	return payload
}

// registerAndLogin creates a user and returns its access token.
func (s *APITestSuite) registerAndLogin(email string) string {
	rec := s.do(http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"firstName": "Test",
		"lastName":  "User",
		"email":     email,
		"password":  "password123",
	})
	require.Equal(s.T(), http.StatusCreated, rec.Code)

	rec = s.do(http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": "password123",
	})
	require.Equal(s.T(), http.StatusOK, rec.Code)

	payload := s.decode(rec)
	data := payload["data"].(map[string]interface{})
	token := data["accessToken"].(string)
	require.NotEmpty(s.T(), token)
	return token
}

func (s *APITestSuite) TestHealthCheck() {
	rec := s.do(http.MethodGet, "/health", "", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"status":"healthy"`)
}

func (s *APITestSuite) TestRegisterAndLogin() {
	token := s.registerAndLogin("alice@example.com")

	rec := s.do(http.MethodGet, "/api/v1/profile", token, nil)
	s.Equal(http.StatusOK, rec.Code)

	data := s.decode(rec)["data"].(map[string]interface{})
	s.Equal("alice@example.com", data["email"])
	s.Equal(float64(2000), data["calories"])
	s.Equal(float64(80), data["protein"])
	s.NotContains(data, "passwordHash")
}

func (s *APITestSuite) TestRegisterDuplicateEmail() {
	s.registerAndLogin("bob@example.com")

	rec := s.do(http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"firstName": "Bob",
		"email":     "bob@example.com",
		"password":  "password123",
	})

	s.Equal(http.StatusConflict, rec.Code)
	errDetails := s.decode(rec)["error"].(map[string]interface{})
	s.Equal("EMAIL_ALREADY_EXISTS", errDetails["code"])
}

func (s *APITestSuite) TestLoginWrongPassword() {
	s.registerAndLogin("carol@example.com")

	rec := s.do(http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "carol@example.com",
		"password": "wrong-password",
	})

	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *APITestSuite) TestProtectedRoutesRequireToken() {
	for _, route := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/profile"},
		{http.MethodGet, "/api/v1/pantry"},
		{http.MethodGet, "/api/v1/tracking?date=2026-03-01"},
		{http.MethodPost, "/api/v1/recipes/generate"},
	} {
		rec := s.do(route.method, route.path, "", nil)
		s.Equalf(http.StatusUnauthorized, rec.Code, "%s %s", route.method, route.path)
	}
}

func (s *APITestSuite) TestRejectsForgedToken() {
	other := security.NewJWTService("a-completely-different-secret", time.Hour)
	token, _, err := other.Issue(testutils.NewTestUser().ID, "mallory@example.com")
	require.NoError(s.T(), err)

	rec := s.do(http.MethodGet, "/api/v1/profile", token, nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *APITestSuite) TestUpdateProfile() {
	token := s.registerAndLogin("dave@example.com")

	rec := s.do(http.MethodPut, "/api/v1/profile", token, map[string]interface{}{
		"calories": 2500,
		"goal":     "Gain Muscle",
		"age":      30,
	})
	s.Equal(http.StatusOK, rec.Code)

	data := s.decode(rec)["data"].(map[string]interface{})
	s.Equal(float64(2500), data["calories"])
	s.Equal("Gain Muscle", data["goal"])
	s.Equal(float64(30), data["age"])
	s.Equal(float64(80), data["protein"])
}

func (s *APITestSuite) TestUpdateProfileRejectsInvalidEnum() {
	token := s.registerAndLogin("erin@example.com")

	rec := s.do(http.MethodPut, "/api/v1/profile", token, map[string]interface{}{
		"goal": "get-huge",
	})

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *APITestSuite) TestPantryRoundTrip() {
	token := s.registerAndLogin("frank@example.com")

	rec := s.do(http.MethodPost, "/api/v1/pantry", token, map[string]interface{}{
		"name":          "Chicken Breast",
		"quantity":      "500",
		"unit":          "g",
		"expiresInDays": "3",
	})
	s.Equal(http.StatusCreated, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/pantry", token, nil)
	s.Equal(http.StatusOK, rec.Code)
	items := s.decode(rec)["data"].([]interface{})
	require.Len(s.T(), items, 1)
	item := items[0].(map[string]interface{})
	s.Equal("Chicken Breast", item["name"])
	s.Equal(float64(500), item["quantity"])
	s.NotEmpty(item["expirationDate"])

	rec = s.do(http.MethodDelete, "/api/v1/pantry/Chicken%20Breast", token, nil)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/pantry", token, nil)
	s.Empty(s.decode(rec)["data"])
}

func (s *APITestSuite) TestPantryRejectsBadQuantity() {
	token := s.registerAndLogin("grace@example.com")

	rec := s.do(http.MethodPost, "/api/v1/pantry", token, map[string]interface{}{
		"name":     "Rice",
		"quantity": "-2",
		"unit":     "Cup",
	})

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *APITestSuite) TestTrackingAccumulatesAcrossCalls() {
	token := s.registerAndLogin("heidi@example.com")

	rec := s.do(http.MethodPost, "/api/v1/tracking", token, map[string]interface{}{
		"date":             "2026-03-01",
		"weight":           180.5,
		"caloriesConsumed": 500,
		"proteinConsumed":  30,
	})
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodPost, "/api/v1/tracking", token, map[string]interface{}{
		"date":             "2026-03-01",
		"caloriesConsumed": 300,
		"proteinConsumed":  20,
	})
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/tracking?date=2026-03-01", token, nil)
	s.Equal(http.StatusOK, rec.Code)
	entry := s.decode(rec)["data"].(map[string]interface{})
	s.Equal(float64(800), entry["caloriesConsumed"])
	s.Equal(float64(50), entry["proteinConsumed"])
	s.Equal(180.5, entry["weight"])
	s.Equal(float64(2000), entry["caloriesNeeded"])
}

func (s *APITestSuite) TestTrackingMissingDayIsNotFound() {
	token := s.registerAndLogin("ivan@example.com")

	rec := s.do(http.MethodGet, "/api/v1/tracking?date=2026-03-02", token, nil)

	s.Equal(http.StatusNotFound, rec.Code)
	errDetails := s.decode(rec)["error"].(map[string]interface{})
	s.Equal("ENTRY_NOT_FOUND", errDetails["code"])
}

func (s *APITestSuite) TestGenerateRecipe() {
	token := s.registerAndLogin("judy@example.com")

	rec := s.do(http.MethodPost, "/api/v1/pantry", token, map[string]interface{}{
		"name":     "Chicken Breast",
		"quantity": "500",
		"unit":     "g",
	})
	require.Equal(s.T(), http.StatusCreated, rec.Code)

	s.completion.On("Complete", mock.Anything, mock.Anything).Return(completionPayload, nil)

	rec = s.do(http.MethodPost, "/api/v1/recipes/generate", token, map[string]interface{}{
		"servings": 2,
		"cuisine":  "Asian",
	})
	s.Equal(http.StatusOK, rec.Code)

	data := s.decode(rec)["data"].(map[string]interface{})
	s.Equal("Chicken and Rice", data["name"])
	s.Equal(float64(2), data["servings"])
	s.completion.AssertExpectations(s.T())
}

func (s *APITestSuite) TestGenerateRecipeEmptyPantry() {
	token := s.registerAndLogin("kate@example.com")

	rec := s.do(http.MethodPost, "/api/v1/recipes/generate", token, map[string]interface{}{
		"servings": 2,
	})

	s.Equal(http.StatusBadRequest, rec.Code)
	s.completion.AssertNotCalled(s.T(), "Complete", mock.Anything, mock.Anything)
}

func (s *APITestSuite) TestGenerateRecipeUpstreamFailure() {
	token := s.registerAndLogin("leo@example.com")

	rec := s.do(http.MethodPost, "/api/v1/pantry", token, map[string]interface{}{
		"name":     "Eggs",
		"quantity": "6",
		"unit":     "Piece",
	})
	require.Equal(s.T(), http.StatusCreated, rec.Code)

	s.completion.On("Complete", mock.Anything, mock.Anything).
		Return("", fmt.Errorf("upstream returned 429"))

	rec = s.do(http.MethodPost, "/api/v1/recipes/generate", token, map[string]interface{}{})
	s.Equal(http.StatusBadGateway, rec.Code)
}

func (s *APITestSuite) TestRejectsNonJSONBody() {
	token := s.registerAndLogin("mike@example.com")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tracking", bytes.NewBufferString("date=2026-03-01"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	s.server.Router().ServeHTTP(rec, req)

	s.Equal(http.StatusUnsupportedMediaType, rec.Code)
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}
