package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ratehub/store-ratings/internal/handler"
	"github.com/ratehub/store-ratings/internal/middleware"
	"github.com/ratehub/store-ratings/internal/models"
	"github.com/ratehub/store-ratings/internal/repository"
	"github.com/ratehub/store-ratings/internal/service"
	"github.com/ratehub/store-ratings/internal/testutil"
	"github.com/ratehub/store-ratings/internal/utils"
	"github.com/ratehub/store-ratings/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// RatingHandlerIntegrationTestSuite defines test suite
type RatingHandlerIntegrationTestSuite struct {
	suite.Suite
	testDB *testutil.TestDatabase
	router *gin.Engine

	rater *models.User
	owner *models.User
	store *models.Store
}

// SetupSuite runs before all tests
func (s *RatingHandlerIntegrationTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	logger.Init(false)

	s.testDB = testutil.SetupTestDatabase(s.T())

	storeRepo := repository.NewStoreRepository(s.testDB.DB)
	ratingRepo := repository.NewRatingRepository(s.testDB.DB)
	ratingService := service.NewRatingService(ratingRepo, storeRepo)
	ratingHandler := handler.NewRatingHandler(ratingService)

	s.router = gin.New()
	protected := s.router.Group("/api")
	protected.Use(middleware.AuthMiddleware(testJWTSecret))
	protected.POST("/ratings", ratingHandler.Submit)
}

// TearDownSuite runs after all tests
func (s *RatingHandlerIntegrationTestSuite) TearDownSuite() {
	s.testDB.Teardown(s.T())
}

// SetupTest seeds a rater, a store owner and the owner's store
func (s *RatingHandlerIntegrationTestSuite) SetupTest() {
	testutil.CleanDatabase(s.T(), s.testDB.DB)

	rater, err := testutil.CreateTestUser("Rating Submitting Person", "rater@example.com", "Rater@1234", "1 Rater Road", models.RoleUser)
	require.NoError(s.T(), err)
	s.testDB.DB.Create(rater)
	s.rater = rater

	owner, err := testutil.CreateTestUser("Store Owning Test Person", "owner@example.com", "Owner@1234", "2 Owner Road", models.RoleStoreOwner)
	require.NoError(s.T(), err)
	s.testDB.DB.Create(owner)
	s.owner = owner

	store := testutil.CreateTestStore(owner.ID, "Corner Shop", "3 Market Square")
	s.testDB.DB.Create(store)
	s.store = store
}

func (s *RatingHandlerIntegrationTestSuite) submit(user *models.User, storeID uint, rating int) *httptest.ResponseRecorder {
	token, _ := utils.GenerateToken(user, testJWTSecret, time.Hour)
	bodyBytes, _ := json.Marshal(map[string]interface{}{
		"storeId": storeID,
		"rating":  rating,
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/ratings", bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// TestSubmitCreatesRating tests the insert path of the upsert
func (s *RatingHandlerIntegrationTestSuite) TestSubmitCreatesRating() {
	w := s.submit(s.rater, s.store.ID, 4)

	assert.Equal(s.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(s.T(), "Rating submitted successfully", response["message"])

	var ratings []models.Rating
	s.testDB.DB.Find(&ratings)
	require.Len(s.T(), ratings, 1)
	assert.Equal(s.T(), 4, ratings[0].Rating)
	assert.Equal(s.T(), s.rater.ID, ratings[0].UserID)
	assert.Equal(s.T(), s.store.ID, ratings[0].StoreID)
}

// TestResubmitOverwrites tests the conflict path: one row, new value,
// created_at untouched, updated_at advanced
func (s *RatingHandlerIntegrationTestSuite) TestResubmitOverwrites() {
	first := s.submit(s.rater, s.store.ID, 2)
	require.Equal(s.T(), http.StatusOK, first.Code)

	var before models.Rating
	s.testDB.DB.First(&before)

	time.Sleep(50 * time.Millisecond)

	second := s.submit(s.rater, s.store.ID, 5)
	require.Equal(s.T(), http.StatusOK, second.Code)

	var ratings []models.Rating
	s.testDB.DB.Find(&ratings)
	require.Len(s.T(), ratings, 1, "Resubmission must not create a second row")

	after := ratings[0]
	assert.Equal(s.T(), 5, after.Rating, "Value must be fully replaced")
	assert.Equal(s.T(), before.CreatedAt.Unix(), after.CreatedAt.Unix(), "created_at must not change")
	assert.True(s.T(), after.UpdatedAt.After(before.UpdatedAt), "updated_at must advance")
}

// TestResubmitSameValue tests idempotence in effect
func (s *RatingHandlerIntegrationTestSuite) TestResubmitSameValue() {
	require.Equal(s.T(), http.StatusOK, s.submit(s.rater, s.store.ID, 3).Code)

	var before models.Rating
	s.testDB.DB.First(&before)

	time.Sleep(50 * time.Millisecond)
	require.Equal(s.T(), http.StatusOK, s.submit(s.rater, s.store.ID, 3).Code)

	var ratings []models.Rating
	s.testDB.DB.Find(&ratings)
	require.Len(s.T(), ratings, 1)
	assert.Equal(s.T(), 3, ratings[0].Rating)
	assert.True(s.T(), ratings[0].UpdatedAt.After(before.UpdatedAt), "updated_at is refreshed even for an unchanged value")
}

// TestSubmitOutOfRange tests rejection outside [1,5] with no row written
func (s *RatingHandlerIntegrationTestSuite) TestSubmitOutOfRange() {
	for _, value := range []int{0, 6, -1} {
		w := s.submit(s.rater, s.store.ID, value)
		assert.Equal(s.T(), http.StatusBadRequest, w.Code)

		var response map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Equal(s.T(), "Rating must be between 1 and 5", response["error"])
	}

	var count int64
	s.testDB.DB.Model(&models.Rating{}).Count(&count)
	assert.Zero(s.T(), count, "No rows may be written for rejected ratings")
}

// TestSubmitWrongRole tests that only normal users may rate
func (s *RatingHandlerIntegrationTestSuite) TestSubmitWrongRole() {
	w := s.submit(s.owner, s.store.ID, 5)

	assert.Equal(s.T(), http.StatusForbidden, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(s.T(), "Only normal users can submit ratings", response["error"])

	var count int64
	s.testDB.DB.Model(&models.Rating{}).Count(&count)
	assert.Zero(s.T(), count)
}

// TestSubmitUnknownStore tests the missing-store case
func (s *RatingHandlerIntegrationTestSuite) TestSubmitUnknownStore() {
	w := s.submit(s.rater, s.store.ID+100, 3)

	assert.Equal(s.T(), http.StatusNotFound, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(s.T(), "Store not found", response["error"])
}

// TestSubmitRequiresToken tests the auth middleware on the route
func (s *RatingHandlerIntegrationTestSuite) TestSubmitRequiresToken() {
	bodyBytes, _ := json.Marshal(map[string]interface{}{
		"storeId": s.store.ID,
		"rating":  4,
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/ratings", bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
}

// TestSubmitInvalidToken tests rejection of a token signed elsewhere
func (s *RatingHandlerIntegrationTestSuite) TestSubmitInvalidToken() {
	otherToken, _ := utils.GenerateToken(s.rater, "some-other-secret", time.Hour)
	bodyBytes, _ := json.Marshal(map[string]interface{}{
		"storeId": s.store.ID,
		"rating":  4,
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/ratings", bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+otherToken)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(s.T(), http.StatusForbidden, w.Code)
}

func TestRatingHandlerIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RatingHandlerIntegrationTestSuite))
}
