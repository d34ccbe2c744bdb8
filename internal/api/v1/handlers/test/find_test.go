package test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tubepick/internal/api/middleware"
	"tubepick/internal/api/v1/dto"
	"tubepick/internal/api/v1/handlers"
)

type mockFindService struct {
	mock.Mock
}

func (m *mockFindService) Find(ctx context.Context, query string) (*dto.FindResponse, error) {
	args := m.Called(ctx, query)
	var resp *dto.FindResponse
	if v := args.Get(0); v != nil {
		resp = v.(*dto.FindResponse)
	}
	return resp, args.Error(1)
}

func setupTestRouter(service *mockFindService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestID())

	handler := handlers.NewFindHandler(service)
	router.POST("/api/v1/find", handler.Find)
	return router
}

func postFind(t *testing.T, router *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/find", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestFindHandler_Success(t *testing.T) {
	service := new(mockFindService)
	service.On("Find", mock.Anything, "lofi study beats").Return(&dto.FindResponse{
		Query:      "lofi study beats",
		Candidates: 20,
		Videos: []dto.VideoResponse{
			{Title: "first", URL: "https://www.youtube.com/watch?v=a", DurationMinutes: 5.5},
		},
		Best: &dto.VideoResponse{Title: "first", URL: "https://www.youtube.com/watch?v=a", DurationMinutes: 5.5},
	}, nil)

	w := postFind(t, setupTestRouter(service), dto.FindRequest{Query: "lofi study beats"})

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "lofi study beats", body["query"])
	assert.Equal(t, float64(20), body["candidates"])
	assert.NotNil(t, body["best"])
	service.AssertExpectations(t)
}

func TestFindHandler_ValidationError(t *testing.T) {
	service := new(mockFindService)

	w := postFind(t, setupTestRouter(service), map[string]string{})

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "validation", body["kind"])
	assert.NotNil(t, body["details"])
	service.AssertNotCalled(t, "Find", mock.Anything, mock.Anything)
}

func TestFindHandler_InvalidJSON(t *testing.T) {
	service := new(mockFindService)
	router := setupTestRouter(service)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/find", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestFindHandler_RequestIDHeader(t *testing.T) {
	service := new(mockFindService)
	service.On("Find", mock.Anything, "anything").Return(&dto.FindResponse{Query: "anything"}, nil)

	w := postFind(t, setupTestRouter(service), dto.FindRequest{Query: "anything"})

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
