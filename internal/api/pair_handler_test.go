package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gocorr/app"
	"gocorr/domain/series"
	"gocorr/internal"
	"gocorr/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPairFinder struct {
	mock.Mock
}

func (m *MockPairFinder) Find(ctx context.Context, input *series.Input) (*series.Report, error) {
	args := m.Called(ctx, input)
	report, _ := args.Get(0).(*series.Report)
	return report, args.Error(1)
}

func newTestRouter(h *PairHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h.RegisterRoutes(router)
	return router
}

func post(t *testing.T, router http.Handler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/pair", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestFindPair_ReferenceScenario(t *testing.T) {
	svc := app.NewPairService(nil, internal.NewLogger(internal.LogLevelError))
	router := newTestRouter(NewPairHandler(svc))

	rec := post(t, router, PairRequest{
		Keys: []string{"a", "b", "c"},
		Data: [][]float64{
			{1, 2, 3, 4, 5, 6, 7, 8, 9, 300},
			{1, 2, 3, 4, 5, 6, 7, 8, 9, 0},
			{-5, -4, 3, 4, 5, 6, 7, 8, 9, -300},
		},
		Weights: []float64{100, 100, 100, 100, 1, 1, 1, 1, 1, 1},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var report series.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, series.Pair{I: 0, J: 2}, report.Pair)
	assert.Equal(t, "a", report.Keys[0].String())
	assert.Equal(t, "c", report.Keys[1].String())
}

func TestFindPair_ShapeErrorIsBadRequest(t *testing.T) {
	svc := app.NewPairService(nil, internal.NewLogger(internal.LogLevelError))
	router := newTestRouter(NewPairHandler(svc))

	rec := post(t, router, PairRequest{
		Data:    [][]float64{{1, 2, 3}, {1, 2}},
		Weights: []float64{1, 1, 1},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, errors.CodeShapeError, body["code"])
	assert.Contains(t, body["error"], "series 1 has length 2")
}

func TestFindPair_MalformedBody(t *testing.T) {
	router := newTestRouter(NewPairHandler(new(MockPairFinder)))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/pair", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFindPair_InternalError(t *testing.T) {
	finder := new(MockPairFinder)
	finder.On("Find", mock.Anything, mock.Anything).Return(nil, errors.InternalError("boom"))
	router := newTestRouter(NewPairHandler(finder))

	rec := post(t, router, PairRequest{Data: [][]float64{{1}, {2}}, Weights: []float64{1}})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	finder.AssertExpectations(t)
}

func TestHealth(t *testing.T) {
	router := newTestRouter(NewPairHandler(new(MockPairFinder)))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
