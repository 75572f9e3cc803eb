package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/user/model"
)

type fakeUserService struct {
	user    *model.User
	rows    []model.UserRow
	history []model.HistoryRow
	err     error

	gotFilter   model.Filter
	gotNationID string
}

func (f *fakeUserService) Create(_ context.Context, req *model.CreateUserRequest) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return f.user, nil
}

func (f *fakeUserService) List(_ context.Context, filter model.Filter) ([]model.UserRow, error) {
	f.gotFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func (f *fakeUserService) History(_ context.Context, nationID string) ([]model.HistoryRow, error) {
	f.gotNationID = nationID
	if f.err != nil {
		return nil, f.err
	}
	return f.history, nil
}

func setupUserRouter(svc *fakeUserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	NewUserHandler(svc).RegisterRoutes(api)
	return router
}

func TestCreateUserReturns201(t *testing.T) {
	id := uuid.New()
	svc := &fakeUserService{
		user: &model.User{ID: id, NationID: "12345678901", Name: "Ada Lovelace"},
	}
	router := setupUserRouter(svc)

	body := `{"nation_id":"12345678901","name":"Ada Lovelace"}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/create", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, id.String(), resp.Data.ID)
}

func TestCreateUserDuplicateNationID(t *testing.T) {
	svc := &fakeUserService{err: model.ErrDuplicateNationID}
	router := setupUserRouter(svc)

	body := `{"nation_id":"12345678901","name":"Ada Lovelace"}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/create", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)

	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "DUPLICATE_NATION_ID", resp.Error.Code)
}

func TestCreateUserMissingFields(t *testing.T) {
	svc := &fakeUserService{}
	router := setupUserRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/user/create", strings.NewReader(`{"name":"Ada"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListUsersParsesFilters(t *testing.T) {
	svc := &fakeUserService{rows: []model.UserRow{}}
	router := setupUserRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/user?user_name=Ada&book_name=1984", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.gotFilter.UserName)
	assert.Equal(t, "Ada", *svc.gotFilter.UserName)
	require.NotNil(t, svc.gotFilter.BookName)
	assert.Equal(t, "1984", *svc.gotFilter.BookName)
}

func TestGetUserHistoryUnknownUser(t *testing.T) {
	svc := &fakeUserService{err: model.ErrUserNotFound}
	router := setupUserRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/user/00000000000", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "USER_NOT_FOUND", resp.Error.Code)
}

func TestGetUserHistoryEmptyLedger(t *testing.T) {
	svc := &fakeUserService{history: []model.HistoryRow{}}
	router := setupUserRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/user/12345678901", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "12345678901", svc.gotNationID)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			User []model.HistoryRow `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Data.User)
}
