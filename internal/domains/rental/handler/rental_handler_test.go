package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/rental/model"
)

type fakeRentalService struct {
	record *model.RentalRecord
	err    error

	gotNationID string
	gotRequest  *model.RentBookRequest
}

func (f *fakeRentalService) Rent(_ context.Context, nationID string, req *model.RentBookRequest) (*model.RentalRecord, error) {
	f.gotNationID = nationID
	f.gotRequest = req

	if f.err != nil {
		return nil, f.err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return f.record, nil
}

func setupRentalRouter(svc *fakeRentalService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	NewRentalHandler(svc).RegisterRoutes(api)
	return router
}

func doRent(t *testing.T, router *gin.Engine, nationID, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/user/rent/"+nationID, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool `json:"success"`
	Data    struct {
		Message string `json:"message"`
		Info    struct {
			NationID string `json:"nation_id"`
			BookName string `json:"book_name"`
			DueDate  string `json:"due_date"`
		} `json:"info"`
	} `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func TestRentBookSuccess(t *testing.T) {
	svc := &fakeRentalService{
		record: &model.RentalRecord{
			NationID: "12345678901",
			BookName: "1984",
			DueDate:  "2026-10-01",
		},
	}
	router := setupRentalRouter(svc)

	w := doRent(t, router, "12345678901", `{"book_name":"1984","due_date":"2026-10-01"}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "book rented successfully", resp.Data.Message)
	assert.Equal(t, "1984", resp.Data.Info.BookName)
	assert.Equal(t, "12345678901", svc.gotNationID)
}

func TestRentBookUnknownUser(t *testing.T) {
	svc := &fakeRentalService{err: model.ErrUserNotFound}
	router := setupRentalRouter(svc)

	w := doRent(t, router, "00000000000", `{"book_name":"1984","due_date":"2026-10-01"}`)

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "USER_NOT_FOUND", resp.Error.Code)
}

func TestRentBookUnknownBook(t *testing.T) {
	svc := &fakeRentalService{err: model.ErrBookNotFound}
	router := setupRentalRouter(svc)

	w := doRent(t, router, "12345678901", `{"book_name":"missing","due_date":"2026-10-01"}`)

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "BOOK_NOT_FOUND", resp.Error.Code)
}

func TestRentBookAlreadyRented(t *testing.T) {
	svc := &fakeRentalService{err: model.ErrBookNotAvailable}
	router := setupRentalRouter(svc)

	w := doRent(t, router, "12345678901", `{"book_name":"1984","due_date":"2026-10-01"}`)

	require.Equal(t, http.StatusConflict, w.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "BOOK_NOT_AVAILABLE", resp.Error.Code)
}

func TestRentBookMalformedDueDate(t *testing.T) {
	svc := &fakeRentalService{}
	router := setupRentalRouter(svc)

	w := doRent(t, router, "12345678901", `{"book_name":"1984","due_date":"not-a-date"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)
}

func TestRentBookMalformedJSON(t *testing.T) {
	svc := &fakeRentalService{}
	router := setupRentalRouter(svc)

	w := doRent(t, router, "12345678901", `{"book_name":`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.gotNationID, "malformed JSON must not reach the service")
}
