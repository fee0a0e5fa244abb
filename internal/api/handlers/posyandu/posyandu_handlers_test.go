package posyandu_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"posyandu/internal/api/handlers/posyandu"
	"posyandu/internal/models"
	"posyandu/internal/service"
	"posyandu/internal/storage"
	mock_storage "posyandu/internal/storage/mocks"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func newRouter(t *testing.T, mockFn func(s *mock_storage.MockPosyanduStorage)) *mux.Router {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockStorage := mock_storage.NewMockPosyanduStorage(ctrl)
	mockFn(mockStorage)

	handlers := posyandu.NewPosyanduHandlers(service.NewPosyanduService(mockStorage), 10)
	router := mux.NewRouter()
	handlers.Register(router)
	return router
}

func serve(router *mux.Router, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func stringPointer(s string) *string {
	return &s
}

func TestListPosyanduHandler_Unit(t *testing.T) {
	testCases := []struct {
		name           string
		target         string
		mockFn         func(s *mock_storage.MockPosyanduStorage)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "No filters, default pagination",
			target: "/posyandu",
			mockFn: func(s *mock_storage.MockPosyanduStorage) {
				s.EXPECT().List(gomock.Any(), &models.PosyanduFilter{}, models.NewPagination(1, 10)).
					Return([]models.Posyandu{{ID: 1, Name: "Posyandu Melati", Kelurahan: "Pakansari", Kecamatan: "Cibinong"}}, 1, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"data":[{"id":1,"name":"Posyandu Melati","address":"","kelurahan":"Pakansari","kecamatan":"Cibinong","createdAt":"0001-01-01T00:00:00Z","updatedAt":"0001-01-01T00:00:00Z"}],
				"meta":{"totalData":1,"totalPage":1,"currentPage":1,"limit":10}}`,
		},
		{
			name:   "Filter and explicit page",
			target: "/posyandu?kecamatan=Cibinong&page=3&limit=10",
			mockFn: func(s *mock_storage.MockPosyanduStorage) {
				s.EXPECT().List(gomock.Any(), &models.PosyanduFilter{Kecamatan: stringPointer("Cibinong")}, models.NewPagination(3, 10)).
					Return([]models.Posyandu{}, 23, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"data":[],"meta":{"totalData":23,"totalPage":3,"currentPage":3,"limit":10}}`,
		},
		{
			name:   "Invalid page and limit fall back to defaults",
			target: "/posyandu?page=abc&limit=-4",
			mockFn: func(s *mock_storage.MockPosyanduStorage) {
				s.EXPECT().List(gomock.Any(), gomock.Any(), models.NewPagination(1, 10)).Return(nil, 0, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"data":[],"meta":{"totalData":0,"totalPage":1,"currentPage":1,"limit":10}}`,
		},
		{
			name:   "Page with an overflowing offset starts over",
			target: "/posyandu?page=9223372036854775807&limit=10",
			mockFn: func(s *mock_storage.MockPosyanduStorage) {
				s.EXPECT().List(gomock.Any(), gomock.Any(), &models.Pagination{Page: 1, Limit: 10}).Return(nil, 0, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"data":[],"meta":{"totalData":0,"totalPage":1,"currentPage":1,"limit":10}}`,
		},
		{
			name:   "Page beyond int range starts over",
			target: "/posyandu?page=99999999999999999999&limit=20",
			mockFn: func(s *mock_storage.MockPosyanduStorage) {
				s.EXPECT().List(gomock.Any(), gomock.Any(), &models.Pagination{Page: 1, Limit: 20}).Return(nil, 0, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"data":[],"meta":{"totalData":0,"totalPage":1,"currentPage":1,"limit":20}}`,
		},
		{
			name:   "Limit capped at max",
			target: "/posyandu?page=2&limit=100000000",
			mockFn: func(s *mock_storage.MockPosyanduStorage) {
				s.EXPECT().List(gomock.Any(), gomock.Any(), &models.Pagination{Page: 2, Limit: models.MaxLimit}).Return(nil, 150, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"data":[],"meta":{"totalData":150,"totalPage":2,"currentPage":2,"limit":100}}`,
		},
		{
			name:   "Storage error",
			target: "/posyandu",
			mockFn: func(s *mock_storage.MockPosyanduStorage) {
				s.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, 0, errors.New("storage error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Failed to list posyandu"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := newRouter(t, tc.mockFn)
			w := serve(router, http.MethodGet, tc.target, "")

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}

func TestAddPosyanduHandler_Unit(t *testing.T) {
	testCases := []struct {
		name           string
		requestBody    string
		mockFn         func(s *mock_storage.MockPosyanduStorage)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Valid request",
			requestBody: `{"name":"Posyandu Melati","kelurahan":"Pakansari","kecamatan":"Cibinong"}`,
			mockFn: func(s *mock_storage.MockPosyanduStorage) {
				s.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(&models.Posyandu{ID: 7, Name: "Posyandu Melati", Kelurahan: "Pakansari", Kecamatan: "Cibinong"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"id":7,"name":"Posyandu Melati","address":"","kelurahan":"Pakansari","kecamatan":"Cibinong","createdAt":"0001-01-01T00:00:00Z","updatedAt":"0001-01-01T00:00:00Z"}`,
		},
		{
			name:           "Invalid request body",
			requestBody:    `invalid json`,
			mockFn:         func(s *mock_storage.MockPosyanduStorage) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid request body"}`,
		},
		{
			name:           "Missing fields",
			requestBody:    `{"name":"Posyandu Melati"}`,
			mockFn:         func(s *mock_storage.MockPosyanduStorage) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid posyandu","fields":{"kelurahan":"required","kecamatan":"required"}}`,
		},
		{
			name:        "Storage error",
			requestBody: `{"name":"Posyandu Melati","kelurahan":"Pakansari","kecamatan":"Cibinong"}`,
			mockFn: func(s *mock_storage.MockPosyanduStorage) {
				s.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("storage error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Failed to add posyandu"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := newRouter(t, tc.mockFn)
			w := serve(router, http.MethodPost, "/posyandu", tc.requestBody)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}

func TestGetPosyanduHandler_Unit(t *testing.T) {
	router := newRouter(t, func(s *mock_storage.MockPosyanduStorage) {
		s.EXPECT().GetByID(gomock.Any(), 1).Return(&models.Posyandu{ID: 1, Name: "Posyandu Melati"}, nil)
		s.EXPECT().GetByID(gomock.Any(), 2).Return(nil, storage.ErrPosyanduNotFound)
	})

	w := serve(router, http.MethodGet, "/posyandu/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Posyandu Melati"`)

	w = serve(router, http.MethodGet, "/posyandu/2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Posyandu not found"}`, w.Body.String())

	w = serve(router, http.MethodGet, "/posyandu/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid posyandu ID"}`, w.Body.String())
}

func TestUpdatePosyanduHandler_Unit(t *testing.T) {
	router := newRouter(t, func(s *mock_storage.MockPosyanduStorage) {
		s.EXPECT().Update(gomock.Any(), &models.Posyandu{ID: 3, Name: "Posyandu Mawar", Kelurahan: "Tengah", Kecamatan: "Cibinong"}).
			Return(&models.Posyandu{ID: 3, Name: "Posyandu Mawar", Kelurahan: "Tengah", Kecamatan: "Cibinong"}, nil)
		s.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, storage.ErrPosyanduNotFound)
	})
	body := `{"name":"Posyandu Mawar","kelurahan":"Tengah","kecamatan":"Cibinong"}`

	w := serve(router, http.MethodPut, "/posyandu/3", body)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":3`)

	w = serve(router, http.MethodPut, "/posyandu/4", body)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(router, http.MethodPut, "/posyandu/3", `{"name":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"fields"`)

	w = serve(router, http.MethodPut, "/posyandu/3", `{`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid request body"}`, w.Body.String())
}

func TestDeletePosyanduHandler_Unit(t *testing.T) {
	router := newRouter(t, func(s *mock_storage.MockPosyanduStorage) {
		s.EXPECT().Delete(gomock.Any(), 1).Return(nil)
		s.EXPECT().Delete(gomock.Any(), 2).Return(storage.ErrPosyanduNotFound)
		s.EXPECT().Delete(gomock.Any(), 3).Return(errors.New("storage error"))
	})

	w := serve(router, http.MethodDelete, "/posyandu/1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = serve(router, http.MethodDelete, "/posyandu/2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(router, http.MethodDelete, "/posyandu/3", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to delete posyandu"}`, w.Body.String())
}

func TestHealthCheckHandler_Unit(t *testing.T) {
	router := newRouter(t, func(s *mock_storage.MockPosyanduStorage) {})

	w := serve(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}
