package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/renefm/user-hub-be/internal/apperr"
	"github.com/renefm/user-hub-be/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- mock service ----

type mockUserService struct {
	createFn     func(*dto.CreateUserRequest) (dto.UserResponse, error)
	findByIDFn   func(int64) (dto.UserResponse, bool)
	findPageFn   func(page, size int) []dto.UserResponse
	updateFn     func(int64, *dto.UpdateUserRequest) (dto.UserResponse, error)
	deleteFn     func(int64) error
	activateFn   func(int64) (dto.UserResponse, error)
	deactivateFn func(int64) (dto.UserResponse, error)
	searchFn     func(string) []dto.UserResponse
	countFn      func() int64
}

func (m *mockUserService) CreateUser(req *dto.CreateUserRequest) (dto.UserResponse, error) {
	if m.createFn != nil {
		return m.createFn(req)
	}
	return dto.UserResponse{}, fmt.Errorf("not configured")
}

func (m *mockUserService) FindByID(id int64) (dto.UserResponse, bool) {
	if m.findByIDFn != nil {
		return m.findByIDFn(id)
	}
	return dto.UserResponse{}, false
}

func (m *mockUserService) FindByEmail(email string) (dto.UserResponse, bool) {
	return dto.UserResponse{}, false
}

func (m *mockUserService) FindAll() []dto.UserResponse { return nil }

func (m *mockUserService) FindPage(page, size int) []dto.UserResponse {
	if m.findPageFn != nil {
		return m.findPageFn(page, size)
	}
	return []dto.UserResponse{}
}

func (m *mockUserService) UpdateUser(id int64, req *dto.UpdateUserRequest) (dto.UserResponse, error) {
	if m.updateFn != nil {
		return m.updateFn(id, req)
	}
	return dto.UserResponse{}, fmt.Errorf("not configured")
}

func (m *mockUserService) DeleteUser(id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return fmt.Errorf("not configured")
}

func (m *mockUserService) ActivateUser(id int64) (dto.UserResponse, error) {
	if m.activateFn != nil {
		return m.activateFn(id)
	}
	return dto.UserResponse{}, fmt.Errorf("not configured")
}

func (m *mockUserService) DeactivateUser(id int64) (dto.UserResponse, error) {
	if m.deactivateFn != nil {
		return m.deactivateFn(id)
	}
	return dto.UserResponse{}, fmt.Errorf("not configured")
}

func (m *mockUserService) ExistsByID(id int64) bool        { return false }
func (m *mockUserService) ExistsByEmail(email string) bool { return false }

func (m *mockUserService) CountUsers() int64 {
	if m.countFn != nil {
		return m.countFn()
	}
	return 0
}

func (m *mockUserService) SearchByName(term string) []dto.UserResponse {
	if m.searchFn != nil {
		return m.searchFn(term)
	}
	return []dto.UserResponse{}
}

// ---- helpers ----

func newUserTestRouter(svc *mockUserService) *chi.Mux {
	h := NewUserHandler(svc)
	r := chi.NewRouter()
	r.Route("/api/v1/users", func(r chi.Router) {
		r.Get("/", h.GetAll)
		r.Post("/", h.Create)
		r.Get("/search", h.Search)
		r.Get("/count", h.Count)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.Get)
			r.Put("/", h.Update)
			r.Delete("/", h.Delete)
			r.Patch("/activate", h.Activate)
			r.Patch("/deactivate", h.Deactivate)
		})
	})
	return r
}

func doRequest(t *testing.T, router http.Handler, method, url string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// ---- tests ----

func TestCreateUserEndpoint(t *testing.T) {
	svc := &mockUserService{
		createFn: func(req *dto.CreateUserRequest) (dto.UserResponse, error) {
			return dto.UserResponse{ID: 1, Email: req.Email, Active: true}, nil
		},
	}
	router := newUserTestRouter(svc)

	w := doRequest(t, router, http.MethodPost, "/api/v1/users/", dto.CreateUserRequest{Email: "x@y.com", Password: "p"})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "x@y.com", resp.Email)
}

func TestCreateUserEndpointConflict(t *testing.T) {
	svc := &mockUserService{
		createFn: func(*dto.CreateUserRequest) (dto.UserResponse, error) {
			return dto.UserResponse{}, fmt.Errorf("%w: x@y.com", apperr.ErrDuplicateEmail)
		},
	}
	router := newUserTestRouter(svc)

	w := doRequest(t, router, http.MethodPost, "/api/v1/users/", dto.CreateUserRequest{Email: "x@y.com"})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "CONFLICT", decodeError(t, w).Code)
}

func TestCreateUserEndpointBadBody(t *testing.T) {
	router := newUserTestRouter(&mockUserService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "BAD_REQUEST", decodeError(t, w).Code)
}

func TestGetUserEndpoint(t *testing.T) {
	svc := &mockUserService{
		findByIDFn: func(id int64) (dto.UserResponse, bool) {
			if id == 1 {
				return dto.UserResponse{ID: 1, Email: "x@y.com"}, true
			}
			return dto.UserResponse{}, false
		},
	}
	router := newUserTestRouter(svc)

	w := doRequest(t, router, http.MethodGet, "/api/v1/users/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/v1/users/99", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", decodeError(t, w).Code)

	w = doRequest(t, router, http.MethodGet, "/api/v1/users/abc", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAllUsersEndpointPassesPaging(t *testing.T) {
	var gotPage, gotSize int
	svc := &mockUserService{
		findPageFn: func(page, size int) []dto.UserResponse {
			gotPage, gotSize = page, size
			return []dto.UserResponse{{ID: 1}}
		},
	}
	router := newUserTestRouter(svc)

	w := doRequest(t, router, http.MethodGet, "/api/v1/users/?page=2&size=5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, gotPage)
	assert.Equal(t, 5, gotSize)

	// Defaults apply when parameters are absent.
	doRequest(t, router, http.MethodGet, "/api/v1/users/", nil)
	assert.Equal(t, 0, gotPage)
	assert.Equal(t, 10, gotSize)
}

func TestUpdateUserEndpoint(t *testing.T) {
	svc := &mockUserService{
		updateFn: func(id int64, req *dto.UpdateUserRequest) (dto.UserResponse, error) {
			switch id {
			case 1:
				return dto.UserResponse{ID: 1, FirstName: *req.FirstName}, nil
			case 2:
				return dto.UserResponse{}, fmt.Errorf("%w: taken", apperr.ErrDuplicateEmail)
			default:
				return dto.UserResponse{}, fmt.Errorf("%w: id %d", apperr.ErrNotFound, id)
			}
		},
	}
	router := newUserTestRouter(svc)

	first := "Jane"
	w := doRequest(t, router, http.MethodPut, "/api/v1/users/1", dto.UpdateUserRequest{FirstName: &first})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodPut, "/api/v1/users/2", dto.UpdateUserRequest{FirstName: &first})
	require.Equal(t, http.StatusConflict, w.Code)

	w = doRequest(t, router, http.MethodPut, "/api/v1/users/99", dto.UpdateUserRequest{FirstName: &first})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteUserEndpoint(t *testing.T) {
	svc := &mockUserService{
		deleteFn: func(id int64) error {
			if id == 1 {
				return nil
			}
			return fmt.Errorf("%w: id %d", apperr.ErrNotFound, id)
		},
	}
	router := newUserTestRouter(svc)

	w := doRequest(t, router, http.MethodDelete, "/api/v1/users/1", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, router, http.MethodDelete, "/api/v1/users/2", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestActivateDeactivateEndpoints(t *testing.T) {
	svc := &mockUserService{
		activateFn: func(id int64) (dto.UserResponse, error) {
			return dto.UserResponse{ID: id, Active: true}, nil
		},
		deactivateFn: func(id int64) (dto.UserResponse, error) {
			return dto.UserResponse{ID: id, Active: false}, nil
		},
	}
	router := newUserTestRouter(svc)

	w := doRequest(t, router, http.MethodPatch, "/api/v1/users/1/activate", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Active)

	w = doRequest(t, router, http.MethodPatch, "/api/v1/users/1/deactivate", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Active)
}

func TestSearchEndpoint(t *testing.T) {
	var gotTerm string
	svc := &mockUserService{
		searchFn: func(term string) []dto.UserResponse {
			gotTerm = term
			return []dto.UserResponse{{ID: 1, FirstName: "John"}}
		},
	}
	router := newUserTestRouter(svc)

	w := doRequest(t, router, http.MethodGet, "/api/v1/users/search?q=jo", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "jo", gotTerm)

	var resp []dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
}

func TestCountEndpoint(t *testing.T) {
	svc := &mockUserService{countFn: func() int64 { return 42 }}
	router := newUserTestRouter(svc)

	w := doRequest(t, router, http.MethodGet, "/api/v1/users/count", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.CountResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.Count)
}
