package buyer_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/waserda/kasir/internal/buyer"
	buyerhttp "github.com/waserda/kasir/internal/http/buyer"
)

func newRouter(t *testing.T) (*buyer.MockRepository, http.Handler) {
	t.Helper()

	repo := buyer.NewMockRepository(gomock.NewController(t))

	r := chi.NewRouter()
	r.Route("/buyers", buyerhttp.NewHandler(buyer.NewService(repo, "62"), zap.NewNop()).Routes)

	return repo, r
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func TestHandler_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(m *buyer.MockRepository)
		wantStatus int
		wantPhone  string
		wantOptIn  bool
	}{
		{
			name: "LocalNumberNormalized",
			body: `{"name":"Siti","phone":"0812-3456-7890"}`,
			setupMock: func(m *buyer.MockRepository) {
				m.EXPECT().CreateBuyer(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: http.StatusCreated,
			wantPhone:  "+6281234567890",
			wantOptIn:  true,
		},
		{
			name: "OptedOut",
			body: `{"name":"Budi","wa_opt_in":false}`,
			setupMock: func(m *buyer.MockRepository) {
				m.EXPECT().CreateBuyer(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "BadPhone",
			body:       `{"name":"Siti","phone":"12"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "MissingName",
			body:       `{"phone":"081234567890"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, h := newRouter(t)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			rec := serve(h, http.MethodPost, "/buyers", tt.body)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			if tt.wantStatus != http.StatusCreated {
				return
			}

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

			if tt.wantPhone != "" {
				assert.Equal(t, tt.wantPhone, body["phone"])
			} else {
				assert.NotContains(t, body, "phone")
			}

			assert.Equal(t, tt.wantOptIn, body["wa_opt_in"])
		})
	}
}

func TestHandler_List(t *testing.T) {
	repo, h := newRouter(t)

	repo.EXPECT().ListBuyers(gomock.Any(), "sri", buyer.ListLimit).Return([]*buyer.Buyer{
		{ID: uuid.New(), Name: "Sri Wahyuni", Phone: "+6281111111111"},
	}, nil)

	rec := serve(h, http.MethodGet, "/buyers?q=+sri+", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "Sri Wahyuni", body[0]["name"])
}

func TestHandler_List_Empty(t *testing.T) {
	repo, h := newRouter(t)

	repo.EXPECT().ListBuyers(gomock.Any(), "", buyer.ListLimit).Return(nil, nil)

	rec := serve(h, http.MethodGet, "/buyers", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandler_Delete(t *testing.T) {
	t.Run("Deleted", func(t *testing.T) {
		repo, h := newRouter(t)
		id := uuid.New()

		repo.EXPECT().DeleteBuyer(gomock.Any(), id).Return(nil)

		rec := serve(h, http.MethodDelete, "/buyers/"+id.String(), "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo, h := newRouter(t)
		id := uuid.New()

		repo.EXPECT().DeleteBuyer(gomock.Any(), id).Return(buyer.ErrNotFound)

		rec := serve(h, http.MethodDelete, "/buyers/"+id.String(), "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
