package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/liris-lib/library-service/config"
	"github.com/liris-lib/library-service/internal/errs"
	"github.com/liris-lib/library-service/internal/handler"
	"github.com/liris-lib/library-service/internal/model"
	"github.com/liris-lib/library-service/pkg/auth"

	service_mocks "github.com/liris-lib/library-service/internal/handler/mocks"
)

func newTestRouter(t *testing.T) (*echo.Echo, *service_mocks.MockLibraryService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := service_mocks.NewMockLibraryService(ctrl)

	cfg := &config.Config{}
	cfg.API.CORSOrigins = []string{"http://localhost:8080"}
	cfg.API.MaxPageSize = 100

	h := handler.New(svc, scs.New(), cfg, zap.NewNop())
	return h.NewRouter(), svc
}

// login performs a real login round-trip and returns the session cookies
// for follow-up authenticated requests.
func login(t *testing.T, e *echo.Echo, svc *service_mocks.MockLibraryService, user model.SessionUser) []*http.Cookie {
	t.Helper()
	svc.EXPECT().
		Login(gomock.Any(), model.LoginRequest{Email: user.Email, Password: "secret"}).
		Return(user, nil)

	body := fmt.Sprintf(`{"email":%q,"password":"secret"}`, user.Email)
	r := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

func doJSON(e *echo.Echo, method, target, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for _, c := range cookies {
		r.AddCookie(c)
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)
	return w
}

var (
	userBob = model.SessionUser{Email: "bob@liris.fr", Name: "Bob", Role: auth.RoleUser}
	admin   = model.SessionUser{Email: "admin@liris.fr", Name: "Root", Role: auth.RoleAdmin}

	idBob   = auth.Identity{Email: userBob.Email, Name: userBob.Name, Role: userBob.Role}
	idAdmin = auth.Identity{Email: admin.Email, Name: admin.Name, Role: admin.Role}
)

func TestHandler_Login(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		e, svc := newTestRouter(t)
		svc.EXPECT().
			Login(gomock.Any(), model.LoginRequest{Email: userBob.Email, Password: "secret"}).
			Return(userBob, nil)

		w := doJSON(e, http.MethodPost, "/api/auth/login", `{"email":"bob@liris.fr","password":"secret"}`, nil)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t,
			`{"message":"Login successful","user":{"email":"bob@liris.fr","name":"Bob","role":"user"}}`,
			strings.Trim(w.Body.String(), "\n"))
		require.NotEmpty(t, w.Result().Cookies())
	})

	t.Run("invalid credentials", func(t *testing.T) {
		t.Parallel()
		e, svc := newTestRouter(t)
		svc.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(model.SessionUser{}, errs.ErrInvalidCreds)

		w := doJSON(e, http.MethodPost, "/api/auth/login", `{"email":"bob@liris.fr","password":"nope"}`, nil)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Equal(t, `{"error":"Invalid credentials"}`, strings.Trim(w.Body.String(), "\n"))
	})

	t.Run("missing password", func(t *testing.T) {
		t.Parallel()
		e, _ := newTestRouter(t)
		w := doJSON(e, http.MethodPost, "/api/auth/login", `{"email":"bob@liris.fr"}`, nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_CreateBorrowing(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLibraryService)

	tests := []struct {
		name         string
		mockBehavior mockBehavior
		body         string
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					CreateBorrowing(gomock.Any(), idBob, model.CreateBorrowingRequest{PublicationID: 3, LabID: 1}).
					Return(model.CreateBorrowingResponse{
						Message:     "Book borrowed successfully",
						BorrowingID: 42,
						DueDate:     "2026-09-13",
					}, nil)
			},
			body: `{"publication_id":3,"lab_id":1}`,
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"message":"Book borrowed successfully","borrowing_id":42,"due_date":"2026-09-13"}`,
			},
		},
		{
			name: "eligibility veto",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					CreateBorrowing(gomock.Any(), idBob, gomock.Any()).
					Return(model.CreateBorrowingResponse{},
						&errs.BorrowVeto{Reason: "User already has an active borrowing of this publication"})
			},
			body: `{"publication_id":3,"lab_id":1}`,
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"error":"User already has an active borrowing of this publication"}`,
			},
		},
		{
			name: "no copy in lab",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					CreateBorrowing(gomock.Any(), idBob, gomock.Any()).
					Return(model.CreateBorrowingResponse{}, errs.ErrNoCopyAvailable)
			},
			body: `{"publication_id":3,"lab_id":2}`,
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"error":"No available copy in this lab"}`,
			},
		},
		{
			name: "unknown publication",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					CreateBorrowing(gomock.Any(), idBob, gomock.Any()).
					Return(model.CreateBorrowingResponse{}, errs.ErrNotFound)
			},
			body: `{"publication_id":9999,"lab_id":1}`,
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"error":"Publication or lab not found"}`,
			},
		},
		{
			name:         "invalid payload",
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			body:         `{"publication_id":3}`,
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
		{
			name: "internal",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					CreateBorrowing(gomock.Any(), idBob, gomock.Any()).
					Return(model.CreateBorrowingResponse{}, errors.New("db internal"))
			},
			body: `{"publication_id":3,"lab_id":1}`,
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"error":"Internal server error"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc := newTestRouter(t)
			cookies := login(t, e, svc, userBob)
			tt.mockBehavior(svc)

			w := doJSON(e, http.MethodPost, "/api/borrowings", tt.body, cookies)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_CreateBorrowing_noSession(t *testing.T) {
	t.Parallel()
	e, _ := newTestRouter(t)

	w := doJSON(e, http.MethodPost, "/api/borrowings", `{"publication_id":3,"lab_id":1}`, nil)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, `{"error":"Authentication required"}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_ReturnBorrowing(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLibraryService)

	tests := []struct {
		name         string
		mockBehavior mockBehavior
		target       string
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					ReturnBorrowing(gomock.Any(), idBob, 42).
					Return(nil)
			},
			target: "/api/borrowings/42/return",
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"message":"Book returned successfully"}`,
			},
		},
		{
			name: "already returned",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					ReturnBorrowing(gomock.Any(), idBob, 42).
					Return(errs.ErrAlreadyReturned)
			},
			target: "/api/borrowings/42/return",
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"error":"Borrowing not found or already returned"}`,
			},
		},
		{
			name: "not the borrower",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					ReturnBorrowing(gomock.Any(), idBob, 7).
					Return(errs.ErrForbidden)
			},
			target: "/api/borrowings/7/return",
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"error":"Unauthorized"}`,
			},
		},
		{
			name:         "bad id",
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			target:       "/api/borrowings/abc/return",
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"error":"id is invalid"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc := newTestRouter(t)
			cookies := login(t, e, svc, userBob)
			tt.mockBehavior(svc)

			w := doJSON(e, http.MethodPut, tt.target, "", cookies)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_GetPublications(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		e, svc := newTestRouter(t)
		authors := "Ada Lovelace"
		svc.EXPECT().
			ListPublications(gomock.Any(), model.PublicationFilter{Page: 1, PerPage: 20}).
			Return(model.ListPublications{
				Publications: []model.Publication{{
					IDPublication:   1,
					Title:           "On Computable Numbers",
					YearPublication: 1936,
					PublicationType: "book",
					Authors:         &authors,
				}},
				Pagination: model.Pagination{Page: 1, PerPage: 20, Total: 1, Pages: 1},
			}, nil)

		w := doJSON(e, http.MethodGet, "/api/publications", "", nil)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t,
			`{"publications":[{"id_publication":1,"title":"On Computable Numbers","year_publication":1936,"publication_type":"book","edition":null,"publisher_name":null,"authors":"Ada Lovelace"}],"pagination":{"page":1,"per_page":20,"total":1,"pages":1}}`,
			strings.Trim(w.Body.String(), "\n"))
	})

	t.Run("per_page clamped to max", func(t *testing.T) {
		t.Parallel()
		e, svc := newTestRouter(t)
		svc.EXPECT().
			ListPublications(gomock.Any(), model.PublicationFilter{Page: 2, PerPage: 100}).
			Return(model.ListPublications{
				Publications: []model.Publication{},
				Pagination:   model.Pagination{Page: 2, PerPage: 100, Total: 0, Pages: 0},
			}, nil)

		w := doJSON(e, http.MethodGet, "/api/publications?page=2&per_page=5000", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("filters forwarded", func(t *testing.T) {
		t.Parallel()
		e, svc := newTestRouter(t)
		lab := 3
		svc.EXPECT().
			ListPublications(gomock.Any(), model.PublicationFilter{
				Page:      1,
				PerPage:   20,
				Search:    "turing",
				Type:      "book",
				LabID:     &lab,
				Available: true,
			}).
			Return(model.ListPublications{}, nil)

		w := doJSON(e, http.MethodGet, "/api/publications?search=turing&type=book&lab_id=3&available=true", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("bad page", func(t *testing.T) {
		t.Parallel()
		e, _ := newTestRouter(t)
		w := doJSON(e, http.MethodGet, "/api/publications?page=0", "", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, `{"error":"page is invalid"}`, strings.Trim(w.Body.String(), "\n"))
	})
}

func TestHandler_GetPublication(t *testing.T) {
	t.Parallel()

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		e, svc := newTestRouter(t)
		svc.EXPECT().
			GetPublication(gomock.Any(), 77).
			Return(model.PublicationDetail{}, errs.ErrNotFound)

		w := doJSON(e, http.MethodGet, "/api/publications/77", "", nil)

		require.Equal(t, http.StatusNotFound, w.Code)
		require.Equal(t, `{"error":"Publication not found"}`, strings.Trim(w.Body.String(), "\n"))
	})

	t.Run("bad id", func(t *testing.T) {
		t.Parallel()
		e, _ := newTestRouter(t)
		w := doJSON(e, http.MethodGet, "/api/publications/abc", "", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_UpdateProposal(t *testing.T) {
	t.Parallel()

	t.Run("admin approves", func(t *testing.T) {
		t.Parallel()
		e, svc := newTestRouter(t)
		cookies := login(t, e, svc, admin)
		svc.EXPECT().
			UpdateProposal(gomock.Any(), idAdmin, 5, model.UpdateProposalRequest{Status: model.ProposalApproved}).
			Return(nil)

		w := doJSON(e, http.MethodPut, "/api/proposals/5", `{"status":"approved"}`, cookies)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, `{"message":"Proposal updated successfully"}`, strings.Trim(w.Body.String(), "\n"))
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		e, svc := newTestRouter(t)
		cookies := login(t, e, svc, admin)
		svc.EXPECT().
			UpdateProposal(gomock.Any(), idAdmin, 99, gomock.Any()).
			Return(errs.ErrNotFound)

		w := doJSON(e, http.MethodPut, "/api/proposals/99", `{"status":"rejected"}`, cookies)

		require.Equal(t, http.StatusNotFound, w.Code)
		require.Equal(t, `{"error":"Proposal not found"}`, strings.Trim(w.Body.String(), "\n"))
	})

	t.Run("non-admin forbidden", func(t *testing.T) {
		t.Parallel()
		e, svc := newTestRouter(t)
		cookies := login(t, e, svc, userBob)

		w := doJSON(e, http.MethodPut, "/api/proposals/5", `{"status":"approved"}`, cookies)

		require.Equal(t, http.StatusForbidden, w.Code)
		require.Equal(t, `{"error":"Admin access required"}`, strings.Trim(w.Body.String(), "\n"))
	})

	t.Run("bad status", func(t *testing.T) {
		t.Parallel()
		e, svc := newTestRouter(t)
		cookies := login(t, e, svc, admin)

		w := doJSON(e, http.MethodPut, "/api/proposals/5", `{"status":"maybe"}`, cookies)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_GetUsers_adminOnly(t *testing.T) {
	t.Parallel()

	t.Run("admin ok", func(t *testing.T) {
		t.Parallel()
		e, svc := newTestRouter(t)
		cookies := login(t, e, svc, admin)
		svc.EXPECT().
			ListUsers(gomock.Any()).
			Return([]model.UserSummary{}, nil)

		w := doJSON(e, http.MethodGet, "/api/users", "", cookies)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("plain user forbidden", func(t *testing.T) {
		t.Parallel()
		e, svc := newTestRouter(t)
		cookies := login(t, e, svc, userBob)

		w := doJSON(e, http.MethodGet, "/api/users", "", cookies)

		require.Equal(t, http.StatusForbidden, w.Code)
		require.Equal(t, `{"error":"Admin access required"}`, strings.Trim(w.Body.String(), "\n"))
	})
}

func TestHandler_Logout(t *testing.T) {
	t.Parallel()
	e, svc := newTestRouter(t)
	cookies := login(t, e, svc, userBob)

	w := doJSON(e, http.MethodPost, "/api/auth/logout", "", cookies)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"message":"Logout successful"}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_RouteNotFound(t *testing.T) {
	t.Parallel()
	e, _ := newTestRouter(t)

	w := doJSON(e, http.MethodGet, "/api/nope", "", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, `{"error":"Endpoint not found"}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()
	e, _ := newTestRouter(t)

	w := doJSON(e, http.MethodGet, "/manage/health", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK", w.Body.String())
}
