package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paydesk/payroll-backend-go/internal/domain/auth"
	"github.com/paydesk/payroll-backend-go/internal/pkg/jwt"
)

// okHandler satisfies every handler interface with a bare 200 so routing
// and middleware can be exercised without services.
type okHandler struct{}

func (okHandler) ok(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

func (h okHandler) Login(w http.ResponseWriter, r *http.Request)               { h.ok(w, r) }
func (h okHandler) Register(w http.ResponseWriter, r *http.Request)            { h.ok(w, r) }
func (h okHandler) Create(w http.ResponseWriter, r *http.Request)              { h.ok(w, r) }
func (h okHandler) Get(w http.ResponseWriter, r *http.Request)                 { h.ok(w, r) }
func (h okHandler) List(w http.ResponseWriter, r *http.Request)                { h.ok(w, r) }
func (h okHandler) Update(w http.ResponseWriter, r *http.Request)              { h.ok(w, r) }
func (h okHandler) Delete(w http.ResponseWriter, r *http.Request)              { h.ok(w, r) }
func (h okHandler) SetStatus(w http.ResponseWriter, r *http.Request)           { h.ok(w, r) }
func (h okHandler) AddSalaryRevision(w http.ResponseWriter, r *http.Request)   { h.ok(w, r) }
func (h okHandler) ListSalaryRevisions(w http.ResponseWriter, r *http.Request) { h.ok(w, r) }
func (h okHandler) Upsert(w http.ResponseWriter, r *http.Request)              { h.ok(w, r) }
func (h okHandler) ListByMonth(w http.ResponseWriter, r *http.Request)         { h.ok(w, r) }
func (h okHandler) ListHolds(w http.ResponseWriter, r *http.Request)           { h.ok(w, r) }
func (h okHandler) ClearHold(w http.ResponseWriter, r *http.Request)           { h.ok(w, r) }
func (h okHandler) CreateDebtPayment(w http.ResponseWriter, r *http.Request)   { h.ok(w, r) }
func (h okHandler) ListDebtPayments(w http.ResponseWriter, r *http.Request)    { h.ok(w, r) }
func (h okHandler) GetDebtSummary(w http.ResponseWriter, r *http.Request)      { h.ok(w, r) }
func (h okHandler) UpdateContribution(w http.ResponseWriter, r *http.Request)  { h.ok(w, r) }
func (h okHandler) Payout(w http.ResponseWriter, r *http.Request)              { h.ok(w, r) }
func (h okHandler) Generate(w http.ResponseWriter, r *http.Request)            { h.ok(w, r) }
func (h okHandler) GenerateForEmployee(w http.ResponseWriter, r *http.Request) { h.ok(w, r) }
func (h okHandler) Undo(w http.ResponseWriter, r *http.Request)                { h.ok(w, r) }
func (h okHandler) Recalculate(w http.ResponseWriter, r *http.Request)         { h.ok(w, r) }
func (h okHandler) ListRecords(w http.ResponseWriter, r *http.Request)         { h.ok(w, r) }

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h")
	h := okHandler{}
	return NewRouter(jwtService, "test", Handlers{
		Auth:       h,
		Employee:   h,
		Attendance: h,
		Deduction:  h,
		Savings:    h,
		Bonus:      h,
		Payroll:    h,
		Schedule:   h,
	})
}

func bearerToken(t *testing.T, role auth.Role) string {
	t.Helper()
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h")
	token, _, err := jwtService.GenerateAccessToken("user-1", "user@example.com", role)
	require.NoError(t, err)
	return "Bearer " + token
}

func doRequest(t *testing.T, router http.Handler, method, path, authz string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouterRegisterRequiresAdmin(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/auth/register", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/v1/auth/register", bearerToken(t, auth.RoleStaff))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/v1/auth/register", bearerToken(t, auth.RoleAdmin))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterLoginIsPublic(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/auth/login", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterSettlementMutationsRequireAdmin(t *testing.T) {
	router := newTestRouter(t)

	paths := []string{
		"/api/v1/payroll/generate",
		"/api/v1/payroll/undo",
		"/api/v1/payroll/recalculate",
	}
	for _, path := range paths {
		rec := doRequest(t, router, http.MethodPost, path, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)

		rec = doRequest(t, router, http.MethodPost, path, bearerToken(t, auth.RoleStaff))
		assert.Equal(t, http.StatusForbidden, rec.Code, path)

		rec = doRequest(t, router, http.MethodPost, path, bearerToken(t, auth.RoleAdmin))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}
