package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"wholesale_manager/internal/models"
	"wholesale_manager/internal/redis"
	"wholesale_manager/internal/services"
	"wholesale_manager/internal/wizard"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubAuthService resolves a single known token.
type stubAuthService struct {
	token   string
	session *redis.Session
}

func (s *stubAuthService) Login(context.Context, string, string) (string, *redis.Session, error) {
	return s.token, s.session, nil
}

func (s *stubAuthService) Logout(context.Context, string) error {
	return nil
}

func (s *stubAuthService) Resolve(_ context.Context, token string) (*redis.Session, error) {
	if token != s.token {
		return nil, services.ErrSessionExpired
	}
	return s.session, nil
}

func protectedRouter(role string) *gin.Engine {
	auth := &stubAuthService{
		token:   "good-token",
		session: &redis.Session{UserID: 1, Username: "u", Role: role},
	}
	r := gin.New()
	api := r.Group("/api", AuthRequired(auth))
	api.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": CurrentSession(c).Username})
	})
	api.GET("/admin", ManagerOnly(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doRequest(r *gin.Engine, method, path, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequiredRejectsMissingToken(t *testing.T) {
	r := protectedRouter(string(models.RoleStaff))

	rec := doRequest(r, http.MethodGet, "/api/ping", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequiredRejectsStaleToken(t *testing.T) {
	r := protectedRouter(string(models.RoleStaff))

	rec := doRequest(r, http.MethodGet, "/api/ping", "stale")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequiredPassesSessionThrough(t *testing.T) {
	r := protectedRouter(string(models.RoleStaff))

	rec := doRequest(r, http.MethodGet, "/api/ping", "good-token")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user":"u"`)
}

func TestManagerOnlyGatesStaff(t *testing.T) {
	staff := protectedRouter(string(models.RoleStaff))
	rec := doRequest(staff, http.MethodGet, "/api/admin", "good-token")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	manager := protectedRouter(string(models.RoleManager))
	rec = doRequest(manager, http.MethodGet, "/api/admin", "good-token")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func errorStatus(err error) int {
	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		respondError(c, err)
	})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	return rec.Code
}

func TestRespondErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"record not found", gorm.ErrRecordNotFound, http.StatusNotFound},
		{"wizard not found", services.ErrWizardNotFound, http.StatusNotFound},
		{"bad credentials", services.ErrInvalidCredentials, http.StatusUnauthorized},
		{"session expired", services.ErrSessionExpired, http.StatusUnauthorized},
		{"forbidden", services.ErrForbidden, http.StatusForbidden},
		{"stock conflict", &wizard.StockConflictError{ProductID: 1, Requested: 5, Available: 2}, http.StatusConflict},
		{"empty cart", wizard.ErrEmptyCart, http.StatusBadRequest},
		{"validation", &wizard.ValidationError{Field: "quantity", Reason: "bad"}, http.StatusBadRequest},
		{"transition", &wizard.InvalidTransitionError{State: wizard.StateCart, Op: "confirm"}, http.StatusBadRequest},
		{"payment mismatch", &wizard.PaymentMismatchError{Expected: 50, Got: 40}, http.StatusBadRequest},
		{"incomplete logistics", &wizard.IncompleteLogisticsError{Missing: []string{"driver_name"}}, http.StatusBadRequest},
		{"import format", &services.ImportFormatError{Row: 2, Reason: "bad"}, http.StatusBadRequest},
		{"order immutable", services.ErrOrderImmutable, http.StatusBadRequest},
		{"unknown entity", services.ErrUnknownEntity, http.StatusBadRequest},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, errorStatus(tc.err))
		})
	}
}

func TestStockConflictPayloadIncludesProductDetails(t *testing.T) {
	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		respondError(c, &wizard.StockConflictError{
			ProductID: 7, ProductName: "Rice Bag 25kg", Requested: 5, Available: 2,
		})
	})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), `"product_name":"Rice Bag 25kg"`)
	assert.Contains(t, rec.Body.String(), `"available":2`)
}

func TestParseListOptionsWhitelistsOrderBy(t *testing.T) {
	var got string
	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		opts := parseListOptions(c, "name", "created_at")
		got = opts.OrderBy
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?order_by=name", nil))
	assert.Equal(t, "name", got)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?order_by=name%3BDROP+TABLE+customers", nil))
	assert.Empty(t, got)
}

func TestParseListOptionsLimitBounds(t *testing.T) {
	var got int
	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		got = parseListOptions(c).Limit
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, 50, got)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?limit=5000", nil))
	assert.Equal(t, 50, got)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?limit=200", nil))
	assert.Equal(t, 200, got)
}
