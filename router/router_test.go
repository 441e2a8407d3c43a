package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/echo-xaudit/config"
	"github.com/dev-mohitbeniwal/echo-xaudit/controller"
	"github.com/dev-mohitbeniwal/echo-xaudit/middleware"
	"github.com/dev-mohitbeniwal/echo-xaudit/model"
	"github.com/dev-mohitbeniwal/echo-xaudit/router"
	"github.com/dev-mohitbeniwal/echo-xaudit/service"
	mocks "github.com/dev-mohitbeniwal/echo-xaudit/test/mock"
)

var secret = []byte("router-secret")

func bearer(t *testing.T, groups ...string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, middleware.SessionClaims{
		UserID:  "7",
		LoginID: "carol",
		Groups:  groups,
	}).SignedString(secret)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestRouterEnforcesAdminSessions(t *testing.T) {
	gin.SetMode(gin.TestMode)
	trxLogs := &mocks.MockTrxLogDAO{}
	svc := service.NewAuditService(trxLogs, &mocks.MockAccessAuditDAO{}, nil, nil, config.AuditStoreDB)
	engine := router.SetupRouter(
		&controller.Controllers{Audit: controller.NewAuditController(svc)},
		router.Options{JWTSecret: secret, AdminGroup: "ROLE_SYS_ADMIN"},
	)

	trxLogs.On("GetTrxLogSearchCount", mock.Anything, mock.Anything).Return(&model.Count{Value: 3}, nil).Once()

	for _, tc := range []struct {
		name          string
		authorization string
		want          int
	}{
		{"no session", "", http.StatusUnauthorized},
		{"not admin", bearer(t, "ROLE_USER"), http.StatusForbidden},
		{"admin", bearer(t, "ROLE_SYS_ADMIN"), http.StatusOK},
	} {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/xaudit/trx_log/count", nil)
			if tc.authorization != "" {
				req.Header.Set("Authorization", tc.authorization)
			}
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			assert.Equal(t, tc.want, w.Code)
			assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		})
	}

	trxLogs.AssertExpectations(t)
}
