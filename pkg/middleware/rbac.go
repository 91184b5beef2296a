package middleware

import (
	"log"
	"net/http"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/labstack/echo/v4"

	"github.com/Shoaib232002/Alumni-Project/internal/auth"
)

var (
	enforcer     *casbin.Enforcer
	enforcerOnce sync.Once
)

// rbacModel is the Casbin model: role, request path and method, with
// keyMatch for path wildcards and regexMatch for method sets.
const rbacModel = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && keyMatch(r.obj, p.obj) && regexMatch(r.act, p.act)`

// rbacPolicies is the single policy table for the whole API: admins may do
// everything under /api, alumni get their own profile, donations and
// notifications. Ownership rules (own profile, own donations) are enforced in
// the owning service on top of this gate.
var rbacPolicies = [][]string{
	{"admin", "/api/*", ".*"},
	{"alumni", "/api/auth/me", "GET"},
	{"alumni", "/api/alumni", "POST"},
	{"alumni", "/api/alumni/*", "PUT"},
	{"alumni", "/api/donation/alumni/*", "GET"},
	{"alumni", "/api/notification", "GET"},
	{"alumni", "/api/notification/*", "PATCH"},
}

// InitEnforcer builds the Casbin enforcer singleton from the in-code model
// and policy table.
func InitEnforcer() (*casbin.Enforcer, error) {
	var err error
	enforcerOnce.Do(func() {
		m, errM := model.NewModelFromString(rbacModel)
		if errM != nil {
			err = errM
			return
		}
		enforcer, err = casbin.NewEnforcer(m)
		if err != nil {
			return
		}
		_, err = enforcer.AddPolicies(rbacPolicies)
	})
	if err != nil {
		return nil, err
	}
	return enforcer, nil
}

// RBACMiddleware enforces the policy table for each authenticated request.
func RBACMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get("user").(*auth.JWTClaims)
		if !ok || claims == nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Access denied. Not authenticated"})
		}

		enf, err := InitEnforcer()
		if err != nil {
			log.Println("RBAC enforcer error:", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Server error"})
		}

		allowed, err := enf.Enforce(claims.Role, c.Request().URL.Path, c.Request().Method)
		if err != nil {
			log.Println("RBAC enforce error:", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Server error"})
		}
		if !allowed {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Access denied. Not authorized"})
		}
		return next(c)
	}
}
