package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/atelier-interioare/site-backend/models"
)

const (
	testJWTSecret       = "test-jwt-secret"
	testBootstrapSecret = "test-bootstrap-secret"
)

func adminConfig() map[string]string {
	return map[string]string{
		"ADMIN_JWT_SECRET":       testJWTSecret,
		"ADMIN_BOOTSTRAP_SECRET": testBootstrapSecret,
	}
}

func mintToken(t *testing.T, subject, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestAdminRoutesRejectMissingToken(t *testing.T) {
	router, _, _ := newTestServer(t, adminConfig())

	rec, env := doJSON(t, router, http.MethodGet, "/admin/api/projects", "", nil)
	if rec.Code != http.StatusUnauthorized || env.OK {
		t.Errorf("no token: code=%d ok=%v", rec.Code, env.OK)
	}
}

func TestAdminRoutesRejectBadSignature(t *testing.T) {
	router, _, _ := newTestServer(t, adminConfig())
	token := mintToken(t, "user-1", "some-other-secret")

	rec, _ := doJSON(t, router, http.MethodGet, "/admin/api/projects", "", bearer(token))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("bad signature: code=%d, want 401", rec.Code)
	}
}

func TestAdminRoutesRejectUnlistedSubject(t *testing.T) {
	router, _, _ := newTestServer(t, adminConfig())
	token := mintToken(t, "stranger", testJWTSecret)

	rec, env := doJSON(t, router, http.MethodGet, "/admin/api/projects", "", bearer(token))
	if rec.Code != http.StatusForbidden {
		t.Errorf("unlisted subject: code=%d, want 403 (env %+v)", rec.Code, env)
	}
}

func TestAdminRoutesAllowListedSubject(t *testing.T) {
	router, d, _ := newTestServer(t, adminConfig())
	if err := d.AdminRepo().Add(&models.AdminUser{Subject: "user-1", Allowed: true}); err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	token := mintToken(t, "user-1", testJWTSecret)

	rec, env := doJSON(t, router, http.MethodGet, "/admin/api/projects", "", bearer(token))
	if rec.Code != http.StatusOK || !env.OK {
		t.Errorf("listed subject: code=%d ok=%v", rec.Code, env.OK)
	}
}

func TestBootstrapFlow(t *testing.T) {
	router, _, _ := newTestServer(t, adminConfig())
	token := mintToken(t, "first-admin", testJWTSecret)

	// Wrong secret is refused.
	rec, _ := doJSON(t, router, http.MethodPost, "/admin/api/bootstrap",
		`{"secret":"wrong"}`, bearer(token))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("wrong secret: code=%d, want 403", rec.Code)
	}

	// Correct secret on an empty allow-list creates the first admin.
	rec, env := doJSON(t, router, http.MethodPost, "/admin/api/bootstrap",
		`{"secret":"`+testBootstrapSecret+`","email":"admin@example.ro"}`, bearer(token))
	if rec.Code != http.StatusCreated || !env.OK {
		t.Fatalf("bootstrap: code=%d env=%+v", rec.Code, env)
	}

	// The bootstrapped subject can now use the admin surface.
	rec, _ = doJSON(t, router, http.MethodGet, "/admin/api/projects", "", bearer(token))
	if rec.Code != http.StatusOK {
		t.Errorf("post-bootstrap access: code=%d", rec.Code)
	}

	// Once any record exists the path is permanently closed, even with the
	// right secret.
	other := mintToken(t, "second-admin", testJWTSecret)
	rec, _ = doJSON(t, router, http.MethodPost, "/admin/api/bootstrap",
		`{"secret":"`+testBootstrapSecret+`"}`, bearer(other))
	if rec.Code != http.StatusForbidden {
		t.Errorf("second bootstrap: code=%d, want 403", rec.Code)
	}
}

func TestBootstrapDisabledWithoutSecret(t *testing.T) {
	router, _, _ := newTestServer(t, map[string]string{"ADMIN_JWT_SECRET": testJWTSecret})
	token := mintToken(t, "first-admin", testJWTSecret)

	rec, _ := doJSON(t, router, http.MethodPost, "/admin/api/bootstrap",
		`{"secret":""}`, bearer(token))
	if rec.Code != http.StatusForbidden {
		t.Errorf("unconfigured bootstrap: code=%d, want 403", rec.Code)
	}
}

func TestAdminProjectLifecycleThroughAPI(t *testing.T) {
	router, d, _ := newTestServer(t, adminConfig())
	if err := d.AdminRepo().Add(&models.AdminUser{Subject: "user-1", Allowed: true}); err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	token := mintToken(t, "user-1", testJWTSecret)

	// Create a draft. Nothing public yet.
	rec, env := doJSON(t, router, http.MethodPost, "/admin/api/projects",
		`{"name":"Bucătărie Nouă","category":"Bucătării","summary":"Mobilier la comandă"}`,
		bearer(token))
	if rec.Code != http.StatusCreated || !env.OK {
		t.Fatalf("create: code=%d env=%+v", rec.Code, env)
	}
	var created models.Project
	decodeItem(t, env, &created)

	_, listEnv := doJSON(t, router, http.MethodGet, "/api/portfolio", "", nil)
	if listEnv.Total != 0 {
		t.Fatalf("draft visible publicly: total=%d", listEnv.Total)
	}

	// Publish it. The summary sync runs before the response, so the public
	// listing reflects the change immediately.
	rec, env = doJSON(t, router, http.MethodPut, "/admin/api/projects/"+created.ID.String(),
		`{"name":"Bucătărie Nouă","category":"Bucătării","isPublished":true}`,
		bearer(token))
	if rec.Code != http.StatusOK || !env.OK {
		t.Fatalf("update: code=%d env=%+v", rec.Code, env)
	}

	_, listEnv = doJSON(t, router, http.MethodGet, "/api/portfolio", "", nil)
	if listEnv.Total != 1 {
		t.Fatalf("published project not visible: total=%d", listEnv.Total)
	}

	// Invalid rating is rejected before any write.
	rec, _ = doJSON(t, router, http.MethodPost, "/admin/api/projects",
		`{"name":"Invalid","rating":9}`, bearer(token))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("rating 9 accepted: code=%d", rec.Code)
	}

	// Delete cascades to the public summary.
	rec, _ = doJSON(t, router, http.MethodDelete, "/admin/api/projects/"+created.ID.String(), "", bearer(token))
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: code=%d", rec.Code)
	}
	_, listEnv = doJSON(t, router, http.MethodGet, "/api/portfolio", "", nil)
	if listEnv.Total != 0 {
		t.Errorf("summary survived deletion: total=%d", listEnv.Total)
	}
}

func TestAdminLeadStatusValidation(t *testing.T) {
	router, d, _ := newTestServer(t, adminConfig())
	if err := d.AdminRepo().Add(&models.AdminUser{Subject: "user-1", Allowed: true}); err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	token := mintToken(t, "user-1", testJWTSecret)

	_, env := doJSON(t, router, http.MethodPost, "/api/leads",
		`{"name":"Maria","email":"maria@example.ro"}`, nil)
	var lead models.Lead
	decodeItem(t, env, &lead)

	rec, _ := doJSON(t, router, http.MethodPut, "/admin/api/leads/"+lead.ID.String()+"/status",
		`{"status":"archived"}`, bearer(token))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown status accepted: code=%d", rec.Code)
	}

	rec, env = doJSON(t, router, http.MethodPut, "/admin/api/leads/"+lead.ID.String()+"/status",
		`{"status":"qualified"}`, bearer(token))
	if rec.Code != http.StatusOK {
		t.Fatalf("valid transition rejected: code=%d", rec.Code)
	}
	var updated models.Lead
	decodeItem(t, env, &updated)
	if updated.Status != models.LeadStatusQualified {
		t.Errorf("status = %q, want qualified", updated.Status)
	}
}
