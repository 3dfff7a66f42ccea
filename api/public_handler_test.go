package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/atelier-interioare/site-backend/database"
	"github.com/atelier-interioare/site-backend/models"
	"github.com/atelier-interioare/site-backend/settings"
	"github.com/atelier-interioare/site-backend/syncer"
)

func newTestServer(t *testing.T, cfg map[string]string) (*chi.Mux, database.Database, *syncer.Store) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	d := database.New(db)
	if err := d.AutoMigrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	service := settings.NewService(d.SettingsRepo(), settings.NewBus(), zerolog.Nop())
	sync := syncer.New(d.ProjectRepo(), d.SummaryRepo(), service, zerolog.Nop())
	store := syncer.NewStore(d.ProjectRepo(), sync)

	if cfg == nil {
		cfg = map[string]string{}
	}
	return newRouter(d, withConfig(cfg), withStartupTime(time.Now())), d, store
}

func doJSON(t *testing.T, router http.Handler, method, path, body string, header map[string]string) (*httptest.ResponseRecorder, Envelope) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: response is not an envelope: %v\nbody: %s", method, path, err, rec.Body.String())
	}
	return rec, env
}

// decodeItem re-marshals the envelope item into a concrete type.
func decodeItem(t *testing.T, env Envelope, out any) {
	t.Helper()
	raw, err := json.Marshal(env.Item)
	if err != nil {
		t.Fatalf("marshal item: %v", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		t.Fatalf("decode item: %v", err)
	}
}

func seedProject(t *testing.T, store *syncer.Store, p *models.Project) *models.Project {
	t.Helper()
	if err := store.CreateProject(p); err != nil {
		t.Fatalf("seed project %q: %v", p.Name, err)
	}
	return p
}

func TestHealthz(t *testing.T) {
	router, _, _ := newTestServer(t, nil)
	rec, env := doJSON(t, router, http.MethodGet, "/healthz", "", nil)
	if rec.Code != http.StatusOK || !env.OK {
		t.Errorf("healthz: code=%d ok=%v", rec.Code, env.OK)
	}
}

func TestPortfolioListsOnlyPublished(t *testing.T) {
	router, _, store := newTestServer(t, nil)
	seedProject(t, store, &models.Project{Name: "Public Unu", Category: "Bucătării", IsPublished: true})
	seedProject(t, store, &models.Project{Name: "Draft Doi", Category: "Bucătării"})

	rec, env := doJSON(t, router, http.MethodGet, "/api/portfolio", "", nil)
	if rec.Code != http.StatusOK || !env.OK {
		t.Fatalf("portfolio: code=%d ok=%v", rec.Code, env.OK)
	}
	if env.Total != 1 {
		t.Errorf("total = %d, want 1", env.Total)
	}
	if cc := rec.Header().Get("Cache-Control"); cc != "s-maxage=300, stale-while-revalidate=600" {
		t.Errorf("Cache-Control = %q", cc)
	}
}

func TestPortfolioOrderFallsBackThroughDates(t *testing.T) {
	router, _, store := newTestServer(t, nil)

	old := time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)
	mid := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	recent := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	// Completed long ago vs published recently with no completion date.
	seedProject(t, store, &models.Project{Name: "Finalizat Vechi", IsPublished: true, CompletedAt: &old, PublishedAt: &old})
	seedProject(t, store, &models.Project{Name: "Publicat Recent", IsPublished: true, PublishedAt: &recent})
	seedProject(t, store, &models.Project{Name: "Finalizat Mediu", IsPublished: true, CompletedAt: &mid, PublishedAt: &mid})

	_, env := doJSON(t, router, http.MethodGet, "/api/portfolio", "", nil)

	raw, _ := json.Marshal(env.Items)
	var items []models.ProjectSummary
	if err := json.Unmarshal(raw, &items); err != nil {
		t.Fatalf("decode items: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("items = %d, want 3", len(items))
	}
	wantOrder := []string{"Publicat Recent", "Finalizat Mediu", "Finalizat Vechi"}
	for i, want := range wantOrder {
		if items[i].Name != want {
			t.Errorf("items[%d] = %q, want %q", i, items[i].Name, want)
		}
	}
}

func TestDetailUnpublishedLooksAbsent(t *testing.T) {
	router, _, store := newTestServer(t, nil)
	p := seedProject(t, store, &models.Project{Name: "Proiect Ascuns", Category: "Băi"})

	// Unpublished by slug.
	recHidden, envHidden := doJSON(t, router, http.MethodGet, "/api/portfolio/"+p.Slug, "", nil)
	// Genuinely absent slug.
	recAbsent, envAbsent := doJSON(t, router, http.MethodGet, "/api/portfolio/nu-exista", "", nil)

	if recHidden.Code != http.StatusNotFound || recAbsent.Code != http.StatusNotFound {
		t.Fatalf("codes = %d, %d, want both 404", recHidden.Code, recAbsent.Code)
	}
	// The two envelopes must be indistinguishable.
	if envHidden.OK != envAbsent.OK || envHidden.Error != envAbsent.Error || envHidden.Code != envAbsent.Code {
		t.Errorf("envelopes differ: %+v vs %+v", envHidden, envAbsent)
	}
}

func TestDetailBySlugAndByID(t *testing.T) {
	router, _, store := newTestServer(t, nil)
	p := seedProject(t, store, &models.Project{Name: "Bucătărie Verde", Category: "Bucătării", IsPublished: true})

	_, bySlug := doJSON(t, router, http.MethodGet, "/api/portfolio/bucatarie-verde", "", nil)
	if !bySlug.OK {
		t.Fatalf("slug lookup failed: %+v", bySlug)
	}

	_, byID := doJSON(t, router, http.MethodGet, "/api/portfolio/"+p.ID.String(), "", nil)
	if !byID.OK {
		t.Errorf("raw id fallback failed: %+v", byID)
	}
}

func TestGalleryCompositeIDs(t *testing.T) {
	router, _, store := newTestServer(t, nil)

	p1 := seedProject(t, store, &models.Project{
		Name: "Cu Top", IsPublished: true,
		Media: []models.ProjectMedia{
			{ID: "img-a", URL: "https://example.com/a.jpg", IsTop: true},
			{ID: "img-b", URL: "https://example.com/b.jpg", Rating: 3},
		},
	})
	seedProject(t, store, &models.Project{
		Name: "Fara Top", IsPublished: true,
		Media: []models.ProjectMedia{{ID: "img-c", URL: "https://example.com/c.jpg", Rating: 4}},
	})
	seedProject(t, store, &models.Project{
		Name: "Nepublicat", Media: []models.ProjectMedia{{ID: "img-d", URL: "https://example.com/d.jpg", IsTop: true}},
	})

	_, env := doJSON(t, router, http.MethodGet, "/api/gallery", "", nil)
	raw, _ := json.Marshal(env.Items)
	var items []GalleryItem
	if err := json.Unmarshal(raw, &items); err != nil {
		t.Fatalf("decode items: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("gallery items = %d, want 1", len(items))
	}
	if want := p1.ID.String() + "-img-a"; items[0].ID != want {
		t.Errorf("composite id = %q, want %q", items[0].ID, want)
	}
}

func TestGalleryIncludesFiveStarImages(t *testing.T) {
	router, _, store := newTestServer(t, nil)
	seedProject(t, store, &models.Project{
		Name: "Cinci Stele", IsPublished: true,
		Media: []models.ProjectMedia{{ID: "img-e", URL: "https://example.com/e.jpg", Rating: 5}},
	})

	_, env := doJSON(t, router, http.MethodGet, "/api/gallery", "", nil)
	if env.Total != 1 {
		t.Errorf("total = %d, want 1 (rating 5 counts without isTop)", env.Total)
	}
}

func TestCreateLeadValidates(t *testing.T) {
	router, d, _ := newTestServer(t, nil)

	rec, env := doJSON(t, router, http.MethodPost, "/api/leads", `{"email":"a@b.ro"}`, nil)
	if rec.Code != http.StatusBadRequest || env.OK {
		t.Errorf("missing name accepted: code=%d", rec.Code)
	}

	rec, env = doJSON(t, router, http.MethodPost, "/api/leads",
		`{"name":"Ion Pop","email":"ion@example.ro","projectType":"Bucătării","status":"won"}`, nil)
	if rec.Code != http.StatusCreated || !env.OK {
		t.Fatalf("valid lead rejected: code=%d env=%+v", rec.Code, env)
	}

	leads, err := d.LeadRepo().FindAll()
	if err != nil || len(leads) != 1 {
		t.Fatalf("leads stored = %d (err %v), want 1", len(leads), err)
	}
	// Client-supplied status is ignored; intake records always start new.
	if leads[0].Status != models.LeadStatusNew {
		t.Errorf("status = %q, want new", leads[0].Status)
	}
}

func TestLocalizedPageFlow(t *testing.T) {
	router, _, _ := newTestServer(t, nil)

	// No cookie, English browser: redirect to localized path.
	req := httptest.NewRequest(http.MethodGet, "/despre", nil)
	req.Header.Set("Accept-Language", "en-US")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusTemporaryRedirect || rec.Header().Get("Location") != "/en/despre" {
		t.Fatalf("code=%d location=%q", rec.Code, rec.Header().Get("Location"))
	}

	// Localized path: 200, cookie set, localized content served.
	rec2, env := doJSON(t, router, http.MethodGet, "/en/despre", "", nil)
	if rec2.Code != http.StatusOK || !env.OK {
		t.Fatalf("localized page: code=%d", rec2.Code)
	}
	var gotCookie bool
	for _, c := range rec2.Result().Cookies() {
		if c.Name == "NEXT_LOCALE" && c.Value == "en" {
			gotCookie = true
		}
	}
	if !gotCookie {
		t.Error("NEXT_LOCALE cookie not set on localized path")
	}
}

func TestSettingsEndpointServesDefaults(t *testing.T) {
	router, _, _ := newTestServer(t, nil)

	rec, env := doJSON(t, router, http.MethodGet, "/api/settings/theme", "", nil)
	if rec.Code != http.StatusOK || !env.OK {
		t.Fatalf("settings theme: code=%d", rec.Code)
	}
	raw, _ := json.Marshal(env.Item)
	var theme settings.ThemeSettings
	if err := json.Unmarshal(raw, &theme); err != nil {
		t.Fatalf("decode theme: %v", err)
	}
	if theme.Light.Accent == "" || theme.Dark.Accent == "" {
		t.Errorf("defaults missing: %+v", theme)
	}

	rec, _ = doJSON(t, router, http.MethodGet, "/api/settings/bogus", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown domain: code=%d, want 404", rec.Code)
	}
}
