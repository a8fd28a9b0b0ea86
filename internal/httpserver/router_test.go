package httpserver

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"minishop-storefront/internal/auth"
	"minishop-storefront/internal/domain"
	"minishop-storefront/internal/notify"
	cartsvc "minishop-storefront/internal/service/cart"
	catalogsvc "minishop-storefront/internal/service/catalog"
	wishlistsvc "minishop-storefront/internal/service/wishlist"
)

type stubCatalogRepo struct {
	products []domain.Product
	err      error
}

func (s *stubCatalogRepo) List(_ context.Context) ([]domain.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

func (s *stubCatalogRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, p := range s.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func testProducts() []domain.Product {
	return []domain.Product{
		{ID: "A", NameEN: "Shirt", NameAR: "قميص", DescriptionEN: "d", DescriptionAR: "و", Category: domain.CategoryApparel, PriceCents: 1000, Image: "/a.jpg", InStock: true},
		{ID: "B", NameEN: "Mug", NameAR: "كوب", DescriptionEN: "d", DescriptionAR: "و", Category: domain.CategoryHome, PriceCents: 2500, OriginalPriceCents: 3000, Image: "/b.jpg", InStock: true},
		{ID: "C", NameEN: "Lamp", NameAR: "مصباح", DescriptionEN: "d", DescriptionAR: "و", Category: domain.CategoryHome, PriceCents: 1500, Image: "/c.jpg", InStock: false},
	}
}

func testRouter(t *testing.T) (*gin.Engine, Deps, *notify.Recorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	repo := &stubCatalogRepo{products: testProducts()}
	recorder := &notify.Recorder{}
	deps := Deps{
		Catalog:  catalogsvc.New(repo, repo, nil),
		Cart:     cartsvc.NewStore(),
		Wishlist: wishlistsvc.NewStore(),
		Auth:     auth.New(),
		Notifier: recorder,
	}
	logger := log.New(io.Discard, "", 0)
	return buildRouter(logger, nil, deps, []string{"http://localhost:3000"}), deps, recorder
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, into any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), into); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func TestHealthz(t *testing.T) {
	router, _, _ := testRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/healthz", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadyz_BundledWithoutDB(t *testing.T) {
	router, _, _ := testRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/readyz", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]string
	decode(t, rec, &body)
	if body["catalog"] != "bundled" {
		t.Fatalf("expected bundled catalog, got %v", body)
	}
}
