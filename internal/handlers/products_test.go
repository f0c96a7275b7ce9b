package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"productmetrics/internal/models"
	"productmetrics/internal/repository"
)

const widgetBody = `{"product":"Widget","material":"Steel","cost":10,"embodiedCO2":5,"lifecycleStage":"production"}`

func newTestRouter(repo repository.Repository, mode ErrorMode) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/products", GetProducts(repo, mode))
	r.GET("/products/:id", GetProduct(repo, mode))
	r.POST("/products", CreateProduct(repo, mode))
	r.PUT("/products/:id", UpdateProduct(repo, mode))
	r.DELETE("/products/:id", DeleteProduct(repo, mode))
	r.GET("/healthz", Health(repo))
	return r
}

func perform(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeProduct(t *testing.T, w *httptest.ResponseRecorder) models.Product {
	t.Helper()
	var p models.Product
	if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
		t.Fatalf("response is not a product: %v (%s)", err, w.Body.String())
	}
	return p
}

func decodeProducts(t *testing.T, w *httptest.ResponseRecorder) []models.Product {
	t.Helper()
	var ps []models.Product
	if err := json.Unmarshal(w.Body.Bytes(), &ps); err != nil {
		t.Fatalf("response is not a product list: %v (%s)", err, w.Body.String())
	}
	return ps
}

func createWidget(t *testing.T, r http.Handler) models.Product {
	t.Helper()
	w := perform(r, http.MethodPost, "/products", widgetBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	return decodeProduct(t, w)
}

func TestCreateProductReturnsStoredDocument(t *testing.T) {
	r := newTestRouter(repository.NewMemoryRepository(), ErrorMode{})

	w := perform(r, http.MethodPost, "/products", widgetBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	id, _ := raw["_id"].(string)
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		t.Fatalf("expected ObjectID _id, got %v", raw["_id"])
	}
	if raw["recyclable"] != false {
		t.Fatalf("expected recyclable false, got %v", raw["recyclable"])
	}
	if certs, ok := raw["carbonCertifications"].([]interface{}); !ok || len(certs) != 0 {
		t.Fatalf("expected empty carbonCertifications, got %v", raw["carbonCertifications"])
	}
	if raw["product"] != "Widget" || raw["cost"] != 10.0 {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestCreateThenGetByID(t *testing.T) {
	r := newTestRouter(repository.NewMemoryRepository(), ErrorMode{})
	created := createWidget(t, r)

	w := perform(r, http.MethodGet, "/products/"+created.ID.Hex(), "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	found := decodeProducts(t, w)
	if len(found) != 1 || found[0].ID != created.ID || found[0].Product != "Widget" {
		t.Fatalf("unexpected products %+v", found)
	}
}

func TestGetUnknownProductReturnsEmptyArray(t *testing.T) {
	r := newTestRouter(repository.NewMemoryRepository(), ErrorMode{})

	w := perform(r, http.MethodGet, "/products/"+primitive.NewObjectID().Hex(), "")
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("expected 200 [], got %d %s", w.Code, w.Body.String())
	}

	w = perform(r, http.MethodGet, "/products", "")
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("expected 200 [], got %d %s", w.Code, w.Body.String())
	}
}

func TestCreateProductValidationFailure(t *testing.T) {
	repo := repository.NewMemoryRepository()
	r := newTestRouter(repo, ErrorMode{})

	w := perform(r, http.MethodPost, "/products", `{"product":"Widget","material":"Steel","embodiedCO2":5,"lifecycleStage":"production"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var body struct {
		Name   string                            `json:"name"`
		Errors map[string]map[string]interface{} `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body.Name != "ValidationError" {
		t.Fatalf("expected ValidationError, got %s", body.Name)
	}
	if body.Errors["cost"]["kind"] != "required" {
		t.Fatalf("expected cost required violation, got %v", body.Errors)
	}

	if count, _ := repo.Count(context.Background()); count != 0 {
		t.Fatalf("failed create must not persist, count=%d", count)
	}
}

func TestCreateProductRejectsOutOfRangeScore(t *testing.T) {
	r := newTestRouter(repository.NewMemoryRepository(), ErrorMode{})

	for _, score := range []string{"-1", "101"} {
		body := strings.TrimSuffix(widgetBody, "}") + `,"environmentalImpactScore":` + score + `}`
		w := perform(r, http.MethodPost, "/products", body)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("score %s: expected 500, got %d", score, w.Code)
		}
	}
	for _, score := range []string{"0", "100"} {
		body := strings.TrimSuffix(widgetBody, "}") + `,"environmentalImpactScore":` + score + `}`
		w := perform(r, http.MethodPost, "/products", body)
		if w.Code != http.StatusCreated {
			t.Fatalf("score %s: expected 201, got %d", score, w.Code)
		}
	}
}

func TestCreateProductInvalidBody(t *testing.T) {
	r := newTestRouter(repository.NewMemoryRepository(), ErrorMode{})

	for _, body := range []string{`{"product":`, `[1,2]`, `null`} {
		w := perform(r, http.MethodPost, "/products", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %d", body, w.Code)
		}
		if w.Body.String() != `{"error":"invalid body"}` {
			t.Fatalf("body %q: unexpected response %s", body, w.Body.String())
		}
	}
}

func TestUpdateProductMergesAndIsIdempotent(t *testing.T) {
	r := newTestRouter(repository.NewMemoryRepository(), ErrorMode{})
	created := createWidget(t, r)
	path := "/products/" + created.ID.Hex()

	first := perform(r, http.MethodPut, path, `{"cost":12,"recyclable":true}`)
	if first.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", first.Code, first.Body.String())
	}
	second := perform(r, http.MethodPut, path, `{"cost":12,"recyclable":true}`)
	if second.Body.String() != first.Body.String() {
		t.Fatalf("update not idempotent:\n%s\n%s", first.Body.String(), second.Body.String())
	}

	updated := decodeProduct(t, second)
	if *updated.Cost != 12 || !updated.Recyclable || updated.Material != "Steel" {
		t.Fatalf("unexpected updated product %+v", updated)
	}
}

func TestUpdateProductRevalidates(t *testing.T) {
	r := newTestRouter(repository.NewMemoryRepository(), ErrorMode{})
	created := createWidget(t, r)

	w := perform(r, http.MethodPut, "/products/"+created.ID.Hex(), `{"lifecycleStage":"landfill"}`)
	if w.Code != http.StatusInternalServerError || !strings.Contains(w.Body.String(), `"kind":"enum"`) {
		t.Fatalf("expected enum violation, got %d %s", w.Code, w.Body.String())
	}
}

func TestUpdateUnknownProduct(t *testing.T) {
	r := newTestRouter(repository.NewMemoryRepository(), ErrorMode{})

	w := perform(r, http.MethodPut, "/products/"+primitive.NewObjectID().Hex(), `{"cost":1}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != notUpdatedText {
		t.Fatalf("unexpected body %q", w.Body.String())
	}
	if !strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain") {
		t.Fatalf("expected text response, got %s", w.Header().Get("Content-Type"))
	}
}

func TestDeleteProductTwice(t *testing.T) {
	r := newTestRouter(repository.NewMemoryRepository(), ErrorMode{})
	created := createWidget(t, r)
	path := "/products/" + created.ID.Hex()

	w := perform(r, http.MethodDelete, path, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if removed := decodeProduct(t, w); removed.ID != created.ID {
		t.Fatalf("expected prior state of %s, got %+v", created.ID.Hex(), removed)
	}

	w = perform(r, http.MethodGet, path, "")
	if w.Body.String() != "[]" {
		t.Fatalf("expected [] after delete, got %s", w.Body.String())
	}

	w = perform(r, http.MethodDelete, path, "")
	if w.Code != http.StatusOK || w.Body.String() != notDeletedText {
		t.Fatalf("expected 200 %q, got %d %q", notDeletedText, w.Code, w.Body.String())
	}
}

func TestMalformedIDIsCastError(t *testing.T) {
	r := newTestRouter(repository.NewMemoryRepository(), ErrorMode{})

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		w := perform(r, method, "/products/123", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("%s: expected 500, got %d", method, w.Code)
		}
		if !strings.Contains(w.Body.String(), `"name":"CastError"`) {
			t.Fatalf("%s: expected CastError body, got %s", method, w.Body.String())
		}
	}
}

func TestStrictMode(t *testing.T) {
	r := newTestRouter(repository.NewMemoryRepository(), ErrorMode{Strict: true})
	missing := "/products/" + primitive.NewObjectID().Hex()

	w := perform(r, http.MethodPut, missing, `{"cost":1}`)
	if w.Code != http.StatusNotFound || w.Body.String() != `{"error":"product not found"}` {
		t.Fatalf("expected 404, got %d %s", w.Code, w.Body.String())
	}

	w = perform(r, http.MethodDelete, missing, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	w = perform(r, http.MethodPost, "/products", `{"product":"Widget"}`)
	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), `"name":"ValidationError"`) {
		t.Fatalf("expected 400 ValidationError, got %d %s", w.Code, w.Body.String())
	}

	w = perform(r, http.MethodGet, "/products/123", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed id, got %d", w.Code)
	}

	w = perform(r, http.MethodGet, missing, "")
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("expected 200 [] for unknown id, got %d %s", w.Code, w.Body.String())
	}
}

func TestHealth(t *testing.T) {
	r := newTestRouter(repository.NewMemoryRepository(), ErrorMode{})

	w := perform(r, http.MethodGet, "/healthz", "")
	if w.Code != http.StatusOK || w.Body.String() != `{"status":"ok"}` {
		t.Fatalf("expected 200 ok, got %d %s", w.Code, w.Body.String())
	}
}

func TestCreateProductRejectsNonFiniteNumbers(t *testing.T) {
	repo := repository.NewMemoryRepository()
	r := newTestRouter(repo, ErrorMode{})

	for _, value := range []string{`"NaN"`, `"Infinity"`, `"-Inf"`} {
		body := strings.Replace(widgetBody, `"cost":10`, `"cost":`+value, 1)
		w := perform(r, http.MethodPost, "/products", body)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("cost=%s: expected 500, got %d: %s", value, w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"kind":"Number"`) {
			t.Fatalf("cost=%s: expected Number cast violation, got %s", value, w.Body.String())
		}
	}

	if count, _ := repo.Count(context.Background()); count != 0 {
		t.Fatalf("rejected creates must not persist, count=%d", count)
	}
	w := perform(r, http.MethodGet, "/products", "")
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("expected 200 [], got %d %q", w.Code, w.Body.String())
	}
}

func TestCreateThenGetKeepsEmptyOptionalText(t *testing.T) {
	r := newTestRouter(repository.NewMemoryRepository(), ErrorMode{})

	body := strings.TrimSuffix(widgetBody, "}") + `,"manufacturer":"","durability":""}`
	w := perform(r, http.MethodPost, "/products", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	created := decodeProduct(t, w)

	w = perform(r, http.MethodGet, "/products/"+created.ID.Hex(), "")
	var found []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &found); err != nil || len(found) != 1 {
		t.Fatalf("expected one product, got %s", w.Body.String())
	}
	for _, key := range []string{"manufacturer", "durability"} {
		if v, ok := found[0][key]; !ok || v != "" {
			t.Fatalf("expected %s to round-trip as empty string, got %v", key, found[0])
		}
	}
	if _, ok := found[0]["productionCountry"]; ok {
		t.Fatal("productionCountry was not sent and must not be returned")
	}
}
