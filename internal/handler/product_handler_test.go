package handler

import (
	"fmt"
	"net/http"
	"testing"

	"grocery-api/internal/model"
)

func TestProductCreate(t *testing.T) {
	app, db := setupTestApp(t)
	category := seedCategory(t, db, "Fruits")

	payload := fmt.Sprintf(
		`{"category_id":%q,"name":"Apple","barcode":"1234567890","price":1.50,"stock_quantity":10,"unit":"kg"}`,
		category.ID)
	status, body := request(t, app, http.MethodPost, "/api/v1/products", payload)
	if status != http.StatusCreated {
		t.Fatalf("expected 201 got %d body=%v", status, body)
	}

	data := body["data"].(map[string]any)
	if data["name"] != "Apple" {
		t.Fatalf("expected Apple, got %v", data["name"])
	}
	if data["price"] != float64(1.5) {
		t.Fatalf("expected price 1.5, got %v", data["price"])
	}
	// Category relation comes attached
	rel, ok := data["category"].(map[string]any)
	if !ok || rel["name"] != "Fruits" {
		t.Fatalf("expected attached category, got %v", data["category"])
	}
}

func TestProductCreateValidation(t *testing.T) {
	app, db := setupTestApp(t)
	category := seedCategory(t, db, "Fruits")

	cases := []struct {
		name    string
		payload string
		field   string
	}{
		{"missing category", `{"name":"Apple","price":1}`, "category_id"},
		{"missing name", fmt.Sprintf(`{"category_id":%q,"price":1}`, category.ID), "name"},
		{"missing price", fmt.Sprintf(`{"category_id":%q,"name":"Apple"}`, category.ID), "price"},
		{"negative price", fmt.Sprintf(`{"category_id":%q,"name":"Apple","price":-2}`, category.ID), "price"},
		{"negative stock", fmt.Sprintf(`{"category_id":%q,"name":"Apple","price":1,"stock_quantity":-1}`, category.ID), "stock_quantity"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := request(t, app, http.MethodPost, "/api/v1/products", tc.payload)
			if status != http.StatusUnprocessableEntity {
				t.Fatalf("expected 422 got %d body=%v", status, body)
			}
			errs := body["errors"].(map[string]any)
			if _, ok := errs[tc.field]; !ok {
				t.Fatalf("expected error on %s, got %v", tc.field, errs)
			}
		})
	}
}

func TestProductCreateUnknownCategory(t *testing.T) {
	app, _ := setupTestApp(t)

	payload := `{"category_id":"6f1e076c-54a1-4a35-9a6c-85a423c0b3f1","name":"Apple","price":1}`
	status, body := request(t, app, http.MethodPost, "/api/v1/products", payload)
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d", status)
	}
	errs := body["errors"].(map[string]any)
	if errs["category_id"] != "Selected category does not exist" {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestProductBarcodeUnique(t *testing.T) {
	app, db := setupTestApp(t)
	category := seedCategory(t, db, "Fruits")
	seedProduct(t, db, category, "Apple", "111222333", 1.00)

	payload := fmt.Sprintf(`{"category_id":%q,"name":"Pear","barcode":"111222333","price":2}`, category.ID)
	status, body := request(t, app, http.MethodPost, "/api/v1/products", payload)
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d", status)
	}
	errs := body["errors"].(map[string]any)
	if errs["barcode"] != "This barcode is already in use" {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestProductSearch(t *testing.T) {
	app, db := setupTestApp(t)
	category := seedCategory(t, db, "Fruits")
	seedProduct(t, db, category, "Apple", "", 1.00)
	seedProduct(t, db, category, "Banana", "", 0.50)

	status, body := request(t, app, http.MethodGet, "/api/v1/products?search=apple", "")
	if status != http.StatusOK {
		t.Fatalf("expected 200 got %d", status)
	}
	data := body["data"].([]any)
	if len(data) != 1 {
		t.Fatalf("expected exactly 1 result, got %d", len(data))
	}
	if data[0].(map[string]any)["name"] != "Apple" {
		t.Fatalf("expected Apple, got %v", data[0])
	}
}

func TestProductSearchByBarcodeSubstring(t *testing.T) {
	app, db := setupTestApp(t)
	category := seedCategory(t, db, "Fruits")
	seedProduct(t, db, category, "Apple", "900100200", 1.00)
	seedProduct(t, db, category, "Banana", "555666777", 0.50)

	_, body := request(t, app, http.MethodGet, "/api/v1/products?search=100200", "")
	data := body["data"].([]any)
	if len(data) != 1 || data[0].(map[string]any)["name"] != "Apple" {
		t.Fatalf("expected barcode substring to match Apple, got %v", data)
	}
}

func TestProductCategoryFilter(t *testing.T) {
	app, db := setupTestApp(t)
	fruits := seedCategory(t, db, "Fruits")
	dairy := seedCategory(t, db, "Dairy")
	seedProduct(t, db, fruits, "Apple", "", 1.00)
	seedProduct(t, db, dairy, "Milk", "", 2.00)

	_, body := request(t, app, http.MethodGet, "/api/v1/products?category_id="+fruits.ID.String(), "")
	data := body["data"].([]any)
	if len(data) != 1 || data[0].(map[string]any)["name"] != "Apple" {
		t.Fatalf("expected only Apple, got %v", data)
	}
}

func TestProductPaginationMeta(t *testing.T) {
	app, db := setupTestApp(t)
	category := seedCategory(t, db, "Fruits")
	for i := 0; i < 7; i++ {
		seedProduct(t, db, category, fmt.Sprintf("Product %d", i), "", 1.00)
	}

	_, body := request(t, app, http.MethodGet, "/api/v1/products?per_page=3&page=2", "")
	meta := body["meta"].(map[string]any)
	if meta["current_page"] != float64(2) || meta["per_page"] != float64(3) ||
		meta["total"] != float64(7) || meta["last_page"] != float64(3) {
		t.Fatalf("unexpected meta: %v", meta)
	}
	data := body["data"].([]any)
	if len(data) != 3 {
		t.Fatalf("expected 3 rows on page 2, got %d", len(data))
	}
}

func TestProductSortAllowList(t *testing.T) {
	app, db := setupTestApp(t)
	category := seedCategory(t, db, "Fruits")
	seedProduct(t, db, category, "Banana", "", 0.50)
	seedProduct(t, db, category, "Apple", "", 1.00)

	// Allowed column
	_, body := request(t, app, http.MethodGet, "/api/v1/products?sort_by=name&sort_dir=asc", "")
	data := body["data"].([]any)
	if data[0].(map[string]any)["name"] != "Apple" {
		t.Fatalf("expected Apple first when sorting by name asc, got %v", data[0])
	}

	// Hostile column name falls back to created_at instead of passing through
	status, _ := request(t, app, http.MethodGet, "/api/v1/products?sort_by=name;DROP+TABLE+products", "")
	if status != http.StatusOK {
		t.Fatalf("expected fallback sort to succeed, got %d", status)
	}
	var count int64
	db.Model(&model.Product{}).Count(&count)
	if count != 2 {
		t.Fatalf("products table damaged, count=%d", count)
	}
}

func TestProductPartialUpdate(t *testing.T) {
	app, db := setupTestApp(t)
	category := seedCategory(t, db, "Fruits")
	product := seedProduct(t, db, category, "Apple", "111", 1.00)

	// Only price present: name and barcode must survive untouched
	status, body := request(t, app, http.MethodPut, "/api/v1/products/"+product.ID.String(),
		`{"price":2.25}`)
	if status != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%v", status, body)
	}
	data := body["data"].(map[string]any)
	if data["name"] != "Apple" || data["barcode"] != "111" {
		t.Fatalf("untouched fields changed: %v", data)
	}
	if data["price"] != float64(2.25) {
		t.Fatalf("expected price 2.25, got %v", data["price"])
	}
}

func TestProductUpdateOwnBarcode(t *testing.T) {
	app, db := setupTestApp(t)
	category := seedCategory(t, db, "Fruits")
	product := seedProduct(t, db, category, "Apple", "111", 1.00)
	seedProduct(t, db, category, "Pear", "222", 2.00)

	// Re-submitting its own barcode is fine
	status, _ := request(t, app, http.MethodPut, "/api/v1/products/"+product.ID.String(),
		`{"barcode":"111"}`)
	if status != http.StatusOK {
		t.Fatalf("expected 200 for own barcode, got %d", status)
	}

	// Another product's barcode is rejected
	status, body := request(t, app, http.MethodPut, "/api/v1/products/"+product.ID.String(),
		`{"barcode":"222"}`)
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d body=%v", status, body)
	}
}

func TestProductDelete(t *testing.T) {
	app, db := setupTestApp(t)
	category := seedCategory(t, db, "Fruits")
	product := seedProduct(t, db, category, "Apple", "", 1.00)

	status, _ := request(t, app, http.MethodDelete, "/api/v1/products/"+product.ID.String(), "")
	if status != http.StatusOK {
		t.Fatalf("expected 200 got %d", status)
	}
	var count int64
	db.Model(&model.Product{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected product deleted, count=%d", count)
	}
}

func TestProductFindByBarcode(t *testing.T) {
	app, db := setupTestApp(t)
	category := seedCategory(t, db, "Fruits")
	seedProduct(t, db, category, "Apple", "123456", 1.00)

	status, body := request(t, app, http.MethodGet, "/api/v1/products/barcode/123456", "")
	if status != http.StatusOK {
		t.Fatalf("expected 200 got %d", status)
	}
	if body["data"].(map[string]any)["name"] != "Apple" {
		t.Fatalf("expected Apple, got %v", body["data"])
	}

	// Miss is a reported outcome, not a fault
	status, body = request(t, app, http.MethodGet, "/api/v1/products/barcode/000000", "")
	if status != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", status)
	}
	if body["success"] != false {
		t.Fatalf("expected success=false on miss, got %v", body)
	}
}
