package handler

import (
	"fmt"
	"net/http"
	"testing"

	"grocery-api/internal/model"

	"github.com/google/uuid"
)

func TestCategoryCreate(t *testing.T) {
	app, db := setupTestApp(t)

	status, body := request(t, app, http.MethodPost, "/api/v1/categories",
		`{"name":"Fruits","description":"Fresh fruit"}`)
	if status != http.StatusCreated {
		t.Fatalf("expected 201 got %d body=%v", status, body)
	}
	if body["success"] != true {
		t.Fatalf("expected success=true, got %v", body)
	}
	data := body["data"].(map[string]any)
	if data["name"] != "Fruits" {
		t.Fatalf("expected name Fruits, got %v", data["name"])
	}

	var count int64
	db.Model(&model.Category{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 category persisted, got %d", count)
	}
}

func TestCategoryCreateValidation(t *testing.T) {
	app, _ := setupTestApp(t)

	// Missing name
	status, body := request(t, app, http.MethodPost, "/api/v1/categories", `{"description":"x"}`)
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d", status)
	}
	errs := body["errors"].(map[string]any)
	if _, ok := errs["name"]; !ok {
		t.Fatalf("expected field error on name, got %v", errs)
	}

	// Duplicate name
	request(t, app, http.MethodPost, "/api/v1/categories", `{"name":"Dairy"}`)
	status, body = request(t, app, http.MethodPost, "/api/v1/categories", `{"name":"Dairy"}`)
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for duplicate name got %d body=%v", status, body)
	}
}

func TestCategoryListSearchAndCount(t *testing.T) {
	app, db := setupTestApp(t)

	fruits := seedCategory(t, db, "Fruits")
	seedCategory(t, db, "Vegetables")
	seedProduct(t, db, fruits, "Apple", "", 1.50)
	seedProduct(t, db, fruits, "Banana", "", 0.75)

	status, body := request(t, app, http.MethodGet, "/api/v1/categories?search=fru", "")
	if status != http.StatusOK {
		t.Fatalf("expected 200 got %d", status)
	}
	data := body["data"].([]any)
	if len(data) != 1 {
		t.Fatalf("expected 1 match for 'fru', got %d", len(data))
	}
	match := data[0].(map[string]any)
	if match["name"] != "Fruits" {
		t.Fatalf("expected Fruits, got %v", match["name"])
	}
	if match["product_count"] != float64(2) {
		t.Fatalf("expected product_count 2, got %v", match["product_count"])
	}
}

func TestCategoryListOrderedByName(t *testing.T) {
	app, db := setupTestApp(t)

	seedCategory(t, db, "Snacks")
	seedCategory(t, db, "Bakery")
	seedCategory(t, db, "Dairy")

	_, body := request(t, app, http.MethodGet, "/api/v1/categories", "")
	data := body["data"].([]any)
	var names []string
	for _, item := range data {
		names = append(names, item.(map[string]any)["name"].(string))
	}
	want := []string{"Bakery", "Dairy", "Snacks"}
	for i, name := range want {
		if names[i] != name {
			t.Fatalf("expected order %v, got %v", want, names)
		}
	}
}

func TestCategoryShowNotFound(t *testing.T) {
	app, _ := setupTestApp(t)

	status, body := request(t, app, http.MethodGet, "/api/v1/categories/"+uuid.NewString(), "")
	if status != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", status)
	}
	if body["success"] != false {
		t.Fatalf("expected success=false, got %v", body)
	}
}

func TestCategoryUpdateKeepsOwnName(t *testing.T) {
	app, db := setupTestApp(t)

	category := seedCategory(t, db, "Fruits")
	seedCategory(t, db, "Dairy")

	// Re-submitting the current name must pass the uniqueness check
	status, _ := request(t, app, http.MethodPut, "/api/v1/categories/"+category.ID.String(),
		`{"name":"Fruits","description":"updated"}`)
	if status != http.StatusOK {
		t.Fatalf("expected 200 got %d", status)
	}

	// Taking another category's name must not
	status, _ = request(t, app, http.MethodPut, "/api/v1/categories/"+category.ID.String(),
		`{"name":"Dairy"}`)
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d", status)
	}
}

func TestCategoryDeleteGuard(t *testing.T) {
	app, db := setupTestApp(t)

	category := seedCategory(t, db, "Fruits")
	product := seedProduct(t, db, category, "Apple", "", 1.00)

	url := "/api/v1/categories/" + category.ID.String()
	status, body := request(t, app, http.MethodDelete, url, "")
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for non-empty category, got %d", status)
	}
	if body["message"] != "Cannot delete category with existing products" {
		t.Fatalf("unexpected message: %v", body["message"])
	}

	// Category must survive the rejected delete
	var count int64
	db.Model(&model.Category{}).Where("id = ?", category.ID).Count(&count)
	if count != 1 {
		t.Fatalf("category was deleted despite guard")
	}

	// Once empty, the delete goes through
	if err := db.Delete(&model.Product{}, "id = ?", product.ID).Error; err != nil {
		t.Fatalf("remove product: %v", err)
	}
	status, _ = request(t, app, http.MethodDelete, url, "")
	if status != http.StatusOK {
		t.Fatalf("expected 200 after products removed, got %d", status)
	}
	db.Model(&model.Category{}).Where("id = ?", category.ID).Count(&count)
	if count != 0 {
		t.Fatalf("category still present after delete")
	}
}

func TestCategoryInvalidID(t *testing.T) {
	app, _ := setupTestApp(t)

	status, _ := request(t, app, http.MethodGet, "/api/v1/categories/not-a-uuid", "")
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", status)
	}
}

func TestCategoryNameLength(t *testing.T) {
	app, _ := setupTestApp(t)

	long := ""
	for i := 0; i < 26; i++ {
		long += "0123456789"
	}
	status, body := request(t, app, http.MethodPost, "/api/v1/categories",
		fmt.Sprintf(`{"name":%q}`, long))
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for 260-char name, got %d body=%v", status, body)
	}
}
