package api

import (
	"fmt"
	"net/http"
	"testing"

	"gorm.io/gorm"

	"csrhub/internal/models"
)

func createTestStakeholderCategory(t *testing.T, database *gorm.DB, name string) models.StakeholderCategory {
	t.Helper()

	category := models.StakeholderCategory{Name: name}
	if err := database.Create(&category).Error; err != nil {
		t.Fatalf("create stakeholder category: %v", err)
	}
	return category
}

func TestStakeholderCreateAssignsOwner(t *testing.T) {
	app, database := newTestApp(t)
	admin := createTestUser(t, database, "Admin", "admin@example.com", "Password1", models.StatusActive)
	authCookie := loginAndExtractAuthCookie(t, app, "admin@example.com", "Password1")
	category := createTestStakeholderCategory(t, database, "NGO")

	body := fmt.Sprintf(`{"name":"Green Earth","stakeholder_category_id":%d,"email":"info@greenearth.org"}`, category.ID)
	request := jsonRequest(t, http.MethodPost, "/api/stakeholders", body, authCookie)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("create stakeholder failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", response.StatusCode)
	}

	var stored models.Stakeholder
	if err := database.Where("name = ?", "Green Earth").First(&stored).Error; err != nil {
		t.Fatalf("load stakeholder: %v", err)
	}
	if stored.OwnerID != admin.ID {
		t.Fatalf("expected requesting user as owner, got %d", stored.OwnerID)
	}
}

func TestStakeholderDuplicateNameRejected(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "Admin", "admin@example.com", "Password1", models.StatusActive)
	authCookie := loginAndExtractAuthCookie(t, app, "admin@example.com", "Password1")
	category := createTestStakeholderCategory(t, database, "NGO")

	body := fmt.Sprintf(`{"name":"Green Earth","stakeholder_category_id":%d}`, category.ID)
	first := jsonRequest(t, http.MethodPost, "/api/stakeholders", body, authCookie)
	firstResponse, err := app.Test(first, -1)
	if err != nil {
		t.Fatalf("create stakeholder failed: %v", err)
	}
	firstResponse.Body.Close()
	if firstResponse.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", firstResponse.StatusCode)
	}

	duplicate := jsonRequest(t, http.MethodPost, "/api/stakeholders",
		fmt.Sprintf(`{"name":"  green earth ","stakeholder_category_id":%d}`, category.ID), authCookie)
	response, err := app.Test(duplicate, -1)
	if err != nil {
		t.Fatalf("create duplicate stakeholder failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400 for duplicate name, got %d", response.StatusCode)
	}
	if message := readAPIError(t, response.Body); message != "Stakeholder name already exists" {
		t.Fatalf("unexpected error message %q", message)
	}
}

func TestStakeholderUnknownCategoryRejected(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "Admin", "admin@example.com", "Password1", models.StatusActive)
	authCookie := loginAndExtractAuthCookie(t, app, "admin@example.com", "Password1")

	request := jsonRequest(t, http.MethodPost, "/api/stakeholders",
		`{"name":"Green Earth","stakeholder_category_id":9999}`, authCookie)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("create stakeholder failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400 for unknown category, got %d", response.StatusCode)
	}
	if message := readAPIError(t, response.Body); message != "Stakeholder category not found" {
		t.Fatalf("unexpected error message %q", message)
	}
}

func TestStakeholderInvalidEmailRejected(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "Admin", "admin@example.com", "Password1", models.StatusActive)
	authCookie := loginAndExtractAuthCookie(t, app, "admin@example.com", "Password1")
	category := createTestStakeholderCategory(t, database, "NGO")

	body := fmt.Sprintf(`{"name":"Green Earth","stakeholder_category_id":%d,"email":"not-an-email"}`, category.ID)
	request := jsonRequest(t, http.MethodPost, "/api/stakeholders", body, authCookie)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("create stakeholder failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400 for invalid email, got %d", response.StatusCode)
	}
}

func TestStakeholderDelete(t *testing.T) {
	app, database := newTestApp(t)
	admin := createTestUser(t, database, "Admin", "admin@example.com", "Password1", models.StatusActive)
	authCookie := loginAndExtractAuthCookie(t, app, "admin@example.com", "Password1")
	category := createTestStakeholderCategory(t, database, "NGO")

	stakeholder := models.Stakeholder{
		Name:                  "Green Earth",
		StakeholderCategoryID: category.ID,
		OwnerID:               admin.ID,
	}
	if err := database.Create(&stakeholder).Error; err != nil {
		t.Fatalf("create stakeholder: %v", err)
	}

	request := jsonRequest(t, http.MethodDelete, fmt.Sprintf("/api/stakeholders/%d", stakeholder.ID), "", authCookie)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("delete stakeholder failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	var count int64
	if err := database.Model(&models.Stakeholder{}).Where("id = ?", stakeholder.ID).Count(&count).Error; err != nil {
		t.Fatalf("count stakeholders: %v", err)
	}
	if count != 0 {
		t.Fatal("expected record to be removed")
	}
}
