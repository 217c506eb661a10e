package api

import (
	"fmt"
	"net/http"
	"testing"

	"csrhub/internal/models"
)

func TestActivityCreateRecordsCreator(t *testing.T) {
	app, database := newTestApp(t)
	admin := createTestUser(t, database, "Admin", "admin@example.com", "Password1", models.StatusActive)
	authCookie := loginAndExtractAuthCookie(t, app, "admin@example.com", "Password1")
	category := createTestCategory(t, database, "Education")
	program := createTestProgram(t, database, "School Renovation", admin, category.ID)

	body := fmt.Sprintf(`{"name":"Site visit","program_id":%d,"cost":150,"date":"2026-02-14"}`, program.ID)
	request := jsonRequest(t, http.MethodPost, "/api/activities", body, authCookie)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("create activity failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", response.StatusCode)
	}
	created := decodeJSONBody(t, response.Body)
	if created["status"] != models.ActivityStatusPlanned {
		t.Fatalf("expected planned default status, got %v", created["status"])
	}

	var stored models.Activity
	if err := database.Where("name = ?", "Site visit").First(&stored).Error; err != nil {
		t.Fatalf("load activity: %v", err)
	}
	if stored.CreatedByID != admin.ID {
		t.Fatalf("expected requesting user as creator, got %d", stored.CreatedByID)
	}
	if stored.Date == nil {
		t.Fatal("expected parsed date")
	}
}

func TestActivityCreateUnknownProgramRejected(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "Admin", "admin@example.com", "Password1", models.StatusActive)
	authCookie := loginAndExtractAuthCookie(t, app, "admin@example.com", "Password1")

	request := jsonRequest(t, http.MethodPost, "/api/activities",
		`{"name":"Orphan","program_id":9999}`, authCookie)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("create activity failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400 for unknown program, got %d", response.StatusCode)
	}
	if message := readAPIError(t, response.Body); message != "Program not found" {
		t.Fatalf("unexpected error message %q", message)
	}
}

func TestActivityNegativeCostRejected(t *testing.T) {
	app, database := newTestApp(t)
	admin := createTestUser(t, database, "Admin", "admin@example.com", "Password1", models.StatusActive)
	authCookie := loginAndExtractAuthCookie(t, app, "admin@example.com", "Password1")
	category := createTestCategory(t, database, "Education")
	program := createTestProgram(t, database, "School Renovation", admin, category.ID)

	body := fmt.Sprintf(`{"name":"Site visit","program_id":%d,"cost":-5}`, program.ID)
	request := jsonRequest(t, http.MethodPost, "/api/activities", body, authCookie)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("create activity failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400 for negative cost, got %d", response.StatusCode)
	}
}

func TestActivityUpdateStatus(t *testing.T) {
	app, database := newTestApp(t)
	admin := createTestUser(t, database, "Admin", "admin@example.com", "Password1", models.StatusActive)
	authCookie := loginAndExtractAuthCookie(t, app, "admin@example.com", "Password1")
	category := createTestCategory(t, database, "Education")
	program := createTestProgram(t, database, "School Renovation", admin, category.ID)

	activity := models.Activity{
		Name:        "Site visit",
		ProgramID:   program.ID,
		CreatedByID: admin.ID,
		Status:      models.ActivityStatusPlanned,
	}
	if err := database.Create(&activity).Error; err != nil {
		t.Fatalf("create activity: %v", err)
	}

	body := fmt.Sprintf(`{"name":"Site visit","program_id":%d,"status":"completed","cost":180}`, program.ID)
	request := jsonRequest(t, http.MethodPut, fmt.Sprintf("/api/activities/%d", activity.ID), body, authCookie)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("update activity failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	var stored models.Activity
	if err := database.First(&stored, activity.ID).Error; err != nil {
		t.Fatalf("reload activity: %v", err)
	}
	if stored.Status != models.ActivityStatusCompleted || stored.Cost != 180 {
		t.Fatalf("expected applied update, got status %q cost %v", stored.Status, stored.Cost)
	}
	if stored.CreatedByID != admin.ID {
		t.Fatal("updates must not reassign the creator")
	}
}

func TestActivityDelete(t *testing.T) {
	app, database := newTestApp(t)
	admin := createTestUser(t, database, "Admin", "admin@example.com", "Password1", models.StatusActive)
	authCookie := loginAndExtractAuthCookie(t, app, "admin@example.com", "Password1")
	category := createTestCategory(t, database, "Education")
	program := createTestProgram(t, database, "School Renovation", admin, category.ID)

	activity := models.Activity{
		Name:        "Site visit",
		ProgramID:   program.ID,
		CreatedByID: admin.ID,
		Status:      models.ActivityStatusPlanned,
	}
	if err := database.Create(&activity).Error; err != nil {
		t.Fatalf("create activity: %v", err)
	}

	request := jsonRequest(t, http.MethodDelete, fmt.Sprintf("/api/activities/%d", activity.ID), "", authCookie)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("delete activity failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	var count int64
	if err := database.Model(&models.Activity{}).Where("id = ?", activity.ID).Count(&count).Error; err != nil {
		t.Fatalf("count activities: %v", err)
	}
	if count != 0 {
		t.Fatal("expected record to be removed")
	}
}
