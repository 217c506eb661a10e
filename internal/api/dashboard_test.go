package api

import (
	"net/http"
	"testing"

	"csrhub/internal/models"
)

func TestDashboardSummaryAggregates(t *testing.T) {
	app, database := newTestApp(t)
	admin := createTestUser(t, database, "Admin", "admin@example.com", "Password1", models.StatusActive)
	authCookie := loginAndExtractAuthCookie(t, app, "admin@example.com", "Password1")

	category := createTestCategory(t, database, "Education")
	active := createTestProgram(t, database, "School Renovation", admin, category.ID)
	completed := createTestProgram(t, database, "Library Drive", admin, category.ID)
	if err := database.Model(&models.Program{}).Where("id = ?", completed.ID).
		Update("status", models.ProgramStatusCompleted).Error; err != nil {
		t.Fatalf("complete program: %v", err)
	}

	activity := models.Activity{
		Name:        "Site visit",
		ProgramID:   active.ID,
		CreatedByID: admin.ID,
		Status:      models.ActivityStatusPlanned,
	}
	if err := database.Create(&activity).Error; err != nil {
		t.Fatalf("create activity: %v", err)
	}

	line := models.BudgetLine{
		ProgramID:    active.ID,
		DepartmentID: admin.DepartmentID,
		FiscalYear:   2026,
		Amount:       10000,
		SpentAmount:  2500,
	}
	if err := database.Create(&line).Error; err != nil {
		t.Fatalf("create budget line: %v", err)
	}

	request := jsonRequest(t, http.MethodGet, "/api/dashboard/summary", "", authCookie)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("get summary failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	payload := decodeJSONBody(t, response.Body)
	data, ok := payload["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %v", payload)
	}

	programs, _ := data["programs"].(map[string]any)
	if total, _ := programs["total"].(float64); total != 2 {
		t.Fatalf("expected 2 programs, got %v", programs["total"])
	}
	if active, _ := programs["active"].(float64); active != 1 {
		t.Fatalf("expected 1 active program, got %v", programs["active"])
	}
	if completed, _ := programs["completed"].(float64); completed != 1 {
		t.Fatalf("expected 1 completed program, got %v", programs["completed"])
	}

	if activities, _ := data["activities"].(float64); activities != 1 {
		t.Fatalf("expected 1 activity, got %v", data["activities"])
	}
	if users, _ := data["users"].(float64); users != 1 {
		t.Fatalf("expected 1 user, got %v", data["users"])
	}

	budget, _ := data["budget"].(map[string]any)
	if allocated, _ := budget["allocated"].(float64); allocated != 10000 {
		t.Fatalf("expected allocated 10000, got %v", budget["allocated"])
	}
	if spent, _ := budget["spent"].(float64); spent != 2500 {
		t.Fatalf("expected spent 2500, got %v", budget["spent"])
	}
	if utilization, _ := budget["utilization"].(float64); utilization != 25 {
		t.Fatalf("expected utilization 25, got %v", budget["utilization"])
	}

	byDepartment, _ := data["programs_by_department"].([]any)
	if len(byDepartment) != 1 {
		t.Fatalf("expected one department bucket, got %v", data["programs_by_department"])
	}
	bucket, _ := byDepartment[0].(map[string]any)
	if count, _ := bucket["count"].(float64); count != 2 {
		t.Fatalf("expected 2 programs in the bucket, got %v", bucket["count"])
	}
}

func TestDashboardSummaryEmptyDatabase(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "Admin", "admin@example.com", "Password1", models.StatusActive)
	authCookie := loginAndExtractAuthCookie(t, app, "admin@example.com", "Password1")

	request := jsonRequest(t, http.MethodGet, "/api/dashboard/summary", "", authCookie)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("get summary failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	payload := decodeJSONBody(t, response.Body)
	data, ok := payload["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %v", payload)
	}

	budget, _ := data["budget"].(map[string]any)
	if utilization, _ := budget["utilization"].(float64); utilization != 0 {
		t.Fatalf("zero allocation must report zero utilization, got %v", budget["utilization"])
	}
}
