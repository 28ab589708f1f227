package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/localnerve/brandkit-tokens/internal/handlers"
	"github.com/localnerve/brandkit-tokens/internal/models"
	"github.com/localnerve/brandkit-tokens/internal/services"
	"github.com/localnerve/brandkit-tokens/internal/store"
	"github.com/localnerve/brandkit-tokens/internal/tokens"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// setupTestApp creates a Fiber app with token routes over an in-memory
// SQLite database and returns it with a seeded client id.
func setupTestApp(t *testing.T) (*fiber.App, string) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Client{},
		&models.DesignSystemVersion{},
		&models.DesignSystemChange{},
		&models.ClientTokens{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	clientID := uuid.NewString()
	if err := db.Create(&models.Client{
		ClientID:   clientID,
		ClientName: "Test Client",
	}).Error; err != nil {
		t.Fatalf("Failed to seed client: %v", err)
	}

	app := fiber.New()
	handler := &handlers.TokenHandler{
		Service: services.NewTokenService(store.NewGormStore(db)),
	}
	app.Get("/api/brand/:client/tokens", handler.GetTokens)
	app.Post("/api/brand/:client/tokens", handler.UpdateTokens)
	app.Get("/api/brand/:client/versions", handler.ListVersions)
	app.Get("/api/brand/:client/versions/:version/changes", handler.GetChanges)
	app.Post("/api/brand/:client/versions/:version/rollback", handler.Rollback)
	app.Post("/api/brand/:client/snapshots", handler.Snapshot)

	return app, clientID
}

func validRawTokens() map[string]interface{} {
	return map[string]interface{}{
		"typography": map[string]interface{}{
			"fontSizeBase":        1,
			"lineHeightBase":      1.5,
			"typeScaleBase":       1.25,
			"letterSpacingBase":   0,
			"fontFamilyPrimary":   "Inter, sans-serif",
			"fontFamilySecondary": "Lora, serif",
			"fontFamilyMono":      "JetBrains Mono, monospace",
		},
		"colors": map[string]interface{}{
			"brandPrimaryBase":   "#0052CC",
			"brandSecondaryBase": "#172B4D",
			"neutralBase":        "hsl(220, 15%, 50%)",
			"successBase":        "#36B37E",
			"warningBase":        "#FFAB00",
			"errorBase":          "#DE350B",
			"infoBase":           "#00B8D9",
		},
		"spacing": map[string]interface{}{
			"unitBase":  1,
			"scaleBase": 1.5,
		},
		"borders": map[string]interface{}{
			"widthBase":  1,
			"radiusBase": 8,
		},
	}
}

func postJSON(t *testing.T, app *fiber.App, url string, payload interface{}) map[string]interface{} {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("Failed to marshal payload: %v", err)
	}
	req := httptest.NewRequest("POST", url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	result["__status"] = resp.StatusCode
	return result
}

// TestUpdateAndGetTokens tests the POST then GET round trip
func TestUpdateAndGetTokens(t *testing.T) {
	app, clientID := setupTestApp(t)

	result := postJSON(t, app, "/api/brand/"+clientID+"/tokens", map[string]interface{}{
		"tokens": validRawTokens(),
	})
	if result["__status"] != 200 {
		t.Fatalf("Expected status 200, got %v: %v", result["__status"], result)
	}
	if result["ok"] != true {
		t.Error("Expected ok=true in response")
	}
	if result["newVersion"] != "1" {
		t.Errorf("Expected newVersion 1, got %v", result["newVersion"])
	}
	if result["changesCount"] != float64(18) {
		t.Errorf("Expected 18 changes, got %v", result["changesCount"])
	}

	req := httptest.NewRequest("GET", "/api/brand/"+clientID+"/tokens", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var read services.TokensResult
	if err := json.NewDecoder(resp.Body).Decode(&read); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if read.VersionNumber != 1 {
		t.Errorf("Expected version 1, got %d", read.VersionNumber)
	}

	var semantic tokens.SemanticTokens
	if err := models.FromJSON(read.SemanticTokens, &semantic); err != nil {
		t.Fatalf("Failed to decode semantic tokens: %v", err)
	}
	if semantic.Colors.BrandPrimary != "#0052CC" {
		t.Errorf("Expected brandPrimary #0052CC, got %s", semantic.Colors.BrandPrimary)
	}
}

// TestUpdateTokensValidationResponse tests the 400 with field detail
func TestUpdateTokensValidationResponse(t *testing.T) {
	app, clientID := setupTestApp(t)

	raw := validRawTokens()
	raw["typography"].(map[string]interface{})["fontSizeBase"] = 99

	result := postJSON(t, app, "/api/brand/"+clientID+"/tokens", map[string]interface{}{
		"tokens": raw,
	})
	if result["__status"] != 400 {
		t.Fatalf("Expected status 400, got %v", result["__status"])
	}
	fields, ok := result["fields"].([]interface{})
	if !ok || len(fields) != 1 {
		t.Fatalf("Expected one field violation, got %v", result["fields"])
	}
	field := fields[0].(map[string]interface{})
	if field["path"] != "typography.fontSizeBase" {
		t.Errorf("Expected typography.fontSizeBase violation, got %v", field["path"])
	}
}

// TestUpdateTokensVersionConflict tests the 409 envelope on a stale base
func TestUpdateTokensVersionConflict(t *testing.T) {
	app, clientID := setupTestApp(t)

	postJSON(t, app, "/api/brand/"+clientID+"/tokens", map[string]interface{}{
		"tokens": validRawTokens(),
	})

	raw := validRawTokens()
	raw["colors"].(map[string]interface{})["brandPrimaryBase"] = "#FF0000"
	postJSON(t, app, "/api/brand/"+clientID+"/tokens", map[string]interface{}{
		"tokens":      raw,
		"baseVersion": 1,
	})

	raw["colors"].(map[string]interface{})["brandPrimaryBase"] = "#00FF00"
	result := postJSON(t, app, "/api/brand/"+clientID+"/tokens", map[string]interface{}{
		"tokens":      raw,
		"baseVersion": "1", // stale, and as a string like portal clients send it
	})
	if result["__status"] != 409 {
		t.Fatalf("Expected status 409, got %v", result["__status"])
	}
	if result["versionError"] != true {
		t.Error("Expected versionError=true in response")
	}
}

// TestListVersionsAndChanges tests history and change listing routes
func TestListVersionsAndChanges(t *testing.T) {
	app, clientID := setupTestApp(t)

	postJSON(t, app, "/api/brand/"+clientID+"/tokens", map[string]interface{}{
		"tokens": validRawTokens(),
	})
	raw := validRawTokens()
	raw["borders"].(map[string]interface{})["radiusBase"] = 12
	update := postJSON(t, app, "/api/brand/"+clientID+"/tokens", map[string]interface{}{
		"tokens": raw,
	})

	req := httptest.NewRequest("GET", "/api/brand/"+clientID+"/versions?limit=10", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	var list map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if list["total"] != float64(2) {
		t.Errorf("Expected total 2, got %v", list["total"])
	}
	versions := list["versions"].([]interface{})
	first := versions[0].(map[string]interface{})
	if first["versionNumber"] != float64(2) {
		t.Errorf("Expected newest version first, got %v", first["versionNumber"])
	}

	versionID := update["versionId"].(string)
	req = httptest.NewRequest("GET", "/api/brand/"+clientID+"/versions/"+versionID+"/changes", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	var changes map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&changes); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	changeList := changes["changes"].([]interface{})
	if len(changeList) != 1 {
		t.Fatalf("Expected 1 change record, got %d", len(changeList))
	}
	change := changeList[0].(map[string]interface{})
	if change["fieldPath"] != "borders.radiusBase" {
		t.Errorf("Expected borders.radiusBase, got %v", change["fieldPath"])
	}
}

// TestRollbackRoute tests the rollback endpoint
func TestRollbackRoute(t *testing.T) {
	app, clientID := setupTestApp(t)

	first := postJSON(t, app, "/api/brand/"+clientID+"/tokens", map[string]interface{}{
		"tokens": validRawTokens(),
	})
	raw := validRawTokens()
	raw["spacing"].(map[string]interface{})["unitBase"] = 0.5
	postJSON(t, app, "/api/brand/"+clientID+"/tokens", map[string]interface{}{
		"tokens": raw,
	})

	versionID := first["versionId"].(string)
	result := postJSON(t, app, "/api/brand/"+clientID+"/versions/"+versionID+"/rollback", map[string]interface{}{})
	if result["__status"] != 200 {
		t.Fatalf("Expected status 200, got %v: %v", result["__status"], result)
	}
	if result["newVersion"] != "3" {
		t.Errorf("Expected newVersion 3, got %v", result["newVersion"])
	}

	// Rolling back to an unknown version is a 404
	result = postJSON(t, app, "/api/brand/"+clientID+"/versions/"+uuid.NewString()+"/rollback", map[string]interface{}{})
	if result["__status"] != 404 {
		t.Errorf("Expected status 404, got %v", result["__status"])
	}
}

// TestSnapshotRoute tests the snapshot endpoint
func TestSnapshotRoute(t *testing.T) {
	app, clientID := setupTestApp(t)

	postJSON(t, app, "/api/brand/"+clientID+"/tokens", map[string]interface{}{
		"tokens": validRawTokens(),
	})

	result := postJSON(t, app, "/api/brand/"+clientID+"/snapshots", map[string]interface{}{
		"label": "Q3 launch",
	})
	if result["__status"] != 200 {
		t.Fatalf("Expected status 200, got %v: %v", result["__status"], result)
	}
	if result["newVersion"] != "2" {
		t.Errorf("Expected newVersion 2, got %v", result["newVersion"])
	}

	// A label is required
	result = postJSON(t, app, "/api/brand/"+clientID+"/snapshots", map[string]interface{}{})
	if result["__status"] != 400 {
		t.Errorf("Expected status 400 for missing label, got %v", result["__status"])
	}
}

// TestNotFound tests 404 responses for unknown clients
func TestNotFound(t *testing.T) {
	app, _ := setupTestApp(t)

	req := httptest.NewRequest("GET", "/api/brand/"+uuid.NewString()+"/tokens", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 404 {
		t.Errorf("Expected status 404, got %d", resp.StatusCode)
	}
}
