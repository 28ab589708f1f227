package utils

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/brandkit-tokens/internal/tokens"
)

// SuccessResponse sends a standard success response
func SuccessResponse(c *fiber.Ctx, data interface{}, status int) error {
	return c.Status(status).JSON(data)
}

// ErrorResponse sends a standard error response matching the portal format
func ErrorResponse(c *fiber.Ctx, message string, status int, errorType string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":    status,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}

// VersionErrorResponse sends a version conflict error (409)
func VersionErrorResponse(c *fiber.Ctx) error {
	return c.Status(fiber.StatusConflict).JSON(fiber.Map{
		"status":       fiber.StatusConflict,
		"message":      "E_VERSION - Refresh and reconcile with current version and retry.",
		"ok":           false,
		"versionError": true,
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
		"url":          c.OriginalURL(),
		"type":         "version",
	})
}

// NotFoundResponse sends a 404 not found response
func NotFoundResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"status":    fiber.StatusNotFound,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
	})
}

// ValidationErrorResponse sends a 400 listing every failed field
func ValidationErrorResponse(c *fiber.Ctx, verr *tokens.ValidationError) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"status":    fiber.StatusBadRequest,
		"message":   verr.Error(),
		"ok":        false,
		"fields":    verr.Fields,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      "data.validation.tokens",
	})
}

// TokenMutationResponse sends a success response for version-creating
// mutations (update, rollback, snapshot)
func TokenMutationResponse(c *fiber.Ctx, versionID string, versionNumber uint64, changesCount int, summary, warning string) error {
	body := fiber.Map{
		"message":        "Success",
		"ok":             true,
		"versionId":      versionID,
		"newVersion":     fmt.Sprintf("%d", versionNumber),
		"changesCount":   changesCount,
		"changesSummary": summary,
		"timestamp":      time.Now().UTC().Format(time.RFC3339),
	}
	if warning != "" {
		body["warning"] = warning
	}
	return c.Status(fiber.StatusOK).JSON(body)
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Status       int    `json:"status"`
	Message      string `json:"message"`
	Ok           bool   `json:"ok"`
	Timestamp    string `json:"timestamp"`
	URL          string `json:"url"`
	Type         string `json:"type,omitempty"`
	VersionError bool   `json:"versionError,omitempty"`
}

// ValidationErrorResponseStruct defines the schema for validation failures
type ValidationErrorResponseStruct struct {
	Status    int                 `json:"status"`
	Message   string              `json:"message"`
	Ok        bool                `json:"ok"`
	Fields    []tokens.FieldError `json:"fields"`
	Timestamp string              `json:"timestamp"`
	URL       string              `json:"url"`
	Type      string              `json:"type"`
}

// SuccessResponseStruct defines the schema for mutation success responses
type SuccessResponseStruct struct {
	Message        string `json:"message"`
	Ok             bool   `json:"ok"`
	VersionID      string `json:"versionId"`
	NewVersion     string `json:"newVersion"`
	ChangesCount   int    `json:"changesCount"`
	ChangesSummary string `json:"changesSummary"`
	Timestamp      string `json:"timestamp"`
	Warning        string `json:"warning,omitempty"`
}
