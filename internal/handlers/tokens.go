// tokens.go
//
// Design token derivation and versioning service for the brandkit brand guidelines portal
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of brandkit-tokens.
// brandkit-tokens is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// brandkit-tokens is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with brandkit-tokens.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/brandkit-tokens/internal/services"
	"github.com/localnerve/brandkit-tokens/internal/store"
	"github.com/localnerve/brandkit-tokens/internal/tokens"
	"github.com/localnerve/brandkit-tokens/internal/types"
	"github.com/localnerve/brandkit-tokens/internal/utils"
)

// TokenHandler handles brand token routes
type TokenHandler struct {
	Service *services.TokenService
}

// GetTokens handles GET /api/brand/:client/tokens
// @Summary Get brand tokens
// @Description Get the current raw and semantic tokens of a client, or a specific version via ?version=
// @Tags BrandTokens
// @Accept json
// @Produce json
// @Param client path string true "Client ID"
// @Param version query string false "Version ID to pin the read to"
// @Success 200 {object} services.TokensResult
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /brand/{client}/tokens [get]
func (h *TokenHandler) GetTokens(c *fiber.Ctx) error {
	clientID := c.Params("client")
	versionID := c.Query("version")

	result, err := h.Service.GetTokens(clientID, versionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.NotFoundResponse(c, fmt.Sprintf("No tokens found for client '%s'", clientID))
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "getTokens")
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// UpdateTokens handles POST /api/brand/:client/tokens
// @Summary Update brand tokens
// @Description Validate and persist a new token version derived from the submitted raw tokens
// @Tags BrandTokens
// @Accept json
// @Produce json
// @Param client path string true "Client ID"
// @Param body body object true "Raw tokens with optional baseVersion, description, syncOrigin"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ValidationErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /brand/{client}/tokens [post]
func (h *TokenHandler) UpdateTokens(c *fiber.Ctx) error {
	clientID := c.Params("client")

	var body struct {
		Tokens      *tokens.RawTokens `json:"tokens"`
		Source      string            `json:"source"`
		BaseVersion *types.FlexUint64 `json:"baseVersion"`
		VersionName *string           `json:"versionName"`
		Description *string           `json:"description"`
		SyncOrigin  *string           `json:"syncOrigin"`
	}

	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "data.validation.input")
	}
	if clientID == "" || body.Tokens == nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "data.validation.input")
	}
	if body.Source != "" && !services.ValidSource(body.Source) {
		return utils.ErrorResponse(c, fmt.Sprintf("Unknown change source '%s'", body.Source),
			fiber.StatusBadRequest, "data.validation.input")
	}

	input := services.UpdateInput{
		ClientID:    clientID,
		UserID:      currentUserID(c),
		Raw:         *body.Tokens,
		Source:      body.Source,
		VersionName: body.VersionName,
		Description: body.Description,
		SyncOrigin:  body.SyncOrigin,
	}
	if body.BaseVersion != nil {
		base := body.BaseVersion.Uint64()
		input.BaseVersion = &base
	}

	result, err := h.Service.UpdateTokens(input)
	if err != nil {
		var verr *tokens.ValidationError
		switch {
		case errors.As(err, &verr):
			return utils.ValidationErrorResponse(c, verr)
		case errors.Is(err, store.ErrVersionConflict):
			return utils.VersionErrorResponse(c)
		case errors.Is(err, store.ErrNotFound):
			return utils.NotFoundResponse(c, fmt.Sprintf("Client '%s' not found", clientID))
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "updateTokens")
	}

	return utils.TokenMutationResponse(c, result.Version.VersionID, result.Version.VersionNumber,
		result.ChangesCount, result.Summary, result.Warning)
}

// ListVersions handles GET /api/brand/:client/versions
// @Summary List token versions
// @Description List the version history of a client, newest first
// @Tags BrandTokens
// @Accept json
// @Produce json
// @Param client path string true "Client ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /brand/{client}/versions [get]
func (h *TokenHandler) ListVersions(c *fiber.Ctx) error {
	clientID := c.Params("client")
	limit, offset := parsePagination(c)

	versions, total, err := h.Service.ListVersions(clientID, limit, offset)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.NotFoundResponse(c, fmt.Sprintf("Client '%s' not found", clientID))
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "listVersions")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"versions": versions,
		"total":    total,
		"limit":    limit,
		"offset":   offset,
	})
}

// GetChanges handles GET /api/brand/:client/versions/:version/changes
// @Summary Get version changes
// @Description Get the field-level change records of one version
// @Tags BrandTokens
// @Accept json
// @Produce json
// @Param client path string true "Client ID"
// @Param version path string true "Version ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /brand/{client}/versions/{version}/changes [get]
func (h *TokenHandler) GetChanges(c *fiber.Ctx) error {
	clientID := c.Params("client")
	versionID := c.Params("version")

	changes, err := h.Service.GetChanges(clientID, versionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.NotFoundResponse(c, fmt.Sprintf("Version '%s' not found for client '%s'", versionID, clientID))
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "getChanges")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"versionId": versionID,
		"changes":   changes,
	})
}

// Rollback handles POST /api/brand/:client/versions/:version/rollback
// @Summary Roll back to a version
// @Description Append a new version carrying the target version's tokens forward
// @Tags BrandTokens
// @Accept json
// @Produce json
// @Param client path string true "Client ID"
// @Param version path string true "Version ID to roll back to"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /brand/{client}/versions/{version}/rollback [post]
func (h *TokenHandler) Rollback(c *fiber.Ctx) error {
	clientID := c.Params("client")
	versionID := c.Params("version")

	result, err := h.Service.Rollback(clientID, versionID, currentUserID(c))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.NotFoundResponse(c, fmt.Sprintf("Version '%s' not found for client '%s'", versionID, clientID))
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "rollback")
	}

	return utils.TokenMutationResponse(c, result.Version.VersionID, result.Version.VersionNumber,
		result.ChangesCount, result.Summary, result.Warning)
}

// Snapshot handles POST /api/brand/:client/snapshots
// @Summary Snapshot current tokens
// @Description Label the client's current tokens as a named version
// @Tags BrandTokens
// @Accept json
// @Produce json
// @Param client path string true "Client ID"
// @Param body body object true "Snapshot label"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /brand/{client}/snapshots [post]
func (h *TokenHandler) Snapshot(c *fiber.Ctx) error {
	clientID := c.Params("client")

	var body struct {
		Label       string  `json:"label"`
		Description *string `json:"description"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "data.validation.input")
	}
	if body.Label == "" {
		return utils.ErrorResponse(c, "A snapshot label is required", fiber.StatusBadRequest, "data.validation.input")
	}

	result, err := h.Service.Snapshot(clientID, currentUserID(c), body.Label, body.Description)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.NotFoundResponse(c, fmt.Sprintf("No tokens found for client '%s'", clientID))
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "snapshot")
	}

	return utils.TokenMutationResponse(c, result.Version.VersionID, result.Version.VersionNumber,
		result.ChangesCount, result.Summary, result.Warning)
}
