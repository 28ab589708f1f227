// common.go
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
	"strconv"

	"github.com/authorizerdev/authorizer-go"
	"github.com/gofiber/fiber/v2"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// parsePagination extracts limit and offset query parameters with defaults
// and an upper bound on page size.
func parsePagination(c *fiber.Ctx) (limit, offset int) {
	limit = defaultPageLimit
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			offset = n
		}
	}

	return limit, offset
}

// currentUserID reads the authenticated user id placed in locals by the auth
// middleware. Unauthenticated test setups fall back to an empty id.
func currentUserID(c *fiber.Ctx) string {
	switch user := c.Locals("user").(type) {
	case *authorizer.User:
		if user != nil {
			return user.ID
		}
	case map[string]interface{}:
		if id, ok := user["id"].(string); ok {
			return id
		}
	}
	return ""
}
