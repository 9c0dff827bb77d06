package middleware

import (
	"github.com/gofiber/fiber/v2"

	"store_backend/constants"
	"store_backend/session"
	"store_backend/utils"
)

// RequireSession resolves the sid cookie against the session store and puts
// the session in Locals. Requests without a live session get a 401.
func RequireSession(store session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies(constants.SESSION_COOKIE)
		if sid == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED)
		}

		sess, err := store.Get(c.Context(), sid)
		if err != nil {
			return utils.HandleError(c, utils.NewUnexpected(constants.ERROR_INTERNAL_ERROR, err))
		}
		if sess == nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED)
		}

		c.Locals("session", sess)
		return c.Next()
	}
}

// RequireAdmin must run after RequireSession.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := GetSession(c)
		if sess == nil || sess.Role != constants.ROLE_ADMIN {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ADMIN_ONLY)
		}
		return c.Next()
	}
}

func GetSession(c *fiber.Ctx) *session.Session {
	sess, _ := c.Locals("session").(*session.Session)
	return sess
}
