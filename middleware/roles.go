package middleware

import (
	"educareer/database"
	"educareer/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RequireRoles returns a middleware that checks the authenticated user holds
// one of the given roles. The role is re-read from the database rather than
// trusted from the token, so role changes take effect before token expiry.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized: User ID not found", nil)
		}

		var user models.UserAccount
		err := database.Database.Db.Where("id = ? AND role IN ? AND is_deleted = false", userID, roles).First(&user).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
			}
			return JsonResponse(c, fiber.StatusInternalServerError, false, "Server error while checking permissions!", nil)
		}

		c.Locals("userRole", user.Role)
		return c.Next()
	}
}
