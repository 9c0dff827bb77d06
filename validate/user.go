package validate

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"store_backend/constants"
	"store_backend/helper"
	"store_backend/model"
	"store_backend/utils"
)

func CreateAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateAdminInput

		if err := c.BodyParser(&input); err != nil {
			return utils.HandleError(c, utils.NewValidation("", constants.ERROR_INPUT))
		}

		if err := validate.Struct(input); err != nil {
			return utils.HandleError(c, firstValidationError(err))
		}
		if !helper.ValidEmail(input.Email) {
			return utils.HandleError(c, utils.NewValidation("email", constants.ERROR_INPUT+": email"))
		}

		if input.Role == "" {
			input.Role = constants.ROLE_ADMIN
		}
		if input.Role != constants.ROLE_ADMIN && input.Role != constants.ROLE_USER {
			return utils.HandleError(c, utils.NewValidation("role", constants.ERROR_INPUT+": role"))
		}

		c.Locals("inputCreateAdmin", input)

		return c.Next()
	}
}

func UpdateAdmin(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		adminId, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return utils.HandleError(c, utils.NewValidation(key, constants.DATA_INPUT_IS_NOT_NUMBER))
		}

		var input model.UpdateAdminInput
		if err := c.BodyParser(&input); err != nil {
			return utils.HandleError(c, utils.NewValidation("", constants.ERROR_INPUT))
		}

		if err := validate.Struct(input); err != nil {
			return utils.HandleError(c, firstValidationError(err))
		}
		if input.Email != nil && !helper.ValidEmail(*input.Email) {
			return utils.HandleError(c, utils.NewValidation("email", constants.ERROR_INPUT+": email"))
		}
		if input.Role != nil && *input.Role != constants.ROLE_ADMIN && *input.Role != constants.ROLE_USER {
			return utils.HandleError(c, utils.NewValidation("role", constants.ERROR_INPUT+": role"))
		}

		c.Locals("inputId", adminId)
		c.Locals("inputUpdateAdmin", input)

		return c.Next()
	}
}
