package validate

import (
	"github.com/gofiber/fiber/v2"

	"store_backend/constants"
	"store_backend/model"
	"store_backend/utils"
)

func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RegisterInput

		if err := c.BodyParser(&input); err != nil {
			return utils.HandleError(c, utils.NewValidation("", constants.ERROR_INPUT))
		}

		if err := validate.Struct(input); err != nil {
			return utils.HandleError(c, firstValidationError(err))
		}

		c.Locals("inputRegister", input)

		return c.Next()
	}
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.LoginInput

		if err := c.BodyParser(&input); err != nil {
			return utils.HandleError(c, utils.NewValidation("", constants.MISSING_LOGIN_INPUT))
		}

		if input.Email == "" || input.Password == "" {
			return utils.HandleError(c, utils.NewValidation("", constants.MISSING_LOGIN_INPUT))
		}

		c.Locals("inputLogin", input)

		return c.Next()
	}
}
