package validate

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"store_backend/constants"
	"store_backend/model"
	"store_backend/utils"
)

func CreateAddress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.AddressInput

		if err := c.BodyParser(&input); err != nil {
			return utils.HandleError(c, utils.NewValidation("", constants.ERROR_INPUT))
		}

		if err := validate.Struct(input); err != nil {
			return utils.HandleError(c, firstValidationError(err))
		}

		c.Locals("inputAddress", input)

		return c.Next()
	}
}

// UpdateAddress validates the :key id param and the body in one pass.
func UpdateAddress(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		addressId, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return utils.HandleError(c, utils.NewValidation(key, constants.DATA_INPUT_IS_NOT_NUMBER))
		}

		var input model.AddressInput
		if err := c.BodyParser(&input); err != nil {
			return utils.HandleError(c, utils.NewValidation("", constants.ERROR_INPUT))
		}

		if err := validate.Struct(input); err != nil {
			return utils.HandleError(c, firstValidationError(err))
		}

		c.Locals("inputId", addressId)
		c.Locals("inputAddress", input)

		return c.Next()
	}
}
