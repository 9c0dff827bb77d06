package validate

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"store_backend/constants"
	"store_backend/utils"
)

var validate = validator.New()

// GetById parses the :key route param into an int and stores it in Locals.
func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.HandleError(c, utils.NewValidation(key, constants.DATA_INPUT_IS_NOT_NUMBER))
		}

		c.Locals("inputId", valueKey)

		return c.Next()
	}
}

func firstValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		first := validationErrors[0]
		return utils.NewValidation(first.Field(), constants.ERROR_INPUT+": "+first.Field())
	}
	return utils.NewValidation("", constants.ERROR_INPUT)
}
