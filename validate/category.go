package validate

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"store_backend/constants"
	"store_backend/model"
	"store_backend/utils"
)

func categoryStatusValid(status string) bool {
	return status == constants.CATEGORY_PUBLISHED || status == constants.CATEGORY_ARCHIVED
}

// CreateProductCategory answers validation failures with the per-field error
// map the admin panel renders next to each input.
func CreateProductCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateCategoryInput

		if err := c.BodyParser(&input); err != nil {
			return utils.CategoryValidationErrors(c, map[string]string{"unknown": constants.ERROR_INPUT})
		}

		errs := map[string]string{}
		input.Name = strings.TrimSpace(input.Name)
		if input.Name == "" {
			errs["name"] = "Nama kategori wajib diisi"
		}
		if !categoryStatusValid(input.Status) {
			errs["status"] = "Status harus published atau archived"
		}
		if len(errs) > 0 {
			return utils.CategoryValidationErrors(c, errs)
		}

		c.Locals("inputCreateCategory", input)

		return c.Next()
	}
}

// EditProductCategory allows partial input: empty name keeps the old name,
// absent status keeps the current archive state.
func EditProductCategory(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		categoryId, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return utils.CategoryValidationErrors(c, map[string]string{key: constants.DATA_INPUT_IS_NOT_NUMBER})
		}

		var input model.EditCategoryInput
		if err := c.BodyParser(&input); err != nil {
			return utils.CategoryValidationErrors(c, map[string]string{"unknown": constants.ERROR_INPUT})
		}

		errs := map[string]string{}
		input.Name = strings.TrimSpace(input.Name)
		if input.Status != "" && !categoryStatusValid(input.Status) {
			errs["status"] = "Status harus published atau archived"
		}
		if len(errs) > 0 {
			return utils.CategoryValidationErrors(c, errs)
		}

		c.Locals("inputId", categoryId)
		c.Locals("inputEditCategory", input)

		return c.Next()
	}
}
