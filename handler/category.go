package handler

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"store_backend/constants"
	"store_backend/model"
	"store_backend/utils"
)

// GetProductCategories lists categories with their related product count,
// filtered by a case-insensitive name search and sorted by name, product
// count or archive status. Pages are fixed at ten rows, zero based.
func GetProductCategories(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filterInput := new(model.FilterCategory)
		if err := c.QueryParser(filterInput); err != nil {
			return utils.HandleCategoryError(c, utils.NewValidation("", constants.ERROR_INPUT))
		}
		if filterInput.Page < 0 {
			filterInput.Page = 0
		}

		condition := db.Model(&model.ProductCategory{})
		if filterInput.Search != "" {
			condition = condition.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filterInput.Search)+"%")
		}

		var totalCount int64
		if err := condition.Count(&totalCount).Error; err != nil {
			return utils.HandleCategoryError(c, err)
		}

		countSubquery := db.Model(&model.Product{}).
			Select("COUNT(*)").
			Where("products.category_id = product_categories.id")

		query := condition.
			Select("product_categories.*, (?) AS product_count", countSubquery).
			Order(categoryOrder(filterInput.Column, filterInput.Method)).
			Limit(constants.CATEGORY_PAGE_SIZE).
			Offset(filterInput.Page * constants.CATEGORY_PAGE_SIZE)

		categories := model.ProductCategories{}
		if err := query.Find(&categories).Error; err != nil {
			return utils.HandleCategoryError(c, err)
		}

		totalPages := int((totalCount + constants.CATEGORY_PAGE_SIZE - 1) / constants.CATEGORY_PAGE_SIZE)
		pages := make([]int, 0, totalPages)
		for i := 0; i < totalPages; i++ {
			pages = append(pages, i)
		}

		return c.JSON(fiber.Map{
			"success":           true,
			"productCategories": categories,
			"pages":             pages,
		})
	}
}

func categoryOrder(column, method string) string {
	direction := "asc"
	if method == "desc" {
		direction = "desc"
	}
	switch column {
	case "name":
		return "name " + direction
	case "products":
		return "product_count " + direction
	case "status":
		return "deleted_at " + direction
	default:
		return "id asc"
	}
}

func CreateProductCategory(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, ok := c.Locals("inputCreateCategory").(model.CreateCategoryInput)
		if !ok {
			return utils.HandleCategoryError(c, utils.NewUnexpected(constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing category input")))
		}

		newCategory := model.ProductCategory{
			Name: input.Name,
			Slug: slug.Make(input.Name),
		}
		if input.Status == constants.CATEGORY_ARCHIVED {
			now := time.Now()
			newCategory.DeletedAt = &now
		}

		if err := db.Create(&newCategory).Error; err != nil {
			return utils.HandleCategoryError(c, err)
		}

		return c.JSON(fiber.Map{
			"success": true,
			"msg":     constants.MSG_CATEGORY_CREATED,
		})
	}
}

// EditProductCategory applies a partial update: the name only when provided,
// DeletedAt only when a status is provided (published clears it, archived
// stamps it).
func EditProductCategory(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		categoryId, ok := c.Locals("inputId").(int)
		if !ok {
			return utils.HandleCategoryError(c, utils.NewUnexpected(constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing category id")))
		}
		input, ok := c.Locals("inputEditCategory").(model.EditCategoryInput)
		if !ok {
			return utils.HandleCategoryError(c, utils.NewUnexpected(constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing category input")))
		}

		var category model.ProductCategory
		if err := db.First(&category, categoryId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.HandleCategoryError(c, utils.NewNotFound(constants.NOT_FOUND_RECORDS))
			}
			return utils.HandleCategoryError(c, err)
		}

		updateMap := map[string]interface{}{}
		if input.Name != "" {
			updateMap["name"] = input.Name
			updateMap["slug"] = slug.Make(input.Name)
		}
		if input.Status != "" {
			if input.Status == constants.CATEGORY_PUBLISHED {
				updateMap["deleted_at"] = nil
			} else {
				updateMap["deleted_at"] = time.Now()
			}
		}

		if len(updateMap) > 0 {
			if err := db.Model(&category).Updates(updateMap).Error; err != nil {
				return utils.HandleCategoryError(c, err)
			}
		}

		return c.JSON(fiber.Map{"success": true})
	}
}
