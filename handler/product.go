package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"store_backend/constants"
	"store_backend/model"
	"store_backend/utils"
)

// GetProducts is the public storefront listing: products of published
// categories only, optional name search and category filter.
func GetProducts(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filterInput := new(model.FilterProduct)
		if err := c.QueryParser(filterInput); err != nil {
			return utils.HandleError(c, utils.NewValidation("", constants.ERROR_INPUT))
		}

		condition := db.Model(&model.Product{}).
			Joins("JOIN product_categories ON product_categories.id = products.category_id").
			Where("product_categories.deleted_at IS NULL")
		if filterInput.SearchKey != "" {
			condition = condition.Where("LOWER(products.name) LIKE ?", "%"+strings.ToLower(filterInput.SearchKey)+"%")
		}
		if filterInput.CategoryID != nil {
			condition = condition.Where("products.category_id = ?", *filterInput.CategoryID)
		}

		var totalCount int64
		if err := condition.Count(&totalCount).Error; err != nil {
			return utils.HandleError(c, err)
		}

		condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

		products := model.Products{}
		if err := condition.Preload("Category").Order("products.id ASC").Find(&products).Error; err != nil {
			return utils.HandleError(c, err)
		}

		response := &model.ResponseCustom{
			Rows:       products,
			Limit:      filterInput.Limit,
			Page:       filterInput.Page,
			TotalCount: totalCount,
		}
		return utils.SuccessResponse(c, fiber.StatusOK, response)
	}
}
