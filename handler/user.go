package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"

	"store_backend/constants"
	"store_backend/helper"
	"store_backend/middleware"
	"store_backend/model"
	"store_backend/utils"
)

func GetAdmins(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filterInput := new(model.FilterUser)
		if err := c.QueryParser(filterInput); err != nil {
			return utils.HandleError(c, utils.NewValidation("", constants.ERROR_INPUT))
		}

		condition := db.Model(&model.User{})
		if filterInput.SearchKey != "" {
			searchPattern := "%" + strings.ToLower(filterInput.SearchKey) + "%"
			condition = condition.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", searchPattern, searchPattern)
		}
		if filterInput.Role != nil {
			condition = condition.Where("role = ?", filterInput.Role)
		}
		if filterInput.Active != nil {
			condition = condition.Where("active = ?", filterInput.Active)
		}

		var totalCount int64
		if err := condition.Count(&totalCount).Error; err != nil {
			return utils.HandleError(c, err)
		}

		condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

		users := model.Users{}
		if err := condition.Order("id ASC").Find(&users).Error; err != nil {
			return utils.HandleError(c, err)
		}

		response := &model.ResponseCustom{
			Rows:       users,
			Limit:      filterInput.Limit,
			Page:       filterInput.Page,
			TotalCount: totalCount,
		}
		return utils.SuccessResponse(c, fiber.StatusOK, response)
	}
}

func CreateAdmin(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, ok := c.Locals("inputCreateAdmin").(model.CreateAdminInput)
		if !ok {
			return utils.HandleError(c, utils.NewUnexpected(constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing admin input")))
		}

		existing, err := helper.GetUserByEmail(db, input.Email)
		if err != nil {
			return utils.HandleError(c, err)
		}
		if existing != nil {
			return utils.HandleError(c, utils.NewConflict(constants.EMAIL_ALREADY_USED))
		}

		if input.Password == "" {
			input.Password = "123456"
		}
		hash, err := helper.HashPassword(input.Password)
		if err != nil {
			return utils.HandleError(c, utils.NewUnexpected(constants.CAN_NOT_HASH_PASSWORD, err))
		}

		newUser := new(model.User)
		copier.Copy(&newUser, &input)
		newUser.Password = hash
		newUser.Active = true

		if err := db.Create(&newUser).Error; err != nil {
			return utils.HandleError(c, err)
		}

		return utils.SuccessResponse(c, fiber.StatusCreated, newUser)
	}
}

func UpdateAdmin(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		adminId, ok := c.Locals("inputId").(int)
		if !ok {
			return utils.HandleError(c, utils.NewUnexpected(constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing admin id")))
		}
		input, ok := c.Locals("inputUpdateAdmin").(model.UpdateAdminInput)
		if !ok {
			return utils.HandleError(c, utils.NewUnexpected(constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing admin input")))
		}

		var user model.User
		if err := db.First(&user, adminId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.HandleError(c, utils.NewNotFound(constants.NOT_FOUND_RECORDS))
			}
			return utils.HandleError(c, err)
		}

		if input.Email != nil && *input.Email != user.Email {
			var count int64
			db.Model(&model.User{}).Where("email = ? AND id != ?", *input.Email, user.ID).Count(&count)
			if count > 0 {
				return utils.HandleError(c, utils.NewConflict(constants.EMAIL_ALREADY_USED))
			}
			user.Email = *input.Email
		}
		if input.Name != nil {
			user.Name = *input.Name
		}
		if input.Role != nil {
			user.Role = *input.Role
		}
		if input.Active != nil {
			user.Active = *input.Active
		}
		if input.Password != nil {
			hash, err := helper.HashPassword(*input.Password)
			if err != nil {
				return utils.HandleError(c, utils.NewUnexpected(constants.CAN_NOT_HASH_PASSWORD, err))
			}
			user.Password = hash
		}

		if err := db.Save(&user).Error; err != nil {
			return utils.HandleError(c, err)
		}

		return utils.SuccessResponse(c, fiber.StatusOK, user)
	}
}

// DeleteAdmin hard deletes an account. Deleting the account behind the
// current session is refused.
func DeleteAdmin(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := middleware.GetSession(c)
		adminId, ok := c.Locals("inputId").(int)
		if !ok {
			return utils.HandleError(c, utils.NewUnexpected(constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing admin id")))
		}

		if sess.UserID == uint(adminId) {
			return utils.HandleError(c, utils.NewForbidden(constants.FORBIDDEN_RESOURCE))
		}

		var user model.User
		if err := db.First(&user, adminId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.HandleError(c, utils.NewNotFound(constants.NOT_FOUND_RECORDS))
			}
			return utils.HandleError(c, err)
		}

		if err := db.Delete(&model.User{}, user.ID).Error; err != nil {
			return utils.HandleError(c, err)
		}

		return utils.SuccessResponse(c, fiber.StatusOK, user)
	}
}
