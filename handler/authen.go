package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"store_backend/constants"
	"store_backend/helper"
	"store_backend/middleware"
	"store_backend/model"
	"store_backend/session"
	"store_backend/utils"
)

func Register(db *gorm.DB, store session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, ok := c.Locals("inputRegister").(model.RegisterInput)
		if !ok {
			return utils.HandleError(c, utils.NewUnexpected(constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing register input")))
		}

		existing, err := helper.GetUserByEmail(db, input.Email)
		if err != nil {
			return utils.HandleError(c, err)
		}
		if existing != nil {
			return utils.HandleError(c, utils.NewConflict(constants.EMAIL_ALREADY_USED))
		}

		hash, err := helper.HashPassword(input.Password)
		if err != nil {
			return utils.HandleError(c, utils.NewUnexpected(constants.CAN_NOT_HASH_PASSWORD, err))
		}

		newUser := model.User{
			Name:     input.Name,
			Email:    input.Email,
			Password: hash,
			Role:     constants.ROLE_USER,
			Active:   true,
		}
		if err := db.Create(&newUser).Error; err != nil {
			return utils.HandleError(c, err)
		}

		if err := openSession(c, store, &newUser); err != nil {
			return utils.HandleError(c, err)
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": constants.MSG_LOGIN_SUCCESS,
			"user":    newUser,
		})
	}
}

func Login(db *gorm.DB, store session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, ok := c.Locals("inputLogin").(model.LoginInput)
		if !ok {
			return utils.HandleError(c, utils.NewUnexpected(constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing login input")))
		}

		user, err := helper.GetUserByEmail(db, input.Email)
		if err != nil {
			return utils.HandleError(c, err)
		}
		if user == nil || !helper.CheckPasswordHash(input.Password, user.Password) {
			return utils.HandleError(c, utils.NewUnauthorized(constants.INVALID_CREDENTIALS))
		}
		if !user.Active {
			return utils.HandleError(c, utils.NewForbidden(constants.ACCOUNT_NOT_ACTIVE))
		}

		if err := openSession(c, store, user); err != nil {
			return utils.HandleError(c, err)
		}

		return c.JSON(fiber.Map{
			"message": constants.MSG_LOGIN_SUCCESS,
			"user":    user,
		})
	}
}

func Logout(store session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies(constants.SESSION_COOKIE)
		if sid != "" {
			if err := store.Delete(c.Context(), sid); err != nil {
				return utils.HandleError(c, utils.NewUnexpected(constants.ERROR_INTERNAL_ERROR, err))
			}
		}

		c.Cookie(&fiber.Cookie{
			Name:     constants.SESSION_COOKIE,
			Value:    "",
			Expires:  time.Now().Add(-time.Hour),
			HTTPOnly: true,
			SameSite: "Lax",
			Path:     "/",
		})

		return c.JSON(fiber.Map{"message": constants.MSG_LOGOUT_SUCCESS})
	}
}

func Me(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := middleware.GetSession(c)

		var user model.User
		if err := db.First(&user, sess.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.HandleError(c, utils.NewNotFound(constants.NOT_FOUND_RECORDS))
			}
			return utils.HandleError(c, err)
		}

		return c.JSON(user)
	}
}

func openSession(c *fiber.Ctx, store session.Store, user *model.User) error {
	sess := session.New(user.ID, user.Role)
	if err := store.Save(c.Context(), sess); err != nil {
		return utils.NewUnexpected(constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     constants.SESSION_COOKIE,
		Value:    sess.ID,
		Expires:  time.Now().Add(session.TTL),
		HTTPOnly: true,
		SameSite: "Lax",
		Secure:   false,
		Path:     "/",
	})
	return nil
}
