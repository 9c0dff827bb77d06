package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"

	"store_backend/constants"
	"store_backend/helper"
	"store_backend/middleware"
	"store_backend/model"
	"store_backend/utils"
)

func GetProvinces(region *helper.RegionClient) fiber.Handler {
	return func(c *fiber.Ctx) error {
		results, err := region.Provinces(c.Context())
		if err != nil {
			return utils.HandleError(c, err)
		}
		c.Set("Content-Type", "application/json")
		return c.Send(wrapResults(results))
	}
}

func GetCities(region *helper.RegionClient) fiber.Handler {
	return func(c *fiber.Ctx) error {
		results, err := region.Cities(c.Context(), c.Query("province"))
		if err != nil {
			return utils.HandleError(c, err)
		}
		c.Set("Content-Type", "application/json")
		return c.Send(wrapResults(results))
	}
}

func wrapResults(results []byte) []byte {
	body := make([]byte, 0, len(results)+16)
	body = append(body, `{"results":`...)
	body = append(body, results...)
	body = append(body, '}')
	return body
}

func CreateAddress(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := middleware.GetSession(c)
		input, ok := c.Locals("inputAddress").(model.AddressInput)
		if !ok {
			return utils.HandleError(c, utils.NewUnexpected(constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing address input")))
		}

		newAddress := new(model.UserAddress)
		copier.Copy(&newAddress, &input)
		newAddress.UserID = sess.UserID

		if err := db.Create(&newAddress).Error; err != nil {
			return utils.HandleError(c, err)
		}

		if input.Main {
			if err := helper.SetPrimaryAddress(db, sess.UserID, newAddress.ID); err != nil {
				return utils.HandleError(c, err)
			}
		}

		return c.JSON(fiber.Map{"message": constants.MSG_ADDRESS_CREATED})
	}
}

// GetAddresses lists the session user's addresses, primary first and flagged
// with main:true.
func GetAddresses(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := middleware.GetSession(c)

		addresses := []model.UserAddress{}
		if err := db.Where("user_id = ?", sess.UserID).Order("id ASC").Find(&addresses).Error; err != nil {
			return utils.HandleError(c, err)
		}

		pointer, err := helper.GetPrimaryAddress(db, sess.UserID)
		if err != nil {
			return utils.HandleError(c, err)
		}

		if pointer == nil {
			return c.JSON(addresses)
		}

		result := make([]model.UserAddress, 0, len(addresses))
		for _, address := range addresses {
			if address.ID == pointer.AddressID {
				address.Main = true
				result = append([]model.UserAddress{address}, result...)
			} else {
				result = append(result, address)
			}
		}
		return c.JSON(result)
	}
}

func GetAddress(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := middleware.GetSession(c)
		addressId, ok := c.Locals("inputId").(int)
		if !ok {
			return utils.HandleError(c, utils.NewUnexpected(constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing address id")))
		}

		address, err := findOwnedAddress(db, sess.UserID, uint(addressId))
		if err != nil {
			return utils.HandleError(c, err)
		}

		pointer, err := helper.GetPrimaryAddress(db, sess.UserID)
		if err != nil {
			return utils.HandleError(c, err)
		}
		if pointer != nil && pointer.AddressID == address.ID {
			address.Main = true
		}

		return c.JSON(address)
	}
}

func UpdateAddress(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := middleware.GetSession(c)
		addressId, ok := c.Locals("inputId").(int)
		if !ok {
			return utils.HandleError(c, utils.NewUnexpected(constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing address id")))
		}
		input, ok := c.Locals("inputAddress").(model.AddressInput)
		if !ok {
			return utils.HandleError(c, utils.NewUnexpected(constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing address input")))
		}

		address, err := findOwnedAddress(db, sess.UserID, uint(addressId))
		if err != nil {
			return utils.HandleError(c, err)
		}

		// Ownership stays with the original user, only the fields change.
		address.Latitude = input.Latitude
		address.Longitude = input.Longitude
		address.Province = input.Province
		address.City = input.City
		address.Street = input.Street
		address.PostalCode = input.PostalCode
		address.Detail = input.Detail

		if err := db.Save(address).Error; err != nil {
			return utils.HandleError(c, err)
		}

		if input.Main {
			if err := helper.SetPrimaryAddress(db, sess.UserID, address.ID); err != nil {
				return utils.HandleError(c, err)
			}
			address.Main = true
		} else {
			if err := helper.ClearPrimaryAddress(db, sess.UserID, address.ID); err != nil {
				return utils.HandleError(c, err)
			}
		}

		return c.JSON(address)
	}
}

func DeleteAddress(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := middleware.GetSession(c)
		addressId, ok := c.Locals("inputId").(int)
		if !ok {
			return utils.HandleError(c, utils.NewUnexpected(constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing address id")))
		}

		address, err := findOwnedAddress(db, sess.UserID, uint(addressId))
		if err != nil {
			return utils.HandleError(c, err)
		}

		if err := helper.DeleteAddress(db, address); err != nil {
			return utils.HandleError(c, err)
		}

		return c.JSON(address)
	}
}

// findOwnedAddress loads the address and enforces that it belongs to userID:
// 404 when it does not exist, 403 when it belongs to someone else.
func findOwnedAddress(db *gorm.DB, userID, addressID uint) (*model.UserAddress, error) {
	var address model.UserAddress
	if err := db.First(&address, addressID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound(constants.NOT_FOUND_RECORDS)
		}
		return nil, err
	}
	if address.UserID != userID {
		return nil, utils.NewForbidden(constants.FORBIDDEN_RESOURCE)
	}
	return &address, nil
}
