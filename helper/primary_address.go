package helper

import (
	"errors"

	"gorm.io/gorm"

	"store_backend/constants"
	"store_backend/model"
	"store_backend/utils"
)

// SetPrimaryAddress points userID's primary pointer at addressID, creating
// the row when none exists yet. The lookup and the write run in one
// transaction; the unique index on user_id turns a lost race into a
// duplicate-key error instead of a second pointer row.
func SetPrimaryAddress(db *gorm.DB, userID, addressID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var address model.UserAddress
		if err := tx.First(&address, addressID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewNotFound(constants.NOT_FOUND_RECORDS)
			}
			return err
		}
		if address.UserID != userID {
			return utils.NewForbidden(constants.FORBIDDEN_RESOURCE)
		}

		var pointer model.UserPrimaryAddress
		err := tx.Where("user_id = ?", userID).First(&pointer).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			pointer = model.UserPrimaryAddress{UserID: userID, AddressID: addressID}
			if err := tx.Create(&pointer).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return utils.NewConflict(constants.ERROR_INPUT)
				}
				return err
			}
			return nil
		}
		if err != nil {
			return err
		}

		pointer.AddressID = addressID
		return tx.Save(&pointer).Error
	})
}

// ClearPrimaryAddress demotes addressID for userID. A missing pointer, or a
// pointer targeting a different address, is a no-op.
func ClearPrimaryAddress(db *gorm.DB, userID, addressID uint) error {
	return db.
		Where("user_id = ? AND address_id = ?", userID, addressID).
		Delete(&model.UserPrimaryAddress{}).Error
}

// GetPrimaryAddress returns (nil, nil) when the user has no primary pointer.
func GetPrimaryAddress(db *gorm.DB, userID uint) (*model.UserPrimaryAddress, error) {
	var pointer model.UserPrimaryAddress
	if err := db.Where("user_id = ?", userID).First(&pointer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pointer, nil
}

// DeleteAddress removes an address together with its owner-scoped primary
// pointer. The pointer goes first so the address row never dangles.
func DeleteAddress(db *gorm.DB, address *model.UserAddress) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := ClearPrimaryAddress(tx, address.UserID, address.ID); err != nil {
			return err
		}
		return tx.Delete(&model.UserAddress{}, address.ID).Error
	})
}
