package utils

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ErrorResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"message": message,
	})
}

func SuccessResponse(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

// HandleError logs err and answers with the `{message}` envelope used by the
// address, auth and admin endpoints.
func HandleError(c *fiber.Ctx, err error) error {
	appErr := AsAppError(err, "Terjadi kesalahan pada server")
	LogError(c.Path(), appErr)
	return ErrorResponse(c, appErr.Status(), appErr.Message)
}

// HandleCategoryError logs err and answers with the per-field
// `{success:false, errors:{...}}` envelope of the category endpoints.
// Validation errors keep their field key, everything else lands on "unknown".
func HandleCategoryError(c *fiber.Ctx, err error) error {
	appErr := AsAppError(err, "Terjadi kesalahan pada server")
	LogError(c.Path(), appErr)

	key := "unknown"
	if appErr.Kind == KindValidation && appErr.Field != "" {
		key = appErr.Field
	}
	return c.Status(appErr.Status()).JSON(fiber.Map{
		"success": false,
		"errors":  fiber.Map{key: appErr.Message},
	})
}

// CategoryValidationErrors answers a 400 with the full per-field error map.
func CategoryValidationErrors(c *fiber.Ctx, errs map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"errors":  errs,
	})
}

func ApplyPagination(query *gorm.DB, limit, page *int) *gorm.DB {
	if limit != nil && *limit > 0 && page != nil && *page >= 1 {
		query = query.Limit(*limit)
		offset := *limit * (*page - 1)
		query = query.Offset(offset)
	}

	return query
}
