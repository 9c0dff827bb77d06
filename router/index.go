package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"store_backend/handler"
	"store_backend/helper"
	"store_backend/middleware"
	"store_backend/session"
	"store_backend/validate"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, store session.Store, region *helper.RegionClient) {
	auth := app.Group("/auth", logger.New())
	auth.Post("/register", validate.Register(), handler.Register(db, store))
	auth.Post("/login", validate.Login(), handler.Login(db, store))
	auth.Post("/logout", handler.Logout(store))
	auth.Get("/me", middleware.RequireSession(store), handler.Me(db))

	address := app.Group("/address", logger.New(), middleware.RequireSession(store))
	address.Get("/provinces", handler.GetProvinces(region))
	address.Get("/cities", handler.GetCities(region))
	address.Post("/", validate.CreateAddress(), handler.CreateAddress(db))
	address.Get("/", handler.GetAddresses(db))
	address.Get("/:addressId", validate.GetById("addressId"), handler.GetAddress(db))
	address.Put("/:addressId", validate.UpdateAddress("addressId"), handler.UpdateAddress(db))
	address.Delete("/:addressId", validate.GetById("addressId"), handler.DeleteAddress(db))

	categories := app.Group("/categories", logger.New(), middleware.RequireSession(store), middleware.RequireAdmin())
	categories.Get("/", handler.GetProductCategories(db))
	categories.Post("/", validate.CreateProductCategory(), handler.CreateProductCategory(db))
	categories.Put("/:categoryId", validate.EditProductCategory("categoryId"), handler.EditProductCategory(db))

	app.Get("/products", logger.New(), handler.GetProducts(db))

	admin := app.Group("/api/v1", logger.New(), middleware.RequireSession(store), middleware.RequireAdmin())
	admin.Get("/admin", handler.GetAdmins(db))
	admin.Post("/admins", validate.CreateAdmin(), handler.CreateAdmin(db))
	admin.Put("/admin/:adminID", validate.UpdateAdmin("adminID"), handler.UpdateAdmin(db))
	admin.Delete("/admin/:adminID", validate.GetById("adminID"), handler.DeleteAdmin(db))
}
