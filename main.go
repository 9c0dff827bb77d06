package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/redis/go-redis/v9"

	"store_backend/config"
	"store_backend/database"
	"store_backend/helper"
	"store_backend/router"
	"store_backend/session"
	"store_backend/utils"
)

func main() {
	utils.InitLogger()
	defer utils.Logger.Sync()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigDefault("CORS_ORIGIN", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	db := database.ConnectDB()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     config.ConfigDefault("REDIS_ADDR", "localhost:6379"),
		Password: config.Config("REDIS_PASSWORD"),
	})
	store := session.NewRedisStore(redisClient)

	region := helper.NewRegionClient(config.Config("API_KEY_RAJAONGKIR"))

	router.SetupRoutes(app, db, store, region)

	port := config.ConfigDefault("PORT", "8000")
	log.Fatal(app.Listen(":" + port))
}
