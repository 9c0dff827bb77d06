package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"store_backend/constants"
	"store_backend/database"
	"store_backend/helper"
	"store_backend/model"
	"store_backend/router"
	"store_backend/session"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type testEnv struct {
	app   *fiber.App
	db    *gorm.DB
	store *session.MemoryStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := openTestDB(t)
	store := session.NewMemoryStore()
	app := fiber.New()
	region := helper.NewRegionClient("test-key")
	router.SetupRoutes(app, db, store, region)
	return &testEnv{app: app, db: db, store: store}
}

func (env *testEnv) createUser(t *testing.T, name, role string) *model.User {
	t.Helper()
	user := &model.User{
		Name:     name,
		Email:    strings.ToLower(name) + "@store.local",
		Password: "x",
		Role:     role,
		Active:   true,
	}
	if err := env.db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func (env *testEnv) loginAs(t *testing.T, user *model.User) *http.Cookie {
	t.Helper()
	sess := session.New(user.ID, user.Role)
	if err := env.store.Save(context.Background(), sess); err != nil {
		t.Fatalf("save session: %v", err)
	}
	return &http.Cookie{Name: constants.SESSION_COOKIE, Value: sess.ID}
}

func (env *testEnv) request(t *testing.T, method, target string, body any, cookie *http.Cookie) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := env.app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	return resp
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}
