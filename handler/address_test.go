package handler_test

import (
	"net/http"
	"testing"

	"store_backend/constants"
	"store_backend/model"
)

func addressBody(main bool) map[string]any {
	return map[string]any{
		"latitude":   -6.9175,
		"longitude":  107.6191,
		"province":   "Jawa Barat",
		"city":       "Bandung",
		"street":     "Jl. Braga No. 1",
		"postalCode": "40111",
		"detail":     "Dekat alun-alun",
		"main":       main,
	}
}

func TestAddressRequiresSession(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodGet, "/address", nil, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", resp.StatusCode)
	}
}

func TestCreateAddressAsMain(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Budi", constants.ROLE_USER)
	cookie := env.loginAs(t, user)

	resp := env.request(t, http.MethodPost, "/address", addressBody(true), cookie)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var body map[string]any
	decodeBody(t, resp, &body)
	if body["message"] != constants.MSG_ADDRESS_CREATED {
		t.Fatalf("expected %q, got %v", constants.MSG_ADDRESS_CREATED, body["message"])
	}

	var pointer model.UserPrimaryAddress
	if err := env.db.Where("user_id = ?", user.ID).First(&pointer).Error; err != nil {
		t.Fatalf("expected pointer row: %v", err)
	}
}

func TestCreateAddressValidation(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Budi", constants.ROLE_USER)
	cookie := env.loginAs(t, user)

	body := addressBody(false)
	delete(body, "province")

	resp := env.request(t, http.MethodPost, "/address", body, cookie)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing province, got %d", resp.StatusCode)
	}
}

// Mirrors the storefront flow: address A is created as main, then address B
// takes over. Exactly one pointer row must exist and the listing must lead
// with B.
func TestPrimaryAddressHandover(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Budi", constants.ROLE_USER)
	cookie := env.loginAs(t, user)

	env.request(t, http.MethodPost, "/address", addressBody(true), cookie)

	var addresses []model.UserAddress
	decodeBody(t, env.request(t, http.MethodGet, "/address", nil, cookie), &addresses)
	if len(addresses) != 1 || !addresses[0].Main {
		t.Fatalf("expected one main address, got %+v", addresses)
	}
	first := addresses[0]

	var single model.UserAddress
	decodeBody(t, env.request(t, http.MethodGet, "/address/"+itoa(first.ID), nil, cookie), &single)
	if !single.Main {
		t.Fatal("expected main:true on the primary address")
	}

	second := addressBody(true)
	second["city"] = "Jakarta"
	env.request(t, http.MethodPost, "/address", second, cookie)

	decodeBody(t, env.request(t, http.MethodGet, "/address", nil, cookie), &addresses)
	if len(addresses) != 2 {
		t.Fatalf("expected two addresses, got %d", len(addresses))
	}
	if !addresses[0].Main || addresses[0].City != "Jakarta" {
		t.Fatalf("expected the new primary first, got %+v", addresses[0])
	}
	if addresses[1].Main {
		t.Fatal("expected the demoted address to lose the main flag")
	}

	var count int64
	env.db.Model(&model.UserPrimaryAddress{}).Where("user_id = ?", user.ID).Count(&count)
	if count != 1 {
		t.Fatalf("expected exactly one pointer row, got %d", count)
	}
}

func TestUpdateAddressDemotion(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Budi", constants.ROLE_USER)
	cookie := env.loginAs(t, user)

	env.request(t, http.MethodPost, "/address", addressBody(true), cookie)

	var addresses []model.UserAddress
	decodeBody(t, env.request(t, http.MethodGet, "/address", nil, cookie), &addresses)
	id := itoa(addresses[0].ID)

	resp := env.request(t, http.MethodPut, "/address/"+id, addressBody(false), cookie)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var count int64
	env.db.Model(&model.UserPrimaryAddress{}).Where("user_id = ?", user.ID).Count(&count)
	if count != 0 {
		t.Fatalf("expected pointer removed on demotion, got %d rows", count)
	}
}

func TestUpdateAddressMainFalseWithoutPointer(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Budi", constants.ROLE_USER)
	cookie := env.loginAs(t, user)

	env.request(t, http.MethodPost, "/address", addressBody(false), cookie)

	var addresses []model.UserAddress
	decodeBody(t, env.request(t, http.MethodGet, "/address", nil, cookie), &addresses)

	// No pointer exists; demoting must still answer 200.
	resp := env.request(t, http.MethodPut, "/address/"+itoa(addresses[0].ID), addressBody(false), cookie)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 demoting without pointer, got %d", resp.StatusCode)
	}
}

func TestUpdateAddressKeepsOwner(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Budi", constants.ROLE_USER)
	cookie := env.loginAs(t, user)

	env.request(t, http.MethodPost, "/address", addressBody(false), cookie)

	var addresses []model.UserAddress
	decodeBody(t, env.request(t, http.MethodGet, "/address", nil, cookie), &addresses)

	body := addressBody(false)
	body["city"] = "Surabaya"
	var updated model.UserAddress
	decodeBody(t, env.request(t, http.MethodPut, "/address/"+itoa(addresses[0].ID), body, cookie), &updated)

	if updated.City != "Surabaya" {
		t.Fatalf("expected city updated, got %q", updated.City)
	}
	if updated.UserID != user.ID {
		t.Fatalf("expected owner unchanged, got %d", updated.UserID)
	}
}

func TestAddressOwnershipGuard(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "Budi", constants.ROLE_USER)
	intruder := env.createUser(t, "Siti", constants.ROLE_USER)
	ownerCookie := env.loginAs(t, owner)
	intruderCookie := env.loginAs(t, intruder)

	env.request(t, http.MethodPost, "/address", addressBody(false), ownerCookie)

	var addresses []model.UserAddress
	decodeBody(t, env.request(t, http.MethodGet, "/address", nil, ownerCookie), &addresses)
	id := itoa(addresses[0].ID)

	for _, tc := range []struct {
		method string
		body   map[string]any
	}{
		{http.MethodGet, nil},
		{http.MethodPut, addressBody(false)},
		{http.MethodDelete, nil},
	} {
		resp := env.request(t, tc.method, "/address/"+id, tc.body, intruderCookie)
		if resp.StatusCode != http.StatusForbidden {
			t.Fatalf("%s: expected 403 for foreign address, got %d", tc.method, resp.StatusCode)
		}
	}

	resp := env.request(t, http.MethodGet, "/address/99999", nil, ownerCookie)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for missing address, got %d", resp.StatusCode)
	}
}

func TestDeletePrimaryAddressLeavesNoPointer(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Budi", constants.ROLE_USER)
	cookie := env.loginAs(t, user)

	env.request(t, http.MethodPost, "/address", addressBody(true), cookie)

	var addresses []model.UserAddress
	decodeBody(t, env.request(t, http.MethodGet, "/address", nil, cookie), &addresses)

	var deleted model.UserAddress
	decodeBody(t, env.request(t, http.MethodDelete, "/address/"+itoa(addresses[0].ID), nil, cookie), &deleted)
	if deleted.ID != addresses[0].ID {
		t.Fatalf("expected the deleted row back, got %+v", deleted)
	}

	var count int64
	env.db.Model(&model.UserPrimaryAddress{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no dangling pointer, got %d rows", count)
	}
}
