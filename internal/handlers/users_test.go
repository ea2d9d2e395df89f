package handlers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/chachabrian/profast-backend/internal/handlers"
	"github.com/chachabrian/profast-backend/internal/storetest"
)

func newUserRouter(store *storetest.Store) *gin.Engine {
	r := gin.New()
	users := store.Users()
	r.GET("/users/search", handlers.SearchUsers(users))
	r.GET("/users/:email/role", handlers.GetUserRole(users))
	r.POST("/users", handlers.CreateUser(users))
	r.PATCH("/users/:id/role", handlers.UpdateUserRole(users))
	return r
}

func TestCreateUser_Idempotent(t *testing.T) {
	store := storetest.New()
	r := newUserRouter(store)

	w := do(r, http.MethodPost, "/users", `{"email":"a@x.com","name":"Ann"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	first := decode[map[string]interface{}](t, w)
	assert.Equal(t, "User created", first["message"])
	assert.Equal(t, true, first["inserted"])
	assert.NotEmpty(t, first["insertedId"])

	w = do(r, http.MethodPost, "/users", `{"email":"a@x.com","name":"Ann again"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"User already exists","inserted":false}`, w.Body.String())

	assert.Equal(t, 1, store.Users().Count())
	assert.Equal(t, "user", store.Users().Role("a@x.com"))
}

func TestCreateUser_KeepsExplicitRole(t *testing.T) {
	store := storetest.New()
	w := do(newUserRouter(store), http.MethodPost, "/users", `{"email":"boss@x.com","role":"admin"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "admin", store.Users().Role("boss@x.com"))
}

func TestCreateUser_Validation(t *testing.T) {
	for _, body := range []string{`{}`, `{"email":""}`, `{"email":42}`, `[]`} {
		t.Run(body, func(t *testing.T) {
			w := do(newUserRouter(storetest.New()), http.MethodPost, "/users", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestGetUserRole(t *testing.T) {
	store := storetest.New()
	r := newUserRouter(store)
	_, err := store.Users().Create(t.Context(), map[string]interface{}{"email": "norole@x.com"})
	require.NoError(t, err)
	_, err = store.Users().Create(t.Context(), map[string]interface{}{"email": "admin@x.com", "role": "admin"})
	require.NoError(t, err)

	tests := []struct {
		name           string
		email          string
		expectedStatus int
		expectedBody   string
	}{
		{name: "role unset defaults to user", email: "norole@x.com", expectedStatus: http.StatusOK, expectedBody: `{"role":"user"}`},
		{name: "stored role", email: "admin@x.com", expectedStatus: http.StatusOK, expectedBody: `{"role":"admin"}`},
		{name: "unknown user", email: "ghost@x.com", expectedStatus: http.StatusNotFound, expectedBody: `{"message":"User not found"}`},
		{name: "blank email", email: "%20", expectedStatus: http.StatusBadRequest, expectedBody: `{"message":"Email is required"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodGet, "/users/"+tt.email+"/role", "")
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestSearchUsers(t *testing.T) {
	store := storetest.New()
	r := newUserRouter(store)
	for i := 0; i < 12; i++ {
		email := "rider" + strings.Repeat("x", i) + "@Example.com"
		_, err := store.Users().Create(t.Context(), map[string]interface{}{"email": email})
		require.NoError(t, err)
	}
	_, err := store.Users().Create(t.Context(), map[string]interface{}{"email": "other@x.com"})
	require.NoError(t, err)

	w := do(r, http.MethodGet, "/users/search?email=EXAMPLE", "")
	require.Equal(t, http.StatusOK, w.Code)
	users := decode[[]map[string]interface{}](t, w)
	assert.Len(t, users, 10)
	for _, u := range users {
		assert.Contains(t, strings.ToLower(u["email"].(string)), "example")
		assert.Contains(t, u, "_id")
	}

	w = do(r, http.MethodGet, "/users/search", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Missing email query"}`, w.Body.String())
}

func TestUpdateUserRole(t *testing.T) {
	store := storetest.New()
	r := newUserRouter(store)
	res, err := store.Users().Create(t.Context(), map[string]interface{}{"email": "a@x.com", "role": "user"})
	require.NoError(t, err)
	id := res.InsertedID.(primitive.ObjectID).Hex()

	tests := []struct {
		name           string
		id             string
		body           string
		expectedStatus int
		expectedRole   string
	}{
		{name: "unknown role", id: id, body: `{"role":"manager"}`, expectedStatus: http.StatusBadRequest, expectedRole: "user"},
		{name: "rider is not assignable", id: id, body: `{"role":"rider"}`, expectedStatus: http.StatusBadRequest, expectedRole: "user"},
		{name: "missing role", id: id, body: `{}`, expectedStatus: http.StatusBadRequest, expectedRole: "user"},
		{name: "malformed id", id: "nope", body: `{"role":"admin"}`, expectedStatus: http.StatusBadRequest, expectedRole: "user"},
		{name: "promote to admin", id: id, body: `{"role":"admin"}`, expectedStatus: http.StatusOK, expectedRole: "admin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodPatch, "/users/"+tt.id+"/role", tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedRole, store.Users().Role("a@x.com"))
			if tt.expectedStatus == http.StatusOK {
				result := decode[map[string]interface{}](t, w)
				assert.Equal(t, float64(1), result["matchedCount"])
				assert.Equal(t, float64(1), result["modifiedCount"])
			}
		})
	}
}
