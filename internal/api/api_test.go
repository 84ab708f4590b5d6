package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/culina/recipebook-api/internal/api"
	"github.com/culina/recipebook-api/internal/router"
	"github.com/culina/recipebook-api/internal/service"
	"github.com/culina/recipebook-api/internal/testhelpers"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

// setupRouter wires the full HTTP stack over an in-memory database.
func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db := testhelpers.OpenTestDB(t)
	tokens := service.NewTokenService("test-secret", 30)
	auth := service.NewAuthService(db, tokens)

	handlers := router.Handlers{
		Auth:        api.NewAuthHandler(auth),
		Users:       api.NewUserHandler(service.NewUserService(db)),
		Categories:  api.NewCategoryHandler(service.NewCategoryService(db)),
		Ingredients: api.NewIngredientHandler(service.NewIngredientService(db)),
		Recipes:     api.NewRecipeHandler(service.NewRecipeService(db)),
	}

	engine := router.Setup(handlers, auth, router.Limiters{}, nil)
	return engine, db
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// login obtains a bearer token through the OAuth2 form endpoint.
func login(t *testing.T, engine *gin.Engine, username, password string) string {
	t.Helper()

	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	form.Set("grant_type", "password")

	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode(t, w)
	token, _ := body["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestHealth(t *testing.T) {
	engine, _ := setupRouter(t)

	w := doJSON(t, engine, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["status"])
}

func TestCreateCategoryRoundTrip(t *testing.T) {
	engine, _ := setupRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/categories", "", gin.H{"name": "Veggies"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decode(t, w)
	assert.Equal(t, float64(1), body["id"])
	// Stored lowercase, displayed capitalized
	assert.Equal(t, "Veggies", body["name"])

	w = doJSON(t, engine, http.MethodGet, "/categories/1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Veggies", decode(t, w)["name"])
}

func TestCreateCategoryDuplicateConflict(t *testing.T) {
	engine, _ := setupRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/categories", "", gin.H{"name": "Veggies"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, engine, http.MethodPost, "/categories", "", gin.H{"name": "veggies"})
	require.Equal(t, http.StatusConflict, w.Code)

	body := decode(t, w)
	assert.Equal(t, "ConflictError", body["kind"])
	assert.Equal(t, float64(http.StatusConflict), body["code"])
	assert.NotEmpty(t, body["source"])
}

func TestCreateCategoryValidation(t *testing.T) {
	engine, _ := setupRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/categories", "", gin.H{})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "ValidationError", decode(t, w)["kind"])
}

func TestTokenFlow(t *testing.T) {
	engine, db := setupRouter(t)
	_, password := testhelpers.CreateUser(t, db, "alice")

	token := login(t, engine, "alice", password)

	w := doJSON(t, engine, http.MethodGet, "/users/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "alice", decode(t, w)["username"])
}

func TestTokenFlowBadPassword(t *testing.T) {
	engine, db := setupRouter(t)
	testhelpers.CreateUser(t, db, "alice")

	form := url.Values{}
	form.Set("username", "alice")
	form.Set("password", "wrong")

	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AuthorizationError", decode(t, w)["kind"])
}

func TestUsersMeRequiresToken(t *testing.T) {
	engine, _ := setupRouter(t)

	w := doJSON(t, engine, http.MethodGet, "/users/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AuthorizationError", decode(t, w)["kind"])
}

func TestCreateUser(t *testing.T) {
	engine, _ := setupRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/users", "", gin.H{
		"username":  "alice",
		"email":     "alice@example.com",
		"full_name": "Alice Example",
		"password":  "secret-password",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decode(t, w)
	assert.Equal(t, "alice", body["username"])
	assert.Equal(t, true, body["is_active"])
	// The password hash never leaves the server
	assert.NotContains(t, w.Body.String(), "password")
}

func TestIngredientNormalizationRoundTrip(t *testing.T) {
	engine, _ := setupRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/ingredients", "", gin.H{
		"name":     "Broccoli",
		"is_vegan": true,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "Broccoli", decode(t, w)["name"])

	w = doJSON(t, engine, http.MethodGet, "/ingredients", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Broccoli", list[0]["name"])
}

func createRecipe(t *testing.T, engine *gin.Engine, token, name string, ingredients []gin.H) *httptest.ResponseRecorder {
	t.Helper()

	return doJSON(t, engine, http.MethodPost, "/recipes", token, gin.H{
		"name":             name,
		"cooking_time":     30,
		"difficulty_level": "EASY",
		"portions":         2,
		"instructions":     "Mix everything",
		"ingredients":      ingredients,
	})
}

func TestRecipeCreateRequiresAuth(t *testing.T) {
	engine, _ := setupRouter(t)

	w := createRecipe(t, engine, "", "stir fry", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRecipeLifecycle(t *testing.T) {
	engine, db := setupRouter(t)
	_, password := testhelpers.CreateUser(t, db, "alice")
	token := login(t, engine, "alice", password)

	vegan := testhelpers.CreateIngredient(t, db, "broccoli", true)

	w := createRecipe(t, engine, token, "Stir Fry", []gin.H{
		{"ingredient_id": vegan.ID, "quantity": "200 grams"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decode(t, w)
	assert.Equal(t, "Stir fry", body["name"])
	assert.Equal(t, true, body["is_vegan"])

	id := int(body["id"].(float64))
	w = doJSON(t, engine, http.MethodGet, fmt.Sprintf("/recipes/%d", id), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRecipeVeganFalseWithNonVeganIngredient(t *testing.T) {
	engine, db := setupRouter(t)
	_, password := testhelpers.CreateUser(t, db, "alice")
	token := login(t, engine, "alice", password)

	cheese := testhelpers.CreateIngredient(t, db, "cheese", false)

	w := createRecipe(t, engine, token, "cheese toast", []gin.H{
		{"ingredient_id": cheese.ID, "quantity": "50 grams"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, false, decode(t, w)["is_vegan"])
}

func TestRecipeCreateMissingIngredient(t *testing.T) {
	engine, db := setupRouter(t)
	_, password := testhelpers.CreateUser(t, db, "alice")
	token := login(t, engine, "alice", password)

	w := createRecipe(t, engine, token, "stir fry", []gin.H{
		{"ingredient_id": 42, "quantity": "200 grams"},
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	body := decode(t, w)
	assert.Equal(t, "NotFoundError", body["kind"])
	assert.Contains(t, body["message"], "42")
}

func TestRecipeDeleteByNonOwner(t *testing.T) {
	engine, db := setupRouter(t)
	_, alicePassword := testhelpers.CreateUser(t, db, "alice")
	_, bobPassword := testhelpers.CreateUser(t, db, "bob")

	aliceToken := login(t, engine, "alice", alicePassword)
	bobToken := login(t, engine, "bob", bobPassword)

	w := createRecipe(t, engine, aliceToken, "stir fry", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	id := int(decode(t, w)["id"].(float64))

	w = doJSON(t, engine, http.MethodDelete, fmt.Sprintf("/recipes/%d", id), bobToken, nil)
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "AuthorizationError", decode(t, w)["kind"])

	// Still there
	w = doJSON(t, engine, http.MethodGet, fmt.Sprintf("/recipes/%d", id), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRecipeUpdateByNonOwner(t *testing.T) {
	engine, db := setupRouter(t)
	_, alicePassword := testhelpers.CreateUser(t, db, "alice")
	_, bobPassword := testhelpers.CreateUser(t, db, "bob")

	aliceToken := login(t, engine, "alice", alicePassword)
	bobToken := login(t, engine, "bob", bobPassword)

	w := createRecipe(t, engine, aliceToken, "stir fry", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	id := int(decode(t, w)["id"].(float64))

	w = doJSON(t, engine, http.MethodPut, fmt.Sprintf("/recipes/%d", id), bobToken, gin.H{"name": "stolen fry"})
	require.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, engine, http.MethodGet, fmt.Sprintf("/recipes/%d", id), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Stir fry", decode(t, w)["name"])
}

func TestRecipeValidation(t *testing.T) {
	engine, db := setupRouter(t)
	_, password := testhelpers.CreateUser(t, db, "alice")
	token := login(t, engine, "alice", password)

	w := doJSON(t, engine, http.MethodPost, "/recipes", token, gin.H{
		"name":             "stir fry",
		"cooking_time":     0,
		"difficulty_level": "IMPOSSIBLE",
		"portions":         2,
		"instructions":     "Mix everything",
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "ValidationError", decode(t, w)["kind"])
}

func TestListUserRecipes(t *testing.T) {
	engine, db := setupRouter(t)
	owner, _ := testhelpers.CreateUser(t, db, "alice")
	testhelpers.CreateRecipe(t, db, "stir fry", owner)

	w := doJSON(t, engine, http.MethodGet, fmt.Sprintf("/recipes/user/%d", owner.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	// A user with no recipes is a 404, matching the repository contract
	w = doJSON(t, engine, http.MethodGet, fmt.Sprintf("/recipes/user/%d", owner.ID+1), "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
