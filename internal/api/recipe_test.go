package api_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stirFryPayload() map[string]interface{} {
	return map[string]interface{}{
		"name":       "Stir Fry",
		"prep_time":  10,
		"cook_time":  15,
		"servings":   2,
		"difficulty": "easy",
		"images":     []interface{}{},
		"ingredients": []interface{}{
			map[string]interface{}{"name": "Egg", "amount": "2", "is_optional": false},
		},
		"steps": []interface{}{
			map[string]interface{}{"step_number": 99, "instruction": "Cook everything"},
		},
		"tags": []interface{}{},
	}
}

func TestCreateRecipe(t *testing.T) {
	engine, _ := setupTestRouter(t)
	token := signupTestUser(t, engine, "cook@example.com")

	w := doJSON(t, engine, "POST", "/api/recipes", token, stirFryPayload())
	require.Equal(t, 201, w.Code)

	resp := decodeBody(t, w)
	assert.NotEmpty(t, resp["id"])
	assert.Equal(t, "Stir Fry", resp["name"])
	assert.Equal(t, float64(10), resp["prep_time"])
	assert.Equal(t, []interface{}{}, resp["images"])

	ingredients := resp["ingredients"].([]interface{})
	require.Len(t, ingredients, 1)
	assert.Equal(t, "Egg", ingredients[0].(map[string]interface{})["name"])

	// The client-supplied step number is discarded.
	steps := resp["steps"].([]interface{})
	require.Len(t, steps, 1)
	assert.Equal(t, float64(1), steps[0].(map[string]interface{})["step_number"])
}

func TestCreateRecipeRejectsUnknownField(t *testing.T) {
	engine, _ := setupTestRouter(t)
	token := signupTestUser(t, engine, "cook@example.com")

	payload := stirFryPayload()
	payload["surprise"] = "field"

	w := doJSON(t, engine, "POST", "/api/recipes", token, payload)
	assert.Equal(t, 400, w.Code)
}

func TestCreateRecipeValidatesDifficulty(t *testing.T) {
	engine, _ := setupTestRouter(t)
	token := signupTestUser(t, engine, "cook@example.com")

	payload := stirFryPayload()
	payload["difficulty"] = "impossible"

	w := doJSON(t, engine, "POST", "/api/recipes", token, payload)
	assert.Equal(t, 400, w.Code)
}

func TestGetRecipe(t *testing.T) {
	engine, _ := setupTestRouter(t)
	token := signupTestUser(t, engine, "cook@example.com")

	created := decodeBody(t, doJSON(t, engine, "POST", "/api/recipes", token, stirFryPayload()))
	id := created["id"].(string)

	w := doJSON(t, engine, "GET", "/api/recipes/"+id, token, nil)
	require.Equal(t, 200, w.Code)

	resp := decodeBody(t, w)
	assert.Equal(t, id, resp["id"])
	assert.Equal(t, []interface{}{}, resp["images"])
}

func TestListRecipes(t *testing.T) {
	engine, _ := setupTestRouter(t)
	token := signupTestUser(t, engine, "cook@example.com")

	doJSON(t, engine, "POST", "/api/recipes", token, stirFryPayload())

	w := doJSON(t, engine, "GET", "/api/recipes", token, nil)
	require.Equal(t, 200, w.Code)

	var list []interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Stir Fry", list[0].(map[string]interface{})["name"])
}

func TestUpdateRecipeReplacesSteps(t *testing.T) {
	engine, _ := setupTestRouter(t)
	token := signupTestUser(t, engine, "cook@example.com")

	created := decodeBody(t, doJSON(t, engine, "POST", "/api/recipes", token, stirFryPayload()))
	id := created["id"].(string)

	w := doJSON(t, engine, "PUT", "/api/recipes/"+id, token, map[string]interface{}{
		"ingredients": []interface{}{
			map[string]interface{}{"name": "Egg", "amount": "2"},
		},
		"steps": []interface{}{
			map[string]interface{}{"instruction": "Crack eggs"},
			map[string]interface{}{"instruction": "Fry"},
		},
		"tags": []interface{}{},
	})
	require.Equal(t, 200, w.Code)

	resp := decodeBody(t, w)
	steps := resp["steps"].([]interface{})
	require.Len(t, steps, 2)
	first := steps[0].(map[string]interface{})
	second := steps[1].(map[string]interface{})
	assert.Equal(t, float64(1), first["step_number"])
	assert.Equal(t, "Crack eggs", first["instruction"])
	assert.Equal(t, float64(2), second["step_number"])
	assert.Equal(t, "Fry", second["instruction"])
}

func TestRecipeOwnershipIsolation(t *testing.T) {
	engine, _ := setupTestRouter(t)
	ownerToken := signupTestUser(t, engine, "owner@example.com")
	intruderToken := signupTestUser(t, engine, "intruder@example.com")

	created := decodeBody(t, doJSON(t, engine, "POST", "/api/recipes", ownerToken, stirFryPayload()))
	id := created["id"].(string)

	w := doJSON(t, engine, "GET", "/api/recipes/"+id, intruderToken, nil)
	assert.Equal(t, 404, w.Code)

	w = doJSON(t, engine, "PUT", "/api/recipes/"+id, intruderToken, map[string]interface{}{
		"name":        "Hijacked",
		"ingredients": []interface{}{},
		"steps":       []interface{}{},
		"tags":        []interface{}{},
	})
	assert.Equal(t, 404, w.Code)

	// Deleting someone else's recipe acknowledges without effect.
	w = doJSON(t, engine, "DELETE", "/api/recipes/"+id, intruderToken, nil)
	assert.Equal(t, 200, w.Code)

	w = doJSON(t, engine, "GET", "/api/recipes/"+id, ownerToken, nil)
	require.Equal(t, 200, w.Code)
	assert.Equal(t, "Stir Fry", decodeBody(t, w)["name"])
}

func TestDeleteRecipeIdempotent(t *testing.T) {
	engine, _ := setupTestRouter(t)
	token := signupTestUser(t, engine, "cook@example.com")

	created := decodeBody(t, doJSON(t, engine, "POST", "/api/recipes", token, stirFryPayload()))
	id := created["id"].(string)

	w := doJSON(t, engine, "DELETE", "/api/recipes/"+id, token, nil)
	require.Equal(t, 200, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["success"])

	w = doJSON(t, engine, "DELETE", "/api/recipes/"+id, token, nil)
	require.Equal(t, 200, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["success"])

	w = doJSON(t, engine, "GET", "/api/recipes/"+id, token, nil)
	assert.Equal(t, 404, w.Code)
}

func TestRecipesRequireAuth(t *testing.T) {
	engine, _ := setupTestRouter(t)

	w := doJSON(t, engine, "GET", "/api/recipes", "", nil)
	assert.Equal(t, 401, w.Code)

	w = doJSON(t, engine, "POST", "/api/recipes", "bogus-token", stirFryPayload())
	assert.Equal(t, 401, w.Code)
}
