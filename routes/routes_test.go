package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Rj088/Fitness-companion-app-sub000/store"
	"github.com/Rj088/Fitness-companion-app-sub000/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	s := store.New()
	s.Seed()
	return SetupRouter(s)
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestRegisterLoginFlow(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/register", gin.H{
		"username": "alice",
		"password": "secret123",
		"height":   170,
		"weight":   75,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	created := decode(t, w)
	assert.NotContains(t, created, "password")
	assert.NotEmpty(t, created["token"])
	id := int(created["id"].(float64))

	// duplicate username is rejected and the store is unchanged
	w = doJSON(r, http.MethodPost, "/api/register", gin.H{
		"username": "alice",
		"password": "other",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// correct password
	w = doJSON(r, http.MethodPost, "/api/login", gin.H{
		"username": "alice",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	logged := decode(t, w)
	assert.Equal(t, id, int(logged["id"].(float64)))
	assert.NotContains(t, logged, "password")

	// wrong password and unknown user are indistinguishable
	w = doJSON(r, http.MethodPost, "/api/login", gin.H{
		"username": "alice",
		"password": "wrongpass",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	wrongPass := decode(t, w)

	w = doJSON(r, http.MethodPost, "/api/login", gin.H{
		"username": "nobody",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, wrongPass["error"], decode(t, w)["error"])

	// fetched profile never leaks the hash
	w = doJSON(r, http.MethodGet, fmt.Sprintf("/api/users/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, decode(t, w), "password")

	w = doJSON(r, http.MethodPost, "/api/logout", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMeRequiresToken(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/register", gin.H{
		"username": "alice",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	token := decode(t, w)["token"].(string)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var me map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	assert.Equal(t, "alice", me["username"])
}

func TestUpdateUserPartial(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/register", gin.H{
		"username": "alice",
		"password": "secret123",
		"height":   170,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id := int(decode(t, w)["id"].(float64))

	w = doJSON(r, http.MethodPatch, fmt.Sprintf("/api/users/%d", id), gin.H{"weight": 80})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode(t, w)
	assert.Equal(t, 80.0, updated["weight"])
	assert.Equal(t, 170.0, updated["height"])

	w = doJSON(r, http.MethodPatch, "/api/users/999", gin.H{"weight": 80})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateUserPasswordRehash(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	s := store.New()
	s.Seed()
	r := SetupRouter(s)

	w := doJSON(r, http.MethodPost, "/api/register", gin.H{
		"username": "alice",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id := int(decode(t, w)["id"].(float64))

	w = doJSON(r, http.MethodPatch, fmt.Sprintf("/api/users/%d", id), gin.H{
		"password": "newpass456",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// stored credential is a hash of the new password, never the plaintext
	u, err := s.GetUser(id)
	require.NoError(t, err)
	assert.NotEqual(t, "newpass456", u.Password)
	assert.True(t, utils.CheckPasswordHash("newpass456", u.Password))

	// the old password stops working, the new one logs in
	w = doJSON(r, http.MethodPost, "/api/login", gin.H{
		"username": "alice",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPost, "/api/login", gin.H{
		"username": "alice",
		"password": "newpass456",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWorkoutLifecycle(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/register", gin.H{
		"username": "alice",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	userID := int(decode(t, w)["id"].(float64))

	// catalog is seeded
	w = doJSON(r, http.MethodGet, "/api/workouts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var catalog []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &catalog))
	require.NotEmpty(t, catalog)

	w = doJSON(r, http.MethodGet, "/api/workouts?category=cardio", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// start workout 3
	w = doJSON(r, http.MethodPost, fmt.Sprintf("/api/users/%d/workouts", userID), gin.H{
		"workoutId": 3,
		"date":      "2024-03-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	session := decode(t, w)
	assert.Equal(t, false, session["completed"])
	require.Contains(t, session, "workout")
	sessionID := int(session["id"].(float64))

	// unknown workout id is rejected
	w = doJSON(r, http.MethodPost, fmt.Sprintf("/api/users/%d/workouts", userID), gin.H{
		"workoutId": 999,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// complete it; duration/calories come from the catalog entry
	w = doJSON(r, http.MethodPatch, fmt.Sprintf("/api/users/workouts/%d/complete", sessionID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	done := decode(t, w)
	assert.Equal(t, true, done["completed"])
	workout := done["workout"].(map[string]interface{})
	assert.NotEmpty(t, workout["name"])
	assert.Equal(t, workout["duration"], done["duration"])

	w = doJSON(r, http.MethodPatch, "/api/users/workouts/999/complete", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// list with date filter, workout expanded
	w = doJSON(r, http.MethodGet, fmt.Sprintf("/api/users/%d/workouts?date=2024-03-01", userID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var sessions []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sessions))
	require.Len(t, sessions, 1)
	assert.Contains(t, sessions[0], "workout")
}

func TestMealLifecycle(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/register", gin.H{
		"username": "alice",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	userID := int(decode(t, w)["id"].(float64))

	w = doJSON(r, http.MethodPost, fmt.Sprintf("/api/users/%d/meals", userID), gin.H{
		"foodId":   1,
		"mealType": "breakfast",
		"servings": 1.5,
		"date":     "2024-03-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	meal := decode(t, w)
	require.Contains(t, meal, "food")
	mealID := int(meal["id"].(float64))

	// invalid meal type
	w = doJSON(r, http.MethodPost, fmt.Sprintf("/api/users/%d/meals", userID), gin.H{
		"foodId":   1,
		"mealType": "brunch",
		"servings": 1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// unknown food id
	w = doJSON(r, http.MethodPost, fmt.Sprintf("/api/users/%d/meals", userID), gin.H{
		"foodId":   999,
		"mealType": "lunch",
		"servings": 1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// list expands the food
	w = doJSON(r, http.MethodGet, fmt.Sprintf("/api/users/%d/meals?date=2024-03-01", userID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var meals []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &meals))
	require.Len(t, meals, 1)
	food := meals[0]["food"].(map[string]interface{})
	assert.Equal(t, "Oatmeal", food["name"])

	// delete once, then 404
	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/api/users/meals/%d", mealID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/api/users/meals/%d", mealID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestActivityUpsert(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/register", gin.H{
		"username": "alice",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	userID := int(decode(t, w)["id"].(float64))

	w = doJSON(r, http.MethodPost, fmt.Sprintf("/api/users/%d/activities", userID), gin.H{
		"steps": 4000,
		"date":  "2024-03-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	first := decode(t, w)

	// same day: updated, not duplicated
	w = doJSON(r, http.MethodPost, fmt.Sprintf("/api/users/%d/activities", userID), gin.H{
		"steps":         9000,
		"activeMinutes": 60,
		"date":          "2024-03-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	second := decode(t, w)
	assert.Equal(t, first["id"], second["id"])
	assert.Equal(t, 9000.0, second["steps"])

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/api/users/%d/activities", userID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	// date lookup returns a zeroed default when nothing is recorded
	w = doJSON(r, http.MethodGet, fmt.Sprintf("/api/users/%d/activities?date=2024-03-05", userID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0.0, decode(t, w)["steps"])

	// patch by activity id
	activityID := int(first["id"].(float64))
	w = doJSON(r, http.MethodPatch, fmt.Sprintf("/api/users/activities/%d", activityID), gin.H{
		"caloriesBurned": 250,
	})
	require.Equal(t, http.StatusOK, w.Code)
	patched := decode(t, w)
	assert.Equal(t, 250.0, patched["caloriesBurned"])
	assert.Equal(t, 9000.0, patched["steps"])

	w = doJSON(r, http.MethodPatch, "/api/users/activities/999", gin.H{"steps": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWeightLogUpdatesProfile(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/register", gin.H{
		"username": "alice",
		"password": "secret123",
		"weight":   75,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	userID := int(decode(t, w)["id"].(float64))

	w = doJSON(r, http.MethodPost, fmt.Sprintf("/api/users/%d/weight-logs", userID), gin.H{
		"weight": 73.5,
		"date":   "2024-03-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, fmt.Sprintf("/api/users/%d/weight-logs", userID), gin.H{
		"weight": 72.8,
		"date":   "2024-03-08",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// history ascending by date
	w = doJSON(r, http.MethodGet, fmt.Sprintf("/api/users/%d/weight-logs", userID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var logs []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logs))
	require.Len(t, logs, 2)
	assert.Equal(t, 73.5, logs[0]["weight"])
	assert.Equal(t, 72.8, logs[1]["weight"])

	// profile weight follows the latest entry
	w = doJSON(r, http.MethodGet, fmt.Sprintf("/api/users/%d", userID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 72.8, decode(t, w)["weight"])
}

func TestFoodSearchAndCreate(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/api/foods?search=choc", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var foods []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &foods))
	require.Len(t, foods, 1)
	assert.Equal(t, "Chocolate Milk", foods[0]["name"])

	w = doJSON(r, http.MethodPost, "/api/foods", gin.H{
		"name":        "Protein Shake",
		"calories":    220,
		"protein":     30,
		"servingSize": "1 scoop",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode(t, w)

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/api/foods/%d", int(created["id"].(float64))), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/foods/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// missing name fails validation
	w = doJSON(r, http.MethodPost, "/api/foods", gin.H{"calories": 100})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
