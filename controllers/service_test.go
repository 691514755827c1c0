package controllers_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yad-anakin/diva/models"
)

func TestServiceCreateAndList(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/services", map[string]any{"name": "قص الشعر", "price": 10000}, true)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Service
	decodeBody(t, w, &created)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "قص الشعر", created.Name)
	assert.Equal(t, 10000.0, created.Price)

	env.request(t, http.MethodPost, "/api/services", map[string]any{"name": "الحناء", "price": 5000}, true)

	w = env.request(t, http.MethodGet, "/api/services", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	var listed []models.Service
	decodeBody(t, w, &listed)
	require.Len(t, listed, 2)
	assert.Equal(t, "الحناء", listed[0].Name, "sorted by name")
}

func TestServiceCreateValidation(t *testing.T) {
	env := newTestEnv(t)

	cases := map[string]map[string]any{
		"missing price":  {"name": "قص"},
		"missing name":   {"price": 100},
		"blank name":     {"name": "   ", "price": 100},
		"negative price": {"name": "قص", "price": -1},
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			w := env.request(t, http.MethodPost, "/api/services", body, true)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
	assert.Empty(t, env.services.services, "nothing persisted")
}

func TestServiceUpdate(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/services", map[string]any{"name": "مكياج", "price": 30000}, true)
	var created models.Service
	decodeBody(t, w, &created)

	w = env.request(t, http.MethodPut, "/api/services/"+created.ID.String(), map[string]any{"price": 35000}, true)
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.Service
	decodeBody(t, w, &updated)
	assert.Equal(t, "مكياج", updated.Name, "name untouched")
	assert.Equal(t, 35000.0, updated.Price)
}

func TestServiceUpdateErrors(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPut, "/api/services/not-a-uuid", map[string]any{"price": 1}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid service ID format")

	w = env.request(t, http.MethodPut, "/api/services/"+uuid.NewString(), map[string]any{}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No fields to update")

	w = env.request(t, http.MethodPut, "/api/services/"+uuid.NewString(), map[string]any{"name": ""}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// A name of pure whitespace is as empty as "".
	w = env.request(t, http.MethodPut, "/api/services/"+uuid.NewString(), map[string]any{"name": "   "}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.request(t, http.MethodPut, "/api/services/"+uuid.NewString(), map[string]any{"price": 1}, true)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServiceDeleteCounts(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/services", map[string]any{"name": "سشوار", "price": 15000}, true)
	var created models.Service
	decodeBody(t, w, &created)

	w = env.request(t, http.MethodDelete, "/api/services/"+created.ID.String(), nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]int64
	decodeBody(t, w, &body)
	assert.Equal(t, int64(1), body["deletedCount"])

	// Absent id is not an error, just a zero count.
	w = env.request(t, http.MethodDelete, "/api/services/"+uuid.NewString(), nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &body)
	assert.Equal(t, int64(0), body["deletedCount"])
}

func TestServiceDeleteAll(t *testing.T) {
	env := newTestEnv(t)

	env.request(t, http.MethodPost, "/api/services", map[string]any{"name": "a", "price": 1}, true)
	env.request(t, http.MethodPost, "/api/services", map[string]any{"name": "b", "price": 2}, true)

	w := env.request(t, http.MethodDelete, "/api/services", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]int64
	decodeBody(t, w, &body)
	assert.Equal(t, int64(2), body["deletedCount"])
	assert.Empty(t, env.services.services)
}
