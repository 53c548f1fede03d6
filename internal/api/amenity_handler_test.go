package api

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAmenityEndpoint(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	_, token := env.registerAndLogin(t, "admin@example.com")

	// Creation requires a token
	rec := env.do(t, http.MethodPost, "/api/v1/amenities", map[string]string{"name": "Wifi"}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/v1/amenities", map[string]string{"name": "Wifi"}, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var amenity AmenityResponse
	decodeBody(t, rec, &amenity)
	assert.Equal(t, "Wifi", amenity.Name)

	// Duplicate name, case-insensitive
	rec = env.do(t, http.MethodPost, "/api/v1/amenities", map[string]string{"name": "wifi"}, token)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Empty name
	rec = env.do(t, http.MethodPost, "/api/v1/amenities", map[string]string{"name": ""}, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAndListAmenitiesEndpoint(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	_, token := env.registerAndLogin(t, "admin@example.com")

	rec := env.do(t, http.MethodPost, "/api/v1/amenities", map[string]string{"name": "Wifi"}, token)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created AmenityResponse
	decodeBody(t, rec, &created)

	// Reads are public
	rec = env.do(t, http.MethodGet, "/api/v1/amenities/"+created.ID, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var amenity AmenityResponse
	decodeBody(t, rec, &amenity)
	assert.Equal(t, "Wifi", amenity.Name)

	rec = env.do(t, http.MethodGet, "/api/v1/amenities", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var amenities []AmenityResponse
	decodeBody(t, rec, &amenities)
	assert.Len(t, amenities, 1)

	rec = env.do(t, http.MethodGet, "/api/v1/amenities/"+uuid.NewString(), nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateAmenityEndpoint(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	_, token := env.registerAndLogin(t, "admin@example.com")

	rec := env.do(t, http.MethodPost, "/api/v1/amenities", map[string]string{"name": "Wifi"}, token)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created AmenityResponse
	decodeBody(t, rec, &created)

	rec = env.do(t, http.MethodPut, "/api/v1/amenities/"+created.ID, map[string]string{
		"name": "Wireless Internet",
	}, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated AmenityResponse
	decodeBody(t, rec, &updated)
	assert.Equal(t, "Wireless Internet", updated.Name)

	rec = env.do(t, http.MethodPut, "/api/v1/amenities/"+uuid.NewString(), map[string]string{
		"name": "Sauna",
	}, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
