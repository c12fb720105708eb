package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/orders", CreateOrder)
	router.GET("/api/catalog", GetCatalog)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateOrderValidation(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{
			"missing fullName",
			`{"phone":"050-1234567","items":[{"name":"Unit Hoodie","quantity":1}],"totalAmount":120,"paymentMethod":"paybox"}`,
			"fullName",
		},
		{
			"missing phone",
			`{"fullName":"Dana","items":[{"name":"Unit Hoodie","quantity":1}],"totalAmount":120,"paymentMethod":"paybox"}`,
			"phone",
		},
		{
			"empty items",
			`{"fullName":"Dana","phone":"050-1234567","items":[],"totalAmount":120,"paymentMethod":"paybox"}`,
			"items",
		},
		{
			"zero quantity item",
			`{"fullName":"Dana","phone":"050-1234567","items":[{"name":"Unit Hoodie","quantity":0}],"totalAmount":120,"paymentMethod":"paybox"}`,
			"quantity",
		},
		{
			"missing paymentMethod",
			`{"fullName":"Dana","phone":"050-1234567","items":[{"name":"Unit Hoodie","quantity":1}],"totalAmount":120}`,
			"paymentMethod",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := postJSON(router, "/api/orders", tc.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, msgInvalidRequestBody, body["message"])
			assert.Equal(t, tc.field, body["field"])
		})
	}
}

func TestCreateOrderMalformedJSON(t *testing.T) {
	router := newTestRouter()

	rec := postJSON(router, "/api/orders", `{"fullName":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, msgInvalidRequestBody, body["message"])
	assert.NotContains(t, body, "field")
}

func TestGetCatalog(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/catalog", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Products []struct {
			ID           string `json:"id"`
			Name         string `json:"name"`
			Price        int    `json:"price"`
			RequiresSize bool   `json:"requiresSize"`
		} `json:"products"`
		Sizes []string `json:"sizes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Products)
	assert.Equal(t, "Unit Hoodie", body.Products[0].Name)
	assert.Contains(t, body.Sizes, "M")
}

func TestJsonFieldName(t *testing.T) {
	assert.Equal(t, "fullName", jsonFieldName("FullName"))
	assert.Equal(t, "quantity", jsonFieldName("Quantity"))
	assert.Equal(t, "", jsonFieldName(""))
}
