package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func putJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func setupSkiRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := NewHandler(nil, nil, nil)
	r.POST("/api/skis", handler.PostSki)
	r.PUT("/api/skis/:id", handler.PutSki)
	return r
}

func TestPostSkiRangeValidation(t *testing.T) {
	router := setupSkiRouter()

	tests := []struct {
		name string
		body string
	}{
		{"inverted weight range", `{"code":"A1","brand":"Atomic","model":"Redster S9","weightMin":90,"weightMax":60}`},
		{"degenerate weight range", `{"code":"A1","brand":"Atomic","model":"Redster S9","weightMin":70,"weightMax":70}`},
		{"weight min without max", `{"code":"A1","brand":"Atomic","model":"Redster S9","weightMin":60}`},
		{"inverted height range", `{"code":"A1","brand":"Atomic","model":"Redster S9","heightMin":190,"heightMax":160}`},
		{"height min without max", `{"code":"A1","brand":"Atomic","model":"Redster S9","heightMin":160}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(router, "/api/skis", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestPutSkiRangeValidation(t *testing.T) {
	router := setupSkiRouter()

	w := putJSON(router, "/api/skis/1", `{"code":"A1","brand":"Atomic","model":"Redster S9","heightMin":190,"heightMax":160}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSkiRequestValidateAllowsAbsentRanges(t *testing.T) {
	req := skiRequest{Code: "B1", Brand: "Blizzard", Model: "Firebird"}
	assert.NoError(t, req.validate())

	req.WeightMin, req.WeightMax = 60, 80
	req.HeightMin, req.HeightMax = 160, 180
	assert.NoError(t, req.validate())
}
