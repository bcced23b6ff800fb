package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/benpop/lua-addrbit/addrbit"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func get(t *testing.T, router *gin.Engine, url string) (int, map[string]interface{}) {
	w := httptest.NewRecorder()
	req, err := http.NewRequest("GET", url, nil)
	require.NoError(t, err)
	router.ServeHTTP(w, req)

	body := make(map[string]interface{})
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w.Code, body
}

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return newRouter(addrbit.New(), zap.NewNop())
}

func TestOps(t *testing.T) {
	router := testRouter()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ops", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, 200, w.Code)

	var names []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &names))
	assert.Equal(t, addrbit.Names(), names)
}

func TestCall(t *testing.T) {
	router := testRouter()

	code, body := get(t, router, "/call/arshift?arg=0x8000000000000000&arg=1")
	assert.Equal(t, 200, code)
	assert.Equal(t, "0xc000000000000000", body["hex"])

	code, body = get(t, router, "/call/replace?arg=0&arg=11&arg=4&arg=4")
	assert.Equal(t, 200, code)
	assert.Equal(t, "176", body["result"])

	code, body = get(t, router, "/call/bnot?arg=0")
	assert.Equal(t, 200, code)
	assert.Equal(t, "18446744073709551615", body["result"])

	code, body = get(t, router, "/call/bor?arg=ff&radix=16")
	assert.Equal(t, 200, code)
	assert.Equal(t, "0xff", body["hex"])

	code, body = get(t, router, "/call/btest?arg=1&arg=3")
	assert.Equal(t, 200, code)
	assert.Equal(t, true, body["result"])
}

func TestCallErrors(t *testing.T) {
	router := testRouter()

	code, body := get(t, router, "/call/extract?arg=0&arg=60&arg=5")
	assert.Equal(t, 400, code)
	assert.Equal(t, "trying to access non-existent bits", body["error"])

	code, _ = get(t, router, "/call/band")
	assert.Equal(t, 400, code)

	code, _ = get(t, router, "/call/bor?arg=1&radix=x")
	assert.Equal(t, 400, code)

	code, _ = get(t, router, "/call/nope?arg=1")
	assert.Equal(t, 404, code)
}

func TestMetricsEndpoint(t *testing.T) {
	router := testRouter()
	get(t, router, "/call/bnot?arg=0")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/metrics", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, 200, w.Code)
}
