package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProbe struct {
	name    string
	pingErr error
	names   []string
	listErr error
}

func (f *fakeProbe) Name() string               { return f.name }
func (f *fakeProbe) Ping(context.Context) error { return f.pingErr }

func (f *fakeProbe) CollectionNames(_ context.Context, limit int) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if len(f.names) > limit {
		return f.names[:limit], nil
	}
	return f.names, nil
}

func systemRouter(store StoreProbe) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewSystemHandler(store).RegisterRoutes(router)
	return router
}

func get(router *gin.Engine, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	var body map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestRoot(t *testing.T) {
	w, body := get(systemRouter(&fakeProbe{}), "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Ashen API", body["app"])
	assert.Equal(t, "ok", body["status"])
}

func TestTestDatabase_Connected(t *testing.T) {
	probe := &fakeProbe{name: "ashen", names: []string{"user", "sessions"}}
	w, body := get(systemRouter(probe), "/test")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "✅ Connected & Working", body["database"])
	assert.Equal(t, "ashen", body["database_name"])
	assert.Equal(t, "Connected", body["connection_status"])

	names, ok := body["collections"].([]interface{})
	require.True(t, ok)
	assert.Len(t, names, 2)
}

func TestTestDatabase_NoStore(t *testing.T) {
	w, body := get(systemRouter(nil), "/test")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "❌ Not Available", body["database"])
	assert.Equal(t, "Not Connected", body["connection_status"])
}

func TestTestDatabase_PingFailureDegrades(t *testing.T) {
	probe := &fakeProbe{name: "ashen", pingErr: errors.New(strings.Repeat("boom ", 30))}
	w, body := get(systemRouter(probe), "/test")

	// Probe failures never fail the request.
	require.Equal(t, http.StatusOK, w.Code)
	database, ok := body["database"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(database, "❌ Error: "))
	assert.LessOrEqual(t, len(strings.TrimPrefix(database, "❌ Error: ")), 50)
	assert.Equal(t, "Not Connected", body["connection_status"])
}

func TestTestDatabase_ListFailureDegrades(t *testing.T) {
	probe := &fakeProbe{name: "ashen", listErr: errors.New("no permission")}
	w, body := get(systemRouter(probe), "/test")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, body["database"], "Connected but Error")
	assert.Equal(t, "Connected", body["connection_status"])
}

func TestTestDatabase_CapsCollections(t *testing.T) {
	names := make([]string, 15)
	for i := range names {
		names[i] = "coll"
	}
	_, body := get(systemRouter(&fakeProbe{name: "ashen", names: names}), "/test")

	got, ok := body["collections"].([]interface{})
	require.True(t, ok)
	assert.Len(t, got, 10)
}
