package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PlotPlanner_Go/internal/catalog"
	"github.com/osse101/PlotPlanner_Go/internal/domain"
)

// serve routes one request through a chi router so URL parameters resolve
func serve(method, pattern, target string, h http.HandlerFunc, body io.Reader) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Method(method, pattern, h)
	req := httptest.NewRequest(method, target, body)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v interface{}) io.Reader {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(raw)
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// shopStore extends the built-in catalog with priced plots and lamps
func shopStore(t *testing.T) *catalog.Store {
	t.Helper()
	data := catalog.Fallback().Data()
	data.Plots = []domain.PlotEntry{
		{Name: "Cardboard", Multiplier: 1, Price: 100, InStock: true},
		{Name: "Wooden", Multiplier: 2, Price: 500, InStock: true},
		{Name: "Stone", Multiplier: 4, Price: 2000},
	}
	data.Lamps = []domain.LampEntry{
		{Name: "Common", TimeReducePercent: 3, Price: 50, InStock: true},
		{Name: "Rare", TimeReducePercent: 12, USDT: 5},
	}
	cat, err := catalog.New(data)
	require.NoError(t, err)
	return catalog.NewStaticStore(cat)
}
