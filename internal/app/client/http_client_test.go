package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"fieldassets/internal/app/client/config"
	"fieldassets/internal/domain/asset"
	"fieldassets/internal/utils/dates"
)

func testClient(t *testing.T, handler http.Handler) *httpClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		ServerAddress: strings.TrimPrefix(srv.URL, "http://"),
		PageSize:      10,
	}
	return newHTTPClient(cfg, slog.Default())
}

func TestResource_List(t *testing.T) {
	h := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/asset/", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]asset.Asset{
			{ID: "a1", BrandName: "NeoBlast", AssetName: "NB-104", LocationName: "north yard", CalibrationDate: dates.MustParse("2024-06-25")},
			{ID: "a2", BrandName: "VoltCore", AssetName: "VC-7", LocationName: "office"},
		})
	}))

	assets, err := newResource[asset.Asset](h, "asset").List(context.Background())
	require.NoError(t, err)
	require.Len(t, assets, 2)
	assert.Equal(t, "a1", assets[0].ID)
	assert.Equal(t, dates.MustParse("2024-06-25"), assets[0].CalibrationDate)
	assert.True(t, assets[1].CalibrationDate.IsZero())
}

func TestResource_CreateAndUpdatePaths(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody asset.Asset

	h := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
	}))

	res := newResource[asset.Asset](h, "asset")

	err := res.Create(context.Background(), asset.Asset{BrandName: "NeoBlast", AssetName: "NB-104", LocationName: "north yard"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/asset/add/", gotPath)
	assert.Equal(t, "NB-104", gotBody.AssetName)

	err = res.Update(context.Background(), asset.Asset{ID: "a1", BrandName: "NeoBlast", AssetName: "NB-104b", LocationName: "north yard"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/asset/put/", gotPath)
	assert.Equal(t, "a1", gotBody.ID)
}

func TestResource_DeletePath(t *testing.T) {
	var gotMethod, gotPath string
	h := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))

	err := newResource[asset.Asset](h, "asset").Delete(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/asset/delete/a1", gotPath)
}

func TestResource_BackendFailure(t *testing.T) {
	h := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	res := newResource[asset.Asset](h, "asset")

	_, err := res.List(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "500")

	err = res.Delete(context.Background(), "a1")
	assert.Error(t, err)
}

func TestScheduleResource_Year(t *testing.T) {
	h := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/schedule/year/2024", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":"s1","title":"calibration","start_date":"2024-01-10","end_date":"2024-01-12","color":"#ffcc00"}]`))
	}))

	schedules, err := newScheduleResource(h).Year(context.Background(), 2024)
	require.NoError(t, err)
	require.Len(t, schedules, 1)
	assert.Equal(t, "calibration", schedules[0].Title)
	assert.Equal(t, dates.MustParse("2024-01-10"), schedules[0].Start)
}

func TestLookupNames(t *testing.T) {
	h := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/brand/":
			_, _ = w.Write([]byte(`[{"brand_id":"b1","brand_name":"NeoBlast"},{"brand_id":"b2","brand_name":"VoltCore"}]`))
		case "/location/":
			_, _ = w.Write([]byte(`[{"location_id":"l1","location_name":"office"}]`))
		default:
			http.NotFound(w, r)
		}
	}))

	brands, err := h.BrandNames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"NeoBlast", "VoltCore"}, brands)

	locations, err := h.LocationNames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"office"}, locations)
}

func TestHealthCheck(t *testing.T) {
	h := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/health", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"OK"}`))
	}))

	assert.NoError(t, h.HealthCheck(context.Background()))
}
