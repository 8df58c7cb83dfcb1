package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ordertotal/order-total-service/pkg/order"
	"github.com/ordertotal/order-total-service/pkg/taxrate"
)

const orderBody = `{"order_id":3,"product_id":12,"quantity":2,"subtotal":100,
	"shipping_address":"123 Main St","shipping_zip":"78701","total":0}`

// newTestServer stands up the whole stack: a fake rate-lookup service
// answering with rateResp, and the order API in front of it.
func newTestServer(t *testing.T, rateResp string) *httptest.Server {
	t.Helper()

	rateSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(rateResp)) //nolint:errcheck
	}))
	t.Cleanup(rateSrv.Close)

	rates := taxrate.New(rateSrv.URL, time.Second)
	handler := NewOrderHandler(order.NewService(rates))
	srv := httptest.NewServer(NewRouter(handler))
	t.Cleanup(srv.Close)
	return srv
}

func assertCORSHeaders(t *testing.T, h http.Header) {
	t.Helper()
	assert.Equal(t, "*", h.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS", h.Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "api,Keep-Alive,User-Agent,Content-Type", h.Get("Access-Control-Allow-Headers"))
}

func TestCompute(t *testing.T) {
	srv := newTestServer(t, "0.07")

	resp, err := http.Post(srv.URL+"/compute", "application/json", strings.NewReader(orderBody))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assertCORSHeaders(t, resp.Header)

	got := new(order.Order)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(got))
	assert.InDelta(t, 107.0, got.Total, 1e-3)
	assert.Equal(t, 3, got.OrderID)
	assert.Equal(t, "78701", got.ShippingZip)
}

func TestCompute_InvalidBody(t *testing.T) {
	srv := newTestServer(t, "0.07")

	resp, err := http.Post(srv.URL+"/compute", "application/json", strings.NewReader(`{"order_id":`))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assertCORSHeaders(t, resp.Header)

	var envelope struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, "error", envelope.Status)
	assert.Equal(t, "invalid request", envelope.Message)
}

func TestCompute_RateNotANumber(t *testing.T) {
	srv := newTestServer(t, "abc")

	resp, err := http.Post(srv.URL+"/compute", "application/json", strings.NewReader(orderBody))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assertCORSHeaders(t, resp.Header)

	var envelope struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, "error", envelope.Status)
	assert.Equal(t, "The zip code in the order does not have a corresponding sales tax rate.", envelope.Message)
}

func TestCompute_RateServiceDown(t *testing.T) {
	rateSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	rateSrv.Close()

	rates := taxrate.New(rateSrv.URL, time.Second)
	handler := NewOrderHandler(order.NewService(rates))
	srv := httptest.NewServer(NewRouter(handler))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/compute", "application/json", strings.NewReader(orderBody))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assertCORSHeaders(t, resp.Header)
}

func TestCompute_InputTotalIgnored(t *testing.T) {
	srv := newTestServer(t, "0.1")

	withTotal := `{"order_id":3,"product_id":12,"quantity":2,"subtotal":50,
		"shipping_address":"123 Main St","shipping_zip":"78701","total":123456.78}`
	resp, err := http.Post(srv.URL+"/compute", "application/json", strings.NewReader(withTotal))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := new(order.Order)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(got))
	assert.InDelta(t, 55.0, got.Total, 1e-3)
}

func TestPreflight(t *testing.T) {
	srv := newTestServer(t, "0.07")

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/compute", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assertCORSHeaders(t, resp.Header)
}

func TestUsage(t *testing.T) {
	srv := newTestServer(t, "0.07")

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assertCORSHeaders(t, resp.Header)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "compute")
}

func TestNotFound(t *testing.T) {
	srv := newTestServer(t, "0.07")

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"unknown path", http.MethodGet, "/foo"},
		{"wrong method on compute", http.MethodGet, "/compute"},
		{"wrong method on root", http.MethodPost, "/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, srv.URL+tt.path, nil)
			require.NoError(t, err)
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusNotFound, resp.StatusCode)
			assertCORSHeaders(t, resp.Header)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Empty(t, body)
		})
	}
}
