package handlers

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/config"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/validation"
)

func testServer() *Server {
	return NewServer(&config.Config{}, nil, validation.New(),
		slog.New(slog.NewTextHandler(io.Discard, nil)), nil, nil, nil)
}

func TestAdminConfigurePaymentRejectsBadKeys(t *testing.T) {
	s := testServer()

	cases := []struct {
		body string
		want int
	}{
		{`not json`, 400},
		{`{}`, 400},
		{`{"secret_key":"pk_live_123"}`, 400},
		{`{"secret_key":"totally-wrong"}`, 400},
	}
	for _, tc := range cases {
		req := httptest.NewRequest("POST", "/api/admin/settings/payment", strings.NewReader(tc.body))
		rec := httptest.NewRecorder()
		s.AdminConfigurePayment(rec, req)
		require.Equal(t, tc.want, rec.Code, "body: %s", tc.body)
	}
}

func TestAdminUpdateSettingsRequiresAField(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest("PUT", "/api/admin/settings", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	s.AdminUpdateSettings(rec, req)
	require.Equal(t, 400, rec.Code)

	req = httptest.NewRequest("PUT", "/api/admin/settings", strings.NewReader(`{"sandra_calendar_url":"not a url"}`))
	rec = httptest.NewRecorder()
	s.AdminUpdateSettings(rec, req)
	require.Equal(t, 400, rec.Code)
}
