package booking

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/models"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/validation"
)

func testHandler(svc *Service) *Handler {
	loc, _ := time.LoadLocation("Australia/Sydney")
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(svc, validation.New(), log, nil, loc)
}

func TestCreateHandlerConfirmsBooking(t *testing.T) {
	slotRepo := newMemSlotRepo(models.Slot{
		ID: "slot-1", Therapist: "brett", Date: "2025-06-10", StartTime: "09:00", EndTime: "10:00",
	})
	svc := testBookingService(slotRepo, newMemBookingRepo(), nil)
	h := testHandler(svc)

	body := `{"slot_id":"slot-1","name":"Jane Doe","email":"jane@example.com","phone":"0400 000 000"}`
	req := httptest.NewRequest("POST", "/api/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	require.Equal(t, 201, rec.Code)
	payload := rec.Body.String()
	require.Contains(t, payload, `"therapist_name":"Brett Boyland"`)
	require.Contains(t, payload, `"session_date":"Tuesday, 10 June 2025"`)
	require.Contains(t, payload, `"session_time":"9:00 AM – 10:00 AM"`)
	require.Contains(t, payload, `"session_price":"$110.00 AUD"`)
}

func TestCreateHandlerConflictOnBookedSlot(t *testing.T) {
	slotRepo := newMemSlotRepo(models.Slot{
		ID: "slot-1", Therapist: "brett", Date: "2025-06-10", StartTime: "09:00", EndTime: "10:00", IsBooked: true,
	})
	svc := testBookingService(slotRepo, newMemBookingRepo(), nil)
	h := testHandler(svc)

	body := `{"slot_id":"slot-1","name":"Jane Doe","email":"jane@example.com","phone":"0400 000 000"}`
	req := httptest.NewRequest("POST", "/api/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	require.Equal(t, 409, rec.Code)
	require.Contains(t, rec.Body.String(), "slot already booked")
}

func TestCreateHandlerRejectsBadPayload(t *testing.T) {
	svc := testBookingService(newMemSlotRepo(), newMemBookingRepo(), nil)
	h := testHandler(svc)

	for _, body := range []string{
		`not json`,
		`{"slot_id":"slot-1"}`,
		`{"slot_id":"slot-1","name":"Jane","email":"not-an-email","phone":"0400 000 000"}`,
		`{"slot_id":"slot-1","name":"Jane","email":"jane@example.com","phone":"0400 000 000","extra":true}`,
	} {
		req := httptest.NewRequest("POST", "/api/bookings", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.Create(rec, req)
		require.Equal(t, 400, rec.Code, "body: %s", body)
	}
}
