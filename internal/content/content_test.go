package content

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestVideoByID(t *testing.T) {
	video, ok := VideoByID("grief-loss")
	require.True(t, ok)
	require.Equal(t, "sandra", video.Therapist)
	require.Equal(t, "Healing Through Grief: Finding Meaning After Loss", video.Title)

	_, ok = VideoByID("unknown-topic")
	require.False(t, ok)
}

func TestVideoIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, v := range Videos() {
		require.False(t, seen[v.ID], "duplicate video id %s", v.ID)
		seen[v.ID] = true
		require.Contains(t, []string{"sandra", "brett"}, v.Therapist)
	}
}

func TestBookableServicesCarryPrices(t *testing.T) {
	for _, svc := range Services() {
		if svc.Bookable {
			require.NotEmpty(t, svc.Price, "bookable service %s needs a price", svc.ID)
		}
	}
}

func TestGetVideoNotFound(t *testing.T) {
	h := NewHandler(testLogger(), nil, 0)
	req := httptest.NewRequest("GET", "/api/content/videos/nope", nil)
	rec := httptest.NewRecorder()
	h.GetVideo(rec, req)
	require.Equal(t, 404, rec.Code)
}
