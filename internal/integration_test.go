package internal

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"property-admin-backend/config"
	"property-admin-backend/internal/api"
	"property-admin-backend/internal/db"
	"property-admin-backend/internal/model"
	"property-admin-backend/internal/notification"
	"property-admin-backend/internal/settings"
	"property-admin-backend/internal/store"
)

// TestDashboardLifecycle walks an operator session end to end: navigate
// to the reservations tab, approve a pending reservation, verify the
// decision reaches the notification pool, save amenity rules, and add
// an amenity through the suggestion banner.
func TestDashboardLifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// 1. In-memory settings database with migrations.
	testDB, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, _ := testDB.DB()
	defer sqlDB.Close()
	require.NoError(t, db.Migrate(testDB))

	// 2. Seeded entity store, settings store, and a worker pool whose
	// jobs channel we drain directly instead of starting workers.
	entityStore := store.NewSeeded()
	settingsStore := settings.NewStore(testDB)
	pool := notification.NewWorkerPool(4, testDB, &webpush.Options{VAPIDPublicKey: "test-key"})

	handler := api.NewHandler(entityStore, settingsStore, testDB, pool, &webpush.Options{VAPIDPublicKey: "test-key"}, nil)
	router := api.NewRouter(handler, &config.ServerConfig{
		RateLimitPerSec: 1000,
		RateLimitBurst:  1000,
		CacheTTLSeconds: 60,
	})

	do := func(method, path string, body any) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		if body != nil {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
		req := httptest.NewRequest(method, path, &buf)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	// 3. Register a push subscription.
	w := do(http.MethodPut, "/api/subscriptions", gin.H{
		"endpoint": "https://example.com/push", "p256dh": "key", "auth": "auth",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// 4. Navigate to reservations; the pending table renders with the
	// seeded requested rows.
	w = do(http.MethodPost, "/api/view/tab", gin.H{"id": "reservations"})
	require.Equal(t, http.StatusOK, w.Code)
	var view struct {
		State struct {
			ActiveSubTab string `json:"activeSubTab"`
		} `json:"state"`
		Fragments map[string]string `json:"fragments"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, "pending-reservations", view.State.ActiveSubTab)
	assert.Contains(t, view.Fragments["pending-reservations-table-body"], "res001")

	// 5. Approve the pool reservation and pick the decision off the
	// worker queue.
	w = do(http.MethodPost, "/api/reservations/res001/approve", nil)
	require.Equal(t, http.StatusOK, w.Code)

	select {
	case decision := <-pool.Jobs():
		assert.Equal(t, "res001", decision.ReservationID)
		assert.Equal(t, "Swimming Pool", decision.AmenityName)
		assert.Equal(t, model.ReservationApproved, decision.Status)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for the decision to be dispatched")
	}

	// The pending table no longer lists res001.
	w = do(http.MethodGet, "/api/fragments/pending-reservations", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "res001")

	// 6. Save amenity rules and read them back through the API.
	w = do(http.MethodPut, "/api/settings/amenity-rules", map[string]model.AmenityRule{
		"swimming-pool": {AllowFriends: true, Timing: "07:00-21:00"},
	})
	require.Equal(t, http.StatusNoContent, w.Code)

	w = do(http.MethodGet, "/api/fragments/rules-list", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Swimming Pool")
	assert.Contains(t, w.Body.String(), "Allow Friends/Guests: Yes")

	// 7. Accept the amenity suggestion and submit it; the new amenity
	// shows up in the rules dropdown.
	w = do(http.MethodPost, "/api/dialogs/amenity/open", gin.H{"mode": "suggestion"})
	require.Equal(t, http.StatusOK, w.Code)
	w = do(http.MethodPost, "/api/dialogs/amenity/submit", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(http.MethodGet, "/api/fragments/rule-options", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `value="co-working-space"`)

	// 8. Resident search narrows the table.
	w = do(http.MethodGet, "/api/fragments/residents?q=bob", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Bob Johnson")
	assert.NotContains(t, w.Body.String(), "Alice Smith")
}
