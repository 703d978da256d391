package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/fitarc/fitarc/store"
)

func TestLogActivityCreditsDurationFallback(t *testing.T) {
	st := store.NewMemory()
	r := newTestRouter(st)
	id := createTestUser(t, r, "runner@example.com", "Runner")

	// Zero calories: credit falls back to duration*10 XP and duration*5 points.
	w := doJSON(t, r, "POST", "/activity/log", gin.H{
		"userId":   id,
		"type":     "Running",
		"duration": 30,
		"calories": 0,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeBody(t, w)
	gamification := body["gamification"].(map[string]any)
	require.Equal(t, float64(300), gamification["xp"])
	require.Equal(t, float64(150), gamification["points"])

	g := st.GamificationOrDefault(id)
	require.Equal(t, 300, g.XP)
	require.Equal(t, 150, g.Points)
}

func TestLogActivityCreditsCalories(t *testing.T) {
	st := store.NewMemory()
	r := newTestRouter(st)
	id := createTestUser(t, r, "cyclist@example.com", "Cyclist")

	w := doJSON(t, r, "POST", "/activity/log", gin.H{
		"userId":   id,
		"type":     "Cycling",
		"duration": 45,
		"calories": 250,
	})
	require.Equal(t, http.StatusOK, w.Code)

	g := st.GamificationOrDefault(id)
	require.Equal(t, 250, g.XP)
	require.Equal(t, 250, g.Points)
}

func TestLogActivityMissingFields(t *testing.T) {
	r := newTestRouter(store.NewMemory())

	w := doJSON(t, r, "POST", "/activity/log", gin.H{"userId": "u1", "type": "Running"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, false, decodeBody(t, w)["success"])
}

func TestSyncActivitiesDefaultsAndCount(t *testing.T) {
	st := store.NewMemory()
	r := newTestRouter(st)

	w := doJSON(t, r, "POST", "/activity/sync", gin.H{
		"userId": "u1",
		"activities": []gin.H{
			{"type": "Walking", "duration": 20},
			{"duration": 15},
			{},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	require.Equal(t, float64(3), body["count"])

	stored := st.ActivitiesByUser("u1")
	require.Len(t, stored, 3)
	require.Equal(t, "Walking", stored[0].Type)
	require.Equal(t, "Synced Activity", stored[1].Type)
	require.Equal(t, 0, stored[2].Duration)

	// Sync never credits the ledger.
	g := st.GamificationOrDefault("u1")
	require.Equal(t, 0, g.XP)
}

func TestUpdateActivityShallowMerge(t *testing.T) {
	st := store.NewMemory()
	r := newTestRouter(st)
	id := createTestUser(t, r, "pat@example.com", "Pat")

	w := doJSON(t, r, "POST", "/activity/log", gin.H{
		"userId":   id,
		"type":     "Yoga",
		"duration": 60,
	})
	require.Equal(t, http.StatusOK, w.Code)
	activity := decodeBody(t, w)["activity"].(map[string]any)
	activityID := activity["id"].(string)

	w = doJSON(t, r, "PATCH", "/activity/"+activityID, gin.H{"type": "Pilates"})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeBody(t, w)["activity"].(map[string]any)
	require.Equal(t, "Pilates", updated["type"])
	// Untouched fields survive the merge.
	require.Equal(t, float64(60), updated["duration"])
}

func TestUpdateActivityNotFound(t *testing.T) {
	r := newTestRouter(store.NewMemory())

	w := doJSON(t, r, "PATCH", "/activity/nope", gin.H{"type": "X"})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Activity not found", decodeBody(t, w)["error"])
}

func TestDeleteActivity(t *testing.T) {
	st := store.NewMemory()
	r := newTestRouter(st)

	w := doJSON(t, r, "POST", "/activity/sync", gin.H{
		"userId": "u1",
		"activities": []gin.H{
			{"type": "A", "duration": 1},
			{"type": "B", "duration": 2},
			{"type": "C", "duration": 3},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)
	middle := st.ActivitiesByUser("u1")[1]

	w = doJSON(t, r, "DELETE", "/activity/"+middle.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, decodeBody(t, w)["success"])

	remaining := st.ActivitiesByUser("u1")
	require.Len(t, remaining, 2)
	require.Equal(t, "A", remaining[0].Type)
	require.Equal(t, "C", remaining[1].Type)
}

func TestDeleteActivityNotFound(t *testing.T) {
	r := newTestRouter(store.NewMemory())

	w := doJSON(t, r, "DELETE", "/activity/nope", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	require.Equal(t, false, body["success"])
	require.Equal(t, "Activity not found", body["error"])
}

func TestListActivitiesRequiresUserID(t *testing.T) {
	r := newTestRouter(store.NewMemory())

	w := doJSON(t, r, "GET", "/activity/list", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
