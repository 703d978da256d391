package controllers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/fitarc/fitarc/store"
)

func TestCoachReplyKeywords(t *testing.T) {
	cases := []struct {
		input    string
		fragment string
	}{
		{"What workout should I do today?", "HIIT session"},
		{"how do I EXERCISE better", "HIIT session"},
		{"How can I improve my running?", "interval training"},
		{"should i run tomorrow", "interval training"},
		{"Give me motivation for today", "You've got this"},
		{"motivate me please", "You've got this"},
		{"What's my progress this week?", "momentum"},
		{"show me my stats", "momentum"},
		{"what should I eat", "That's a great question"},
	}

	for _, tc := range cases {
		reply := coachReply(tc.input)
		require.Contains(t, reply, tc.fragment, "input %q", tc.input)
	}
}

func TestCoachReplyFirstMatchWins(t *testing.T) {
	// "workout" rows precede "running" rows in the script.
	reply := coachReply("workout plan for running")
	require.Contains(t, reply, "HIIT session")
}

func TestCoachChat(t *testing.T) {
	r := newTestRouter(store.NewMemory())

	w := doJSON(t, r, "POST", "/coach/chat", gin.H{"userId": "u1", "message": "need some motivation"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	reply := body["reply"].(map[string]any)
	require.Contains(t, reply["message"], "You've got this")
	require.NotEmpty(t, reply["id"])

	w = doJSON(t, r, "POST", "/coach/chat", gin.H{"userId": "u1"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCoachChatStripsMarkup(t *testing.T) {
	r := newTestRouter(store.NewMemory())

	// Keyword inside markup still matches once tags are stripped.
	w := doJSON(t, r, "POST", "/coach/chat", gin.H{"userId": "u1", "message": "<b>workout</b> tips"})
	require.Equal(t, http.StatusOK, w.Code)
	reply := decodeBody(t, w)["reply"].(map[string]any)
	require.Contains(t, reply["message"], "HIIT session")
}

func TestCoachNudge(t *testing.T) {
	r := newTestRouter(store.NewMemory())

	w := doJSON(t, r, "POST", "/coach/nudge", gin.H{"userId": "u1"})
	require.Equal(t, http.StatusOK, w.Code)
	nudge := decodeBody(t, w)["nudge"].(map[string]any)
	require.Equal(t, "motivation", nudge["type"])
	require.NotEmpty(t, nudge["message"])

	w = doJSON(t, r, "POST", "/coach/nudge", gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "User ID is required", decodeBody(t, w)["error"])
}

func TestCoachNudgesStaticPair(t *testing.T) {
	r := newTestRouter(store.NewMemory())

	w := doJSON(t, r, "GET", "/coach/nudges?userId=u1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	nudges := decodeBody(t, w)["nudges"].([]any)
	require.Len(t, nudges, 2)
	require.Equal(t, "motivation", nudges[0].(map[string]any)["type"])
	require.Equal(t, "workout", nudges[1].(map[string]any)["type"])

	w = doJSON(t, r, "GET", "/coach/nudges", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCoachWorkoutPlan(t *testing.T) {
	r := newTestRouter(store.NewMemory())

	w := doJSON(t, r, "GET", "/coach/workout-plan?userId=u1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	plan := decodeBody(t, w)["workoutPlan"].(map[string]any)
	require.Equal(t, "medium", plan["intensity"])
	require.Equal(t, float64(200), plan["estimatedCalories"])

	exercises := plan["exercises"].([]any)
	require.Len(t, exercises, 3)
	names := make([]string, 0, 3)
	for _, e := range exercises {
		names = append(names, e.(map[string]any)["name"].(string))
	}
	require.Equal(t, "Push-ups, Squats, Plank", strings.Join(names, ", "))
}

func TestCoachFeedback(t *testing.T) {
	r := newTestRouter(store.NewMemory())

	w := doJSON(t, r, "POST", "/coach/feedback", gin.H{"userId": "u1", "nudgeId": "1", "accepted": true})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Feedback recorded", decodeBody(t, w)["message"])

	w = doJSON(t, r, "POST", "/coach/feedback", gin.H{"userId": "u1"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}
