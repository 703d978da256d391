package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/fitarc/fitarc/store"
)

func TestCreateUserInitializesRecords(t *testing.T) {
	st := store.NewMemory()
	r := newTestRouter(st)

	id := createTestUser(t, r, "ana@example.com", "Ana")

	g := st.GamificationOrDefault(id)
	require.Equal(t, 0, g.XP)
	require.Equal(t, 1, g.Level)
	require.Equal(t, 0, g.Points)
	require.Empty(t, g.Badges)
	require.Empty(t, g.Challenges)

	s := st.SocialOrDefault(id)
	require.Empty(t, s.Friends)
	require.Empty(t, s.Teams)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	st := store.NewMemory()
	r := newTestRouter(st)

	createTestUser(t, r, "dup@example.com", "First")

	w := doJSON(t, r, "POST", "/user/create", gin.H{
		"email":    "dup@example.com",
		"password": "other",
		"name":     "Second",
	})
	require.Equal(t, http.StatusConflict, w.Code)
	body := decodeBody(t, w)
	require.Equal(t, false, body["success"])
	require.Equal(t, "User already exists", body["error"])

	// The failed signup must not touch the directory.
	require.Len(t, st.Users(), 1)
}

func TestCreateUserMissingFields(t *testing.T) {
	r := newTestRouter(store.NewMemory())

	w := doJSON(t, r, "POST", "/user/create", gin.H{"email": "x@example.com"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, false, decodeBody(t, w)["success"])
}

func TestLoginReturnsMockPoints(t *testing.T) {
	st := store.NewMemory()
	r := newTestRouter(st)
	createTestUser(t, r, "lee@example.com", "Lee")

	w := doJSON(t, r, "POST", "/auth/login", gin.H{
		"email":    "lee@example.com",
		"password": "secret",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	require.Equal(t, true, body["success"])
	user := body["user"].(map[string]any)
	require.Equal(t, float64(mockLoginPoints), user["points"])
	require.Equal(t, "Lee", user["name"])
}

func TestLoginBadCredentials(t *testing.T) {
	st := store.NewMemory()
	r := newTestRouter(st)
	createTestUser(t, r, "mia@example.com", "Mia")

	for _, req := range []gin.H{
		{"email": "mia@example.com", "password": "wrong"},
		{"email": "nobody@example.com", "password": "secret"},
	} {
		w := doJSON(t, r, "POST", "/auth/login", req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Equal(t, "Invalid credentials", decodeBody(t, w)["error"])
	}
}

func TestGetUserNotFound(t *testing.T) {
	r := newTestRouter(store.NewMemory())

	w := doJSON(t, r, "GET", "/user/missing-id", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, false, decodeBody(t, w)["success"])
}
