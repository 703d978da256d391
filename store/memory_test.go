package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fitarc/fitarc/models"
)

func TestCreateUserAssignsIDAndRecords(t *testing.T) {
	m := NewMemory()

	u := models.User{Email: "kim@example.com", Password: "pw", Name: "Kim", Goals: []string{}}
	require.NoError(t, m.CreateUser(&u))
	require.NotEmpty(t, u.ID)
	require.False(t, u.CreatedAt.IsZero())

	g := m.GamificationOrDefault(u.ID)
	require.Equal(t, models.DefaultGamification(u.ID), g)

	s := m.SocialOrDefault(u.ID)
	require.Empty(t, s.Friends)
	require.Empty(t, s.Teams)
	require.Equal(t, 0, s.TotalScore)
	require.Equal(t, 1, s.LeaderboardRank)
}

func TestCreateUserConflict(t *testing.T) {
	m := NewMemory()

	first := models.User{Email: "same@example.com", Name: "First"}
	require.NoError(t, m.CreateUser(&first))

	second := models.User{Email: "same@example.com", Name: "Second"}
	require.ErrorIs(t, m.CreateUser(&second), ErrConflict)
	require.Len(t, m.Users(), 1)
}

func TestLookupsReportAbsence(t *testing.T) {
	m := NewMemory()

	_, ok := m.UserByID("nope")
	require.False(t, ok)
	_, ok = m.UserByEmail("nope@example.com")
	require.False(t, ok)
}

func TestGamificationOrDefaultDoesNotPersist(t *testing.T) {
	m := NewMemory()

	g := m.GamificationOrDefault("ghost")
	require.Equal(t, 1, g.Level)

	// Mutating the returned value must not leak into the store.
	g.XP = 500
	again := m.GamificationOrDefault("ghost")
	require.Equal(t, 0, again.XP)
}

func TestSocialOrDefaultDoesNotPersist(t *testing.T) {
	m := NewMemory()

	s := m.SocialOrDefault("ghost")
	s.Friends = append(s.Friends, "u2")

	require.Empty(t, m.SocialOrDefault("ghost").Friends)
}

func TestSaveGamificationRoundTrip(t *testing.T) {
	m := NewMemory()

	g := models.DefaultGamification("u1")
	g.XP = 1200
	g.Badges = append(g.Badges, "streak-7")
	require.NoError(t, m.SaveGamification(g))

	got := m.GamificationOrDefault("u1")
	require.Equal(t, 1200, got.XP)
	require.Equal(t, []string{"streak-7"}, got.Badges)
}

func TestActivitiesKeepInsertionOrder(t *testing.T) {
	m := NewMemory()

	for _, typ := range []string{"A", "B", "C"} {
		a := models.Activity{UserID: "u1", Type: typ, Duration: 10}
		require.NoError(t, m.AddActivity(&a))
		require.NotEmpty(t, a.ID)
	}
	other := models.Activity{UserID: "u2", Type: "X", Duration: 5}
	require.NoError(t, m.AddActivity(&other))

	got := m.ActivitiesByUser("u1")
	require.Len(t, got, 3)
	require.Equal(t, "A", got[0].Type)
	require.Equal(t, "B", got[1].Type)
	require.Equal(t, "C", got[2].Type)
}

func TestUpdateActivityShallowMerge(t *testing.T) {
	m := NewMemory()

	a := models.Activity{UserID: "u1", Type: "Running", Duration: 30, Calories: 200}
	require.NoError(t, m.AddActivity(&a))

	newType := "Trail Running"
	updated, err := m.UpdateActivity(a.ID, models.ActivityPatch{Type: &newType})
	require.NoError(t, err)
	require.Equal(t, "Trail Running", updated.Type)
	require.Equal(t, 30, updated.Duration)
	require.Equal(t, 200, updated.Calories)
}

func TestUpdateActivityNotFound(t *testing.T) {
	m := NewMemory()

	_, err := m.UpdateActivity("nope", models.ActivityPatch{})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteActivityPreservesOrder(t *testing.T) {
	m := NewMemory()

	ids := make([]string, 0, 3)
	for _, typ := range []string{"A", "B", "C"} {
		a := models.Activity{UserID: "u1", Type: typ, Duration: 1}
		require.NoError(t, m.AddActivity(&a))
		ids = append(ids, a.ID)
	}

	require.NoError(t, m.DeleteActivity(ids[1]))
	got := m.ActivitiesByUser("u1")
	require.Len(t, got, 2)
	require.Equal(t, "A", got[0].Type)
	require.Equal(t, "C", got[1].Type)

	require.ErrorIs(t, m.DeleteActivity(ids[1]), ErrNotFound)
}

func TestUsersReturnsCopy(t *testing.T) {
	m := NewMemory()

	u := models.User{Email: "a@example.com", Name: "A"}
	require.NoError(t, m.CreateUser(&u))

	users := m.Users()
	users[0].Name = "mutated"
	fresh, ok := m.UserByID(u.ID)
	require.True(t, ok)
	require.Equal(t, "A", fresh.Name)
}
