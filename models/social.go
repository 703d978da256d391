package models

// Team groups users. Teams are carried in the data model but no flow ever
// populates them.
type Team struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

// Social is the per-user friend list and score record. Friendships are
// one-directional: adding A->B does not add B->A.
type Social struct {
	UserID          string   `json:"userId"`
	Friends         []string `json:"friends"`
	Teams           []Team   `json:"teams"`
	LeaderboardRank int      `json:"leaderboardRank"`
	TotalScore      int      `json:"totalScore"`
}

// DefaultSocial returns the empty social record for a user.
func DefaultSocial(userID string) Social {
	return Social{
		UserID:  userID,
		Friends: []string{},
		Teams:   []Team{},
	}
}

// HasFriend reports whether friendID is already in the friend set.
func (s Social) HasFriend(friendID string) bool {
	for _, f := range s.Friends {
		if f == friendID {
			return true
		}
	}
	return false
}

// LeaderboardEntry is derived, never stored: the leaderboard is recomputed on
// every read by sorting all users by total score.
type LeaderboardEntry struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Score    int    `json:"score"`
	Rank     int    `json:"rank"`
}
