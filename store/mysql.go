package store

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fitarc/fitarc/models"
)

// MySQL persists the same repository contract through GORM. Selected with
// Store.Backend=mysql; handlers are unaware of the backend in use.
type MySQL struct {
	db *gorm.DB
}

// NewMySQL wraps an initialized gorm handle.
func NewMySQL(db *gorm.DB) *MySQL {
	return &MySQL{db: db}
}

// MySQLModels lists the row types for auto-migration.
func MySQLModels() []interface{} {
	return []interface{}{&userRow{}, &activityRow{}, &gamificationRow{}, &socialRow{}}
}

type userRow struct {
	ID          string `gorm:"primaryKey;size:36"`
	Email       string `gorm:"size:255;uniqueIndex"`
	Password    string `gorm:"size:255"`
	Name        string `gorm:"size:255"`
	Age         *int
	Weight      *float64
	Height      *float64
	Goals       []string           `gorm:"serializer:json"`
	Preferences models.Preferences `gorm:"serializer:json"`
	CreatedAt   time.Time
}

func (userRow) TableName() string { return "users" }

type activityRow struct {
	// Seq preserves insertion order across restarts.
	Seq       uint64 `gorm:"primaryKey;autoIncrement"`
	ID        string `gorm:"size:36;uniqueIndex"`
	UserID    string `gorm:"size:36;index"`
	Type      string `gorm:"size:64"`
	Duration  int
	Calories  int
	Distance  float64
	Steps     int
	HeartRate int
	Date      time.Time
	CreatedAt time.Time
}

func (activityRow) TableName() string { return "activities" }

type gamificationRow struct {
	UserID     string `gorm:"primaryKey;size:36"`
	XP         int
	Level      int
	Points     int
	Badges     []string           `gorm:"serializer:json"`
	Challenges []models.Challenge `gorm:"serializer:json"`
}

func (gamificationRow) TableName() string { return "gamification_records" }

type socialRow struct {
	UserID          string        `gorm:"primaryKey;size:36"`
	Friends         []string      `gorm:"serializer:json"`
	Teams           []models.Team `gorm:"serializer:json"`
	LeaderboardRank int
	TotalScore      int
}

func (socialRow) TableName() string { return "social_records" }

func (s *MySQL) CreateUser(u *models.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&userRow{}).Where("email = ?", u.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrConflict
		}

		if err := tx.Create(userRowFrom(*u)).Error; err != nil {
			return err
		}

		var total int64
		if err := tx.Model(&userRow{}).Count(&total).Error; err != nil {
			return err
		}

		g := models.DefaultGamification(u.ID)
		if err := tx.Create(gamificationRowFrom(g)).Error; err != nil {
			return err
		}
		soc := models.DefaultSocial(u.ID)
		soc.LeaderboardRank = int(total)
		return tx.Create(socialRowFrom(soc)).Error
	})
}

func (s *MySQL) UserByID(id string) (models.User, bool) {
	var row userRow
	if err := s.db.Where("id = ?", id).First(&row).Error; err != nil {
		return models.User{}, false
	}
	return row.model(), true
}

func (s *MySQL) UserByEmail(email string) (models.User, bool) {
	var row userRow
	if err := s.db.Where("email = ?", email).First(&row).Error; err != nil {
		return models.User{}, false
	}
	return row.model(), true
}

func (s *MySQL) Users() []models.User {
	var rows []userRow
	if err := s.db.Order("created_at ASC").Find(&rows).Error; err != nil {
		return []models.User{}
	}
	out := make([]models.User, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.model())
	}
	return out
}

func (s *MySQL) AddActivity(a *models.Activity) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.Date.IsZero() {
		a.Date = now
	}
	return s.db.Create(activityRowFrom(*a)).Error
}

func (s *MySQL) UpdateActivity(id string, patch models.ActivityPatch) (models.Activity, error) {
	var updated models.Activity
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var row activityRow
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		a := row.model()
		patch.Apply(&a)
		updated = a
		merged := activityRowFrom(a)
		merged.Seq = row.Seq
		return tx.Save(merged).Error
	})
	return updated, err
}

func (s *MySQL) DeleteActivity(id string) error {
	res := s.db.Where("id = ?", id).Delete(&activityRow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MySQL) ActivitiesByUser(userID string) []models.Activity {
	var rows []activityRow
	if err := s.db.Where("user_id = ?", userID).Order("seq ASC").Find(&rows).Error; err != nil {
		return []models.Activity{}
	}
	out := make([]models.Activity, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.model())
	}
	return out
}

func (s *MySQL) GamificationOrDefault(userID string) models.Gamification {
	var row gamificationRow
	if err := s.db.Where("user_id = ?", userID).First(&row).Error; err != nil {
		return models.DefaultGamification(userID)
	}
	return row.model()
}

func (s *MySQL) SaveGamification(g models.Gamification) error {
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(gamificationRowFrom(g)).Error
}

func (s *MySQL) SocialOrDefault(userID string) models.Social {
	var row socialRow
	if err := s.db.Where("user_id = ?", userID).First(&row).Error; err != nil {
		return models.DefaultSocial(userID)
	}
	return row.model()
}

func (s *MySQL) SaveSocial(soc models.Social) error {
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(socialRowFrom(soc)).Error
}

func userRowFrom(u models.User) *userRow {
	return &userRow{
		ID:          u.ID,
		Email:       u.Email,
		Password:    u.Password,
		Name:        u.Name,
		Age:         u.Age,
		Weight:      u.Weight,
		Height:      u.Height,
		Goals:       u.Goals,
		Preferences: u.Prefs,
		CreatedAt:   u.CreatedAt,
	}
}

func (r userRow) model() models.User {
	u := models.User{
		ID:        r.ID,
		Email:     r.Email,
		Password:  r.Password,
		Name:      r.Name,
		Age:       r.Age,
		Weight:    r.Weight,
		Height:    r.Height,
		Goals:     r.Goals,
		Prefs:     r.Preferences,
		CreatedAt: r.CreatedAt,
	}
	if u.Goals == nil {
		u.Goals = []string{}
	}
	if u.Prefs.ActivityTypes == nil {
		u.Prefs.ActivityTypes = []string{}
	}
	return u
}

func activityRowFrom(a models.Activity) *activityRow {
	return &activityRow{
		ID:        a.ID,
		UserID:    a.UserID,
		Type:      a.Type,
		Duration:  a.Duration,
		Calories:  a.Calories,
		Distance:  a.Distance,
		Steps:     a.Steps,
		HeartRate: a.HeartRate,
		Date:      a.Date,
		CreatedAt: a.CreatedAt,
	}
}

func (r activityRow) model() models.Activity {
	return models.Activity{
		ID:        r.ID,
		UserID:    r.UserID,
		Type:      r.Type,
		Duration:  r.Duration,
		Calories:  r.Calories,
		Distance:  r.Distance,
		Steps:     r.Steps,
		HeartRate: r.HeartRate,
		Date:      r.Date,
		CreatedAt: r.CreatedAt,
	}
}

func gamificationRowFrom(g models.Gamification) *gamificationRow {
	return &gamificationRow{
		UserID:     g.UserID,
		XP:         g.XP,
		Level:      g.Level,
		Points:     g.Points,
		Badges:     g.Badges,
		Challenges: g.Challenges,
	}
}

func (r gamificationRow) model() models.Gamification {
	g := models.Gamification{
		UserID:     r.UserID,
		XP:         r.XP,
		Level:      r.Level,
		Points:     r.Points,
		Badges:     r.Badges,
		Challenges: r.Challenges,
	}
	if g.Badges == nil {
		g.Badges = []string{}
	}
	if g.Challenges == nil {
		g.Challenges = []models.Challenge{}
	}
	return g
}

func socialRowFrom(s models.Social) *socialRow {
	return &socialRow{
		UserID:          s.UserID,
		Friends:         s.Friends,
		Teams:           s.Teams,
		LeaderboardRank: s.LeaderboardRank,
		TotalScore:      s.TotalScore,
	}
}

func (r socialRow) model() models.Social {
	s := models.Social{
		UserID:          r.UserID,
		Friends:         r.Friends,
		Teams:           r.Teams,
		LeaderboardRank: r.LeaderboardRank,
		TotalScore:      r.TotalScore,
	}
	if s.Friends == nil {
		s.Friends = []string{}
	}
	if s.Teams == nil {
		s.Teams = []models.Team{}
	}
	return s
}
