package repository

import (
	"context"

	"github.com/courtlab/HoopCoachBack/internal/models"
	"github.com/jackc/pgx/v5"
)

const profileColumns = `
	id, user_id, email, full_name, age, height_cm, weight_kg, role,
	player_archetype, playstyle_team_vs_iso, playstyle_shooter_vs_slasher, playstyle_finesse_vs_power,
	training_context, goals, weekly_sessions_target, typical_session_length_minutes,
	sleep_hours_per_night, schedule_blocks, visibility, instagram_url, youtube_url,
	highlight_tagline, is_fully_scouted, created_at, updated_at`

type ProfileRepository struct {
	db DBTX
}

func NewProfileRepository(db DBTX) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// PlayerCardInput carries every wizard field. The profile is always written
// as a whole; nothing else partially patches player card columns.
type PlayerCardInput struct {
	FullName                    string
	Age                         *int
	HeightCM                    *float64
	WeightKG                    *float64
	Role                        string
	PlayerArchetype             string
	PlaystyleTeamVsIso          int
	PlaystyleShooterVsSlasher   int
	PlaystyleFinesseVsPower     int
	TrainingContext             string
	Goals                       []models.PlayerGoal
	WeeklySessionsTarget        int
	TypicalSessionLengthMinutes int
	SleepHoursPerNight          string
	ScheduleBlocks              []string
	Visibility                  string
	InstagramURL                *string
	YouTubeURL                  *string
	HighlightTagline            string
	IsFullyScouted              bool
}

func (r *ProfileRepository) CreateInitial(ctx context.Context, userID int64, email, role string) error {
	query := `INSERT INTO profiles (user_id, email, role) VALUES ($1, $2, $3)`
	_, err := r.db.Exec(ctx, query, userID, email, role)
	return err
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`
	return scanProfile(r.db.QueryRow(ctx, query, userID))
}

func (r *ProfileRepository) ExistsByUserID(ctx context.Context, userID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM profiles WHERE user_id = $1)`, userID).
		Scan(&exists)
	return exists, err
}

// UpdatePlayerCard overwrites every player card field for an existing profile.
func (r *ProfileRepository) UpdatePlayerCard(ctx context.Context, userID int64, input PlayerCardInput) (*models.Profile, error) {
	query := `
		UPDATE profiles
		SET full_name = $1,
			age = $2,
			height_cm = $3,
			weight_kg = $4,
			role = $5,
			player_archetype = $6,
			playstyle_team_vs_iso = $7,
			playstyle_shooter_vs_slasher = $8,
			playstyle_finesse_vs_power = $9,
			training_context = $10,
			goals = $11,
			weekly_sessions_target = $12,
			typical_session_length_minutes = $13,
			sleep_hours_per_night = $14,
			schedule_blocks = $15,
			visibility = $16,
			instagram_url = $17,
			youtube_url = $18,
			highlight_tagline = $19,
			is_fully_scouted = $20,
			updated_at = NOW()
		WHERE user_id = $21
		RETURNING ` + profileColumns
	return scanProfile(r.db.QueryRow(ctx, query,
		input.FullName,
		input.Age,
		input.HeightCM,
		input.WeightKG,
		input.Role,
		input.PlayerArchetype,
		input.PlaystyleTeamVsIso,
		input.PlaystyleShooterVsSlasher,
		input.PlaystyleFinesseVsPower,
		input.TrainingContext,
		input.Goals,
		input.WeeklySessionsTarget,
		input.TypicalSessionLengthMinutes,
		input.SleepHoursPerNight,
		input.ScheduleBlocks,
		input.Visibility,
		input.InstagramURL,
		input.YouTubeURL,
		input.HighlightTagline,
		input.IsFullyScouted,
		userID,
	))
}

// InsertPlayerCard creates the profile row when none exists yet.
func (r *ProfileRepository) InsertPlayerCard(ctx context.Context, userID int64, email string, input PlayerCardInput) (*models.Profile, error) {
	query := `
		INSERT INTO profiles (
			user_id, email, full_name, age, height_cm, weight_kg, role,
			player_archetype, playstyle_team_vs_iso, playstyle_shooter_vs_slasher, playstyle_finesse_vs_power,
			training_context, goals, weekly_sessions_target, typical_session_length_minutes,
			sleep_hours_per_night, schedule_blocks, visibility, instagram_url, youtube_url,
			highlight_tagline, is_fully_scouted
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		RETURNING ` + profileColumns
	return scanProfile(r.db.QueryRow(ctx, query,
		userID,
		email,
		input.FullName,
		input.Age,
		input.HeightCM,
		input.WeightKG,
		input.Role,
		input.PlayerArchetype,
		input.PlaystyleTeamVsIso,
		input.PlaystyleShooterVsSlasher,
		input.PlaystyleFinesseVsPower,
		input.TrainingContext,
		input.Goals,
		input.WeeklySessionsTarget,
		input.TypicalSessionLengthMinutes,
		input.SleepHoursPerNight,
		input.ScheduleBlocks,
		input.Visibility,
		input.InstagramURL,
		input.YouTubeURL,
		input.HighlightTagline,
		input.IsFullyScouted,
	))
}

func (r *ProfileRepository) ListAthletes(ctx context.Context) ([]models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE role = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, models.RoleAthlete)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []models.Profile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *profile)
	}
	return profiles, rows.Err()
}

func scanProfile(row pgx.Row) (*models.Profile, error) {
	var profile models.Profile
	err := row.Scan(
		&profile.ID,
		&profile.UserID,
		&profile.Email,
		&profile.FullName,
		&profile.Age,
		&profile.HeightCM,
		&profile.WeightKG,
		&profile.Role,
		&profile.PlayerArchetype,
		&profile.PlaystyleTeamVsIso,
		&profile.PlaystyleShooterVsSlasher,
		&profile.PlaystyleFinesseVsPower,
		&profile.TrainingContext,
		&profile.Goals,
		&profile.WeeklySessionsTarget,
		&profile.TypicalSessionLengthMinutes,
		&profile.SleepHoursPerNight,
		&profile.ScheduleBlocks,
		&profile.Visibility,
		&profile.InstagramURL,
		&profile.YouTubeURL,
		&profile.HighlightTagline,
		&profile.IsFullyScouted,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
