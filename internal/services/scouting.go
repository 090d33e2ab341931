package services

import "github.com/courtlab/HoopCoachBack/internal/models"

// IsProfileComplete reports whether a profile is minimally usable: it
// exists and has at least a name and a role.
func IsProfileComplete(profile *models.Profile) bool {
	if profile == nil {
		return false
	}
	return profile.FullName != nil && *profile.FullName != "" && profile.Role != ""
}

// IsFullyScouted reports whether every required Player Card field is
// complete. The persisted flag is a write-time derivation of the same
// predicate; callers must not trust it without field confirmation, so both
// are checked here.
func IsFullyScouted(profile *models.Profile) bool {
	if !IsProfileComplete(profile) {
		return false
	}
	return profile.PlayerArchetype != nil && *profile.PlayerArchetype != "" &&
		profile.TrainingContext != nil && *profile.TrainingContext != "" &&
		len(profile.Goals) > 0 &&
		profile.IsFullyScouted
}

// DeriveFullyScouted computes the flag persisted alongside its source
// fields. It is recomputed on every full profile write.
func DeriveFullyScouted(fullName, role, archetype, trainingContext string, goals []models.PlayerGoal) bool {
	return fullName != "" && role != "" && archetype != "" && trainingContext != "" && len(goals) > 0
}
