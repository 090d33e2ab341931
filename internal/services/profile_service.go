package services

import (
	"context"

	"github.com/courtlab/HoopCoachBack/internal/cache"
	"github.com/courtlab/HoopCoachBack/internal/models"
	"github.com/courtlab/HoopCoachBack/internal/repository"
)

type playerCardStore interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Profile, error)
	ExistsByUserID(ctx context.Context, userID int64) (bool, error)
	UpdatePlayerCard(ctx context.Context, userID int64, input repository.PlayerCardInput) (*models.Profile, error)
	InsertPlayerCard(ctx context.Context, userID int64, email string, input repository.PlayerCardInput) (*models.Profile, error)
}

type ProfileService struct {
	profileRepo playerCardStore
	views       cache.ViewStore
}

func NewProfileService(profileRepo playerCardStore, views cache.ViewStore) *ProfileService {
	if views == nil {
		views = cache.NoopViewStore{}
	}
	return &ProfileService{profileRepo: profileRepo, views: views}
}

func (s *ProfileService) GetProfile(ctx context.Context, userID int64) (*models.Profile, error) {
	return s.profileRepo.GetByUserID(ctx, userID)
}

// CompletePlayerCard writes the full Player Card in one call: update if the
// profile row exists, insert otherwise. The fully-scouted flag is derived
// from the submitted fields on every write, never carried over.
func (s *ProfileService) CompletePlayerCard(ctx context.Context, userID int64, email string, input repository.PlayerCardInput) (*models.Profile, error) {
	input.IsFullyScouted = DeriveFullyScouted(
		input.FullName,
		input.Role,
		input.PlayerArchetype,
		input.TrainingContext,
		input.Goals,
	)

	exists, err := s.profileRepo.ExistsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var profile *models.Profile
	if exists {
		profile, err = s.profileRepo.UpdatePlayerCard(ctx, userID, input)
	} else {
		profile, err = s.profileRepo.InsertPlayerCard(ctx, userID, email, input)
	}
	if err != nil {
		return nil, err
	}

	_ = s.views.Invalidate(ctx, cache.KeyAthleteDashboard(userID), cache.KeyCoachDashboard)
	return profile, nil
}
