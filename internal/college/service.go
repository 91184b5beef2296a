package college

import (
	"context"
	"time"

	"github.com/Shoaib232002/Alumni-Project/internal/apperr"
)

// CollegeInfoStore is the persistence surface the service needs;
// *CollegeInfoRepository implements it against MongoDB.
type CollegeInfoStore interface {
	Find(ctx context.Context) (*CollegeInfo, error)
	Upsert(ctx context.Context, info *CollegeInfo) (*CollegeInfo, error)
}

type CollegeInfoService struct {
	repo CollegeInfoStore
}

func NewCollegeInfoService(repo CollegeInfoStore) *CollegeInfoService {
	return &CollegeInfoService{repo: repo}
}

func (s *CollegeInfoService) Get(ctx context.Context) (*CollegeInfo, error) {
	info, err := s.repo.Find(ctx)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, apperr.NotFound("College information not found")
	}
	return info, nil
}

// Upsert replaces the singleton's fields; creates the record on first write.
func (s *CollegeInfoService) Upsert(ctx context.Context, req UpsertCollegeInfoRequest) (*CollegeInfo, error) {
	info := &CollegeInfo{
		Name:             req.Name,
		Address:          req.Address,
		Phone:            req.Phone,
		Email:            req.Email,
		Website:          req.Website,
		Description:      req.Description,
		FoundedYear:      req.FoundedYear,
		TotalAlumni:      req.TotalAlumni,
		TotalFundsRaised: req.TotalFundsRaised,
		Logo:             req.Logo,
		SocialLinks:      req.SocialLinks,
		UpdatedAt:        time.Now(),
	}
	return s.repo.Upsert(ctx, info)
}
