package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/liris-lib/library-service/internal/errs"
	"github.com/liris-lib/library-service/internal/model"
	"github.com/liris-lib/library-service/internal/repository"
	"github.com/liris-lib/library-service/pkg/auth"
)

type Service struct {
	log      *zap.Logger
	repo     repository.Repository
	enqueuer Enqueuer
}

func NewService(repo repository.Repository, enqueuer Enqueuer, log *zap.Logger) *Service {
	return &Service{
		log:      log,
		repo:     repo,
		enqueuer: enqueuer,
	}
}

// Login verifies credentials against the stored bcrypt hash and resolves
// the session role. Users without a stored hash are accepted with a
// warning until the password migration completes.
func (s *Service) Login(ctx context.Context, req model.LoginRequest) (model.SessionUser, error) {
	user, err := s.repo.GetActiveUser(ctx, req.Email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.SessionUser{}, errs.ErrInvalidCreds
		}
		return model.SessionUser{}, err
	}

	if user.HashedPassword != nil && *user.HashedPassword != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(*user.HashedPassword), []byte(req.Password)); err != nil {
			return model.SessionUser{}, errs.ErrInvalidCreds
		}
	} else {
		s.log.Warn("user has no hashed_password, accepting any password",
			zap.String("email", user.Email))
	}

	role := auth.RoleUser
	if strings.Contains(user.Email, auth.RoleAdmin) {
		role = auth.RoleAdmin
	}

	return model.SessionUser{
		Email: user.Email,
		Name:  user.Name,
		Role:  role,
	}, nil
}

func (s *Service) CurrentUser(ctx context.Context, email string) (model.User, []model.Lab, error) {
	user, err := s.repo.GetUser(ctx, email)
	if err != nil {
		return model.User{}, nil, err
	}
	labs, err := s.repo.GetUserLabs(ctx, email)
	if err != nil {
		return model.User{}, nil, err
	}
	return user, labs, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]model.UserSummary, error) {
	return s.repo.ListUsers(ctx)
}

func (s *Service) ListLabs(ctx context.Context) ([]model.LabSummary, error) {
	return s.repo.ListLabs(ctx)
}

func (s *Service) ListPublications(ctx context.Context, filter model.PublicationFilter) (model.ListPublications, error) {
	pubs, total, err := s.repo.ListPublications(ctx, filter)
	if err != nil {
		return model.ListPublications{}, err
	}
	return model.ListPublications{
		Publications: pubs,
		Pagination:   model.NewPagination(filter.Page, filter.PerPage, total),
	}, nil
}

func (s *Service) GetPublication(ctx context.Context, id int) (model.PublicationDetail, error) {
	return s.repo.GetPublication(ctx, id)
}

func (s *Service) Statistics(ctx context.Context) (model.Statistics, error) {
	return s.repo.Statistics(ctx)
}
