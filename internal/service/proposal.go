package service

import (
	"context"
	"time"

	"github.com/liris-lib/library-service/internal/model"
	"github.com/liris-lib/library-service/pkg/auth"
)

func (s *Service) ListProposals(ctx context.Context, id auth.Identity) ([]model.Proposal, error) {
	return s.repo.ListProposals(ctx, id.Email, id.IsAdmin())
}

func (s *Service) CreateProposal(ctx context.Context, id auth.Identity, req model.CreateProposalRequest) (int, time.Time, error) {
	return s.repo.CreateProposal(ctx, id.Email, req)
}

func (s *Service) UpdateProposal(ctx context.Context, id auth.Identity, proposalID int, req model.UpdateProposalRequest) error {
	return s.repo.UpdateProposal(ctx, proposalID, req.Status, id.Email)
}
