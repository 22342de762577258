package contract

import (
	"context"

	"github.com/wis-software/huntflow-reloaded-bot/internal/domain/entity"
)

//go:generate mockgen -source=service.go -destination=../../../mocks/service.go -package=mocks

// HuntflowService exposes the management-server operations used by the
// slash-command handlers.
type HuntflowService interface {
	Candidates(ctx context.Context) ([]entity.Candidate, error)
	DeleteInterview(ctx context.Context, candidate entity.Candidate) error
	UpcomingStarters(ctx context.Context) ([]entity.Candidate, error)
	StartDate(ctx context.Context, candidate entity.Candidate) (*entity.FwdCandidate, error)
}
