package huntflow

import (
	"context"
	"net/http"
	"net/url"

	"github.com/wis-software/huntflow-reloaded-bot/internal/domain/entity"
)

// Candidates returns the candidates with non-expired scheduled interviews.
func (c *Client) Candidates(ctx context.Context) ([]entity.Candidate, error) {
	var out struct {
		Users []entity.Candidate `json:"users"`
	}
	if err := c.do(ctx, apiRequest{method: http.MethodGet, path: "/manage/list"}, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// DeleteInterview removes the candidate's non-expired interview.
func (c *Client) DeleteInterview(ctx context.Context, candidate entity.Candidate) error {
	body := map[string]entity.Candidate{"candidate": candidate}
	return c.do(ctx, apiRequest{method: http.MethodPost, path: "/manage/delete", body: body}, nil)
}

// UpcomingStarters returns the candidates with a known start-of-work date.
func (c *Client) UpcomingStarters(ctx context.Context) ([]entity.Candidate, error) {
	var out struct {
		Total int                `json:"total"`
		Users []entity.Candidate `json:"users"`
	}
	if err := c.do(ctx, apiRequest{method: http.MethodGet, path: "/manage/fwd_list"}, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// StartDate returns the start-of-work record for one candidate.
func (c *Client) StartDate(ctx context.Context, candidate entity.Candidate) (*entity.FwdCandidate, error) {
	query := url.Values{
		"first_name": {candidate.FirstName},
		"last_name":  {candidate.LastName},
	}

	var out struct {
		Candidate entity.FwdCandidate `json:"candidate"`
	}
	if err := c.do(ctx, apiRequest{method: http.MethodGet, path: "/manage/fwd", query: query}, &out); err != nil {
		return nil, err
	}
	return &out.Candidate, nil
}
