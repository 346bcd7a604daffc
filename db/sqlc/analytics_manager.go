package sqlc

import (
	"context"
	"encoding/json"

	cerr "github.com/saeidalz13/shipkombat/internal/error"
	mb "github.com/saeidalz13/shipkombat/models/battleship"
	"github.com/sqlc-dev/pqtype"
)

type AnalyticsManager struct {
	queries Querier
}

func NewAnalyticsManager(queries Querier) *AnalyticsManager {
	return &AnalyticsManager{queries: queries}
}

type finalBoards struct {
	User [][]string `json:"user"`
	Ai   [][]string `json:"ai"`
}

func boardStates(view mb.BoardView) [][]string {
	if view == nil {
		return nil
	}
	states := make([][]string, len(view))
	for i, row := range view {
		states[i] = make([]string, len(row))
		for j, state := range row {
			states[i][j] = state.String()
		}
	}
	return states
}

// RecordMatch stores the outcome of a finished match.
func (a *AnalyticsManager) RecordMatch(ctx context.Context, summary mb.MatchSummary) error {
	if summary.Winner == "" {
		return cerr.ErrMatchNotFinished
	}

	boards := pqtype.NullRawMessage{}
	if summary.UserBoard != nil || summary.AiBoard != nil {
		raw, err := json.Marshal(finalBoards{
			User: boardStates(summary.UserBoard),
			Ai:   boardStates(summary.AiBoard),
		})
		if err != nil {
			return err
		}
		boards = pqtype.NullRawMessage{RawMessage: raw, Valid: true}
	}

	return a.queries.InsertMatchResult(ctx, InsertMatchResultParams{
		GameUuid:    summary.GameUuid,
		Winner:      summary.Winner,
		Turns:       int32(summary.Turns),
		UserShots:   int32(summary.UserShots),
		AiShots:     int32(summary.AiShots),
		BoardSize:   int32(summary.BoardSize),
		FinalBoards: boards,
	})
}

func (a *AnalyticsManager) GetMatchesPlayedCount(ctx context.Context) (int64, error) {
	return a.queries.GetMatchesPlayedCount(ctx)
}

func (a *AnalyticsManager) GetWinsCount(ctx context.Context, winner string) (int64, error) {
	return a.queries.GetWinsCount(ctx, winner)
}
