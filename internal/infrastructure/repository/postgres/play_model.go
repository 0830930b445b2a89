package postgres

import (
	"time"

	"github.com/bytedance/sonic"

	"github.com/courtvision/court-vision/internal/domain/play"
)

var playColumns = []string{
	"p.id", "p.game_external_id", "p.quarter", "p.game_time", "p.description",
	"COALESCE(p.created_by_id, '') AS created_by_id", "p.created_at", "p.updated_at",
}

var playTagColumns = []string{
	"id", "play_id", "tag_id", "COALESCE(player_external_id, '') AS player_external_id",
	"COALESCE(team_external_id, '') AS team_external_id", "position", "context", "created_at",
}

// clockOrder sorts "MM:SS" remaining time descending regardless of digits.
const clockOrder = "(split_part(p.game_time, ':', 1)::int * 60 + split_part(p.game_time, ':', 2)::int) DESC"

type playTableModel struct {
	ID             string    `db:"id"`
	GameExternalID string    `db:"game_external_id"`
	Quarter        int       `db:"quarter"`
	GameTime       string    `db:"game_time"`
	Description    string    `db:"description"`
	CreatedByID    string    `db:"created_by_id"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

type playTagTableModel struct {
	ID               string    `db:"id"`
	PlayID           string    `db:"play_id"`
	TagID            string    `db:"tag_id"`
	PlayerExternalID string    `db:"player_external_id"`
	TeamExternalID   string    `db:"team_external_id"`
	Position         int       `db:"position"`
	Context          []byte    `db:"context"`
	CreatedAt        time.Time `db:"created_at"`
}

type taggedActionRow struct {
	PlayID           string    `db:"play_id"`
	GameExternalID   string    `db:"game_external_id"`
	Quarter          int       `db:"quarter"`
	GameTime         string    `db:"game_time"`
	PlayCreatedAt    time.Time `db:"play_created_at"`
	Position         int       `db:"position"`
	TagID            string    `db:"tag_id"`
	TagName          string    `db:"tag_name"`
	TagCategory      string    `db:"tag_category"`
	PlayerExternalID string    `db:"player_external_id"`
	TeamExternalID   string    `db:"team_external_id"`
	Context          []byte    `db:"context"`
}

type contextDocument struct {
	Action             string `json:"action,omitempty"`
	Outcome            string `json:"outcome,omitempty"`
	ShotZone           string `json:"shotZone,omitempty"`
	DefenderExternalID string `json:"defenderId,omitempty"`
	Notes              string `json:"notes,omitempty"`
}

func encodeContext(c play.Context) (string, error) {
	return marshalJSONB(contextDocument{
		Action:             c.Action,
		Outcome:            string(c.Outcome),
		ShotZone:           string(c.ShotZone),
		DefenderExternalID: c.DefenderExternalID,
		Notes:              c.Notes,
	})
}

func decodeContext(raw []byte) (play.Context, error) {
	if len(raw) == 0 {
		return play.Context{}, nil
	}
	var doc contextDocument
	if err := sonic.Unmarshal(raw, &doc); err != nil {
		return play.Context{}, err
	}
	return play.Context{
		Action:             doc.Action,
		Outcome:            play.Outcome(doc.Outcome),
		ShotZone:           play.ShotZone(doc.ShotZone),
		DefenderExternalID: doc.DefenderExternalID,
		Notes:              doc.Notes,
	}, nil
}

func playFromRow(row playTableModel) play.Play {
	return play.Play{
		ID:             row.ID,
		GameExternalID: row.GameExternalID,
		Quarter:        row.Quarter,
		GameTime:       row.GameTime,
		Description:    row.Description,
		CreatedByID:    row.CreatedByID,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

func playTagFromRow(row playTagTableModel) (play.PlayTag, error) {
	ctx, err := decodeContext(row.Context)
	if err != nil {
		return play.PlayTag{}, err
	}
	return play.PlayTag{
		ID:               row.ID,
		PlayID:           row.PlayID,
		TagID:            row.TagID,
		PlayerExternalID: row.PlayerExternalID,
		TeamExternalID:   row.TeamExternalID,
		Position:         row.Position,
		Context:          ctx,
		CreatedAt:        row.CreatedAt,
	}, nil
}

func taggedActionFromRow(row taggedActionRow) (play.TaggedAction, error) {
	ctx, err := decodeContext(row.Context)
	if err != nil {
		return play.TaggedAction{}, err
	}
	return play.TaggedAction{
		PlayID:           row.PlayID,
		GameExternalID:   row.GameExternalID,
		Quarter:          row.Quarter,
		GameTime:         row.GameTime,
		PlayCreatedAt:    row.PlayCreatedAt,
		Position:         row.Position,
		TagID:            row.TagID,
		TagName:          row.TagName,
		TagCategory:      row.TagCategory,
		PlayerExternalID: row.PlayerExternalID,
		TeamExternalID:   row.TeamExternalID,
		Context:          ctx,
	}, nil
}

func playTagInsertArgs(t play.PlayTag) (map[string]any, error) {
	ctx, err := encodeContext(t.Context)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"id":                 t.ID,
		"play_id":            t.PlayID,
		"tag_id":             t.TagID,
		"player_external_id": nullString(t.PlayerExternalID),
		"team_external_id":   nullString(t.TeamExternalID),
		"position":           t.Position,
		"context":            ctx,
		"created_at":         t.CreatedAt,
	}, nil
}
