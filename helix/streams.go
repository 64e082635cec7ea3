package helix

import (
	"context"
	"net/http"

	"github.com/andyle182810/twitchkit/pagination"
)

//nolint:tagliatelle
type Stream struct {
	ID           string   `json:"id"`
	UserID       string   `json:"user_id"`
	UserLogin    string   `json:"user_login"`
	UserName     string   `json:"user_name"`
	GameID       string   `json:"game_id"`
	GameName     string   `json:"game_name"`
	Type         string   `json:"type"`
	Title        string   `json:"title"`
	Tags         []string `json:"tags"`
	ViewerCount  int      `json:"viewer_count"`
	StartedAt    string   `json:"started_at"`
	Language     string   `json:"language"`
	ThumbnailURL string   `json:"thumbnail_url"`
	IsMature     bool     `json:"is_mature"`
}

type GetStreamsParams struct {
	UserIDs    []string `json:"user_id"    validate:"max=100"`
	UserLogins []string `json:"user_login" validate:"max=100"`
	GameIDs    []string `json:"game_id"    validate:"max=100"`
	Languages  []string `json:"language"   validate:"max=100"`
	Type       string   `json:"type"       validate:"omitempty,oneof=all live"`
	First      *int     `json:"first"      validate:"omitempty,min=1,max=100"`
	After      string   `json:"after"`
	Before     string   `json:"before"`
}

func (c *Client) GetStreams(ctx context.Context, params GetStreamsParams) ([]Stream, *pagination.Page, error) {
	if err := validateParams(params); err != nil {
		return nil, nil, err
	}

	var query Params

	query.AddAll("user_id", params.UserIDs)
	query.AddAll("user_login", params.UserLogins)
	query.AddAll("game_id", params.GameIDs)
	query.AddAll("language", params.Languages)
	query.AddOpt("type", params.Type)
	query.AddOpt("after", params.After)
	query.AddOpt("before", params.Before)
	query.AddOptInt("first", params.First)

	resp, err := c.Do(ctx, Request{ //nolint:exhaustruct
		Method: http.MethodGet,
		Path:   "/streams",
		Query:  query,
	})
	if err != nil {
		return nil, nil, err
	}

	return decodeList[Stream](resp)
}
