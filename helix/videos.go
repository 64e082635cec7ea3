package helix

import (
	"context"
	"net/http"

	"github.com/andyle182810/twitchkit/pagination"
)

//nolint:tagliatelle
type Video struct {
	ID           string `json:"id"`
	StreamID     string `json:"stream_id"`
	UserID       string `json:"user_id"`
	UserLogin    string `json:"user_login"`
	UserName     string `json:"user_name"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	CreatedAt    string `json:"created_at"`
	PublishedAt  string `json:"published_at"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url"`
	Viewable     string `json:"viewable"`
	ViewCount    int    `json:"view_count"`
	Language     string `json:"language"`
	Type         string `json:"type"`
	Duration     string `json:"duration"`
}

type GetVideosParams struct {
	// Exactly one of IDs, UserID, or GameID selects the videos.
	IDs    []string `json:"id" validate:"max=100"`
	UserID string   `json:"user_id"`
	GameID string   `json:"game_id"`

	Language string `json:"language"`
	Period   string `json:"period" validate:"omitempty,oneof=all day month week"`
	Sort     string `json:"sort"   validate:"omitempty,oneof=time trending views"`
	Type     string `json:"type"   validate:"omitempty,oneof=all archive highlight upload"`
	First    *int   `json:"first"  validate:"omitempty,min=1,max=100"`
	After    string `json:"after"`
	Before   string `json:"before"`
}

func (c *Client) GetVideos(ctx context.Context, params GetVideosParams) ([]Video, *pagination.Page, error) {
	if err := validateParams(params); err != nil {
		return nil, nil, err
	}

	selectors := 0
	if len(params.IDs) > 0 {
		selectors++
	}

	if params.UserID != "" {
		selectors++
	}

	if params.GameID != "" {
		selectors++
	}

	if selectors != 1 {
		return nil, nil, &ValidationError{
			Field:   "id",
			Message: "exactly one of id, user_id, or game_id is required",
			kind:    ErrMissingParameter,
		}
	}

	var query Params

	query.AddAll("id", params.IDs)
	query.AddOpt("user_id", params.UserID)
	query.AddOpt("game_id", params.GameID)
	query.AddOpt("language", params.Language)
	query.AddOpt("period", params.Period)
	query.AddOpt("sort", params.Sort)
	query.AddOpt("type", params.Type)
	query.AddOpt("after", params.After)
	query.AddOpt("before", params.Before)
	query.AddOptInt("first", params.First)

	resp, err := c.Do(ctx, Request{ //nolint:exhaustruct
		Method: http.MethodGet,
		Path:   "/videos",
		Query:  query,
	})
	if err != nil {
		return nil, nil, err
	}

	return decodeList[Video](resp)
}
