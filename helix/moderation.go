package helix

import (
	"context"
	"net/http"

	"github.com/andyle182810/twitchkit/pagination"
)

const (
	// Bans above this duration (two weeks, in seconds) are rejected
	// upstream.
	MaxBanDuration = 1209600

	MaxModerationTextLength = 500
)

//nolint:tagliatelle
type Ban struct {
	BroadcasterID string `json:"broadcaster_id"`
	ModeratorID   string `json:"moderator_id"`
	UserID        string `json:"user_id"`
	CreatedAt     string `json:"created_at"`
	EndTime       string `json:"end_time"`
}

//nolint:tagliatelle
type BannedUser struct {
	UserID         string `json:"user_id"`
	UserLogin      string `json:"user_login"`
	UserName       string `json:"user_name"`
	ExpiresAt      string `json:"expires_at"`
	CreatedAt      string `json:"created_at"`
	Reason         string `json:"reason"`
	ModeratorID    string `json:"moderator_id"`
	ModeratorLogin string `json:"moderator_login"`
	ModeratorName  string `json:"moderator_name"`
}

//nolint:tagliatelle
type Moderator struct {
	UserID    string `json:"user_id"`
	UserLogin string `json:"user_login"`
	UserName  string `json:"user_name"`
}

//nolint:tagliatelle
type UnbanRequest struct {
	ID               string `json:"id"`
	BroadcasterID    string `json:"broadcaster_id"`
	BroadcasterLogin string `json:"broadcaster_login"`
	BroadcasterName  string `json:"broadcaster_name"`
	ModeratorID      string `json:"moderator_id"`
	ModeratorLogin   string `json:"moderator_login"`
	ModeratorName    string `json:"moderator_name"`
	UserID           string `json:"user_id"`
	UserLogin        string `json:"user_login"`
	UserName         string `json:"user_name"`
	Text             string `json:"text"`
	Status           string `json:"status"`
	CreatedAt        string `json:"created_at"`
	ResolvedAt       string `json:"resolved_at"`
	ResolutionText   string `json:"resolution_text"`
}

type BanUserParams struct {
	BroadcasterID string `json:"broadcaster_id" validate:"required,notblank"`
	ModeratorID   string `json:"moderator_id"   validate:"required,notblank"`
	UserID        string `json:"user_id"        validate:"required,notblank"`

	// Duration in seconds; nil means a permanent ban.
	Duration *int   `json:"duration" validate:"omitempty,min=1,max=1209600"`
	Reason   string `json:"reason"   validate:"max=500"`

	AccessToken string `json:"-"`
}

//nolint:tagliatelle
type banUserRequest struct {
	Data banUserRequestData `json:"data"`
}

//nolint:tagliatelle
type banUserRequestData struct {
	UserID   string `json:"user_id"`
	Duration *int   `json:"duration,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

func (c *Client) BanUser(ctx context.Context, params BanUserParams) (*Ban, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	var query Params

	query.Add("broadcaster_id", params.BroadcasterID)
	query.Add("moderator_id", params.ModeratorID)

	resp, err := c.Do(ctx, Request{ //nolint:exhaustruct
		Method: http.MethodPost,
		Path:   "/moderation/bans",
		Query:  query,
		Body: banUserRequest{
			Data: banUserRequestData{
				UserID:   params.UserID,
				Duration: params.Duration,
				Reason:   params.Reason,
			},
		},
		AccessToken: params.AccessToken,
	})
	if err != nil {
		return nil, err
	}

	return decodeFirst[Ban](resp)
}

type UnbanUserParams struct {
	BroadcasterID string `json:"broadcaster_id" validate:"required,notblank"`
	ModeratorID   string `json:"moderator_id"   validate:"required,notblank"`
	UserID        string `json:"user_id"        validate:"required,notblank"`

	AccessToken string `json:"-"`
}

func (c *Client) UnbanUser(ctx context.Context, params UnbanUserParams) (bool, error) {
	if err := validateParams(params); err != nil {
		return false, err
	}

	var query Params

	query.Add("broadcaster_id", params.BroadcasterID)
	query.Add("moderator_id", params.ModeratorID)
	query.Add("user_id", params.UserID)

	resp, err := c.Do(ctx, Request{ //nolint:exhaustruct
		Method:      http.MethodDelete,
		Path:        "/moderation/bans",
		Query:       query,
		AccessToken: params.AccessToken,
	})
	if err != nil {
		return false, err
	}

	return decodeEmpty(resp)
}

type GetBannedUsersParams struct {
	BroadcasterID string   `json:"broadcaster_id" validate:"required,notblank"`
	UserIDs       []string `json:"user_id"        validate:"max=100"`
	First         *int     `json:"first"          validate:"omitempty,min=1,max=100"`
	After         string   `json:"after"`
	Before        string   `json:"before"`

	AccessToken string `json:"-"`
}

func (c *Client) GetBannedUsers(ctx context.Context, params GetBannedUsersParams) ([]BannedUser, *pagination.Page, error) {
	if err := validateParams(params); err != nil {
		return nil, nil, err
	}

	var query Params

	query.Add("broadcaster_id", params.BroadcasterID)
	query.AddAll("user_id", params.UserIDs)
	query.AddOpt("after", params.After)
	query.AddOpt("before", params.Before)
	query.AddOptInt("first", params.First)

	resp, err := c.Do(ctx, Request{ //nolint:exhaustruct
		Method:      http.MethodGet,
		Path:        "/moderation/banned",
		Query:       query,
		AccessToken: params.AccessToken,
	})
	if err != nil {
		return nil, nil, err
	}

	return decodeList[BannedUser](resp)
}

type GetModeratorsParams struct {
	BroadcasterID string   `json:"broadcaster_id" validate:"required,notblank"`
	UserIDs       []string `json:"user_id"        validate:"max=100"`
	First         *int     `json:"first"          validate:"omitempty,min=1,max=100"`
	After         string   `json:"after"`

	AccessToken string `json:"-"`
}

func (c *Client) GetModerators(ctx context.Context, params GetModeratorsParams) ([]Moderator, *pagination.Page, error) {
	if err := validateParams(params); err != nil {
		return nil, nil, err
	}

	var query Params

	query.Add("broadcaster_id", params.BroadcasterID)
	query.AddAll("user_id", params.UserIDs)
	query.AddOpt("after", params.After)
	query.AddOptInt("first", params.First)

	resp, err := c.Do(ctx, Request{ //nolint:exhaustruct
		Method:      http.MethodGet,
		Path:        "/moderation/moderators",
		Query:       query,
		AccessToken: params.AccessToken,
	})
	if err != nil {
		return nil, nil, err
	}

	return decodeList[Moderator](resp)
}

type GetUnbanRequestsParams struct {
	BroadcasterID string `json:"broadcaster_id" validate:"required,notblank"`
	ModeratorID   string `json:"moderator_id"   validate:"required,notblank"`
	Status        string `json:"status"         validate:"required,oneof=pending approved denied acknowledged canceled"`
	UserID        string `json:"user_id"`
	After         string `json:"after"`
	First         *int   `json:"first" validate:"omitempty,min=1,max=100"`

	AccessToken string `json:"-"`
}

func (c *Client) GetUnbanRequests(ctx context.Context, params GetUnbanRequestsParams) ([]UnbanRequest, *pagination.Page, error) {
	if err := validateParams(params); err != nil {
		return nil, nil, err
	}

	var query Params

	query.Add("broadcaster_id", params.BroadcasterID)
	query.Add("moderator_id", params.ModeratorID)
	query.Add("status", params.Status)
	query.AddOpt("user_id", params.UserID)
	query.AddOpt("after", params.After)
	query.AddOptInt("first", params.First)

	resp, err := c.Do(ctx, Request{ //nolint:exhaustruct
		Method:      http.MethodGet,
		Path:        "/moderation/unban_requests",
		Query:       query,
		AccessToken: params.AccessToken,
	})
	if err != nil {
		return nil, nil, err
	}

	return decodeList[UnbanRequest](resp)
}

type ResolveUnbanRequestParams struct {
	BroadcasterID  string `json:"broadcaster_id"   validate:"required,notblank"`
	ModeratorID    string `json:"moderator_id"     validate:"required,notblank"`
	UnbanRequestID string `json:"unban_request_id" validate:"required,notblank"`
	Status         string `json:"status"           validate:"required,oneof=approved denied"`
	ResolutionText string `json:"resolution_text"  validate:"max=500"`

	AccessToken string `json:"-"`
}

func (c *Client) ResolveUnbanRequest(ctx context.Context, params ResolveUnbanRequestParams) (*UnbanRequest, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	var query Params

	query.Add("broadcaster_id", params.BroadcasterID)
	query.Add("moderator_id", params.ModeratorID)
	query.Add("unban_request_id", params.UnbanRequestID)
	query.Add("status", params.Status)
	query.AddOpt("resolution_text", params.ResolutionText)

	resp, err := c.Do(ctx, Request{ //nolint:exhaustruct
		Method:      http.MethodPatch,
		Path:        "/moderation/unban_requests",
		Query:       query,
		AccessToken: params.AccessToken,
	})
	if err != nil {
		return nil, err
	}

	return decodeFirst[UnbanRequest](resp)
}
