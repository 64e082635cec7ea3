package helix

import (
	"context"
	"net/http"
)

//nolint:tagliatelle
type ChannelInformation struct {
	BroadcasterID       string   `json:"broadcaster_id"`
	BroadcasterLogin    string   `json:"broadcaster_login"`
	BroadcasterName     string   `json:"broadcaster_name"`
	BroadcasterLanguage string   `json:"broadcaster_language"`
	GameID              string   `json:"game_id"`
	GameName            string   `json:"game_name"`
	Title               string   `json:"title"`
	Delay               int      `json:"delay"`
	Tags                []string `json:"tags"`
}

type GetChannelInformationParams struct {
	BroadcasterIDs []string `json:"broadcaster_id" validate:"required,min=1,max=100"`
}

func (c *Client) GetChannelInformation(ctx context.Context, params GetChannelInformationParams) ([]ChannelInformation, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	var query Params

	query.AddAll("broadcaster_id", params.BroadcasterIDs)

	resp, err := c.Do(ctx, Request{ //nolint:exhaustruct
		Method: http.MethodGet,
		Path:   "/channels",
		Query:  query,
	})
	if err != nil {
		return nil, err
	}

	channels, _, err := decodeList[ChannelInformation](resp)

	return channels, err
}

type ModifyChannelInformationParams struct {
	BroadcasterID string `json:"broadcaster_id" validate:"required,notblank"`

	GameID   string   `json:"game_id"`
	Language string   `json:"broadcaster_language"`
	Title    string   `json:"title"`
	Delay    *int     `json:"delay" validate:"omitempty,min=0,max=900"`
	Tags     []string `json:"tags"  validate:"max=10,dive,max=25"`

	AccessToken string `json:"-"`
}

//nolint:tagliatelle
type modifyChannelRequest struct {
	GameID   string   `json:"game_id,omitempty"`
	Language string   `json:"broadcaster_language,omitempty"`
	Title    string   `json:"title,omitempty"`
	Delay    *int     `json:"delay,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// ModifyChannelInformation returns true on the upstream's no-content
// success.
func (c *Client) ModifyChannelInformation(ctx context.Context, params ModifyChannelInformationParams) (bool, error) {
	if err := validateParams(params); err != nil {
		return false, err
	}

	var query Params

	query.Add("broadcaster_id", params.BroadcasterID)

	resp, err := c.Do(ctx, Request{ //nolint:exhaustruct
		Method: http.MethodPatch,
		Path:   "/channels",
		Query:  query,
		Body: modifyChannelRequest{
			GameID:   params.GameID,
			Language: params.Language,
			Title:    params.Title,
			Delay:    params.Delay,
			Tags:     params.Tags,
		},
		AccessToken: params.AccessToken,
	})
	if err != nil {
		return false, err
	}

	return decodeEmpty(resp)
}
