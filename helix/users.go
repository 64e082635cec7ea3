package helix

import (
	"context"
	"net/http"
)

//nolint:tagliatelle
type User struct {
	ID              string `json:"id"`
	Login           string `json:"login"`
	DisplayName     string `json:"display_name"`
	Type            string `json:"type"`
	BroadcasterType string `json:"broadcaster_type"`
	Description     string `json:"description"`
	ProfileImageURL string `json:"profile_image_url"`
	OfflineImageURL string `json:"offline_image_url"`
	Email           string `json:"email"`
	CreatedAt       string `json:"created_at"`
}

type GetUsersParams struct {
	IDs    []string `json:"id"    validate:"max=100"`
	Logins []string `json:"login" validate:"max=100"`
}

func (c *Client) GetUsers(ctx context.Context, params GetUsersParams) ([]User, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	var query Params

	query.AddAll("id", params.IDs)
	query.AddAll("login", params.Logins)

	resp, err := c.Do(ctx, Request{ //nolint:exhaustruct
		Method: http.MethodGet,
		Path:   "/users",
		Query:  query,
	})
	if err != nil {
		return nil, err
	}

	users, _, err := decodeList[User](resp)

	return users, err
}

type UpdateUserParams struct {
	Description string `json:"description" validate:"max=300"`

	AccessToken string `json:"-"`
}

func (c *Client) UpdateUser(ctx context.Context, params UpdateUserParams) (*User, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	var query Params

	query.Add("description", params.Description)

	resp, err := c.Do(ctx, Request{ //nolint:exhaustruct
		Method:      http.MethodPut,
		Path:        "/users",
		Query:       query,
		AccessToken: params.AccessToken,
	})
	if err != nil {
		return nil, err
	}

	return decodeFirst[User](resp)
}
