package helix

import (
	"context"
	"net/http"

	"github.com/andyle182810/twitchkit/pagination"
)

const (
	MaxConduitShardCount = 20000
)

//nolint:tagliatelle
type EventSubTransport struct {
	Method    string `json:"method"               validate:"required,oneof=webhook websocket conduit"`
	Callback  string `json:"callback,omitempty"`
	Secret    string `json:"secret,omitempty"`
	SessionID string `json:"session_id,omitempty"`
	ConduitID string `json:"conduit_id,omitempty"`
}

//nolint:tagliatelle
type EventSubSubscription struct {
	ID        string            `json:"id"`
	Status    string            `json:"status"`
	Type      string            `json:"type"`
	Version   string            `json:"version"`
	Condition map[string]string `json:"condition"`
	Transport EventSubTransport `json:"transport"`
	CreatedAt string            `json:"created_at"`
	Cost      int               `json:"cost"`
}

type CreateEventSubSubscriptionParams struct {
	Type      string            `json:"type"      validate:"required,notblank"`
	Version   string            `json:"version"   validate:"required,notblank"`
	Condition map[string]string `json:"condition" validate:"required,min=1"`
	Transport EventSubTransport `json:"transport"`
}

//nolint:tagliatelle
type createSubscriptionRequest struct {
	Type      string            `json:"type"`
	Version   string            `json:"version"`
	Condition map[string]string `json:"condition"`
	Transport EventSubTransport `json:"transport"`
}

func (c *Client) CreateEventSubSubscription(ctx context.Context, params CreateEventSubSubscriptionParams) (*EventSubSubscription, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	resp, err := c.Do(ctx, Request{ //nolint:exhaustruct
		Method: http.MethodPost,
		Path:   "/eventsub/subscriptions",
		Body: createSubscriptionRequest{
			Type:      params.Type,
			Version:   params.Version,
			Condition: params.Condition,
			Transport: params.Transport,
		},
	})
	if err != nil {
		return nil, err
	}

	return decodeFirst[EventSubSubscription](resp)
}

type GetEventSubSubscriptionsParams struct {
	Status string `json:"status"`
	Type   string `json:"type"`
	UserID string `json:"user_id"`
	After  string `json:"after"`
}

// SubscriptionsPage carries one page of subscriptions together with the
// upstream's cost accounting.
//
//nolint:tagliatelle
type SubscriptionsPage struct {
	Subscriptions []EventSubSubscription `json:"data"`
	Total         int                    `json:"total"`
	TotalCost     int                    `json:"total_cost"`
	MaxTotalCost  int                    `json:"max_total_cost"`
	Pagination    *pagination.Page       `json:"pagination"`
}

func (c *Client) GetEventSubSubscriptions(ctx context.Context, params GetEventSubSubscriptionsParams) (*SubscriptionsPage, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	var query Params

	query.AddOpt("status", params.Status)
	query.AddOpt("type", params.Type)
	query.AddOpt("user_id", params.UserID)
	query.AddOpt("after", params.After)

	resp, err := c.Do(ctx, Request{ //nolint:exhaustruct
		Method: http.MethodGet,
		Path:   "/eventsub/subscriptions",
		Query:  query,
	})
	if err != nil {
		return nil, err
	}

	var page SubscriptionsPage
	if err := decodeBody(resp, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

type DeleteEventSubSubscriptionParams struct {
	ID string `json:"id" validate:"required,notblank"`
}

func (c *Client) DeleteEventSubSubscription(ctx context.Context, params DeleteEventSubSubscriptionParams) (bool, error) {
	if err := validateParams(params); err != nil {
		return false, err
	}

	var query Params

	query.Add("id", params.ID)

	resp, err := c.Do(ctx, Request{ //nolint:exhaustruct
		Method: http.MethodDelete,
		Path:   "/eventsub/subscriptions",
		Query:  query,
	})
	if err != nil {
		return false, err
	}

	return decodeEmpty(resp)
}

//nolint:tagliatelle
type Conduit struct {
	ID         string `json:"id"`
	ShardCount int    `json:"shard_count"`
}

func (c *Client) GetConduits(ctx context.Context) ([]Conduit, error) {
	resp, err := c.Do(ctx, Request{ //nolint:exhaustruct
		Method: http.MethodGet,
		Path:   "/eventsub/conduits",
	})
	if err != nil {
		return nil, err
	}

	conduits, _, err := decodeList[Conduit](resp)

	return conduits, err
}

type CreateConduitParams struct {
	ShardCount int `json:"shard_count" validate:"min=1,max=20000"`
}

//nolint:tagliatelle
type createConduitRequest struct {
	ShardCount int `json:"shard_count"`
}

func (c *Client) CreateConduit(ctx context.Context, params CreateConduitParams) (*Conduit, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	resp, err := c.Do(ctx, Request{ //nolint:exhaustruct
		Method: http.MethodPost,
		Path:   "/eventsub/conduits",
		Body:   createConduitRequest{ShardCount: params.ShardCount},
	})
	if err != nil {
		return nil, err
	}

	return decodeFirst[Conduit](resp)
}

type UpdateConduitParams struct {
	ID         string `json:"id"          validate:"required,notblank"`
	ShardCount int    `json:"shard_count" validate:"min=1,max=20000"`
}

//nolint:tagliatelle
type updateConduitRequest struct {
	ID         string `json:"id"`
	ShardCount int    `json:"shard_count"`
}

func (c *Client) UpdateConduit(ctx context.Context, params UpdateConduitParams) (*Conduit, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	resp, err := c.Do(ctx, Request{ //nolint:exhaustruct
		Method: http.MethodPatch,
		Path:   "/eventsub/conduits",
		Body: updateConduitRequest{
			ID:         params.ID,
			ShardCount: params.ShardCount,
		},
	})
	if err != nil {
		return nil, err
	}

	return decodeFirst[Conduit](resp)
}

type DeleteConduitParams struct {
	ID string `json:"id" validate:"required,notblank"`
}

func (c *Client) DeleteConduit(ctx context.Context, params DeleteConduitParams) (bool, error) {
	if err := validateParams(params); err != nil {
		return false, err
	}

	var query Params

	query.Add("id", params.ID)

	resp, err := c.Do(ctx, Request{ //nolint:exhaustruct
		Method: http.MethodDelete,
		Path:   "/eventsub/conduits",
		Query:  query,
	})
	if err != nil {
		return false, err
	}

	return decodeEmpty(resp)
}

//nolint:tagliatelle
type ConduitShard struct {
	ID        string            `json:"id"`
	Status    string            `json:"status"`
	Transport EventSubTransport `json:"transport"`
}

type GetConduitShardsParams struct {
	ConduitID string `json:"conduit_id" validate:"required,notblank"`
	Status    string `json:"status"     validate:"omitempty,oneof=enabled webhook_callback_verification_pending webhook_callback_verification_failed notification_failures_exceeded websocket_disconnected websocket_failed_ping_pong websocket_received_inbound_traffic websocket_connection_unused websocket_internal_error websocket_network_timeout websocket_network_error websocket_failed_to_reconnect"`
	After     string `json:"after"`
}

func (c *Client) GetConduitShards(ctx context.Context, params GetConduitShardsParams) ([]ConduitShard, *pagination.Page, error) {
	if err := validateParams(params); err != nil {
		return nil, nil, err
	}

	var query Params

	query.Add("conduit_id", params.ConduitID)
	query.AddOpt("status", params.Status)
	query.AddOpt("after", params.After)

	resp, err := c.Do(ctx, Request{ //nolint:exhaustruct
		Method: http.MethodGet,
		Path:   "/eventsub/conduits/shards",
		Query:  query,
	})
	if err != nil {
		return nil, nil, err
	}

	return decodeList[ConduitShard](resp)
}

//nolint:tagliatelle
type ConduitShardUpdate struct {
	ID        string            `json:"id"        validate:"required,notblank"`
	Transport EventSubTransport `json:"transport"`
}

// ConduitShardError reports a shard the upstream could not update.
type ConduitShardError struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

type UpdateConduitShardsParams struct {
	ConduitID string               `json:"conduit_id" validate:"required,notblank"`
	Shards    []ConduitShardUpdate `json:"shards"     validate:"required,min=1,dive"`
}

//nolint:tagliatelle
type updateShardsRequest struct {
	ConduitID string               `json:"conduit_id"`
	Shards    []ConduitShardUpdate `json:"shards"`
}

//nolint:tagliatelle
type updateShardsResponse struct {
	Data   []ConduitShard      `json:"data"`
	Errors []ConduitShardError `json:"errors"`
}

func (c *Client) UpdateConduitShards(ctx context.Context, params UpdateConduitShardsParams) ([]ConduitShard, []ConduitShardError, error) {
	if err := validateParams(params); err != nil {
		return nil, nil, err
	}

	resp, err := c.Do(ctx, Request{ //nolint:exhaustruct
		Method: http.MethodPatch,
		Path:   "/eventsub/conduits/shards",
		Body: updateShardsRequest{
			ConduitID: params.ConduitID,
			Shards:    params.Shards,
		},
	})
	if err != nil {
		return nil, nil, err
	}

	var result updateShardsResponse
	if err := decodeBody(resp, &result); err != nil {
		return nil, nil, err
	}

	return result.Data, result.Errors, nil
}
