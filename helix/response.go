package helix

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/andyle182810/twitchkit/pagination"
)

type RawResponse struct {
	StatusCode int
	Body       []byte
	RequestID  string
}

func (r *RawResponse) Success() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func (r *RawResponse) NoContent() bool {
	return r.StatusCode == http.StatusNoContent
}

type listEnvelope[T any] struct {
	Data       []T              `json:"data"`
	Pagination *pagination.Page `json:"pagination"`
}

//nolint:tagliatelle
type apiErrorBody struct {
	Error   string `json:"error"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func apiError(resp *RawResponse) error {
	if resp.Success() {
		return nil
	}

	var body apiErrorBody
	if err := json.Unmarshal(resp.Body, &body); err == nil && body.Message != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			ErrorText:  body.Error,
			Message:    body.Message,
			RequestID:  resp.RequestID,
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		ErrorText:  "",
		Message:    "",
		RequestID:  resp.RequestID,
	}
}

// decodeBody maps a successful response body into target. A 204 or an
// empty body leaves target untouched.
func decodeBody(resp *RawResponse, target any) error {
	if err := apiError(resp); err != nil {
		return err
	}

	if resp.NoContent() || len(resp.Body) == 0 || target == nil {
		return nil
	}

	if err := json.Unmarshal(resp.Body, target); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return nil
}

func decodeList[T any](resp *RawResponse) ([]T, *pagination.Page, error) {
	var env listEnvelope[T]
	if err := decodeBody(resp, &env); err != nil {
		return nil, nil, err
	}

	return env.Data, env.Pagination, nil
}

// decodeFirst returns the first element of the data envelope, or nil
// when the upstream matched nothing.
func decodeFirst[T any](resp *RawResponse) (*T, error) {
	items, _, err := decodeList[T](resp)
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, nil
	}

	return &items[0], nil
}

// decodeEmpty maps a no-content success to true.
func decodeEmpty(resp *RawResponse) (bool, error) {
	if err := apiError(resp); err != nil {
		return false, err
	}

	return true, nil
}
