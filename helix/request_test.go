package helix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andyle182810/twitchkit/helix"
)

func TestParams_PreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	var params helix.Params

	params.Add("broadcaster_id", "123")
	params.Add("user_id", "9")
	params.Add("user_id", "7")
	params.Add("first", "100")

	require.Equal(t, "broadcaster_id=123&user_id=9&user_id=7&first=100", params.Encode())
}

func TestParams_RepeatedKeysKeepEveryValue(t *testing.T) {
	t.Parallel()

	var params helix.Params

	params.AddAll("login", []string{"alice", "bob", "carol"})

	require.Len(t, params, 3)
	require.Equal(t, "login=alice&login=bob&login=carol", params.Encode())
}

func TestParams_EscapesKeysAndValues(t *testing.T) {
	t.Parallel()

	var params helix.Params

	params.Add("q", "a b&c")
	params.Add("cursor", "eyJiIjp7IkN1cnNvciI6IjEwMCJ9fQ==")

	assert.Equal(t, "q=a+b%26c&cursor=eyJiIjp7IkN1cnNvciI6IjEwMCJ9fQ%3D%3D", params.Encode())
}

func TestParams_OmittedOptionalsNeverAppear(t *testing.T) {
	t.Parallel()

	var params helix.Params

	params.AddOpt("after", "")
	params.AddOpt("before", "")
	params.AddOptInt("first", nil)

	require.Empty(t, params)
	require.Equal(t, "", params.Encode())
}

func TestParams_SuppliedOptionalsAppearOnce(t *testing.T) {
	t.Parallel()

	var params helix.Params

	params.AddOpt("after", "cursor123")
	params.AddOptInt("first", helix.Int(25))

	require.Equal(t, "after=cursor123&first=25", params.Encode())
}

func TestInt_ReturnsPointerToValue(t *testing.T) {
	t.Parallel()

	ptr := helix.Int(42)

	require.NotNil(t, ptr)
	require.Equal(t, 42, *ptr)
}
