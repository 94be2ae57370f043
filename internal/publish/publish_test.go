package publish

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/readme-svg/internal/config"
)

func TestNewRequiresEndpointAndBucket(t *testing.T) {
	_, err := New(config.S3Config{Endpoint: "localhost:9000"})
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = New(config.S3Config{Bucket: "cards"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestURL(t *testing.T) {
	s, err := New(config.S3Config{Endpoint: "localhost:9000", Bucket: "cards", Region: "us-east-1"})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/cards/octo/stats.svg", s.URL("octo/stats.svg"))

	s, err = New(config.S3Config{
		Endpoint: "s3.internal:9000", Bucket: "cards", UseSSL: true, PublicEndpoint: "cdn.example.com/",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/cards/octo/wave.svg", s.URL("octo/wave.svg"))
}

func TestKey(t *testing.T) {
	assert.Equal(t, "octocat/stats.svg", Key("OctoCat", "stats"))
	assert.Equal(t, "a-b/loader.svg", Key("a/b", "loader"))
	assert.Equal(t, "hello-there/wave.svg", Key(" Hello There ", "wave"))
	assert.Equal(t, "_/error.svg", Key("  ", "error"))
}

func TestPublicReadPolicyIsJSON(t *testing.T) {
	var v map[string]any
	require.NoError(t, json.Unmarshal([]byte(publicReadPolicy("cards")), &v))
	assert.Equal(t, "2012-10-17", v["Version"])
}
