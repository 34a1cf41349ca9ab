package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowWithinBurst(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled: true,
		EndpointConfigs: []EndpointConfig{
			{Path: "/ai/", Method: "POST", Limit: 10, Window: time.Minute, Burst: 2},
		},
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
	})

	allowed, info := limiter.Allow("1.2.3.4", "/ai/optimize", "POST")
	assert.True(t, allowed)
	assert.Equal(t, 10, info.Limit)

	allowed, _ = limiter.Allow("1.2.3.4", "/ai/optimize", "POST")
	assert.True(t, allowed)

	// Burst of 2 exhausted
	allowed, info = limiter.Allow("1.2.3.4", "/ai/optimize", "POST")
	assert.False(t, allowed)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestClientsAreIsolated(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled: true,
		EndpointConfigs: []EndpointConfig{
			{Path: "/ai/", Method: "POST", Limit: 10, Window: time.Minute, Burst: 1},
		},
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
	})

	allowed, _ := limiter.Allow("1.1.1.1", "/ai/optimize", "POST")
	require.True(t, allowed)
	allowed, _ = limiter.Allow("1.1.1.1", "/ai/optimize", "POST")
	assert.False(t, allowed)

	allowed, _ = limiter.Allow("2.2.2.2", "/ai/optimize", "POST")
	assert.True(t, allowed)
}

func TestHealthIsUnlimited(t *testing.T) {
	limiter := NewLimiter(DefaultConfig())
	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/health", "GET")
		require.True(t, allowed)
	}
}

func TestDisabledLimiterAllowsEverything(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	for i := 0; i < 50; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/ai/optimize", "POST")
		require.True(t, allowed)
	}
}

func TestMatchEndpointPrefixAndExact(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/export/pdf", Method: "POST", Limit: 5, Window: time.Minute},
		{Path: "/export/", Method: "POST", Limit: 30, Window: time.Minute},
	}

	exact := MatchEndpoint("/export/pdf", "POST", configs)
	require.NotNil(t, exact)
	assert.Equal(t, 5, exact.Limit)

	prefix := MatchEndpoint("/export/docx", "POST", configs)
	require.NotNil(t, prefix)
	assert.Equal(t, 30, prefix.Limit)

	assert.Nil(t, MatchEndpoint("/resume", "GET", configs))
}
