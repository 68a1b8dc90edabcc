package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, PriceLookupDuration)
	assert.NotNil(t, PriceCacheHits)
	assert.NotNil(t, PriceCacheMisses)
	assert.NotNil(t, SyntheticFallbacksTotal)
	assert.NotNil(t, CacheSweepDeleted)
	assert.NotNil(t, EbayAPICallsTotal)
	assert.NotNil(t, EbayDailyUsage)
	assert.NotNil(t, EbayDailyLimitHits)
	assert.NotNil(t, EbayTokenRefreshes)
	assert.NotNil(t, AlertsTriggeredTotal)
	assert.NotNil(t, AlertCheckErrors)
}
