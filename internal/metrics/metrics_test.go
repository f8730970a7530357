package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorders(t *testing.T) {
	before := testutil.ToFloat64(signupOutcomes.WithLabelValues("SlotFull"))
	RecordSignupOutcome("SlotFull")
	assert.Equal(t, before+1, testutil.ToFloat64(signupOutcomes.WithLabelValues("SlotFull")))

	before = testutil.ToFloat64(txRetries)
	RecordTxRetry()
	assert.Equal(t, before+1, testutil.ToFloat64(txRetries))

	before = testutil.ToFloat64(interactions.WithLabelValues("signup", "expired"))
	RecordInteraction("signup", "expired")
	assert.Equal(t, before+1, testutil.ToFloat64(interactions.WithLabelValues("signup", "expired")))
}

func TestRegisterIsIdempotent(t *testing.T) {
	reg := prometheus.NewRegistry()
	Register(reg)
	Register(reg)
	RecordTxUnavailable()

	n, err := testutil.GatherAndCount(reg, "scrim_tx_unavailable_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
