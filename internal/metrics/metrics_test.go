package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordSubmission(t *testing.T) {
	before := testutil.ToFloat64(ContactSubmissions.WithLabelValues("form", OutcomeRejected))

	RecordSubmission("form", OutcomeRejected)
	RecordSubmission("form", OutcomeRejected)

	after := testutil.ToFloat64(ContactSubmissions.WithLabelValues("form", OutcomeRejected))
	assert.Equal(t, before+2, after)
}
