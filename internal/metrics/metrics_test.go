package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestIncPublishSplitsByResult(t *testing.T) {
	okBefore := testutil.ToFloat64(publishTotal.WithLabelValues("ok"))
	errBefore := testutil.ToFloat64(publishTotal.WithLabelValues("error"))

	IncPublish(nil)
	IncPublish(errors.New("connection refused"))
	IncPublish(nil)

	assert.Equal(t, okBefore+2, testutil.ToFloat64(publishTotal.WithLabelValues("ok")))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(publishTotal.WithLabelValues("error")))
}

func TestIncUploadAndContact(t *testing.T) {
	before := testutil.ToFloat64(uploadsTotal.WithLabelValues("image", "rejected"))
	IncUpload("image", "rejected")
	assert.Equal(t, before+1, testutil.ToFloat64(uploadsTotal.WithLabelValues("image", "rejected")))

	skipped := testutil.ToFloat64(contactTotal.WithLabelValues("skipped"))
	IncContact("skipped")
	assert.Equal(t, skipped+1, testutil.ToFloat64(contactTotal.WithLabelValues("skipped")))
}

func TestObserveStoreOperation(t *testing.T) {
	ObserveStoreOperation("test.op", time.Now().Add(-10*time.Millisecond), nil)
	assert.GreaterOrEqual(t, testutil.CollectAndCount(storeOperationSeconds, "sitebuilder_store_operation_seconds"), 1)
}
