package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordResolution(t *testing.T) {
	resolved := testutil.ToFloat64(PartitionsResolved.WithLabelValues("basic"))
	empty := testutil.ToFloat64(EmptyResolutions.WithLabelValues("cw_mp", "basic"))

	RecordResolution("mw_wz", "basic", 4)
	RecordResolution("cw_mp", "basic", 0)

	assert.Equal(t, resolved+4, testutil.ToFloat64(PartitionsResolved.WithLabelValues("basic")))
	assert.Equal(t, empty+1, testutil.ToFloat64(EmptyResolutions.WithLabelValues("cw_mp", "basic")))
}

func TestRecordReadCountsErrors(t *testing.T) {
	before := testutil.ToFloat64(PartitionReadErrors.WithLabelValues("stats", "cod_matches_vg_mp"))

	RecordRead("stats", "cod_matches_vg_mp", time.Now(), nil)
	RecordRead("stats", "cod_matches_vg_mp", time.Now(), errors.New("locked"))

	assert.Equal(t, before+1, testutil.ToFloat64(PartitionReadErrors.WithLabelValues("stats", "cod_matches_vg_mp")))
}
