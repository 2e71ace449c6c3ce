package geosphere

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceBatch(t *testing.T) {
	from := []Point{{0, 0}}
	to := []Point{{1, 0}, {0, 1}, {0, 0}}

	d := DistanceBatch(WGS84, from, to)
	require.Len(t, d, 3)
	assert.InDelta(t, equatorDegree, d[0], 1e-6)
	assert.InDelta(t, meridianDegree, d[1], 1e-6)
	assert.Zero(t, d[2])

	d = DistanceBatch(Globe, to, from)
	require.Len(t, d, 3)
	for i, p := range to {
		assert.InDelta(t, Globe.Distance(p, from[0]), d[i], 1e-9)
	}
}

func TestAzimuthBatch(t *testing.T) {
	az := AzimuthBatch(WGS84, []Point{{0, 0}}, []Point{{1, 0}, {0, 1}, {-1, 0}})
	require.Len(t, az, 3)
	assert.InDelta(t, 90, az[0], 1e-9)
	assert.InDelta(t, 0, az[1], 1e-9)
	assert.InDelta(t, -90, az[2], 1e-9)

	assert.Empty(t, AzimuthBatch(Globe, nil, []Point{{0, 0}}))
}
