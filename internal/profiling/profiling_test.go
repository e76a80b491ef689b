package profiling

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTrackAccumulatesAndResets(t *testing.T) {
	ResetFrame()
	stop := Track("voxels.draw")
	time.Sleep(time.Millisecond)
	stop()
	Track("voxels.upload")()
	Track("post.bloom")()

	snap := Snapshot()
	assert.Len(t, snap, 3)
	assert.GreaterOrEqual(t, snap["voxels.draw"], time.Millisecond)
	assert.GreaterOrEqual(t, SumWithPrefix("voxels."), snap["voxels.draw"])

	top := TopN(1)
	assert.True(t, strings.HasPrefix(top, "voxels.draw:"), top)
	assert.Equal(t, 3, len(strings.Split(TopN(10), ", ")))

	ResetFrame()
	assert.Empty(t, Snapshot())
	assert.Equal(t, time.Duration(0), SumWithPrefix(""))
}
