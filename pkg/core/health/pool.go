package health

import (
	"context"
	"fmt"

	"github.com/msto63/smallstring/pkg/bufpool"
)

// PoolCheck reports the state of a buffer pool. Any double release makes the
// pool unhealthy. More than maxLive outstanding buffers degrades it; a
// negative maxLive disables that limit.
func PoolCheck(name string, pool *bufpool.Pool, maxLive int64) Checker {
	return NewChecker(name, func(ctx context.Context) CheckResult {
		st := pool.Stats()
		result := CheckResult{
			Name:   name,
			Status: StatusHealthy,
			Details: map[string]interface{}{
				"gets":            st.Gets,
				"live":            st.Live,
				"live_bytes":      st.LiveBytes,
				"double_releases": st.DoubleReleases,
				"hit_rate":        st.HitRate(),
			},
		}

		switch {
		case st.DoubleReleases > 0:
			result.Status = StatusUnhealthy
			result.Message = fmt.Sprintf("%d buffers released twice", st.DoubleReleases)
		case maxLive >= 0 && st.Live > maxLive:
			result.Status = StatusDegraded
			result.Message = fmt.Sprintf("%d live buffers exceed limit %d", st.Live, maxLive)
		default:
			result.Message = fmt.Sprintf("%d live buffers", st.Live)
		}
		return result
	})
}
