package bufpool

// Stats is a snapshot of pool counters
type Stats struct {
	Gets           int64 `json:"gets"`
	Hits           int64 `json:"hits"`
	Misses         int64 `json:"misses"`
	Releases       int64 `json:"releases"`
	DoubleReleases int64 `json:"double_releases"`
	Live           int64 `json:"live"`
	LiveBytes      int64 `json:"live_bytes"`
	Oversize       int64 `json:"oversize"`
}

// Stats returns pool statistics
func (p *Pool) Stats() Stats {
	st := Stats{
		Gets:           p.gets.Load(),
		Misses:         p.misses.Load(),
		Releases:       p.releases.Load(),
		DoubleReleases: p.doubleReleases.Load(),
		Live:           p.live.Load(),
		LiveBytes:      p.liveBytes.Load(),
		Oversize:       p.oversize.Load(),
	}
	// every pooled Get that did not run the class New func was served from the pool
	st.Hits = st.Gets - st.Oversize - st.Misses
	if st.Hits < 0 {
		st.Hits = 0
	}
	return st
}

// HitRate returns the percentage of pooled Gets served without allocation
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}

// Sub returns the counter deltas s - prev. Live values are taken from s.
func (s Stats) Sub(prev Stats) Stats {
	return Stats{
		Gets:           s.Gets - prev.Gets,
		Hits:           s.Hits - prev.Hits,
		Misses:         s.Misses - prev.Misses,
		Releases:       s.Releases - prev.Releases,
		DoubleReleases: s.DoubleReleases - prev.DoubleReleases,
		Live:           s.Live,
		LiveBytes:      s.LiveBytes,
		Oversize:       s.Oversize - prev.Oversize,
	}
}
