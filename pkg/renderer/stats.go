package renderer

import "time"

// BandStats describes the work done for one horizontal band of the frame
type BandStats struct {
	Band        int
	RowStart    int
	RowEnd      int
	Pixels      int
	PrimaryRays int
	RenderTime  time.Duration
}

// RenderStats aggregates per-band statistics for a finished frame
type RenderStats struct {
	Bands       []BandStats
	TotalPixels int
	PrimaryRays int
	RenderTime  time.Duration
}

func (rs *RenderStats) finalize(elapsed time.Duration) {
	rs.RenderTime = elapsed
	for _, band := range rs.Bands {
		rs.TotalPixels += band.Pixels
		rs.PrimaryRays += band.PrimaryRays
	}
}
