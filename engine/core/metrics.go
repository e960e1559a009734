package core

import (
	"fmt"
	"sync/atomic"
)

/**
 * @brief Counters describing everything fed through the asset pipeline.
 * Safe to update from decode workers.
 */
type LoadMetrics struct {
	Files          atomic.Int64
	FailedFiles    atomic.Int64
	Bytes          atomic.Int64
	Chunks         atomic.Int64
	Decoded        atomic.Int64
	Unrecognized   atomic.Int64
	DecodeFailures atomic.Int64
}

/** @brief A point-in-time copy of LoadMetrics. */
type LoadMetricsSnapshot struct {
	Files          int64
	FailedFiles    int64
	Bytes          int64
	Chunks         int64
	Decoded        int64
	Unrecognized   int64
	DecodeFailures int64
}

func (m *LoadMetrics) Snapshot() LoadMetricsSnapshot {
	return LoadMetricsSnapshot{
		Files:          m.Files.Load(),
		FailedFiles:    m.FailedFiles.Load(),
		Bytes:          m.Bytes.Load(),
		Chunks:         m.Chunks.Load(),
		Decoded:        m.Decoded.Load(),
		Unrecognized:   m.Unrecognized.Load(),
		DecodeFailures: m.DecodeFailures.Load(),
	}
}

func (s LoadMetricsSnapshot) String() string {
	return fmt.Sprintf("files=%d failed=%d bytes=%d chunks=%d decoded=%d raw=%d decode_failures=%d",
		s.Files, s.FailedFiles, s.Bytes, s.Chunks, s.Decoded, s.Unrecognized, s.DecodeFailures)
}
