// Package blockfile decorates block file access with metrics.
package blockfile

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	SourceMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
	Source interface {
		Files() ([]string, error)
		LastModified() (time.Time, error)
		ScanFile(ctx context.Context, fileName string) ([]model.ScannedBlockSummary, error)
		ReadBlock(ctx context.Context, fileName string, position int64, height uint64) (model.Block, error)
	}
)

type ObservedSource struct {
	source  Source
	metrics SourceMetrics
}

func NewObservedSource(source Source, metrics SourceMetrics) *ObservedSource {
	return &ObservedSource{
		source:  source,
		metrics: metrics,
	}
}

func (s *ObservedSource) Files() (names []string, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("files", err, started)
	}()
	return s.source.Files()
}

func (s *ObservedSource) LastModified() (modified time.Time, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("last_modified", err, started)
	}()
	return s.source.LastModified()
}

func (s *ObservedSource) ScanFile(ctx context.Context, fileName string) (summaries []model.ScannedBlockSummary, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("scan_file", err, started)
	}()
	return s.source.ScanFile(ctx, fileName)
}

func (s *ObservedSource) ReadBlock(ctx context.Context, fileName string, position int64, height uint64) (block model.Block, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("read_block", err, started)
	}()
	return s.source.ReadBlock(ctx, fileName, position, height)
}
