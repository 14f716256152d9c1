// Package scanner reads raw blk*.dat block files.
package scanner

import (
	"bufio"
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/model"
	"go.uber.org/zap"
)

const (
	filePattern  = "blk*.dat"
	recordHeader = 8
	headerSize   = 80
)

var (
	// ErrUnexpectedMagic is returned when a record does not start with the network magic.
	ErrUnexpectedMagic = errors.New("unexpected block file magic")
	// ErrTruncatedRecord is returned when a record extends past the end of its file.
	ErrTruncatedRecord = errors.New("truncated block record")
)

// Scanner lists block files of one directory and decodes their records.
type Scanner struct {
	dir    string
	magic  wire.BitcoinNet
	logger *zap.Logger
}

// New returns a scanner of dir expecting the magic of network.
func New(dir string, network model.Network, logger *zap.Logger) (*Scanner, error) {
	params, err := model.ChainParams(network)
	if err != nil {
		return nil, err
	}
	return &Scanner{dir: dir, magic: params.Net, logger: logger}, nil
}

// Files returns the block file names in scan order.
func (s *Scanner) Files() ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(s.dir, filePattern))
	if err != nil {
		return nil, fmt.Errorf("list block files: %w", err)
	}
	names := make([]string, 0, len(paths))
	for _, path := range paths {
		names = append(names, filepath.Base(path))
	}
	sort.Strings(names)
	return names, nil
}

// LastModified returns the newest modification time among the block files.
func (s *Scanner) LastModified() (time.Time, error) {
	names, err := s.Files()
	if err != nil {
		return time.Time{}, err
	}
	var latest time.Time
	for _, name := range names {
		info, err := os.Stat(filepath.Join(s.dir, name))
		if err != nil {
			return time.Time{}, fmt.Errorf("stat %s: %w", name, err)
		}
		if info.ModTime().After(latest) {
			latest = info.ModTime()
		}
	}
	return latest, nil
}

// ScanFile returns a summary per block record of fileName. Zero padding after
// the last record ends the file.
func (s *Scanner) ScanFile(ctx context.Context, fileName string) ([]model.ScannedBlockSummary, error) {
	f, err := os.Open(filepath.Join(s.dir, fileName))
	if err != nil {
		return nil, fmt.Errorf("open block file %s: %w", fileName, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat block file %s: %w", fileName, err)
	}
	fileSize := info.Size()

	r := bufio.NewReaderSize(f, 1<<20)
	var (
		summaries []model.ScannedBlockSummary
		offset    int64
		prefix    [recordHeader]byte
	)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if _, err := io.ReadFull(r, prefix[:]); err != nil {
			if errors.Is(err, io.EOF) {
				return summaries, nil
			}
			if errors.Is(err, io.ErrUnexpectedEOF) {
				err = ErrTruncatedRecord
			}
			return nil, fmt.Errorf("read block file %s at %d: %w", fileName, offset, err)
		}
		magic := binary.LittleEndian.Uint32(prefix[:4])
		if magic == 0 {
			s.logger.Debug("block file padding reached",
				zap.String("file", fileName),
				zap.Int64("offset", offset),
				zap.Int("blocks", len(summaries)))
			return summaries, nil
		}
		if wire.BitcoinNet(magic) != s.magic {
			return nil, fmt.Errorf("read block file %s at %d: %w: %08x", fileName, offset, ErrUnexpectedMagic, magic)
		}
		size := int64(binary.LittleEndian.Uint32(prefix[4:]))
		position := offset + recordHeader
		if size < headerSize || position+size > fileSize {
			return nil, fmt.Errorf("read block file %s at %d: %w", fileName, offset, ErrTruncatedRecord)
		}

		var header wire.BlockHeader
		if err := header.Deserialize(r); err != nil {
			return nil, fmt.Errorf("decode block header %s at %d: %w", fileName, position, err)
		}
		if _, err := r.Discard(int(size - headerSize)); err != nil {
			return nil, fmt.Errorf("skip block body %s at %d: %w", fileName, position, err)
		}

		summaries = append(summaries, model.ScannedBlockSummary{
			BlockHash:         header.BlockHash().String(),
			PreviousBlockHash: hashOrSentinel(header.PrevBlock),
			FileName:          fileName,
			FilePosition:      position,
		})
		offset = position + size
	}
}

// ReadBlock decodes the block stored at position of fileName without validating it.
func (s *Scanner) ReadBlock(_ context.Context, fileName string, position int64, height uint64) (model.Block, error) {
	if position < recordHeader {
		return model.Block{}, fmt.Errorf("read block file %s at %d: position out of range", fileName, position)
	}
	f, err := os.Open(filepath.Join(s.dir, fileName))
	if err != nil {
		return model.Block{}, fmt.Errorf("open block file %s: %w", fileName, err)
	}
	defer f.Close()

	var prefix [recordHeader]byte
	if _, err := f.ReadAt(prefix[:], position-recordHeader); err != nil {
		return model.Block{}, fmt.Errorf("read block file %s at %d: %w", fileName, position, err)
	}
	if magic := binary.LittleEndian.Uint32(prefix[:4]); wire.BitcoinNet(magic) != s.magic {
		return model.Block{}, fmt.Errorf("read block file %s at %d: %w: %08x", fileName, position, ErrUnexpectedMagic, magic)
	}
	info, err := f.Stat()
	if err != nil {
		return model.Block{}, fmt.Errorf("stat block file %s: %w", fileName, err)
	}
	size := int64(binary.LittleEndian.Uint32(prefix[4:]))
	if position+size > info.Size() {
		return model.Block{}, fmt.Errorf("read block file %s at %d: %w", fileName, position, ErrTruncatedRecord)
	}
	raw := make([]byte, size)
	if _, err := f.ReadAt(raw, position); err != nil {
		if errors.Is(err, io.EOF) {
			err = ErrTruncatedRecord
		}
		return model.Block{}, fmt.Errorf("read block file %s at %d: %w", fileName, position, err)
	}

	var msg wire.MsgBlock
	if err := msg.Deserialize(bytes.NewReader(raw)); err != nil {
		return model.Block{}, fmt.Errorf("decode block %s at %d: %w", fileName, position, err)
	}
	block, err := convertBlock(&msg, height)
	if err != nil {
		return model.Block{}, fmt.Errorf("convert block %s at %d: %w", fileName, position, err)
	}
	block.FileName = fileName
	block.FilePosition = position
	return block, nil
}

func hashOrSentinel(hash chainhash.Hash) string {
	if hash == (chainhash.Hash{}) {
		return model.ZeroHash
	}
	return hash.String()
}
