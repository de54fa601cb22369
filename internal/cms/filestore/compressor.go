package filestore

import (
	"fmt"
	"github.com/klauspost/compress/zstd"
)

// Compressor encodes the stored record on its way to and from disk.
type Compressor interface {
	Compress(val []byte) ([]byte, error)
	Decompress(val []byte) ([]byte, error)
}

// zstdCompressor favours ratio over speed: the record is rewritten only when
// settings are saved or a migration completes.
type zstdCompressor struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

func (z *zstdCompressor) Compress(val []byte) ([]byte, error) {
	return z.encoder.EncodeAll(val, make([]byte, 0, len(val)/2)), nil
}

func (z *zstdCompressor) Decompress(val []byte) ([]byte, error) {
	out, err := z.decoder.DecodeAll(val, nil)
	if err != nil {
		return nil, fmt.Errorf("not a zstd parameter record: %w", err)
	}
	return out, nil
}

func NewZstdCompressor() (Compressor, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	return &zstdCompressor{encoder: encoder, decoder: decoder}, nil
}

// identity stores plain JSON.
type identity struct{}

func (identity) Compress(val []byte) ([]byte, error)   { return val, nil }
func (identity) Decompress(val []byte) ([]byte, error) { return val, nil }
