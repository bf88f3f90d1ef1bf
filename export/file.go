package export

import (
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// CompressedSuffix marks paths that are written and read through zstd.
const CompressedSuffix = ".zst"

// zstdFile closes the encoder before the file underneath it.
type zstdFile struct {
	*zstd.Encoder
	f *os.File
}

func (z *zstdFile) Close() error {
	if err := z.Encoder.Close(); err != nil {
		_ = z.f.Close()
		return err
	}
	return z.f.Close()
}

// Create creates the file at path. Paths ending in ".zst" are compressed
// with zstd; the returned writer must be closed to flush the frame.
func Create(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, CompressedSuffix) {
		return f, nil
	}
	enc, err := zstd.NewWriter(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &zstdFile{Encoder: enc, f: f}, nil
}

// ReadFile reads the file at path, decompressing ".zst" paths.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, CompressedSuffix) {
		return data, nil
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(data, nil)
}
