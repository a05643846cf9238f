package indexstore

import (
	"bytes"
	"compress/gzip"
	"encoding/gob"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/edsrzf/mmap-go"

	"ngramcorrector/internal/corrector"
)

var (
	// ErrBadFormat is returned for a file that is not an index of the expected kind.
	ErrBadFormat = errors.New("indexstore: unrecognised index file")
	// ErrNoIndex is returned when a store holds no index under the requested name.
	ErrNoIndex = errors.New("indexstore: index not found")
)

var (
	bigramMagic  = [4]byte{'N', 'G', 'B', '1'}
	trigramMagic = [4]byte{'N', 'G', 'T', '1'}
)

// Default file names inside an index directory.
const (
	BigramFile  = "bigrams.idx"
	TrigramFile = "trigrams.idx"
)

func SaveBigramIndex(path string, idx *corrector.BigramIndex) error {
	return writeFile(path, bigramMagic, idx.Map())
}

func LoadBigramIndex(path string) (*corrector.BigramIndex, error) {
	var m map[string][]string
	if err := readFile(path, bigramMagic, &m); err != nil {
		return nil, err
	}
	return corrector.NewBigramIndex(m), nil
}

func SaveTrigramTable(path string, t *corrector.TrigramTable) error {
	return writeFile(path, trigramMagic, t.Map())
}

func LoadTrigramTable(path string) (*corrector.TrigramTable, error) {
	var m map[string]int
	if err := readFile(path, trigramMagic, &m); err != nil {
		return nil, err
	}
	return corrector.NewTrigramTable(m), nil
}

// SaveDir writes both indices into dir using the default file names.
func SaveDir(dir string, idx *corrector.BigramIndex, t *corrector.TrigramTable) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("indexstore: create %s: %w", dir, err)
	}
	if err := SaveBigramIndex(filepath.Join(dir, BigramFile), idx); err != nil {
		return err
	}
	return SaveTrigramTable(filepath.Join(dir, TrigramFile), t)
}

// LoadDir reads both indices from dir. Missing files yield ErrNoIndex.
func LoadDir(dir string) (*corrector.BigramIndex, *corrector.TrigramTable, error) {
	idx, err := LoadBigramIndex(filepath.Join(dir, BigramFile))
	if err != nil {
		return nil, nil, err
	}
	t, err := LoadTrigramTable(filepath.Join(dir, TrigramFile))
	if err != nil {
		return nil, nil, err
	}
	return idx, t, nil
}

// writeFile stores magic followed by the gzip-compressed gob encoding of v.
// The file is written to a temporary name and renamed into place.
func writeFile(path string, magic [4]byte, v any) error {
	var buf bytes.Buffer
	buf.Write(magic[:])
	zw := gzip.NewWriter(&buf)
	if err := gob.NewEncoder(zw).Encode(v); err != nil {
		return fmt.Errorf("indexstore: encode %s: %w", path, err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("indexstore: compress %s: %w", path, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("indexstore: write %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("indexstore: rename %s: %w", path, err)
	}
	return nil
}

func readFile(path string, magic [4]byte, v any) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNoIndex, path)
		}
		return fmt.Errorf("indexstore: open %s: %w", path, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return fmt.Errorf("indexstore: stat %s: %w", path, err)
	}
	if st.Size() < int64(len(magic)) {
		return fmt.Errorf("%w: %s", ErrBadFormat, path)
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return fmt.Errorf("indexstore: mmap %s: %w", path, err)
	}
	defer m.Unmap()

	if !bytes.Equal(m[:len(magic)], magic[:]) {
		return fmt.Errorf("%w: %s", ErrBadFormat, path)
	}
	zr, err := gzip.NewReader(bytes.NewReader(m[len(magic):]))
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrBadFormat, path, err)
	}
	defer zr.Close()
	if err := gob.NewDecoder(zr).Decode(v); err != nil {
		return fmt.Errorf("indexstore: decode %s: %w", path, err)
	}
	return nil
}
