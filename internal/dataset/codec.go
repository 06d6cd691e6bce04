package dataset

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

/*
*	Dataset file layout:
*	  int32 length prefix, little-endian
*	  length * int32 values, little-endian
*	No padding, no checksum.
 */

var (
	// ErrBadLength indicates a negative or otherwise nonsensical length prefix.
	ErrBadLength = errors.New("dataset: invalid length prefix")

	// ErrTruncated indicates the file ended before the declared value count.
	ErrTruncated = errors.New("dataset: truncated payload")
)

// WriteFile persists a sample to path, creating or replacing the file.
func WriteFile(path string, sample Sample) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create dataset file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	if err := binary.Write(w, binary.LittleEndian, int32(len(sample))); err != nil {
		return fmt.Errorf("unable to write length prefix: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, []int32(sample)); err != nil {
		return fmt.Errorf("unable to write values: %w", err)
	}

	return w.Flush()
}

// ReadFile reloads a previously persisted sample. The declared length is
// validated against the actual byte count so a short or corrupted file
// never reaches analysis code.
func ReadFile(path string) (Sample, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open dataset file: %w", err)
	}
	defer file.Close()

	r := bufio.NewReader(file)

	var length int32
	if err := binary.Read(r, binary.LittleEndian, &length); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: missing length prefix", ErrTruncated)
		}
		return nil, fmt.Errorf("unable to read length prefix: %w", err)
	}
	if length < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadLength, length)
	}

	sample := make(Sample, length)
	if err := binary.Read(r, binary.LittleEndian, []int32(sample)); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: declared %d values", ErrTruncated, length)
		}
		return nil, fmt.Errorf("unable to read values: %w", err)
	}

	return sample, nil
}
