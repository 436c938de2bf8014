package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/levelifeofficial/levelife-922003/internal/game"
)

// ArchiveFormat names the archive layout in its header line.
const ArchiveFormat = "levelife-archive/v1"

// ArchiveHeader is the first line of an archive.
type ArchiveHeader struct {
	Format     string    `json:"format"`
	ExportedAt time.Time `json:"exportedAt"`
	Player     string    `json:"player"`
	Level      int       `json:"level"`
}

// WriteArchive writes st to path as a zstd stream: one JSON header line, then
// the state record.
func WriteArchive(path string, st *game.State, now time.Time) error {
	data, err := EncodeState(st)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("archive dir: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("archive create: %w", err)
	}
	defer f.Close()

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("archive encoder: %w", err)
	}

	hb, err := json.Marshal(ArchiveHeader{
		Format:     ArchiveFormat,
		ExportedAt: now.UTC(),
		Player:     st.Player.Name,
		Level:      st.Player.Level,
	})
	if err != nil {
		_ = enc.Close()
		return fmt.Errorf("archive header: %w", err)
	}
	bw := bufio.NewWriter(enc)
	if _, err := bw.Write(append(hb, '\n')); err != nil {
		_ = enc.Close()
		return fmt.Errorf("archive write: %w", err)
	}
	if _, err := bw.Write(data); err != nil {
		_ = enc.Close()
		return fmt.Errorf("archive write: %w", err)
	}
	if err := bw.Flush(); err != nil {
		_ = enc.Close()
		return fmt.Errorf("archive flush: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("archive close: %w", err)
	}
	return f.Sync()
}

// ReadArchive returns the header and the raw state record of an archive.
// The record is meant for DecodeState.
func ReadArchive(path string) (ArchiveHeader, []byte, error) {
	var hdr ArchiveHeader
	f, err := os.Open(path)
	if err != nil {
		return hdr, nil, fmt.Errorf("archive open: %w", err)
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return hdr, nil, fmt.Errorf("archive decoder: %w", err)
	}
	defer dec.Close()

	br := bufio.NewReader(dec)
	line, err := br.ReadBytes('\n')
	if err != nil {
		return hdr, nil, fmt.Errorf("archive header: %w", err)
	}
	if err := json.Unmarshal(line, &hdr); err != nil {
		return hdr, nil, fmt.Errorf("archive header: %w", err)
	}
	if hdr.Format != ArchiveFormat {
		return hdr, nil, fmt.Errorf("unsupported archive format %q", hdr.Format)
	}
	data, err := io.ReadAll(br)
	if err != nil {
		return hdr, nil, fmt.Errorf("archive read: %w", err)
	}
	return hdr, data, nil
}
