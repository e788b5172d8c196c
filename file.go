package litematic

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Tnze/go-mc/nbt"
	"github.com/klauspost/compress/gzip"
)

// DefaultExtension is the conventional file extension for schematics.
const DefaultExtension = ".litematic"

// Read decodes a schematic from its file envelope: gzip-compressed,
// big-endian NBT. Decode failures propagate immediately; a partially
// readable file never yields a partial schematic.
func Read(r io.Reader, opts ...ReadOption) (*Litematic, error) {
	cfg := defaultReadConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("litematic: open gzip stream: %w", err)
	}
	defer zr.Close()

	var raw rawLitematic
	if _, err := nbt.NewDecoder(zr).Decode(&raw); err != nil {
		return nil, fmt.Errorf("litematic: decode nbt: %w", err)
	}
	return litematicFromNBT(raw, cfg)
}

// ReadFile reads a schematic from a .litematic file.
func ReadFile(path string, opts ...ReadOption) (*Litematic, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided path is intentional
	if err != nil {
		return nil, fmt.Errorf("litematic: open file: %w", err)
	}
	defer f.Close()
	return Read(f, opts...)
}

// Write encodes the schematic into its file envelope.
//
// The serialized form is rebuilt from scratch on every call: each region's
// id array is packed fresh at the bit width of its current palette, and
// the metadata totals are rederived from the regions. Write stamps the
// modification time and, on first write, the creation time.
func (l *Litematic) Write(w io.Writer, opts ...WriteOption) error {
	cfg := defaultWriteConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	now := time.Now().UnixMilli()
	raw := l.toNBT(now)
	if l.timeCreated == 0 {
		l.timeCreated = raw.Metadata.TimeCreated
	}

	zw, err := gzip.NewWriterLevel(w, cfg.compressionLevel)
	if err != nil {
		return fmt.Errorf("litematic: gzip level: %w", err)
	}
	if err := nbt.NewEncoder(zw).Encode(raw, ""); err != nil {
		zw.Close()
		return fmt.Errorf("litematic: encode nbt: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("litematic: close gzip stream: %w", err)
	}
	return nil
}

// WriteFile writes the schematic to a .litematic file, creating or
// truncating it.
func (l *Litematic) WriteFile(path string, opts ...WriteOption) error {
	f, err := os.Create(path) //nolint:gosec // User-provided path is intentional
	if err != nil {
		return fmt.Errorf("litematic: create file: %w", err)
	}
	if err := l.Write(f, opts...); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("litematic: close file: %w", err)
	}
	return nil
}
