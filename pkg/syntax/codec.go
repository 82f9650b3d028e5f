package syntax

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for unit files whose format cannot be determined.
var ErrUnknownFormat = errors.New("unknown unit format")

// Format is an interchange encoding for units.
type Format int

// Interchange formats.
const (
	FormatJSON Format = iota
	FormatYAML
	FormatMsgpack
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatMsgpack:
		return "msgpack"
	default:
		return "unknown"
	}
}

// UnitSuffixes lists the file name suffixes recognized as unit files.
var UnitSuffixes = []string{".unit.json", ".unit.yaml", ".unit.yml", ".unit.msgpack"}

// IsUnitFile reports whether path has a unit file suffix.
func IsUnitFile(path string) bool {
	base := strings.ToLower(filepath.Base(path))
	for _, suffix := range UnitSuffixes {
		if strings.HasSuffix(base, suffix) {
			return true
		}
	}
	return false
}

// FormatFromPath determines the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".msgpack", ".mpk":
		return FormatMsgpack, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Decode reads one unit in the given format and validates it.
func Decode(r io.Reader, format Format) (*Unit, error) {
	var u Unit
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&u); err != nil {
			return nil, fmt.Errorf("failed to decode json unit: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&u); err != nil {
			return nil, fmt.Errorf("failed to decode yaml unit: %w", err)
		}
	case FormatMsgpack:
		dec := msgpack.NewDecoder(r)
		dec.SetCustomStructTag("json")
		if err := dec.Decode(&u); err != nil {
			return nil, fmt.Errorf("failed to decode msgpack unit: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, int(format))
	}
	if err := Validate(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Encode writes a unit in the given format.
func Encode(w io.Writer, u *Unit, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(u)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(u); err != nil {
			return err
		}
		return enc.Close()
	case FormatMsgpack:
		enc := msgpack.NewEncoder(w)
		enc.SetCustomStructTag("json")
		return enc.Encode(u)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownFormat, int(format))
	}
}

// ReadFile decodes the unit stored at path. The unit's Path defaults to the
// file path when the file does not set one.
func ReadFile(path string) (*Unit, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path) // #nosec G304 -- path is provided by the caller
	if err != nil {
		return nil, fmt.Errorf("failed to open unit: %w", err)
	}
	defer func() { _ = f.Close() }()

	u, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if u.Path == "" {
		u.Path = path
	}
	return u, nil
}
