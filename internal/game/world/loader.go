package world

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// Format identifies a world file encoding.
type Format string

// Supported world file formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatINI  Format = "ini"
)

// ErrNotFound reports that the world source does not exist.
var ErrNotFound = errors.New("world source not found")

// Load operations recorded in LoadError.Op.
const (
	OpRead     = "read"
	OpDecode   = "decode"
	OpValidate = "validate"
)

// LoadError describes why a world could not be loaded.
type LoadError struct {
	// Path is the source file, empty when loading from bytes.
	Path string
	// Op is the failing stage: OpRead, OpDecode or OpValidate.
	Op string
	// Err is the underlying cause.
	Err error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("world %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("world %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// LoadOptions controls how a world source is decoded and checked.
type LoadOptions struct {
	// Format selects the decoder. Empty means detect from the file extension.
	Format Format
	// ValidateExits rejects worlds with exits that target unknown rooms.
	ValidateExits bool
}

// jsonWorldFile mirrors the game.json layout.
type jsonWorldFile struct {
	Rooms          []jsonRoom `json:"rooms"`
	StartingRoomID string     `json:"startingRoomId"`
}

type jsonRoom struct {
	ID          string            `json:"id"`
	Description string            `json:"description"`
	Items       []string          `json:"items"`
	Exits       map[string]string `json:"exits"`
	Locked      bool              `json:"locked"`
	KeyID       *string           `json:"keyId"`
	IsDark      bool              `json:"isDark"`
	Enemy       *string           `json:"enemy"`
}

// yamlWorldFile is the top-level YAML structure for world files.
type yamlWorldFile struct {
	World yamlWorld `yaml:"world"`
}

type yamlWorld struct {
	StartRoom string     `yaml:"start_room"`
	Rooms     []yamlRoom `yaml:"rooms"`
}

type yamlRoom struct {
	ID          string            `yaml:"id"`
	Description string            `yaml:"description"`
	Items       []string          `yaml:"items"`
	Exits       map[string]string `yaml:"exits"`
	Locked      bool              `yaml:"locked"`
	KeyID       string            `yaml:"key_id"`
	IsDark      bool              `yaml:"is_dark"`
	Enemy       string            `yaml:"enemy"`
}

const (
	iniWorldSection = "world"
	iniRoomPrefix   = "room."
	iniExitPrefix   = "exit."
)

// DetectFormat infers the world format from a file extension.
//
// Postcondition: Returns a supported Format or an error for unknown extensions.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".ini":
		return FormatINI, nil
	default:
		return "", fmt.Errorf("cannot infer world format from %q", filepath.Base(path))
	}
}

// LoadFromFile reads, decodes and validates a world file.
//
// Postcondition: Returns a World or a *LoadError. A missing file satisfies errors.Is(err, ErrNotFound).
func LoadFromFile(path string, opts LoadOptions) (*World, error) {
	if opts.Format == "" {
		f, err := DetectFormat(path)
		if err != nil {
			return nil, &LoadError{Path: path, Op: OpDecode, Err: err}
		}
		opts.Format = f
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return nil, &LoadError{Path: path, Op: OpRead, Err: err}
	}

	w, err := LoadFromBytes(data, opts)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
		}
		return nil, err
	}
	return w, nil
}

// LoadFromBytes decodes and validates a world in the given format.
//
// Precondition: opts.Format must be set.
// Postcondition: Returns a World or a *LoadError.
func LoadFromBytes(data []byte, opts LoadOptions) (*World, error) {
	var (
		rooms []Room
		start string
		err   error
	)
	switch opts.Format {
	case FormatJSON:
		rooms, start, err = decodeJSON(data)
	case FormatYAML:
		rooms, start, err = decodeYAML(data)
	case FormatINI:
		rooms, start, err = decodeINI(data)
	default:
		err = fmt.Errorf("unsupported world format %q", opts.Format)
	}
	if err != nil {
		return nil, &LoadError{Op: OpDecode, Err: err}
	}

	w, err := New(rooms, start)
	if err != nil {
		return nil, &LoadError{Op: OpValidate, Err: err}
	}
	if opts.ValidateExits {
		if err := w.ValidateExits(); err != nil {
			return nil, &LoadError{Op: OpValidate, Err: err}
		}
	}
	return w, nil
}

func decodeJSON(data []byte) ([]Room, string, error) {
	var file jsonWorldFile
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&file); err != nil {
		return nil, "", fmt.Errorf("parsing world JSON: %w", err)
	}
	rooms := make([]Room, 0, len(file.Rooms))
	for _, jr := range file.Rooms {
		rooms = append(rooms, Room{
			ID:          jr.ID,
			Description: jr.Description,
			Items:       jr.Items,
			Exits:       convertExits(jr.Exits),
			Locked:      jr.Locked,
			KeyID:       deref(jr.KeyID),
			IsDark:      jr.IsDark,
			Enemy:       deref(jr.Enemy),
		})
	}
	return rooms, file.StartingRoomID, nil
}

func decodeYAML(data []byte) ([]Room, string, error) {
	var file yamlWorldFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, "", fmt.Errorf("parsing world YAML: %w", err)
	}
	rooms := make([]Room, 0, len(file.World.Rooms))
	for _, yr := range file.World.Rooms {
		rooms = append(rooms, Room{
			ID:          yr.ID,
			Description: strings.TrimSpace(yr.Description),
			Items:       yr.Items,
			Exits:       convertExits(yr.Exits),
			Locked:      yr.Locked,
			KeyID:       yr.KeyID,
			IsDark:      yr.IsDark,
			Enemy:       yr.Enemy,
		})
	}
	return rooms, file.World.StartRoom, nil
}

func decodeINI(data []byte) ([]Room, string, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, data)
	if err != nil {
		return nil, "", fmt.Errorf("parsing world INI: %w", err)
	}

	start := cfg.Section(iniWorldSection).Key("start_room").String()

	var rooms []Room
	for _, sec := range cfg.Sections() {
		id, ok := strings.CutPrefix(sec.Name(), iniRoomPrefix)
		if !ok {
			continue
		}
		room := Room{
			ID:          id,
			Description: sec.Key("description").String(),
			Items:       sec.Key("items").Strings(","),
			Exits:       make(map[Direction]string),
			Locked:      sec.Key("locked").MustBool(false),
			KeyID:       sec.Key("key_id").String(),
			IsDark:      sec.Key("is_dark").MustBool(false),
			Enemy:       sec.Key("enemy").String(),
		}
		for _, key := range sec.Keys() {
			if dir, ok := strings.CutPrefix(key.Name(), iniExitPrefix); ok {
				room.Exits[Direction(dir)] = key.String()
			}
		}
		rooms = append(rooms, room)
	}
	return rooms, start, nil
}

func convertExits(in map[string]string) map[Direction]string {
	out := make(map[Direction]string, len(in))
	for dir, target := range in {
		out[Direction(dir)] = target
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
