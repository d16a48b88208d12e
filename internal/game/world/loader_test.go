package world

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validWorldJSON = `{
  "rooms": [
    {
      "id": "cell",
      "description": "You are in a cell.",
      "items": ["rusty_key"],
      "exits": {"north": "hallway"},
      "locked": true,
      "keyId": "rusty_key",
      "isDark": false,
      "enemy": null
    },
    {
      "id": "hallway",
      "description": "A hallway.",
      "items": [],
      "exits": {"south": "cell"},
      "locked": false,
      "keyId": null,
      "isDark": true,
      "enemy": "goblin"
    }
  ],
  "startingRoomId": "cell"
}`

const validWorldYAML = `
world:
  start_room: cell
  rooms:
    - id: cell
      description: |
        You are in a cell.
      items: [rusty_key]
      exits:
        north: hallway
      locked: true
      key_id: rusty_key
    - id: hallway
      description: A hallway.
      exits:
        south: cell
      is_dark: true
      enemy: goblin
`

const validWorldINI = `
[world]
start_room = cell

[room.cell]
description = You are in a cell.
items = rusty_key
exit.north = hallway
locked = true
key_id = rusty_key

[room.hallway]
description = A hallway.
exit.south = cell
is_dark = true
enemy = goblin
`

func assertTestWorld(t *testing.T, w *World) {
	t.Helper()
	assert.Equal(t, "cell", w.StartRoom())
	assert.Equal(t, 2, w.RoomCount())

	cell, ok := w.Room("cell")
	require.True(t, ok)
	assert.Equal(t, "You are in a cell.", cell.Description)
	assert.Equal(t, []string{"rusty_key"}, cell.Items)
	assert.Equal(t, map[Direction]string{North: "hallway"}, cell.Exits)
	assert.True(t, cell.Locked)
	assert.Equal(t, "rusty_key", cell.KeyID)
	assert.False(t, cell.IsDark)
	assert.False(t, cell.HasEnemy())

	hall, ok := w.Room("hallway")
	require.True(t, ok)
	assert.Empty(t, hall.Items)
	assert.False(t, hall.Locked)
	assert.Equal(t, "", hall.KeyID)
	assert.True(t, hall.IsDark)
	assert.Equal(t, "goblin", hall.Enemy)
}

func TestLoadFromBytes_JSON(t *testing.T) {
	w, err := LoadFromBytes([]byte(validWorldJSON), LoadOptions{Format: FormatJSON, ValidateExits: true})
	require.NoError(t, err)
	assertTestWorld(t, w)
}

func TestLoadFromBytes_YAML(t *testing.T) {
	w, err := LoadFromBytes([]byte(validWorldYAML), LoadOptions{Format: FormatYAML, ValidateExits: true})
	require.NoError(t, err)
	assertTestWorld(t, w)
}

func TestLoadFromBytes_INI(t *testing.T) {
	w, err := LoadFromBytes([]byte(validWorldINI), LoadOptions{Format: FormatINI, ValidateExits: true})
	require.NoError(t, err)
	assertTestWorld(t, w)
	assert.Equal(t, []string{"cell", "hallway"}, w.RoomIDs())
}

func TestLoadFromBytes_MalformedJSON(t *testing.T) {
	_, err := LoadFromBytes([]byte(`{"rooms": [`), LoadOptions{Format: FormatJSON})
	require.Error(t, err)

	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, OpDecode, le.Op)
}

func TestLoadFromBytes_InvalidYAML(t *testing.T) {
	_, err := LoadFromBytes([]byte("world: [valid yaml"), LoadOptions{Format: FormatYAML})
	assert.Error(t, err)
}

func TestLoadFromBytes_UnknownFormat(t *testing.T) {
	_, err := LoadFromBytes([]byte(validWorldJSON), LoadOptions{Format: "toml"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported world format")
}

func TestLoadFromBytes_UnknownStartRoom(t *testing.T) {
	data := `{"rooms":[{"id":"cell","exits":{}}],"startingRoomId":"attic"}`
	_, err := LoadFromBytes([]byte(data), LoadOptions{Format: FormatJSON})
	require.Error(t, err)

	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, OpValidate, le.Op)
}

func TestLoadFromBytes_DanglingExit(t *testing.T) {
	data := `{"rooms":[{"id":"cell","exits":{"north":"nowhere"}}],"startingRoomId":"cell"}`

	_, err := LoadFromBytes([]byte(data), LoadOptions{Format: FormatJSON, ValidateExits: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown room")

	w, err := LoadFromBytes([]byte(data), LoadOptions{Format: FormatJSON, ValidateExits: false})
	require.NoError(t, err, "lenient loading keeps dangling exits")
	assert.Len(t, w.DanglingExits(), 1)
}

func TestDetectFormat(t *testing.T) {
	cases := map[string]Format{
		"game.json":           FormatJSON,
		"worlds/game.yaml":    FormatYAML,
		"worlds/GAME.YML":     FormatYAML,
		"/tmp/dungeon.ini":    FormatINI,
		"relative/world.Json": FormatJSON,
	}
	for path, want := range cases {
		got, err := DetectFormat(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := DetectFormat("game.toml")
	assert.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.json")
	require.NoError(t, os.WriteFile(path, []byte(validWorldJSON), 0644))

	w, err := LoadFromFile(path, LoadOptions{ValidateExits: true})
	require.NoError(t, err)
	assertTestWorld(t, w)
}

func TestLoadFromFile_ExplicitFormatOverridesExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.txt")
	require.NoError(t, os.WriteFile(path, []byte(validWorldYAML), 0644))

	w, err := LoadFromFile(path, LoadOptions{Format: FormatYAML})
	require.NoError(t, err)
	assertTestWorld(t, w)
}

func TestLoadFromFile_NotFound(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "game.json"), LoadOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, OpRead, le.Op)
}

func TestLoadFromFile_ErrorCarriesPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))

	_, err := LoadFromFile(path, LoadOptions{})
	require.Error(t, err)

	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, path, le.Path)
	assert.Contains(t, err.Error(), path)
}

func TestLoadBundledWorlds(t *testing.T) {
	for _, name := range []string{"game.json", "game.yaml", "game.ini"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join("..", "..", "..", "content", "worlds", name)
			w, err := LoadFromFile(path, LoadOptions{ValidateExits: true})
			require.NoError(t, err)

			assert.Equal(t, "cell", w.StartRoom())
			assert.Equal(t, 5, w.RoomCount())
			assert.True(t, w.Has("freedom"))

			gate, _ := w.Room("gate")
			assert.Equal(t, "goblin", gate.Enemy)
			store, _ := w.Room("storeroom")
			assert.True(t, store.IsDark)
			assert.Equal(t, []string{"sword"}, store.Items)
		})
	}
}
