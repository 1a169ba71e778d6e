package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Window.Scale != 1 || c.Window.Title != "Paperwork Invaders" {
		t.Errorf("window = %+v", c.Window)
	}
	if c.Assets.Soundtrack != "soundtrack.wav" || c.Assets.Background != "background.png" {
		t.Errorf("assets = %+v", c.Assets)
	}
	if c.Audio.Volume != 1 || c.Audio.Mute {
		t.Errorf("audio = %+v", c.Audio)
	}
	if c.Log.Level != "Info" || c.Log.MaxSize != 10 || c.Log.File != "paperwork.log" {
		t.Errorf("log = %+v", c.Log)
	}
	if c.Seed != 0 {
		t.Errorf("seed = %d", c.Seed)
	}
}

func TestLoadPropertiesFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "paperwork.properties", `
window.scale = 2
assets.font = /tmp/matrix.ttf
audio.volume = 0.25
audio.mute = true
log.level = Debug
log.compress = true
game.seed = 1234
`)

	c, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Window.Scale != 2 {
		t.Errorf("scale = %d", c.Window.Scale)
	}
	if c.Assets.Font != "/tmp/matrix.ttf" {
		t.Errorf("font = %q", c.Assets.Font)
	}
	if c.Audio.Volume != 0.25 || !c.Audio.Mute {
		t.Errorf("audio = %+v", c.Audio)
	}
	if c.Log.Level != "Debug" || !c.Log.Compress {
		t.Errorf("log = %+v", c.Log)
	}
	if c.Seed != 1234 {
		t.Errorf("seed = %d", c.Seed)
	}
	// Untouched keys keep their defaults.
	if c.Assets.Soundtrack != "soundtrack.wav" {
		t.Errorf("soundtrack = %q", c.Assets.Soundtrack)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "paperwork.properties", "log.level = Warn\n")
	t.Setenv("PAPERWORK_LOG_LEVEL", "Error")

	c, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Log.Level != "Error" {
		t.Fatalf("level = %q, want Error", c.Log.Level)
	}
}

func TestDotEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env", "PAPERWORK_GAME_SEED=77\n")
	t.Cleanup(func() { os.Unsetenv("PAPERWORK_GAME_SEED") })

	c, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Seed != 77 {
		t.Fatalf("seed = %d, want 77", c.Seed)
	}
}

func TestInvalidValues(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "paperwork.properties", "window.scale = huge\naudio.volume = loud\n")

	_, err := Load(dir)
	if err == nil {
		t.Fatalf("expected an error for non-numeric values")
	}
	for _, key := range []string{"window.scale", "audio.volume"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error %q does not name %s", err, key)
		}
	}
	if strings.Contains(err.Error(), "read config") {
		t.Errorf("file was rejected before decoding: %v", err)
	}
}

func TestMalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "paperwork.properties", "log.level = ${log.level}\n")

	_, err := Load(dir)
	if err == nil || !strings.Contains(err.Error(), "read config") {
		t.Fatalf("err = %v, want a read config error", err)
	}
}

func TestPropertiesCodecNestsKeys(t *testing.T) {
	got := map[string]any{}
	err := propertiesCodec{}.Decode([]byte("window.scale = 3\nLog.MaxSize = 7\ngame.seed=9\n"), got)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	window, _ := got["window"].(map[string]any)
	if window["scale"] != "3" {
		t.Errorf("window = %v", got["window"])
	}
	log, _ := got["log"].(map[string]any)
	if log["maxsize"] != "7" {
		t.Errorf("log = %v", got["log"])
	}

	b, err := propertiesCodec{}.Encode(got)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.Contains(string(b), "window.scale = 3") {
		t.Errorf("encoded = %q", b)
	}
}

func TestNormalized(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "paperwork.properties", "window.scale = 0\naudio.volume = 3\n")

	c, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Window.Scale != 1 || c.Audio.Volume != 1 {
		t.Fatalf("scale=%d volume=%v", c.Window.Scale, c.Audio.Volume)
	}
}
