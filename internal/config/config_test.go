package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes into dir for the duration of the test, restoring the
// previous working directory on cleanup (t.Chdir needs Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_When_NoConfigFile(t *testing.T) {
	chdir(t, t.TempDir())

	cfg := Load()

	assert.Equal(t, 3, cfg.MinMentions)
	assert.Equal(t, 10, cfg.Winners)
	assert.Equal(t, 50, cfg.HighVolume)
	assert.Equal(t, "default", cfg.Theme)
	assert.False(t, cfg.SeedExplicit)
}

func TestLoad_When_LocalYAML(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	yaml := "min_mentions: 5\nwinners: 3\nhigh_volume_threshold: 20\nseed: 99\ntheme: orca\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".pick.yaml"), []byte(yaml), 0o644))

	cfg := Load()

	assert.Equal(t, 5, cfg.MinMentions)
	assert.Equal(t, 3, cfg.Winners)
	assert.Equal(t, 20, cfg.HighVolume)
	assert.True(t, cfg.SeedExplicit)
	assert.Equal(t, int64(99), cfg.SeedValue)
	assert.Equal(t, "orca", cfg.Theme)
}

func TestLoad_When_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".pick.yaml"), []byte("winners: [not an int"), 0o644))

	cfg := Load()

	// Malformed config degrades to defaults rather than failing the run.
	assert.Equal(t, 10, cfg.Winners)
}

func TestMerge_FlagsBeatYAML(t *testing.T) {
	cfg := &AppConfig{MinMentions: 5, Winners: 3, HighVolume: 20, Theme: "orca"}

	out := Merge(cfg, Flags{
		Winners: 7, WinnersSet: true,
		Seed: 1234, SeedSet: true,
	})

	assert.Equal(t, 7, out.Winners)
	assert.Equal(t, 5, out.MinMentions, "unset flags must not clobber YAML values")
	assert.True(t, out.SeedExplicit)
	assert.Equal(t, int64(1234), out.SeedValue)
}

func TestMerge_EnvBeatsYAML(t *testing.T) {
	t.Setenv("PICK_NO_COLOR", "true")

	out := Merge(&AppConfig{Theme: "orca"}, Flags{})

	assert.True(t, out.NoColor)
	assert.Equal(t, "mono", out.Theme)
}

func TestMerge_CIForcesMonoTheme(t *testing.T) {
	t.Setenv("PICK_CI", "")
	t.Setenv("CI", "")

	out := Merge(&AppConfig{Theme: "default"}, Flags{CI: true, CISet: true})

	assert.True(t, out.CI)
	assert.Equal(t, "mono", out.Theme)
}

func TestMerge_DoesNotMutateInput(t *testing.T) {
	t.Setenv("PICK_NO_COLOR", "")
	t.Setenv("NO_COLOR", "")
	cfg := &AppConfig{Theme: "orca", Winners: 3}

	Merge(cfg, Flags{Winners: 9, WinnersSet: true, NoColor: true, NoColorSet: true})

	assert.Equal(t, 3, cfg.Winners)
	assert.Equal(t, "orca", cfg.Theme)
}
