package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/occidere/mmdownloader/internal/binding"
	"github.com/occidere/mmdownloader/internal/model"
	"github.com/occidere/mmdownloader/internal/properties"
	"github.com/occidere/mmdownloader/internal/sysinfo"
)

type recorded struct {
	event   string
	context string
	cause   error
}

type recorderStub struct {
	entries []recorded
}

func (r *recorderStub) Record(event, context string, cause error) {
	r.entries = append(r.entries, recorded{event, context, cause})
}

func newTestInfo(t *testing.T) *sysinfo.Info {
	t.Helper()
	return &sysinfo.Info{
		BaseDir:   filepath.Join(t.TempDir(), "Marumaru"),
		Separator: string(os.PathSeparator),
		ErrorLog:  "error.log",
	}
}

func newTestConfig(t *testing.T, info *sysinfo.Info) (*Configuration, *model.Runtime, *recorderStub) {
	t.Helper()
	rt := model.NewRuntime("test")
	rec := &recorderStub{}
	return New(info, rt.Registry(), rec), rt, rec
}

func readBack(t *testing.T, path string) map[string]string {
	t.Helper()
	store := properties.NewStore(path)
	require.NoError(t, store.Load())
	return store.Map()
}

func TestInit_FreshStart(t *testing.T) {
	// Arrange
	info := newTestInfo(t)
	cfg, rt, rec := newTestConfig(t, info)
	require.False(t, cfg.Exists())

	// Act
	cfg.Init()

	// Assert
	assert.True(t, cfg.Exists())
	assert.Empty(t, rec.entries)
	assert.Equal(t, map[string]string{
		model.KeyPath:  info.BaseDir,
		model.KeyMerge: "false",
		model.KeyDebug: "false",
	}, readBack(t, info.ConfigFile()))

	assert.Equal(t, info.BaseDir, rt.BasePath)
	assert.False(t, rt.Merge)
	assert.False(t, rt.Debug)
}

func TestInit_KeepsExistingValues(t *testing.T) {
	// Arrange
	info := newTestInfo(t)
	require.NoError(t, os.MkdirAll(info.BaseDir, 0o755))
	require.NoError(t, os.WriteFile(info.ConfigFile(), []byte("MERGE=TRUE\nPATH=\n"), 0o644))
	cfg, rt, _ := newTestConfig(t, info)

	// Act
	cfg.Init()

	// Assert
	assert.Equal(t, "TRUE", cfg.GetString(model.KeyMerge, ""))
	assert.Equal(t, "", cfg.GetString(model.KeyPath, "unset"))
	assert.Equal(t, "false", cfg.GetString(model.KeyDebug, ""))
	assert.True(t, rt.Merge)
}

func TestInit_SwallowsIOFailures(t *testing.T) {
	// Arrange: the settings file location is occupied by a directory.
	info := newTestInfo(t)
	require.NoError(t, os.MkdirAll(info.ConfigFile(), 0o755))
	cfg, _, rec := newTestConfig(t, info)

	// Act
	cfg.Init()

	// Assert
	require.Len(t, rec.entries, 2)
	assert.Equal(t, "failed to read settings file", rec.entries[0].event)
	assert.Equal(t, "failed to refresh settings", rec.entries[1].event)
	assert.Equal(t, info.ConfigFile(), rec.entries[0].context)

	var ioErr *properties.IOError
	assert.ErrorAs(t, rec.entries[0].cause, &ioErr)
	assert.ErrorAs(t, rec.entries[1].cause, &ioErr)

	assert.Equal(t, "false", cfg.GetString(model.KeyMerge, ""))
	assert.Equal(t, info.BaseDir, cfg.GetString(model.KeyPath, ""))
}

func TestApplyDefaults_Idempotent(t *testing.T) {
	cfg, _, _ := newTestConfig(t, newTestInfo(t))
	cfg.SetProperty(model.KeyDebug, "true")

	cfg.ApplyDefaults()
	first := cfg.store.Map()
	cfg.SetProperty(model.KeyMerge, "true")
	cfg.ApplyDefaults()

	assert.Equal(t, "true", cfg.GetString(model.KeyDebug, ""))
	assert.Equal(t, "true", cfg.GetString(model.KeyMerge, ""))
	assert.Equal(t, first[model.KeyPath], cfg.GetString(model.KeyPath, ""))
}

func TestRefresh_PersistsAcrossInstances(t *testing.T) {
	// Arrange
	info := newTestInfo(t)
	first, _, _ := newTestConfig(t, info)
	first.Init()

	// Act
	first.SetProperty(model.KeyPath, "/data")
	require.NoError(t, first.Refresh())

	second, rt, _ := newTestConfig(t, info)
	second.Init()

	// Assert
	assert.Equal(t, "/data", second.GetString(model.KeyPath, ""))
	assert.Equal(t, "/data", rt.BasePath)
}

func TestRefresh_UnknownKeySurvives(t *testing.T) {
	info := newTestInfo(t)
	cfg, rt, rec := newTestConfig(t, info)
	cfg.Init()

	cfg.SetProperty("CUSTOM", "x")
	require.NoError(t, cfg.Refresh())

	assert.Equal(t, "x", cfg.GetString("CUSTOM", ""))
	assert.Equal(t, "x", readBack(t, info.ConfigFile())["CUSTOM"])
	assert.Empty(t, rec.entries)
	assert.Equal(t, info.BaseDir, rt.BasePath)
}

func TestRefresh_BindsAfterReload(t *testing.T) {
	cfg, rt, _ := newTestConfig(t, newTestInfo(t))
	cfg.Init()

	cfg.SetProperty(model.KeyDebug, "True")
	assert.False(t, rt.Debug, "SetProperty must not bind")

	require.NoError(t, cfg.Refresh())
	assert.True(t, rt.Debug)
}

func TestRefresh_PropagatesIOError(t *testing.T) {
	info := newTestInfo(t)
	require.NoError(t, os.MkdirAll(info.ConfigFile(), 0o755))
	cfg, _, rec := newTestConfig(t, info)

	err := cfg.Refresh()

	var ioErr *properties.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, properties.OpWrite, ioErr.Op)
	assert.Empty(t, rec.entries)
}

func TestLoadAndStoreProperty_PropagateIOError(t *testing.T) {
	info := newTestInfo(t)
	require.NoError(t, os.MkdirAll(info.ConfigFile(), 0o755))
	cfg, _, _ := newTestConfig(t, info)

	assert.Error(t, cfg.LoadProperty())
	assert.Error(t, cfg.StoreProperty())
}

func TestApplyProperty_RecordsReadOnlySlot(t *testing.T) {
	cfg, rt, rec := newTestConfig(t, newTestInfo(t))
	cfg.SetProperty(model.KeyVersion, "9.9")
	cfg.SetProperty(model.KeyMerge, "true")

	cfg.ApplyProperty()

	assert.True(t, rt.Merge)
	assert.Equal(t, "test", rt.Version)
	require.Len(t, rec.entries, 1)
	assert.ErrorIs(t, rec.entries[0].cause, binding.ErrReadOnlySlot)
}

func TestKeys_Sorted(t *testing.T) {
	cfg, _, _ := newTestConfig(t, newTestInfo(t))
	cfg.SetProperty("b", "2")
	cfg.SetProperty("a", "1")
	cfg.SetProperty("C", "3")

	assert.Equal(t, []string{"C", "a", "b"}, cfg.Keys())
}

func TestInit_EmptyKeyLineKeepsUserSettings(t *testing.T) {
	// Arrange
	info := newTestInfo(t)
	require.NoError(t, os.MkdirAll(info.BaseDir, 0o755))
	require.NoError(t, os.WriteFile(info.ConfigFile(), []byte("PATH=/my/manga\nMERGE=true\n=orphan\n"), 0o644))
	cfg, rt, rec := newTestConfig(t, info)

	// Act
	cfg.Init()

	// Assert
	assert.Empty(t, rec.entries)
	assert.Equal(t, map[string]string{
		model.KeyPath:  "/my/manga",
		model.KeyMerge: "true",
		model.KeyDebug: "false",
	}, readBack(t, info.ConfigFile()))
	assert.Equal(t, "/my/manga", rt.BasePath)
	assert.True(t, rt.Merge)
}

func TestLoadProperty_MalformedEscape(t *testing.T) {
	info := newTestInfo(t)
	require.NoError(t, os.MkdirAll(info.BaseDir, 0o755))
	require.NoError(t, os.WriteFile(info.ConfigFile(), []byte("C=\\u00"), 0o644))
	cfg, _, _ := newTestConfig(t, info)

	err := cfg.LoadProperty()

	var ioErr *properties.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, properties.OpParse, ioErr.Op)
	assert.ErrorIs(t, err, properties.ErrInvalidEscape)
}
