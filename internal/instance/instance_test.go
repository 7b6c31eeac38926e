package instance_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-rpq/internal/instance"
	"github.com/askiada/go-rpq/pkg/rpq/model"
)

func TestLoadSaveRoundTrip(t *testing.T) {
	t.Parallel()

	jobs := []model.Job{
		model.New(10, 5, 7),
		model.New(0, 6, 17),
		model.New(30, 2, 0),
	}

	fileName := filepath.Join(t.TempDir(), "seven.toml")

	err := instance.Save(fileName, "seven", jobs)
	require.NoError(t, err)

	loaded, err := instance.Load(fileName)
	require.NoError(t, err)
	assert.Equal(t, jobs, loaded)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := instance.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoadEmptyInstance(t *testing.T) {
	t.Parallel()

	fileName := filepath.Join(t.TempDir(), "empty.toml")
	require.NoError(t, os.WriteFile(fileName, []byte("name = \"empty\"\n"), 0o600))

	_, err := instance.Load(fileName)
	require.Error(t, err)
	assert.ErrorIs(t, err, instance.ErrEmptyInstance)
}

func TestLoadNegativeTimes(t *testing.T) {
	t.Parallel()

	fileName := filepath.Join(t.TempDir(), "negative.toml")
	content := "[[job]]\ndelivery = -1\nprocessing = 5\ncooldown = 7\n"
	require.NoError(t, os.WriteFile(fileName, []byte(content), 0o600))

	_, err := instance.Load(fileName)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "job 0")
}

func TestLoadMalformedFile(t *testing.T) {
	t.Parallel()

	fileName := filepath.Join(t.TempDir(), "malformed.toml")
	require.NoError(t, os.WriteFile(fileName, []byte("[[job\n"), 0o600))

	_, err := instance.Load(fileName)
	assert.Error(t, err)
}
