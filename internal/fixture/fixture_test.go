package fixture_test

import (
	"path/filepath"
	"testing"

	"github.com/mna/tzovm/internal/fixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixturesMatchExpectedStack(t *testing.T) {
	names := []string{"plus", "min", "rconcat", "context_initial", "jgz", "braces"}
	for _, name := range names {
		name := name
		t.Run(name, func(t *testing.T) {
			f, err := fixture.ReadFile(filepath.Join("testdata", name+".json"))
			require.NoError(t, err)

			m, err := fixture.Run(f)
			require.NoError(t, err)

			d, err := fixture.Compare(f, m)
			require.NoError(t, err)
			assert.Empty(t, d, "unexpected stack diff for %s", name)
		})
	}
}

func TestFixtureMismatchProducesDiff(t *testing.T) {
	f, err := fixture.ReadFile(filepath.Join("testdata", "mismatch.json"))
	require.NoError(t, err)

	m, err := fixture.Run(f)
	require.NoError(t, err)

	d, err := fixture.Compare(f, m)
	require.NoError(t, err)
	assert.NotEmpty(t, d)
}

func TestReadFileMissing(t *testing.T) {
	_, err := fixture.ReadFile(filepath.Join("testdata", "does-not-exist.json"))
	require.Error(t, err)
}

func TestDecodeBadJSON(t *testing.T) {
	_, err := fixture.Decode([]byte(`not json`))
	require.Error(t, err)
}
