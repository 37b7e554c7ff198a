package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/repoxml/internal/core/domain"
	"github.com/custodia-labs/repoxml/internal/logger"
)

func TestFactory_New_Gitignore(t *testing.T) {
	t.Run("honours rules when enabled", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, ".gitignore"), []byte("*.out\ncoverage/\n"), 0644))

		m, err := NewFactory(logger.Discard()).New(root, domain.NewIgnorePatternSet(), true)
		require.NoError(t, err)

		pattern, ignored := m.Ignored("bin/app.out")
		assert.True(t, ignored)
		assert.Equal(t, GitignorePattern, pattern)

		_, ignored = m.Ignored("coverage/index.html")
		assert.True(t, ignored)

		_, ignored = m.Ignored("main.go")
		assert.False(t, ignored)
	})

	t.Run("glob patterns win over gitignore", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, ".gitignore"), []byte("*.png\n"), 0644))

		m, err := NewFactory(logger.Discard()).New(root, domain.NewIgnorePatternSet(), true)
		require.NoError(t, err)

		pattern, ignored := m.Ignored("logo.png")
		assert.True(t, ignored)
		assert.Equal(t, "*.png", pattern)
	})

	t.Run("ignored when disabled", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, ".gitignore"), []byte("*.out\n"), 0644))

		m, err := NewFactory(logger.Discard()).New(root, domain.NewIgnorePatternSet(), false)
		require.NoError(t, err)

		_, ignored := m.Ignored("app.out")
		assert.False(t, ignored)
	})

	t.Run("missing file is not an error", func(t *testing.T) {
		m, err := NewFactory(logger.Discard()).New(t.TempDir(), domain.NewIgnorePatternSet(), true)
		require.NoError(t, err)

		_, ignored := m.Ignored("main.go")
		assert.False(t, ignored)
	})

	t.Run("unreadable file is an error", func(t *testing.T) {
		root := t.TempDir()
		// A directory named .gitignore cannot be read as a file.
		require.NoError(t, os.Mkdir(filepath.Join(root, ".gitignore"), 0755))

		_, err := NewFactory(logger.Discard()).New(root, domain.NewIgnorePatternSet(), true)
		assert.Error(t, err)
	})
}
