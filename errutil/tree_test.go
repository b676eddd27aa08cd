package errutil_test

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeptore/flaw/v8"

	"github.com/xeptore/dcue/errutil"
)

func TestTree(t *testing.T) {
	t.Parallel()

	t.Run("NilErr", func(t *testing.T) {
		t.Parallel()
		assert.PanicsWithValue(t, "nil error", func() { errutil.Tree(nil) })
	})

	t.Run("Leaf", func(t *testing.T) {
		t.Parallel()
		tree := errutil.Tree(errors.New("release not found"))
		assert.Equal(t, "release not found", tree.Message)
		assert.Equal(t, "*errors.errorString", tree.TypeName)
		assert.Nil(t, tree.Children)
	})

	t.Run("Wrapped", func(t *testing.T) {
		t.Parallel()
		_, err := os.ReadFile(filepath.Join(t.TempDir(), "missing.cue"))
		tree := errutil.Tree(fmt.Errorf("failed to read cue sheet: %w", err))
		assert.Equal(t, "*fmt.wrapError", tree.TypeName)
		require.Len(t, tree.Children, 1)
		assert.Equal(t, "*fs.PathError", tree.Children[0].TypeName)
		require.Len(t, tree.Children[0].Children, 1)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("Joined", func(t *testing.T) {
		t.Parallel()
		tree := errutil.Tree(
			errors.Join(
				context.DeadlineExceeded,
				errors.Join(errors.New("disc 1"), errors.New("disc 2")),
			),
		)
		assert.Equal(t, "*errors.joinError", tree.TypeName)
		require.Len(t, tree.Children, 2)
		assert.Equal(t, "context.deadlineExceededError", tree.Children[0].TypeName)
		require.Len(t, tree.Children[1].Children, 2)
		assert.Equal(t, "disc 2", tree.Children[1].Children[1].Message)
	})

	t.Run("FlawP", func(t *testing.T) {
		t.Parallel()
		p := errutil.Tree(errors.Join(errors.New("a"), errors.New("b"))).FlawP()
		children, ok := p["children"].([]flaw.P)
		require.True(t, ok)
		require.Len(t, children, 2)
		assert.Equal(t, "b", children[1]["message"])
	})
}

func TestIsAny(t *testing.T) {
	t.Parallel()

	errA := errors.New("a")
	errB := errors.New("b")

	matched, ok := errutil.IsAny(fmt.Errorf("wrapped: %w", errB), errA, errB)
	assert.True(t, ok)
	assert.Equal(t, errB, matched)

	matched, ok = errutil.IsAny(errors.New("c"), errA, errB)
	assert.False(t, ok)
	assert.Nil(t, matched)
}

func TestIsContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	assert.False(t, errutil.IsContext(ctx))
	cancel()
	assert.True(t, errutil.IsContext(ctx))
}
