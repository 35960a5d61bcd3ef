package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchCmd_Use(t *testing.T) {
	assert.Equal(t, "watch", watchCmd.Use)
}

func TestWatchCmd_RequiresInputAndOutput(t *testing.T) {
	defer resetRootCmd()
	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))

	rootCmd.SetArgs([]string{"watch", "-c", "", "--preset", ""})
	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}

func TestWatchCmd_InitialPassThenShutdown(t *testing.T) {
	defer resetRootCmd()
	dir := t.TempDir()
	in := writeFile(t, dir, "in.txt", "Hello")
	out := filepath.Join(dir, "out.txt")

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"watch", "-c", "", "-i", in, "-o", out, "--preset", "swapcase"})
	err := rootCmd.ExecuteContext(ctx)

	require.NoError(t, err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "hELLO", string(data))
}

func TestWatchCmd_ReNormalizesOnWrite(t *testing.T) {
	defer resetRootCmd()
	dir := t.TempDir()
	in := writeFile(t, dir, "in.txt", "first")
	out := filepath.Join(dir, "out.txt")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"watch", "-c", "", "-i", in, "-o", out, "--preset", "swapcase"})
	go func() {
		done <- rootCmd.ExecuteContext(ctx)
	}()

	// Wait for the initial pass, then rewrite the input.
	require.Eventually(t, func() bool {
		data, err := os.ReadFile(out)
		return err == nil && string(data) == "FIRST"
	}, 2*time.Second, 20*time.Millisecond)

	require.NoError(t, os.WriteFile(in, []byte("Second"), 0600))

	require.Eventually(t, func() bool {
		data, err := os.ReadFile(out)
		return err == nil && string(data) == "sECOND"
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestNormalizeFile_MissingInput(t *testing.T) {
	dir := t.TempDir()

	svc, err := buildService(context.Background(), "", "swapcase")
	require.NoError(t, err)

	err = normalizeFile(context.Background(), svc, filepath.Join(dir, "absent.txt"), filepath.Join(dir, "out.txt"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "open input")
}
