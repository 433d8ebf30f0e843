package app

import (
	"bytes"
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreLog(t *testing.T) {
	t.Helper()
	out, flags := log.Writer(), log.Flags()
	t.Cleanup(func() {
		log.SetOutput(out)
		log.SetFlags(flags)
	})
}

func TestSetupLoggingDisabled(t *testing.T) {
	restoreLog(t)
	dir := filepath.Join(t.TempDir(), "logs")

	f, err := SetupLogging(dir, false, nil)
	require.NoError(t, err)
	assert.Nil(t, f)
	assert.Equal(t, io.Discard, log.Writer())

	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "no directory without debug")

	var buf bytes.Buffer
	_, err = SetupLogging(dir, false, &buf)
	require.NoError(t, err)
	log.Print("hello")
	assert.Contains(t, buf.String(), "hello")
}

func TestSetupLoggingEnabled(t *testing.T) {
	restoreLog(t)
	dir := filepath.Join(t.TempDir(), "logs")

	f, err := SetupLogging(dir, true, nil)
	require.NoError(t, err)
	require.NotNil(t, f)
	defer f.Close()

	log.Println("test log message")

	data, err := os.ReadFile(filepath.Join(dir, LogFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "test log message")
}

func TestConfigBind(t *testing.T) {
	c := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-scale", "2", "-hud", "0", "-debug", "-rows", "20", "-gravity", "1s"}))

	assert.Equal(t, 2, c.Scale)
	assert.Equal(t, 0, c.HUDWidth)
	assert.True(t, c.Debug)
	assert.Equal(t, 20, c.Game.Rows)
	assert.Equal(t, time.Second, c.Game.Gravity)
	assert.Equal(t, 60, c.TPS)
}
