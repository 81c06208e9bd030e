package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Run("json格式写入文件", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.log")
		log, err := New(Options{Level: "warn", Format: "json", Output: path})
		require.NoError(t, err)

		log.Info("不应输出")
		log.Warn("应该输出")
		_ = log.Sync()

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "应该输出")
		assert.NotContains(t, string(data), "不应输出")
	})

	t.Run("默认级别为info", func(t *testing.T) {
		log, err := New(Options{})
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
		assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("非法参数", func(t *testing.T) {
		_, err := New(Options{Level: "verbose"})
		assert.Error(t, err)

		_, err = New(Options{Format: "xml"})
		assert.Error(t, err)
	})
}
