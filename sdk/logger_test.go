package sdk

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/smartcontractkit/tokenvoting/types"
)

func Test_LoggerFrom(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core).Sugar()

	ctx := ContextWithLogger(context.Background(), logger)
	LoggerFrom(ctx).Infof("hello %s", "world")

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "hello world", entries[0].Message)
	}

	// falls back to a production logger
	assert.NotNil(t, LoggerFrom(context.Background()))
}

func Test_NotifierFunc(t *testing.T) {
	t.Parallel()

	var called int
	n := NotifierFunc(func(context.Context, types.Event) { called++ })
	n.Notify(context.Background(), types.VoteCastEvent{})

	assert.Equal(t, 1, called)
}
