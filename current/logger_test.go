package current

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	defer func() { logger = nil }()

	ctx := context.Background()
	assert.Equal(t, zerolog.Disabled, Logger(ctx).GetLevel())

	global := zerolog.New(&bytes.Buffer{})
	SetLogger(&global)
	assert.True(t, Logger(ctx) == &global)
	assert.Panics(t, func() { SetLogger(&global) })

	local := zerolog.New(&bytes.Buffer{})
	ctx = WithLogger(ctx, &local)
	assert.True(t, Logger(ctx) == &local)
}

func TestSetLoggerRequiresLogger(t *testing.T) {
	defer func() { logger = nil }()
	assert.Panics(t, func() { SetLogger(nil) })
}
