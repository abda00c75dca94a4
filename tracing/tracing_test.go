package tracing

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStartEndSpanWithoutInit(t *testing.T) {
	// noop provider: spans must be safe before Init
	ctx, span := StartSpan(context.Background(), "test.span")
	assert.NotNil(t, ctx)
	assert.NotNil(t, span)
	EndSpan(span, nil)
	_, span = StartSpan(ctx, "test.span.error")
	EndSpan(span, fmt.Errorf("boom"))
}

func TestInitWithNilExporter(t *testing.T) {
	assert.Nil(t, InitWithExporter("repline", "test", nil))
}
