package repline

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffListenerLogsChanges(t *testing.T) {
	var buffer bytes.Buffer
	listener := DiffListener(log.New(&buffer, "", 0))

	listener("view-1", []string{"2"}, []string{"4"})
	logged := buffer.String()
	assert.True(t, strings.Contains(logged, "view-1"))
	assert.True(t, strings.Contains(logged, "-2"))
	assert.True(t, strings.Contains(logged, "+4"))
}

func TestDiffListenerSilentWhenUnchanged(t *testing.T) {
	var buffer bytes.Buffer
	listener := DiffListener(log.New(&buffer, "", 0))
	listener("view-1", []string{"2"}, []string{"2"})
	assert.EqualValues(t, "", buffer.String())
}
