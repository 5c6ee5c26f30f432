package logging

import (
	"bytes"
	"log"
	"testing"

	"github.com/hashicorp/logutils"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected logutils.LogLevel
	}{
		{"DEBUG", "DEBUG"},
		{"info", "INFO"},
		{" error ", "ERROR"},
		{"", "WARN"},
		{"TRACE", "WARN"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.in))
		})
	}
}

func TestFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(NewFilter("INFO", &buf), "", 0)

	logger.Print("[DEBUG] hidden")
	logger.Print("[INFO] shown")
	logger.Print("[ERROR] also shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "[INFO] shown")
	assert.Contains(t, buf.String(), "[ERROR] also shown")
}
