package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{"a", ImportCommand{}},
		{"A", ImportCommand{}},
		{"a ignored args", ImportCommand{}},
		{"s Dark", SearchCommand{Title: "dark"}},
		{"S  Слово   Пацана ", SearchCommand{Title: "слово пацана"}},
		{"s", UsageCommand{Usage: searchUsage}},
		{"s   ", UsageCommand{Usage: searchUsage}},
		{"l", ListCommand{}},
		{"L", ListCommand{}},
		{"d 507F1F77BCF86CD799439011", DeleteCommand{ID: "507f1f77bcf86cd799439011"}},
		{"d 507f1f77bcf86cd799439011 extra", DeleteCommand{ID: "507f1f77bcf86cd799439011"}},
		{"d", UsageCommand{Usage: deleteUsage}},
		{"q", QuitCommand{}},
		{"  Q  ", QuitCommand{}},
		{"x", InvalidCommand{Input: "x"}},
		{"search dark", InvalidCommand{Input: "search dark"}},
		{"", InvalidCommand{Input: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCommand(tt.line))
		})
	}
}
