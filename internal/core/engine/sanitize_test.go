package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	assert.Equal(t, "", Sanitize(""))
	assert.Equal(t, "HelloWorldTest", Sanitize("Hello\u200BWorld\u00A0Test"))
	assert.Equal(t, "Hello World", Sanitize("  Hello World  "))
	assert.Equal(t, "line oneline two", Sanitize("line one\nline two\r\n"))
	assert.Equal(t, "Caf", Sanitize("Café"))
	assert.Equal(t, "", Sanitize("こんにちは"))
	assert.Equal(t, "ok", Sanitize("o\xffk"))
	assert.Equal(t, "<b>", Sanitize("<b>"))

	assert.Len(t, Sanitize(strings.Repeat("a", 600)), MaxMetadataLength)
	assert.Equal(t, strings.Repeat("b", 500), Sanitize("  "+strings.Repeat("b", 500)+"  "))
}

func TestSanitizeMetadata(t *testing.T) {
	in := map[string]string{
		"name":    "  Ada\tLovelace ",
		"message": "\u2764\ufe0f",
		"ref":     "abc-123",
	}
	got := SanitizeMetadata(in)

	assert.Equal(t, map[string]string{"name": "AdaLovelace", "ref": "abc-123"}, got)
	assert.Equal(t, "  Ada\tLovelace ", in["name"])
}
