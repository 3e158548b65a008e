package low

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuf(t *testing.T) {
	var b Buf

	b = append(b, "message"...)

	b.NewLine()
	b.NewLine() // no duplicate

	assert.Equal(t, "message\n", string(b.Bytes()))
	assert.Equal(t, 8, b.Len())

	b.Reset()
	assert.Equal(t, 0, b.Len())
}
