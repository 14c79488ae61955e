package anchor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerator_PadsToFourDigits(t *testing.T) {
	g := &generator{prefix: "a"}
	assert.Equal(t, "a0001", g.next())
	assert.Equal(t, "a0002", g.next())
}

func TestGenerator_CustomPrefix(t *testing.T) {
	g := &generator{prefix: "sec"}
	assert.Equal(t, "sec0001", g.next())
}

func TestGenerator_WidensPast9999(t *testing.T) {
	g := &generator{prefix: "a", n: 9998}
	assert.Equal(t, "a9999", g.next())
	assert.Equal(t, "a10000", g.next())
	assert.Equal(t, "a10001", g.next())
}
