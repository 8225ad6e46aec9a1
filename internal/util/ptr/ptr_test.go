package ptr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInt(t *testing.T) {
	t.Parallel()

	p := Int(3)
	assert.Equal(t, 3, *p)
	assert.NotSame(t, p, Int(3))
}

func TestDeref(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, Deref(Int(5), 1))
	assert.Equal(t, 1, Deref(nil, 1))
}
