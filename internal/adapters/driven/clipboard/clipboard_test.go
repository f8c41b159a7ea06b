package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vabank-dev/vabank/internal/core/domain"
)

func stubWriteAll(t *testing.T, fn func(string) error) {
	t.Helper()
	orig := writeAll
	writeAll = fn
	t.Cleanup(func() { writeAll = orig })
}

func TestSystem_WriteAll(t *testing.T) {
	var got string
	stubWriteAll(t, func(s string) error {
		got = s
		return nil
	})

	assert.NoError(t, System{}.WriteAll("npm i"))
	assert.Equal(t, "npm i", got)
}

func TestSystem_WriteAllFailure(t *testing.T) {
	stubWriteAll(t, func(string) error { return errors.New("no xclip") })

	err := System{}.WriteAll("x")

	assert.ErrorIs(t, err, domain.ErrClipboardUnavailable)
	assert.ErrorContains(t, err, "no xclip")
}
