package option

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type config struct {
	value int
}

func TestNoErrorAppliesFunc(t *testing.T) {
	c := &config{}
	opt := NoError[*config](func(c *config) { c.value = 7 })

	require.NoError(t, Apply(c, opt))
	require.Equal(t, 7, c.value)
}

func TestNewPropagatesError(t *testing.T) {
	c := &config{}
	wantErr := errors.New("boom")
	opt := New[*config](func(c *config) error { return wantErr })

	err := Apply(c, opt)
	require.ErrorIs(t, err, wantErr)
}

func TestApplyRunsInOrderAndStopsAtFirstError(t *testing.T) {
	c := &config{}
	order := []int{}

	first := NoError[*config](func(c *config) { order = append(order, 1) })
	second := New[*config](func(c *config) error {
		order = append(order, 2)
		return errors.New("stop")
	})
	third := NoError[*config](func(c *config) { order = append(order, 3) })

	err := Apply(c, first, second, third)
	require.Error(t, err)
	require.Equal(t, []int{1, 2}, order)
}
