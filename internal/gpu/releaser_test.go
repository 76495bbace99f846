package gpu_test

import (
	"testing"

	"rotating-cubes/internal/gpu"
	"rotating-cubes/internal/gpu/gputest"

	"github.com/stretchr/testify/assert"
)

type named struct {
	name  string
	order *[]string
}

func (n named) Delete() { *n.order = append(*n.order, n.name) }

func TestReleaserReleasesInReverseOrder(t *testing.T) {
	var order []string
	var r gpu.Releaser
	for _, name := range []string{"first", "second", "third"} {
		gpu.Hold(&r, named{name: name, order: &order})
	}

	r.Release()
	assert.Equal(t, []string{"third", "second", "first"}, order)

	r.Release()
	assert.Len(t, order, 3)

	gpu.Hold(&r, named{name: "later", order: &order})
	r.Release()
	assert.Equal(t, []string{"third", "second", "first", "later"}, order)
}

func TestReleaserOnEarlyReturn(t *testing.T) {
	dev := gputest.New()

	build := func() (err error) {
		var r gpu.Releaser
		defer r.Release()

		vao := gpu.Hold(&r, gpu.NewVertexArray(dev))
		vao.Bind()
		gpu.Hold(&r, gpu.NewVertexBuffer(dev, []byte{1, 2, 3, 4}))
		if _, err := gpu.NewProgram(dev, "does-not-exist.vert", "does-not-exist.frag"); err != nil {
			return err
		}
		return nil
	}

	assert.Error(t, build())
	assert.Zero(t, dev.Live())
}
