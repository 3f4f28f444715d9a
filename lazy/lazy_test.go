package lazy

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

type payload struct {
	a, b, c int
	label   string
}

func TestGetConstructsExactlyOnce(t *testing.T) {
	for _, goroutines := range []int{50, 100} {
		t.Run(fmt.Sprintf("%d_callers", goroutines), func(t *testing.T) {
			var builds atomic.Int32
			ref := NewRef(func() (*payload, error) {
				builds.Add(1)
				return &payload{a: 1, b: 2, c: 3, label: "ready"}, nil
			})

			results := make([]*payload, goroutines)

			var wg sync.WaitGroup
			for i := 0; i < goroutines; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					v, err := ref.Get()
					assert.NoError(t, err)
					results[i] = v
				}(i)
			}
			wg.Wait()

			require.EqualValues(t, 1, builds.Load())
			require.NotNil(t, results[0])
			for _, v := range results {
				assert.Same(t, results[0], v)
			}
		})
	}
}

func TestGetIdentityStable(t *testing.T) {
	ref := NewRef(func() (*payload, error) {
		return &payload{label: "same"}, nil
	})

	first, err := ref.Get()
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := ref.Get()
		require.NoError(t, err)
		assert.Same(t, first, again)
	}
}

func TestGetPublishesFullyConstructedValue(t *testing.T) {
	const (
		rounds     = 1000
		goroutines = 50
	)

	for round := 0; round < rounds; round++ {
		ref := NewRef(func() (*payload, error) {
			return &payload{a: 7, b: 11, c: 13, label: "complete"}, nil
		})

		var torn atomic.Int32

		var wg sync.WaitGroup
		for g := 0; g < goroutines; g++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				v, err := ref.Get()
				if err != nil || v == nil {
					torn.Add(1)
					return
				}
				if v.a != 7 || v.b != 11 || v.c != 13 || v.label != "complete" {
					torn.Add(1)
				}
			}()
		}
		wg.Wait()

		require.Zero(t, torn.Load(), "round %d observed a partially constructed value", round)
	}
}

func TestGetRetriesAfterFailedBuild(t *testing.T) {
	errBoom := errors.New("boom")

	var attempts atomic.Int32
	ref := NewRef(func() (*payload, error) {
		if attempts.Add(1) <= 3 {
			return nil, errBoom
		}
		return &payload{label: "eventually"}, nil
	})

	for i := 0; i < 3; i++ {
		v, err := ref.Get()
		assert.Nil(t, v)
		assert.ErrorIs(t, err, errBoom)
		assert.False(t, ref.Ready())
	}

	v, err := ref.Get()
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "eventually", v.label)
	assert.True(t, ref.Ready())
	assert.EqualValues(t, 4, attempts.Load())

	again, err := ref.Get()
	require.NoError(t, err)
	assert.Same(t, v, again)
	assert.EqualValues(t, 4, attempts.Load(), "a published value must never be rebuilt")
}

func TestGetContendedRetryConstructsOnce(t *testing.T) {
	errFlaky := errors.New("flaky dependency")

	var (
		attempts  atomic.Int32
		successes atomic.Int32
	)
	ref := NewRef(func() (*payload, error) {
		if attempts.Add(1) == 1 {
			return nil, errFlaky
		}
		successes.Add(1)
		return &payload{label: "won"}, nil
	})

	var g errgroup.Group
	for i := 0; i < 50; i++ {
		g.Go(func() error {
			for {
				v, err := ref.Get()
				if err != nil {
					// The failed attempt left the slot empty, so the
					// next call runs the build again.
					continue
				}
				if v.label != "won" {
					return errors.New("observed a partially constructed value")
				}
				return nil
			}
		})
	}
	require.NoError(t, g.Wait())
	assert.EqualValues(t, 1, successes.Load())
}

func TestMustGetReturnsValue(t *testing.T) {
	ref := NewRef(func() (int, error) { return 42, nil })
	assert.Equal(t, 42, ref.MustGet())
}

func TestMustGetPanicsOnBuildError(t *testing.T) {
	ref := NewRef(func() (*payload, error) {
		return nil, errors.New("no payload")
	})
	assert.PanicsWithValue(t, "lazy: build failed: no payload", func() {
		ref.MustGet()
	})
}

func TestNewRefNilBuildPanics(t *testing.T) {
	assert.PanicsWithValue(t, "lazy: nil build function", func() {
		NewRef[int](nil)
	})
}

func TestReadyReflectsPublication(t *testing.T) {
	ref := NewRef(func() (int, error) { return 7, nil })
	assert.False(t, ref.Ready())

	_, err := ref.Get()
	require.NoError(t, err)
	assert.True(t, ref.Ready())
}
