package async_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/surveyor/pkg/utils/async"
)

func TestGroup(t *testing.T) {
	t.Run("runs every handler", func(t *testing.T) {
		var g async.Group
		var count atomic.Int32

		for i := 0; i < 4; i++ {
			g.Go(context.Background(), func(ctx context.Context) error {
				count.Add(1)
				return nil
			})
		}

		gt.NoError(t, g.Wait())
		gt.Equal(t, count.Load(), int32(4))
	})

	t.Run("collects errors", func(t *testing.T) {
		var g async.Group
		errFirst := errors.New("first")
		errSecond := errors.New("second")

		g.Go(context.Background(), func(ctx context.Context) error { return errFirst })
		g.Go(context.Background(), func(ctx context.Context) error { return nil })
		g.Go(context.Background(), func(ctx context.Context) error { return errSecond })

		err := g.Wait()
		gt.Error(t, err)
		gt.True(t, errors.Is(err, errFirst))
		gt.True(t, errors.Is(err, errSecond))
	})

	t.Run("recovers from panic", func(t *testing.T) {
		var g async.Group
		g.Go(context.Background(), func(ctx context.Context) error {
			panic("boom")
		})

		gt.Error(t, g.Wait())
	})

	t.Run("handler outlives caller cancellation", func(t *testing.T) {
		var g async.Group
		ctx, cancel := context.WithCancel(context.Background())

		started := make(chan struct{})
		release := make(chan struct{})
		var handlerErr atomic.Value
		g.Go(ctx, func(ctx context.Context) error {
			close(started)
			<-release
			if err := ctx.Err(); err != nil {
				handlerErr.Store(err)
			}
			return nil
		})

		<-started
		cancel()
		close(release)

		gt.NoError(t, g.Wait())
		gt.Equal(t, handlerErr.Load(), nil)
	})

	t.Run("wait without handlers", func(t *testing.T) {
		var g async.Group
		gt.NoError(t, g.Wait())
	})
}
