package main

import (
	"context"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"

	"sanaa-nights/internal/config"
	"sanaa-nights/internal/logging"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	log := logging.New("sanaa-nights", config.DebugFromEnv())

	ctx, cancel := context.WithCancel(context.Background())
	closer.Bind(func() {
		cancel()
		log.Infof("bye")
	})
	defer closer.Close()

	if err := run(ctx, log); err != nil {
		log.Errorf("%v", err)
		closer.Exit(1)
	}
}

func run(ctx context.Context, log *logging.DefaultLogger) error {
	config.ApplyEnv()

	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()

	window, err := setupWindow()
	if err != nil {
		return err
	}
	defer window.Destroy()

	s, err := setupScene(ctx, log)
	if err != nil {
		return err
	}
	defer s.Dispose()

	setupInputHandlers(window, s)

	loop := NewSceneLoop(ctx, window, s, log.With("loop"))
	loop.Run()
	return nil
}
