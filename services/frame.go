package services

import "github.com/xairline/xa-datarefs/utils/logger"

// FrameLoop is the body of the flight loop callback. It is kept apart from the
// plugin so it can run against the harness.
type FrameLoop struct {
	Logger     logger.Logger
	Dispatcher Dispatcher
	Watcher    Watcher
	// Interval follows XPLM: negative counts frames, positive counts seconds.
	Interval float32

	frames int
}

func NewFrameLoop(logger logger.Logger, dispatcher Dispatcher, watcher Watcher, interval float32) *FrameLoop {
	if interval == 0 {
		interval = -1
	}
	return &FrameLoop{
		Logger:     logger,
		Dispatcher: dispatcher,
		Watcher:    watcher,
		Interval:   interval,
	}
}

func (f *FrameLoop) Tick() float32 {
	f.frames++
	jobs := f.Dispatcher.Drain()
	changed := 0
	if f.Watcher != nil {
		changed = f.Watcher.Poll()
	}
	if jobs > 0 || changed > 0 {
		f.Logger.Debugf("Frame %d: %d jobs, %d changes", f.frames, jobs, changed)
	}
	return f.Interval
}

func (f *FrameLoop) Frames() int {
	return f.frames
}
