package timer

import (
	"sync"
	"time"
)

// RepeatedTimer invokes function every interval until stopped. Used for
// the engine's periodic energy reconciliation.
type RepeatedTimer struct {
	interval time.Duration
	function func()

	mu        sync.Mutex
	stopChan  chan struct{}
	isRunning bool
}

func NewRepeatedTimer(interval time.Duration, function func()) *RepeatedTimer {
	rt := &RepeatedTimer{
		interval: interval,
		function: function,
		stopChan: make(chan struct{}),
	}
	rt.Start()
	return rt
}

func (rt *RepeatedTimer) Start() {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if rt.isRunning {
		return
	}
	rt.isRunning = true

	stop := rt.stopChan
	go func() {
		ticker := time.NewTicker(rt.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				rt.function()
			case <-stop:
				return
			}
		}
	}()
}

func (rt *RepeatedTimer) Stop() {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if !rt.isRunning {
		return
	}
	rt.isRunning = false
	close(rt.stopChan)
	rt.stopChan = make(chan struct{}) // reset for future use
}
