package internal

import "sync"

// DoneChan is closed to signal that a background task has finished.
type DoneChan chan struct{}

// DoneFunc starts a shutdown and returns a DoneChan that closes once it
// completes.
type DoneFunc func() DoneChan

func wrapWaitGroup(wg *sync.WaitGroup) DoneChan {
	ret := make(DoneChan)
	go func() {
		wg.Wait()
		close(ret)
	}()
	return ret
}

// Combine returns a DoneChan that closes once both first and second
// have closed.
func Combine(first, second DoneChan) DoneChan {
	ret := make(DoneChan)
	go func() {
		<-first
		<-second
		close(ret)
	}()
	return ret
}
