package finder

import (
	"context"
	"errors"
)

// RankAsync ranks query in a goroutine and delivers the results through
// callback. Any ranking still in flight from a previous keystroke is
// cancelled first; a cancelled ranking never invokes its callback.
func (f *Finder) RankAsync(query string, limit int, callback func(results []Result)) {
	f.cancelOngoingRank()

	ctx, cancel := context.WithCancel(context.Background())
	token := f.setCancel(cancel)

	go func() {
		defer f.clearCancel(token)
		defer cancel()

		results, err := f.rank(ctx, query, limit)
		if errors.Is(err, context.Canceled) {
			return
		}
		if !f.isTokenCurrent(token) {
			return
		}
		callback(results)
	}()
}

// CancelOngoingRank stops any in-flight ranking pass.
func (f *Finder) CancelOngoingRank() {
	f.cancelOngoingRank()
}

func (f *Finder) cancelOngoingRank() {
	f.cancelMu.Lock()
	defer f.cancelMu.Unlock()
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
		f.token++
	}
}

func (f *Finder) setCancel(cancel context.CancelFunc) int {
	f.cancelMu.Lock()
	f.token++
	token := f.token
	f.cancel = cancel
	f.cancelMu.Unlock()
	return token
}

func (f *Finder) clearCancel(token int) {
	f.cancelMu.Lock()
	if f.token == token {
		f.cancel = nil
	}
	f.cancelMu.Unlock()
}

func (f *Finder) isTokenCurrent(token int) bool {
	f.cancelMu.Lock()
	defer f.cancelMu.Unlock()
	return f.token == token
}
