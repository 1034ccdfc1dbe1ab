// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-hyper-monitor/internal/adapter"
	"github.com/MKhiriev/go-hyper-monitor/internal/logger"
	"github.com/MKhiriev/go-hyper-monitor/models"
)

type walletSyncService struct {
	adapter    adapter.ServerAdapter
	logger     *logger.Logger
	interval   time.Duration
	fillsLimit int

	mu       sync.Mutex
	target   string
	snapshot models.WalletSnapshot
	// generation increments on every target change. Fetch results carry the
	// generation they were started under and are discarded at apply time if
	// a newer selection has happened since.
	generation uint64

	cancel context.CancelFunc
	wg     sync.WaitGroup

	onUpdate func()
}

// NewWalletSyncService builds the background poller for the selected wallet.
// interval defaults to 15 seconds and fillsLimit to 50 when non-positive.
// The service is idle until SetSelected is called with a non-empty address.
func NewWalletSyncService(serverAdapter adapter.ServerAdapter, interval time.Duration, fillsLimit int, log *logger.Logger) WalletSyncService {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	if fillsLimit <= 0 {
		fillsLimit = 50
	}

	return &walletSyncService{
		adapter:    serverAdapter,
		logger:     log,
		interval:   interval,
		fillsLimit: fillsLimit,
	}
}

func (s *walletSyncService) SetSelected(ctx context.Context, address string) {
	s.mu.Lock()
	if address == s.target {
		target, gen := s.target, s.generation
		s.mu.Unlock()
		// Same target: refresh in place, without invalidating whatever
		// fetch may already be in flight.
		if target != "" {
			go s.fetch(ctx, target, gen)
		}
		return
	}

	s.generation++
	gen := s.generation
	s.target = address
	s.snapshot = models.WalletSnapshot{Loading: address != ""}
	s.mu.Unlock()

	s.stopLoop()
	s.notify()

	if address == "" {
		return
	}

	s.logger.Info().Str("wallet", address).Msg("wallet selected")
	s.startLoop(ctx, address, gen)
	go s.fetch(ctx, address, gen)
}

func (s *walletSyncService) Refresh(ctx context.Context) {
	s.mu.Lock()
	target, gen := s.target, s.generation
	if target != "" {
		s.snapshot.Loading = true
	}
	s.mu.Unlock()

	if target == "" {
		return
	}

	s.notify()
	go s.fetch(ctx, target, gen)
}

func (s *walletSyncService) Snapshot() models.WalletSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot
	snap.Fills = append([]models.Fill(nil), s.snapshot.Fills...)
	return snap
}

func (s *walletSyncService) ActiveTarget() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.target
}

func (s *walletSyncService) SetOnUpdate(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = fn
}

func (s *walletSyncService) Stop() {
	s.stopLoop()
}

// startLoop launches the ticker goroutine for address. The previous loop
// must already be stopped. The goroutine exits when ctx is cancelled or the
// loop's generation is superseded.
func (s *walletSyncService) startLoop(ctx context.Context, address string, gen uint64) {
	s.mu.Lock()
	loopCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		t := time.NewTicker(s.interval)
		defer t.Stop()

		for {
			select {
			case <-loopCtx.Done():
				return
			case <-t.C:
				s.fetch(loopCtx, address, gen)
			}
		}
	}()
}

func (s *walletSyncService) stopLoop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

// fetch retrieves the summary and recent fills for address concurrently and
// applies the result unless the selection has moved on since gen.
func (s *walletSyncService) fetch(ctx context.Context, address string, gen uint64) {
	var (
		summary    models.WalletSummary
		fills      models.FillList
		summaryErr error
		fillsErr   error
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		summary, summaryErr = s.adapter.WalletSummary(ctx, address)
	}()
	go func() {
		defer wg.Done()
		fills, fillsErr = s.adapter.WalletFills(ctx, address, s.fillsLimit)
	}()
	wg.Wait()

	err := summaryErr
	if err == nil {
		err = fillsErr
	}

	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		s.logger.Debug().Str("wallet", address).Msg("discarding stale fetch result")
		return
	}

	s.snapshot.Loading = false
	if err != nil {
		// Keep the previous data so the UI shows stale values rather than
		// blanking out on a transient failure.
		s.snapshot.Error = userMessage(err)
		s.mu.Unlock()
		s.logger.Warn().Err(err).Str("wallet", address).Msg("wallet fetch failed")
		s.notify()
		return
	}

	s.snapshot.Summary = &summary
	s.snapshot.Fills = fills.Items
	s.snapshot.Error = ""
	s.mu.Unlock()

	s.notify()
}

func (s *walletSyncService) notify() {
	s.mu.Lock()
	fn := s.onUpdate
	s.mu.Unlock()

	if fn != nil {
		// The callback may block until the UI event loop receives the
		// message, so it never runs on the caller's goroutine.
		go fn()
	}
}
