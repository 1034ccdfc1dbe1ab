// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-hyper-monitor/internal/adapter"
	"github.com/MKhiriev/go-hyper-monitor/internal/logger"
	"github.com/MKhiriev/go-hyper-monitor/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWalletAdapter отдаёт данные по адресу и позволяет управлять задержкой
// и ошибками. Невызываемые методы ServerAdapter паникуют через встраивание.
type fakeWalletAdapter struct {
	adapter.ServerAdapter

	mu      sync.Mutex
	delay   time.Duration
	err     error
	balance map[string]float64
	fills   map[string][]models.Fill

	summaryCalls atomic.Int64
	lastLimit    atomic.Int64
}

func newFakeWalletAdapter() *fakeWalletAdapter {
	return &fakeWalletAdapter{
		balance: make(map[string]float64),
		fills:   make(map[string][]models.Fill),
	}
}

func (f *fakeWalletAdapter) setDelay(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.delay = d
}

func (f *fakeWalletAdapter) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func (f *fakeWalletAdapter) WalletSummary(ctx context.Context, address string) (models.WalletSummary, error) {
	f.summaryCalls.Add(1)

	f.mu.Lock()
	delay, err := f.delay, f.err
	balance := f.balance[address]
	f.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return models.WalletSummary{}, ctx.Err()
		}
	}
	if err != nil {
		return models.WalletSummary{}, err
	}

	return models.WalletSummary{Address: address, Balance: balance}, nil
}

func (f *fakeWalletAdapter) WalletFills(ctx context.Context, address string, limit int) (models.FillList, error) {
	f.lastLimit.Store(int64(limit))

	f.mu.Lock()
	delay, err := f.delay, f.err
	fills := append([]models.Fill(nil), f.fills[address]...)
	f.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return models.FillList{}, ctx.Err()
		}
	}
	if err != nil {
		return models.FillList{}, err
	}

	return models.FillList{Address: address, Count: len(fills), Items: fills}, nil
}

// waitFor опрашивает cond до успеха или до таймаута.
func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met within %v", timeout)
}

func newTestSyncSvc(fake *fakeWalletAdapter, interval time.Duration) WalletSyncService {
	return NewWalletSyncService(fake, interval, 50, logger.Nop())
}

// ── SetSelected ──────────────────────────────────────────────────────────────

func TestWalletSyncService_SetSelected_FetchesImmediately(t *testing.T) {
	fake := newFakeWalletAdapter()
	fake.balance["0xabc"] = 1250.5
	fake.fills["0xabc"] = []models.Fill{{Coin: "ETH", Side: "buy", TxHash: "0xdead"}}

	svc := newTestSyncSvc(fake, time.Hour)
	defer svc.Stop()

	svc.SetSelected(context.Background(), "0xabc")

	waitFor(t, time.Second, func() bool {
		snap := svc.Snapshot()
		return snap.Summary != nil && !snap.Loading
	})

	snap := svc.Snapshot()
	require.NotNil(t, snap.Summary)
	assert.Equal(t, "0xabc", snap.Summary.Address)
	assert.Equal(t, 1250.5, snap.Summary.Balance)
	require.Len(t, snap.Fills, 1)
	assert.Equal(t, "0xdead", snap.Fills[0].TxHash)
	assert.Empty(t, snap.Error)
	assert.Equal(t, "0xabc", svc.ActiveTarget())
}

func TestWalletSyncService_SetSelected_Empty_ClearsAndStops(t *testing.T) {
	fake := newFakeWalletAdapter()
	fake.balance["0xabc"] = 100

	svc := newTestSyncSvc(fake, 10*time.Millisecond)
	defer svc.Stop()

	svc.SetSelected(context.Background(), "0xabc")
	waitFor(t, time.Second, func() bool { return svc.Snapshot().Summary != nil })

	svc.SetSelected(context.Background(), "")

	snap := svc.Snapshot()
	assert.Nil(t, snap.Summary)
	assert.Empty(t, snap.Fills)
	assert.False(t, snap.Loading)
	assert.Empty(t, svc.ActiveTarget())

	// тикер остановлен — новых запросов быть не должно
	calls := fake.summaryCalls.Load()
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, calls, fake.summaryCalls.Load())
}

func TestWalletSyncService_SetSelected_SupersededResultDiscarded(t *testing.T) {
	fake := newFakeWalletAdapter()
	fake.balance["0xslow"] = 111
	fake.balance["0xfast"] = 222

	svc := newTestSyncSvc(fake, time.Hour)
	defer svc.Stop()

	// первый выбор отвечает медленно
	fake.setDelay(80 * time.Millisecond)
	svc.SetSelected(context.Background(), "0xslow")

	// второй выбор быстрый и должен победить
	time.Sleep(10 * time.Millisecond)
	fake.setDelay(0)
	svc.SetSelected(context.Background(), "0xfast")

	waitFor(t, time.Second, func() bool { return svc.Snapshot().Summary != nil })

	// ждём завершения медленного запроса и проверяем что он отброшен
	time.Sleep(120 * time.Millisecond)

	snap := svc.Snapshot()
	require.NotNil(t, snap.Summary)
	assert.Equal(t, "0xfast", snap.Summary.Address)
	assert.Equal(t, 222.0, snap.Summary.Balance)
}

func TestWalletSyncService_SetSelected_SameTarget_NoRestart(t *testing.T) {
	fake := newFakeWalletAdapter()
	fake.balance["0xabc"] = 100

	svc := newTestSyncSvc(fake, time.Hour)
	defer svc.Stop()

	svc.SetSelected(context.Background(), "0xabc")
	waitFor(t, time.Second, func() bool { return svc.Snapshot().Summary != nil })

	fake.mu.Lock()
	fake.balance["0xabc"] = 200
	fake.mu.Unlock()

	// повторный выбор того же адреса — немедленный refresh без сброса снапшота
	svc.SetSelected(context.Background(), "0xabc")

	waitFor(t, time.Second, func() bool {
		snap := svc.Snapshot()
		return snap.Summary != nil && snap.Summary.Balance == 200
	})
}

// ── Ticker ───────────────────────────────────────────────────────────────────

func TestWalletSyncService_PollsOnInterval(t *testing.T) {
	fake := newFakeWalletAdapter()
	fake.balance["0xabc"] = 100

	svc := newTestSyncSvc(fake, 10*time.Millisecond)
	defer svc.Stop()

	svc.SetSelected(context.Background(), "0xabc")
	time.Sleep(55 * time.Millisecond)
	svc.Stop()

	got := fake.summaryCalls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "за 55ms при интервале 10ms должно быть несколько циклов, было: %d", got)
}

func TestWalletSyncService_Stop_BeforeSelect_NoPanic(t *testing.T) {
	svc := newTestSyncSvc(newFakeWalletAdapter(), time.Hour)

	assert.NotPanics(t, func() { svc.Stop() })
	assert.NotPanics(t, func() { svc.Stop() })
}

// ── Refresh ──────────────────────────────────────────────────────────────────

func TestWalletSyncService_Refresh_Idle_NoOp(t *testing.T) {
	fake := newFakeWalletAdapter()
	svc := newTestSyncSvc(fake, time.Hour)
	defer svc.Stop()

	svc.Refresh(context.Background())
	time.Sleep(20 * time.Millisecond)

	assert.Equal(t, int64(0), fake.summaryCalls.Load())
}

func TestWalletSyncService_Refresh_UsesConfiguredFillsLimit(t *testing.T) {
	fake := newFakeWalletAdapter()
	fake.balance["0xabc"] = 100

	svc := NewWalletSyncService(fake, time.Hour, 25, logger.Nop())
	defer svc.Stop()

	svc.SetSelected(context.Background(), "0xabc")
	waitFor(t, time.Second, func() bool { return svc.Snapshot().Summary != nil })

	assert.Equal(t, int64(25), fake.lastLimit.Load())
}

// ── Ошибки ───────────────────────────────────────────────────────────────────

func TestWalletSyncService_FetchError_PreservesPreviousData(t *testing.T) {
	fake := newFakeWalletAdapter()
	fake.balance["0xabc"] = 100
	fake.fills["0xabc"] = []models.Fill{{Coin: "BTC", TxHash: "0xbeef"}}

	svc := newTestSyncSvc(fake, time.Hour)
	defer svc.Stop()

	svc.SetSelected(context.Background(), "0xabc")
	waitFor(t, time.Second, func() bool { return svc.Snapshot().Summary != nil })

	fake.setErr(&adapter.RequestError{Message: "wallet not found", Status: 404})
	svc.Refresh(context.Background())

	waitFor(t, time.Second, func() bool { return svc.Snapshot().Error != "" })

	snap := svc.Snapshot()
	assert.Equal(t, "wallet not found", snap.Error)
	// старые данные сохраняются, UI не мигает пустотой
	require.NotNil(t, snap.Summary)
	assert.Equal(t, 100.0, snap.Summary.Balance)
	require.Len(t, snap.Fills, 1)

	// следующий успешный цикл очищает ошибку
	fake.setErr(nil)
	svc.Refresh(context.Background())
	waitFor(t, time.Second, func() bool { return svc.Snapshot().Error == "" })
}

// ── Уведомления ──────────────────────────────────────────────────────────────

func TestWalletSyncService_OnUpdate_FiresAfterApply(t *testing.T) {
	fake := newFakeWalletAdapter()
	fake.balance["0xabc"] = 100

	svc := newTestSyncSvc(fake, time.Hour)
	defer svc.Stop()

	var notified atomic.Int64
	svc.SetOnUpdate(func() { notified.Add(1) })

	svc.SetSelected(context.Background(), "0xabc")

	waitFor(t, time.Second, func() bool { return notified.Load() >= 2 })

	// минимум два уведомления: переход в loading и применённый результат
	assert.GreaterOrEqual(t, notified.Load(), int64(2))
}

func TestWalletSyncService_OnUpdate_BlockingCallbackDoesNotBlockCaller(t *testing.T) {
	fake := newFakeWalletAdapter()
	fake.balance["0xabc"] = 100

	svc := newTestSyncSvc(fake, time.Hour)
	defer svc.Stop()

	// коллбек блокируется как program.Send при занятом цикле событий
	release := make(chan struct{})
	defer close(release)
	svc.SetOnUpdate(func() { <-release })

	done := make(chan struct{})
	go func() {
		svc.SetSelected(context.Background(), "0xabc")
		svc.Refresh(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("SetSelected blocked on the update callback")
	}
}

func TestWalletSyncService_Snapshot_ReturnsCopy(t *testing.T) {
	fake := newFakeWalletAdapter()
	fake.balance["0xabc"] = 100
	fake.fills["0xabc"] = []models.Fill{{Coin: "ETH", TxHash: "0x1"}, {Coin: "BTC", TxHash: "0x2"}}

	svc := newTestSyncSvc(fake, time.Hour)
	defer svc.Stop()

	svc.SetSelected(context.Background(), "0xabc")
	waitFor(t, time.Second, func() bool { return svc.Snapshot().Summary != nil })

	snap := svc.Snapshot()
	snap.Fills[0].Coin = "MUTATED"

	assert.Equal(t, "ETH", svc.Snapshot().Fills[0].Coin)
}
