package generator

import (
	"context"
	"time"
)

// realClock は実時間をそのまま使う Clock 実装です。
type realClock struct{}

func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// Rotator は長時間処理の間、待機メッセージを一定間隔で差し替えます。
// 独立したゴルーチンで動作させる前提で、本体の処理を一切ブロックしません。
type Rotator struct {
	messages []string
	interval time.Duration
	clock    Clock
}

// NewRotator は待機メッセージ一覧と差し替え間隔から Rotator を生成するのだ。
func NewRotator(messages []string, interval time.Duration) *Rotator {
	return newRotatorWithClock(messages, interval, realClock{})
}

// newRotatorWithClock はテストから時計を差し替えるための内部コンストラクタです。
func newRotatorWithClock(messages []string, interval time.Duration, clock Clock) *Rotator {
	return &Rotator{messages: messages, interval: interval, clock: clock}
}

// Run は最初のメッセージを即座に emit し、以降は ctx が打ち切られるまで
// 一定間隔でメッセージを順番に差し替え続けます。
func (r *Rotator) Run(ctx context.Context, emit func(string)) {
	if len(r.messages) == 0 || emit == nil {
		return
	}
	emit(r.messages[0])

	for i := 1; ; i++ {
		select {
		case <-ctx.Done():
			return
		case <-r.clock.After(r.interval):
		}
		emit(r.messages[i%len(r.messages)])
	}
}
