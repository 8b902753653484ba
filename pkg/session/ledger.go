package session

import (
	"github.com/shouni/gemini-room-kit/pkg/domain"
)

// HistoryCapacity はアンドゥ履歴に保持するスナップショット数の上限です。
const HistoryCapacity = 20

// HistoryLedger は表示画像スナップショットの線形アンドゥ/リドゥ履歴です。
// 先頭にはベース画像のスナップショットが入り、以降にスタイル結果が並びます。
// カーソルは現在表示中のスナップショット位置を指します（履歴が空なら -1）。
// 上限到達時は最古のエントリから追い出す FIFO リングとして振る舞います。
type HistoryLedger struct {
	entries []*domain.ImageRef
	cursor  int
}

// NewHistoryLedger は空の履歴を生成するのだ。
func NewHistoryLedger() *HistoryLedger {
	return &HistoryLedger{cursor: -1}
}

// Push はカーソルより後ろのリドゥ分岐を破棄してからスナップショットを追加します。
// 上限を超えた場合は先頭を追い出し、カーソルは追加したばかりのエントリを指し続けます。
func (l *HistoryLedger) Push(snapshot *domain.ImageRef) {
	l.entries = append(l.entries[:l.cursor+1], snapshot)
	l.cursor = len(l.entries) - 1
	if len(l.entries) > HistoryCapacity {
		l.entries = l.entries[1:]
		l.cursor--
	}
}

// Undo はカーソルを1つ戻し、新しいカーソル位置のスナップショットを返します。
func (l *HistoryLedger) Undo() (*domain.ImageRef, error) {
	if !l.CanUndo() {
		return nil, domain.PreconditionFailure("これ以上元に戻せる操作はありません")
	}
	l.cursor--
	return l.entries[l.cursor], nil
}

// Redo はカーソルを1つ進め、新しいカーソル位置のスナップショットを返します。
func (l *HistoryLedger) Redo() (*domain.ImageRef, error) {
	if !l.CanRedo() {
		return nil, domain.PreconditionFailure("これ以上やり直せる操作はありません")
	}
	l.cursor++
	return l.entries[l.cursor], nil
}

// CanUndo はアンドゥ可能かどうかを返すのだ。
func (l *HistoryLedger) CanUndo() bool { return l.cursor > 0 }

// CanRedo はリドゥ可能かどうかを返すのだ。
func (l *HistoryLedger) CanRedo() bool { return l.cursor < len(l.entries)-1 }

// Clear は履歴をすべて破棄します。新しいベース画像が設定されたときに呼ばれます。
func (l *HistoryLedger) Clear() {
	l.entries = nil
	l.cursor = -1
}

// Len は現在の履歴数を返します。
func (l *HistoryLedger) Len() int { return len(l.entries) }

// Cursor は現在のカーソル位置を返します（空なら -1）。
func (l *HistoryLedger) Cursor() int { return l.cursor }
