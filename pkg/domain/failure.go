package domain

import (
	"errors"
	"fmt"
)

// FailureKind は操作境界で利用者へ報告する失敗の分類です。
type FailureKind int

const (
	// FailureInput は入力不足（ベース画像や指示文の欠如）を表します。
	FailureInput FailureKind = iota
	// FailureSoft はサービスは応答したが利用可能な画像を返さなかったことを表します。
	// 要求自体は完了扱いで、状態は一切変更されません。
	FailureSoft
	// FailureHard は通信エラー・不正な応答・結果リンク欠落などの失敗を表します。
	FailureHard
	// FailurePrecondition は前提条件の未成立（スタイル済み画像なしの動画要求など）を表します。
	FailurePrecondition
)

// Failure は利用者へそのまま提示できるメッセージと分類を持つ失敗値です。
// すべての失敗は操作境界で Failure に変換され、プロセスを落とすことはありません。
type Failure struct {
	Kind    FailureKind
	Message string
	Err     error
}

func (f *Failure) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("%s: %v", f.Message, f.Err)
	}
	return f.Message
}

func (f *Failure) Unwrap() error { return f.Err }

// InputFailure は入力不足の失敗を生成するのだ。
func InputFailure(message string) error {
	return &Failure{Kind: FailureInput, Message: message}
}

// SoftFailure はソフト失敗（応答はあるが画像なし）を生成するのだ。
func SoftFailure(message string) error {
	return &Failure{Kind: FailureSoft, Message: message}
}

// HardFailure はハード失敗を生成するのだ。err は nil を許容します。
func HardFailure(message string, err error) error {
	return &Failure{Kind: FailureHard, Message: message, Err: err}
}

// PreconditionFailure は前提条件未成立の失敗を生成するのだ。
func PreconditionFailure(message string) error {
	return &Failure{Kind: FailurePrecondition, Message: message}
}

// KindOf は err に含まれる Failure の分類を返します。
// Failure でないエラーはすべてハード失敗として扱います。
func KindOf(err error) FailureKind {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	return FailureHard
}

// UserMessage は err から利用者向けメッセージを取り出します。
// Failure でない場合はエラー文字列をそのまま返します。
func UserMessage(err error) string {
	var f *Failure
	if errors.As(err, &f) {
		return f.Message
	}
	return err.Error()
}
