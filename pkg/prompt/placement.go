package prompt

import "strings"

// 3×3分類のしきい値。表示画像に対する正規化座標 [0,1] を前提とします。
const (
	regionLow  = 0.33
	regionHigh = 0.66
)

// PlacementHint は正規化クリック座標を3×3の領域に分類し、英語の配置ヒント文を返します。
// 生成モデルへの指示は英語で送るため、ヒントも英語固定です。
//
// 返す文字列は "in the center" / "on the left side" / "at the top" /
// "in the top left corner" のいずれかの形式です。
func PlacementHint(x, y float64) string {
	var horizontal string // "left" | "" | "right"
	switch {
	case x < regionLow:
		horizontal = "left"
	case x > regionHigh:
		horizontal = "right"
	}

	var vertical string // "top" | "" | "bottom"
	switch {
	case y < regionLow:
		vertical = "top"
	case y > regionHigh:
		vertical = "bottom"
	}

	switch {
	case horizontal == "" && vertical == "":
		return "in the center"
	case horizontal == "":
		return "at the " + vertical
	case vertical == "":
		return "on the " + horizontal + " side"
	default:
		return "in the " + vertical + " " + horizontal + " corner"
	}
}

// BuildInstruction は利用者の指示文の末尾に配置ヒントをそのまま連結するのだ。
func BuildInstruction(instruction, hint string) string {
	instruction = strings.TrimSpace(instruction)
	if hint == "" {
		return instruction
	}
	return instruction + " " + hint
}
