package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Playback (info)
		"Playing %s (%dx%d)":                     "%s を再生中 (%dx%d)",
		"Playback finished: %d frames, %d drawn": "再生完了: %d フレーム, %d 描画",
		"Container resized to %dx%d":             "コンテナを %dx%d にリサイズしました",
		"Container hidden":                       "コンテナを非表示にしました",
		"Container shown":                        "コンテナを表示しました",
		"Render target cleared":                  "描画ターゲットをクリアしました",
		"Summary written to %s":                  "サマリーを %s に書き込みました",
		"Interrupted, shutting down...":          "中断されました。シャットダウン中...",

		// Renderer (debug)
		"Run %s started":                         "実行 %s を開始しました",
		"View bound (%dx%d)":                     "ビューをバインドしました (%dx%d)",
		"View removed":                           "ビューを削除しました",
		"Video size changed from %dx%d to %dx%d": "動画サイズが %dx%d から %dx%d に変わりました",
		"Surface resized from %dx%d to %dx%d":    "サーフェスを %dx%d から %dx%d にリサイズしました",

		// Warnings
		"Render error: %v":               "描画エラー: %v",
		"Failed to save snapshot %d: %v": "スナップショット %d の保存に失敗しました: %v",
		"Unknown event %q ignored":       "不明なイベント %q を無視しました",

		// Errors
		"Failed to open %s: %v":    "%s を開けませんでした: %v",
		"Failed to read frame: %v": "フレームの読み込みに失敗しました: %v",
	})
}
