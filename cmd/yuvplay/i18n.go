// Package main provides localization for the yuvplay CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Input":   "入力",
		"Surface": "サーフェス",
		"Output":  "出力",
		"Logging": "ログ",

		// Root command
		"Render raw I420 video onto a resizable surface": "生のI420動画をリサイズ可能なサーフェスに描画",
		"yuvplay plays headerless I420 files through the frame renderer, applying container resizes and visibility changes between frames.": "yuvplayはヘッダなしのI420ファイルをフレームレンダラーで再生し、フレーム間でコンテナのリサイズや表示状態の変更を適用します。",

		// Play command
		"Play raw I420 files": "生のI420ファイルを再生",
		"Play each FILE in order. Files given on the command line use --size and are appended to the streams from --config.": "各FILEを順に再生します。コマンドラインで指定したファイルは --size を使用し、--config のストリームの後に追加されます。",

		// Version command
		"Show version information": "バージョン情報を表示",
		"yuvplay version %s":       "yuvplay バージョン %s",

		// Input flags
		"YAML configuration file":                      "YAML設定ファイル",
		"Frame size of FILE arguments (e.g., 640x360)": "FILE引数のフレームサイズ（例: 640x360）",
		"Maximum frames per FILE argument (0 = all)":   "FILE引数ごとの最大フレーム数（0 = すべて）",

		// Surface flags
		"Container size (e.g., 640x360)":                          "コンテナサイズ（例: 640x360）",
		"Resize tolerance in pixels":                              "リサイズの許容誤差（ピクセル）",
		"Letterbox color (hex, e.g., #000000)":                    "レターボックスの色（16進数、例: #000000）",
		"Scaler (nearest, bilinear, approx-bilinear, catmullrom)": "スケーラー（nearest, bilinear, approx-bilinear, catmullrom）",

		// Output flags
		"Directory for PNG snapshots":                       "PNGスナップショットのディレクトリ",
		"Save a snapshot every N frames":                    "Nフレームごとにスナップショットを保存",
		"Output playback summary to file (Markdown format)": "再生サマリーをファイルに出力（Markdown形式）",

		// Logging flags
		"Log level (debug, info, warn, error)": "ログレベル（debug, info, warn, error）",
		"Suppress all log output":              "全てのログ出力を抑制",

		// Runtime messages
		"Failed to write summary: %s":           "サマリーの書き込みに失敗しました: %s",
		"--size is required for FILE arguments": "FILE引数には --size が必要です",
	})
}
