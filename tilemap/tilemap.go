// Package tilemap は、都道府県の訪問状況をタイルグリッドのSVGとして描画します。
package tilemap

import (
	"fmt"
	"html"
	"strings"

	"github.com/stsysd/tabimap/model"
)

// Colors は訪問状況ごとの塗り色です。
type Colors struct {
	Unvisited string
	Partial   string
	Completed string
}

// Options は描画設定です。
type Options struct {
	CellSize    int
	CellPadding int
	FontSize    int
	FontFamily  string
	Colors      Colors
	// 空でなければ各セルを <a href="LinkPrefix+ID"> で囲む
	LinkPrefix string
	Title      string
}

// DefaultOptions は既定の描画設定を返します。
func DefaultOptions() *Options {
	return &Options{
		CellSize:    40,
		CellPadding: 4,
		FontSize:    11,
		FontFamily:  "sans-serif",
		Colors: Colors{
			Unvisited: "#e9ecef",
			Partial:   "#ffd93d",
			Completed: "#6bcb77",
		},
	}
}

func (c Colors) fill(s model.Status) string {
	switch s {
	case model.StatusCompleted:
		return c.Completed
	case model.StatusPartial:
		return c.Partial
	default:
		return c.Unvisited
	}
}

// Render はコレクションをSVG文字列に変換します。
// グリッドに位置がない都道府県は描画しません。
func Render(c model.Collection, opts *Options) string {
	if opts == nil {
		opts = DefaultOptions()
	}

	titleHeight := 0
	if opts.Title != "" {
		titleHeight = opts.FontSize + 8
	}
	step := opts.CellSize + opts.CellPadding
	legendHeight := opts.FontSize + 8
	width := gridCols*step + opts.CellPadding
	height := titleHeight + gridRows*step + opts.CellPadding + legendHeight

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<svg width="%d" height="%d" viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg">`+"\n", width, height, width, height))
	sb.WriteString(fmt.Sprintf(`  <style>.label{font-family:%s;font-size:%dpx;fill:#333;pointer-events:none}.title{font-family:%s;font-size:%dpx;fill:#333;font-weight:bold}</style>`+"\n",
		opts.FontFamily, opts.FontSize, opts.FontFamily, opts.FontSize))

	if opts.Title != "" {
		sb.WriteString(fmt.Sprintf(`  <text x="%d" y="%d" class="title">%s</text>`+"\n",
			opts.CellPadding, opts.FontSize, html.EscapeString(opts.Title)))
	}

	for _, p := range c {
		pos, ok := grid[p.ID]
		if !ok {
			continue
		}
		x := opts.CellPadding + pos.Col*step
		y := titleHeight + opts.CellPadding + pos.Row*step
		status := model.PrefectureStatus(p)

		indent := "  "
		if opts.LinkPrefix != "" {
			sb.WriteString(fmt.Sprintf(`  <a href="%s">`+"\n", html.EscapeString(opts.LinkPrefix+p.ID)))
			indent = "    "
		}

		// 各セルに矩形と、その中にtitle要素（ツールチップ）を追加
		sb.WriteString(fmt.Sprintf(`%s<rect x="%d" y="%d" width="%d" height="%d" rx="4" fill="%s" data-prefecture-id="%s" data-status="%s">`+"\n",
			indent, x, y, opts.CellSize, opts.CellSize, opts.Colors.fill(status), p.ID, status))
		sb.WriteString(fmt.Sprintf(`%s  <title>%s</title>`+"\n", indent, html.EscapeString(tooltip(p, status))))
		sb.WriteString(indent + `</rect>` + "\n")
		sb.WriteString(fmt.Sprintf(`%s<text x="%d" y="%d" text-anchor="middle" class="label">%s</text>`+"\n",
			indent, x+opts.CellSize/2, y+opts.CellSize/2+opts.FontSize/2, html.EscapeString(shortName(p))))

		if opts.LinkPrefix != "" {
			sb.WriteString(`  </a>` + "\n")
		}
	}

	writeLegend(&sb, opts, height-legendHeight)

	sb.WriteString(`</svg>`)
	return sb.String()
}

func tooltip(p model.Prefecture, status model.Status) string {
	return fmt.Sprintf("%s (%s): %s, %d/%d districts, %.0f%%",
		p.Name, p.NameJp, status, model.VisitedDistrictCount(p), len(p.Districts), model.ProgressPercent(p))
}

// shortName は都・府・県を除いた日本語名を返します。北海道はそのままです。
func shortName(p model.Prefecture) string {
	for _, suffix := range []string{"都", "府", "県"} {
		if name, ok := strings.CutSuffix(p.NameJp, suffix); ok {
			return name
		}
	}
	return p.NameJp
}

func writeLegend(sb *strings.Builder, opts *Options, top int) {
	entries := []struct {
		status model.Status
		label  string
	}{
		{model.StatusUnvisited, "未訪問"},
		{model.StatusPartial, "一部訪問"},
		{model.StatusCompleted, "訪問済み"},
	}
	swatch := opts.FontSize
	x := opts.CellPadding
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf(`  <rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`+"\n",
			x, top+4, swatch, swatch, opts.Colors.fill(e.status)))
		sb.WriteString(fmt.Sprintf(`  <text x="%d" y="%d" class="label">%s</text>`+"\n",
			x+swatch+4, top+4+swatch-1, e.label))
		x += swatch + 4 + 5*opts.FontSize
	}
}
