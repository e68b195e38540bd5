package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/rhamzthev/rich-text/ot"
	"github.com/rhamzthev/rich-text/otquery"
)

func tablesOp(intp *Intp, op *Op) (error, bool) {
	data := [][]string{
		{"Tag", "Offset", "Length", "Checksum"},
	}
	for _, tag := range intp.font.TableTags() {
		rec, _ := intp.font.Table(tag)
		data = append(data, tableRecordRow(rec))
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func tableOp(intp *Intp, op *Op) (error, bool) {
	if op.arg == "" {
		return errors.New("table command needs a tag argument"), false
	}
	rec, ok := intp.font.Table(ot.T(op.arg))
	if !ok {
		return fmt.Errorf("table %q not found in font", op.arg), false
	}
	data := [][]string{
		{"Tag", "Offset", "Length", "Checksum"},
		tableRecordRow(rec),
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func tableRecordRow(rec ot.TableRecord) []string {
	return []string{
		rec.Tag.String(),
		fmt.Sprintf("%d", rec.Offset),
		fmt.Sprintf("%d", rec.Length),
		fmt.Sprintf("%#08x", rec.Checksum),
	}
}

func segmentsOp(intp *Intp, op *Op) (err error, stop bool) {
	var segments []ot.CMapSegment
	if segments, err = intp.font.CMapSegments(); err != nil {
		return
	}
	from, to := 0, len(segments)
	if op.arg != "" {
		i, err := strconv.Atoi(op.arg)
		if err != nil || i < 0 || i >= len(segments) {
			return fmt.Errorf("segment index must be in 0…%d: %v", len(segments)-1, op.arg), false
		}
		from, to = i, i+1
	}
	pterm.Printf("cmap format 4 has %d segments\n", len(segments))
	data := [][]string{
		{"Index", "Start", "End", "Delta", "RangeOffset"},
	}
	for i := from; i < to; i++ {
		seg := segments[i]
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%#U", rune(seg.Start)),
			fmt.Sprintf("%#U", rune(seg.End)),
			fmt.Sprintf("%d", int16(seg.Delta)),
			fmt.Sprintf("%d", seg.IDRangeOffset),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return
}

func headOp(intp *Intp, op *Op) (error, bool) {
	h, ok := otquery.HeadInfo(intp.font)
	if !ok {
		return errors.New("font has no valid table 'head'"), false
	}
	data := [][]string{
		{"Field", "Value"},
		{"Version", fmt.Sprintf("%d.%d", h.MajorVersion, h.MinorVersion)},
		{"FontRevision", fmt.Sprintf("%.3f", float64(h.FontRevision)/65536)},
		{"UnitsPerEm", fmt.Sprintf("%d", h.UnitsPerEm)},
		{"Created", h.Created.Format("2006-01-02 15:04:05")},
		{"Modified", h.Modified.Format("2006-01-02 15:04:05")},
		{"BBox", formatBBox(h.BBox)},
		{"IndexToLocFormat", fmt.Sprintf("%d", h.IndexToLocFormat)},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func maxpOp(intp *Intp, op *Op) (error, bool) {
	m, ok := otquery.MaxPInfo(intp.font)
	if !ok {
		return errors.New("font has no valid table 'maxp'"), false
	}
	data := [][]string{
		{"Field", "Value"},
		{"Version", fmt.Sprintf("%#08x", m.VersionFixed)},
		{"NumGlyphs", fmt.Sprintf("%d", m.NumGlyphs)},
	}
	if m.HasExtendedProfile {
		data = append(data,
			[]string{"MaxPoints", fmt.Sprintf("%d", m.MaxPoints)},
			[]string{"MaxContours", fmt.Sprintf("%d", m.MaxContours)},
			[]string{"MaxCompositePoints", fmt.Sprintf("%d", m.MaxCompositePoints)},
			[]string{"MaxComponentDepth", fmt.Sprintf("%d", m.MaxComponentDepth)},
		)
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}
