package sheet

import "github.com/xuri/excelize/v2"

type styles struct {
	header, headerFilled     int
	date, time               int
	duration, durationFilled int
	sumLabel, sumValue       int
}

const (
	fmtDate     = "DD.MM.YYYY"
	fmtTime     = "HH:MM"
	fmtDuration = "[h]:mm:ss"
)

func newStyles(f *excelize.File, fill string) (styles, error) {
	var st styles
	bold := &excelize.Font{Bold: true}
	filled := excelize.Fill{Type: "pattern", Color: []string{fill}, Pattern: 1}

	defs := []struct {
		dst   *int
		style *excelize.Style
	}{
		{&st.header, &excelize.Style{Font: bold}},
		{&st.headerFilled, &excelize.Style{Font: bold, Fill: filled}},
		{&st.date, &excelize.Style{CustomNumFmt: strPtr(fmtDate)}},
		{&st.time, &excelize.Style{CustomNumFmt: strPtr(fmtTime)}},
		{&st.duration, &excelize.Style{CustomNumFmt: strPtr(fmtDuration)}},
		{&st.durationFilled, &excelize.Style{CustomNumFmt: strPtr(fmtDuration), Fill: filled}},
		{&st.sumLabel, &excelize.Style{Font: bold, Border: borders("top", "left", "bottom")}},
		{&st.sumValue, &excelize.Style{CustomNumFmt: strPtr(fmtDuration), Fill: filled, Border: borders("top", "right", "bottom")}},
	}
	for _, d := range defs {
		id, err := f.NewStyle(d.style)
		if err != nil {
			return styles{}, err
		}
		*d.dst = id
	}
	return st, nil
}

// borders returns thin black lines on the given sides.
func borders(sides ...string) []excelize.Border {
	bs := make([]excelize.Border, 0, len(sides))
	for _, side := range sides {
		bs = append(bs, excelize.Border{Type: side, Color: "000000", Style: 1})
	}
	return bs
}

func strPtr(s string) *string {
	return &s
}
