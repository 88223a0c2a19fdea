package scanline

// SpanBin is a run of fully covered pixels, used for aliased rendering.
type SpanBin struct {
	X   int
	Len int
}

// ScanlineBin is the binary counterpart of ScanlineU8: every added cell or
// span is treated as fully covered, coverage values are discarded.
type ScanlineBin struct {
	lastX int
	y     int
	spans []SpanBin
}

func NewScanlineBin() *ScanlineBin {
	return &ScanlineBin{lastX: lastXSentinel}
}

func (sl *ScanlineBin) Reset(minX, maxX int) {
	sl.lastX = lastXSentinel
	sl.spans = sl.spans[:0]
}

func (sl *ScanlineBin) ResetSpans() {
	sl.lastX = lastXSentinel
	sl.spans = sl.spans[:0]
}

func (sl *ScanlineBin) AddCell(x int, _ uint8) {
	if x == sl.lastX+1 && len(sl.spans) > 0 {
		sl.spans[len(sl.spans)-1].Len++
	} else {
		sl.spans = append(sl.spans, SpanBin{X: x, Len: 1})
	}
	sl.lastX = x
}

func (sl *ScanlineBin) AddSpan(x, length int, _ uint8) {
	if x == sl.lastX+1 && len(sl.spans) > 0 {
		sl.spans[len(sl.spans)-1].Len += length
	} else {
		sl.spans = append(sl.spans, SpanBin{X: x, Len: length})
	}
	sl.lastX = x + length - 1
}

func (sl *ScanlineBin) AddCells(x, length int, _ []uint8) {
	sl.AddSpan(x, length, 0)
}

func (sl *ScanlineBin) Finalize(y int) { sl.y = y }

func (sl *ScanlineBin) Y() int           { return sl.y }
func (sl *ScanlineBin) NumSpans() int    { return len(sl.spans) }
func (sl *ScanlineBin) Spans() []SpanBin { return sl.spans }
