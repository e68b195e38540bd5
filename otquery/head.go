package otquery

import (
	"time"

	"github.com/rhamzthev/rich-text/ot"
	"golang.org/x/image/font/sfnt"
)

// HeadTableInfo is a typed query view over table 'head'.
type HeadTableInfo struct {
	MajorVersion     uint16
	MinorVersion     uint16
	FontRevision     uint32 // 16.16 fixed point
	MagicNumber      uint32
	Flags            uint16
	UnitsPerEm       sfnt.Units
	Created          time.Time
	Modified         time.Time
	BBox             BoundingBox // union of all glyph bounding boxes
	MacStyle         uint16
	LowestRecPPEM    uint16
	IndexToLocFormat int16
	GlyphDataFormat  int16
}

// headMagicNumber is the value of field magicNumber of every valid 'head' table.
const headMagicNumber = 0x5f0f3cf5

const headTableSize = 54

// Dates in 'head' count seconds since 12:00 midnight, January 1, 1904 UTC.
var longDateTimeEpoch = time.Date(1904, time.January, 1, 0, 0, 0, 0, time.UTC)

func longDateTime(b []byte) time.Time {
	return longDateTimeEpoch.Add(time.Duration(i64(b)) * time.Second)
}

// HeadInfo decodes table 'head'.
// Returns (info, true) on success, or (zero, false) if the table is missing or too short.
func HeadInfo(otf *ot.Font) (HeadTableInfo, bool) {
	var info HeadTableInfo
	if otf == nil {
		return info, false
	}
	b := otf.TableBytes(ot.TagHead)
	if len(b) < headTableSize {
		tracer().Infof("font has no valid table 'head'")
		return info, false
	}
	info.MajorVersion = u16(b)
	info.MinorVersion = u16(b[2:])
	info.FontRevision = u32(b[4:])
	// checksumAdjustment at 8 is skipped
	info.MagicNumber = u32(b[12:])
	if info.MagicNumber != headMagicNumber {
		tracer().Infof("table 'head' has unexpected magic number %#x", info.MagicNumber)
	}
	info.Flags = u16(b[16:])
	info.UnitsPerEm = sfnt.Units(u16(b[18:]))
	info.Created = longDateTime(b[20:])
	info.Modified = longDateTime(b[28:])
	info.BBox = BoundingBox{
		MinX: sfnt.Units(i16(b[36:])),
		MinY: sfnt.Units(i16(b[38:])),
		MaxX: sfnt.Units(i16(b[40:])),
		MaxY: sfnt.Units(i16(b[42:])),
	}
	info.MacStyle = u16(b[44:])
	info.LowestRecPPEM = u16(b[46:])
	// fontDirectionHint at 48 is deprecated
	info.IndexToLocFormat = i16(b[50:])
	info.GlyphDataFormat = i16(b[52:])
	return info, true
}
