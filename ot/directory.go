package ot

import "fmt"

// Layout of the font header ("offset table") and of table records.
// https://learn.microsoft.com/en-us/typography/opentype/spec/otff#table-directory
const (
	headerTableCountOffset = 4  // sfntVersion (uint32)
	headerSize             = 12 // sfntVersion, numTables, searchRange, entrySelector, rangeShift
	tableRecordSize        = 16 // tag, checksum, offset, length
	recordChecksumOffset   = 4
	recordOffsetOffset     = 8
	recordLengthOffset     = 12
)

// TableRecord is an entry of the table directory. Checksum and length are
// recorded as found, without validation.
type TableRecord struct {
	Tag      Tag
	Checksum uint32
	Offset   uint32 // absolute byte offset of the table within the font binary
	Length   uint32
}

// TableDirectory maps table tags to table records.
type TableDirectory map[Tag]TableRecord

// Offset returns the byte offset of the table for a tag, and false if the
// directory does not contain the tag.
func (dir TableDirectory) Offset(tag Tag) (int, bool) {
	rec, ok := dir[tag]
	if !ok {
		return 0, false
	}
	return int(rec.Offset), true
}

// Tags returns the tags of the directory in ascending order.
func (dir TableDirectory) Tags() []Tag {
	tags := make([]Tag, 0, len(dir))
	for tag := range dir {
		tags = append(tags, tag)
	}
	sortTags(tags)
	return tags
}

// ParseTableDirectory reads the table count from the font header and the table
// records following it. A tag occuring more than once is recorded with its last
// record.
func ParseTableDirectory(font []byte) (TableDirectory, error) {
	b := binarySegm(font)
	n, err := b.u16(headerTableCountOffset)
	if err != nil {
		return nil, fontError(0, "Header", SeverityCritical, headerTableCountOffset, err)
	}
	tracer().Debugf("font has %d tables", n)
	dir := make(TableDirectory, n)
	for i := 0; i < int(n); i++ {
		at := headerSize + i*tableRecordSize
		rec, err := b.view(at, tableRecordSize)
		if err != nil {
			return nil, fontError(0, "TableRecords", SeverityCritical, at,
				fmt.Errorf("table record %d: %w", i, err))
		}
		tag := MakeTag(rec)
		dir[tag] = TableRecord{
			Tag:      tag,
			Checksum: u32(rec[recordChecksumOffset:]),
			Offset:   u32(rec[recordOffsetOffset:]),
			Length:   u32(rec[recordLengthOffset:]),
		}
	}
	return dir, nil
}
