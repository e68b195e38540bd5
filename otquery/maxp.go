package otquery

import (
	"github.com/rhamzthev/rich-text/ot"
)

// MaxPTableInfo is a typed query view over table 'maxp'.
// For version 1.0 tables, the TrueType profile fields are decoded if present.
type MaxPTableInfo struct {
	VersionFixed uint32
	NumGlyphs    uint16

	// TrueType profile fields (version 1.0 only)
	HasExtendedProfile    bool
	MaxPoints             uint16
	MaxContours           uint16
	MaxCompositePoints    uint16
	MaxCompositeContours  uint16
	MaxZones              uint16
	MaxTwilightPoints     uint16
	MaxStorage            uint16
	MaxFunctionDefs       uint16
	MaxInstructionDefs    uint16
	MaxStackElements      uint16
	MaxSizeOfInstructions uint16
	MaxComponentElements  uint16
	MaxComponentDepth     uint16
}

const (
	maxpVersion05 = 0x00005000
	maxpVersion10 = 0x00010000
	maxpMinSize   = 6
	maxpV10Size   = 32
)

// MaxPInfo decodes table 'maxp'.
// Returns (info, true) on success, or (zero, false) if the table is missing or too short.
func MaxPInfo(otf *ot.Font) (MaxPTableInfo, bool) {
	var info MaxPTableInfo
	if otf == nil {
		return info, false
	}
	b := otf.TableBytes(ot.TagMaxp)
	if len(b) < maxpMinSize {
		tracer().Infof("font has no valid table 'maxp'")
		return info, false
	}
	info.VersionFixed = u32(b)
	info.NumGlyphs = u16(b[4:])
	if info.VersionFixed != maxpVersion10 || len(b) < maxpV10Size {
		if info.VersionFixed != maxpVersion05 {
			tracer().Debugf("table 'maxp' version %#x without TrueType profile", info.VersionFixed)
		}
		return info, true
	}
	info.HasExtendedProfile = true
	profile := []*uint16{
		&info.MaxPoints, &info.MaxContours,
		&info.MaxCompositePoints, &info.MaxCompositeContours,
		&info.MaxZones, &info.MaxTwilightPoints, &info.MaxStorage,
		&info.MaxFunctionDefs, &info.MaxInstructionDefs, &info.MaxStackElements,
		&info.MaxSizeOfInstructions, &info.MaxComponentElements, &info.MaxComponentDepth,
	}
	for i, field := range profile {
		*field = u16(b[maxpMinSize+2*i:])
	}
	return info, true
}
