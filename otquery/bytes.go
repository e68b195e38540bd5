package otquery

func u16(b []byte) uint16 {
	return uint16(b[0])<<8 | uint16(b[1])<<0
}

func i16(b []byte) int16 {
	return int16(b[0])<<8 | int16(b[1])<<0
}

func u32(b []byte) uint32 {
	return uint32(u16(b))<<16 | uint32(u16(b[2:]))
}

func i64(b []byte) int64 {
	return int64(u32(b))<<32 | int64(u32(b[4:]))
}
