package schema

import "bytes"

// Support flag bits recorded in the header's supportflags field (atop.h).
const (
	ACCTActive    = 0x00000001
	IOStat        = 0x00000004
	NetAtop       = 0x00000010
	NetAtopD      = 0x00000020
	ContainerStat = 0x00000040
	GPUStat       = 0x00000080
	CGroupV2      = 0x00000100
	NetAtopBPF    = 0x00001000
)

// UTSName mirrors struct utsname (sys/utsname.h): six fixed 65-byte fields,
// 64 characters plus a NUL terminator each.
type UTSName struct {
	Sysname  [65]byte `atop:"sysname"`
	Nodename [65]byte `atop:"nodename"`
	Release  [65]byte `atop:"release"`
	Version  [65]byte `atop:"version"`
	Machine  [65]byte `atop:"machine"`
	Domain   [65]byte `atop:"domain"`
}

// CString interprets a fixed C char array as a string, stopping at the first
// NUL. Bytes that do not form valid UTF-8 are preserved as-is; projection
// applies its own lenient decoding on top.
func CString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}

	return string(b)
}
