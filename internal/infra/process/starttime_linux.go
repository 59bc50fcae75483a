package process

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// procStartTicks returns the kernel start time of pid in clock ticks since
// boot, read from field 22 of /proc/<pid>/stat. The value is compared for
// equality only, so no tick-to-wallclock conversion is needed.
func procStartTicks(pid int) (uint64, error) {
	data, err := os.ReadFile(fmt.Sprintf("/proc/%d/stat", pid))
	if err != nil {
		return 0, err
	}
	// The comm field (2) may contain spaces and parentheses; fields are
	// only well-formed after the last ')'.
	idx := bytes.LastIndexByte(data, ')')
	if idx < 0 || idx+2 > len(data) {
		return 0, fmt.Errorf("malformed stat for pid %d", pid)
	}
	fields := strings.Fields(string(data[idx+1:]))
	// fields[0] is field 3 (state); starttime is field 22.
	const statStartTime = 22 - 3
	if len(fields) <= statStartTime {
		return 0, fmt.Errorf("malformed stat for pid %d", pid)
	}
	return strconv.ParseUint(fields[statStartTime], 10, 64)
}
