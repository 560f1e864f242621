package debugger

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// tracerAttached reads the TracerPid of this process; a non zero pid is the debugger.
func tracerAttached() bool {
	f, err := os.Open("/proc/self/status")
	if err != nil {
		return false
	}
	defer f.Close()

	return parseTracerPid(f)
}

func parseTracerPid(r io.Reader) bool {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "TracerPid:") {
			continue
		}
		pid := strings.TrimSpace(strings.TrimPrefix(line, "TracerPid:"))
		return pid != "" && pid != "0"
	}
	return false
}
