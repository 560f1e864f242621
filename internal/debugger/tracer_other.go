//go:build !linux

package debugger

// tracerAttached is not implemented outside of linux.
func tracerAttached() bool {
	return false
}
