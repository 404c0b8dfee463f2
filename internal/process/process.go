package process

import (
	"errors"
	"fmt"

	"github.com/shirou/gopsutil/v3/process"
)

// Alive reports whether pid refers to a running process. Non-positive pids are never alive.
func Alive(pid int) (bool, error) {
	if pid <= 0 {
		return false, nil
	}

	p, err := process.NewProcess(int32(pid))
	if err != nil {
		if errors.Is(err, process.ErrorProcessNotRunning) {
			return false, nil
		}
		return false, fmt.Errorf("failed to find process %d: %w", pid, err)
	}

	running, err := p.IsRunning()
	if err != nil {
		return false, fmt.Errorf("failed to check process %d: %w", pid, err)
	}
	return running, nil
}
