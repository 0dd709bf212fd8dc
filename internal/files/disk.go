package files

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/disk"

	"github.com/litigio-labs/consulta-cli/internal/logger"
)

// CheckDiskSpace verifies the volume holding path has at least
// minFreeMB megabytes free. When usage cannot be determined the check
// passes: an unreadable statfs must not block a run that would
// otherwise succeed.
func CheckDiskSpace(path string, minFreeMB uint64) error {
	usage, err := disk.Usage(path)
	if err != nil {
		logger.Warn("could not check disk space for %s: %v", path, err)
		return nil
	}

	freeMB := usage.Free / (1024 * 1024)
	if freeMB < minFreeMB {
		return fmt.Errorf("insufficient disk space on %s: %d MB free, %d MB required",
			path, freeMB, minFreeMB)
	}

	logger.Debug("disk space ok for %s: %d MB free", path, freeMB)
	return nil
}
