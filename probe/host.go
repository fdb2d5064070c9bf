package probe

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/host"
)

// HostFacts are the human-facing host details shown by `railyard doctor`.
type HostFacts struct {
	OS            string
	PlatformName  string
	Version       string
	KernelVersion string
	Arch          string
}

// DescribeHost collects host facts for diagnostics. Failures here are not
// fatal anywhere; callers fall back to the bare platform class.
func DescribeHost() (*HostFacts, error) {
	info, err := host.Info()
	if err != nil {
		return nil, err
	}
	return &HostFacts{
		OS:            info.OS,
		PlatformName:  info.Platform,
		Version:       info.PlatformVersion,
		KernelVersion: info.KernelVersion,
		Arch:          info.KernelArch,
	}, nil
}

// String renders the facts as a single display line.
func (f *HostFacts) String() string {
	return fmt.Sprintf("%s %s (%s, kernel %s, %s)", f.PlatformName, f.Version, f.OS, f.KernelVersion, f.Arch)
}
