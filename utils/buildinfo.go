package utils

import "fmt"

var BuildVersion string
var BuildRelease string
var Buildtime string

// GetDashboardVersion returns the version string shown in the page footer.
func GetDashboardVersion() string {
	if BuildRelease == "" {
		return fmt.Sprintf("git-%v", BuildVersion)
	}
	return fmt.Sprintf("%v (git-%v)", BuildRelease, BuildVersion)
}
