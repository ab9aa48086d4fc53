// Package version carries the product build metadata used to identify
// DriveScout to the Graph API.
package version

import "fmt"

// ProductName is the name sent in the User-Agent header.
const ProductName = "DriveScout"

// Build metadata. The four-part scheme matches the host product's
// versioning, so all four components are kept even when zero.
var (
	Major    = 1
	Minor    = 4
	Build    = 0
	Revision = 2
)

// UserAgent formats the product identification string sent with every
// Graph request, e.g. "DriveScout v1.4.0.2".
func UserAgent() string {
	return fmt.Sprintf("%s v%d.%d.%d.%d", ProductName, Major, Minor, Build, Revision)
}
