package organization_case

import (
	"fmt"
	"time"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20

	organizationCacheTTL = 5 * time.Minute
	statsCacheTTL        = time.Minute

	statsCacheKey = "dashboard:stats"
)

func organizationCacheKey(orgID string) string {
	return fmt.Sprintf("organization:%s", orgID)
}
