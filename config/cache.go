package config

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

var (
	// Cache instances for different response types
	ResultCache *cache.Cache
	ReportCache *cache.Cache
)

const (
	// Cache durations
	resultCacheDuration = 5 * time.Minute

	// Cleanup intervals
	resultCleanupInterval = 15 * time.Minute
	reportCleanupInterval = 30 * time.Minute
)

func InitCache() {
	// Separate caches so a report flush never evicts table results
	ResultCache = cache.New(resultCacheDuration, resultCleanupInterval)

	reportCacheDuration := time.Duration(GetReportCacheMinutes()) * time.Minute
	ReportCache = cache.New(reportCacheDuration, reportCleanupInterval)
}

func ClearAllCaches() {
	ResultCache.Flush()
	ReportCache.Flush()
}

func GetCacheKey(prefix string, params ...interface{}) string {
	key := prefix
	for _, param := range params {
		key += ":" + fmt.Sprintf("%v", param)
	}
	return key
}
