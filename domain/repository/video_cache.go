package repository

import "vidlink/domain/model"

// IKeyValueStore is the minimal string storage capability the video cache is
// built on. Implementations must tolerate concurrent use from request
// handlers. Get reports absence with ok=false; Keys returns every live key.
type IKeyValueStore interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string)
	Keys() []string
}

// IVideoCache memoizes normalized parse results per source URL. All
// operations degrade to no-ops when the backing store is unavailable; cache
// failures are never surfaced to callers.
type IVideoCache interface {
	Put(url string, info *model.VideoInfo)
	Get(url string) (*model.VideoInfo, bool)
	ClearOne(url string)
	ClearAll()
	CleanExpired()
	Stats() (totalItems, totalSize int, oldest, newest *int64)
}
