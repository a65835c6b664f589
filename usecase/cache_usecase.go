package usecase

import (
	"vidlink/domain/dto"
	"vidlink/domain/repository"
)

// ICacheUseCase exposes the cache admin operations
type ICacheUseCase interface {
	Stats() dto.CacheStats
	ClearAll()
	ClearOne(url string)
	CleanExpired()
}

type CacheUseCase struct {
	cache repository.IVideoCache
}

func NewCacheUseCase(cache repository.IVideoCache) ICacheUseCase {
	return &CacheUseCase{cache: cache}
}

func (u *CacheUseCase) Stats() dto.CacheStats {
	totalItems, totalSize, oldest, newest := u.cache.Stats()
	return dto.CacheStats{
		TotalItems: totalItems,
		TotalSize:  totalSize,
		OldestItem: oldest,
		NewestItem: newest,
	}
}

func (u *CacheUseCase) ClearAll() {
	u.cache.ClearAll()
}

func (u *CacheUseCase) ClearOne(url string) {
	u.cache.ClearOne(url)
}

func (u *CacheUseCase) CleanExpired() {
	u.cache.CleanExpired()
}
