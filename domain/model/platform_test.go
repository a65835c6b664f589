package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"vidlink/domain/model"
)

func TestDetectPlatform(t *testing.T) {
	cases := []struct {
		url      string
		platform string
	}{
		{"https://www.douyin.com/video/7281234567890", "douyin"},
		{"https://v.douyin.com/abc123/", "douyin"},
		{"https://www.tiktok.com/@someuser/video/7281234567890", "tiktok"},
		{"https://vm.tiktok.com/ZM8abc/", "tiktok"},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "youtube"},
		{"https://youtu.be/dQw4w9WgXcQ", "youtube"},
		{"https://www.youtube.com/shorts/abc123", "youtube"},
		{"https://www.facebook.com/someone/videos/123456/", "facebook"},
		{"https://fb.watch/abc123/", "facebook"},
		{"https://www.instagram.com/p/Cabc123/", "instagram"},
		{"https://www.instagram.com/reel/Cabc123/", "instagram"},
		{"https://twitter.com/user/status/123456", "twitter"},
		{"https://x.com/user/status/123456", "twitter"},
		{"https://www.bilibili.com/video/BV1abc/", "bilibili"},
		{"https://b23.tv/abc123", "bilibili"},
		{"https://www.pinterest.com/pin/123456/", "pinterest"},
		{"https://pin.it/abc123", "pinterest"},
		{"https://www.reddit.com/r/videos/comments/abc/title/", "reddit"},
		{"https://www.threads.net/@user/post/abc", "threads"},
		{"https://suno.com/song/abc123", "suno"},
		{"https://suno.ai/song/abc123", "suno"},
		{"https://www.kuaishou.com/short-video/abc123", "kuaishou"},
		{"https://v.kuaishou.com/abc123", "kuaishou"},
	}

	for _, tc := range cases {
		platform, ok := model.DetectPlatform(tc.url)
		assert.True(t, ok, tc.url)
		assert.Equal(t, tc.platform, platform, tc.url)
	}
}

func TestDetectPlatformNoMatch(t *testing.T) {
	for _, url := range []string{
		"https://example.com/x",
		"https://vimeo.com/123456",
		"not a url at all",
		"",
	} {
		platform, ok := model.DetectPlatform(url)
		assert.False(t, ok, url)
		assert.Empty(t, platform, url)
	}
}

// Table order is the documented tie-break: the first matching entry wins.
func TestDetectPlatformTableOrder(t *testing.T) {
	expected := []string{
		"douyin", "tiktok", "youtube", "facebook", "instagram", "twitter",
		"bilibili", "pinterest", "reddit", "threads", "suno", "kuaishou",
	}
	entries := model.AllPlatforms()
	assert.Len(t, entries, len(expected))
	for i, entry := range entries {
		assert.Equal(t, expected[i], entry.Key)
	}

	// A URL matching both the threads and suno patterns resolves to threads,
	// the earlier table entry.
	platform, ok := model.DetectPlatform("https://threads.net/suno.com/x")
	assert.True(t, ok)
	assert.Equal(t, "threads", platform)
}

func TestGetPlatformConfig(t *testing.T) {
	config, ok := model.GetPlatformConfig("tiktok")
	assert.True(t, ok)
	assert.Equal(t, "TikTok", config.Name)

	_, ok = model.GetPlatformConfig("myspace")
	assert.False(t, ok)
}
