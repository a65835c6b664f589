package model

import "regexp"

// PlatformConfig holds the static configuration for a supported platform.
// Records are defined once at startup and never mutated.
type PlatformConfig struct {
	Name  string         `json:"name"`
	Icon  string         `json:"icon"`
	Logo  string         `json:"logo,omitempty"`
	Regex *regexp.Regexp `json:"-"`
	Color string         `json:"color"`
}

// PlatformEntry pairs a platform key with its configuration for ordered listings.
type PlatformEntry struct {
	Key    string         `json:"key"`
	Config PlatformConfig `json:"config"`
}

// supportedPlatforms is scanned in declaration order; when a URL matches more
// than one pattern the first entry wins, so order is part of the contract.
var supportedPlatforms = []PlatformEntry{
	{Key: "douyin", Config: PlatformConfig{
		Name:  "Douyin",
		Icon:  "🎶",
		Logo:  "/images/douyin.png",
		Regex: regexp.MustCompile(`douyin\.com/video/|v\.douyin\.com/`),
		Color: "#000000",
	}},
	{Key: "tiktok", Config: PlatformConfig{
		Name:  "TikTok",
		Icon:  "🎵",
		Logo:  "/images/tiktok.png",
		Regex: regexp.MustCompile(`tiktok\.com/@.*/video/|vm\.tiktok\.com/`),
		Color: "#000000",
	}},
	{Key: "youtube", Config: PlatformConfig{
		Name:  "YouTube",
		Icon:  "▶️",
		Logo:  "/images/youtube.png",
		Regex: regexp.MustCompile(`youtube\.com/watch|youtu\.be/|youtube\.com/shorts/`),
		Color: "#FF0000",
	}},
	{Key: "facebook", Config: PlatformConfig{
		Name:  "Facebook",
		Icon:  "👤",
		Logo:  "/images/facebook.png",
		Regex: regexp.MustCompile(`facebook\.com/.*/videos/|fb\.watch/`),
		Color: "#1877F2",
	}},
	{Key: "instagram", Config: PlatformConfig{
		Name:  "Instagram",
		Icon:  "📷",
		Regex: regexp.MustCompile(`instagram\.com/(p|reel|tv)/`),
		Color: "#E4405F",
	}},
	{Key: "twitter", Config: PlatformConfig{
		Name:  "Twitter/X",
		Icon:  "🐦",
		Logo:  "/images/twitter-x.png",
		Regex: regexp.MustCompile(`twitter\.com/.*/status/|x\.com/.*/status/`),
		Color: "#000000",
	}},
	{Key: "bilibili", Config: PlatformConfig{
		Name:  "Bilibili",
		Icon:  "📺",
		Logo:  "/images/bilibili.png",
		Regex: regexp.MustCompile(`bilibili\.com/video/|b23\.tv/`),
		Color: "#00A1D6",
	}},
	{Key: "pinterest", Config: PlatformConfig{
		Name:  "Pinterest",
		Icon:  "📌",
		Logo:  "/images/pinterest.png",
		Regex: regexp.MustCompile(`pinterest\.com/pin/|pin\.it/`),
		Color: "#E60023",
	}},
	{Key: "reddit", Config: PlatformConfig{
		Name:  "Reddit",
		Icon:  "🔴",
		Logo:  "/images/reddit.png",
		Regex: regexp.MustCompile(`reddit\.com/r/.*/comments/`),
		Color: "#FF4500",
	}},
	{Key: "threads", Config: PlatformConfig{
		Name:  "Threads",
		Icon:  "🧵",
		Logo:  "/images/threads.png",
		Regex: regexp.MustCompile(`threads\.net/`),
		Color: "#000000",
	}},
	{Key: "suno", Config: PlatformConfig{
		Name:  "Suno",
		Icon:  "🎵",
		Logo:  "/images/suno.png",
		Regex: regexp.MustCompile(`suno\.com/|suno\.ai/`),
		Color: "#FF6B6B",
	}},
	{Key: "kuaishou", Config: PlatformConfig{
		Name:  "Kuaishou",
		Icon:  "🎬",
		Regex: regexp.MustCompile(`kuaishou\.com/short-video/|v\.kuaishou\.com/`),
		Color: "#FF4906",
	}},
}

// DetectPlatform returns the key of the first platform whose pattern matches
// the raw URL string. The URL is matched as-is, without normalization or
// decoding. A miss is a valid outcome, not an error.
func DetectPlatform(url string) (string, bool) {
	for _, entry := range supportedPlatforms {
		if entry.Config.Regex.MatchString(url) {
			return entry.Key, true
		}
	}
	return "", false
}

// GetPlatformConfig returns the configuration for a platform key.
func GetPlatformConfig(key string) (PlatformConfig, bool) {
	for _, entry := range supportedPlatforms {
		if entry.Key == key {
			return entry.Config, true
		}
	}
	return PlatformConfig{}, false
}

// AllPlatforms returns the supported platforms in table order.
func AllPlatforms() []PlatformEntry {
	out := make([]PlatformEntry, len(supportedPlatforms))
	copy(out, supportedPlatforms)
	return out
}
