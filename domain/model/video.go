package model

// Media type tags carried on VideoInfo. Default is video.
const (
	MediaTypeVideo = "video"
	MediaTypeAudio = "audio"
	MediaTypeImage = "image"
)

// VideoFormat is a single rendition of a media asset. Quality is a positive
// numeric rank where higher means better.
type VideoFormat struct {
	Quality       int    `json:"quality"`
	QualityNote   string `json:"quality_note"`
	VideoURL      string `json:"video_url"`
	VideoExt      string `json:"video_ext"`
	VideoSize     int64  `json:"video_size,omitempty"`
	AudioURL      string `json:"audio_url,omitempty"`
	AudioExt      string `json:"audio_ext,omitempty"`
	AudioSize     int64  `json:"audio_size,omitempty"`
	Separate      int    `json:"separate"`
	VideoProxyURL string `json:"video_proxy_url,omitempty"`
	AudioProxyURL string `json:"audio_proxy_url,omitempty"`
}

// Author identifies the creator of a media asset.
type Author struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
	URL    string `json:"url,omitempty"`
}

// DownloadURLs holds the named download links selected by the normalizer.
// Standard is always populated on a successful parse.
type DownloadURLs struct {
	Standard string `json:"standard"`
	HD       string `json:"hd,omitempty"`
	Audio    string `json:"audio,omitempty"`
}

// Stats holds optional engagement counters.
type Stats struct {
	Views    int64 `json:"views,omitempty"`
	Likes    int64 `json:"likes,omitempty"`
	Comments int64 `json:"comments,omitempty"`
}

// VideoInfo is the canonical normalized parse result.
type VideoInfo struct {
	Platform      string        `json:"platform"`
	Title         string        `json:"title"`
	Author        Author        `json:"author"`
	Thumbnail     string        `json:"thumbnail"`
	Duration      int           `json:"duration,omitempty"`
	DownloadURLs  DownloadURLs  `json:"downloadUrls"`
	Formats       []VideoFormat `json:"formats,omitempty"`
	WatermarkFree bool          `json:"watermarkFree"`
	Stats         *Stats        `json:"stats,omitempty"`
	Description   string        `json:"description,omitempty"`
	CreatedAt     string        `json:"createdAt,omitempty"`
	MediaType     string        `json:"mediaType,omitempty"`
}
