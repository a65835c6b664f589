package parseapi

import (
	"encoding/json"
	"sort"
	"strconv"

	"vidlink/domain/model"
)

const fallbackAudioThumbnail = "https://images.unsplash.com/photo-1511379938547-c1f69419868d?w=800"

// Media is one entry of the upstream medias array.
type Media struct {
	MediaType   string              `json:"media_type"`
	ResourceURL string              `json:"resource_url"`
	PreviewURL  string              `json:"preview_url"`
	Formats     []model.VideoFormat `json:"formats"`
}

// Payload is the upstream response: a typed medias array plus loosely typed
// top-level metadata whose field names vary per platform and API version.
type Payload struct {
	Medias []Media
	Fields map[string]interface{}
}

func (p *Payload) UnmarshalJSON(data []byte) error {
	var typed struct {
		Medias []Media `json:"medias"`
	}
	if err := json.Unmarshal(data, &typed); err != nil {
		return err
	}
	fields := map[string]interface{}{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	delete(fields, "medias")
	p.Medias = typed.Medias
	p.Fields = fields
	return nil
}

// stringField evaluates an ordered list of accessor keys against the loose
// metadata; the first non-empty value wins. Numeric values are stringified so
// fields like createTime survive either representation.
func stringField(fields map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		switch v := fields[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			if v != 0 {
				return strconv.FormatInt(int64(v), 10)
			}
		}
	}
	return ""
}

func intField(fields map[string]interface{}, keys ...string) int64 {
	for _, key := range keys {
		switch v := fields[key].(type) {
		case float64:
			if v != 0 {
				return int64(v)
			}
		case string:
			if n, err := strconv.ParseInt(v, 10, 64); err == nil && n != 0 {
				return n
			}
		}
	}
	return 0
}

// Normalize adapts an upstream payload into the canonical VideoInfo. The
// platform label is attached as-is. Missing or malformed fields degrade to
// empty/zero defaults; Normalize never fails.
func Normalize(payload *Payload, platform string) *model.VideoInfo {
	fields := payload.Fields
	if fields == nil {
		fields = map[string]interface{}{}
	}
	if platform == "" {
		platform = "unknown"
	}

	// First entry per media_type wins; later duplicates are ignored.
	var video, audio, image *Media
	for i := range payload.Medias {
		m := &payload.Medias[i]
		switch m.MediaType {
		case model.MediaTypeVideo:
			if video == nil {
				video = m
			}
		case model.MediaTypeAudio:
			if audio == nil {
				audio = m
			}
		case model.MediaTypeImage:
			if image == nil {
				image = m
			}
		}
	}

	info := &model.VideoInfo{
		Platform: platform,
		Author: model.Author{
			Name:   firstNonEmpty(stringField(fields, "author", "nickname", "authorName"), "Unknown Author"),
			Avatar: stringField(fields, "avatar", "authorAvatar"),
			URL:    stringField(fields, "authorUrl"),
		},
		Duration:      int(intField(fields, "duration")),
		WatermarkFree: true,
		Stats: &model.Stats{
			Views:    intField(fields, "playCount", "views"),
			Likes:    intField(fields, "diggCount", "likes"),
			Comments: intField(fields, "commentCount", "comments"),
		},
		Description: stringField(fields, "text", "description", "desc"),
		CreatedAt:   stringField(fields, "createTime", "createdAt"),
	}

	switch {
	case audio != nil && video == nil && image == nil:
		info.MediaType = model.MediaTypeAudio
		info.Title = firstNonEmpty(stringField(fields, "text", "title"), "Audio")
		info.Thumbnail = firstNonEmpty(stringField(fields, "cover", "preview_url"), fallbackAudioThumbnail)
		info.DownloadURLs = model.DownloadURLs{
			Standard: audio.ResourceURL,
			Audio:    audio.ResourceURL,
		}

	case image != nil && video == nil:
		info.MediaType = model.MediaTypeImage
		info.Title = firstNonEmpty(stringField(fields, "text"), "Image")
		info.Thumbnail = image.ResourceURL
		info.Duration = 0
		info.DownloadURLs = model.DownloadURLs{
			Standard: image.ResourceURL,
			HD:       image.ResourceURL,
		}

	default:
		info.MediaType = model.MediaTypeVideo
		info.Title = firstNonEmpty(stringField(fields, "text", "title", "desc"), "Unknown Title")
		standard, hd := selectDownloadURLs(video)
		info.DownloadURLs = model.DownloadURLs{
			Standard: standard,
			HD:       hd,
		}
		if audio != nil {
			info.DownloadURLs.Audio = audio.ResourceURL
		}
		if video != nil {
			info.Thumbnail = firstNonEmpty(video.PreviewURL, stringField(fields, "cover", "thumbnail"))
			// Pass the formats list through in upstream order for the
			// resolution picker.
			info.Formats = video.Formats
		} else {
			info.Thumbnail = stringField(fields, "cover", "thumbnail")
		}
	}

	return info
}

// selectDownloadURLs picks the standard and HD renditions from a video
// entry. HD is the highest quality. Standard prefers an exact 360 or 480
// quality; failing that the middle of the quality-descending list when more
// than one format exists, else the HD entry. With no usable formats both fall
// back to the entry's resource URL.
func selectDownloadURLs(video *Media) (standard, hd string) {
	if video != nil && len(video.Formats) > 0 {
		sorted := make([]model.VideoFormat, len(video.Formats))
		copy(sorted, video.Formats)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Quality > sorted[j].Quality
		})

		hd = sorted[0].VideoURL

		var standardFormat *model.VideoFormat
		for i := range sorted {
			if sorted[i].Quality == 360 || sorted[i].Quality == 480 {
				standardFormat = &sorted[i]
				break
			}
		}
		if standardFormat == nil && len(sorted) > 1 {
			standardFormat = &sorted[len(sorted)/2]
		}
		if standardFormat == nil {
			standardFormat = &sorted[0]
		}
		standard = standardFormat.VideoURL
	}

	if standard == "" && hd == "" && video != nil {
		standard = video.ResourceURL
		hd = video.ResourceURL
	}
	if hd == "" {
		hd = standard
	}
	return standard, hd
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
