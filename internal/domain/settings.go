package domain

// AppSettings is the singleton platform configuration,
// fetched and updated wholesale.
type AppSettings struct {
	YoutubeChannelURL    string `json:"youtubeChannelUrl"`
	YoutubeLiveStreamURL string `json:"youtubeLiveStreamUrl"`
}
