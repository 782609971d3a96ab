package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/ticketlot/admin-gateway/internal/domain"
)

type SettingsRequest struct {
	YoutubeChannelURL    string `json:"youtubeChannelUrl"`
	YoutubeLiveStreamURL string `json:"youtubeLiveStreamUrl"`
}

func (req *SettingsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.YoutubeChannelURL, is.URL),
		validation.Field(&req.YoutubeLiveStreamURL, is.URL),
	)
}

func (req *SettingsRequest) ToSettings() domain.AppSettings {
	return domain.AppSettings{
		YoutubeChannelURL:    req.YoutubeChannelURL,
		YoutubeLiveStreamURL: req.YoutubeLiveStreamURL,
	}
}
