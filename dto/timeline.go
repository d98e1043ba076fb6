package dto

import "time"

type TimelineEntryRequest struct {
	Date     time.Time `json:"date" validate:"required"`
	Age      int       `json:"age" validate:"gte=0"`
	TitleAr  string    `json:"titleAr" validate:"notblank"`
	TitleEn  string    `json:"titleEn" validate:"notblank"`
	StoryAr  string    `json:"storyAr"`
	StoryEn  string    `json:"storyEn"`
	ImageURL *string   `json:"imageUrl"`
	Order    int       `json:"order"`
}

func (r TimelineEntryRequest) Validate() error {
	return validate.Struct(r)
}
