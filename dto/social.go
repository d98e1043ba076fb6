package dto

type SocialLinkRequest struct {
	Platform string  `json:"platform" validate:"notblank,max=60"`
	URL      string  `json:"url" validate:"notblank,url"`
	LabelAr  string  `json:"labelAr"`
	LabelEn  string  `json:"labelEn"`
	Icon     *string `json:"icon"`
	Order    int     `json:"order"`
	IsActive bool    `json:"isActive"`
}

func (r SocialLinkRequest) Validate() error {
	return validate.Struct(r)
}
