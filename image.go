package llmkit

import (
	"github.com/kbukum/llmkit/httpclient"
	"github.com/kbukum/llmkit/validation"
)

// ImageModel identifies an image generation model.
type ImageModel string

const ImageModelDallE3 ImageModel = "dall-e-3"

// ImageQuality selects the rendering quality tier.
type ImageQuality string

const (
	ImageQualityStandard ImageQuality = "standard"
	ImageQualityHD       ImageQuality = "hd"
)

// ImageResponseFormat selects how generated images are returned.
type ImageResponseFormat string

const (
	ImageFormatURL     ImageResponseFormat = "url"
	ImageFormatB64JSON ImageResponseFormat = "b64_json"
)

// ImageSize selects the output dimensions.
type ImageSize string

const (
	ImageSize1024x1024 ImageSize = "1024x1024"
	ImageSize1792x1024 ImageSize = "1792x1024"
	ImageSize1024x1792 ImageSize = "1024x1792"
)

// ImageStyle selects the rendering style.
type ImageStyle string

const (
	ImageStyleVivid   ImageStyle = "vivid"
	ImageStyleNatural ImageStyle = "natural"
)

// CreateImageRequest is the payload for the image generation
// operation. Unset optional fields are omitted so server defaults
// apply.
type CreateImageRequest struct {
	Prompt         string              `json:"prompt" validate:"required"`
	Model          ImageModel          `json:"model" validate:"required,oneof=dall-e-3"`
	N              *int                `json:"n,omitempty" validate:"omitempty,gte=1,lte=10"`
	Quality        ImageQuality        `json:"quality,omitempty" validate:"omitempty,oneof=standard hd"`
	ResponseFormat ImageResponseFormat `json:"response_format,omitempty" validate:"omitempty,oneof=url b64_json"`
	Size           ImageSize           `json:"size,omitempty" validate:"omitempty,oneof=1024x1024 1792x1024 1024x1792"`
	Style          ImageStyle          `json:"style,omitempty" validate:"omitempty,oneof=vivid natural"`
	User           string              `json:"user,omitempty"`
}

// NewCreateImageRequest builds an image request for the default model.
func NewCreateImageRequest(prompt string) *CreateImageRequest {
	return &CreateImageRequest{
		Prompt: prompt,
		Model:  ImageModelDallE3,
	}
}

// Validate reports missing or out-of-range fields.
func (r *CreateImageRequest) Validate() error {
	return validation.Validate(r)
}

func (r *CreateImageRequest) intoRequest() (httpclient.Request, error) {
	return httpclient.Request{
		Method: "POST",
		Path:   "/images/generations",
		Body:   r,
	}, nil
}

// ImageData is one generated image, delivered as a URL or inline
// base64 payload depending on the requested response format.
type ImageData struct {
	URL           string `json:"url,omitempty"`
	B64JSON       string `json:"b64_json,omitempty"`
	RevisedPrompt string `json:"revised_prompt,omitempty"`
}

// CreateImageResponse is the decoded image generation payload.
type CreateImageResponse struct {
	Created int64       `json:"created"`
	Data    []ImageData `json:"data"`
}
