package llmkit

import (
	"github.com/kbukum/llmkit/httpclient"
	"github.com/kbukum/llmkit/validation"
)

// SpeechModel identifies a text-to-speech model.
type SpeechModel string

const (
	SpeechModelTTS1   SpeechModel = "tts-1"
	SpeechModelTTS1HD SpeechModel = "tts-1-hd"
)

// SpeechVoice selects the synthesis voice.
type SpeechVoice string

const (
	VoiceAlloy   SpeechVoice = "alloy"
	VoiceEcho    SpeechVoice = "echo"
	VoiceFable   SpeechVoice = "fable"
	VoiceOnyx    SpeechVoice = "onyx"
	VoiceNova    SpeechVoice = "nova"
	VoiceShimmer SpeechVoice = "shimmer"
)

// SpeechFormat selects the audio container for synthesized speech.
type SpeechFormat string

const (
	SpeechFormatMP3  SpeechFormat = "mp3"
	SpeechFormatOpus SpeechFormat = "opus"
	SpeechFormatAAC  SpeechFormat = "aac"
	SpeechFormatFLAC SpeechFormat = "flac"
)

// SpeechRequest is the payload for the speech synthesis operation.
// The response is raw audio bytes in the requested format.
type SpeechRequest struct {
	Model          SpeechModel  `json:"model" validate:"required,oneof=tts-1 tts-1-hd"`
	Input          string       `json:"input" validate:"required,max=4096"`
	Voice          SpeechVoice  `json:"voice" validate:"required,oneof=alloy echo fable onyx nova shimmer"`
	ResponseFormat SpeechFormat `json:"response_format,omitempty" validate:"omitempty,oneof=mp3 opus aac flac"`
	Speed          *float64     `json:"speed,omitempty" validate:"omitempty,gte=0.25,lte=4"`
}

// NewSpeechRequest builds a speech request with the default model and
// voice.
func NewSpeechRequest(input string) *SpeechRequest {
	return &SpeechRequest{
		Model: SpeechModelTTS1,
		Input: input,
		Voice: VoiceNova,
	}
}

// Validate reports missing or out-of-range fields.
func (r *SpeechRequest) Validate() error {
	return validation.Validate(r)
}

func (r *SpeechRequest) intoRequest() (httpclient.Request, error) {
	return httpclient.Request{
		Method: "POST",
		Path:   "/audio/speech",
		Body:   r,
	}, nil
}
