package llmkit

import (
	"strconv"

	"github.com/kbukum/llmkit/httpclient"
	"github.com/kbukum/llmkit/validation"
)

// WhisperKind selects which audio operation a WhisperRequest performs.
type WhisperKind string

const (
	// WhisperTranscription transcribes audio in its source language.
	WhisperTranscription WhisperKind = "transcription"
	// WhisperTranslation translates audio into English.
	WhisperTranslation WhisperKind = "translation"
)

// WhisperModel identifies a speech recognition model.
type WhisperModel string

const WhisperModelWhisper1 WhisperModel = "whisper-1"

// WhisperFormat selects the transcript output format.
type WhisperFormat string

const (
	WhisperFormatJSON        WhisperFormat = "json"
	WhisperFormatText        WhisperFormat = "text"
	WhisperFormatSRT         WhisperFormat = "srt"
	WhisperFormatVerboseJSON WhisperFormat = "verbose_json"
	WhisperFormatVTT         WhisperFormat = "vtt"
)

// WhisperRequest is the payload for audio transcription and
// translation. It is encoded as a multipart form. Language applies to
// transcription only; translation always targets English and the field
// is never sent for it.
type WhisperRequest struct {
	Kind     WhisperKind  `validate:"required,oneof=transcription translation"`
	File     []byte       `validate:"required"`
	Filename string       `validate:"required"`
	Model    WhisperModel `validate:"required,oneof=whisper-1"`
	// ContentType is the MIME type of the file part.
	ContentType string
	// Language is an ISO-639-1 code hinting the input language.
	Language       string
	Prompt         string
	ResponseFormat WhisperFormat `validate:"omitempty,oneof=json text srt verbose_json vtt"`
	Temperature    *float64      `validate:"omitempty,gte=0,lte=1"`
}

// NewTranscriptionRequest builds a transcription request for the given
// audio bytes. The file part defaults to file.mp3 with an audio/mp3
// MIME type; set Filename and ContentType for other containers.
func NewTranscriptionRequest(file []byte) *WhisperRequest {
	return &WhisperRequest{
		Kind:        WhisperTranscription,
		File:        file,
		Filename:    "file.mp3",
		Model:       WhisperModelWhisper1,
		ContentType: "audio/mp3",
	}
}

// NewTranslationRequest builds an English translation request for the
// given audio bytes.
func NewTranslationRequest(file []byte) *WhisperRequest {
	return &WhisperRequest{
		Kind:        WhisperTranslation,
		File:        file,
		Filename:    "file.mp3",
		Model:       WhisperModelWhisper1,
		ContentType: "audio/mp3",
	}
}

// Validate reports missing or out-of-range fields.
func (r *WhisperRequest) Validate() error {
	return validation.Validate(r)
}

func (r *WhisperRequest) effectiveFormat() WhisperFormat {
	if r.ResponseFormat == "" {
		return WhisperFormatJSON
	}
	return r.ResponseFormat
}

func (r *WhisperRequest) intoRequest() (httpclient.Request, error) {
	body := &httpclient.MultipartBody{}
	body.AddFile("file", r.Filename, r.ContentType, r.File)
	body.AddField("model", string(r.Model))
	if r.Kind == WhisperTranscription && r.Language != "" {
		body.AddField("language", r.Language)
	}
	if r.Prompt != "" {
		body.AddField("prompt", r.Prompt)
	}
	body.AddField("response_format", string(r.effectiveFormat()))
	if r.Temperature != nil {
		body.AddField("temperature", strconv.FormatFloat(*r.Temperature, 'f', -1, 64))
	}

	path := "/audio/transcriptions"
	if r.Kind == WhisperTranslation {
		path = "/audio/translations"
	}
	return httpclient.Request{
		Method: "POST",
		Path:   path,
		Body:   body,
	}, nil
}

// WhisperSegment is one timed span of a verbose transcript.
type WhisperSegment struct {
	ID    int     `json:"id"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// WhisperResponse is the decoded transcript. For non-JSON response
// formats only Text is populated, holding the raw body verbatim.
type WhisperResponse struct {
	Text     string           `json:"text"`
	Language string           `json:"language,omitempty"`
	Duration float64          `json:"duration,omitempty"`
	Segments []WhisperSegment `json:"segments,omitempty"`
}
