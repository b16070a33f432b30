package llmkit

import (
	"bytes"
	"context"
	"net/http"
	"testing"
)

// whisperForm records the multipart form seen by a test server.
type whisperForm struct {
	path     string
	values   map[string]string
	filename string
	fileType string
	file     []byte
}

func whisperHandler(form *whisperForm, reply string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form.path = r.URL.Path
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		form.values = map[string]string{}
		for key, vals := range r.MultipartForm.Value {
			form.values[key] = vals[0]
		}
		if files := r.MultipartForm.File["file"]; len(files) > 0 {
			form.filename = files[0].Filename
			form.fileType = files[0].Header.Get("Content-Type")
			f, _ := files[0].Open()
			defer f.Close()
			buf := new(bytes.Buffer)
			buf.ReadFrom(f)
			form.file = buf.Bytes()
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(reply))
	}
}

func TestTranscriptionMultipartFields(t *testing.T) {
	var form whisperForm
	client, _ := newTestClient(t, whisperHandler(&form, `{"text":"hei verden"}`))

	audio := []byte("fake-audio-bytes")
	req := NewTranscriptionRequest(audio)
	req.Language = "no"
	req.Prompt = "casual speech"
	temp := 0.2
	req.Temperature = &temp

	resp, err := client.Whisper(context.Background(), req)
	if err != nil {
		t.Fatalf("Whisper: %v", err)
	}

	if form.path != "/audio/transcriptions" {
		t.Errorf("path = %q", form.path)
	}
	if form.filename != "file.mp3" || !bytes.Equal(form.file, audio) {
		t.Errorf("file part = %q (%d bytes)", form.filename, len(form.file))
	}
	if form.fileType != "audio/mp3" {
		t.Errorf("file Content-Type = %q, want audio/mp3", form.fileType)
	}
	want := map[string]string{
		"model":           "whisper-1",
		"language":        "no",
		"prompt":          "casual speech",
		"response_format": "json",
		"temperature":     "0.2",
	}
	for key, val := range want {
		if form.values[key] != val {
			t.Errorf("form[%q] = %q, want %q", key, form.values[key], val)
		}
	}
	if resp.Text != "hei verden" {
		t.Errorf("Text = %q", resp.Text)
	}
}

func TestTranslationNeverSendsLanguage(t *testing.T) {
	var form whisperForm
	client, _ := newTestClient(t, whisperHandler(&form, `{"text":"hello world"}`))

	req := NewTranslationRequest([]byte("fake-audio-bytes"))
	// Set anyway; translation always targets English.
	req.Language = "no"

	if _, err := client.Whisper(context.Background(), req); err != nil {
		t.Fatalf("Whisper: %v", err)
	}

	if form.path != "/audio/translations" {
		t.Errorf("path = %q", form.path)
	}
	if _, ok := form.values["language"]; ok {
		t.Error("translation must not carry a language field")
	}
}

func TestTranscriptionOmitsUnsetOptionals(t *testing.T) {
	var form whisperForm
	client, _ := newTestClient(t, whisperHandler(&form, `{"text":"x"}`))

	req := NewTranscriptionRequest([]byte("x"))
	req.ResponseFormat = ""

	if _, err := client.Whisper(context.Background(), req); err != nil {
		t.Fatalf("Whisper: %v", err)
	}
	for _, key := range []string{"language", "prompt", "temperature"} {
		if _, ok := form.values[key]; ok {
			t.Errorf("unset field %q must be omitted", key)
		}
	}
	// model and response_format always go on the wire.
	if form.values["response_format"] != "json" {
		t.Errorf("response_format = %q, want json fallback", form.values["response_format"])
	}
}

func TestWhisperTextFormatReturnsBodyVerbatim(t *testing.T) {
	transcript := "Hello world.\nSecond line.\n"
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte(transcript))
	})

	req := NewTranscriptionRequest([]byte("x"))
	req.ResponseFormat = WhisperFormatText

	resp, err := client.Whisper(context.Background(), req)
	if err != nil {
		t.Fatalf("Whisper: %v", err)
	}
	if resp.Text != transcript {
		t.Errorf("Text = %q, want body verbatim", resp.Text)
	}
}

func TestWhisperSRTFormatReturnsBodyVerbatim(t *testing.T) {
	srt := "1\n00:00:00,000 --> 00:00:02,000\nHello.\n"
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(srt))
	})

	req := NewTranscriptionRequest([]byte("x"))
	req.ResponseFormat = WhisperFormatSRT

	resp, err := client.Whisper(context.Background(), req)
	if err != nil {
		t.Fatalf("Whisper: %v", err)
	}
	if resp.Text != srt {
		t.Errorf("Text = %q", resp.Text)
	}
}

func TestWhisperVerboseJSONSegments(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"text": "Hello world.",
			"language": "english",
			"duration": 2.5,
			"segments": [
				{"id": 0, "start": 0, "end": 1.2, "text": "Hello"},
				{"id": 1, "start": 1.2, "end": 2.5, "text": " world."}
			]
		}`))
	})

	req := NewTranscriptionRequest([]byte("x"))
	req.ResponseFormat = WhisperFormatVerboseJSON

	resp, err := client.Whisper(context.Background(), req)
	if err != nil {
		t.Fatalf("Whisper: %v", err)
	}
	if resp.Text != "Hello world." {
		t.Errorf("Text = %q", resp.Text)
	}
	if resp.Language != "english" || resp.Duration != 2.5 {
		t.Errorf("language = %q, duration = %v", resp.Language, resp.Duration)
	}
	if len(resp.Segments) != 2 || resp.Segments[1].Text != " world." {
		t.Errorf("segments = %+v", resp.Segments)
	}
}

func TestWhisperRequestValidation(t *testing.T) {
	tests := []struct {
		name string
		req  *WhisperRequest
	}{
		{"missing file", &WhisperRequest{Kind: WhisperTranscription, Filename: "a.wav", Model: WhisperModelWhisper1}},
		{"missing filename", &WhisperRequest{Kind: WhisperTranscription, File: []byte("x"), Model: WhisperModelWhisper1}},
		{"missing kind", &WhisperRequest{File: []byte("x"), Filename: "a.wav", Model: WhisperModelWhisper1}},
		{"bad kind", &WhisperRequest{Kind: "dictation", File: []byte("x"), Filename: "a.wav", Model: WhisperModelWhisper1}},
		{"bad format", func() *WhisperRequest {
			r := NewTranscriptionRequest([]byte("x"))
			r.ResponseFormat = "xml"
			return r
		}()},
		{"temperature too high", func() *WhisperRequest {
			r := NewTranscriptionRequest([]byte("x"))
			temp := 1.5
			r.Temperature = &temp
			return r
		}()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.req.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	if err := NewTranslationRequest([]byte("x")).Validate(); err != nil {
		t.Errorf("valid request rejected: %v", err)
	}
}
