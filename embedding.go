package llmkit

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"

	"github.com/kbukum/llmkit/httpclient"
	"github.com/kbukum/llmkit/validation"
)

// EmbeddingModel identifies an embedding model.
type EmbeddingModel string

const (
	EmbeddingModelAda002 EmbeddingModel = "text-embedding-ada-002"
	EmbeddingModel3Small EmbeddingModel = "text-embedding-3-small"
	EmbeddingModel3Large EmbeddingModel = "text-embedding-3-large"
)

// EmbeddingEncodingFormat selects how vectors are encoded in the
// response.
type EmbeddingEncodingFormat string

const (
	EncodingFormatFloat  EmbeddingEncodingFormat = "float"
	EncodingFormatBase64 EmbeddingEncodingFormat = "base64"
)

// EmbeddingInput is the text to embed: either a single string or a
// list of strings. The zero value is invalid.
type EmbeddingInput struct {
	single *string
	many   []string
}

// EmbeddingText wraps a single input string.
func EmbeddingText(s string) EmbeddingInput {
	return EmbeddingInput{single: &s}
}

// EmbeddingTexts wraps a list of input strings.
func EmbeddingTexts(ss []string) EmbeddingInput {
	return EmbeddingInput{many: ss}
}

// MarshalJSON encodes a single input as a JSON string and a list as a
// JSON array, matching the wire format's untagged union.
func (i EmbeddingInput) MarshalJSON() ([]byte, error) {
	if i.single != nil {
		return json.Marshal(*i.single)
	}
	return json.Marshal(i.many)
}

// UnmarshalJSON accepts either a JSON string or an array of strings.
func (i *EmbeddingInput) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		i.single = &s
		i.many = nil
		return nil
	}
	var ss []string
	if err := json.Unmarshal(data, &ss); err != nil {
		return fmt.Errorf("embedding input must be a string or array of strings: %w", err)
	}
	i.single = nil
	i.many = ss
	return nil
}

func (i EmbeddingInput) isZero() bool {
	return i.single == nil && len(i.many) == 0
}

// EmbeddingRequest is the payload for the embeddings operation.
type EmbeddingRequest struct {
	Model          EmbeddingModel          `json:"model" validate:"required,oneof=text-embedding-ada-002 text-embedding-3-small text-embedding-3-large"`
	Input          EmbeddingInput          `json:"input"`
	EncodingFormat EmbeddingEncodingFormat `json:"encoding_format,omitempty" validate:"omitempty,oneof=float base64"`
	User           string                  `json:"user,omitempty"`
}

// NewEmbeddingRequest builds an embedding request for the default
// model.
func NewEmbeddingRequest(input EmbeddingInput) *EmbeddingRequest {
	return &EmbeddingRequest{
		Model: EmbeddingModelAda002,
		Input: input,
	}
}

// Validate reports missing fields, including an empty input union.
func (r *EmbeddingRequest) Validate() error {
	if r.Input.isZero() {
		return &validation.Error{Fields: []validation.FieldError{
			{Field: "input", Message: "input is required"},
		}}
	}
	return validation.Validate(r)
}

func (r *EmbeddingRequest) intoRequest() (httpclient.Request, error) {
	return httpclient.Request{
		Method: "POST",
		Path:   "/embeddings",
		Body:   r,
	}, nil
}

// EmbeddingVector is a decoded embedding. On the wire it is either a
// JSON number array or, with the base64 encoding format, a base64
// string packing little-endian float32 values.
type EmbeddingVector []float64

// UnmarshalJSON accepts both wire encodings.
func (v *EmbeddingVector) UnmarshalJSON(data []byte) error {
	var floats []float64
	if err := json.Unmarshal(data, &floats); err == nil {
		*v = floats
		return nil
	}

	var encoded string
	if err := json.Unmarshal(data, &encoded); err != nil {
		return fmt.Errorf("embedding must be a number array or base64 string: %w", err)
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return fmt.Errorf("decode base64 embedding: %w", err)
	}
	if len(raw)%4 != 0 {
		return fmt.Errorf("base64 embedding length %d is not a multiple of 4", len(raw))
	}

	out := make([]float64, len(raw)/4)
	for i := range out {
		bits := binary.LittleEndian.Uint32(raw[i*4:])
		out[i] = float64(math.Float32frombits(bits))
	}
	*v = out
	return nil
}

// EmbeddingData is one embedding vector.
type EmbeddingData struct {
	Object    string          `json:"object"`
	Index     int             `json:"index"`
	Embedding EmbeddingVector `json:"embedding"`
}

// EmbeddingUsage reports token consumption for an embedding call.
type EmbeddingUsage struct {
	PromptTokens int `json:"prompt_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// EmbeddingResponse is the decoded embeddings payload.
type EmbeddingResponse struct {
	Object string          `json:"object"`
	Data   []EmbeddingData `json:"data"`
	Model  string          `json:"model"`
	Usage  EmbeddingUsage  `json:"usage"`
}

// FirstVector returns the first embedding vector, or nil when the
// response carries no data.
func (r *EmbeddingResponse) FirstVector() EmbeddingVector {
	if len(r.Data) == 0 {
		return nil
	}
	return r.Data[0].Embedding
}
