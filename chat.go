package llmkit

import (
	"encoding/json"

	"github.com/kbukum/llmkit/httpclient"
	"github.com/kbukum/llmkit/validation"
)

// ChatModel identifies a chat completion model.
type ChatModel string

const (
	ChatModelGPT35Turbo       ChatModel = "gpt-3.5-turbo"
	ChatModelGPT4TurboPreview ChatModel = "gpt-4-turbo-preview"
	ChatModelGPT4o            ChatModel = "gpt-4o"
	ChatModelGPT4oMini        ChatModel = "gpt-4o-mini"
)

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	RoleSystem    ChatRole = "system"
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
	RoleTool      ChatRole = "tool"
)

// ToolType identifies the kind of tool exposed to the model. Function
// calling is the only supported kind.
type ToolType string

const ToolTypeFunction ToolType = "function"

// ToolChoice steers whether the model may call tools.
type ToolChoice string

const (
	ToolChoiceNone     ToolChoice = "none"
	ToolChoiceAuto     ToolChoice = "auto"
	ToolChoiceRequired ToolChoice = "required"
)

// ChatMessage is one turn in a conversation.
type ChatMessage struct {
	Role       ChatRole   `json:"role" validate:"required,oneof=system user assistant tool"`
	Content    string     `json:"content"`
	Name       string     `json:"name,omitempty"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
}

// SystemMessage builds a system-role message.
func SystemMessage(content string) ChatMessage {
	return ChatMessage{Role: RoleSystem, Content: content}
}

// UserMessage builds a user-role message.
func UserMessage(content string) ChatMessage {
	return ChatMessage{Role: RoleUser, Content: content}
}

// AssistantMessage builds an assistant-role message.
func AssistantMessage(content string) ChatMessage {
	return ChatMessage{Role: RoleAssistant, Content: content}
}

// ToolMessage builds a tool-role message carrying a tool call result.
func ToolMessage(toolCallID, content string) ChatMessage {
	return ChatMessage{Role: RoleTool, Content: content, ToolCallID: toolCallID}
}

// ToolFunction describes a callable function, including a JSON Schema
// for its parameters. SchemaFor produces a suitable Parameters value
// from a Go struct type.
type ToolFunction struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description,omitempty"`
	Parameters  json.RawMessage `json:"parameters,omitempty"`
}

// Tool is a capability the model may invoke.
type Tool struct {
	Type     ToolType     `json:"type" validate:"required,oneof=function"`
	Function ToolFunction `json:"function"`
}

// FunctionTool builds a function tool from a name, description, and
// parameter schema.
func FunctionTool(name, description string, parameters json.RawMessage) Tool {
	return Tool{
		Type: ToolTypeFunction,
		Function: ToolFunction{
			Name:        name,
			Description: description,
			Parameters:  parameters,
		},
	}
}

// FunctionCall is the function invocation requested by the model.
// Arguments is a JSON-encoded object in string form.
type FunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// ToolCall is a tool invocation emitted by the model inside an
// assistant message.
type ToolCall struct {
	ID       string       `json:"id"`
	Type     ToolType     `json:"type"`
	Function FunctionCall `json:"function"`
}

// ChatCompletionRequest is the payload for the chat completions
// operation. Optional fields are omitted from the wire payload when
// unset.
type ChatCompletionRequest struct {
	Model       ChatModel     `json:"model" validate:"required,oneof=gpt-3.5-turbo gpt-4-turbo-preview gpt-4o gpt-4o-mini"`
	Messages    []ChatMessage `json:"messages" validate:"required,min=1,dive"`
	MaxTokens   *int          `json:"max_tokens,omitempty" validate:"omitempty,gt=0"`
	Temperature *float64      `json:"temperature,omitempty" validate:"omitempty,gte=0,lte=2"`
	TopP        *float64      `json:"top_p,omitempty" validate:"omitempty,gte=0,lte=1"`
	N           *int          `json:"n,omitempty" validate:"omitempty,gte=1"`
	Stop        []string      `json:"stop,omitempty" validate:"omitempty,max=4"`
	Tools       []Tool        `json:"tools,omitempty" validate:"omitempty,dive"`
	ToolChoice  ToolChoice    `json:"tool_choice,omitempty" validate:"omitempty,oneof=none auto required"`
	User        string        `json:"user,omitempty"`
}

// NewChatCompletionRequest builds a chat request for the default model.
func NewChatCompletionRequest(messages ...ChatMessage) *ChatCompletionRequest {
	return &ChatCompletionRequest{
		Model:    ChatModelGPT35Turbo,
		Messages: messages,
	}
}

// Validate reports missing or out-of-range fields.
func (r *ChatCompletionRequest) Validate() error {
	return validation.Validate(r)
}

func (r *ChatCompletionRequest) intoRequest() (httpclient.Request, error) {
	return httpclient.Request{
		Method: "POST",
		Path:   "/chat/completions",
		Body:   r,
	}, nil
}

// ChatUsage reports token consumption for a completion.
type ChatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ChatChoice is one candidate completion.
type ChatChoice struct {
	Index        int         `json:"index"`
	Message      ChatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

// ChatCompletionResponse is the decoded chat completions payload.
type ChatCompletionResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Choices []ChatChoice `json:"choices"`
	Usage   ChatUsage    `json:"usage"`
}

// FirstContent returns the content of the first choice, or the empty
// string when there are no choices.
func (r *ChatCompletionResponse) FirstContent() string {
	if len(r.Choices) == 0 {
		return ""
	}
	return r.Choices[0].Message.Content
}
