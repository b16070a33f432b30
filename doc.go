// Package llmkit is a typed Go client for OpenAI-style HTTP APIs:
// chat completions, image generation, text-to-speech, audio
// transcription and translation, and embeddings.
//
// Every operation takes a typed request value with validated fields
// and returns a typed response (or raw bytes for audio synthesis).
// Requests are dispatched through a shared resilient HTTP client with
// bearer authentication, bounded retries with exponential backoff,
// structured logging, and OpenTelemetry trace spans.
//
// Basic usage:
//
//	client, err := llmkit.NewWithToken(os.Getenv("OPENAI_API_KEY"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	req := llmkit.NewChatCompletionRequest(
//		llmkit.SystemMessage("You are a helpful assistant."),
//		llmkit.UserMessage("Say hello."),
//	)
//	resp, err := client.ChatCompletion(ctx, req)
//
// Optional request fields are pointers or zero-valued strings and are
// omitted from the wire payload when unset, so server-side defaults
// apply.
package llmkit
