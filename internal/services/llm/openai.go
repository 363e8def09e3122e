// File: internal/services/llm/openai.go
package llm

import (
	"context"
	"fmt"
	"io"

	openai "github.com/sashabaranov/go-openai"

	"github.com/huaxia-history/go-huaxia/internal/domain"
)

const systemPrompt = "你是华夏历史网站的AI助手，精通中国历史。" +
	"请用简体中文回答用户关于中国历史的问题，使用Markdown格式组织答案，" +
	"对朝代、人物、事件给出准确的年代。与中国历史无关的问题请礼貌地婉拒。"

// OpenAIResponder streams replies from an OpenAI-compatible endpoint.
type OpenAIResponder struct {
	client *openai.Client
	model  string
	logger Logger
}

func NewOpenAIResponder(apiKey, baseURL, model string, logger Logger) *OpenAIResponder {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIResponder{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		logger: logger,
	}
}

func (r *OpenAIResponder) StreamReply(ctx context.Context, history []domain.ChatMessage, onDelta func(string) error) error {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, m := range history {
		role := openai.ChatMessageRoleUser
		if m.Role == domain.RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}

	r.logger.Debug("opening completion stream", "model", r.model, "history_len", len(history))
	stream, err := r.client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:    r.model,
		Messages: messages,
	})
	if err != nil {
		return fmt.Errorf("creating completion stream: %w", err)
	}
	defer stream.Close()

	for {
		response, err := stream.Recv()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("stream receive error: %w", err)
		}
		if len(response.Choices) == 0 {
			continue
		}
		delta := response.Choices[0].Delta.Content
		if delta == "" {
			continue
		}
		if err := onDelta(delta); err != nil {
			return err
		}
	}
}
