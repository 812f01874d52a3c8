package openai

import (
	"barista/internal/entities"

	goopenai "github.com/sashabaranov/go-openai"
)

func fromDomainMessages(messages []entities.ChatMessage) []goopenai.ChatCompletionMessage {
	result := make([]goopenai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		msg := goopenai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
			Name:    m.Name,
		}
		if m.FunctionCall != nil {
			msg.FunctionCall = &goopenai.FunctionCall{
				Name:      m.FunctionCall.Name,
				Arguments: m.FunctionCall.Arguments,
			}
		}
		result = append(result, msg)
	}
	return result
}

func fromDomainTools(tools []entities.Tool) []goopenai.FunctionDefinition {
	result := make([]goopenai.FunctionDefinition, 0, len(tools))
	for _, t := range tools {
		result = append(result, goopenai.FunctionDefinition{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  t.Parameters,
		})
	}
	return result
}
