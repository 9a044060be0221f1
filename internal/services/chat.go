package services

import (
	"time"
	"yourprompty/internal/utils"
)

const (
	conversationTTL        = 30 * time.Minute
	conversationMaxHistory = 20 // 只保留最近 20 条，防止上下文无限膨胀

	chatSystemPrompt = "You are the yourPrompty assistant. You help users write, refine " +
		"and understand AI prompts. Keep answers short and practical."
)

// Conversation 会话历史，整体存放在有界 TTL 缓存里，
// 过期由缓存统一处理，不再给每个会话挂单独的定时器
type Conversation struct {
	ID       string
	Messages []ChatMessage
}

func conversationCacheKey(id string) string {
	return "chat:conversation:" + id
}

// Ask 处理一轮对话：取历史 → 调 LLM → 回写缓存。
// conversationID 为空时开启新会话并返回生成的 ID
func Ask(conversationID, userMessage string) (reply string, convID string, err error) {
	conv := &Conversation{}
	if conversationID != "" {
		if cached := utils.GetCache().Get(conversationCacheKey(conversationID)); cached != nil {
			if c, ok := cached.(*Conversation); ok {
				conv = c
			}
		}
	}
	if conv.ID == "" {
		conv.ID = conversationID
		if conv.ID == "" {
			conv.ID = utils.RandStringBytesMaskImpr(16)
		}
	}

	conv.Messages = append(conv.Messages, ChatMessage{Role: "user", Content: userMessage})
	if len(conv.Messages) > conversationMaxHistory {
		conv.Messages = conv.Messages[len(conv.Messages)-conversationMaxHistory:]
	}

	messages := make([]ChatMessage, 0, len(conv.Messages)+1)
	messages = append(messages, ChatMessage{Role: "system", Content: chatSystemPrompt})
	messages = append(messages, conv.Messages...)

	reply, err = GetLLMService().Chat(messages)
	if err != nil {
		return "", "", err
	}

	conv.Messages = append(conv.Messages, ChatMessage{Role: "assistant", Content: reply})
	utils.GetCache().Set(conversationCacheKey(conv.ID), conv, conversationTTL)

	return reply, conv.ID, nil
}
