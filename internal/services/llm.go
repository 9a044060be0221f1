package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// LLMService OpenAI 兼容接口的聊天客户端，配置全部来自环境变量
type LLMService struct {
	baseURL string
	token   string
	model   string
	client  *http.Client
}

var llmService *LLMService

// GetLLMService 获取单例 LLM 客户端
func GetLLMService() *LLMService {
	if llmService == nil {
		llmService = &LLMService{
			baseURL: os.Getenv("LLM_BASE_URL"),
			token:   os.Getenv("LLM_TOKEN"),
			model:   os.Getenv("LLM_MODEL"),
			client:  &http.Client{Timeout: 60 * time.Second},
		}
	}
	return llmService
}

// ChatMessage 一条对话消息
type ChatMessage struct {
	Role    string `json:"role"` // system / user / assistant
	Content string `json:"content"`
}

// ChatRequest 请求体
type ChatRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
}

// ChatResponse 响应体（只取需要的字段）
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Chat 发送完整对话历史，返回模型回复
func (s *LLMService) Chat(messages []ChatMessage) (string, error) {
	if s.baseURL == "" || s.token == "" {
		return "", fmt.Errorf("LLM_BASE_URL / LLM_TOKEN 未配置")
	}

	reqBody, err := json.Marshal(ChatRequest{
		Model:    s.model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("构建请求体失败: %w", err)
	}

	req, err := http.NewRequest("POST", s.baseURL+"/chat/completions", bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("创建请求失败: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("请求 LLM 失败: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("读取响应失败: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("LLM 返回 status %d", resp.StatusCode)
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("解析响应失败: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("LLM 返回空 choices")
	}

	return chatResp.Choices[0].Message.Content, nil
}
