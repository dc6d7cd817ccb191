package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"omniportal/internal/llm"
)

// Message is one prior chat turn. Role is "user" or "model".
type Message struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

const personaInstruction = "You are Omni Mate, a friendly, high-dimensional AI assistant for the 'Omni Portal' platform. The user is a 'Super Individual' (Creator/Digital Nomad). Your tone is supportive, insightful, and slightly futuristic. Keep responses concise (under 100 words) unless asked for details. Language: Chinese."

const (
	offlineReply     = "我是 Omni Mate，您的 AI 共创助理。由于目前处于离线演示模式，我只能提供有限的回复。接入真实 API Key 后，我可以为您提供深度洞察。"
	emptyReply       = "抱歉，我暂时无法连接到意识网络。"
	interruptedReply = "连接中断，请稍后再试。"
)

// Client produces a single assistant reply per call. One request, no retry,
// no streaming; every failure mode maps to a fixed user-facing string.
type Client struct {
	llm llm.Client
}

// New builds an assistant client. A nil backend selects offline mode.
func New(backend llm.Client) *Client {
	return &Client{llm: backend}
}

// Available reports whether an online backend is configured.
func (c *Client) Available() bool { return c.llm != nil }

// Reply answers the latest user message given the prior turn history.
func (c *Client) Reply(ctx context.Context, message string, history []Message) string {
	if c.llm == nil {
		return offlineReply
	}

	transcript, err := json.Marshal(history)
	if err != nil {
		transcript = []byte("[]")
	}
	prompt := fmt.Sprintf("%s\n\nChat History:\n%s\n\nUser: %s\nOmni Mate:", personaInstruction, transcript, message)

	text, err := c.llm.GenerateText(ctx, prompt)
	if errors.Is(err, llm.ErrEmptyResponse) {
		return emptyReply
	}
	if err != nil {
		log.Printf("assistant: completion failed: %v", err)
		return interruptedReply
	}
	if strings.TrimSpace(text) == "" {
		return emptyReply
	}
	return text
}
