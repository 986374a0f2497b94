// FILE: internal/service/extraction_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"contract-renewal-be/internal/constant"
	"contract-renewal-be/internal/dto"
	"contract-renewal-be/internal/pkg/logger"
	"contract-renewal-be/pkg/llm"
)

type IExtractionService interface {
	ExtractFields(ctx context.Context, text string) (*dto.ExtractedFields, error)
}

type extractionService struct {
	provider llm.LLMProvider
	logger   logger.ILogger
}

func NewExtractionService(provider llm.LLMProvider, logger logger.ILogger) IExtractionService {
	return &extractionService{
		provider: provider,
		logger:   logger,
	}
}

func (s *extractionService) ExtractFields(ctx context.Context, text string) (*dto.ExtractedFields, error) {
	if len(text) > constant.ExtractionPromptMaxChars {
		text = text[:constant.ExtractionPromptMaxChars]
	}

	history := []llm.Message{
		{Role: "system", Content: constant.ContractExtractionPrompt},
		{Role: "user", Content: text},
	}

	raw, err := s.provider.Chat(ctx, history, llm.WithJSONResponse(), llm.WithTemperature(0))
	if err != nil {
		return nil, fmt.Errorf("llm extraction: %w", err)
	}

	var fields dto.ExtractedFields
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &fields); err != nil {
		s.logger.Warn("ExtractionService", "Model returned non-JSON output", map[string]interface{}{
			"output_prefix": truncate(raw, 200),
		})
		return nil, fmt.Errorf("parse extraction response: %w", err)
	}

	return &fields, nil
}

// stripCodeFence tolerates models that wrap the JSON object in a
// markdown fence despite the JSON response format.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
