package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"studycost-agent/domain"
	"studycost-agent/repository"
)

const (
	llmModel     = "gpt-4o-mini"
	llmMaxTokens = 300
	tipsCacheTTL = 24 * time.Hour
)

type AIService struct {
	apiKey     string
	apiURL     string
	enabled    bool
	httpClient *http.Client
	cache      repository.CacheRepository
}

type OpenAIRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens,omitempty"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type OpenAIResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

func NewAIService(cache repository.CacheRepository) *AIService {
	apiKey := os.Getenv("OPENAI_API_KEY")

	return &AIService{
		apiKey:  apiKey,
		apiURL:  "https://api.openai.com/v1/chat/completions",
		enabled: apiKey != "",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		cache: cache,
	}
}

// GenerateBudgetTips genera consejos de presupuesto para el estimado dado.
// Generated tips are cached by input so repeated estimates do not repeat
// the remote call. Any failure falls back to the static tip set.
func (s *AIService) GenerateBudgetTips(
	input domain.EstimateInput,
	result domain.EstimateResult,
) []string {
	if !s.enabled {
		return StaticTips()
	}

	key := tipsCacheKey(input)
	if cached, ok := s.cache.Get(key); ok {
		return strings.Split(cached, "\n")
	}

	prompt := fmt.Sprintf(`Analiza este presupuesto para estudiar en el extranjero y genera consejos prácticos de ahorro.

RESUMEN DEL PRESUPUESTO:
- Matrícula: $%.2f
- Duración del programa: %d meses
- Renta mensual estimada: $%.2f
- Comida mensual estimada: $%.2f
- Transporte mensual estimado: $%.2f
- Beca: $%.2f
- Costo total esperado: $%.0f
- Rango simulado (percentil 10 a percentil 90): $%.0f a $%.0f

INSTRUCCIONES:
1. Genera entre 3 y 5 consejos concretos para mantener el presupuesto dentro del rango estimado.
2. Prioriza las categorías con mayor peso en el costo total.
3. Menciona montos específicos cuando sea útil.
4. Sé práctico y realista, sin tecnicismos financieros.

Responde solo con la lista de consejos, uno por línea, empezando cada línea con "- ".`,
		input.Tuition, input.Months, input.MonthlyRent, input.MonthlyFood,
		input.MonthlyTransport, input.Scholarship,
		result.Expected.Total, result.Range.P10, result.Range.P90)

	answer, err := s.callLLM(prompt)
	if err != nil {
		slog.Warn("Error calling AI service for budget tips", "error", err)
		return StaticTips()
	}

	tips := parseTips(answer)
	if len(tips) == 0 {
		return StaticTips()
	}

	// Guardar en cache (no crítico si falla)
	if err := s.cache.Set(key, strings.Join(tips, "\n"), tipsCacheTTL); err != nil {
		slog.Warn("Error caching budget tips", "error", err)
	}

	return tips
}

func (s *AIService) callLLM(prompt string) (string, error) {
	reqBody := OpenAIRequest{
		Model: llmModel,
		Messages: []Message{
			{
				Role:    "system",
				Content: "Eres un asesor financiero especializado en estudiantes que planean estudiar en el extranjero. Proporcionas consejos de presupuesto claros, precisos y accionables en español. Conoces los gastos típicos de un estudiante internacional: matrícula, renta, comida, transporte, servicios y costos únicos como visa, vuelo e instalación. Tus consejos son educativos, fáciles de seguir y ayudan a los estudiantes a mantenerse dentro de su presupuesto.",
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
		MaxTokens: llmMaxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var openAIResp OpenAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&openAIResp); err != nil {
		return "", err
	}

	if len(openAIResp.Choices) == 0 {
		return "", fmt.Errorf("no response from AI")
	}

	return openAIResp.Choices[0].Message.Content, nil
}

// parseTips splits the model answer into individual tips, stripping list
// markers and numbering.
func parseTips(answer string) []string {
	var tips []string
	for _, line := range strings.Split(answer, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*• \t")
		// quitar numeración tipo "1." o "2)"
		if len(line) > 2 && line[0] >= '0' && line[0] <= '9' &&
			(line[1] == '.' || line[1] == ')') {
			line = strings.TrimSpace(line[2:])
		}
		if line == "" {
			continue
		}
		tips = append(tips, line)
	}
	return tips
}

// StaticTips is the fixed fallback set used when the AI service is disabled
// or fails.
func StaticTips() []string {
	return []string{
		"Reserva entre un 10% y un 15% del presupuesto mensual como colchón: la renta y la comida casi siempre superan el estimado inicial.",
		"Busca residencias universitarias o apartamentos compartidos; la renta es la categoría con mayor variabilidad del presupuesto.",
		"Cocina en casa la mayoría de los días y aprovecha los descuentos de estudiante en supermercados y transporte.",
		"Aplica a becas parciales incluso después de empezar el programa; cualquier monto reduce directamente el costo total.",
		"Compra el vuelo y tramita la visa con varios meses de anticipación para evitar recargos sobre los costos únicos.",
	}
}

func tipsCacheKey(input domain.EstimateInput) string {
	return fmt.Sprintf("tips:%d:%.0f:%.0f:%.0f:%.0f:%.0f",
		input.Months, input.Tuition, input.MonthlyRent,
		input.MonthlyFood, input.MonthlyTransport, input.Scholarship)
}
