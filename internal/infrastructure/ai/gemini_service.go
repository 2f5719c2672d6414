// Package ai implementa el adaptador de Google Gemini para la generación de
// descripciones y el análisis de inventario.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tu-usuario/estoque-pro/internal/application/ports"
	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
)

// Verificar en tiempo de compilación que GeminiService implementa LLMService.
var _ ports.LLMService = (*GeminiService)(nil)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

	// Respuestas neutras cuando el modelo devuelve un candidato vacío: el
	// caller recibe texto presentable, no un error.
	emptyDescription = "Descrição não gerada."
	emptyAnalysis    = "Análise não pôde ser gerada."
)

// GeminiService adaptador que implementa LLMService llamando a la API REST de
// Google Gemini. Usa únicamente net/http para no añadir dependencias externas.
type GeminiService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGeminiService construye el adaptador. model suele ser "gemini-2.5-flash".
func NewGeminiService(apiKey, model string) *GeminiService {
	return &GeminiService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 20 * time.Second, // timeout de red; el caller también pone WithTimeout
		},
	}
}

// ── Estructuras internas para la API de Gemini ────────────────────────────────

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type genConfig struct {
	Temperature     float32 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// GenerateDescription pide una descripción corta del producto en portugués.
func (s *GeminiService) GenerateDescription(ctx context.Context, name, category string) (string, error) {
	prompt := fmt.Sprintf(
		"Gere uma descrição concisa e atrativa para o produto %q da categoria %q. "+
			"A descrição deve ter no máximo 2 frases e destacar seus principais benefícios ou usos.",
		name, category)

	text, err := s.generate(ctx, prompt, 256)
	if err != nil {
		return "", err
	}
	if text == "" {
		return emptyDescription, nil
	}
	return text, nil
}

// AnalyzeInventory pide un análisis textual del inventario filtrado.
func (s *GeminiService) AnalyzeInventory(ctx context.Context, products []entity.Product, period, category string) (string, error) {
	var summary strings.Builder
	for _, p := range products {
		fmt.Fprintf(&summary, "- %s (Categoria: %s, Quantidade: %d, Preço de Custo: R$%s)\n",
			p.Name, p.Category, p.Quantity, p.CostPrice.StringFixed(2))
	}

	var contextLines []string
	if category != "" && category != "all" {
		contextLines = append(contextLines, fmt.Sprintf("A análise deve focar apenas na categoria: %q.", category))
	}
	if period != "" {
		contextLines = append(contextLines, fmt.Sprintf("A análise deve considerar o período %s.", period))
	}
	contextBlock := ""
	if len(contextLines) > 0 {
		contextBlock = "\nContexto da Análise (LEVE EM CONSIDERAÇÃO):\n" + strings.Join(contextLines, "\n") + "\n"
	}

	prompt := fmt.Sprintf(`Com base nos seguintes dados do inventário:
%s
%s
Gere uma análise concisa do estoque em português. A análise deve incluir:
1. Um resumo geral do estado do inventário DENTRO DO CONTEXTO FORNECIDO.
2. Identificação de categorias com maior/menor número de produtos (se aplicável).
3. Sugestões de produtos que podem precisar de reposição em breve (baixo estoque).
4. Insights sobre possíveis produtos "encalhados" (alto estoque).
5. Uma recomendação estratégica geral (ex: "focar em vender produtos da categoria X", "considerar uma promoção para itens Y").

A resposta deve ser em texto corrido, formatado para fácil leitura, com no máximo 5 parágrafos.`,
		summary.String(), contextBlock)

	text, err := s.generate(ctx, prompt, 1024)
	if err != nil {
		return "", err
	}
	if text == "" {
		return emptyAnalysis, nil
	}
	return text, nil
}

// generate hace la llamada HTTP a Gemini y devuelve el texto del primer
// candidato, con trim.
func (s *GeminiService) generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: GEMINI_API_KEY no configurado")
	}

	payload := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: genConfig{
			Temperature:     0.4,
			MaxOutputTokens: maxTokens,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	url := fmt.Sprintf(geminiBaseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		return "", fmt.Errorf("AI: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp geminiResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Gemini error %d: %s", errResp.Error.Code, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Gemini HTTP %d", resp.StatusCode)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(rawBody, &gemResp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Gemini: %w", err)
	}
	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return strings.TrimSpace(gemResp.Candidates[0].Content.Parts[0].Text), nil
}
