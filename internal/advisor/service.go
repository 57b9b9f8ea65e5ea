package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aura-commerce/ministore-backend/pkg/db/models"
	pkgerrors "github.com/aura-commerce/ministore-backend/pkg/errors"
	"github.com/aura-commerce/ministore-backend/pkg/logger"
)

// FallbackReply is returned whenever the advisor cannot produce an answer.
// The chat widget shows it verbatim.
const FallbackReply = "I'm sorry, I'm having trouble connecting to my brain right now. Please try again!"

type generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

type productLister interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
}

// Service answers shopping questions grounded in the live catalog.
type Service interface {
	Advise(ctx context.Context, userPrompt string) (string, error)
}

type service struct {
	client   generator
	products productLister
	logg     *logger.Logger
}

// NewService builds the advisor service.
func NewService(client generator, products productLister, logg *logger.Logger) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("advisor client required")
	}
	if products == nil {
		return nil, fmt.Errorf("product lister required")
	}
	return &service{client: client, products: products, logg: logg}, nil
}

type promptProduct struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Price       int    `json:"price"`
	Description string `json:"description"`
}

// Advise sends the catalog plus the user's question to the model. Every
// downstream failure degrades to the canned reply so the chat never errors.
func (s *service) Advise(ctx context.Context, userPrompt string) (string, error) {
	userPrompt = strings.TrimSpace(userPrompt)
	if userPrompt == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "prompt is required")
	}

	products, err := s.products.ListProducts(ctx)
	if err != nil {
		s.warn(ctx, "advisor could not load catalog", err)
		return FallbackReply, nil
	}

	reply, err := s.client.GenerateContent(ctx, buildPrompt(products, userPrompt))
	if err != nil {
		s.warn(ctx, "advisor generation failed", err)
		return FallbackReply, nil
	}
	if strings.TrimSpace(reply) == "" {
		return FallbackReply, nil
	}
	return reply, nil
}

func buildPrompt(products []models.Product, userPrompt string) string {
	summaries := make([]promptProduct, 0, len(products))
	for _, p := range products {
		summaries = append(summaries, promptProduct{
			Name:        p.Name,
			Category:    string(p.Category),
			Price:       p.PriceCents,
			Description: p.Description,
		})
	}

	catalog, err := json.Marshal(summaries)
	if err != nil {
		catalog = []byte("[]")
	}

	return fmt.Sprintf(`You are a helpful shopping assistant for "Aura MiniStore".
            Here is our current inventory: %s.
            The user is asking: %q.
            Give a concise, friendly recommendation. If no product fits, politely say so.
            Keep it professional and helpful.`, catalog, userPrompt)
}

func (s *service) warn(ctx context.Context, msg string, err error) {
	if s.logg == nil {
		return
	}
	s.logg.Warn(ctx, fmt.Sprintf("%s: %v", msg, err))
}
