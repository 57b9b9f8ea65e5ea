package advisor

import (
	"context"
	"errors"
	"testing"

	"github.com/aura-commerce/ministore-backend/pkg/db/models"
	"github.com/aura-commerce/ministore-backend/pkg/enums"
	pkgerrors "github.com/aura-commerce/ministore-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

type fixedProducts struct {
	products []models.Product
	err      error
}

func (f *fixedProducts) ListProducts(ctx context.Context) ([]models.Product, error) {
	return f.products, f.err
}

func catalogFixture() *fixedProducts {
	return &fixedProducts{products: []models.Product{
		{
			Name:        "Pro-Grip Yoga Mat",
			PriceCents:  5200,
			Category:    enums.ProductCategoryWellness,
			Description: "Extra thick, eco-friendly TPE material.",
		},
	}}
}

func TestAdviseIncludesCatalogAndQuestion(t *testing.T) {
	gen := &fakeGenerator{reply: "The yoga mat fits your budget."}
	svc, err := NewService(gen, catalogFixture(), nil)
	require.NoError(t, err)

	reply, err := svc.Advise(context.Background(), "a gift under $60 for a gym fan?")
	require.NoError(t, err)
	assert.Equal(t, "The yoga mat fits your budget.", reply)

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "Aura MiniStore")
	assert.Contains(t, gen.prompts[0], "Pro-Grip Yoga Mat")
	assert.Contains(t, gen.prompts[0], "a gift under $60 for a gym fan?")
}

func TestAdviseFallsBackOnGeneratorFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("upstream down")}
	svc, err := NewService(gen, catalogFixture(), nil)
	require.NoError(t, err)

	reply, err := svc.Advise(context.Background(), "anything?")
	require.NoError(t, err)
	assert.Equal(t, FallbackReply, reply)
}

func TestAdviseFallsBackOnCatalogFailure(t *testing.T) {
	gen := &fakeGenerator{reply: "unused"}
	svc, err := NewService(gen, &fixedProducts{err: errors.New("db down")}, nil)
	require.NoError(t, err)

	reply, err := svc.Advise(context.Background(), "anything?")
	require.NoError(t, err)
	assert.Equal(t, FallbackReply, reply)
	assert.Empty(t, gen.prompts)
}

func TestAdviseFallsBackOnBlankReply(t *testing.T) {
	gen := &fakeGenerator{reply: "   "}
	svc, err := NewService(gen, catalogFixture(), nil)
	require.NoError(t, err)

	reply, err := svc.Advise(context.Background(), "anything?")
	require.NoError(t, err)
	assert.Equal(t, FallbackReply, reply)
}

func TestAdviseRequiresPrompt(t *testing.T) {
	gen := &fakeGenerator{}
	svc, err := NewService(gen, catalogFixture(), nil)
	require.NoError(t, err)

	_, err = svc.Advise(context.Background(), "  ")
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}
