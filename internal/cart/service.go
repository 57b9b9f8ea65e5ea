package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aura-commerce/ministore-backend/pkg/db/models"
	pkgerrors "github.com/aura-commerce/ministore-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type productLoader interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

// Service exposes the cart operations behind the drawer UI.
type Service interface {
	Get(ctx context.Context, cartToken string) (*Cart, error)
	Add(ctx context.Context, cartToken string, productID uuid.UUID) (*Cart, error)
	UpdateQuantity(ctx context.Context, cartToken string, productID uuid.UUID, delta int) (*Cart, error)
	Remove(ctx context.Context, cartToken string, productID uuid.UUID) (*Cart, error)
	Clear(ctx context.Context, cartToken string) error
}

type service struct {
	store    Store
	products productLoader
}

// NewService builds a cart service over the blob store and catalog.
func NewService(store Store, products productLoader) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if products == nil {
		return nil, fmt.Errorf("product loader required")
	}
	return &service{store: store, products: products}, nil
}

func (s *service) Get(ctx context.Context, cartToken string) (*Cart, error) {
	if err := validateToken(cartToken); err != nil {
		return nil, err
	}
	return s.store.Load(ctx, cartToken)
}

// Add merges the product into the cart: an existing line gains one unit, a
// new line starts at one. Out-of-stock products never enter the cart.
func (s *service) Add(ctx context.Context, cartToken string, productID uuid.UUID) (*Cart, error) {
	if err := validateToken(cartToken); err != nil {
		return nil, err
	}
	if productID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || pkgerrors.As(err).Code() == pkgerrors.CodeNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, err
	}
	if !product.InStock() {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "product is out of stock").
			WithDetails(map[string]any{"product_id": productID})
	}

	cart, err := s.store.Load(ctx, cartToken)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, Item{
			ProductID:  product.ID,
			Name:       product.Name,
			PriceCents: product.PriceCents,
			Category:   product.Category,
			ImageURL:   product.ImageURL,
			Rating:     product.Rating,
			Stock:      product.Stock,
			Quantity:   1,
		})
	}

	if err := s.store.Save(ctx, cartToken, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateQuantity applies a signed delta to a line, clamped at one unit.
// Dropping a line goes through Remove, never through a zero quantity.
func (s *service) UpdateQuantity(ctx context.Context, cartToken string, productID uuid.UUID, delta int) (*Cart, error) {
	if err := validateToken(cartToken); err != nil {
		return nil, err
	}

	cart, err := s.store.Load(ctx, cartToken)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			next := cart.Items[i].Quantity + delta
			if next < 1 {
				next = 1
			}
			cart.Items[i].Quantity = next
			found = true
			break
		}
	}
	if !found {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart line not found")
	}

	if err := s.store.Save(ctx, cartToken, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Remove drops the line entirely. Removing an absent line is a no-op so
// double-clicks in the drawer stay harmless.
func (s *service) Remove(ctx context.Context, cartToken string, productID uuid.UUID) (*Cart, error) {
	if err := validateToken(cartToken); err != nil {
		return nil, err
	}

	cart, err := s.store.Load(ctx, cartToken)
	if err != nil {
		return nil, err
	}

	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	cart.Items = kept

	if err := s.store.Save(ctx, cartToken, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *service) Clear(ctx context.Context, cartToken string) error {
	if err := validateToken(cartToken); err != nil {
		return err
	}
	return s.store.Delete(ctx, cartToken)
}

func validateToken(cartToken string) error {
	if strings.TrimSpace(cartToken) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "cart token is required")
	}
	return nil
}
