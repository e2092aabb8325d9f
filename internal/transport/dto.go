package transport

import (
	"github.com/shopspring/decimal"

	"github.com/AyaAid/Stayabucks/internal/pricing"
)

type CreateDrinkRequest struct {
	UserID       uint              `json:"user_id"`
	DrinkID      uint              `json:"drink_id"`
	SupplementID pricing.Selection `json:"supplement_id"`
}

type CreateDrinkResponse struct {
	ID uint `json:"id"`
}

type QuoteRequest struct {
	DrinkID      uint              `json:"drink_id"`
	SupplementID pricing.Selection `json:"supplement_id"`
}

type QuoteResponse struct {
	DrinkID    uint            `json:"drink_id"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

type AddLikeRequest struct {
	UserID         uint `json:"user_id"`
	DrinkCreatedID uint `json:"drink_created_id"`
}

type AddLikeResponse struct {
	ID uint `json:"id"`
}

type LikeCountResponse struct {
	DrinkCreatedID uint  `json:"drink_created_id"`
	Likes          int64 `json:"likes"`
}

type PageMeta struct {
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
	HasPrev    bool  `json:"has_prev"`
	HasNext    bool  `json:"has_next"`
}

type Page[T any] struct {
	Data []T      `json:"data"`
	Meta PageMeta `json:"meta"`
}

func NewPage[T any](items []T, page, offset, limit int, total int64) Page[T] {
	return Page[T]{
		Data: items,
		Meta: PageMeta{
			Page:       page,
			Size:       limit,
			Total:      total,
			TotalPages: (total + int64(limit) - 1) / int64(limit),
			HasPrev:    page > 1,
			HasNext:    int64(offset+limit) < total,
		},
	}
}
