package pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrUnresolvable means the base drink of a record is gone; callers drop the record.
var ErrUnresolvable = errors.New("base drink not found")

type Catalog interface {
	DrinkPrice(ctx context.Context, drinkID uint) (price float64, found bool, err error)
	// SupplementPrices returns prices for the ids that exist; unknown ids are simply absent.
	SupplementPrices(ctx context.Context, ids []uint) (map[uint]float64, error)
}

type Engine struct {
	Catalog Catalog
}

func NewEngine(c Catalog) *Engine {
	return &Engine{Catalog: c}
}

func (e *Engine) TotalPrice(ctx context.Context, drinkID uint, sel Selection) (decimal.Decimal, error) {
	base, found, err := e.Catalog.DrinkPrice(ctx, drinkID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("drink %d price: %w", drinkID, err)
	}
	if !found {
		return decimal.Zero, ErrUnresolvable
	}

	prices := map[uint]float64{}
	if len(sel) > 0 {
		prices, err = e.Catalog.SupplementPrices(ctx, sel.IDs())
		if err != nil {
			return decimal.Zero, fmt.Errorf("supplement prices: %w", err)
		}
	}

	return Sum(base, sel, prices), nil
}

func (e *Engine) TotalPriceEncoded(ctx context.Context, drinkID uint, raw string) (decimal.Decimal, error) {
	sel, err := DecodeSelection(raw)
	if err != nil {
		return decimal.Zero, err
	}
	return e.TotalPrice(ctx, drinkID, sel)
}

// Sum adds base + unit*qty for every priced line. Lines without a price contribute nothing.
func Sum(base float64, sel Selection, prices map[uint]float64) decimal.Decimal {
	total := decimal.NewFromFloat(base)
	for _, id := range sel.IDs() {
		unit, ok := prices[id]
		if !ok {
			continue
		}
		line := decimal.NewFromFloat(unit).Mul(decimal.NewFromUint64(uint64(sel[id])))
		total = total.Add(line)
	}
	return total
}
