// cmd/seed — loads a demo dataset: an admin user, a few products, and one
// sample sale built through the cart/assembler workflow.
// Usage: go run ./cmd/seed
package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/omgcarlo/RetailSavvy/internal/config"
	"github.com/omgcarlo/RetailSavvy/internal/infra"
	"github.com/omgcarlo/RetailSavvy/internal/model"
	"github.com/omgcarlo/RetailSavvy/internal/pos"
	"github.com/omgcarlo/RetailSavvy/internal/repository"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	products := repository.NewProductRepository(db)
	transactions := repository.NewTransactionRepository(db)

	// Demo login — skipped when it already exists.
	if _, err := users.FindByUsername(ctx, "admin"); err != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("bcrypt")
		}
		if err := users.Create(ctx, &model.User{Username: "admin", Password: string(hash)}); err != nil {
			log.Fatal().Err(err).Msg("seed user")
		}
		log.Info().Msg("created demo user admin/admin123")
	}

	catalog := []struct {
		name  string
		price string
		stock string
	}{
		{"Instant Noodles", "15.50", "120"},
		{"Canned Sardines", "26.00", "48"},
		{"3-in-1 Coffee", "8.75", "200"},
		{"Laundry Soap Bar", "19.99", "35"},
	}

	var seeded []model.Product
	for _, it := range catalog {
		price, err := pos.ParseAmount(it.price)
		if err != nil {
			log.Fatal().Err(err).Msg("seed price")
		}
		stock, err := pos.ParseCount(it.stock)
		if err != nil {
			log.Fatal().Err(err).Msg("seed stock")
		}
		p := &model.Product{Name: it.name, Price: price, Stock: stock}
		if err := products.Create(ctx, p); err != nil {
			log.Fatal().Err(err).Str("product", it.name).Msg("seed product")
		}
		seeded = append(seeded, *p)
	}
	log.Info().Int("count", len(seeded)).Msg("seeded products")

	// One demo sale through the same workflow the UI drives: build a cart,
	// assemble, persist atomically.
	cart := pos.NewCart()
	cart.Add(seeded[0])
	cart.Add(seeded[0])
	cart.Add(seeded[2])
	cart.SetQuantity(seeded[2].ID, "3")

	header, items := pos.Assemble(cart, 1, nil)
	if err := transactions.CreateWithItems(ctx, &header, items); err != nil {
		log.Fatal().Err(err).Msg("seed transaction")
	}
	cart.Reset()

	log.Info().
		Int("transaction_id", header.ID).
		Str("total", pos.FormatAmount(header.Total)).
		Int("items", len(items)).
		Msg("seeded demo sale")
}
