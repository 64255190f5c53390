package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Rohan-Kumar320/Export-Apparel-Admin/models"
	"github.com/Rohan-Kumar320/Export-Apparel-Admin/repository"
	"github.com/Rohan-Kumar320/Export-Apparel-Admin/services"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Upsert categories, products and sample orders from a YAML fixture",
	RunE: func(cmd *cobra.Command, args []string) error {
		fixture, err := loadFixture(seedFile)
		if err != nil {
			return err
		}
		cfg, store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer store.Close(context.Background())

		counts, err := fixture.apply(cmd.Context(), store, cfg.Products.PlaceholderURL)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d categories, %d products, %d orders\n",
			counts[0], counts[1], counts[2])
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "seed.yml", "YAML fixture")
}

// Fixture is the seed file layout. Prices are written as text and parsed like the product form does.
type Fixture struct {
	Categories []models.Category `yaml:"categories"`
	Products   []struct {
		ID          string   `yaml:"id"`
		Name        string   `yaml:"name"`
		Description string   `yaml:"description"`
		Price       string   `yaml:"price"`
		Category    string   `yaml:"category"`
		ImageURLs   []string `yaml:"imageUrls"`
	} `yaml:"products"`
	Orders []struct {
		ID                string    `yaml:"id"`
		CustomerName      string    `yaml:"customerName"`
		Email             string    `yaml:"email"`
		Phone             string    `yaml:"phone"`
		Address           string    `yaml:"address"`
		AdditionalMessage string    `yaml:"additionalMessage"`
		Status            string    `yaml:"status"`
		CreatedAt         time.Time `yaml:"createdAt"`
		Items             []struct {
			ID       string `yaml:"id"`
			Name     string `yaml:"name"`
			ImageURL string `yaml:"imageUrl"`
			Quantity int    `yaml:"quantity"`
			Price    string `yaml:"price"`
		} `yaml:"items"`
	} `yaml:"orders"`
}

func loadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// apply upserts every record by id and returns how many of each kind were written.
// Products reference categories by name; a fixture category id is accepted and stored as its
// name. Products without images get the placeholder. Order totals are the sum of their line totals.
func (f *Fixture) apply(ctx context.Context, store repository.DocumentStore, placeholder string) ([3]int, error) {
	var counts [3]int
	categoryNames := make(map[string]string, len(f.Categories))
	for _, c := range f.Categories {
		categoryNames[c.ID] = c.Name
		if c.ID == "" {
			return counts, fmt.Errorf("category %q has no id", c.Name)
		}
		if err := store.Set(ctx, models.CollectionCategories, c.ID, &c); err != nil {
			return counts, fmt.Errorf("failed to seed category %s: %w", c.ID, err)
		}
		counts[0]++
	}
	for _, p := range f.Products {
		if p.ID == "" {
			return counts, fmt.Errorf("product %q has no id", p.Name)
		}
		category := p.Category
		if name, ok := categoryNames[category]; ok {
			category = name
		}
		product := models.Product{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       services.ParsePrice(p.Price),
			Category:    category,
			ImageURLs:   services.ImageSlots(p.ImageURLs).URLs(placeholder),
		}
		if err := store.Set(ctx, models.CollectionProducts, p.ID, &product); err != nil {
			return counts, fmt.Errorf("failed to seed product %s: %w", p.ID, err)
		}
		counts[1]++
	}
	for _, o := range f.Orders {
		if o.ID == "" {
			return counts, fmt.Errorf("order for %q has no id", o.CustomerName)
		}
		order := models.Order{
			ID:                o.ID,
			CustomerName:      o.CustomerName,
			Email:             o.Email,
			Phone:             o.Phone,
			Address:           o.Address,
			AdditionalMessage: o.AdditionalMessage,
			Status:            models.OrderStatus(o.Status),
			CreatedAt:         o.CreatedAt,
		}
		for _, it := range o.Items {
			item := models.OrderItem{
				ID:       it.ID,
				Name:     it.Name,
				ImageURL: it.ImageURL,
				Quantity: it.Quantity,
				Price:    services.ParsePrice(it.Price),
			}
			order.Items = append(order.Items, item)
			order.Total = order.Total.Add(item.LineTotal())
		}
		if err := store.Set(ctx, models.CollectionOrders, o.ID, &order); err != nil {
			return counts, fmt.Errorf("failed to seed order %s: %w", o.ID, err)
		}
		counts[2]++
	}
	log.Printf("Fixture applied: %v", counts)
	return counts, nil
}
