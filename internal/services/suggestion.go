package service

import (
	"context"
	"fmt"
	"strings"

	appErrors "github.com/shelfpilot/shelfpilot/internal/errors"
	"github.com/shelfpilot/shelfpilot/internal/metrics"
	"github.com/shelfpilot/shelfpilot/internal/models"
	repository "github.com/shelfpilot/shelfpilot/internal/repositories"
	"github.com/shelfpilot/shelfpilot/pkg/gemini"
)

// suggestionInventoryLimit caps how many catalog rows are serialized into the
// prompt context so a large warehouse does not blow the model's input budget.
const suggestionInventoryLimit = 200

type SuggestionService interface {
	SuggestShelfLocation(ctx context.Context, req *models.SuggestShelfLocationRequest) (*models.ShelfLocationSuggestion, error)
}

type suggestionService struct {
	inventoryRepo repository.InventoryRepository
	shelfRepo     repository.ShelfRepository
	gemini        gemini.Client
}

func NewSuggestionService(inventoryRepo repository.InventoryRepository, shelfRepo repository.ShelfRepository, geminiClient gemini.Client) SuggestionService {
	return &suggestionService{inventoryRepo: inventoryRepo, shelfRepo: shelfRepo, gemini: geminiClient}
}

// SuggestShelfLocation assembles a free-text snapshot of the shelf registry
// and catalog, forwards it to the model and returns its suggestion verbatim.
func (s *suggestionService) SuggestShelfLocation(ctx context.Context, req *models.SuggestShelfLocationRequest) (*models.ShelfLocationSuggestion, error) {

	currentInventory, err := s.buildInventoryContext(ctx)
	if err != nil {
		return nil, err
	}

	suggestion, err := s.gemini.SuggestShelfLocation(ctx, &gemini.SuggestionInput{
		ProductName:        req.ProductName,
		ProductDescription: req.ProductDescription,
		CurrentInventory:   currentInventory,
	})
	if err != nil {
		metrics.RecordSuggestion("error")
		return nil, appErrors.ThirdPartyError("Shelf location suggestion failed").WithError(err)
	}

	metrics.RecordSuggestion("ok")

	return suggestion, nil
}

func (s *suggestionService) buildInventoryContext(ctx context.Context) (string, error) {

	shelves, err := s.shelfRepo.ListShelves(ctx)
	if err != nil {
		return "", appErrors.DatabaseError("Failed to list shelves").WithError(err)
	}

	items, _, err := s.inventoryRepo.ListItems(ctx, &models.ListInventoryFilter{
		Page:     1,
		PageSize: suggestionInventoryLimit,
	})
	if err != nil {
		return "", appErrors.DatabaseError("Failed to list inventory items").WithError(err)
	}

	var b strings.Builder

	b.WriteString("Shelves:\n")
	if len(shelves) == 0 {
		b.WriteString("(no shelves registered)\n")
	}
	for _, shelf := range shelves {
		fmt.Fprintf(&b, "- %s: %s", shelf.Name, shelf.LocationDescription)
		if shelf.Notes != "" {
			fmt.Fprintf(&b, " (%s)", shelf.Notes)
		}
		b.WriteString("\n")
	}

	b.WriteString("Items:\n")
	if len(items) == 0 {
		b.WriteString("(no items in inventory)\n")
	}
	for _, item := range items {
		fmt.Fprintf(&b, "- %s (qty %d) on shelf %s\n", item.Name, item.Quantity, item.Location)
	}

	return b.String(), nil
}
