package chat

import "barista/internal/entities"

// Tools описания функций, которые уходят апстриму с каждым запросом.
func Tools() []entities.Tool {
	return []entities.Tool{
		{
			Name:        entities.ToolOrderCoffee,
			Description: "Place a coffee order for a customer.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"customerName": map[string]any{
						"type":        "string",
						"description": "Name of the customer.",
					},
					"coffeeItems": map[string]any{
						"type":        "array",
						"items":       map[string]any{"type": "object"},
						"description": "List of coffee items.",
					},
				},
				"required": []string{"customerName", "coffeeItems"},
			},
		},
		{
			Name:        entities.ToolGetMenu,
			Description: "Get the coffee menu.",
			Parameters: map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
		},
		{
			Name:        entities.ToolCompanyInfo,
			Description: "Get information about the coffee company.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"query": map[string]any{
						"type":        "string",
						"description": "Query about company info.",
					},
				},
			},
		},
	}
}
