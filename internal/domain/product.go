package domain

// Categories lists every product category, "todos" being the catch-all tag.
var Categories = []string{"todos", "piezas", "estructuras", "herramientas", "accesorios", "repuestos"}

// ServiceNames maps a service code to its human readable label.
// Codes not present here are rendered as-is.
var ServiceNames = map[string]string{
	"laser":         "Corte Láser CNC",
	"plasma":        "Corte Plasma",
	"mecanizado":    "Centro Mecanizado",
	"mantenimiento": "Mantenimiento Pesado",
}

// Product is a catalog entry. Field tags match the remote catalog payload.
// The catalog is replaced wholesale on refresh; products are never mutated
// individually by the cart.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	AllCategories []string `json:"allCategories"`
	Featured      bool     `json:"featured"`
	Price         float64  `json:"price"`
	Stock         int      `json:"stock"`
	Image         string   `json:"image"`
	Description   string   `json:"description"`
	Code          string   `json:"code"`
	Active        bool     `json:"active"`
}

// DefaultProducts returns the built-in catalog used whenever the remote
// source is unreachable or returns an unusable payload.
func DefaultProducts() []Product {
	return []Product{
		{
			ID:            "pieza-001",
			Name:          "Placa de Acero Cortada Laser",
			Category:      "piezas",
			AllCategories: []string{"piezas"},
			Featured:      true,
			Price:         1250.50,
			Stock:         15,
			Image:         "resources/pieza-acero.jpg",
			Description:   "Placa de acero A36 cortada a medida con precisión láser",
			Code:          "PLA-001",
			Active:        true,
		},
		{
			ID:            "estructura-001",
			Name:          "Estructura Metálica Industrial",
			Category:      "estructuras",
			AllCategories: []string{"estructuras"},
			Featured:      false,
			Price:         8500.00,
			Stock:         8,
			Image:         "resources/estructura.jpg",
			Description:   "Estructura base para máquinas industriales, soldada y pintada",
			Code:          "EST-001",
			Active:        true,
		},
		{
			ID:            "herramienta-001",
			Name:          "Juego de Sujetadores CNC",
			Category:      "herramientas",
			AllCategories: []string{"herramientas"},
			Featured:      true,
			Price:         350.75,
			Stock:         25,
			Image:         "resources/sujetadores.jpg",
			Description:   "Set de 12 sujetadores para máquinas CNC, incluye llaves",
			Code:          "HER-001",
			Active:        true,
		},
		{
			ID:            "repuesto-001",
			Name:          "Motor Paso a Paso NEMA 23",
			Category:      "repuestos",
			AllCategories: []string{"repuestos"},
			Featured:      false,
			Price:         1200.00,
			Stock:         6,
			Image:         "resources/motor-nema23.jpg",
			Description:   "Motor paso a paso NEMA 23, 1.8° por paso, 2.5A",
			Code:          "REP-001",
			Active:        true,
		},
		{
			ID:            "accesorio-001",
			Name:          "Boquilla Corte Plasma",
			Category:      "accesorios",
			AllCategories: []string{"accesorios"},
			Featured:      true,
			Price:         45.99,
			Stock:         30,
			Image:         "resources/boquilla-plasma.jpg",
			Description:   "Boquilla de repuesto para corte plasma Hypertherm",
			Code:          "ACC-001",
			Active:        true,
		},
		{
			ID:            "pieza-002",
			Name:          "Piñón Engranaje 20 Dientes",
			Category:      "piezas",
			AllCategories: []string{"piezas"},
			Featured:      false,
			Price:         320.00,
			Stock:         12,
			Image:         "resources/engranaje.jpg",
			Description:   "Piñón de engranaje fabricado en acero templado, 20 dientes",
			Code:          "PIN-002",
			Active:        true,
		},
	}
}
