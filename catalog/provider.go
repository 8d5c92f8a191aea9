package catalog

import "github.com/Tuka1911/dymokminiapp/models"

// Provider supplies the immutable product list. Fixed for the process
// lifetime; injected so tests can run against a fake catalog.
type Provider interface {
	ListProducts() []models.Product
}

// StaticProvider serves a fixed in-process product list.
type StaticProvider struct {
	products []models.Product
}

func NewStaticProvider(products []models.Product) *StaticProvider {
	copied := make([]models.Product, len(products))
	copy(copied, products)
	return &StaticProvider{products: copied}
}

// ListProducts returns a fresh slice so callers can never reorder or
// mutate the catalog.
func (p *StaticProvider) ListProducts() []models.Product {
	out := make([]models.Product, len(p.products))
	copy(out, p.products)
	return out
}

// DefaultProducts is the store's catalog.
var DefaultProducts = []models.Product{
	{
		ID:    "waka-10000",
		Name:  "Waka 10000",
		Price: 15000,
		Image: "https://cis.wakavaping.com/cdn/shop/articles/10-000_300x.png?v=1713928939",
		Puffs: 10000,
		Flavors: []string{
			"Малиновый арбуз", "Свежая мята", "Арбуз холодный", "Клубника Киви",
			"Клубничный взрыв", "Личи Взрыв", "Клубника Банан", "Клубника и манго", "Мягкий капучино",
		},
		Popularity: 90,
	},
	{
		ID:         "waka-8000",
		Name:       "Waka 8000",
		Price:      12000,
		Image:      "https://cis.wakavaping.com/cdn/shop/files/DM8000_300x.png?v=1713171516",
		Puffs:      8000,
		Flavors:    []string{"Арбуз", "Манго", "Клубника", "Виноград", "Мята", "Личи", "Персик", "Ананас", "Кокос"},
		Popularity: 80,
		OnSale:     true,
	},
	{
		ID:         "waka-6000",
		Name:       "Waka 6000",
		Price:      9000,
		Image:      "https://cis.wakavaping.com/cdn/shop/files/SMASH-_Red_0f291a25-5fc6-40a3-81d7-ce95651015ce.png?v=1713170708&width=1920",
		Puffs:      6000,
		Flavors:    []string{"Вишня", "Арбуз", "Манго", "Клубника", "Личи", "Персик", "Ананас", "Кокос"},
		Popularity: 60,
	},
	{
		ID:         "waka-20000",
		Name:       "Waka 20000",
		Price:      19000,
		Image:      "https://cis.wakavaping.com/cdn/shop/files/3179fe9063be492760799fb3f4865c01_825304fa-4b9c-45c3-81f4-3d331dbdbe25.png?v=1716887989&width=960",
		Puffs:      20000,
		Flavors:    []string{"Арбуз", "Манго", "Клубника", "Личи", "Персик", "Ананас", "Малина", "Виноград", "Грейпфрут", "Черника", "Мята"},
		Popularity: 85,
	},
	{
		ID:         "waka-solo-2",
		Name:       "Waka Solo 2",
		Price:      6000,
		Image:      "https://cis.wakavaping.com/cdn/shop/files/Solo2_300x.png?v=1713171679",
		Puffs:      2000,
		Flavors:    []string{"Арбуз", "Манго", "Клубника", "Личи", "Персик", "Малина", "Черника"},
		Popularity: 40,
		OnSale:     true,
	},
	{
		ID:         "elfbar-ice-king",
		Name:       "Elfbar Ice King",
		Price:      22000,
		Image:      "https://static.insales-cdn.com/r/hoW-8JdxY_0/rs:fit:1000:1000:1/plain/images/products/1/1297/961430801/blue_razz_ice.png@png",
		Puffs:      30000,
		Flavors:    []string{"Киви", "Арбуз", "Манго", "Личи", "Черника", "Малина", "Персик", "Грейпфрут", "Мята", "Тропические фрукты"},
		Popularity: 75,
	},
	{
		ID:         "elfbar-bc-5000",
		Name:       "Elfbar BC 5000",
		Price:      8000,
		Image:      "https://elfbarsvape.com.ua/wp-content/uploads/2023/01/BC5000U_Watermelon_Ice.webp",
		Puffs:      5000,
		Flavors:    []string{"Личи", "Манго", "Черника", "Грейпфрут", "Арбуз", "Клубника"},
		Popularity: 55,
	},
	{
		ID:         "elfbar-planet",
		Name:       "Elfbar Planet",
		Price:      20000,
		Image:      "https://static.insales-cdn.com/r/TasO8i_JS5k/rs:fit:440:0:1/q:100/plain/images/products/1/5693/939439677/large_Elfbar_Planet_StrawberryPeach.webp@webp",
		Puffs:      20000,
		Flavors:    []string{"Тропические фрукты", "Манго", "Арбуз", "Малина", "Клубника"},
		Popularity: 70,
	},
}

// FindProduct looks a product up by id in the provider's list.
func FindProduct(p Provider, id string) (models.Product, bool) {
	for _, product := range p.ListProducts() {
		if product.ID == id {
			return product, true
		}
	}
	return models.Product{}, false
}
