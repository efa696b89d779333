package catalog

// Read-only lookup entities. The admin tables derive their filter
// options from these collections.

type Brand struct {
	ID   string `json:"brand_id"`
	Name string `json:"brand_name"`
}

type Location struct {
	ID   string `json:"location_id"`
	Name string `json:"location_name"`
}

type Product struct {
	ID   string `json:"product_id"`
	Name string `json:"product_name"`
}
