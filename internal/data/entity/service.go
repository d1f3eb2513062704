package entity

// Service is an offering posted by a provider.
type Service struct {
	Base
	ProviderName     string `db:"provider_name"`
	ProviderEmail    string `db:"provider_email"`
	ProviderLocation string `db:"provider_location"`
	ProviderImage    string `db:"provider_image"`
	Name             string `db:"name"`
	Price            Price  `db:"price"`
	Image            string `db:"image"`
	Area             string `db:"area"`
	Description      string `db:"description"`
}
