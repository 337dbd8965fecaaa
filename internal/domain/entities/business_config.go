package entities

// BusinessConfig is the single site configuration document
// (table "configuracion", id "web_data").
//
// Finance keeps the raw percent strings as edited in the admin panel; the
// pricing engine parses them with its own defaults.
type BusinessConfig struct {
	Hero     Hero     `json:"hero"`
	Stats    Stats    `json:"stats"`
	Contact  Contact  `json:"contact"`
	Social   Social   `json:"social"`
	Warranty Warranty `json:"warranty"`
	Finance  Finance  `json:"finance"`
	Brands   []string `json:"brands"`
}

type Hero struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Version     string `json:"version,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
}

type Stats struct {
	Projects string `json:"projects"`
	Years    string `json:"years"`
	Uptime   string `json:"uptime"`
	Support  string `json:"support"`
}

type Contact struct {
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	WhatsAppLink string `json:"whatsapp_link,omitempty"`
}

type Social struct {
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	TikTok    string `json:"tiktok,omitempty"`
}

type Warranty struct {
	Title       string   `json:"title"`
	Button      string   `json:"button"`
	CloseButton string   `json:"close_button,omitempty"`
	Items       []string `json:"items"`
}

// Finance holds finanzas.iva and finanzas.descuento verbatim.
type Finance struct {
	TaxRate      string `json:"tax_rate"`
	DiscountRate string `json:"discount_rate"`
}
