package cart

import "strings"

// CartItem adalah satu baris cart hasil rekonsiliasi. CartID
// disintesis: backend-<orderId> untuk item milik server,
// local-<id|timestamp> untuk item anonim. Prefix menentukan ke mana
// mutasi diarahkan; satu item tidak pernah dilacak dua arah sekaligus.
type CartItem struct {
	CartID   string `json:"cartId"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
	Size     string `json:"size,omitempty"`
	Color    string `json:"color,omitempty"`
}

const (
	backendPrefix     = "backend-"
	backendTempPrefix = "backend-temp-"
	localPrefix       = "local-"
)

func (i CartItem) Source() string {
	if strings.HasPrefix(i.CartID, backendPrefix) {
		return "backend"
	}
	return "local"
}

func (i CartItem) ItemTotal() int64 {
	return i.Price * int64(i.Quantity)
}

// CartView adalah hasil rekonsiliasi yang dikirim ke frontend:
// item, state seleksi, dan total atas item terseleksi saja.
type CartView struct {
	Items     []CartItem      `json:"items"`
	Selection map[string]bool `json:"selection"`
	Total     int64           `json:"total"`
	Count     int             `json:"count"`
}

type AddItemRequest struct {
	CatalogID string `json:"catalogId"`
	Name      string `json:"name"`
	Price     string `json:"price"` // bisa "150000" atau "Rp 150.000"
	Image     string `json:"image"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
}

type SetQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

type SelectRequest struct {
	Selected bool `json:"selected"`
}

type CartCountResponse struct {
	Count int `json:"count"`
}
