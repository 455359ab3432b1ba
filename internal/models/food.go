package models

import "time"

// Food is a menu item with its owned collections. Tags and images carry no
// identity outside the aggregate and are replaced wholesale on update; food
// sizes are referenced by historical order line items and are versioned
// instead (see FoodSize).
type Food struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
	IsDeleted   bool   `gorm:"not null;default:false" json:"isDeleted"`

	CategoryID *uint     `gorm:"index" json:"-"`
	Category   *Category `json:"category,omitempty"`

	Tags      []Tag      `gorm:"foreignKey:FoodID;constraint:OnDelete:CASCADE" json:"tags"`
	Images    []Image    `gorm:"foreignKey:FoodID;constraint:OnDelete:CASCADE" json:"images"`
	FoodSizes []FoodSize `gorm:"foreignKey:FoodID;constraint:OnDelete:CASCADE" json:"foodSizes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FoodSize is a priced tier of a Food. Once persisted it is never edited in
// place: any field change retires the record (Deleted = true) and appends a
// replacement with a fresh ID, so order history keeps resolving to the
// values it was sold under. ID 0 means not yet persisted.
type FoodSize struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	FoodID  uint    `gorm:"index;not null" json:"-"`
	Name    string  `gorm:"not null" json:"name"`
	Price   float64 `gorm:"not null" json:"price"`
	Weight  float64 `json:"weight"`
	Note    string  `json:"note"`
	Deleted bool    `gorm:"not null;default:false" json:"deleted"`
}

// Tag is a name-only label owned by a Food.
type Tag struct {
	ID     uint   `gorm:"primaryKey" json:"-"`
	FoodID uint   `gorm:"index;not null" json:"-"`
	Name   string `gorm:"not null" json:"name"`
}

// Image is an image URL owned by a Food.
type Image struct {
	ID     uint   `gorm:"primaryKey" json:"-"`
	FoodID uint   `gorm:"index;not null" json:"-"`
	URL    string `gorm:"not null" json:"url"`
}

// FoodRequest is the create/update payload for a Food.
// Schema mirrors the public API contract.
type FoodRequest struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Status      string            `json:"status"`
	Images      []string          `json:"images"`
	Tags        []string          `json:"tags"`
	Category    *CategoryRef      `json:"category,omitempty"`
	FoodSizes   []FoodSizeRequest `json:"foodSizes"`
}

// CategoryRef references an existing category by ID.
type CategoryRef struct {
	ID uint `json:"id"`
}

// FoodSizeRequest is one size tier in a FoodRequest. ID 0 denotes a new tier.
type FoodSizeRequest struct {
	ID     uint    `json:"id"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Weight float64 `json:"weight"`
	Note   string  `json:"note"`
}

// FoodView is the client-facing projection of a Food, decorated with
// purchase stats. Retired size versions are omitted; they exist for order
// history, not for clients.
type FoodView struct {
	ID          uint           `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Status      string         `json:"status"`
	Category    *CategoryView  `json:"category,omitempty"`
	Tags        []string       `json:"tags"`
	Images      []string       `json:"images"`
	FoodSizes   []FoodSizeView `json:"foodSizes"`
	Purchased   bool           `json:"purchased"`
	TotalSold   int            `json:"totalSold"`
}

// FoodSizeView is the client-facing projection of an active FoodSize.
type FoodSizeView struct {
	ID     uint    `json:"id"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Weight float64 `json:"weight"`
	Note   string  `json:"note"`
}

// View projects the aggregate into its client-facing shape.
func (f *Food) View() FoodView {
	view := FoodView{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		Status:      f.Status,
		Tags:        make([]string, 0, len(f.Tags)),
		Images:      make([]string, 0, len(f.Images)),
		FoodSizes:   make([]FoodSizeView, 0, len(f.FoodSizes)),
	}

	if f.Category != nil {
		c := f.Category.View()
		view.Category = &c
	}

	for _, tag := range f.Tags {
		view.Tags = append(view.Tags, tag.Name)
	}
	for _, img := range f.Images {
		view.Images = append(view.Images, img.URL)
	}
	for _, size := range f.FoodSizes {
		if size.Deleted {
			continue
		}
		view.FoodSizes = append(view.FoodSizes, FoodSizeView{
			ID:     size.ID,
			Name:   size.Name,
			Price:  size.Price,
			Weight: size.Weight,
			Note:   size.Note,
		})
	}

	return view
}
