package models

import "time"

// Category groups foods. It is referenced by foods, not owned by them:
// deleting a food never touches its category.
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;uniqueIndex" json:"name"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CategoryRequest is the create/update payload for a category.
type CategoryRequest struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// CategoryView is the client-facing projection of a Category.
type CategoryView struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// View projects the category into its client-facing shape.
func (c *Category) View() CategoryView {
	return CategoryView{
		ID:    c.ID,
		Name:  c.Name,
		Image: c.Image,
	}
}
