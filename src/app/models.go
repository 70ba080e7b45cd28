package app

import "time"

// User is the persisted account record. Only the bcrypt hash is stored,
// never the plaintext password.
type User struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	Username       string `json:"username" gorm:"uniqueIndex;size:50;not null"`
	Email          string `json:"email" gorm:"uniqueIndex;size:255;not null"`
	HashedPassword string `json:"-" gorm:"not null"`
	IsActive       bool   `json:"is_active" gorm:"default:true;not null"`

	// Back-references only. Rows persist independently of the user object;
	// whether a user delete cascades to them is a configuration decision.
	Images            []Image            `json:"-" gorm:"foreignKey:OwnerID"`
	GeneratedContents []GeneratedContent `json:"-" gorm:"foreignKey:OwnerID"`
}

// Image is the metadata row for an uploaded or externally hosted image.
// URL is either a path under the uploads base URL or an arbitrary remote URL.
type Image struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	URL         string    `json:"url" gorm:"not null"`
	Description string    `json:"description"`
	IsPublic    bool      `json:"is_public" gorm:"default:false;not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	OwnerID     *uint     `json:"owner_id" gorm:"index"`
}

// GeneratedContent holds a title/body plus three image/caption pairs. The
// image URLs are free text, there is no relational link to Image rows.
type GeneratedContent struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:200;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Theme     string    `json:"theme" gorm:"size:100;index;not null"`
	IsStory   bool      `json:"is_story" gorm:"default:true;not null"`
	IsPublic  bool      `json:"is_public" gorm:"default:false;not null"`
	ImageURL1 string    `json:"image_url_1"`
	ImageURL2 string    `json:"image_url_2"`
	ImageURL3 string    `json:"image_url_3"`
	Caption1  string    `json:"caption_1"`
	Caption2  string    `json:"caption_2"`
	Caption3  string    `json:"caption_3"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	OwnerID   *uint     `json:"owner_id" gorm:"index"`
}
