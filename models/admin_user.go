package models

import "time"

// AdminUser is the allow-list record for the admin surface. A caller is an
// admin if and only if a record keyed by their token subject exists with
// Allowed set.
type AdminUser struct {
	Subject   string    `json:"subject" gorm:"type:text;primaryKey"`
	Email     string    `json:"email" gorm:"type:text"`
	Allowed   bool      `json:"allowed"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}
