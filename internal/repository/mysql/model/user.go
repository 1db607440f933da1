package model

import (
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"github.com/newsflow-app/newsflow-api/domain"
)

type User struct {
	ID                  int64          `gorm:"primaryKey;autoIncrement"`
	Name                string         `gorm:"type:varchar(100);not null"`
	Email               string         `gorm:"type:varchar(255);not null;uniqueIndex"`
	Password            string         `gorm:"type:varchar(100);not null"`
	Role                string         `gorm:"type:varchar(10);not null;default:user"`
	PreferredCategories datatypes.JSON `gorm:"column:preferred_categories"`
	Country             string         `gorm:"type:varchar(8);not null;default:us"`
	CreatedAt           time.Time      `gorm:"type:datetime"`
	UpdatedAt           time.Time      `gorm:"type:datetime"`
}

func (User) TableName() string {
	return "users"
}

func NewUserFromDomain(u *domain.User) *User {
	return &User{
		ID:                  u.ID,
		Name:                u.Name,
		Email:               u.Email,
		Password:            u.Password,
		Role:                u.Role,
		PreferredCategories: marshalCategories(u.PreferredCategories),
		Country:             u.Country,
		CreatedAt:           u.CreatedAt,
		UpdatedAt:           u.UpdatedAt,
	}
}

func (m *User) ToDomain() domain.User {
	return domain.User{
		ID:                  m.ID,
		Name:                m.Name,
		Email:               m.Email,
		Password:            m.Password,
		Role:                m.Role,
		PreferredCategories: unmarshalCategories(m.PreferredCategories),
		Country:             m.Country,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

func marshalCategories(categories []string) datatypes.JSON {
	if categories == nil {
		categories = []string{}
	}
	data, err := json.Marshal(categories)
	if err != nil {
		logrus.Errorf("failed to marshal preferred categories: %v", err)
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(data)
}

func unmarshalCategories(data datatypes.JSON) []string {
	if len(data) == 0 {
		return []string{}
	}
	var categories []string
	if err := json.Unmarshal(data, &categories); err != nil {
		logrus.Errorf("failed to unmarshal preferred categories: %v", err)
		return []string{}
	}
	return categories
}
