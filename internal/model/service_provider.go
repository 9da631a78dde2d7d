package model

import "time"

// DefaultServiceProviderSlot - сервер обслуживает ровно одного сервис-провайдера.
const DefaultServiceProviderSlot = "default"

// NutsCommService - тип endpoint'а, через который узлы сети общаются друг с другом.
const NutsCommService = "NutsComm"

// ServiceProvider - организация, от имени которой работает админка.
type ServiceProvider struct {
	Slot    string `gorm:"primaryKey" json:"-"`
	ID      string `gorm:"not null" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Website string `json:"website"`

	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

// Endpoint - зарегистрированный технический endpoint сервис-провайдера.
type Endpoint struct {
	ID   string `gorm:"primaryKey;type:uuid" json:"id"`
	Type string `gorm:"not null;index" json:"type"`
	URL  string `gorm:"not null" json:"url"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
}

// Service - составной сервис: имя и набор endpoint'ов по типам.
type Service struct {
	ID          string `gorm:"primaryKey;type:uuid" json:"id"`
	Name        string `gorm:"not null;uniqueIndex" json:"name"`
	EndpointIDs string `gorm:"not null;default:''" json:"-"`

	Endpoints []string `gorm:"-" json:"endpoints"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
}
