package model

import "time"

// Customer - организация, подключённая к сервис-провайдеру.
type Customer struct {
	ID     string  `gorm:"primaryKey" json:"id"`
	Did    string  `gorm:"not null;uniqueIndex" json:"did"`
	Name   string  `gorm:"not null" json:"name"`
	Town   *string `json:"town,omitempty"`
	Active bool    `gorm:"not null;default:false" json:"active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

// CustomerServiceRef - сервис провайдера, включённый у клиента.
// Составной сервис ссылается на Service.ID, NutsComm-ссылка создаётся
// автоматически и ServiceID не имеет.
type CustomerServiceRef struct {
	CustomerID string `gorm:"primaryKey" json:"-"`
	Type       string `gorm:"primaryKey" json:"type"`
	ServiceID  string `gorm:"not null;default:''" json:"serviceId,omitempty"`
	Ref        string `gorm:"not null" json:"ref"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
}

// ServiceRef строит ссылку на сервис типа typ в DID провайдера.
func ServiceRef(spDID, typ string) string {
	return spDID + "?type=" + typ
}
